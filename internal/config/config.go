package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Data backends for the notification and order repositories.
const (
	BackendMemory = "memory"
	BackendDynamo = "dynamo"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	AppPort        string
	AppEnv         string
	AllowedOrigins []string // CORS allowed origins
	DefaultUserID  string   // user the mock backend serves; there is no authentication

	MockDataPath  string
	MockDataS3Key string // when set, mock data is read from S3BucketName instead of MockDataPath
	DataBackend   string // "memory" | "dynamo"

	AWSRegion      string
	AWSEndpointURL string // empty in prod, set to LocalStack URL in dev
	AWSAccessKeyID string
	AWSSecretKey   string
	DynamoTables   DynamoTables
	S3BucketName   string
	SNSRegion      string
	OrderTopicARN  string

	OrderRateLimit float64
	OrderRateBurst int

	APIBaseURL    string
	APITimeout    time.Duration
	APIMaxRetries int
	Currency      string

	NotificationConcurrency int // in-flight PATCHes during mark-all-read
}

// DynamoTables holds the DynamoDB table name for each entity.
type DynamoTables struct {
	Notifications string
	Orders        string
}

// Load reads all configuration from environment variables.
func Load() *Config {
	return &Config{
		AppPort:        getEnv("APP_PORT", "3001"),
		AppEnv:         getEnv("APP_ENV", "development"),
		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
		DefaultUserID:  getEnv("DEFAULT_USER_ID", "1"),
		MockDataPath:   getEnv("MOCK_DATA_PATH", "./mock-data.json"),
		MockDataS3Key:  getEnv("MOCK_DATA_S3_KEY", ""),
		DataBackend:    getEnv("DATA_BACKEND", BackendMemory),
		AWSRegion:      getEnv("AWS_REGION", "us-east-1"),
		AWSEndpointURL: getEnv("AWS_ENDPOINT_URL", ""),
		AWSAccessKeyID: getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretKey:   getEnv("AWS_SECRET_ACCESS_KEY", ""),
		DynamoTables: DynamoTables{
			Notifications: getEnv("DYNAMO_TABLE_NOTIFICATIONS", "notifications"),
			Orders:        getEnv("DYNAMO_TABLE_ORDERS", "orders"),
		},
		S3BucketName:   getEnv("S3_BUCKET_NAME", "nexus-mock-data"),
		SNSRegion:      getEnv("SNS_REGION", "us-east-1"),
		OrderTopicARN:  getEnv("ORDER_EVENTS_TOPIC_ARN", ""),
		OrderRateLimit: getEnvFloat("ORDER_RATE_LIMIT", 5),
		OrderRateBurst: getEnvInt("ORDER_RATE_BURST", 10),
		APIBaseURL:     strings.TrimRight(getEnv("API_BASE_URL", "http://localhost:3001"), "/"),
		APITimeout:     getEnvDuration("API_TIMEOUT", 10*time.Second),
		APIMaxRetries:  getEnvInt("API_MAX_RETRIES", 2),
		Currency:       getEnv("CURRENCY", "INR"),

		NotificationConcurrency: getEnvInt("NOTIFICATION_CONCURRENCY", 4),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

// getEnvDuration accepts Go duration strings ("5s", "250ms").
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
