package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()
	assert.Equal(t, "3001", cfg.AppPort)
	assert.Equal(t, "1", cfg.DefaultUserID)
	assert.Equal(t, BackendMemory, cfg.DataBackend)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Equal(t, "http://localhost:3001", cfg.APIBaseURL)
	assert.Equal(t, 10*time.Second, cfg.APITimeout)
	assert.Equal(t, 2, cfg.APIMaxRetries)
	assert.Equal(t, float64(5), cfg.OrderRateLimit)
	assert.Equal(t, "INR", cfg.Currency)
	assert.Equal(t, 4, cfg.NotificationConcurrency)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("APP_PORT", "8080")
	t.Setenv("ALLOWED_ORIGINS", "http://a.test,http://b.test")
	t.Setenv("DATA_BACKEND", BackendDynamo)
	t.Setenv("API_BASE_URL", "http://api.test/")
	t.Setenv("API_TIMEOUT", "250ms")
	t.Setenv("ORDER_RATE_BURST", "3")
	t.Setenv("DYNAMO_TABLE_ORDERS", "dev_orders")
	t.Setenv("NOTIFICATION_CONCURRENCY", "1")

	cfg := Load()
	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.AllowedOrigins)
	assert.Equal(t, BackendDynamo, cfg.DataBackend)
	assert.Equal(t, "http://api.test", cfg.APIBaseURL)
	assert.Equal(t, 250*time.Millisecond, cfg.APITimeout)
	assert.Equal(t, 3, cfg.OrderRateBurst)
	assert.Equal(t, "dev_orders", cfg.DynamoTables.Orders)
	assert.Equal(t, 1, cfg.NotificationConcurrency)
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("API_MAX_RETRIES", "many")
	t.Setenv("API_TIMEOUT", "soon")
	t.Setenv("ORDER_RATE_LIMIT", "fast")

	cfg := Load()
	assert.Equal(t, 2, cfg.APIMaxRetries)
	assert.Equal(t, 10*time.Second, cfg.APITimeout)
	assert.Equal(t, float64(5), cfg.OrderRateLimit)
}
