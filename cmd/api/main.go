package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/nexus-dashboard/internal/config"
	"github.com/nexus-dashboard/internal/infrastructure/dynamo"
	"github.com/nexus-dashboard/internal/infrastructure/mockdata"
	s3infra "github.com/nexus-dashboard/internal/infrastructure/s3"
	"github.com/nexus-dashboard/internal/infrastructure/sns"
	transporthttp "github.com/nexus-dashboard/internal/transport/http"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg := config.Load()
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ds, err := loadDataset(ctx, cfg)
	if err != nil {
		log.Fatalf("mock data: %v", err)
	}

	deps := &transporthttp.Deps{
		NotificationRepo: mockdata.NewNotificationRepo(ds.Notifications),
		OrderRepo:        mockdata.NewOrderRepo(ds.Orders),
		MarketRepo:       mockdata.NewMarketRepo(ds),
	}

	if cfg.DataBackend == config.BackendDynamo {
		client, err := dynamo.NewClient(ctx, cfg)
		if err != nil {
			log.Fatalf("dynamo: %v", err)
		}
		// Bootstrap DynamoDB tables (creates them if they don't exist).
		dynamo.Bootstrap(ctx, client, cfg.DynamoTables)
		notifRepo := dynamo.NewNotificationRepo(client, cfg.DynamoTables.Notifications)
		orderRepo := dynamo.NewOrderRepo(client, cfg.DynamoTables.Orders)
		if err := dynamo.Seed(ctx, notifRepo, orderRepo, ds.Notifications, ds.Orders); err != nil {
			log.Fatalf("seed dynamo: %v", err)
		}
		deps.NotificationRepo = notifRepo
		deps.OrderRepo = orderRepo
	}

	// Order events are optional; without a topic orders are only stored.
	if cfg.OrderTopicARN != "" {
		if client, err := sns.NewClient(ctx, cfg); err == nil {
			deps.OrderEvents = sns.NewOrderPublisher(client, cfg.OrderTopicARN)
		} else {
			log.Printf("WARN: SNS publisher not available: %v", err)
		}
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      transporthttp.NewRouter(ctx, cfg, deps),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on :%s (env=%s, backend=%s)", cfg.AppPort, cfg.AppEnv, cfg.DataBackend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()

	log.Println("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
	log.Println("Server stopped")
}

// loadDataset reads the mock data from S3 when MOCK_DATA_S3_KEY is set,
// otherwise from MOCK_DATA_PATH.
func loadDataset(ctx context.Context, cfg *config.Config) (*mockdata.Dataset, error) {
	if cfg.MockDataS3Key == "" {
		return mockdata.LoadFile(cfg.MockDataPath)
	}
	client, err := s3infra.NewClient(ctx, cfg)
	if err != nil {
		return nil, err
	}
	body, err := s3infra.NewStore(client, cfg.S3BucketName).Download(ctx, cfg.MockDataS3Key)
	if err != nil {
		return nil, err
	}
	defer body.Close()
	return mockdata.Decode(body)
}

