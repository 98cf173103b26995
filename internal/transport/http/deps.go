package http

import (
	"context"

	"github.com/nexus-dashboard/internal/domain"
)

// NotificationRepository is the minimal interface the router requires from a notification store.
type NotificationRepository interface {
	ListByUser(ctx context.Context, userID string) ([]domain.Notification, error)
	Get(ctx context.Context, notificationID string) (*domain.Notification, error)
	SetRead(ctx context.Context, notificationID string, isRead bool) (*domain.Notification, error)
}

// OrderRepository is the minimal interface the router requires from an order store.
type OrderRepository interface {
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
	Put(ctx context.Context, o *domain.Order) error
}

// MarketRepository serves the read-only collections.
type MarketRepository interface {
	PortfolioByUser(ctx context.Context, userID string) ([]domain.PortfolioItem, error)
	MarketData(ctx context.Context) ([]domain.MarketData, error)
	Executions(ctx context.Context) ([]domain.Execution, error)
}

// OrderEventPublisher is optional; nil disables order events.
type OrderEventPublisher interface {
	PublishOrderPlaced(ctx context.Context, o *domain.Order) error
}

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	NotificationRepo NotificationRepository
	OrderRepo        OrderRepository
	MarketRepo       MarketRepository
	OrderEvents      OrderEventPublisher
}
