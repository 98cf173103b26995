package order

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/nexus-dashboard/internal/domain"
	"github.com/nexus-dashboard/internal/pkg/id"
	"github.com/nexus-dashboard/internal/pkg/validate"
)

type Service interface {
	List(ctx context.Context, userID string) ([]domain.Order, error)
	Create(ctx context.Context, userID string, req domain.CreateOrderRequest) (*domain.Order, error)
}

type orderStore interface {
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
	Put(ctx context.Context, o *domain.Order) error
}

// EventPublisher is notified after an order is stored. Failures are logged, not returned.
type EventPublisher interface {
	PublishOrderPlaced(ctx context.Context, o *domain.Order) error
}

type Option func(*service)

// WithPublisher announces created orders through p.
func WithPublisher(p EventPublisher) Option {
	return func(s *service) { s.events = p }
}

// WithClock replaces time.Now for placement timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *service) { s.logger = l }
}

type service struct {
	repo   orderStore
	events EventPublisher
	now    func() time.Time
	logger *slog.Logger
}

func NewService(repo orderStore, opts ...Option) Service {
	s := &service{repo: repo, now: time.Now, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) List(ctx context.Context, userID string) ([]domain.Order, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Create validates req, assigns a ULID and the caller's user id, and stores the order.
// Status defaults to pending and placedAt to now.
func (s *service) Create(ctx context.Context, userID string, req domain.CreateOrderRequest) (*domain.Order, error) {
	req.Symbol = strings.ToUpper(strings.TrimSpace(req.Symbol))
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%s: %w", err.Error(), domain.ErrValidation)
	}

	placedAt := s.now().UTC()
	if req.PlacedAt != nil {
		placedAt = req.PlacedAt.UTC()
	}
	orderID, err := id.At(placedAt)
	if err != nil {
		return nil, fmt.Errorf("placedAt %s out of range: %w", placedAt.Format(time.RFC3339), domain.ErrValidation)
	}
	status := req.Status
	if status == "" {
		status = domain.OrderPending
	}
	o := &domain.Order{
		ID:       orderID,
		UserID:   userID,
		Symbol:   req.Symbol,
		Type:     req.Type,
		Quantity: req.Quantity,
		Price:    req.Price,
		Status:   status,
		PlacedAt: placedAt,
		FilledAt: req.FilledAt,
	}
	if err := s.repo.Put(ctx, o); err != nil {
		return nil, err
	}

	if s.events != nil {
		if err := s.events.PublishOrderPlaced(ctx, o); err != nil {
			s.logger.Warn("order event not published", "order_id", o.ID, "err", err)
		}
	}
	return o, nil
}
