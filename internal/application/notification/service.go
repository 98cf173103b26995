package notification

import (
	"context"
	"fmt"

	"github.com/nexus-dashboard/internal/domain"
)

type Service interface {
	List(ctx context.Context, userID string) ([]domain.Notification, error)
	SetRead(ctx context.Context, notificationID, userID string, isRead bool) (*domain.Notification, error)
}

type notificationStore interface {
	ListByUser(ctx context.Context, userID string) ([]domain.Notification, error)
	Get(ctx context.Context, notificationID string) (*domain.Notification, error)
	SetRead(ctx context.Context, notificationID string, isRead bool) (*domain.Notification, error)
}

type service struct {
	repo notificationStore
}

func NewService(repo notificationStore) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, userID string) ([]domain.Notification, error) {
	return s.repo.ListByUser(ctx, userID)
}

// SetRead is idempotent: writing the value a notification already holds succeeds.
func (s *service) SetRead(ctx context.Context, notificationID, userID string, isRead bool) (*domain.Notification, error) {
	n, err := s.repo.Get(ctx, notificationID)
	if err != nil {
		return nil, err
	}
	if n.UserID != userID {
		return nil, fmt.Errorf("notification %s: %w", notificationID, domain.ErrForbidden)
	}
	return s.repo.SetRead(ctx, notificationID, isRead)
}
