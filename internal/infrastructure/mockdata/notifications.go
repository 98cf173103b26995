package mockdata

import (
	"context"
	"fmt"
	"maps"
	"sync"

	"github.com/nexus-dashboard/internal/domain"
)

// NotificationRepo is an in-memory notification table. Source order is preserved.
type NotificationRepo struct {
	mu    sync.RWMutex
	items []domain.Notification
}

func NewNotificationRepo(items []domain.Notification) *NotificationRepo {
	r := &NotificationRepo{items: make([]domain.Notification, 0, len(items))}
	for _, n := range items {
		r.items = append(r.items, cloneNotification(n))
	}
	return r
}

func (r *NotificationRepo) ListByUser(_ context.Context, userID string) ([]domain.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Notification, 0, len(r.items))
	for _, n := range r.items {
		if n.UserID == userID {
			out = append(out, cloneNotification(n))
		}
	}
	return out, nil
}

func (r *NotificationRepo) Get(_ context.Context, notificationID string) (*domain.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i := r.index(notificationID)
	if i < 0 {
		return nil, fmt.Errorf("notification not found: %w", domain.ErrNotFound)
	}
	n := cloneNotification(r.items[i])
	return &n, nil
}

func (r *NotificationRepo) SetRead(_ context.Context, notificationID string, isRead bool) (*domain.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.index(notificationID)
	if i < 0 {
		return nil, fmt.Errorf("notification not found: %w", domain.ErrNotFound)
	}
	r.items[i].IsRead = isRead
	n := cloneNotification(r.items[i])
	return &n, nil
}

func (r *NotificationRepo) index(id string) int {
	for i := range r.items {
		if r.items[i].ID == id {
			return i
		}
	}
	return -1
}

func cloneNotification(n domain.Notification) domain.Notification {
	n.Meta = maps.Clone(n.Meta)
	return n
}
