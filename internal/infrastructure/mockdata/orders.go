package mockdata

import (
	"context"
	"fmt"
	"sync"

	"github.com/nexus-dashboard/internal/domain"
)

// OrderRepo is an in-memory order table. New orders are appended.
type OrderRepo struct {
	mu    sync.RWMutex
	items []domain.Order
}

func NewOrderRepo(items []domain.Order) *OrderRepo {
	return &OrderRepo{items: append([]domain.Order(nil), items...)}
}

func (r *OrderRepo) ListByUser(_ context.Context, userID string) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Order, 0, len(r.items))
	for _, o := range r.items {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *OrderRepo) Put(_ context.Context, o *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.items {
		if existing.ID == o.ID {
			return fmt.Errorf("order %s: %w", o.ID, domain.ErrConflict)
		}
	}
	r.items = append(r.items, *o)
	return nil
}
