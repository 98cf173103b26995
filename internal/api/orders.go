package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/nexus-dashboard/internal/domain"
)

// GetOrders fetches the order history.
func (c *Client) GetOrders(ctx context.Context) ([]domain.Order, error) {
	var out []domain.Order
	if err := c.get(ctx, "/orders", &out); err != nil {
		return nil, fmt.Errorf("get orders: %w", err)
	}
	return out, nil
}

// CreateOrder places an order. The server assigns its id and userId.
func (c *Client) CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (*domain.Order, error) {
	var out domain.Order
	if err := c.send(ctx, http.MethodPost, "/orders", req, &out); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	return &out, nil
}
