package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/nexus-dashboard/internal/domain"
)

// ListNotifications fetches the current user's notifications in source order.
func (c *Client) ListNotifications(ctx context.Context) ([]domain.Notification, error) {
	var out []domain.Notification
	if err := c.get(ctx, "/notifications", &out); err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return out, nil
}

// SetNotificationRead sets the read flag of one notification. It is never retried.
func (c *Client) SetNotificationRead(ctx context.Context, id string, isRead bool) error {
	payload := domain.NotificationReadUpdate{IsRead: &isRead}
	if err := c.send(ctx, http.MethodPatch, "/notifications/"+url.PathEscape(id), payload, nil); err != nil {
		return fmt.Errorf("update notification %s: %w", id, err)
	}
	return nil
}
