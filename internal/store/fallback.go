package store

import (
	"time"

	"github.com/nexus-dashboard/internal/domain"
)

// FallbackNotifications returns the seed set shown when the notification
// service is unreachable and nothing has been loaded yet. A fresh copy is
// returned on every call.
func FallbackNotifications() []domain.Notification {
	return []domain.Notification{
		{
			ID:      "1",
			UserID:  "1",
			Type:    domain.NotificationOrderFilled,
			Message: "Your RELIANCE buy order has been filled at ₹2450.00",
			Meta:    map[string]any{"orderId": "1", "symbol": "RELIANCE", "price": 2450.0},
			SentAt:  mustTime("2024-08-01T10:32:00Z"),
			IsRead:  false,
		},
		{
			ID:      "2",
			UserID:  "1",
			Type:    domain.NotificationPriceThreshold,
			Message: "INFY has reached your target price of ₹1550.00",
			Meta:    map[string]any{"symbol": "INFY", "targetPrice": 1550.0, "currentPrice": 1545.0},
			SentAt:  mustTime("2024-08-10T12:30:00Z"),
			IsRead:  true,
		},
		{
			ID:      "3",
			UserID:  "1",
			Type:    domain.NotificationSystem,
			Message: "Welcome to Nexus Trading Platform!",
			Meta:    map[string]any{},
			SentAt:  mustTime("2024-08-02T00:00:00Z"),
			IsRead:  true,
		},
		{
			ID:      "4",
			UserID:  "1",
			Type:    domain.NotificationOrderFilled,
			Message: "Your TCS buy order has been filled at ₹3550.00",
			Meta:    map[string]any{"orderId": "3", "symbol": "TCS", "price": 3550.0},
			SentAt:  mustTime("2024-08-12T09:16:00Z"),
			IsRead:  false,
		},
		{
			ID:      "5",
			UserID:  "1",
			Type:    domain.NotificationPriceThreshold,
			Message: "HDFCBANK has dropped below your alert price of ₹1500.00",
			Meta:    map[string]any{"symbol": "HDFCBANK", "targetPrice": 1500.0, "currentPrice": 1520.0},
			SentAt:  mustTime("2024-08-15T14:20:00Z"),
			IsRead:  false,
		},
		{
			ID:      "6",
			UserID:  "1",
			Type:    domain.NotificationSystem,
			Message: "Market hours extended today due to high volatility",
			Meta:    map[string]any{},
			SentAt:  mustTime("2024-08-20T09:00:00Z"),
			IsRead:  true,
		},
	}
}

func mustTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic("store: bad fallback timestamp " + s)
	}
	return t
}
