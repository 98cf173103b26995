package domain

import "time"

// NotificationType is the closed set of notification kinds shown in the drawer.
type NotificationType string

const (
	NotificationOrderFilled    NotificationType = "order_filled"
	NotificationPriceThreshold NotificationType = "price_threshold"
	NotificationSystem         NotificationType = "system"
)

// Valid reports whether t is one of the known notification kinds.
func (t NotificationType) Valid() bool {
	switch t {
	case NotificationOrderFilled, NotificationPriceThreshold, NotificationSystem:
		return true
	}
	return false
}

type Notification struct {
	ID      string           `json:"id" dynamodbav:"id"`
	UserID  string           `json:"userId" dynamodbav:"user_id"`
	Type    NotificationType `json:"type" dynamodbav:"type"`
	Message string           `json:"message" dynamodbav:"message"`
	Meta    map[string]any   `json:"meta" dynamodbav:"meta"`
	SentAt  time.Time        `json:"sentAt" dynamodbav:"sent_at"`
	IsRead  bool             `json:"isRead" dynamodbav:"is_read"`
}

// NotificationReadUpdate is the PATCH /notifications/{id} body.
type NotificationReadUpdate struct {
	IsRead *bool `json:"isRead" validate:"required"`
}
