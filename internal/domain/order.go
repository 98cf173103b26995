package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderSide string

const (
	OrderBuy  OrderSide = "buy"
	OrderSell OrderSide = "sell"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderExecuted  OrderStatus = "executed"
	OrderCancelled OrderStatus = "cancelled"
)

type Order struct {
	ID       string      `json:"id" dynamodbav:"id"`
	UserID   string      `json:"userId" dynamodbav:"user_id"`
	Symbol   string      `json:"symbol" dynamodbav:"symbol"`
	Type     OrderSide   `json:"type" dynamodbav:"type"`
	Quantity int64       `json:"quantity" dynamodbav:"quantity"`
	Price    float64     `json:"price" dynamodbav:"price"`
	Status   OrderStatus `json:"status" dynamodbav:"status"`
	PlacedAt time.Time   `json:"placedAt" dynamodbav:"placed_at"`
	FilledAt *time.Time  `json:"filledAt" dynamodbav:"filled_at"`
}

// Amount is quantity * price, computed exactly.
func (o Order) Amount() decimal.Decimal {
	return decimal.NewFromFloat(o.Price).Mul(decimal.NewFromInt(o.Quantity))
}

// CreateOrderRequest is the POST /orders payload. The server assigns id and userId.
type CreateOrderRequest struct {
	Symbol   string      `json:"symbol" validate:"required,max=20"`
	Type     OrderSide   `json:"type" validate:"required,oneof=buy sell"`
	Quantity int64       `json:"quantity" validate:"required,gte=1"`
	Price    float64     `json:"price" validate:"required,gt=0"`
	Status   OrderStatus `json:"status" validate:"omitempty,oneof=pending executed cancelled"`
	PlacedAt *time.Time  `json:"placedAt"`
	FilledAt *time.Time  `json:"filledAt"`
}
