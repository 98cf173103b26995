package domain

import "time"

// MarketData is one quote row on the market screen.
type MarketData struct {
	Symbol        string    `json:"symbol"`
	Name          string    `json:"name"`
	Price         float64   `json:"price"`
	Change        float64   `json:"change"`
	ChangePercent float64   `json:"changePercent"`
	Volume        int64     `json:"volume"`
	Timestamp     time.Time `json:"timestamp"`
}

type Execution struct {
	ID               string    `json:"id"`
	OrderID          string    `json:"orderId"`
	Symbol           string    `json:"symbol"`
	ExecutedPrice    float64   `json:"executedPrice"`
	ExecutedQuantity int64     `json:"executedQuantity"`
	ExecutedAt       time.Time `json:"executedAt"`
}
