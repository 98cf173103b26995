package domain

type PortfolioItem struct {
	ID            string  `json:"id"`
	UserID        string  `json:"userId"`
	Symbol        string  `json:"symbol"`
	Quantity      int64   `json:"quantity"`
	AvgBuyPrice   float64 `json:"avgBuyPrice"`
	CurrentPrice  float64 `json:"currentPrice"`
	CurrentValue  float64 `json:"currentValue"`
	UnrealizedPnl float64 `json:"unrealizedPnl"`
}
