package view

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/nexus-dashboard/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	dashboardMovers       = 3
	dashboardRecentOrders = 5
)

// Summary is everything the dashboard screen shows.
type Summary struct {
	Totals
	PnlPercent    float64             `json:"pnlPercent"`
	Positions     int                 `json:"positions"`
	TotalOrders   int                 `json:"totalOrders"`
	PendingOrders int                 `json:"pendingOrders"`
	StocksTracked int                 `json:"stocksTracked"`
	TopGainers    []domain.MarketData `json:"topGainers"`
	TopLosers     []domain.MarketData `json:"topLosers"`
	RecentOrders  []domain.Order      `json:"recentOrders"`
}

// Dashboard computes the dashboard summary from the three collections.
func Dashboard(portfolio []domain.PortfolioItem, market []domain.MarketData, orders []domain.Order) Summary {
	totals := AggregatePortfolio(portfolio)
	return Summary{
		Totals:        totals,
		PnlPercent:    PnlPercent(totals),
		Positions:     len(portfolio),
		TotalOrders:   len(orders),
		PendingOrders: CountByStatus(orders, domain.OrderPending),
		StocksTracked: len(market),
		TopGainers:    RankMovers(market, Gain, dashboardMovers),
		TopLosers:     RankMovers(market, Loss, dashboardMovers),
		RecentOrders:  RecentOrders(orders, dashboardRecentOrders),
	}
}

// PnlPercent is the unrealized return on cost basis, in percent.
// Cost basis is value minus P&L; a zero basis yields 0.
func PnlPercent(t Totals) float64 {
	pnl := decimal.NewFromFloat(t.TotalPnl)
	basis := decimal.NewFromFloat(t.TotalValue).Sub(pnl)
	if basis.IsZero() {
		return 0
	}
	return pnl.Div(basis).Mul(decimal.NewFromInt(100)).InexactFloat64()
}

// CountByStatus counts orders in the given status.
func CountByStatus(orders []domain.Order, status domain.OrderStatus) int {
	n := 0
	for _, o := range orders {
		if o.Status == status {
			n++
		}
	}
	return n
}

// RecentOrders returns the first n orders in the order the backend served them.
func RecentOrders(orders []domain.Order, n int) []domain.Order {
	if n < 0 {
		n = 0
	}
	if len(orders) < n {
		n = len(orders)
	}
	out := make([]domain.Order, n)
	copy(out, orders[:n])
	return out
}

// OrderTotal is the value of an order ticket: price * quantity.
func OrderTotal(price float64, quantity int64) float64 {
	return decimal.NewFromFloat(price).Mul(decimal.NewFromInt(quantity)).InexactFloat64()
}

// FormatCurrency renders value in the given ISO 4217 currency, e.g. "₹2,450.00".
// Unknown codes fall back to "<value> <code>".
func FormatCurrency(value float64, code string) string {
	if money.GetCurrency(code) == nil {
		return fmt.Sprintf("%.2f %s", value, code)
	}
	return money.NewFromFloat(value, code).Display()
}

// FormatSignedCurrency prefixes non-negative values with "+".
func FormatSignedCurrency(value float64, code string) string {
	if value >= 0 {
		return "+" + FormatCurrency(value, code)
	}
	return FormatCurrency(value, code)
}

// FormatPercent renders a percentage with two decimals, e.g. "3.25%".
func FormatPercent(v float64) string {
	return fmt.Sprintf("%.2f%%", v)
}
