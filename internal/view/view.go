// Package view computes the derived, display-ready views of the dashboard
// screens: portfolio totals, top movers, sorted and filtered tables.
//
// All functions are pure. Inputs are never modified; sorted results are new slices.
package view

import (
	"cmp"
	"slices"
	"strings"

	"github.com/nexus-dashboard/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Direction is a sort direction.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// MoverDirection selects gainers or losers.
type MoverDirection string

const (
	Gain MoverDirection = "gain"
	Loss MoverDirection = "loss"
)

// OrderSortKey is a sortable column of the orders table.
type OrderSortKey string

const (
	SortByDate   OrderSortKey = "date"
	SortByStatus OrderSortKey = "status"
	SortByAmount OrderSortKey = "amount"
)

// MarketSortKey is a sortable column of the market table.
type MarketSortKey string

const (
	SortBySymbol        MarketSortKey = "symbol"
	SortByPrice         MarketSortKey = "price"
	SortByChangePercent MarketSortKey = "changePercent"
	SortByVolume        MarketSortKey = "volume"
)

// Totals is the portfolio summary card.
type Totals struct {
	TotalValue float64 `json:"totalValue"`
	TotalPnl   float64 `json:"totalPnl"`
}

// AggregatePortfolio sums current value and unrealized P&L across holdings.
func AggregatePortfolio(items []domain.PortfolioItem) Totals {
	value, pnl := decimal.Zero, decimal.Zero
	for _, it := range items {
		value = value.Add(decimal.NewFromFloat(it.CurrentValue))
		pnl = pnl.Add(decimal.NewFromFloat(it.UnrealizedPnl))
	}
	return Totals{TotalValue: value.InexactFloat64(), TotalPnl: pnl.InexactFloat64()}
}

// RankMovers keeps rows whose change has the requested sign, orders them by
// magnitude of the move (largest first) and truncates to limit. Zero change
// is neither a gain nor a loss. A limit of zero or less returns no rows.
func RankMovers(data []domain.MarketData, dir MoverDirection, limit int) []domain.MarketData {
	out := make([]domain.MarketData, 0, len(data))
	for _, d := range data {
		if (dir == Gain && d.ChangePercent > 0) || (dir == Loss && d.ChangePercent < 0) {
			out = append(out, d)
		}
	}
	slices.SortStableFunc(out, func(a, b domain.MarketData) int {
		if dir == Gain {
			return cmp.Compare(b.ChangePercent, a.ChangePercent)
		}
		return cmp.Compare(a.ChangePercent, b.ChangePercent)
	})
	if limit < 0 {
		limit = 0
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// SortOrders returns orders sorted by key. Equal keys keep their input order
// in both directions. An unknown key returns the orders in input order.
func SortOrders(orders []domain.Order, key OrderSortKey, dir Direction) []domain.Order {
	out := slices.Clone(orders)
	var less func(a, b domain.Order) int
	switch key {
	case SortByDate:
		less = func(a, b domain.Order) int { return a.PlacedAt.Compare(b.PlacedAt) }
	case SortByStatus:
		less = func(a, b domain.Order) int { return strings.Compare(string(a.Status), string(b.Status)) }
	case SortByAmount:
		less = func(a, b domain.Order) int { return a.Amount().Cmp(b.Amount()) }
	default:
		return out
	}
	slices.SortStableFunc(out, directed(less, dir))
	return out
}

// FilterAndSortMarket keeps rows whose symbol or name contains search
// (case-insensitive, whitespace kept as typed) and sorts them by key. Symbols are compared with
// English collation rules; the other columns numerically.
func FilterAndSortMarket(data []domain.MarketData, search string, key MarketSortKey, dir Direction) []domain.MarketData {
	needle := strings.ToLower(search)
	out := make([]domain.MarketData, 0, len(data))
	for _, d := range data {
		if needle == "" ||
			strings.Contains(strings.ToLower(d.Symbol), needle) ||
			strings.Contains(strings.ToLower(d.Name), needle) {
			out = append(out, d)
		}
	}

	var less func(a, b domain.MarketData) int
	switch key {
	case SortBySymbol:
		// collate.Collator keeps scratch buffers, so each call gets its own.
		c := collate.New(language.English, collate.IgnoreCase)
		less = func(a, b domain.MarketData) int { return c.CompareString(a.Symbol, b.Symbol) }
	case SortByPrice:
		less = func(a, b domain.MarketData) int { return cmp.Compare(a.Price, b.Price) }
	case SortByChangePercent:
		less = func(a, b domain.MarketData) int { return cmp.Compare(a.ChangePercent, b.ChangePercent) }
	case SortByVolume:
		less = func(a, b domain.MarketData) int { return cmp.Compare(a.Volume, b.Volume) }
	default:
		return out
	}
	slices.SortStableFunc(out, directed(less, dir))
	return out
}

// CanEdit reports whether the order may still be modified.
func CanEdit(o domain.Order) bool { return o.Status == domain.OrderPending }

// CanCancel reports whether the order may still be cancelled.
func CanCancel(o domain.Order) bool { return o.Status == domain.OrderPending }

// ToggleSortDirection is the column-header click rule: clicking the active
// column flips its direction, clicking another column starts descending.
func ToggleSortDirection[K comparable](active K, dir Direction, clicked K) (K, Direction) {
	if clicked != active {
		return clicked, Desc
	}
	if dir == Asc {
		return active, Desc
	}
	return active, Asc
}

func directed[T any](less func(a, b T) int, dir Direction) func(a, b T) int {
	if dir == Desc {
		return func(a, b T) int { return less(b, a) }
	}
	return less
}
