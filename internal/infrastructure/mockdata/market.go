package mockdata

import (
	"context"
	"slices"

	"github.com/nexus-dashboard/internal/domain"
)

// MarketRepo serves the read-only collections. They never change after load.
type MarketRepo struct {
	portfolio  []domain.PortfolioItem
	marketData []domain.MarketData
	executions []domain.Execution
}

func NewMarketRepo(ds *Dataset) *MarketRepo {
	return &MarketRepo{
		portfolio:  slices.Clone(ds.Portfolio),
		marketData: slices.Clone(ds.MarketData),
		executions: slices.Clone(ds.Executions),
	}
}

func (r *MarketRepo) PortfolioByUser(_ context.Context, userID string) ([]domain.PortfolioItem, error) {
	out := make([]domain.PortfolioItem, 0, len(r.portfolio))
	for _, p := range r.portfolio {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *MarketRepo) MarketData(context.Context) ([]domain.MarketData, error) {
	return slices.Clone(r.marketData), nil
}

func (r *MarketRepo) Executions(context.Context) ([]domain.Execution, error) {
	return slices.Clone(r.executions), nil
}
