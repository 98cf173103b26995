// Package market serves the read-only portfolio, quote and execution collections.
package market

import (
	"context"

	"github.com/nexus-dashboard/internal/domain"
)

type Service interface {
	Portfolio(ctx context.Context, userID string) ([]domain.PortfolioItem, error)
	MarketData(ctx context.Context) ([]domain.MarketData, error)
	Executions(ctx context.Context) ([]domain.Execution, error)
}

type marketStore interface {
	PortfolioByUser(ctx context.Context, userID string) ([]domain.PortfolioItem, error)
	MarketData(ctx context.Context) ([]domain.MarketData, error)
	Executions(ctx context.Context) ([]domain.Execution, error)
}

type service struct {
	repo marketStore
}

func NewService(repo marketStore) Service {
	return &service{repo: repo}
}

func (s *service) Portfolio(ctx context.Context, userID string) ([]domain.PortfolioItem, error) {
	return s.repo.PortfolioByUser(ctx, userID)
}

func (s *service) MarketData(ctx context.Context) ([]domain.MarketData, error) {
	return s.repo.MarketData(ctx)
}

func (s *service) Executions(ctx context.Context) ([]domain.Execution, error) {
	return s.repo.Executions(ctx)
}
