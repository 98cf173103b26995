package api

import (
	"context"
	"fmt"

	"github.com/nexus-dashboard/internal/domain"
)

// GetPortfolio fetches the current holdings.
func (c *Client) GetPortfolio(ctx context.Context) ([]domain.PortfolioItem, error) {
	var out []domain.PortfolioItem
	if err := c.get(ctx, "/portfolio", &out); err != nil {
		return nil, fmt.Errorf("get portfolio: %w", err)
	}
	return out, nil
}

// GetMarketData fetches the quote table.
func (c *Client) GetMarketData(ctx context.Context) ([]domain.MarketData, error) {
	var out []domain.MarketData
	if err := c.get(ctx, "/marketdata", &out); err != nil {
		return nil, fmt.Errorf("get market data: %w", err)
	}
	return out, nil
}

// GetExecutions fetches fills for the current user's orders.
func (c *Client) GetExecutions(ctx context.Context) ([]domain.Execution, error) {
	var out []domain.Execution
	if err := c.get(ctx, "/executions", &out); err != nil {
		return nil, fmt.Errorf("get executions: %w", err)
	}
	return out, nil
}
