// Package mockdata serves the dashboard collections from a static JSON file
// held in memory, the way a json-server mock backend does.
package mockdata

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/nexus-dashboard/internal/domain"
)

// Dataset is the content of mock-data.json.
type Dataset struct {
	Portfolio     []domain.PortfolioItem `json:"portfolio"`
	MarketData    []domain.MarketData    `json:"marketdata"`
	Orders        []domain.Order         `json:"orders"`
	Executions    []domain.Execution     `json:"executions"`
	Notifications []domain.Notification  `json:"notifications"`
}

// Decode reads a dataset and rejects duplicate notification or order ids.
func Decode(r io.Reader) (*Dataset, error) {
	var ds Dataset
	if err := json.NewDecoder(r).Decode(&ds); err != nil {
		return nil, fmt.Errorf("decode mock data: %w", err)
	}
	if err := ds.validate(); err != nil {
		return nil, err
	}
	return &ds, nil
}

// LoadFile decodes the dataset at path.
func LoadFile(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open mock data: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

func (ds *Dataset) validate() error {
	seen := make(map[string]struct{}, len(ds.Notifications))
	for _, n := range ds.Notifications {
		if _, dup := seen[n.ID]; dup {
			return fmt.Errorf("mock data: duplicate notification id %q", n.ID)
		}
		if !n.Type.Valid() {
			return fmt.Errorf("mock data: notification %q has unknown type %q", n.ID, n.Type)
		}
		seen[n.ID] = struct{}{}
	}
	seen = make(map[string]struct{}, len(ds.Orders))
	for _, o := range ds.Orders {
		if _, dup := seen[o.ID]; dup {
			return fmt.Errorf("mock data: duplicate order id %q", o.ID)
		}
		seen[o.ID] = struct{}{}
	}
	return nil
}
