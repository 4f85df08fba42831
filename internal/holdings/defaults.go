package holdings

import (
	"encoding/json"
	"os"

	"github.com/coinfolio-dev/coinfolio/internal/model"
)

// LoadDefaults reads a default-holdings JSON dataset from disk. A missing
// or unreadable file falls back to a small built-in dataset so the rest of
// the system always has something to display.
func LoadDefaults(path string) []model.Holding {
	data, err := os.ReadFile(path)
	if err != nil {
		return FallbackHoldings()
	}

	var out []model.Holding
	if err := json.Unmarshal(data, &out); err != nil || len(out) == 0 {
		return FallbackHoldings()
	}
	return out
}

// FallbackHoldings is the built-in default dataset.
func FallbackHoldings() []model.Holding {
	return []model.Holding{
		{Symbol: "BTC", Name: "Bitcoin", Price: 67500.0, Quantity: 0.6543, Value: 44166.25, Change24h: 1234.56, ChangePercent24h: 1.86},
		{Symbol: "ETH", Name: "Ethereum", Price: 3420.5, Quantity: 5.2341, Value: 17904.73, Change24h: 567.89, ChangePercent24h: 3.28},
	}
}
