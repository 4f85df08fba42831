package holdings

import "github.com/coinfolio-dev/coinfolio/internal/model"

// Summary holds portfolio-level totals derived from a holdings snapshot.
type Summary struct {
	TotalValue            float64 `json:"totalValue"`
	TotalChange24h        float64 `json:"totalChange24h"`
	TotalChangePercent24h float64 `json:"totalChangePercent24h"`
}

// Summarize computes portfolio totals. The percent change is the total 24h
// change relative to total value, zero for an empty or worthless portfolio.
func Summarize(holdings []model.Holding) Summary {
	var s Summary
	for _, h := range holdings {
		s.TotalValue += h.Value
		s.TotalChange24h += h.Change24h
	}
	if s.TotalValue > 0 {
		s.TotalChangePercent24h = s.TotalChange24h / s.TotalValue * 100
	}
	return s
}
