package holdings

import (
	"time"

	"github.com/coinfolio-dev/coinfolio/internal/assets"
	"github.com/coinfolio-dev/coinfolio/internal/model"
	"github.com/coinfolio-dev/coinfolio/internal/normalize"
)

// position accumulates one symbol group during aggregation.
type position struct {
	quantity  float64
	price     float64
	timestamp string
}

// Aggregate nets a list of trades into per-asset holdings. Trades are
// grouped by canonical base symbol; buys add quantity, sells subtract, in
// input order. The displayed price is taken from the most recent trade by
// timestamp, not a weighted average cost. Groups that net out to zero or
// short are dropped. Display names come from the catalog when available.
func Aggregate(trades []model.Trade, catalog *assets.Catalog) []model.Holding {
	positions := make(map[string]*position)
	var order []string

	for _, t := range trades {
		symbol := normalize.BaseSymbol(t.Symbol)
		if symbol == "" {
			continue
		}

		p, ok := positions[symbol]
		if !ok {
			p = &position{price: t.Price, timestamp: t.Timestamp}
			positions[symbol] = p
			order = append(order, symbol)
		} else if newerOrEqual(t.Timestamp, p.timestamp) {
			p.price = t.Price
			p.timestamp = t.Timestamp
		}

		if t.Side == model.SideBuy {
			p.quantity += t.Quantity
		} else {
			p.quantity -= t.Quantity
		}
	}

	var out []model.Holding
	for _, symbol := range order {
		p := positions[symbol]
		if p.quantity <= 0 {
			continue
		}
		name := symbol
		if catalog != nil {
			name = catalog.Name(symbol)
		}
		out = append(out, model.Holding{
			Symbol:   symbol,
			Name:     name,
			Price:    p.price,
			Quantity: p.quantity,
			Value:    p.quantity * p.price,
		})
	}
	return out
}

// tradeTimeLayouts covers the timestamp formats the known exporters emit.
var tradeTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"01/02/2006 15:04:05",
	"01/02/2006",
}

// newerOrEqual reports whether candidate is at least as recent as current.
// Unparseable timestamps fall back to lexicographic comparison, which is
// correct for the ISO-style formats the exporters use; ties resolve in
// favor of the candidate so later input order wins.
func newerOrEqual(candidate, current string) bool {
	ct, okC := parseTradeTime(candidate)
	bt, okB := parseTradeTime(current)
	if okC && okB {
		return !ct.Before(bt)
	}
	return candidate >= current
}

func parseTradeTime(s string) (time.Time, bool) {
	for _, layout := range tradeTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
