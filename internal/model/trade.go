package model

import "strings"

// Side is the direction of a trade.
type Side string

const (
	SideBuy  Side = "buy"
	SideSell Side = "sell"
)

// ParseSide normalizes an exchange-reported direction. Only an exact
// case-insensitive "BUY" maps to SideBuy; every other value, including
// empty or garbled input, maps to SideSell. This mirrors the behavior of
// the export formats we ingest, where anything that is not a buy reduces
// the position.
func ParseSide(s string) Side {
	if strings.EqualFold(strings.TrimSpace(s), "BUY") {
		return SideBuy
	}
	return SideSell
}

// Trade is a single buy/sell event extracted from an exchange export row.
// Symbol is the raw trading pair as reported (e.g. "BTCUSDT"); it is not
// canonicalized until aggregation.
type Trade struct {
	Symbol    string
	Side      Side
	Quantity  float64
	Price     float64
	Fee       float64
	Timestamp string // raw exchange timestamp, format varies per exporter
	Exchange  string // source exchange tag
}
