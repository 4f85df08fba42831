package model

// Holding is a net per-asset position with current price and valuation.
type Holding struct {
	Symbol           string  `json:"symbol"` // canonical upper-case ticker
	Name             string  `json:"name"`
	Price            float64 `json:"price"`
	Quantity         float64 `json:"holdings"`
	Value            float64 `json:"value"` // price * quantity
	Change24h        float64 `json:"change24h"`
	ChangePercent24h float64 `json:"changePercent24h"`
}
