package normalize

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Number converts an exchange-reported numeric string to a float64,
// tolerating currency markers, thousands separators, and unit suffixes
// ("$1,234.56", "0.005 BTC"). Every rune that is not a digit, '.', or '-'
// is stripped before parsing; anything still unparseable becomes 0.
func Number(s string) float64 {
	clean := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' || r == '.' || r == '-' {
			return r
		}
		return -1
	}, s)
	if clean == "" {
		return 0
	}

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0
	}
	return d.InexactFloat64()
}
