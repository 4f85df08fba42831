package normalize

import "strings"

// separators split a trading pair into base and quote, in preference order.
var separators = []string{"-", "_", "/"}

// quoteSuffixes are quote currencies stripped from unseparated pairs:
// stablecoins before fiat before majors, so "BTCUSDT" resolves to BTC
// rather than matching a shorter fiat suffix first.
var quoteSuffixes = []string{
	"USDT", "USDC", "BUSD",
	"EUR", "USD", "GBP", "JPY",
	"BTC", "ETH", "BNB",
}

// BaseSymbol reduces a trading-pair string to its upper-case base-asset
// ticker: "btc-usd" -> "BTC", "ETH_EUR" -> "ETH", "SOLUSDT" -> "SOL".
// Idempotent; strings that are not recognizable pairs come back upper-cased
// and otherwise unchanged.
func BaseSymbol(pair string) string {
	s := strings.ToUpper(strings.TrimSpace(pair))

	// Split at the earliest separator so the result can never contain
	// another separator, keeping the function idempotent.
	cut := -1
	for _, sep := range separators {
		if i := strings.Index(s, sep); i >= 0 && (cut < 0 || i < cut) {
			cut = i
		}
	}
	if cut >= 0 {
		return s[:cut]
	}

	// Strip quote suffixes until none apply, so repeated application is a
	// no-op even for degenerate inputs like "BTCUSDTUSDT".
	for stripped := true; stripped; {
		stripped = false
		for _, suffix := range quoteSuffixes {
			if strings.HasSuffix(s, suffix) && len(s) > len(suffix) {
				s = strings.TrimSuffix(s, suffix)
				stripped = true
				break
			}
		}
	}

	return s
}
