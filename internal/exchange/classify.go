package exchange

import (
	"math"
	"strings"
)

// override is a short-circuit predicate checked before signature scoring.
// It fires when every token in exact is a header and every token in partial
// is contained in some header.
type override struct {
	exchange string
	exact    []string
	partial  []string
}

// signature is the characteristic header set of one export format.
type signature struct {
	exchange string
	tokens   []string
}

// matchThreshold is the fraction of signature tokens that must match.
const matchThreshold = 0.6

// overrides run first, in order. Kraken and KuCoin exports share too many
// generic column names with other formats for scoring alone to be reliable.
var overrides = []override{
	{exchange: "kraken", exact: []string{"pair", "time", "type"}},
	{exchange: "kucoin", exact: []string{"symbol", "direction"}, partial: []string{"deal"}},
}

// signatures is scored in order; the first one clearing its threshold wins.
var signatures = []signature{
	{exchange: "binance", tokens: []string{"date(utc)", "pair", "side", "price", "executed", "amount", "fee"}},
	{exchange: "coinbasepro", tokens: []string{"portfolio", "trade id", "product", "side", "created at", "size", "price", "fee"}},
	{exchange: "coinbase", tokens: []string{"timestamp", "transaction type", "asset", "quantity transacted", "spot price at transaction", "subtotal", "total", "fees"}},
	{exchange: "kraken", tokens: []string{"txid", "pair", "time", "type", "ordertype", "price", "cost", "fee", "vol"}},
	{exchange: "kucoin", tokens: []string{"order id", "symbol", "deal price", "deal value", "amount", "direction", "time"}},
}

// Classify maps a header row to an exchange tag, or Unknown when no known
// format matches. Matching is case-insensitive.
func Classify(headers []string) string {
	folded := make([]string, 0, len(headers))
	for _, h := range headers {
		folded = append(folded, strings.ToLower(strings.TrimSpace(h)))
	}

	for _, o := range overrides {
		if o.matches(folded) {
			return o.exchange
		}
	}

	for _, sig := range signatures {
		matched := 0
		for _, token := range sig.tokens {
			if fuzzyContains(folded, token) {
				matched++
			}
		}
		need := int(math.Ceil(matchThreshold * float64(len(sig.tokens))))
		if matched >= need {
			return sig.exchange
		}
	}

	return Unknown
}

func (o override) matches(headers []string) bool {
	for _, token := range o.exact {
		if !containsExact(headers, token) {
			return false
		}
	}
	for _, token := range o.partial {
		found := false
		for _, h := range headers {
			if strings.Contains(h, token) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func containsExact(headers []string, token string) bool {
	for _, h := range headers {
		if h == token {
			return true
		}
	}
	return false
}

// fuzzyContains reports whether the token matches any header by substring
// containment in either direction.
func fuzzyContains(headers []string, token string) bool {
	for _, h := range headers {
		if h == "" {
			continue
		}
		if strings.Contains(h, token) || strings.Contains(token, h) {
			return true
		}
	}
	return false
}
