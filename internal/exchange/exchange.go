package exchange

import (
	"strings"

	"github.com/coinfolio-dev/coinfolio/internal/model"
	"github.com/coinfolio-dev/coinfolio/internal/normalize"
	"github.com/coinfolio-dev/coinfolio/internal/tabular"
)

// Unknown is the tag routed to the generic holdings adapter.
const Unknown = "unknown"

// fieldAliases lists, per logical Trade field, the column names an exporter
// has used across versions, in priority order. Names are matched
// case-insensitively after trimming.
type fieldAliases struct {
	symbol    []string
	side      []string
	quantity  []string
	price     []string
	fee       []string
	timestamp []string
}

// Adapter converts rows of one known export format into Trades.
type Adapter struct {
	exchange string
	aliases  fieldAliases
}

// adapters is the closed set of known trade-based formats, keyed by
// classifier tag.
var adapters = map[string]*Adapter{
	"binance":     binanceAdapter,
	"coinbase":    coinbaseAdapter,
	"coinbasepro": coinbaseProAdapter,
	"kraken":      krakenAdapter,
	"kucoin":      kucoinAdapter,
}

// ForTag returns the trade adapter for an exchange tag. The Unknown tag (or
// any unregistered tag) has no trade adapter; callers route it to the
// generic holdings path.
func ForTag(tag string) (*Adapter, bool) {
	a, ok := adapters[strings.ToLower(tag)]
	return a, ok
}

// Exchange returns the adapter's exchange tag.
func (a *Adapter) Exchange() string { return a.exchange }

// Adapt extracts Trades from parsed rows. Rows whose quantity or price
// resolve to a non-positive number are dropped without an error entry; the
// exporters emit deposit/withdrawal and dust rows that are not trades.
func (a *Adapter) Adapt(rows []tabular.Row) []model.Trade {
	var trades []model.Trade
	for _, row := range rows {
		fields := foldKeys(row)

		qty := normalize.Number(resolve(fields, a.aliases.quantity))
		price := normalize.Number(resolve(fields, a.aliases.price))
		if qty <= 0 || price <= 0 {
			continue
		}

		trades = append(trades, model.Trade{
			Symbol:    resolve(fields, a.aliases.symbol),
			Side:      model.ParseSide(resolve(fields, a.aliases.side)),
			Quantity:  qty,
			Price:     price,
			Fee:       normalize.Number(resolve(fields, a.aliases.fee)),
			Timestamp: resolve(fields, a.aliases.timestamp),
			Exchange:  a.exchange,
		})
	}
	return trades
}

// foldKeys re-keys a row by lower-cased trimmed header name.
func foldKeys(row tabular.Row) map[string]string {
	out := make(map[string]string, len(row))
	for k, v := range row {
		out[strings.ToLower(strings.TrimSpace(k))] = v
	}
	return out
}

// resolve returns the value of the first alias present in the row.
func resolve(fields map[string]string, aliases []string) string {
	for _, alias := range aliases {
		if v, ok := fields[alias]; ok && v != "" {
			return v
		}
	}
	return ""
}
