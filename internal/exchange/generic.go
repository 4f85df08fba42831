package exchange

import (
	"fmt"
	"strings"

	"github.com/coinfolio-dev/coinfolio/internal/model"
	"github.com/coinfolio-dev/coinfolio/internal/normalize"
	"github.com/coinfolio-dev/coinfolio/internal/tabular"
)

// Field aliases for the generic holdings format. Keys are normalized to
// lower-case alphanumerics before lookup, so "Change 24h" and "change24h"
// are the same column.
var genericAliases = map[string][]string{
	"symbol":           {"symbol", "coin", "ticker"},
	"name":             {"name", "coinname", "cryptocurrency"},
	"price":            {"price", "currentprice", "value"},
	"holdings":         {"holdings", "amount", "quantity", "balance"},
	"value":            {"value", "totalvalue", "worth", "marketvalue"},
	"change24h":        {"change24h", "change", "dailychange"},
	"changepercent24h": {"changepercent24h", "percentchange", "changepercent"},
}

// requiredFields must all be resolvable for a generic import to proceed.
var requiredFields = []string{"symbol", "name", "price", "holdings"}

// MissingColumnsError is the fatal validation failure for the generic path:
// one or more required columns could not be resolved against the header set.
type MissingColumnsError struct {
	Missing   []string
	Available []string
}

func (e *MissingColumnsError) Error() string {
	return "missing required columns: " + strings.Join(e.Missing, ", ")
}

// Messages returns the user-facing error lines for an import result.
func (e *MissingColumnsError) Messages() []string {
	return []string{
		fmt.Sprintf("Missing required columns: %s", strings.Join(e.Missing, ", ")),
		fmt.Sprintf("Available columns: %s", strings.Join(e.Available, ", ")),
		"Expected columns: Symbol, Name, Price, Holdings (Value, Change24h, ChangePercent24h are optional)",
	}
}

// AdaptGeneric builds Holdings directly from rows of an unrecognized format.
// Unlike the exchange adapters, dropped rows are reported: rows missing a
// symbol or name, and rows with non-positive price or holdings, each add a
// "Row N" entry to the returned error list.
func AdaptGeneric(t *tabular.Table) ([]model.Holding, []string, error) {
	available := make([]string, 0, len(t.Headers))
	for _, h := range t.Headers {
		available = append(available, normalizeKey(h))
	}

	var missing []string
	for _, field := range requiredFields {
		if !fuzzyContains(available, field) {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return nil, nil, &MissingColumnsError{Missing: missing, Available: available}
	}

	var holdings []model.Holding
	var errs []string
	for i, row := range t.Rows {
		rowNum := i + 2 // 1-based, after the header line
		fields := make(map[string]string, len(row))
		for k, v := range row {
			fields[normalizeKey(k)] = v
		}

		symbol := lookupGeneric(fields, genericAliases["symbol"])
		name := lookupGeneric(fields, genericAliases["name"])
		if symbol == "" || name == "" {
			errs = append(errs, fmt.Sprintf("Row %d: Missing symbol or name", rowNum))
			continue
		}

		priceStr := lookupGeneric(fields, genericAliases["price"])
		holdingsStr := lookupGeneric(fields, genericAliases["holdings"])
		price := normalize.Number(priceStr)
		qty := normalize.Number(holdingsStr)
		if price <= 0 || qty <= 0 {
			errs = append(errs, fmt.Sprintf("Row %d: Invalid price (%s) or holdings (%s) value", rowNum, priceStr, holdingsStr))
			continue
		}

		value := normalize.Number(lookupGeneric(fields, genericAliases["value"]))
		if value <= 0 {
			value = price * qty
		}

		holdings = append(holdings, model.Holding{
			Symbol:           strings.ToUpper(symbol),
			Name:             name,
			Price:            price,
			Quantity:         qty,
			Value:            value,
			Change24h:        normalize.Number(lookupGeneric(fields, genericAliases["change24h"])),
			ChangePercent24h: normalize.Number(lookupGeneric(fields, genericAliases["changepercent24h"])),
		})
	}

	return holdings, errs, nil
}

// normalizeKey lowers a header and strips everything outside [a-z0-9].
func normalizeKey(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, strings.ToLower(s))
}

// lookupGeneric resolves a value by exact normalized key first, then by
// substring containment in either direction.
func lookupGeneric(fields map[string]string, aliases []string) string {
	for _, alias := range aliases {
		if v, ok := fields[alias]; ok && v != "" {
			return strings.TrimSpace(v)
		}
		for k, v := range fields {
			if v == "" {
				continue
			}
			if strings.Contains(k, alias) || strings.Contains(alias, k) {
				return strings.TrimSpace(v)
			}
		}
	}
	return ""
}
