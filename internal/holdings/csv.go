package holdings

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/coinfolio-dev/coinfolio/internal/model"
)

// ExportHeader is the fixed column order for exported holdings CSVs.
const ExportHeader = "Symbol,Name,Price,Holdings,Value,Change24h,ChangePercent24h"

// ExportCSV serializes holdings with the fixed column order, comma
// delimiters, and \n line endings (no trailing newline). An empty set
// yields an empty string rather than a header-only file.
func ExportCSV(holdings []model.Holding) string {
	if len(holdings) == 0 {
		return ""
	}

	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	_ = cw.Write(strings.Split(ExportHeader, ","))
	for _, h := range holdings {
		_ = cw.Write([]string{
			h.Symbol,
			h.Name,
			formatAmount(h.Price),
			formatAmount(h.Quantity),
			formatAmount(h.Value),
			formatAmount(h.Change24h),
			formatAmount(h.ChangePercent24h),
		})
	}
	cw.Flush()

	return strings.TrimSuffix(buf.String(), "\n")
}

// TemplateCSV returns the fixed example dataset, independent of any store
// state. The output is stable byte-for-byte; downstream tooling diffs
// against it.
func TemplateCSV() string {
	return ExportCSV([]model.Holding{
		{Symbol: "BTC", Name: "Bitcoin", Price: 45000, Quantity: 0.5, Value: 22500, Change24h: 1250.75, ChangePercent24h: 2.85},
		{Symbol: "ETH", Name: "Ethereum", Price: 3200, Quantity: 2.5, Value: 8000, Change24h: -150.25, ChangePercent24h: -1.84},
	})
}

const (
	numExportFields  = 7
	colSymbol        = 0
	colName          = 1
	colPrice         = 2
	colQuantity      = 3
	colValue         = 4
	colChange        = 5
	colChangePercent = 6
)

// ReadCSV parses a previously exported holdings CSV. Unlike the tolerant
// import path this reader is strict; it is meant for files this program
// wrote itself. Empty input yields no holdings.
func ReadCSV(r io.Reader) ([]model.Holding, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numExportFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading holdings CSV: %w", err)
	}
	if len(records) <= 1 {
		return nil, nil
	}

	var out []model.Holding
	for i, rec := range records[1:] {
		h, err := unmarshalHolding(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		out = append(out, h)
	}
	return out, nil
}

func unmarshalHolding(record []string) (model.Holding, error) {
	nums := make([]float64, numExportFields)
	for _, col := range []int{colPrice, colQuantity, colValue, colChange, colChangePercent} {
		v, err := strconv.ParseFloat(record[col], 64)
		if err != nil {
			return model.Holding{}, fmt.Errorf("parsing %q: %w", record[col], err)
		}
		nums[col] = v
	}
	return model.Holding{
		Symbol:           record[colSymbol],
		Name:             record[colName],
		Price:            nums[colPrice],
		Quantity:         nums[colQuantity],
		Value:            nums[colValue],
		Change24h:        nums[colChange],
		ChangePercent24h: nums[colChangePercent],
	}, nil
}

// formatAmount renders a float with the fewest digits that round-trip.
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
