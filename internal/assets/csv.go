package assets

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/coinfolio-dev/coinfolio/internal/model"
)

const (
	numFields = 2
	colSymbol = 0
	colName   = 1
)

// ReadAssets reads an asset catalog CSV (symbol,name with header).
func ReadAssets(r io.Reader) ([]model.Asset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading assets CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var assets []model.Asset
	for i, rec := range records[1:] {
		a, err := UnmarshalAsset(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		assets = append(assets, a)
	}
	return assets, nil
}

// WriteAssets writes an asset catalog CSV with header.
func WriteAssets(w io.Writer, assets []model.Asset) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"symbol", "name"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, a := range assets {
		if err := cw.Write(MarshalAsset(a)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalAsset converts an Asset to a CSV row.
func MarshalAsset(a model.Asset) []string {
	row := make([]string, numFields)
	row[colSymbol] = a.Symbol
	row[colName] = a.Name
	return row
}

// UnmarshalAsset converts a CSV row to an Asset.
func UnmarshalAsset(record []string) (model.Asset, error) {
	if len(record) != numFields {
		return model.Asset{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}
	if record[colSymbol] == "" {
		return model.Asset{}, fmt.Errorf("empty symbol")
	}
	return model.Asset{Symbol: record[colSymbol], Name: record[colName]}, nil
}
