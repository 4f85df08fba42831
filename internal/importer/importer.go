package importer

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/coinfolio-dev/coinfolio/internal/assets"
	"github.com/coinfolio-dev/coinfolio/internal/exchange"
	"github.com/coinfolio-dev/coinfolio/internal/holdings"
	"github.com/coinfolio-dev/coinfolio/internal/model"
	"github.com/coinfolio-dev/coinfolio/internal/tabular"
)

// Importer sequences one import batch: parse, classify, adapt, aggregate,
// merge, commit. It owns the only write path into the holdings store; the
// store's Apply serializes the read-merge-write so at most one commit is in
// flight at a time.
type Importer struct {
	store   *holdings.Store
	catalog *assets.Catalog
	logger  *zap.Logger
}

// New creates an Importer. A nil catalog disables display-name resolution;
// a nil logger disables logging.
func New(store *holdings.Store, catalog *assets.Catalog, logger *zap.Logger) *Importer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Importer{store: store, catalog: catalog, logger: logger}
}

// Store returns the holdings store this importer commits to.
func (im *Importer) Store() *holdings.Store {
	return im.store
}

// Import runs one batch against the store. Row-level problems are collected
// into the result's error list and never abort the batch; structural and
// validation failures abort with success=false and no store mutation. A
// batch that produces no holdings also fails without mutating the store.
func (im *Importer) Import(r io.Reader, mode model.MergeMode) (result model.ImportResult) {
	importID := uuid.NewString()
	result.ImportID = importID

	defer func() {
		if rec := recover(); rec != nil {
			im.logger.Error("import panic", zap.String("import_id", importID), zap.Any("cause", rec))
			result = model.ImportResult{
				ImportID: importID,
				Success:  false,
				Errors:   []string{fmt.Sprintf("Error processing file: %v", rec)},
			}
		}
	}()

	tbl, err := tabular.Parse(r)
	if err != nil {
		result.Errors = []string{err.Error()}
		return result
	}

	errs := append([]string(nil), tbl.RowErrors...)
	if len(tbl.Rows) == 0 {
		result.Errors = append(errs, tabular.ErrNoData.Error())
		return result
	}

	result.Rows = len(tbl.Rows)

	tag := exchange.Classify(tbl.Headers)
	result.DetectedExchange = tag

	var incoming []model.Holding
	if adapter, ok := exchange.ForTag(tag); ok {
		trades := adapter.Adapt(tbl.Rows)
		incoming = holdings.Aggregate(trades, im.catalog)
	} else {
		var rowErrs []string
		incoming, rowErrs, err = exchange.AdaptGeneric(tbl)
		errs = append(errs, rowErrs...)
		if err != nil {
			var missing *exchange.MissingColumnsError
			if errors.As(err, &missing) {
				errs = append(errs, missing.Messages()...)
			} else {
				errs = append(errs, err.Error())
			}
			result.Errors = errs
			im.logImport(importID, tag, len(tbl.Rows), 0, errs, false)
			return result
		}
	}

	result.Errors = errs
	if len(incoming) == 0 {
		im.logImport(importID, tag, len(tbl.Rows), 0, errs, false)
		return result
	}

	result.Holdings = im.store.Apply(func(existing []model.Holding) []model.Holding {
		return holdings.Merge(existing, incoming, mode)
	})
	result.Success = true

	im.logImport(importID, tag, len(tbl.Rows), len(incoming), errs, true)
	return result
}

// ImportString is a convenience wrapper over Import.
func (im *Importer) ImportString(data string, mode model.MergeMode) model.ImportResult {
	return im.Import(strings.NewReader(data), mode)
}

func (im *Importer) logImport(importID, tag string, rows, produced int, errs []string, success bool) {
	im.logger.Info("import",
		zap.String("import_id", importID),
		zap.String("exchange", tag),
		zap.Int("rows", rows),
		zap.Int("holdings", produced),
		zap.Int("errors", len(errs)),
		zap.Bool("success", success),
	)
}
