package importer

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coinfolio-dev/coinfolio/internal/assets"
	"github.com/coinfolio-dev/coinfolio/internal/holdings"
	"github.com/coinfolio-dev/coinfolio/internal/model"
)

func newTestImporter() *Importer {
	return New(holdings.NewStore(), assets.NewCatalog(assets.DefaultAssets()), nil)
}

func importFile(t *testing.T, im *Importer, path string, mode model.MergeMode) model.ImportResult {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return im.ImportString(string(data), mode)
}

func TestImport_BinanceFixture(t *testing.T) {
	im := newTestImporter()
	res := importFile(t, im, "testdata/binance_trades.csv", model.MergeReplace)

	require.True(t, res.Success, "errors: %v", res.Errors)
	assert.Equal(t, "binance", res.DetectedExchange)
	assert.NotEmpty(t, res.ImportID)

	// SOL nets out to zero and is dropped; BTC and ETH remain.
	require.Len(t, res.Holdings, 2)
	byum := map[string]model.Holding{}
	for _, h := range res.Holdings {
		byum[h.Symbol] = h
	}

	btc := byum["BTC"]
	assert.Equal(t, "Bitcoin", btc.Name)
	assert.InDelta(t, 0.4, btc.Quantity, 1e-9)
	assert.Equal(t, 64000.0, btc.Price) // most recent BTC trade
	assert.InDelta(t, 25600.0, btc.Value, 1e-6)

	eth := byum["ETH"]
	assert.Equal(t, "Ethereum", eth.Name)
	assert.Equal(t, 2.0, eth.Quantity)

	assert.Equal(t, res.Holdings, im.Store().Snapshot())
}

func TestImport_KrakenFixture(t *testing.T) {
	im := newTestImporter()
	res := importFile(t, im, "testdata/kraken_trades.csv", model.MergeReplace)

	require.True(t, res.Success, "errors: %v", res.Errors)
	assert.Equal(t, "kraken", res.DetectedExchange)
	require.Len(t, res.Holdings, 2)

	xbt := res.Holdings[0]
	assert.Equal(t, "XBT", xbt.Symbol)
	assert.Equal(t, "Bitcoin", xbt.Name)
	assert.InDelta(t, 0.3, xbt.Quantity, 1e-9)
	assert.Equal(t, 44500.0, xbt.Price)
}

func TestImport_GenericFixture(t *testing.T) {
	im := newTestImporter()
	res := importFile(t, im, "testdata/generic_holdings.csv", model.MergeReplace)

	require.True(t, res.Success, "errors: %v", res.Errors)
	assert.Equal(t, "unknown", res.DetectedExchange)
	require.Len(t, res.Holdings, 3)
	assert.Equal(t, "ADA", res.Holdings[2].Symbol)
	assert.Equal(t, 450.0, res.Holdings[2].Value)
}

func TestImport_GenericMissingColumnFailsBatch(t *testing.T) {
	im := newTestImporter()
	im.Store().Commit([]model.Holding{{Symbol: "BTC", Name: "Bitcoin", Price: 1, Quantity: 1, Value: 1}})

	res := im.ImportString("Symbol,Name,Holdings\nBTC,Bitcoin,0.5\n", model.MergeReplace)

	assert.False(t, res.Success)
	require.Len(t, res.Errors, 3)
	assert.Equal(t, "Missing required columns: price", res.Errors[0])
	assert.Contains(t, res.Errors[1], "Available columns: symbol, name, holdings")
	assert.Contains(t, res.Errors[2], "Expected columns:")

	// Failed batches never touch the store.
	require.Len(t, im.Store().Snapshot(), 1)
	assert.Equal(t, "BTC", im.Store().Snapshot()[0].Symbol)
}

func TestImport_EmptyInput(t *testing.T) {
	im := newTestImporter()
	res := im.ImportString("", model.MergeReplace)

	assert.False(t, res.Success)
	assert.Equal(t, []string{"No valid data found in CSV file"}, res.Errors)
}

func TestImport_HeaderOnly(t *testing.T) {
	im := newTestImporter()
	res := im.ImportString("Symbol,Name,Price,Holdings\n", model.MergeReplace)

	assert.False(t, res.Success)
	assert.Contains(t, res.Errors, "No valid data found in CSV file")
}

func TestImport_RowErrorsDoNotAbortBatch(t *testing.T) {
	csv := "Symbol,Name,Price,Holdings\n" +
		"BTC,Bitcoin,45000,0.5\n" +
		",Nameless,1,1\n" +
		"ETH,Ethereum,3200,2.5\n"

	im := newTestImporter()
	res := im.ImportString(csv, model.MergeReplace)

	assert.True(t, res.Success)
	require.Len(t, res.Holdings, 2)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "Row 3: Missing symbol or name", res.Errors[0])
}

func TestImport_AllRowsBadFailsBatch(t *testing.T) {
	csv := "Symbol,Name,Price,Holdings\n,Bitcoin,45000,0.5\n"

	im := newTestImporter()
	res := im.ImportString(csv, model.MergeReplace)

	assert.False(t, res.Success)
	assert.NotEmpty(t, res.Errors)
	assert.Empty(t, im.Store().Snapshot())
}

func TestImport_TradesNettingToZeroFails(t *testing.T) {
	csv := "Date(UTC),Pair,Side,Price,Executed,Amount,Fee\n" +
		"2024-03-01,BTCUSDT,BUY,62000,1,62000,0\n" +
		"2024-03-02,BTCUSDT,SELL,63000,1,63000,0\n"

	im := newTestImporter()
	res := im.ImportString(csv, model.MergeReplace)

	assert.False(t, res.Success)
	assert.Equal(t, "binance", res.DetectedExchange)
	assert.Empty(t, im.Store().Snapshot())
}

func TestImport_AccumulateMerges(t *testing.T) {
	im := newTestImporter()

	first := importFile(t, im, "testdata/generic_holdings.csv", model.MergeReplace)
	require.True(t, first.Success)

	second := im.ImportString("Symbol,Name,Price,Holdings\nBTC,Bitcoin,50000,0.5\n", model.MergeAccumulate)
	require.True(t, second.Success)

	var btc model.Holding
	for _, h := range second.Holdings {
		if h.Symbol == "BTC" {
			btc = h
		}
	}
	assert.InDelta(t, 1.0, btc.Quantity, 1e-9)
	assert.Equal(t, 50000.0, btc.Price)
	assert.InDelta(t, 50000.0, btc.Value, 1e-6)
	assert.Len(t, second.Holdings, 3)
}

func TestImport_ReplaceDiscardsPrevious(t *testing.T) {
	im := newTestImporter()

	require.True(t, importFile(t, im, "testdata/generic_holdings.csv", model.MergeReplace).Success)
	res := im.ImportString("Symbol,Name,Price,Holdings\nSOL,Solana,150,10\n", model.MergeReplace)
	require.True(t, res.Success)

	snap := im.Store().Snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, "SOL", snap[0].Symbol)
}

func TestImport_ExportRoundTrip(t *testing.T) {
	im := newTestImporter()
	require.True(t, importFile(t, im, "testdata/generic_holdings.csv", model.MergeReplace).Success)

	exported := holdings.ExportCSV(im.Store().Snapshot())
	require.NotEmpty(t, exported)

	im2 := newTestImporter()
	res := im2.Import(strings.NewReader(exported), model.MergeReplace)
	require.True(t, res.Success, "errors: %v", res.Errors)

	orig := im.Store().Snapshot()
	reimported := im2.Store().Snapshot()
	require.Len(t, reimported, len(orig))
	for i := range orig {
		assert.Equal(t, orig[i].Symbol, reimported[i].Symbol)
		assert.Equal(t, orig[i].Name, reimported[i].Name)
		assert.InDelta(t, orig[i].Price, reimported[i].Price, 1e-9)
		assert.InDelta(t, orig[i].Quantity, reimported[i].Quantity, 1e-9)
		assert.InDelta(t, orig[i].Value, reimported[i].Value, 1e-9)
	}
}
