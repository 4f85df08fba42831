package holdings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coinfolio-dev/coinfolio/internal/model"
)

func holding(symbol string, qty, price float64) model.Holding {
	return model.Holding{Symbol: symbol, Name: symbol, Price: price, Quantity: qty, Value: qty * price}
}

func bySymbol(hs []model.Holding) map[string]model.Holding {
	out := make(map[string]model.Holding, len(hs))
	for _, h := range hs {
		out[h.Symbol] = h
	}
	return out
}

func TestMerge_ReplaceDiscardsExisting(t *testing.T) {
	existing := []model.Holding{holding("BTC", 1, 100)}
	incoming := []model.Holding{holding("ETH", 2, 50)}

	out := Merge(existing, incoming, model.MergeReplace)
	require.Len(t, out, 1)
	assert.Equal(t, "ETH", out[0].Symbol)
}

func TestMerge_ReplaceDropsNonPositive(t *testing.T) {
	incoming := []model.Holding{
		holding("BTC", 1, 100),
		holding("ETH", 0, 50),
		holding("SOL", -2, 10),
	}

	out := Merge(nil, incoming, model.MergeReplace)
	require.Len(t, out, 1)
	assert.Equal(t, "BTC", out[0].Symbol)
}

func TestMerge_AccumulateSumsQuantities(t *testing.T) {
	existing := []model.Holding{holding("BTC", 1, 100)}
	incoming := []model.Holding{{Symbol: "BTC", Name: "Bitcoin (new)", Price: 120, Quantity: 0.5, Value: 60, Change24h: 5, ChangePercent24h: 1.2}}

	out := Merge(existing, incoming, model.MergeAccumulate)
	require.Len(t, out, 1)

	got := out[0]
	assert.InDelta(t, 1.5, got.Quantity, 1e-9)
	// Name stays from the existing record, price and change come from the
	// incoming one, value is recomputed at the incoming price.
	assert.Equal(t, "BTC", got.Name)
	assert.Equal(t, 120.0, got.Price)
	assert.InDelta(t, 180.0, got.Value, 1e-9)
	assert.Equal(t, 5.0, got.Change24h)
	assert.Equal(t, 1.2, got.ChangePercent24h)
}

func TestMerge_AccumulateInsertsNewSymbols(t *testing.T) {
	existing := []model.Holding{holding("BTC", 1, 100)}
	incoming := []model.Holding{holding("ETH", 2, 50)}

	out := Merge(existing, incoming, model.MergeAccumulate)
	got := bySymbol(out)
	require.Len(t, got, 2)
	assert.Equal(t, 1.0, got["BTC"].Quantity)
	assert.Equal(t, 2.0, got["ETH"].Quantity)
}

func TestMerge_AccumulateDropsNettedOutPositions(t *testing.T) {
	existing := []model.Holding{holding("BTC", 1, 100)}
	incoming := []model.Holding{holding("BTC", -1, 110)}

	out := Merge(existing, incoming, model.MergeAccumulate)
	assert.Empty(t, out)
}

func TestMerge_AccumulateCaseInsensitiveSymbols(t *testing.T) {
	existing := []model.Holding{holding("BTC", 1, 100)}
	incoming := []model.Holding{holding("btc", 1, 100)}

	out := Merge(existing, incoming, model.MergeAccumulate)
	require.Len(t, out, 1)
	assert.Equal(t, 2.0, out[0].Quantity)
}

func TestMerge_EmptyInputs(t *testing.T) {
	assert.Empty(t, Merge(nil, nil, model.MergeReplace))
	assert.Empty(t, Merge(nil, nil, model.MergeAccumulate))

	existing := []model.Holding{holding("BTC", 1, 100)}
	out := Merge(existing, nil, model.MergeAccumulate)
	require.Len(t, out, 1)
	assert.Equal(t, "BTC", out[0].Symbol)
}
