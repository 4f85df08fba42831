package holdings

import (
	"strings"

	"github.com/coinfolio-dev/coinfolio/internal/model"
)

// Merge combines a freshly imported holdings set with the existing snapshot
// under the given mode. Replace discards the existing set entirely.
// Accumulate sums quantities per symbol, keeps the existing display name,
// and takes price and 24h-change figures from the incoming record as the
// latest observation. Entries that end up with non-positive quantity are
// dropped. Output order is not a contract.
func Merge(existing, incoming []model.Holding, mode model.MergeMode) []model.Holding {
	if mode == model.MergeReplace {
		return dropNonPositive(incoming)
	}

	merged := make(map[string]model.Holding, len(existing)+len(incoming))
	var order []string
	for _, h := range existing {
		key := strings.ToUpper(h.Symbol)
		if _, seen := merged[key]; !seen {
			order = append(order, key)
		}
		merged[key] = h
	}

	for _, in := range incoming {
		key := strings.ToUpper(in.Symbol)
		cur, ok := merged[key]
		if !ok {
			merged[key] = in
			order = append(order, key)
			continue
		}

		qty := cur.Quantity + in.Quantity
		merged[key] = model.Holding{
			Symbol:           cur.Symbol,
			Name:             cur.Name,
			Price:            in.Price,
			Quantity:         qty,
			Value:            qty * in.Price,
			Change24h:        in.Change24h,
			ChangePercent24h: in.ChangePercent24h,
		}
	}

	out := make([]model.Holding, 0, len(order))
	for _, key := range order {
		out = append(out, merged[key])
	}
	return dropNonPositive(out)
}

func dropNonPositive(holdings []model.Holding) []model.Holding {
	out := make([]model.Holding, 0, len(holdings))
	for _, h := range holdings {
		if h.Quantity > 0 {
			out = append(out, h)
		}
	}
	return out
}
