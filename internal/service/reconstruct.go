package service

import (
	"context"

	"rentrisk/internal/feature"
	"rentrisk/internal/model"
	"rentrisk/internal/pipeline"
	"rentrisk/internal/taxonomy"
)

// OrderFetcher is the single-order read the reconstructor depends on.
type OrderFetcher interface {
	FetchOrder(ctx context.Context, id int64) (*model.Order, error)
}

// Reconstructor rebuilds, for one live order, the feature representation the
// offline pipeline produced for historical orders.
type Reconstructor struct {
	store OrderFetcher
}

func NewReconstructor(store OrderFetcher) *Reconstructor {
	return &Reconstructor{store: store}
}

// Reconstruct fetches one order and applies the offline transforms that make
// sense for a singleton: the cancellation override, then removal of leakage,
// identifier, and lifecycle-state columns. The population-level sanitizer
// filters do not apply to a single fetch. Returns (nil, nil) when no such
// order exists.
func (r *Reconstructor) Reconstruct(ctx context.Context, id int64) (*feature.Vector, error) {
	o, err := r.store.FetchOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, nil
	}

	taxonomy.ApplyOverride(o)

	rec := o.Raw.Clone()
	pipeline.StripLeakage(rec)
	rec.Delete(model.ColState)
	rec.Delete(model.ColOrderID)

	return feature.FromRecord(rec), nil
}
