package service

import (
	"context"
	"fmt"
	"log/slog"

	"rentrisk/internal/feature"
	"rentrisk/internal/schema"
)

// Result is the serving decision. Unknown is a distinct value, never an alias
// for either real class: "no signal" must not read as "approved".
type Result int

const (
	ResultReject Result = iota
	ResultApprove
	ResultUnknown
)

func (r Result) String() string {
	switch r {
	case ResultReject:
		return "reject"
	case ResultApprove:
		return "approve"
	case ResultUnknown:
		return "unknown"
	}
	return fmt.Sprintf("Result(%d)", int(r))
}

// Code returns the wire encoding: 0 reject, 1 approve, 2 unknown.
func (r Result) Code() int {
	switch r {
	case ResultReject:
		return 0
	case ResultApprove:
		return 1
	default:
		return 2
	}
}

// VectorSource produces the feature vector for one order, or nil when the
// order does not exist.
type VectorSource interface {
	Reconstruct(ctx context.Context, id int64) (*feature.Vector, error)
}

// Gate admits a reconstructed vector to the classifier only if it matches the
// schema registry. A missing order or a structural mismatch yields Unknown;
// the classifier is never invoked on a vector the registry refuses.
type Gate struct {
	source   VectorSource
	registry *schema.Registry
	clf      Classifier
	mode     schema.CheckMode
}

func NewGate(source VectorSource, registry *schema.Registry, clf Classifier, mode schema.CheckMode) *Gate {
	return &Gate{source: source, registry: registry, clf: clf, mode: mode}
}

func (g *Gate) Predict(ctx context.Context, id int64) (Result, error) {
	v, err := g.source.Reconstruct(ctx, id)
	if err != nil {
		return ResultUnknown, err
	}
	if v == nil {
		slog.Debug("order not found", "order_id", id)
		return ResultUnknown, nil
	}

	if err := g.registry.Match(v, g.mode); err != nil {
		slog.Warn("feature vector refused", "order_id", id, "reason", err)
		return ResultUnknown, nil
	}

	pred, err := g.clf.Predict(ctx, v)
	if err != nil {
		return ResultUnknown, fmt.Errorf("classify order %d: %w", id, err)
	}
	if pred == 0 {
		return ResultReject, nil
	}
	return ResultApprove, nil
}
