// Package schema keeps the canonical feature-column contract captured when
// the training dataset is built. The registry travels with the trained model
// and is the sole admission check before the classifier is invoked online.
package schema

import (
	"encoding/json"
	"fmt"
	"os"

	"rentrisk/internal/feature"
)

// CheckMode selects how a vector is compared against the registry.
type CheckMode string

const (
	// ModeNames compares the ordered column names. Default.
	ModeNames CheckMode = "names"

	// ModeCount compares only the column count, reproducing the historical
	// check. Two swapped columns pass in this mode; it exists for
	// compatibility, not correctness.
	ModeCount CheckMode = "count"
)

func ParseMode(s string) (CheckMode, error) {
	switch CheckMode(s) {
	case ModeNames, ModeCount:
		return CheckMode(s), nil
	}
	return "", fmt.Errorf("unknown schema check mode %q", s)
}

// Registry is the ordered feature-column set of the training dataset,
// excluding the target and identifier columns. Immutable once captured.
type Registry struct {
	columns []string
}

// Capture copies the final feature columns of a built dataset.
func Capture(columns []string) *Registry {
	cols := make([]string, len(columns))
	copy(cols, columns)
	return &Registry{columns: cols}
}

func (r *Registry) Size() int {
	return len(r.columns)
}

func (r *Registry) Columns() []string {
	out := make([]string, len(r.columns))
	copy(out, r.columns)
	return out
}

// Match reports whether a vector is structurally compatible with the
// registry. A nil return admits the vector; any error refuses it.
func (r *Registry) Match(v *feature.Vector, mode CheckMode) error {
	if v.Size() != len(r.columns) {
		return fmt.Errorf("feature count %d, schema expects %d", v.Size(), len(r.columns))
	}
	if mode == ModeCount {
		return nil
	}
	names := v.Names()
	for i, c := range r.columns {
		if names[i] != c {
			return fmt.Errorf("feature %d is %q, schema expects %q", i, names[i], c)
		}
	}
	return nil
}

type artifact struct {
	Columns []string `json:"columns"`
}

// Save persists the registry as a JSON artifact, stored alongside the trained
// model it describes.
func (r *Registry) Save(path string) error {
	data, err := json.MarshalIndent(artifact{Columns: r.columns}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write schema: %w", err)
	}
	return nil
}

// Load reads a registry artifact written by Save.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema: %w", err)
	}
	var a artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}
	return &Registry{columns: a.Columns}, nil
}
