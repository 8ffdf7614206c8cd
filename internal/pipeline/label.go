package pipeline

import (
	"rentrisk/internal/model"
	"rentrisk/internal/taxonomy"
)

// DeriveTarget maps a sanitized order's lifecycle state to its binary
// outcome: 0 for a failed lifecycle, 1 otherwise. Pending states never reach
// this point; Sanitize removes them.
func DeriveTarget(o model.Order) (int, error) {
	outcome, err := taxonomy.Classify(o.State)
	if err != nil {
		return 0, err
	}
	if outcome == taxonomy.Failure {
		return 0, nil
	}
	return 1, nil
}
