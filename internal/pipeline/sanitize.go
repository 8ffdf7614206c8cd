// Package pipeline derives training labels from raw order snapshots and
// produces the clean dataset the classifier is trained on.
package pipeline

import (
	"fmt"
	"strings"

	"rentrisk/internal/model"
	"rentrisk/internal/taxonomy"
)

// testDataMarker flags test and internal-staff orders via their free-text
// annotations.
const testDataMarker = "测试"

// merchantWhitelistMarker is the code recorded when an order bypassed review
// by hitting the merchant whitelist.
const merchantWhitelistMarker = "01"

// Sanitize filters a raw order snapshot down to the labelable population:
// risk-whitelisted users, flagged orders, indeterminate lifecycle states, and
// test/internal data are removed. The cancellation override runs before state
// classification because it is label-relevant. The input slice is left
// untouched; surviving orders are copies. An empty result is valid.
//
// A state outside the taxonomy aborts with taxonomy.ErrUnknownState: the batch
// must stop rather than mislabel.
func Sanitize(orders []model.Order, whitelist map[int64]struct{}) ([]model.Order, error) {
	out := make([]model.Order, 0, len(orders))
	for _, o := range orders {
		if _, ok := whitelist[o.UserID]; ok {
			continue
		}
		if o.Joke != 0 {
			continue
		}

		o = o.Clone()
		taxonomy.ApplyOverride(&o)

		outcome, err := taxonomy.Classify(o.State)
		if err != nil {
			return nil, fmt.Errorf("order %d: %w", o.ID, err)
		}
		if outcome == taxonomy.Pending {
			continue
		}

		if strings.Contains(o.CancelReason, testDataMarker) ||
			strings.Contains(o.CheckRemark, testDataMarker) {
			continue
		}
		if strings.Contains(o.MerchantWhitelistHit, merchantWhitelistMarker) {
			continue
		}

		out = append(out, o)
	}
	return out, nil
}
