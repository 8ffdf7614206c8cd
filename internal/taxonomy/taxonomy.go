// Package taxonomy holds the closed classification of order lifecycle states
// into outcome categories. The set is deliberately closed: an unrecognized
// state means the upstream state machine grew a value this pipeline does not
// know how to label, and the only safe reaction is to stop.
package taxonomy

import (
	"errors"
	"fmt"

	"rentrisk/internal/model"
)

// Outcome is the resolution category of a lifecycle state.
type Outcome int

const (
	Failure Outcome = iota
	Pending
	Success
)

func (o Outcome) String() string {
	switch o {
	case Failure:
		return "failure"
	case Pending:
		return "pending"
	case Success:
		return "success"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// ErrUnknownState marks a lifecycle state outside the known taxonomy. It is
// fatal for the batch pipeline: labeling must halt rather than guess.
var ErrUnknownState = errors.New("unknown order state")

const (
	StateUserCanceled = "user_canceled"

	// StateSystemCreditUnpass is the distinguished state for orders the
	// credit machine rejected before the user acted. It never appears in
	// raw data; ApplyOverride produces it.
	StateSystemCreditUnpass = "user_canceled_system_credit_unpass"
)

// SystemRejectRemark is the review annotation the credit machine writes when
// it rejects an order that the order system then records as user-cancelled.
const SystemRejectRemark = "机审审核不通过"

var failureStates = map[string]struct{}{
	"artificial_credit_check_unpass_canceled": {},
	"return_overdue":                          {},
	"running_overdue":                         {},
	"merchant_relet_check_unpass_canceled":    {},
	"system_credit_check_unpass_canceled":     {},
	"merchant_credit_check_unpass_canceled":   {},
	StateSystemCreditUnpass:                   {},
}

var pendingStates = map[string]struct{}{
	StateUserCanceled:                 {},
	"pending_artificial_credit_check": {},
	"pending_relet_check":             {},
	"pending_jimi_credit_check":       {},
	"pending_relet_start":             {},
	"pending_order_receiving":         {},
}

var successStates = map[string]struct{}{
	"pending_receive_goods":           {},
	"running":                         {},
	"pending_pay":                     {},
	"lease_finished":                  {},
	"order_payment_overtime_canceled": {},
	"pending_send_goods":              {},
	"merchant_not_yet_send_canceled":  {},
	"buyout_finished":                 {},
	"pending_user_compensate":         {},
	"repairing":                       {},
	"express_rejection_canceled":      {},
	"pending_return":                  {},
	"returning":                       {},
	"return_goods":                    {},
	"returned_received":               {},
	"relet_finished":                  {},
	"pending_refund_deposit":          {},
}

// Classify maps a lifecycle state to its outcome category. It is total over
// the known taxonomy and returns ErrUnknownState for anything else.
func Classify(state string) (Outcome, error) {
	if _, ok := failureStates[state]; ok {
		return Failure, nil
	}
	if _, ok := pendingStates[state]; ok {
		return Pending, nil
	}
	if _, ok := successStates[state]; ok {
		return Success, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownState, state)
}

// ApplyOverride reclassifies a user-cancelled order as a system credit
// rejection when the review remark carries the machine-reject marker. The
// override is label-relevant and must run before Classify, on both the batch
// and the serving path.
func ApplyOverride(o *model.Order) {
	if o.State == StateUserCanceled && o.ReviewRemark == SystemRejectRemark {
		o.SetState(StateSystemCreditUnpass)
	}
}
