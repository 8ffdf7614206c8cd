package model

import (
	"fmt"
	"strconv"
)

// Column names the pipeline interprets. Everything else in a row is an opaque
// feature column that rides along untouched.
const (
	ColOrderID           = "order_id"
	ColState             = "state"
	ColUserID            = "user_id"
	ColJoke              = "joke"
	ColCancelReason      = "cancel_reason"
	ColCheckRemark       = "check_remark"
	ColReviewRemark      = "mibao_remark"
	ColMerchantWhitelist = "hit_merchant_white_list"
	ColTarget            = "target"
)

// Order is one rental application as fetched from the order store. The fields
// the labeling pipeline reads are lifted out of the raw row; the full row is
// kept in Raw with source column order preserved.
type Order struct {
	ID                   int64
	State                string
	UserID               int64
	Joke                 int
	CancelReason         string
	CheckRemark          string
	ReviewRemark         string
	MerchantWhitelistHit string
	Raw                  *Record
}

// OrderFromRecord decodes the interpreted fields out of a raw row. Numeric
// fields left empty by the source decode to zero; a malformed identifier is an
// error because every downstream step keys on it.
func OrderFromRecord(rec *Record) (Order, error) {
	o := Order{Raw: rec}

	idStr, ok := rec.Get(ColOrderID)
	if !ok {
		return Order{}, fmt.Errorf("record has no %s column", ColOrderID)
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return Order{}, fmt.Errorf("parse %s %q: %w", ColOrderID, idStr, err)
	}
	o.ID = id

	o.State, _ = rec.Get(ColState)

	if s, ok := rec.Get(ColUserID); ok && s != "" {
		uid, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return Order{}, fmt.Errorf("parse %s %q: %w", ColUserID, s, err)
		}
		o.UserID = uid
	}

	if s, ok := rec.Get(ColJoke); ok && s != "" {
		joke, err := strconv.Atoi(s)
		if err != nil {
			return Order{}, fmt.Errorf("parse %s %q: %w", ColJoke, s, err)
		}
		o.Joke = joke
	}

	o.CancelReason, _ = rec.Get(ColCancelReason)
	o.CheckRemark, _ = rec.Get(ColCheckRemark)
	o.ReviewRemark, _ = rec.Get(ColReviewRemark)
	o.MerchantWhitelistHit, _ = rec.Get(ColMerchantWhitelist)

	return o, nil
}

// Clone copies the order including its raw row, so callers can mutate the
// copy without touching the source slice.
func (o Order) Clone() Order {
	c := o
	if o.Raw != nil {
		c.Raw = o.Raw.Clone()
	}
	return c
}

// SetState updates the lifecycle state in both the typed field and the raw
// row, keeping the two views consistent.
func (o *Order) SetState(state string) {
	o.State = state
	if o.Raw != nil {
		if _, ok := o.Raw.Get(ColState); ok {
			o.Raw.Set(ColState, state)
		}
	}
}
