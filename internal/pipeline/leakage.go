package pipeline

import "rentrisk/internal/model"

// leakageColumns either encode the outcome, carry post-decision human
// annotations, or were already consumed by the sanitizer. None of them exist
// at prediction time, so none may reach the training features.
var leakageColumns = []string{
	"tongdun_detail_json",
	"mibao_result",
	"order_number",
	model.ColCancelReason,
	model.ColMerchantWhitelist,
	model.ColCheckRemark,
	model.ColJoke,
	model.ColReviewRemark,
	"tongdun_remark",
	"bai_qi_shi_remark",
	"guanzhu_remark",
}

// StripLeakage removes the leakage columns from a row. Columns the row does
// not carry are skipped; the upstream schema is allowed to evolve.
func StripLeakage(rec *model.Record) {
	for _, c := range leakageColumns {
		rec.Delete(c)
	}
}

// LeakageColumns returns the removal list.
func LeakageColumns() []string {
	out := make([]string, len(leakageColumns))
	copy(out, leakageColumns)
	return out
}
