package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rentrisk/internal/model"
)

func TestStripLeakageRemovesEveryListedColumn(t *testing.T) {
	rec := model.NewRecord()
	rec.Set("phone", "13800000000")
	for _, c := range LeakageColumns() {
		rec.Set(c, "leaky")
	}
	rec.Set("age", "27")

	StripLeakage(rec)

	for _, c := range LeakageColumns() {
		_, ok := rec.Get(c)
		assert.False(t, ok, "column %q survived the filter", c)
	}
	assert.Equal(t, []string{"phone", "age"}, rec.Columns(), "feature columns must survive in order")
}

func TestStripLeakageNoOpOnCleanRow(t *testing.T) {
	rec := model.NewRecord()
	rec.Set("phone", "13800000000")
	rec.Set("age", "27")

	StripLeakage(rec)

	assert.Equal(t, 2, rec.Len())
	assert.Equal(t, []string{"phone", "age"}, rec.Columns())
}
