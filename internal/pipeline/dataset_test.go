package pipeline

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentrisk/internal/model"
	"rentrisk/internal/taxonomy"
)

func TestBuildDatasetEndToEnd(t *testing.T) {
	orders := []model.Order{
		newOrder(t, 1, "running"),
		newOrder(t, 2, "return_overdue"),
		newOrder(t, 3, taxonomy.StateUserCanceled, func(r *model.Record) {
			r.Set(model.ColReviewRemark, taxonomy.SystemRejectRemark)
		}),
		newOrder(t, 4, "pending_relet_check"),
	}

	ds, err := BuildDataset(orders, nil)
	require.NoError(t, err)

	// Order 4 is pending, gone entirely.
	require.Len(t, ds.Rows, 3)

	targets := map[string]string{}
	for _, row := range ds.Rows {
		targets[row[1]] = row[0] // order_id -> target
	}
	assert.Equal(t, "1", targets["1"], "running order approves")
	assert.Equal(t, "0", targets["2"], "overdue return fails")
	assert.Equal(t, "0", targets["3"], "machine-rejected cancellation fails")
	assert.NotContains(t, targets, "4")

	// target and identifier lead; no leakage or lifecycle columns follow.
	assert.Equal(t, model.ColTarget, ds.Columns[0])
	assert.Equal(t, model.ColOrderID, ds.Columns[1])
	for _, c := range ds.Columns[2:] {
		assert.NotEqual(t, model.ColState, c)
		assert.NotContains(t, LeakageColumns(), c)
	}
	assert.Equal(t, ds.Columns[2:], ds.FeatureColumns())
}

func TestBuildDatasetUnknownStateProducesNothing(t *testing.T) {
	orders := []model.Order{
		newOrder(t, 1, "running"),
		newOrder(t, 2, "surprise_state"),
	}

	ds, err := BuildDataset(orders, nil)
	require.Error(t, err)
	assert.Nil(t, ds, "no partial dataset on integrity failure")
}

func TestBuildDatasetEmptySnapshot(t *testing.T) {
	ds, err := BuildDataset(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, ds.Rows)
	assert.Equal(t, []string{model.ColTarget, model.ColOrderID}, ds.Columns)
}

func TestWriteCSV(t *testing.T) {
	orders := []model.Order{
		newOrder(t, 1, "running"),
		newOrder(t, 2, "return_overdue"),
	}
	ds, err := BuildDataset(orders, nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, ds.WriteCSV(&buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3, "header plus two rows")
	assert.Equal(t, ds.Columns, records[0])
	for _, row := range records[1:] {
		assert.Len(t, row, len(ds.Columns))
	}
}
