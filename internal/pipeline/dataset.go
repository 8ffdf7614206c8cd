package pipeline

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"rentrisk/internal/model"
)

// Dataset is the finished training table: target, order identifier, then the
// surviving feature columns, in a fixed order shared by every row.
type Dataset struct {
	Columns []string
	Rows    [][]string

	featureColumns []string
}

// BuildDataset runs the offline pipeline over a full snapshot: sanitize,
// derive the target, strip leakage, and assemble rows. Everything is built in
// memory before any output is written, so an integrity failure can never
// leave a partial file behind.
func BuildDataset(orders []model.Order, whitelist map[int64]struct{}) (*Dataset, error) {
	clean, err := Sanitize(orders, whitelist)
	if err != nil {
		return nil, err
	}

	var featCols []string
	rows := make([][]string, 0, len(clean))
	for _, o := range clean {
		target, err := DeriveTarget(o)
		if err != nil {
			return nil, fmt.Errorf("order %d: %w", o.ID, err)
		}

		rec := o.Raw.Clone()
		StripLeakage(rec)
		rec.Delete(model.ColState)
		rec.Delete(model.ColOrderID)

		if featCols == nil {
			featCols = rec.Columns()
		}

		row := make([]string, 0, len(featCols)+2)
		row = append(row, strconv.Itoa(target), strconv.FormatInt(o.ID, 10))
		for _, c := range featCols {
			v, ok := rec.Get(c)
			if !ok {
				return nil, fmt.Errorf("order %d: missing feature column %q", o.ID, c)
			}
			row = append(row, v)
		}
		rows = append(rows, row)
	}

	cols := append([]string{model.ColTarget, model.ColOrderID}, featCols...)
	return &Dataset{Columns: cols, Rows: rows, featureColumns: featCols}, nil
}

// FeatureColumns returns the ordered feature columns, excluding target and
// identifier. This is what the schema registry captures.
func (d *Dataset) FeatureColumns() []string {
	out := make([]string, len(d.featureColumns))
	copy(out, d.featureColumns)
	return out
}

// WriteCSV emits the dataset with a header row.
func (d *Dataset) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(d.Columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, row := range d.Rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
