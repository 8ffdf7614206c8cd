// Package feature defines the ordered feature representation handed to the
// classifier. Offline and online paths must produce it identically; the
// schema registry gates any vector the serving path builds.
package feature

import "rentrisk/internal/model"

// Vector is an ordered feature name → value mapping.
type Vector struct {
	names  []string
	values []string
}

func New() *Vector {
	return &Vector{}
}

// FromRecord builds a vector from a raw row, preserving column order.
func FromRecord(rec *model.Record) *Vector {
	v := New()
	for _, c := range rec.Columns() {
		val, _ := rec.Get(c)
		v.Append(c, val)
	}
	return v
}

func (v *Vector) Append(name, value string) {
	v.names = append(v.names, name)
	v.values = append(v.values, value)
}

func (v *Vector) Size() int {
	return len(v.names)
}

// Names returns the feature names in order.
func (v *Vector) Names() []string {
	out := make([]string, len(v.names))
	copy(out, v.names)
	return out
}

// Values returns the feature values in the same order as Names.
func (v *Vector) Values() []string {
	out := make([]string, len(v.values))
	copy(out, v.values)
	return out
}

func (v *Vector) Value(name string) (string, bool) {
	for i, n := range v.names {
		if n == name {
			return v.values[i], true
		}
	}
	return "", false
}
