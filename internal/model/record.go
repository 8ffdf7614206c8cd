package model

// Record is one raw row from the order source: column name → value with the
// source column order preserved. Order matters because the feature vector the
// classifier receives is positional.
type Record struct {
	cols []string
	vals map[string]string
}

func NewRecord() *Record {
	return &Record{vals: make(map[string]string)}
}

// Set stores a value, appending the column on first sight.
func (r *Record) Set(name, value string) {
	if _, ok := r.vals[name]; !ok {
		r.cols = append(r.cols, name)
	}
	r.vals[name] = value
}

func (r *Record) Get(name string) (string, bool) {
	v, ok := r.vals[name]
	return v, ok
}

// Delete removes a column if present. Missing columns are a no-op.
func (r *Record) Delete(name string) {
	if _, ok := r.vals[name]; !ok {
		return
	}
	delete(r.vals, name)
	for i, c := range r.cols {
		if c == name {
			r.cols = append(r.cols[:i], r.cols[i+1:]...)
			break
		}
	}
}

// Columns returns the column names in source order.
func (r *Record) Columns() []string {
	out := make([]string, len(r.cols))
	copy(out, r.cols)
	return out
}

func (r *Record) Len() int {
	return len(r.cols)
}

func (r *Record) Clone() *Record {
	c := &Record{
		cols: make([]string, len(r.cols)),
		vals: make(map[string]string, len(r.vals)),
	}
	copy(c.cols, r.cols)
	for k, v := range r.vals {
		c.vals[k] = v
	}
	return c
}
