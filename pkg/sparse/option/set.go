package spopt

// New returns a new master option set with defaults + given options.
//
// See Set.Reset for the option defaults.
func New(opts ...Option) *Set {
	o := &Set{}
	o.Reset()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Set is the master set of sparse matrix/vector build options.
type Set struct {
	Row    Axis // also for vectors
	Column Axis
	Value  Value
}

// Reset resets all options to their defaults.
//
// - Dimensions have no minimum, and can grow to accommodate incoming indices.
// - Explicit zero entries are dropped (not included).
// - Duplicate coordinates are treated as errors (not coalesced).
func (o *Set) Reset() {
	*o = Set{}
	o.Row.Reset()
	o.Column.Reset()
	o.Value.Reset()
}
