package spopt

// Value is the set of options that apply to entry values.
type Value struct {
	IncludeZero bool
	Coalesce    bool
}

// Reset resets all value options to their defaults.
//
// - Explicit zero entries are dropped (not included).
// - Duplicate coordinates are treated as errors (not coalesced).
func (o *Value) Reset() {
	*o = Value{}
	ExcludeZeroValue(o)
	RejectDuplicateValues(o)
}

func IncludeZeroValueSetTo(include bool) func(*Value) {
	return func(o *Value) { o.IncludeZero = include }
}

func CoalesceValuesSetTo(coalesce bool) func(*Value) {
	return func(o *Value) { o.Coalesce = coalesce }
}

func IncludeZeroValue(o *Value)      { o.IncludeZero = true }
func ExcludeZeroValue(o *Value)      { o.IncludeZero = false }
func CoalesceValues(o *Value)        { o.Coalesce = true }
func RejectDuplicateValues(o *Value) { o.Coalesce = false }
