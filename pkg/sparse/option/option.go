package spopt

// Option adjusts one aspect of a sparse build operation.
type Option func(*Set)

// Noop is a no-op Option.  Useful as a default option.
func Noop(*Set) {}

// WithOptions replaces the current option set with the given one.
func WithOptions(options *Set) Option {
	return func(o *Set) {
		*o = *options
	}
}

func FixedDim(rows, columns int) Option {
	return func(o *Set) { FixedAxisDim(rows)(&o.Row); FixedAxisDim(columns)(&o.Column) }
}
func FixedRows(dim int) Option    { return func(o *Set) { FixedAxisDim(dim)(&o.Row) } }
func FixedColumns(dim int) Option { return func(o *Set) { FixedAxisDim(dim)(&o.Column) } }

func MinDim(rows, columns int) Option {
	return func(o *Set) { MinAxisDim(rows)(&o.Row); MinAxisDim(columns)(&o.Column) }
}
func MinRows(dim int) Option    { return func(o *Set) { MinAxisDim(dim)(&o.Row) } }
func MinColumns(dim int) Option { return func(o *Set) { MinAxisDim(dim)(&o.Column) } }

func IncludeZeroSetTo(include bool) Option {
	return func(o *Set) { IncludeZeroValueSetTo(include)(&o.Value) }
}
func IncludeZero(o *Set) { IncludeZeroValue(&o.Value) }
func ExcludeZero(o *Set) { ExcludeZeroValue(&o.Value) }

func CoalesceSetTo(coalesce bool) Option {
	return func(o *Set) { CoalesceValuesSetTo(coalesce)(&o.Value) }
}
func Coalesce(o *Set)         { CoalesceValues(&o.Value) }
func RejectDuplicates(o *Set) { RejectDuplicateValues(&o.Value) }
