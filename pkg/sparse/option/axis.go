package spopt

// Axis is the set of options that apply to one coordinate axis.
type Axis struct {
	Dim  int  // minimum (if Grow) or fixed (if not Grow) dimension
	Grow bool // whether dimension can increase to match incoming indices
}

// Reset resets all axis options to their defaults.
//
// - No minimum Dim, axis starts from zero dimension.
// - Dim grows automatically to accommodate new indices.
func (o *Axis) Reset() {
	*o = Axis{}
	MinAxisDim(0)(o)
}

// FixedAxisDim sets a fixed axis dimension;
// out-of-range indices are treated as errors.
func FixedAxisDim(dim int) func(*Axis) {
	return func(o *Axis) { o.Dim, o.Grow = dim, false }
}

// MinAxisDim sets a minimum axis dimension;
// the dimension grows to accommodate out-of-range indices.
func MinAxisDim(dim int) func(*Axis) {
	return func(o *Axis) { o.Dim, o.Grow = dim, true }
}
