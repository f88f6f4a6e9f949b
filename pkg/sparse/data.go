package sparse

import (
	"fmt"
	"slices"
	"sort"

	"k3l.io/go-linalg/pkg/algebra"
	"k3l.io/go-linalg/pkg/shapes"
	spopt "k3l.io/go-linalg/pkg/sparse/option"
	"k3l.io/go-linalg/pkg/util"
)

// MatrixData is a transient (shape, indices, entries) aggregate for
// passing matrix contents between pipeline stages before committing to
// a concrete format.  Entries need not be sorted or unique.
type MatrixData[T algebra.Element[T]] struct {
	Shape      shapes.Shape
	RowIndices []int
	ColIndices []int
	Entries    []T
}

// Append adds one entry, growing the backing slices gently.
func (d *MatrixData[T]) Append(row, col int, value T) {
	d.RowIndices = append(util.GrowCap(d.RowIndices, len(d.RowIndices)+1), row)
	d.ColIndices = append(util.GrowCap(d.ColIndices, len(d.ColIndices)+1), col)
	d.Entries = append(util.GrowCap(d.Entries, len(d.Entries)+1), value)
}

// ToCOO seals the aggregate into a COO matrix, sorting the entries and
// applying the usual build options.  A set shape fixes the dimensions
// unless the options say otherwise.
func (d *MatrixData[T]) ToCOO(opts ...spopt.Option) (*COOMatrix[T], error) {
	if d.Shape.Rank() == 2 {
		opts = append(
			[]spopt.Option{spopt.FixedDim(d.Shape.Dim(0), d.Shape.Dim(1))},
			opts...)
	}
	triples := make([]Triple[T], len(d.Entries))
	for p := range d.Entries {
		triples[p] = Triple[T]{
			Row:    d.RowIndices[p],
			Column: d.ColIndices[p],
			Value:  d.Entries[p],
		}
	}
	return FromTriples(triples, opts...)
}

// ToCSR seals the aggregate into a CSR matrix.
func (d *MatrixData[T]) ToCSR(opts ...spopt.Option) (*CSRMatrix[T], error) {
	coo, err := d.ToCOO(opts...)
	if err != nil {
		return nil, err
	}
	return coo.ToCSR(), nil
}

// TensorData is the rank-general analogue of MatrixData:
// one index tuple per entry.
type TensorData[T algebra.Element[T]] struct {
	Shape   shapes.Shape
	Indices [][]int
	Entries []T
}

// FlattenIndices maps every index tuple to its row-major flat offset,
// yielding rank-1 data over the flattened shape.
func (d *TensorData[T]) FlattenIndices() (*TensorData[T], error) {
	n, err := d.Shape.TotalEntriesInt()
	if err != nil {
		return nil, err
	}
	indices := make([][]int, len(d.Indices))
	for p, tuple := range d.Indices {
		flat, err := d.Shape.FlatIndex(tuple...)
		if err != nil {
			return nil, err
		}
		indices[p] = []int{flat}
	}
	return &TensorData[T]{
		Shape:   shapes.Of(n),
		Indices: indices,
		Entries: slices.Clone(d.Entries),
	}, nil
}

// Reshape reinterprets the entries in a new shape with the same total
// entry count, remapping every index tuple through its flat offset.
func (d *TensorData[T]) Reshape(newShape shapes.Shape) (*TensorData[T], error) {
	n, err := d.Shape.TotalEntriesInt()
	if err != nil {
		return nil, err
	}
	newTotal, err := newShape.TotalEntriesInt()
	if err != nil {
		return nil, err
	}
	if n != newTotal {
		return nil, fmt.Errorf("cannot reshape %v into %v: %w",
			d.Shape, newShape, shapes.ErrDimensionMismatch)
	}
	strides := newShape.Strides()
	indices := make([][]int, len(d.Indices))
	for p, tuple := range d.Indices {
		flat, err := d.Shape.FlatIndex(tuple...)
		if err != nil {
			return nil, err
		}
		remapped := make([]int, newShape.Rank())
		for axis, stride := range strides {
			remapped[axis] = flat / stride
			flat %= stride
		}
		indices[p] = remapped
	}
	return &TensorData[T]{
		Shape:   newShape,
		Indices: indices,
		Entries: slices.Clone(d.Entries),
	}, nil
}

// VectorData is the rank-1 analogue of MatrixData.
type VectorData[T algebra.Element[T]] struct {
	Dim     int
	Indices []int
	Entries []T
}

// Append adds one entry, growing the backing slices gently.
func (d *VectorData[T]) Append(index int, value T) {
	d.Indices = append(util.GrowCap(d.Indices, len(d.Indices)+1), index)
	d.Entries = append(util.GrowCap(d.Entries, len(d.Entries)+1), value)
}

// ToVector seals the aggregate into a sparse vector, sorting the
// entries by index first.
func (d *VectorData[T]) ToVector() (*Vector[T], error) {
	indices := slices.Clone(d.Indices)
	entries := slices.Clone(d.Entries)
	sort.Sort(indexValueSort[T]{indices: indices, entries: entries})
	return NewVector(d.Dim, indices, entries)
}
