package sparse

import (
	"errors"
	"reflect"
	"testing"

	"k3l.io/go-linalg/pkg/algebra"
	"k3l.io/go-linalg/pkg/dense"
	"k3l.io/go-linalg/pkg/shapes"
	spopt "k3l.io/go-linalg/pkg/sparse/option"
	"k3l.io/go-linalg/pkg/util"
)

func TestFormatRoundTrip(t *testing.T) {
	//	║ . 5 .
	//	║ 2 . 7
	coo := realCOO(t, 2, 3, []rt{{0, 1, 5}, {1, 0, 2}, {1, 2, 7}})
	csr := realCSR(t, 2, 3, []rt{{0, 1, 5}, {1, 0, 2}, {1, 2, 7}})
	if got := coo.ToCSR(); !reflect.DeepEqual(got, csr) {
		t.Errorf("ToCSR() = %+v, want %+v", got, csr)
	}
	if got := csr.ToCOO(); !reflect.DeepEqual(got, coo) {
		t.Errorf("ToCOO() = %+v, want %+v", got, coo)
	}
	if got := coo.ToCSR().ToCOO(); !reflect.DeepEqual(got, coo) {
		t.Errorf("ToCSR().ToCOO() = %+v, want %+v", got, coo)
	}
}

func TestCSRMatrix_ToDense(t *testing.T) {
	m := realCSR(t, 2, 3, []rt{{0, 1, 5}, {1, 0, 2}, {1, 2, 7}})
	got, err := m.ToDense()
	if err != nil {
		t.Fatalf("ToDense() error = %v", err)
	}
	want := &dense.Matrix[algebra.Real]{
		Shape: shapes.Of(2, 3),
		Data:  []algebra.Real{0, 5, 0, 2, 0, 7},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ToDense() = %+v, want %+v", got, want)
	}
}

func TestDenseRoundTrip(t *testing.T) {
	m := realCOO(t, 2, 3, []rt{{0, 1, 5}, {1, 2, 7}})
	d := util.Must(m.ToDense())
	if got := FromDense(d); !reflect.DeepEqual(got, m) {
		t.Errorf("FromDense(ToDense()) = %+v, want %+v", got, m)
	}
}

func TestDropZeros(t *testing.T) {
	m := realCOO(t, 2, 2, []rt{{0, 0, 0}, {0, 1, 5}, {1, 1, 0}},
		spopt.IncludeZero)
	if got, want := m.NNZ(), 3; got != want {
		t.Fatalf("NNZ() = %d, want %d", got, want)
	}
	want := realCOO(t, 2, 2, []rt{{0, 1, 5}})
	if got := m.DropZeros(); !reflect.DeepEqual(got, want) {
		t.Errorf("DropZeros() = %+v, want %+v", got, want)
	}
	wantCSR := realCSR(t, 2, 2, []rt{{0, 1, 5}})
	if got := m.ToCSR().DropZeros(); !reflect.DeepEqual(got, wantCSR) {
		t.Errorf("DropZeros() = %+v, want %+v", got, wantCSR)
	}
}

func TestDropZeros_AllZero(t *testing.T) {
	m := realCOO(t, 2, 2, []rt{{1, 0, 0}}, spopt.IncludeZero)
	want := realCOO(t, 2, 2, nil)
	if got := m.DropZeros(); !reflect.DeepEqual(got, want) {
		t.Errorf("DropZeros() = %+v, want %+v", got, want)
	}
}

func TestCSRMatrix_FlattenAxis(t *testing.T) {
	//	║ . 5 .
	//	║ 2 . 7
	m := realCSR(t, 2, 3, []rt{{0, 1, 5}, {1, 0, 2}, {1, 2, 7}})

	byRow, err := m.FlattenAxis(0)
	if err != nil {
		t.Fatalf("FlattenAxis(0) error = %v", err)
	}
	wantRow := realCSR(t, 1, 6, []rt{{0, 1, 5}, {0, 3, 2}, {0, 5, 7}})
	if !reflect.DeepEqual(byRow, wantRow) {
		t.Errorf("FlattenAxis(0) = %+v, want %+v", byRow, wantRow)
	}

	byCol, err := m.FlattenAxis(1)
	if err != nil {
		t.Fatalf("FlattenAxis(1) error = %v", err)
	}
	wantCol := realCSR(t, 6, 1, []rt{{1, 0, 5}, {3, 0, 2}, {5, 0, 7}})
	if !reflect.DeepEqual(byCol, wantCol) {
		t.Errorf("FlattenAxis(1) = %+v, want %+v", byCol, wantCol)
	}

	var oob util.IndexOutOfBoundsError
	if _, err := m.FlattenAxis(2); !errors.As(err, &oob) {
		t.Errorf("FlattenAxis(2) error = %v, want IndexOutOfBoundsError", err)
	}
}

func TestCOOMatrix_FlattenAxis(t *testing.T) {
	m := realCOO(t, 2, 3, []rt{{0, 1, 5}, {1, 0, 2}, {1, 2, 7}})

	byRow, err := m.Flatten()
	if err != nil {
		t.Fatalf("Flatten() error = %v", err)
	}
	wantRow := realCOO(t, 1, 6, []rt{{0, 1, 5}, {0, 3, 2}, {0, 5, 7}})
	if !reflect.DeepEqual(byRow, wantRow) {
		t.Errorf("Flatten() = %+v, want %+v", byRow, wantRow)
	}

	byCol, err := m.FlattenAxis(1)
	if err != nil {
		t.Fatalf("FlattenAxis(1) error = %v", err)
	}
	wantCol := realCOO(t, 6, 1, []rt{{1, 0, 5}, {3, 0, 2}, {5, 0, 7}})
	if !reflect.DeepEqual(byCol, wantCol) {
		t.Errorf("FlattenAxis(1) = %+v, want %+v", byCol, wantCol)
	}
}

func TestCSRMatrix_Slice(t *testing.T) {
	//	║ 1 . . 2 .
	//	║ . 3 4 . .
	//	║ . . 5 . 6
	//	║ 7 . . . .
	m := realCSR(t, 4, 5, []rt{
		{0, 0, 1}, {0, 3, 2},
		{1, 1, 3}, {1, 2, 4},
		{2, 2, 5}, {2, 4, 6},
		{3, 0, 7},
	})
	got, err := m.Slice(1, 3, 1, 4)
	if err != nil {
		t.Fatalf("Slice() error = %v", err)
	}
	want := realCSR(t, 2, 3, []rt{{0, 0, 3}, {0, 1, 4}, {1, 1, 5}})
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Slice(1, 3, 1, 4) = %+v, want %+v", got, want)
	}

	full, err := m.Slice(0, 4, 0, 5)
	if err != nil {
		t.Fatalf("Slice() error = %v", err)
	}
	if !reflect.DeepEqual(full, m) {
		t.Errorf("Slice(0, 4, 0, 5) = %+v, want %+v", full, m)
	}

	empty, err := m.Slice(2, 2, 0, 5)
	if err != nil {
		t.Fatalf("Slice() error = %v", err)
	}
	wantEmpty := realCSR(t, 0, 5, nil)
	if !reflect.DeepEqual(empty, wantEmpty) {
		t.Errorf("Slice(2, 2, 0, 5) = %+v, want %+v", empty, wantEmpty)
	}
}

func TestCSRMatrix_Slice_RangeErrors(t *testing.T) {
	m := realCSR(t, 4, 5, []rt{{0, 0, 1}})
	type args struct {
		rowStart, rowEnd, colStart, colEnd int
	}
	tests := []struct {
		name string
		args args
		want SliceRangeError
	}{
		{
			name: "rowEndPastBound",
			args: args{0, 5, 0, 5},
			want: SliceRangeError{Start: 0, End: 5, Bound: 4},
		},
		{
			name: "rowStartNegative",
			args: args{-1, 2, 0, 5},
			want: SliceRangeError{Start: -1, End: 2, Bound: 4},
		},
		{
			name: "rowStartPastEnd",
			args: args{3, 1, 0, 5},
			want: SliceRangeError{Start: 3, End: 1, Bound: 4},
		},
		{
			name: "colEndPastBound",
			args: args{0, 4, 2, 6},
			want: SliceRangeError{Start: 2, End: 6, Bound: 5},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := m.Slice(test.args.rowStart, test.args.rowEnd,
				test.args.colStart, test.args.colEnd)
			var rangeErr SliceRangeError
			if !errors.As(err, &rangeErr) {
				t.Fatalf("Slice() error = %v, want SliceRangeError", err)
			}
			if rangeErr != test.want {
				t.Errorf("Slice() error = %v, want %v", rangeErr, test.want)
			}
		})
	}
}

func TestMatrixData_ToCOO(t *testing.T) {
	d := &MatrixData[algebra.Real]{Shape: shapes.Of(3, 4)}
	d.Append(2, 1, 7)
	d.Append(0, 3, 5)
	d.Append(2, 0, 1)
	got, err := d.ToCOO()
	if err != nil {
		t.Fatalf("ToCOO() error = %v", err)
	}
	want := realCOO(t, 3, 4, []rt{{0, 3, 5}, {2, 0, 1}, {2, 1, 7}})
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ToCOO() = %+v, want %+v", got, want)
	}
}

func TestMatrixData_ToCOO_ShapeFixesDims(t *testing.T) {
	d := &MatrixData[algebra.Real]{Shape: shapes.Of(3, 4)}
	d.Append(5, 0, 1)
	var oob util.IndexOutOfBoundsError
	if _, err := d.ToCOO(); !errors.As(err, &oob) {
		t.Errorf("ToCOO() error = %v, want IndexOutOfBoundsError", err)
	}
	// without a shape the dimensions grow from the indices
	free := &MatrixData[algebra.Real]{}
	free.Append(5, 0, 1)
	m, err := free.ToCOO()
	if err != nil {
		t.Fatalf("ToCOO() error = %v", err)
	}
	if got, want := m.Shape, shapes.Of(6, 1); !got.Equals(want) {
		t.Errorf("Shape = %v, want %v", got, want)
	}
}

func TestMatrixData_ToCSR(t *testing.T) {
	d := &MatrixData[algebra.Real]{Shape: shapes.Of(2, 3)}
	d.Append(1, 2, 7)
	d.Append(0, 1, 5)
	got, err := d.ToCSR()
	if err != nil {
		t.Fatalf("ToCSR() error = %v", err)
	}
	want := realCSR(t, 2, 3, []rt{{0, 1, 5}, {1, 2, 7}})
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ToCSR() = %+v, want %+v", got, want)
	}
}

func TestTensorData_FlattenIndices(t *testing.T) {
	d := &TensorData[algebra.Real]{
		Shape:   shapes.Of(2, 3),
		Indices: [][]int{{0, 1}, {1, 2}},
		Entries: []algebra.Real{5, 7},
	}
	got, err := d.FlattenIndices()
	if err != nil {
		t.Fatalf("FlattenIndices() error = %v", err)
	}
	want := &TensorData[algebra.Real]{
		Shape:   shapes.Of(6),
		Indices: [][]int{{1}, {5}},
		Entries: []algebra.Real{5, 7},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FlattenIndices() = %+v, want %+v", got, want)
	}
}

func TestTensorData_Reshape(t *testing.T) {
	d := &TensorData[algebra.Real]{
		Shape:   shapes.Of(2, 3),
		Indices: [][]int{{0, 1}, {1, 2}},
		Entries: []algebra.Real{5, 7},
	}
	got, err := d.Reshape(shapes.Of(3, 2))
	if err != nil {
		t.Fatalf("Reshape() error = %v", err)
	}
	want := &TensorData[algebra.Real]{
		Shape:   shapes.Of(3, 2),
		Indices: [][]int{{0, 1}, {2, 1}},
		Entries: []algebra.Real{5, 7},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Reshape() = %+v, want %+v", got, want)
	}

	if _, err := d.Reshape(shapes.Of(2, 2)); !errors.Is(err, shapes.ErrDimensionMismatch) {
		t.Errorf("Reshape() error = %v, want ErrDimensionMismatch", err)
	}
}

func TestVectorData_ToVector(t *testing.T) {
	d := &VectorData[algebra.Real]{Dim: 6}
	d.Append(4, 9)
	d.Append(1, 3)
	got, err := d.ToVector()
	if err != nil {
		t.Fatalf("ToVector() error = %v", err)
	}
	want := realVec(t, 6, []int{1, 4}, []algebra.Real{3, 9})
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ToVector() = %+v, want %+v", got, want)
	}
}
