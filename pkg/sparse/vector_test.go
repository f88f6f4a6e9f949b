package sparse

import (
	"errors"
	"reflect"
	"testing"

	"k3l.io/go-linalg/pkg/algebra"
	"k3l.io/go-linalg/pkg/shapes"
)

func realVec(t *testing.T, dim int, indices []int, entries []algebra.Real) *Vector[algebra.Real] {
	t.Helper()
	v, err := NewVector(dim, indices, entries)
	if err != nil {
		t.Fatalf("NewVector() error = %v", err)
	}
	return v
}

func TestNewVector(t *testing.T) {
	type args struct {
		dim     int
		indices []int
		entries []algebra.Real
	}
	tests := []struct {
		name    string
		args    args
		wantErr bool
	}{
		{"valid", args{5, []int{0, 3}, []algebra.Real{1, 2}}, false},
		{"empty", args{0, nil, nil}, false},
		{"negativeDim", args{-1, nil, nil}, true},
		{"lengthMismatch", args{5, []int{0}, []algebra.Real{1, 2}}, true},
		{"indexOutOfRange", args{5, []int{5}, []algebra.Real{1}}, true},
		{"notAscending", args{5, []int{3, 1}, []algebra.Real{1, 2}}, true},
		{"duplicateIndex", args{5, []int{2, 2}, []algebra.Real{1, 2}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewVector(tt.args.dim, tt.args.indices, tt.args.entries)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewVector() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestVector_At(t *testing.T) {
	v := realVec(t, 6, []int{1, 4}, []algebra.Real{2, 5})
	if got, found := v.At(4); !found || got != 5 {
		t.Errorf("At(4) = %v, %v, want 5, true", got, found)
	}
	if _, found := v.At(2); found {
		t.Errorf("At(2) found an entry, want none")
	}
}

func TestVector_Add(t *testing.T) {
	a := realVec(t, 5, []int{0, 2}, []algebra.Real{1, 2})
	b := realVec(t, 5, []int{2, 4}, []algebra.Real{3, 4})
	got, err := a.Add(b)
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	want := realVec(t, 5, []int{0, 2, 4}, []algebra.Real{1, 5, 4})
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Add() = %+v, want %+v", got, want)
	}
}

func TestVector_Sub(t *testing.T) {
	a := realVec(t, 5, []int{0, 2}, []algebra.Real{1, 2})
	b := realVec(t, 5, []int{2, 4}, []algebra.Real{3, 4})
	got, err := a.Sub(b)
	if err != nil {
		t.Fatalf("Sub() error = %v", err)
	}
	want := realVec(t, 5, []int{0, 2, 4}, []algebra.Real{1, -1, -4})
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Sub() = %+v, want %+v", got, want)
	}
}

func TestVector_ElemMult(t *testing.T) {
	a := realVec(t, 5, []int{0, 2}, []algebra.Real{1, 2})
	b := realVec(t, 5, []int{2, 4}, []algebra.Real{3, 4})
	got, err := a.ElemMult(b)
	if err != nil {
		t.Fatalf("ElemMult() error = %v", err)
	}
	want := realVec(t, 5, []int{2}, []algebra.Real{6})
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ElemMult() = %+v, want %+v", got, want)
	}
}

func TestVector_Add_DimMismatch(t *testing.T) {
	a := realVec(t, 5, nil, nil)
	b := realVec(t, 4, nil, nil)
	if _, err := a.Add(b); !errors.Is(err, shapes.ErrDimensionMismatch) {
		t.Errorf("Add() error = %v, want ErrDimensionMismatch", err)
	}
}

func TestVector_DenseRoundTrip(t *testing.T) {
	data := []algebra.Real{0, 3, 0, 0, 7}
	v := FromDenseVector(data)
	if v.Dim != 5 || v.NNZ() != 2 {
		t.Fatalf("FromDenseVector() dim = %d, NNZ = %d, want 5, 2",
			v.Dim, v.NNZ())
	}
	if got := v.ToDense(); !reflect.DeepEqual(got, data) {
		t.Errorf("ToDense() = %v, want %v", got, data)
	}
}
