package shapes

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func TestNew(t *testing.T) {
	type args struct {
		dims []int
	}
	tests := []struct {
		name    string
		args    args
		want    Shape
		wantErr bool
	}{
		{
			name: "matrix",
			args: args{dims: []int{2, 3}},
			want: Shape{dims: []int{2, 3}},
		},
		{
			name: "empty axes allowed",
			args: args{dims: []int{0, 5}},
			want: Shape{dims: []int{0, 5}},
		},
		{
			name: "rank zero",
			args: args{dims: nil},
			want: Shape{},
		},
		{
			name:    "negative dimension",
			args:    args{dims: []int{2, -1}},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New(tt.args.dims...)
			if (err != nil) != tt.wantErr {
				t.Errorf("New() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if err == nil && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("New() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestShape_TotalEntriesInt(t *testing.T) {
	got, err := Of(3, 4).TotalEntriesInt()
	if err != nil {
		t.Fatalf("TotalEntriesInt() error = %v", err)
	}
	if got != 12 {
		t.Errorf("TotalEntriesInt() = %v, want 12", got)
	}
	huge := Of(math.MaxInt32, math.MaxInt32, math.MaxInt32)
	if _, err = huge.TotalEntriesInt(); !errors.Is(err, ErrTooManyEntries) {
		t.Errorf("TotalEntriesInt() error = %v, want ErrTooManyEntries", err)
	}
}

func TestShape_Strides(t *testing.T) {
	got := Of(2, 3, 4).Strides()
	want := []int{12, 4, 1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Strides() = %v, want %v", got, want)
	}
}

func TestShape_FlatIndex(t *testing.T) {
	s := Of(2, 3)
	got, err := s.FlatIndex(1, 2)
	if err != nil {
		t.Fatalf("FlatIndex() error = %v", err)
	}
	if got != 5 {
		t.Errorf("FlatIndex(1, 2) = %v, want 5", got)
	}
	if _, err = s.FlatIndex(1, 3); err == nil {
		t.Errorf("FlatIndex(1, 3) expected out-of-bounds error")
	}
	if _, err = s.FlatIndex(1); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("FlatIndex(1) error = %v, want ErrDimensionMismatch", err)
	}
}

func TestShape_Transposed(t *testing.T) {
	if got, want := Of(2, 3).Transposed(), Of(3, 2); !got.Equals(want) {
		t.Errorf("Transposed() = %v, want %v", got, want)
	}
}

func TestShape_String(t *testing.T) {
	if got := Of(7, 12).String(); got != "7x12" {
		t.Errorf("String() = %q, want %q", got, "7x12")
	}
}

func TestEnsureMultCompatible(t *testing.T) {
	if err := EnsureMultCompatible(Of(2, 3), Of(3, 4)); err != nil {
		t.Errorf("EnsureMultCompatible() = %v, want nil", err)
	}
	err := EnsureMultCompatible(Of(2, 3), Of(4, 3))
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("EnsureMultCompatible() = %v, want ErrDimensionMismatch", err)
	}
}

func TestEnsureMultTransposeCompatible(t *testing.T) {
	if err := EnsureMultTransposeCompatible(Of(2, 3), Of(4, 3)); err != nil {
		t.Errorf("EnsureMultTransposeCompatible() = %v, want nil", err)
	}
	err := EnsureMultTransposeCompatible(Of(2, 3), Of(3, 4))
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf(
			"EnsureMultTransposeCompatible() = %v, want ErrDimensionMismatch",
			err)
	}
}

func TestEnsureSame(t *testing.T) {
	if err := EnsureSame(Of(2, 2), Of(2, 2)); err != nil {
		t.Errorf("EnsureSame() = %v, want nil", err)
	}
	if err := EnsureSame(Of(2, 2), Of(2, 3)); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("EnsureSame() = %v, want ErrDimensionMismatch", err)
	}
}
