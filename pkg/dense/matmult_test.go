package dense

import (
	"fmt"
	"math/rand"
	"reflect"
	"testing"

	"k3l.io/go-linalg/pkg/algebra"
	"k3l.io/go-linalg/pkg/shapes"
	"k3l.io/go-linalg/pkg/util"
)

var matMultAlgorithms = []Algorithm{
	AlgoStandard,
	AlgoReordered,
	AlgoBlocked,
	AlgoBlockedReordered,
	AlgoConcurrentStandard,
	AlgoConcurrentReordered,
	AlgoConcurrentBlocked,
	AlgoConcurrentBlockedReordered,
}

var vecMultAlgorithms = []Algorithm{
	AlgoStandardVector,
	AlgoBlockedVector,
	AlgoConcurrentStandardVector,
	AlgoConcurrentBlockedVector,
}

var transposeMultAlgorithms = []Algorithm{
	AlgoMultTranspose,
	AlgoMultTransposeBlocked,
	AlgoMultTransposeConcurrent,
	AlgoMultTransposeBlockedConcurrent,
}

func TestMultReal_KnownProduct(t *testing.T) {
	//	║   0    1
	//	══╬═════════
	//	0 ║   1    2
	//	1 ║   3    4
	m1 := util.Must(New(shapes.Of(2, 2), []algebra.Real{1, 2, 3, 4}))
	//	║   0    1
	//	══╬═════════
	//	0 ║   5    6
	//	1 ║   7    8
	m2 := util.Must(New(shapes.Of(2, 2), []algebra.Real{5, 6, 7, 8}))
	want := []algebra.Real{19, 22, 43, 50}
	for _, alg := range matMultAlgorithms {
		got, err := MultReal(m1, m2, WithAlgorithm(alg), WithBlockSize(1))
		if err != nil {
			t.Fatalf("%v: MultReal() error = %v", alg, err)
		}
		if !reflect.DeepEqual(got.Data, want) {
			t.Errorf("%v: MultReal() = %v, want %v", alg, got.Data, want)
		}
	}
}

func TestMultReal_KernelsMatchStandard(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	dims := []struct{ rows1, cols1, cols2 int }{
		{1, 1, 1},
		{3, 4, 5},
		{7, 7, 7},
		{13, 9, 21},
		{32, 64, 16},
		{65, 33, 129},
	}
	for _, d := range dims {
		m1 := randomRealMatrix(rng, d.rows1, d.cols1)
		m2 := randomRealMatrix(rng, d.cols1, d.cols2)
		want := util.Must(MultReal(m1, m2, WithAlgorithm(AlgoStandard)))
		for _, alg := range matMultAlgorithms[1:] {
			for _, blockSize := range []int{3, DefaultBlockSize} {
				got := util.Must(MultReal(
					m1, m2, WithAlgorithm(alg), WithBlockSize(blockSize)))
				if !reflect.DeepEqual(got.Data, want.Data) {
					t.Errorf("%dx%d * %dx%d via %v (block %d) differs from standard",
						d.rows1, d.cols1, d.cols1, d.cols2, alg, blockSize)
				}
			}
		}
	}
}

func TestMultComplex_KernelsMatchStandard(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	m1 := randomComplexMatrix(rng, 17, 23)
	m2 := randomComplexMatrix(rng, 23, 11)
	want := util.Must(MultComplex(m1, m2, WithAlgorithm(AlgoStandard)))
	for _, alg := range matMultAlgorithms[1:] {
		got := util.Must(MultComplex(
			m1, m2, WithAlgorithm(alg), WithBlockSize(4)))
		if !reflect.DeepEqual(got.Data, want.Data) {
			t.Errorf("%v differs from standard", alg)
		}
	}
}

func TestMultRealComplex_KnownProduct(t *testing.T) {
	m1 := util.Must(New(shapes.Of(2, 2), []algebra.Real{1, 2, 3, 4}))
	i := algebra.Complex(complex(0, 1))
	m2 := util.Must(New(shapes.Of(2, 2), []algebra.Complex{i, 0, 0, i}))
	got, err := MultRealComplex(m1, m2)
	if err != nil {
		t.Fatalf("MultRealComplex() error = %v", err)
	}
	want := []algebra.Complex{
		complex(0, 1), complex(0, 2), complex(0, 3), complex(0, 4),
	}
	if !reflect.DeepEqual(got.Data, want) {
		t.Errorf("MultRealComplex() = %v, want %v", got.Data, want)
	}
	swapped, err := MultComplexReal(m2, m1)
	if err != nil {
		t.Fatalf("MultComplexReal() error = %v", err)
	}
	wantSwapped := []algebra.Complex{
		complex(0, 1), complex(0, 2), complex(0, 3), complex(0, 4),
	}
	if !reflect.DeepEqual(swapped.Data, wantSwapped) {
		t.Errorf("MultComplexReal() = %v, want %v", swapped.Data, wantSwapped)
	}
}

func TestMultReal_EmptyOperands(t *testing.T) {
	empty := util.Must(New[algebra.Real](shapes.Of(0, 3), nil))
	m2 := randomRealMatrix(rand.New(rand.NewSource(1)), 3, 4)
	got, err := MultReal(empty, m2)
	if err != nil {
		t.Fatalf("MultReal() error = %v", err)
	}
	if got.Rows() != 0 || got.Cols() != 4 || len(got.Data) != 0 {
		t.Errorf("MultReal() = %vx%v with %d entries, want 0x4 with 0",
			got.Rows(), got.Cols(), len(got.Data))
	}

	// A zero-length inner dimension yields an all-zero product.
	m1 := util.Must(New[algebra.Real](shapes.Of(2, 0), nil))
	m2 = util.Must(New[algebra.Real](shapes.Of(0, 3), nil))
	got = util.Must(MultReal(m1, m2))
	want := []algebra.Real{0, 0, 0, 0, 0, 0}
	if !reflect.DeepEqual(got.Data, want) {
		t.Errorf("MultReal() with empty inner dim = %v, want %v", got.Data, want)
	}
}

func TestMultVecReal_KernelsMatchColumnMatrix(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	m := randomRealMatrix(rng, 37, 19)
	col := randomRealMatrix(rng, 19, 1)
	want := util.Must(MultReal(m, col))
	for _, alg := range vecMultAlgorithms {
		got, err := MultVecReal(
			m, col.Data, WithAlgorithm(alg), WithBlockSize(5))
		if err != nil {
			t.Fatalf("%v: MultVecReal() error = %v", alg, err)
		}
		if !reflect.DeepEqual(got, want.Data) {
			t.Errorf("%v: MultVecReal() = %v, want %v", alg, got, want.Data)
		}
	}
}

func TestMultVecComplexReal_WidensVector(t *testing.T) {
	m := util.Must(New(shapes.Of(2, 2), []algebra.Complex{
		complex(1, 1), 0,
		0, complex(2, -1),
	}))
	got, err := MultVecComplexReal(m, []algebra.Real{3, 5})
	if err != nil {
		t.Fatalf("MultVecComplexReal() error = %v", err)
	}
	want := []algebra.Complex{complex(3, 3), complex(10, -5)}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MultVecComplexReal() = %v, want %v", got, want)
	}
}

func TestMultTransposeReal_KernelsMatchExplicitTranspose(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	m1 := randomRealMatrix(rng, 14, 27)
	m2 := randomRealMatrix(rng, 9, 27)
	want := util.Must(MultReal(m1, m2.Transpose(), WithAlgorithm(AlgoStandard)))
	for _, alg := range transposeMultAlgorithms {
		got, err := MultTransposeReal(
			m1, m2, WithAlgorithm(alg), WithBlockSize(4))
		if err != nil {
			t.Fatalf("%v: MultTransposeReal() error = %v", alg, err)
		}
		if !reflect.DeepEqual(got.Data, want.Data) {
			t.Errorf("%v differs from explicit transpose product", alg)
		}
	}
}

func TestMultTransposeComplex_MatchesExplicitTranspose(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	m1 := randomComplexMatrix(rng, 8, 12)
	m2 := randomComplexMatrix(rng, 10, 12)
	want := util.Must(MultComplex(m1, m2.Transpose()))
	got := util.Must(MultTransposeComplex(m1, m2))
	if !reflect.DeepEqual(got.Data, want.Data) {
		t.Errorf("MultTransposeComplex() differs from explicit transpose product")
	}
}

func BenchmarkMultReal(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	for _, n := range []int{16, 64, 256} {
		m1 := randomRealMatrix(rng, n, n)
		m2 := randomRealMatrix(rng, n, n)
		b.Run(fmt.Sprintf("%dx%d", n, n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := MultReal(m1, m2); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkRealKernels(b *testing.B) {
	rng := rand.New(rand.NewSource(2))
	m1 := randomRealMatrix(rng, 128, 128)
	m2 := randomRealMatrix(rng, 128, 128)
	for _, alg := range matMultAlgorithms {
		b.Run(alg.String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := MultReal(m1, m2, WithAlgorithm(alg)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
