package sparse

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"k3l.io/go-linalg/pkg/algebra"
	"k3l.io/go-linalg/pkg/dense"
	"k3l.io/go-linalg/pkg/util"
)

func TestSparseProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("dense round trip preserves entries", prop.ForAll(
		func(rows, cols int, seed int64) bool {
			rng := rand.New(rand.NewSource(seed))
			m := randomRealCOO(rng, rows, cols, 0.4)
			d := util.Must(m.ToDense())
			back := util.Must(FromDense(d).ToCSR().ToDense())
			return reflect.DeepEqual(back, d)
		},
		gen.IntRange(1, 6), gen.IntRange(1, 6), gen.Int64(),
	))

	properties.Property("format conversions preserve entries", prop.ForAll(
		func(rows, cols int, seed int64) bool {
			rng := rand.New(rand.NewSource(seed))
			m := randomRealCOO(rng, rows, cols, 0.4)
			back := m.ToCSR().ToCOO()
			return back.Equals(m) && back.NNZ() == m.NNZ()
		},
		gen.IntRange(1, 6), gen.IntRange(1, 6), gen.Int64(),
	))

	properties.Property("addition matches the dense sum", prop.ForAll(
		func(rows, cols int, seed1, seed2 int64) bool {
			a := randomRealCOO(
				rand.New(rand.NewSource(seed1)), rows, cols, 0.4).ToCSR()
			b := randomRealCOO(
				rand.New(rand.NewSource(seed2)), rows, cols, 0.4).ToCSR()
			got := util.Must(util.Must(a.Add(b)).ToDense())
			aDense := util.Must(a.ToDense())
			bDense := util.Must(b.ToDense())
			sum := make([]algebra.Real, len(aDense.Data))
			for p := range sum {
				sum[p] = aDense.Data[p].Add(bDense.Data[p])
			}
			want := &dense.Matrix[algebra.Real]{Shape: aDense.Shape, Data: sum}
			return reflect.DeepEqual(got, want)
		},
		gen.IntRange(1, 6), gen.IntRange(1, 6), gen.Int64(), gen.Int64(),
	))

	properties.Property("multiplication matches the dense product", prop.ForAll(
		func(m, n, k int, seed1, seed2 int64) bool {
			a := randomRealCOO(
				rand.New(rand.NewSource(seed1)), m, n, 0.4).ToCSR()
			b := randomRealCOO(
				rand.New(rand.NewSource(seed2)), n, k, 0.4).ToCSR()
			got := util.Must(MultCSR(a, b))
			want := util.Must(dense.MultReal(
				util.Must(a.ToDense()), util.Must(b.ToDense())))
			return reflect.DeepEqual(got, want)
		},
		gen.IntRange(1, 6), gen.IntRange(1, 6), gen.IntRange(1, 6),
		gen.Int64(), gen.Int64(),
	))

	properties.Property("concurrent multiplication matches sequential", prop.ForAll(
		func(m, n, k int, seed1, seed2 int64) bool {
			a := randomRealCOO(rand.New(rand.NewSource(seed1)), m, n, 0.4)
			b := randomRealCOO(rand.New(rand.NewSource(seed2)), n, k, 0.4)
			got := util.Must(ConcurrentMultCOO(a, b))
			want := util.Must(MultCOO(a, b))
			return reflect.DeepEqual(got, want)
		},
		gen.IntRange(1, 6), gen.IntRange(1, 6), gen.IntRange(1, 6),
		gen.Int64(), gen.Int64(),
	))

	properties.Property("transposition is an involution", prop.ForAll(
		func(rows, cols int, seed int64) bool {
			rng := rand.New(rand.NewSource(seed))
			m := randomRealCOO(rng, rows, cols, 0.4).ToCSR()
			back := m.Transpose().Transpose()
			return back.Equals(m) && back.NNZ() == m.NNZ()
		},
		gen.IntRange(1, 6), gen.IntRange(1, 6), gen.Int64(),
	))

	properties.TestingRun(t)
}
