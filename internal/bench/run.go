package bench

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/mat"

	"k3l.io/go-linalg/pkg/algebra"
	"k3l.io/go-linalg/pkg/dense"
	"k3l.io/go-linalg/pkg/shapes"
	"k3l.io/go-linalg/pkg/util"
)

// verifyTol is the relative tolerance against the gonum baseline.
// The kernels and gonum accumulate in different orders, so results agree
// only up to rounding.
const verifyTol = 1e-9

// Run times every kernel of the case's palette and reports per-kernel
// results.  Operand entries are drawn from the case seed, so runs with
// the same seed time identical inputs.
func Run(ctx context.Context, c Case) ([]Result, error) {
	logger := zerolog.Ctx(ctx).With().Str("case", c.Name).Logger()
	if c.Rows < 1 || c.Inner < 1 || (c.Kind != Vector && c.Cols < 1) {
		return nil, fmt.Errorf("case %q dimensions %dx%dx%d must be positive",
			c.Name, c.Rows, c.Inner, c.Cols)
	}
	if c.Repeats < 1 {
		return nil, fmt.Errorf("repeats=%d must be positive", c.Repeats)
	}
	rng := rand.New(rand.NewSource(c.Seed))

	// exec runs one kernel; the returned check compares its product
	// against the gonum baseline and is nil without Verify.
	var exec func(alg dense.Algorithm) (check func() error, err error)
	switch c.Kind {
	case Vector:
		a := randomMatrix(rng, c.Rows, c.Inner)
		v := randomSlice(rng, c.Inner)
		var want []float64
		if c.Verify {
			var product mat.VecDense
			product.MulVec(gonumDense(a), mat.NewVecDense(len(v), floats(v)))
			want = product.RawVector().Data
		}
		exec = func(alg dense.Algorithm) (func() error, error) {
			got, err := dense.MultVecReal(a, v, dense.WithAlgorithm(alg))
			if err != nil || want == nil {
				return nil, err
			}
			return func() error { return checkClose(got, want) }, nil
		}
	case Transpose:
		a := randomMatrix(rng, c.Rows, c.Inner)
		b := randomMatrix(rng, c.Cols, c.Inner)
		var want []float64
		if c.Verify {
			var product mat.Dense
			product.Mul(gonumDense(a), gonumDense(b).T())
			want = product.RawMatrix().Data
		}
		exec = func(alg dense.Algorithm) (func() error, error) {
			got, err := dense.MultTransposeReal(a, b, dense.WithAlgorithm(alg))
			if err != nil || want == nil {
				return nil, err
			}
			return func() error { return checkClose(got.Data, want) }, nil
		}
	default:
		a := randomMatrix(rng, c.Rows, c.Inner)
		b := randomMatrix(rng, c.Inner, c.Cols)
		var want []float64
		if c.Verify {
			var product mat.Dense
			product.Mul(gonumDense(a), gonumDense(b))
			want = product.RawMatrix().Data
		}
		exec = func(alg dense.Algorithm) (func() error, error) {
			got, err := dense.MultReal(a, b, dense.WithAlgorithm(alg))
			if err != nil || want == nil {
				return nil, err
			}
			return func() error { return checkClose(got.Data, want) }, nil
		}
	}

	selected := c.Selected()
	algorithms := c.palette()
	timeLogger := util.NewWallTimeLogger(logger)
	results := make([]Result, 0, len(algorithms))
	for _, alg := range algorithms {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		var best, total time.Duration
		var check func() error
		for r := 0; r < c.Repeats; r++ {
			start := time.Now()
			chk, err := exec(alg)
			elapsed := time.Since(start)
			if err != nil {
				return nil, err
			}
			check = chk
			total += elapsed
			if r == 0 || elapsed < best {
				best = elapsed
			}
		}
		if check != nil {
			if err := check(); err != nil {
				return nil, fmt.Errorf(
					"kernel %v diverged from baseline: %w", alg, err)
			}
		}
		timeLogger.Log(alg.String())
		results = append(results, Result{
			Case:      c.Name,
			Kind:      c.Kind,
			Rows:      c.Rows,
			Inner:     c.Inner,
			Cols:      c.Cols,
			Algorithm: alg,
			Selected:  alg == selected,
			Best:      best,
			Mean:      total / time.Duration(c.Repeats),
		})
	}
	logger.Debug().
		Str("kind", c.Kind.String()).
		Int("rows", c.Rows).
		Int("inner", c.Inner).
		Int("cols", c.Cols).
		Int("repeats", c.Repeats).
		Int("algorithms", len(algorithms)).
		Str("selected", selected.String()).
		Msg("finished case")
	return results, nil
}

// randomMatrix draws entries uniformly from [-1, 1).
func randomMatrix(rng *rand.Rand, rows, cols int) *dense.Matrix[algebra.Real] {
	data := make([]algebra.Real, rows*cols)
	for i := range data {
		data[i] = algebra.Real(rng.Float64()*2 - 1)
	}
	return &dense.Matrix[algebra.Real]{Shape: shapes.Of(rows, cols), Data: data}
}

func randomSlice(rng *rand.Rand, n int) []algebra.Real {
	v := make([]algebra.Real, n)
	for i := range v {
		v[i] = algebra.Real(rng.Float64()*2 - 1)
	}
	return v
}

func floats(v []algebra.Real) []float64 {
	return util.Map(v, func(x algebra.Real) float64 { return float64(x) })
}

func gonumDense(m *dense.Matrix[algebra.Real]) *mat.Dense {
	return mat.NewDense(m.Rows(), m.Cols(), floats(m.Data))
}

// checkClose compares a kernel product against the baseline entry by
// entry with relative tolerance.
func checkClose(got []algebra.Real, want []float64) error {
	if len(got) != len(want) {
		return fmt.Errorf("product has %d entries, baseline has %d",
			len(got), len(want))
	}
	for i, w := range want {
		g := float64(got[i])
		if math.Abs(g-w) > verifyTol*math.Max(1, math.Abs(w)) {
			return fmt.Errorf("entry %d: kernel %v, baseline %v", i, g, w)
		}
	}
	return nil
}
