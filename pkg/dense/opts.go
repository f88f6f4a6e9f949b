package dense

// DefaultBlockSize is the default tile edge for the blocked kernels.
const DefaultBlockSize = 64

// MultOpts carries the tuning knobs for a multiplication call.
type MultOpts struct {
	// Algorithm overrides the shape-driven kernel choice.
	// AlgoAuto (the zero value) keeps the dispatcher in charge.
	Algorithm Algorithm
	// BlockSize is the tile edge used by blocked kernels.
	BlockSize int
}

// MultOpt customizes a single multiplication call.
type MultOpt func(*MultOpts)

// NewMultOpts returns the defaults with the given overrides applied.
func NewMultOpts(opts ...MultOpt) *MultOpts {
	o := &MultOpts{
		Algorithm: AlgoAuto,
		BlockSize: DefaultBlockSize,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.BlockSize <= 0 {
		o.BlockSize = DefaultBlockSize
	}
	return o
}

// WithAlgorithm forces a specific kernel, bypassing shape dispatch.
func WithAlgorithm(alg Algorithm) MultOpt {
	return func(o *MultOpts) { o.Algorithm = alg }
}

// WithBlockSize overrides the blocked-kernel tile edge.
func WithBlockSize(blockSize int) MultOpt {
	return func(o *MultOpts) { o.BlockSize = blockSize }
}
