// Package parallel provides the bounded fan-out helpers behind the
// concurrent matrix kernels.
package parallel

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

var workers = runtime.GOMAXPROCS(0)

// Workers returns the fan-out width used by For and BlockedFor.
func Workers() int { return workers }

// SetWorkers sets the fan-out width.  A non-positive n restores the
// default of GOMAXPROCS.  SetWorkers is not synchronized; call it before
// launching kernels.
func SetWorkers(n int) {
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	workers = n
}

// For partitions [0, n) into one contiguous chunk per worker, runs fn on
// each chunk from its own goroutine, and waits for all of them.
// It returns the first non-nil error; chunks already started still run to
// completion.
func For(n int, fn func(start, end int) error) error {
	if n <= 0 {
		return nil
	}
	nw := workers
	if nw > n {
		nw = n
	}
	if nw <= 1 {
		return fn(0, n)
	}
	chunk := (n + nw - 1) / nw
	var g errgroup.Group
	for start := 0; start < n; start += chunk {
		start := start // per-iteration copy; go.mod targets go < 1.22
		end := start + chunk
		if end > n {
			end = n
		}
		g.Go(func() error { return fn(start, end) })
	}
	return g.Wait()
}

// BlockedFor is For with block-aligned chunks: every chunk boundary except
// possibly the last is a multiple of blockSize, so callees can tile
// [start, end) in whole blocks.  A non-positive blockSize is treated as 1.
func BlockedFor(n, blockSize int, fn func(start, end int) error) error {
	if blockSize <= 0 {
		blockSize = 1
	}
	blocks := (n + blockSize - 1) / blockSize
	return For(blocks, func(blockStart, blockEnd int) error {
		end := blockEnd * blockSize
		if end > n {
			end = n
		}
		return fn(blockStart*blockSize, end)
	})
}
