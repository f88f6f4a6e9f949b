// Package util contains various utilities used by go-linalg.
package util

import (
	"fmt"
	"slices"
)

// GrowCap grows the capacity of a slice to at least the given target.
// The size grow exponentially, in order to avoid frequent reallocation/moving.
func GrowCap[T any](s []T, target int) []T {
	c := cap(s)
	for c < target {
		c = c*11/10 + 10
	}
	return slices.Grow(s, c-len(s))
}

// ShrinkWrap shrink-wraps the slice, i.e. leaves no excess capacity.
// Identical to slices.Clip, except it coerces zero-length slice into nil.
func ShrinkWrap[T any](s []T) []T {
	if len(s) == 0 {
		return nil
	}
	return slices.Clip(s)
}

// Map applies a function to each slice element and returns results as a slice.
func Map[S any, T any](s []S, f func(S) T) (t []T) {
	for _, v := range s {
		t = append(t, f(v))
	}
	return
}

// MapWithErr applies a function to each slice element
// and returns results as a slice, stopping at the first error return.
//
// len(t) < len(s) iff err != nil; in this case, err is from the function
// called with s[len(t)].
func MapWithErr[S any, T any](
	s []S, f func(S) (T, error),
) (t []T, err error) {
	t = make([]T, 0, len(s))
	var tv T
	for _, sv := range s {
		tv, err = f(sv)
		if err != nil {
			return
		}
		t = append(t, tv)
	}
	return
}

// IndexOutOfBoundsError is returned when the requested index is out of bounds.
type IndexOutOfBoundsError struct {
	Index int
	Bound int
}

func (e IndexOutOfBoundsError) Error() string {
	return fmt.Sprintf("index %d out of bounds 0 <= index < %d", e.Index,
		e.Bound)
}
