package sparse

import "fmt"

// Triple is a single coordinate-format matrix entry.
type Triple[T any] struct {
	Row    int
	Column int
	Value  T
}

func (t Triple[T]) String() string {
	return fmt.Sprintf("(%d, %d)=%v", t.Row, t.Column, t.Value)
}

// TriplesByRowColumn sorts triples lexicographically by (row, column).
type TriplesByRowColumn[T any] []Triple[T]

func (s TriplesByRowColumn[T]) Len() int { return len(s) }

func (s TriplesByRowColumn[T]) Less(i, j int) bool {
	switch {
	case s[i].Row < s[j].Row:
		return true
	case s[i].Row > s[j].Row:
		return false
	default:
		return s[i].Column < s[j].Column
	}
}

func (s TriplesByRowColumn[T]) Swap(i, j int) { s[i], s[j] = s[j], s[i] }
