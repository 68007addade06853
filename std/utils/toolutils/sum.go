package toolutils

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Sum adds up an integer sequence into an int64.
func Sum[T constraints.Integer](seq iter.Seq[T]) (sum int64) {
	for v := range seq {
		sum += int64(v)
	}
	return sum
}

// Count returns the number of values in seq.
func Count[T any](seq iter.Seq[T]) (n int) {
	for range seq {
		n++
	}
	return n
}
