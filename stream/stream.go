// Package stream builds lazy processing pipelines on top of iter.Seq.
// Nothing is evaluated until the resulting sequence is consumed, so sources
// may be unbounded as long as the pipeline ends in Take or an early break.
package stream

import "iter"

// Of yields the given items in order.
func Of[T any](items ...T) iter.Seq[T] {
	return From(items)
}

// From yields the elements of s in order.
func From[T any](s []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range s {
			if !yield(item) {
				return
			}
		}
	}
}

// Map applies fn to every element of src.
func Map[T, U any](src iter.Seq[T], fn func(T) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		for item := range src {
			if !yield(fn(item)) {
				return
			}
		}
	}
}

// Filter keeps the elements of src for which keep returns true.
func Filter[T any](src iter.Seq[T], keep func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range src {
			if keep(item) && !yield(item) {
				return
			}
		}
	}
}

// Take yields at most n elements of src.
func Take[T any](src iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}

		left := n
		for item := range src {
			if !yield(item) {
				return
			}

			left--
			if left == 0 {
				return
			}
		}
	}
}

// Enumerate pairs every element of src with its position, counting from
// start.
func Enumerate[T any](src iter.Seq[T], start int) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := start
		for item := range src {
			if !yield(i, item) {
				return
			}
			i++
		}
	}
}

// Zip pairs elements of a and b positionally and stops at the shorter
// sequence.
func Zip[A, B any](a iter.Seq[A], b iter.Seq[B]) iter.Seq2[A, B] {
	return func(yield func(A, B) bool) {
		nextB, stop := iter.Pull(b)
		defer stop()

		for av := range a {
			bv, ok := nextB()
			if !ok {
				return
			}

			if !yield(av, bv) {
				return
			}
		}
	}
}

// Reduce folds src into a single value, starting from init. Reduce is a
// terminal operation: it consumes the whole sequence.
func Reduce[T, A any](src iter.Seq[T], init A, fn func(A, T) A) A {
	acc := init
	for item := range src {
		acc = fn(acc, item)
	}

	return acc
}

// Pipeline applies ops to src left to right. Each op is a lazy
// sequence-to-sequence transformation, typically a partially applied Map,
// Filter or Take.
func Pipeline[T any](src iter.Seq[T], ops ...func(iter.Seq[T]) iter.Seq[T]) iter.Seq[T] {
	current := src
	for _, op := range ops {
		current = op(current)
	}

	return current
}
