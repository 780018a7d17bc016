// Package iterkit provides a pull based iterator protocol and the adapters built on top of it.
//
// # Summary
//
// An Iterator's goal is to decouple the origin of the data from the consumer who uses that data.
// Values are pulled one at a time with Next, which returns false once the iterator is exhausted.
// Optional capabilities are expressed as small interfaces:
//
//   - DoubleEnded iterators can also be consumed from the back with NextBack,
//   - ExactSize iterators know how many elements remain,
//   - SizeHinter iterators can give lower and upper bounds for the remaining elements,
//   - Cloneable iterators can be copied, and the copy iterates independently.
//
// Adapters forward these capabilities from their source wherever that is possible.
// For range-over-func interoperability, see Seq and Backward.
//
// # Resources
//
// https://en.wikipedia.org/wiki/Iterator_pattern
package iterkit

import (
	"iter"
	"math"

	"go.llib.dev/iterextd/internal/errorkitlite"
)

const (
	// ErrNotDoubleEnded is raised when an iterator is consumed from the back,
	// but its source can't iterate backwards.
	ErrNotDoubleEnded errorkitlite.Error = "ErrNotDoubleEnded"
	// ErrNotExactSize is raised when the exact length is requested from an iterator which doesn't know it.
	ErrNotExactSize errorkitlite.Error = "ErrNotExactSize"
	ErrZeroStep     errorkitlite.Error = "ErrZeroStep"
)

type Iterator[T any] interface {
	// Next returns the next value, or false when there are no more values left.
	Next() (T, bool)
}

type DoubleEnded[T any] interface {
	Iterator[T]
	// NextBack returns the next value from the back of the iterator.
	// The front and the back share the same elements, and they never cross each other.
	NextBack() (T, bool)
}

type ExactSize interface {
	// Len returns the number of the remaining elements.
	Len() int
}

type SizeHinter interface {
	// SizeHint returns the bounds on the remaining length of the iterator.
	// When ok is false, the upper bound is unknown.
	SizeHint() (lower, upper int, ok bool)
}

// Cloneable is an Iterator which can make an independent copy of itself.
// The copy starts from the same position, and advancing one doesn't affect the other.
type Cloneable[T any, I any] interface {
	Iterator[T]
	Clone() I
}

// SizeHint returns the size hint of an iterator.
// When the iterator has no hint, it returns (0, 0, false).
func SizeHint[T any](it Iterator[T]) (lower, upper int, ok bool) {
	switch it := it.(type) {
	case SizeHinter:
		return it.SizeHint()
	case ExactSize:
		n := it.Len()
		return n, n, true
	default:
		return 0, 0, false
	}
}

// Len returns the exact remaining length of an iterator.
// It panics with ErrNotExactSize if the iterator doesn't know its length.
func Len[T any](it Iterator[T]) int {
	if es, ok := it.(ExactSize); ok {
		return es.Len()
	}
	panic(ErrNotExactSize.F("%T", it))
}

// NextBack takes a value from the back of the iterator.
// It panics with ErrNotDoubleEnded if the iterator can't be consumed from the back.
func NextBack[T any](it Iterator[T]) (T, bool) {
	if de, ok := it.(DoubleEnded[T]); ok {
		return de.NextBack()
	}
	panic(ErrNotDoubleEnded.F("%T", it))
}

// Nth skips n elements and returns the one after them.
// Nth(it, 0) is equivalent to it.Next().
func Nth[T any](it Iterator[T], n int) (T, bool) {
	if nther, ok := it.(interface{ Nth(int) (T, bool) }); ok {
		return nther.Nth(n)
	}
	for ; 0 < n; n-- {
		if _, ok := it.Next(); !ok {
			var zero T
			return zero, false
		}
	}
	return it.Next()
}

func Collect[T any](it Iterator[T]) []T {
	var vs = make([]T, 0, capacity[T](it))
	for {
		v, ok := it.Next()
		if !ok {
			break
		}
		vs = append(vs, v)
	}
	return vs
}

// CollectBack collects the values by consuming the iterator from the back.
func CollectBack[T any](it DoubleEnded[T]) []T {
	var vs = make([]T, 0, capacity[T](it))
	for {
		v, ok := it.NextBack()
		if !ok {
			break
		}
		vs = append(vs, v)
	}
	return vs
}

// Seq turns the iterator into an iter.Seq.
// The returned sequence is single use, since it consumes the iterator.
func Seq[T any](it Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Backward turns the iterator into an iter.Seq which yields the values from the back.
// The returned sequence is single use, since it consumes the iterator.
func Backward[T any](it DoubleEnded[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := it.NextBack()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

const maxPrealloc = 1 << 16

func capacity[T any](it Iterator[T]) int {
	lower, _, _ := SizeHint(it)
	return min(lower, maxPrealloc)
}

// saturatingInt converts a uint64 count into int, capping it at math.MaxInt.
func saturatingInt(n uint64) (int, bool) {
	if n > math.MaxInt {
		return math.MaxInt, false
	}
	return int(n), true
}
