package iterkit

import (
	"math"

	"go.llib.dev/iterextd/pkg/convkit"
	"go.llib.dev/iterextd/pkg/mathkit"
)

// Slice returns a double ended, exact size iterator over the values of a slice.
// The slice is not modified.
func Slice[T any](vs []T) *SliceIter[T] {
	return &SliceIter[T]{vs: vs}
}

type SliceIter[T any] struct {
	vs []T
}

func (i *SliceIter[T]) Next() (T, bool) {
	if len(i.vs) == 0 {
		var zero T
		return zero, false
	}
	v := i.vs[0]
	i.vs = i.vs[1:]
	return v, true
}

func (i *SliceIter[T]) NextBack() (T, bool) {
	if len(i.vs) == 0 {
		var zero T
		return zero, false
	}
	v := i.vs[len(i.vs)-1]
	i.vs = i.vs[:len(i.vs)-1]
	return v, true
}

func (i *SliceIter[T]) Nth(n int) (T, bool) {
	if n < 0 {
		n = 0
	}
	if len(i.vs) <= n {
		i.vs = i.vs[len(i.vs):]
		var zero T
		return zero, false
	}
	v := i.vs[n]
	i.vs = i.vs[n+1:]
	return v, true
}

func (i *SliceIter[T]) Len() int { return len(i.vs) }

func (i *SliceIter[T]) Clone() *SliceIter[T] {
	return &SliceIter[T]{vs: i.vs}
}

// Range returns an iterator over the integers from begin to end, both included.
// When end is less than begin, the iterator is empty.
//
// The iterator knows its exact length, unless the range has more elements than what an int can count.
// In that case Len panics with ErrNotExactSize.
func Range[T mathkit.Integer](begin, end T) *RangeIter[T] {
	return &RangeIter[T]{front: begin, back: end, done: end < begin}
}

type RangeIter[T mathkit.Integer] struct {
	front, back T
	done        bool
}

func (r *RangeIter[T]) Next() (T, bool) {
	if r.done {
		var zero T
		return zero, false
	}
	v := r.front
	if r.front == r.back {
		r.done = true
	} else {
		r.front++
	}
	return v, true
}

func (r *RangeIter[T]) NextBack() (T, bool) {
	if r.done {
		var zero T
		return zero, false
	}
	v := r.back
	if r.front == r.back {
		r.done = true
	} else {
		r.back--
	}
	return v, true
}

func (r *RangeIter[T]) Nth(n int) (T, bool) {
	if n <= 0 {
		return r.Next()
	}
	if span, ok := r.span(); !ok || span < uint64(n) {
		r.done = true
		var zero T
		return zero, false
	}
	// n is within the span, so the wrapping addition lands on the right value
	r.front += T(n)
	return r.Next()
}

func (r *RangeIter[T]) Len() int {
	lower, _, ok := r.SizeHint()
	if !ok {
		panic(ErrNotExactSize.F("%d..=%d has more elements than the maximum int", r.front, r.back))
	}
	return lower
}

func (r *RangeIter[T]) SizeHint() (lower, upper int, ok bool) {
	span, ok := r.span()
	if !ok {
		return 0, 0, true
	}
	if span == math.MaxUint64 {
		return math.MaxInt, 0, false
	}
	n, ok := saturatingInt(span + 1)
	if !ok {
		return n, 0, false
	}
	return n, n, true
}

func (r *RangeIter[T]) Clone() *RangeIter[T] {
	c := *r
	return &c
}

// span returns the distance between the front and the back,
// which is one less than the number of remaining elements.
func (r *RangeIter[T]) span() (uint64, bool) {
	if r.done {
		return 0, false
	}
	// the by add conversion into uint64 preserves order for every integer type
	return convkit.ByAdd[uint64](r.back) - convkit.ByAdd[uint64](r.front), true
}
