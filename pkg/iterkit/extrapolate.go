package iterkit

import (
	"math"

	"go.llib.dev/iterextd/pkg/mathkit"
)

// Extrapolate yields the elements of the iterator,
// then continues the sequence endlessly with the difference of its last two elements.
// A single element source continues with the difference from zero.
// An empty source stays empty.
//
// Integer values wrap around on overflow, like any Go integer arithmetic.
//
//	Extrapolate(Slice([]int{2, 5, 6, 9, 13})) // 2, 5, 6, 9, 13, 17, 21, 25, ...
func Extrapolate[T mathkit.Number](it Iterator[T]) *ExtrapolateIter[T] {
	return &ExtrapolateIter[T]{it: it}
}

type ExtrapolateIter[T mathkit.Number] struct {
	it         Iterator[T]
	prev, last T
	started    bool
	extending  bool
}

func (e *ExtrapolateIter[T]) Next() (T, bool) {
	if !e.extending {
		v, ok := e.it.Next()
		if ok {
			e.prev, e.last, e.started = e.last, v, true
			return v, true
		}
		if !e.started {
			return v, false
		}
		e.extending = true
	}
	next := e.last + (e.last - e.prev)
	e.prev, e.last = e.last, next
	return next, true
}

func (e *ExtrapolateIter[T]) SizeHint() (lower, upper int, ok bool) {
	if !e.started {
		srcLower, srcUpper, srcOK := SizeHint(e.it)
		if srcOK && srcUpper == 0 {
			return 0, 0, true
		}
		if srcLower == 0 {
			return 0, 0, false
		}
	}
	return math.MaxInt, 0, false
}
