package scalekit

import (
	"fmt"

	"go.llib.dev/iterextd/pkg/mathkit"
)

// Bounds describes the output range of a Scaling.
// A missing bound stands for the minimum or maximum of R.
type Bounds[R mathkit.Integer] struct {
	lo, hi       R
	hasLo, hasHi bool
}

// Inclusive bounds include both lo and hi.
func Inclusive[R mathkit.Integer](lo, hi R) Bounds[R] {
	return Bounds[R]{lo: lo, hi: hi, hasLo: true, hasHi: true}
}

// From bounds start at lo and end at the maximum of R.
func From[R mathkit.Integer](lo R) Bounds[R] {
	return Bounds[R]{lo: lo, hasLo: true}
}

// UpTo bounds start at the minimum of R and end at hi, which is included.
func UpTo[R mathkit.Integer](hi R) Bounds[R] {
	return Bounds[R]{hi: hi, hasHi: true}
}

// Full bounds cover the whole range of R.
func Full[R mathkit.Integer]() Bounds[R] {
	return Bounds[R]{}
}

// Pair makes inclusive bounds from a start and end pair.
func Pair[R mathkit.Integer](start, end R) Bounds[R] {
	return Inclusive(start, end)
}

// Normalize resolves the missing bounds.
// It doesn't validate that start is not greater than end.
func (b Bounds[R]) Normalize() (start, end R) {
	start, end = mathkit.MinInt[R](), mathkit.MaxInt[R]()
	if b.hasLo {
		start = b.lo
	}
	if b.hasHi {
		end = b.hi
	}
	return start, end
}

func (b Bounds[R]) String() string {
	var lo, hi string
	if b.hasLo {
		lo = fmt.Sprint(b.lo)
	}
	if b.hasHi {
		hi = "=" + fmt.Sprint(b.hi)
	}
	return lo + ".." + hi
}
