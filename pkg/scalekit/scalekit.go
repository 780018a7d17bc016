// Package scalekit rescales integer sequences from one value domain into another.
//
// A Scaling wraps a source iterator of T values,
// infers the domain of the source with a pre-scan on a clone of it,
// and yields every element linearly remapped into the output bounds of type R.
// The arithmetic happens in an intermediate integer type U, chosen by the caller.
// Construction proves that the rescale can't overflow U,
// so once a Scaling is built, iterating it never fails.
//
//	src := iterkit.Slice([]int8{-128, 0, 127})
//	it := scalekit.New[uint16, int8](src, scalekit.Inclusive[uint8](0, 255))
//	iterkit.Collect[uint8](it) // 0, 128, 255
package scalekit

import "go.llib.dev/iterextd/internal/errorkitlite"

const (
	// ErrInvertedBounds is raised when the output start is greater than the output end.
	ErrInvertedBounds errorkitlite.Error = "ErrInvertedBounds"
	// ErrIntermediateOverflow is raised when a bound or an extreme of the source domain
	// can't be represented in the intermediate type.
	ErrIntermediateOverflow errorkitlite.Error = "ErrIntermediateOverflow"
	// ErrMulOverflow is raised when the rescale multiplication could overflow the intermediate type.
	ErrMulOverflow errorkitlite.Error = "ErrMulOverflow"
)
