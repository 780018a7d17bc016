package scalekit

import (
	"fmt"
	"iter"

	"go.llib.dev/iterextd/internal/errorkitlite"
	"go.llib.dev/iterextd/pkg/convkit"
	"go.llib.dev/iterextd/pkg/iterkit"
	"go.llib.dev/iterextd/pkg/mathkit"
)

// Scaling is an iterator which yields the values of its source rescaled into the output bounds.
//
// U is the intermediate type of the arithmetic, T is the element type of the source,
// and R is the element type of the output.
// Scaling forwards the capabilities of its source:
// it can be consumed from the back if the source is double ended,
// and it knows its length if the source does.
type Scaling[U, T, R mathkit.Integer, I iterkit.Cloneable[T, I]] struct {
	src  I
	desc Descriptor[U]
	toU  func(T) U
	toR  func(U) R
	done bool
}

// New makes a Scaling over src into the output bounds.
// The domain of the source is inferred from a clone of it,
// thus the source's side effects, if any, happen twice.
//
// The intermediate and the source element types need to be given explicitly:
//
//	scalekit.New[uint16, int8](iterkit.Slice(values), scalekit.Full[uint8]())
//
// New panics if the rescale can't be done safely in U, see NewDescriptor.
func New[U, T, R mathkit.Integer, I iterkit.Cloneable[T, I]](src I, bounds Bounds[R]) *Scaling[U, T, R, I] {
	return &Scaling[U, T, R, I]{
		src:  src,
		desc: NewDescriptor[U, T](src.Clone(), bounds),
		toU:  convkit.ByAddFunc[U, T](),
		toR:  convkit.ByAddFunc[R, U](),
	}
}

// TryNew is like New, but it returns the construction failure as an error instead of panicking.
func TryNew[U, T, R mathkit.Integer, I iterkit.Cloneable[T, I]](src I, bounds Bounds[R]) (_ *Scaling[U, T, R, I], err error) {
	defer errorkitlite.Recover(&err)
	return New[U, T](src, bounds), nil
}

func (s *Scaling[U, T, R, I]) Next() (R, bool) {
	if s.done {
		var zero R
		return zero, false
	}
	v, ok := s.src.Next()
	if !ok {
		s.done = true
		var zero R
		return zero, false
	}
	return s.scale(v), true
}

// NextBack panics with iterkit.ErrNotDoubleEnded if the source can't be consumed from the back.
func (s *Scaling[U, T, R, I]) NextBack() (R, bool) {
	if s.done {
		var zero R
		return zero, false
	}
	v, ok := iterkit.NextBack[T](s.src)
	if !ok {
		s.done = true
		var zero R
		return zero, false
	}
	return s.scale(v), true
}

// Len panics with iterkit.ErrNotExactSize if the source doesn't know its length.
func (s *Scaling[U, T, R, I]) Len() int {
	if s.done {
		return 0
	}
	return iterkit.Len[T](s.src)
}

func (s *Scaling[U, T, R, I]) SizeHint() (lower, upper int, ok bool) {
	if s.done {
		return 0, 0, true
	}
	return iterkit.SizeHint[T](s.src)
}

func (s *Scaling[U, T, R, I]) Clone() *Scaling[U, T, R, I] {
	c := *s
	c.src = s.src.Clone()
	return &c
}

func (s *Scaling[U, T, R, I]) Descriptor() Descriptor[U] {
	return s.desc
}

// Seq returns the remaining values as an iter.Seq.
// The sequence is single use, since it consumes the Scaling.
func (s *Scaling[U, T, R, I]) Seq() iter.Seq[R] {
	return iterkit.Seq[R](s)
}

func (s *Scaling[U, T, R, I]) String() string {
	return fmt.Sprintf("Scaling[%s -> %s via %s]{%s}",
		convkit.KindOf[T](), convkit.KindOf[R](), convkit.KindOf[U](), s.desc)
}

func (s *Scaling[U, T, R, I]) scale(v T) R {
	return s.toR(s.desc.Scale(s.toU(v)))
}
