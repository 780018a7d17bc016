package iterkit

import "golang.org/x/exp/constraints"

// MinMaxKind tells how many elements MinMax has seen.
type MinMaxKind int

const (
	NoElements MinMaxKind = iota
	OneElement
	// ManyElements is reported for two or more elements, even when they are all equal.
	ManyElements
)

func (k MinMaxKind) String() string {
	switch k {
	case NoElements:
		return "NoElements"
	case OneElement:
		return "OneElement"
	case ManyElements:
		return "ManyElements"
	default:
		return "MinMaxKind(?)"
	}
}

type MinMaxResult[T any] struct {
	Kind MinMaxKind
	Min  T
	Max  T
}

// MinMax consumes the iterator and returns its minimum and maximum element in a single pass.
// With one element, both Min and Max hold that element.
func MinMax[T constraints.Ordered](it Iterator[T]) MinMaxResult[T] {
	first, ok := it.Next()
	if !ok {
		return MinMaxResult[T]{Kind: NoElements}
	}
	res := MinMaxResult[T]{Kind: OneElement, Min: first, Max: first}
	for {
		v, ok := it.Next()
		if !ok {
			return res
		}
		res.Kind = ManyElements
		if v < res.Min {
			res.Min = v
		}
		if res.Max < v {
			res.Max = v
		}
	}
}
