package scalekit

import (
	"go.llib.dev/iterextd/pkg/iterkit"
	"go.llib.dev/iterextd/pkg/mathkit"
)

// Domain is an inclusive range of values.
type Domain[T any] struct {
	Start T
	End   T
}

// DomainKind tells what InferDomain found in its source.
type DomainKind int

const (
	// EmptyDomain is reported for a source without values.
	EmptyDomain DomainKind = iota
	// DegenerateDomain is reported when all values of the source are equal.
	DegenerateDomain
	// SpanDomain is reported when the source has at least two distinct values.
	SpanDomain
)

func (k DomainKind) String() string {
	switch k {
	case EmptyDomain:
		return "EmptyDomain"
	case DegenerateDomain:
		return "DegenerateDomain"
	case SpanDomain:
		return "SpanDomain"
	default:
		return "DomainKind(?)"
	}
}

// InferDomain consumes the iterator and returns the domain of its values.
//
// For a DegenerateDomain only End is meaningful,
// the start of the rescale is zero in the intermediate type, not in T.
// An EmptyDomain has no meaningful bounds at all.
func InferDomain[T mathkit.Integer](it iterkit.Iterator[T]) (Domain[T], DomainKind) {
	res := iterkit.MinMax(it)
	switch {
	case res.Kind == iterkit.NoElements:
		return Domain[T]{}, EmptyDomain
	case res.Min == res.Max:
		return Domain[T]{End: res.Max}, DegenerateDomain
	default:
		return Domain[T]{Start: res.Min, End: res.Max}, SpanDomain
	}
}
