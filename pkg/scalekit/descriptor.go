package scalekit

import (
	"fmt"

	"go.llib.dev/iterextd/pkg/convkit"
	"go.llib.dev/iterextd/pkg/iterkit"
	"go.llib.dev/iterextd/pkg/mathkit"
)

// Descriptor holds the constants of a rescale in the intermediate type U.
//
//	out = (in - InputStart) * Numerator / Denominator + OutputStart
type Descriptor[U mathkit.Integer] struct {
	// Denominator is never zero, but a degenerate negative domain in a signed U makes it negative.
	Denominator U
	Numerator   U
	InputStart  U
	OutputStart U
}

// NewDescriptor consumes src to infer its domain, and computes the rescale constants for the output bounds.
//
// It panics with ErrIntermediateOverflow when a bound or a domain extreme doesn't fit into U,
// with ErrInvertedBounds when the output start is greater than the output end,
// and with ErrMulOverflow when scaling the largest input could overflow U.
func NewDescriptor[U, T, R mathkit.Integer](src iterkit.Iterator[T], bounds Bounds[R]) Descriptor[U] {
	start, end := bounds.Normalize()
	outStart := mustFit[U]("output start", start)
	outEnd := mustFit[U]("output end", end)

	// an empty source keeps both domain ends at zero in U
	var inStart, inEnd U
	domain, kind := InferDomain(src)
	switch kind {
	case DegenerateDomain:
		inEnd = mustFit[U]("domain end", domain.End)
	case SpanDomain:
		inStart = mustFit[U]("domain start", domain.Start)
		inEnd = mustFit[U]("domain end", domain.End)
	}

	var denominator U = 1
	if inStart != inEnd {
		span, ok := mathkit.SubInt(inEnd, inStart)
		if !ok {
			panic(ErrIntermediateOverflow.F("domain %d..=%d spans beyond %s", domain.Start, domain.End, convkit.KindOf[U]()))
		}
		denominator = span
	}

	if end < start {
		panic(ErrInvertedBounds.F("%d..=%d", start, end))
	}
	numerator, ok := mathkit.SubInt(outEnd, outStart)
	if !ok {
		panic(ErrIntermediateOverflow.F("output bounds %d..=%d span beyond %s", start, end, convkit.KindOf[U]()))
	}

	if _, ok := mathkit.MulInt(inEnd, numerator); !ok {
		panic(ErrMulOverflow.F("%d * %d overflows %s", inEnd, numerator, convkit.KindOf[U]()))
	}
	if mathkit.IsSigned[U]() && inStart != inEnd {
		// a negative domain start makes the offset of the domain end larger than the end itself
		if _, ok := mathkit.MulInt(denominator, numerator); !ok {
			panic(ErrMulOverflow.F("%d * %d overflows %s", denominator, numerator, convkit.KindOf[U]()))
		}
	}

	return Descriptor[U]{
		Denominator: denominator,
		Numerator:   numerator,
		InputStart:  inStart,
		OutputStart: outStart,
	}
}

// Scale rescales a value which is already converted into U.
func (d Descriptor[U]) Scale(v U) U {
	return (v-d.InputStart)*d.Numerator/d.Denominator + d.OutputStart
}

func (d Descriptor[U]) String() string {
	return fmt.Sprintf("denominator=%d numerator=%d input_start=%d output_start=%d",
		d.Denominator, d.Numerator, d.InputStart, d.OutputStart)
}

func mustFit[U, T mathkit.Integer](what string, v T) U {
	out, err := convkit.TryByAdd[U](v)
	if err != nil {
		panic(ErrIntermediateOverflow.F("%s: %w", what, err))
	}
	return out
}
