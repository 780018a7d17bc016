// Package convkit converts integers between Go integer types while preserving their relative order.
//
// The conversion is the "by add" rule:
//
//   - between types of the same signedness it is the native Go conversion (extension or truncation),
//   - from signed to unsigned it adds half of the narrower type's range,
//   - from unsigned to signed it subtracts half of the narrower type's range.
//
// Thus the minimum of a signed type maps to the minimum of an unsigned type, and vice versa.
// When the destination is at least as wide as the source, the conversion is lossless and strictly order-preserving.
// Narrowing truncates first, so values outside the destination's window wrap around.
package convkit

import (
	"fmt"

	"go.llib.dev/iterextd/internal/errorkitlite"
	"go.llib.dev/iterextd/pkg/mathkit"
)

const ErrOverflow errorkitlite.Error = "ErrOverflow"

// Kind describes an integer type by its width and signedness.
type Kind struct {
	Bits   uint
	Signed bool
}

func KindOf[T mathkit.Integer]() Kind {
	return Kind{Bits: mathkit.BitSize[T](), Signed: mathkit.IsSigned[T]()}
}

func (k Kind) String() string {
	if k.Signed {
		return fmt.Sprintf("int%d", k.Bits)
	}
	return fmt.Sprintf("uint%d", k.Bits)
}

// ByAdd converts v into To using the order-preserving bias conversion.
func ByAdd[To, From mathkit.Integer](v From) To {
	from, to := KindOf[From](), KindOf[To]()
	switch {
	case from.Signed == to.Signed:
		return To(v)
	case from.Signed:
		return To(v) + bias[To](from, to)
	default:
		return To(v) - bias[To](from, to)
	}
}

// ByAddFunc resolves the conversion rule between From and To once,
// and returns a function which applies it without inspecting the types again.
// Use it on hot paths where the same pair of types is converted repeatedly.
func ByAddFunc[To, From mathkit.Integer]() func(From) To {
	from, to := KindOf[From](), KindOf[To]()
	if from.Signed == to.Signed {
		return func(v From) To { return To(v) }
	}
	b := bias[To](from, to)
	if from.Signed {
		return func(v From) To { return To(v) + b }
	}
	return func(v From) To { return To(v) - b }
}

// TryByAdd is the checked version of ByAdd.
// It returns ErrOverflow when v can't be represented in To without losing information,
// that is, when converting the result back into From wouldn't yield v.
func TryByAdd[To, From mathkit.Integer](v From) (To, error) {
	out := ByAdd[To](v)
	if ByAdd[From](out) != v {
		return out, ErrOverflow.F("%d (%s) does not fit into %s", v, KindOf[From](), KindOf[To]())
	}
	return out, nil
}

// bias is half the range of the narrower of the two types, expressed in To.
// For a signed To of the same or smaller width this is its MinInt,
// and adding or subtracting it flips the sign bit with wrapping arithmetic.
func bias[To mathkit.Integer](from, to Kind) To {
	return To(1) << (min(from.Bits, to.Bits) - 1)
}
