package mathkit

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

type (
	Int     constraints.Signed
	UInt    constraints.Unsigned
	Integer constraints.Integer
	Number  interface {
		constraints.Integer | constraints.Float
	}
)

// BitSize returns the width of the integer type in bits.
func BitSize[T Integer]() uint {
	var zero T
	return uint(8 * unsafe.Sizeof(zero))
}

// IsSigned reports whether T is a signed integer type.
func IsSigned[T Integer]() bool {
	return ^T(0) < 0
}

func MaxInt[T Integer]() T {
	if !IsSigned[T]() {
		return ^T(0)
	}
	// 1<<(n-1) lands on the sign bit (MinInt), one less wraps around to MaxInt
	return T(1)<<(BitSize[T]()-1) - 1
}

func MinInt[T Integer]() T {
	if !IsSigned[T]() {
		return 0
	}
	return T(1) << (BitSize[T]() - 1)
}

func SumInt[INT Integer](a, b INT) (INT, bool) {
	if CanIntSumOverflow(a, b) {
		var zero INT
		return zero, false
	}
	return a + b, true
}

func CanIntSumOverflow[INT Integer](a, b INT) bool {
	if !IsSigned[INT]() {
		return MaxInt[INT]()-a < b
	}
	less, more := a, b
	if more < less {
		less, more = more, less
	}
	switch {
	case 0 < less && 0 < more:
		maxLess := MaxInt[INT]() - more
		return maxLess < less // positive overflow
	case less < 0 && more < 0:
		minMore := MinInt[INT]() - less // min - -less -> min + abs(less)
		return more < minMore           // negative overflow
	}
	// a negative and a positive value can't overflow,
	// even MinInt plus MaxInt only ends up at -1.
	return false
}

func SubInt[INT Integer](a, b INT) (INT, bool) {
	if CanIntSubOverflow(a, b) {
		var zero INT
		return zero, false
	}
	return a - b, true
}

func CanIntSubOverflow[INT Integer](a, b INT) bool {
	if !IsSigned[INT]() {
		return a < b
	}
	r := a - b
	return (0 < b && a < r) || (b < 0 && r < a)
}

func MulInt[INT Integer](a, b INT) (INT, bool) {
	if CanIntMulOverflow(a, b) {
		var zero INT
		return zero, false
	}
	return a * b, true
}

func CanIntMulOverflow[INT Integer](x, y INT) bool {
	if x == 0 || y == 0 {
		return false
	}
	if !IsSigned[INT]() {
		return MaxInt[INT]()/x < y
	}
	var max AInt
	if isMulResPositive(x, y) {
		max = AbsInt(MaxInt[INT]())
	} else {
		max = AbsInt(MinInt[INT]())
	}
	var maxMul = max / AbsInt(x)
	return maxMul < AbsInt(y)
}

func isMulResPositive[INT Integer](x, y INT) bool {
	switch {
	case x < 0 && 0 < y: // - * + == -
		return false
	case 0 < x && y < 0: // + * - == -
		return false
	default:
		return true
	}
}

type AInt = uint64

func AbsInt[N Integer](n N) AInt {
	if !IsSigned[N]() {
		return AInt(n)
	}
	if n == MinInt[N]() {
		// make it overflow into MaxInt
		// and then add +1 to be equal with the Abs MinInt
		return AInt(n-1) + 1
	}
	if n < 0 {
		n = -n
	}
	return AInt(n)
}

// GCD returns the greatest common divisor of a and b.
// The result is non-negative; GCD(0, 0) is 0.
// For signed types, GCD(MinInt, 0) and GCD(MinInt, MinInt) wrap, as their result is not representable.
func GCD[T Integer](a, b T) T {
	x, y := AbsInt(a), AbsInt(b)
	for y != 0 {
		x, y = y, x%y
	}
	return T(x)
}
