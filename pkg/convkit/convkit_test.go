package convkit_test

import (
	"math"
	"testing"

	"go.llib.dev/iterextd/pkg/convkit"
	"go.llib.dev/iterextd/pkg/mathkit"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
)

func ExampleByAdd() {
	_ = convkit.ByAdd[uint8](int8(-128)) // 0
	_ = convkit.ByAdd[uint8](int8(127))  // 255
	_ = convkit.ByAdd[int8](uint8(0))    // -128
	_ = convkit.ByAdd[uint16](int8(-1))  // 127
}

func ExampleByAddFunc() {
	toUnsigned := convkit.ByAddFunc[uint16, int16]()
	for _, v := range []int16{math.MinInt16, 0, math.MaxInt16} {
		_ = toUnsigned(v) // 0, 32768, 65535
	}
}

func TestByAdd(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("same signedness uses the native conversion", func(t *testcase.T) {
		assert.Equal(t, 0x34, convkit.ByAdd[uint8](uint16(0x1234)))
		assert.Equal(t, 0x1234, convkit.ByAdd[uint32](uint16(0x1234)))
		assert.Equal(t, 127, convkit.ByAdd[int8](int16(-129)))
		assert.Equal(t, -1, convkit.ByAdd[int64](int8(-1)))
		assert.Equal(t, math.MaxUint16, convkit.ByAdd[uint](uint16(math.MaxUint16)))
	})

	s.Test("same width signed to unsigned shifts by half of the range", func(t *testcase.T) {
		assert.Equal(t, 0, convkit.ByAdd[uint8](int8(math.MinInt8)))
		assert.Equal(t, 128, convkit.ByAdd[uint8](int8(0)))
		assert.Equal(t, math.MaxUint8, convkit.ByAdd[uint8](int8(math.MaxInt8)))
		assert.Equal(t, 0, convkit.ByAdd[uint64](int64(math.MinInt64)))
		assert.Equal(t, math.MaxUint64, convkit.ByAdd[uint64](int64(math.MaxInt64)))
		assert.Equal(t, 1<<31, convkit.ByAdd[uint32](int32(0)))
	})

	s.Test("same width unsigned to signed shifts back by half of the range", func(t *testcase.T) {
		assert.Equal(t, math.MinInt8, convkit.ByAdd[int8](uint8(0)))
		assert.Equal(t, 0, convkit.ByAdd[int8](uint8(128)))
		assert.Equal(t, math.MaxInt8, convkit.ByAdd[int8](uint8(math.MaxUint8)))
		assert.Equal(t, math.MinInt64, convkit.ByAdd[int64](uint64(0)))
		assert.Equal(t, math.MaxInt64, convkit.ByAdd[int64](uint64(math.MaxUint64)))
	})

	s.Test("widening biases by the source's half range", func(t *testcase.T) {
		assert.Equal(t, 0, convkit.ByAdd[uint16](int8(math.MinInt8)))
		assert.Equal(t, 255, convkit.ByAdd[uint16](int8(math.MaxInt8)))
		assert.Equal(t, 0, convkit.ByAdd[uint64](int16(math.MinInt16)))
		assert.Equal(t, math.MinInt8, convkit.ByAdd[int16](uint8(0)))
		assert.Equal(t, math.MaxInt8, convkit.ByAdd[int16](uint8(math.MaxUint8)))
		assert.Equal(t, math.MinInt32, convkit.ByAdd[int64](uint32(0)))
	})

	s.Test("narrowing truncates then biases by the destination's half range", func(t *testcase.T) {
		assert.Equal(t, 0, convkit.ByAdd[uint8](int16(-128)))
		assert.Equal(t, 255, convkit.ByAdd[uint8](int16(127)))
		assert.Equal(t, 0, convkit.ByAdd[uint16](int64(math.MinInt16)))
		assert.Equal(t, math.MinInt8, convkit.ByAdd[int8](uint16(0)))
		assert.Equal(t, math.MaxInt8, convkit.ByAdd[int8](uint16(255)))
		assert.Equal(t, 72, convkit.ByAdd[int8](uint16(200)))
	})

	s.Test("named types follow their underlying type", func(t *testcase.T) {
		type Level int8
		type Code uint16
		assert.Equal(t, 0, convkit.ByAdd[Code](Level(math.MinInt8)))
		assert.Equal(t, Level(math.MaxInt8), convkit.ByAdd[Level](Code(255)))
	})
}

func TestByAdd_orderPreserving(t *testing.T) {
	t.Run("int8", func(t *testing.T) {
		assertOrderPreserving[int8, int8](t)
		assertOrderPreserving[uint8, int8](t)
		assertOrderPreserving[int16, int8](t)
		assertOrderPreserving[uint16, int8](t)
		assertOrderPreserving[int32, int8](t)
		assertOrderPreserving[uint32, int8](t)
		assertOrderPreserving[int64, int8](t)
		assertOrderPreserving[uint64, int8](t)
		assertOrderPreserving[int, int8](t)
		assertOrderPreserving[uint, int8](t)
		assertOrderPreserving[uintptr, int8](t)
	})
	t.Run("uint8", func(t *testing.T) {
		assertOrderPreserving[int8, uint8](t)
		assertOrderPreserving[uint8, uint8](t)
		assertOrderPreserving[int16, uint8](t)
		assertOrderPreserving[uint16, uint8](t)
		assertOrderPreserving[int32, uint8](t)
		assertOrderPreserving[uint32, uint8](t)
		assertOrderPreserving[int64, uint8](t)
		assertOrderPreserving[uint64, uint8](t)
		assertOrderPreserving[int, uint8](t)
		assertOrderPreserving[uint, uint8](t)
		assertOrderPreserving[uintptr, uint8](t)
	})
	t.Run("int16", func(t *testing.T) {
		assertOrderPreserving[int16, int16](t)
		assertOrderPreserving[uint16, int16](t)
		assertOrderPreserving[int32, int16](t)
		assertOrderPreserving[uint32, int16](t)
		assertOrderPreserving[int64, int16](t)
		assertOrderPreserving[uint64, int16](t)
		assertOrderPreserving[int, int16](t)
		assertOrderPreserving[uint, int16](t)
		assertOrderPreserving[uintptr, int16](t)
	})
	t.Run("uint16", func(t *testing.T) {
		assertOrderPreserving[int16, uint16](t)
		assertOrderPreserving[uint16, uint16](t)
		assertOrderPreserving[int32, uint16](t)
		assertOrderPreserving[uint32, uint16](t)
		assertOrderPreserving[int64, uint16](t)
		assertOrderPreserving[uint64, uint16](t)
		assertOrderPreserving[int, uint16](t)
		assertOrderPreserving[uint, uint16](t)
		assertOrderPreserving[uintptr, uint16](t)
	})
}

func TestByAdd_roundTrip(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("8 bit sources", func(t *testcase.T) {
		assertRoundTrip[uint8, int8](t)
		assertRoundTrip[int16, int8](t)
		assertRoundTrip[uint16, int8](t)
		assertRoundTrip[uint64, int8](t)
		assertRoundTrip[int8, uint8](t)
		assertRoundTrip[int32, uint8](t)
		assertRoundTrip[uintptr, uint8](t)
	})

	s.Test("16 bit sources", func(t *testcase.T) {
		assertRoundTrip[uint16, int16](t)
		assertRoundTrip[uint32, int16](t)
		assertRoundTrip[int, int16](t)
		assertRoundTrip[int16, uint16](t)
		assertRoundTrip[int64, uint16](t)
	})

	s.Test("32 bit sources", func(t *testcase.T) {
		assertRoundTrip[uint32, int32](t)
		assertRoundTrip[int64, int32](t)
		assertRoundTrip[uint64, int32](t)
		assertRoundTrip[int32, uint32](t)
		assertRoundTrip[int64, uint32](t)
		assertRoundTrip[uint, uint32](t)
	})

	s.Test("64 bit sources", func(t *testcase.T) {
		assertRoundTrip[uint64, int64](t)
		assertRoundTrip[int64, uint64](t)
		assertRoundTrip[int, int64](t)
		assertRoundTrip[uint, int64](t)
		assertRoundTrip[uintptr, int](t)
		assertRoundTrip[int, uintptr](t)
	})
}

func TestByAddFunc(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("yields the same result as ByAdd", func(t *testcase.T) {
		assertSameAsByAdd[uint8, int8](t)
		assertSameAsByAdd[int8, uint8](t)
		assertSameAsByAdd[uint8, int64](t)
		assertSameAsByAdd[int8, uint64](t)
		assertSameAsByAdd[uint64, int8](t)
		assertSameAsByAdd[int64, uint8](t)
		assertSameAsByAdd[uint16, uint64](t)
		assertSameAsByAdd[int64, int16](t)
		assertSameAsByAdd[uint, int](t)
		assertSameAsByAdd[int32, uintptr](t)
	})
}

func TestTryByAdd(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("widening never fails", func(t *testcase.T) {
		got, err := convkit.TryByAdd[uint16](int8(math.MinInt8))
		assert.NoError(t, err)
		assert.Equal(t, 0, got)

		got64, err := convkit.TryByAdd[int64](uint32(math.MaxUint32))
		assert.NoError(t, err)
		assert.Equal(t, math.MaxUint32-1<<31, got64)
	})

	s.Test("narrowing within the destination's window succeeds", func(t *testcase.T) {
		got, err := convkit.TryByAdd[uint8](uint32(200))
		assert.NoError(t, err)
		assert.Equal(t, 200, got)

		got8, err := convkit.TryByAdd[int8](uint16(255))
		assert.NoError(t, err)
		assert.Equal(t, math.MaxInt8, got8)

		gotU8, err := convkit.TryByAdd[uint8](int16(-128))
		assert.NoError(t, err)
		assert.Equal(t, 0, gotU8)
	})

	s.Test("narrowing outside of the destination's window fails", func(t *testcase.T) {
		_, err := convkit.TryByAdd[uint8](uint16(256))
		assert.ErrorIs(t, convkit.ErrOverflow, err)

		_, err = convkit.TryByAdd[int8](uint16(256))
		assert.ErrorIs(t, convkit.ErrOverflow, err)

		_, err = convkit.TryByAdd[uint8](int16(128))
		assert.ErrorIs(t, convkit.ErrOverflow, err)

		_, err = convkit.TryByAdd[int8](int64(-129))
		assert.ErrorIs(t, convkit.ErrOverflow, err)
	})

	s.Test("the error mentions the involved types", func(t *testcase.T) {
		_, err := convkit.TryByAdd[uint8](uint16(300))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "300")
		assert.Contains(t, err.Error(), "uint16")
		assert.Contains(t, err.Error(), "uint8")
	})
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, convkit.Kind{Bits: 8, Signed: true}, convkit.KindOf[int8]())
	assert.Equal(t, convkit.Kind{Bits: 16, Signed: false}, convkit.KindOf[uint16]())
	assert.Equal(t, "int32", convkit.KindOf[int32]().String())
	assert.Equal(t, "uint64", convkit.KindOf[uint64]().String())
}

func allValues[T mathkit.Integer]() []T {
	var vs []T
	for v := mathkit.MinInt[T](); ; v++ {
		vs = append(vs, v)
		if v == mathkit.MaxInt[T]() {
			break
		}
	}
	return vs
}

func assertOrderPreserving[To, From mathkit.Integer](tb testing.TB) {
	tb.Helper()
	var (
		values = allValues[From]()
		conv   = convkit.ByAddFunc[To, From]()
		prev   = conv(values[0])
	)
	for _, v := range values[1:] {
		next := conv(v)
		if !(prev < next) {
			tb.Fatalf("%s -> %s is not order-preserving at %d (%d >= %d)",
				convkit.KindOf[From](), convkit.KindOf[To](), v, prev, next)
		}
		prev = next
	}
}

func sample[T mathkit.Integer](t *testcase.T) []T {
	vs := []T{0, 1, mathkit.MinInt[T](), mathkit.MaxInt[T](), mathkit.MaxInt[T]() / 2}
	for range 32 {
		vs = append(vs, T(t.Random.Int()-t.Random.Int()))
	}
	return vs
}

func assertRoundTrip[To, From mathkit.Integer](t *testcase.T) {
	t.Helper()
	for _, v := range sample[From](t) {
		assert.Equal(t, v, convkit.ByAdd[From](convkit.ByAdd[To](v)))
		got, err := convkit.TryByAdd[To](v)
		assert.NoError(t, err)
		assert.Equal(t, convkit.ByAdd[To](v), got)
	}
}

func assertSameAsByAdd[To, From mathkit.Integer](t *testcase.T) {
	t.Helper()
	conv := convkit.ByAddFunc[To, From]()
	for _, v := range sample[From](t) {
		assert.Equal(t, convkit.ByAdd[To](v), conv(v))
	}
}
