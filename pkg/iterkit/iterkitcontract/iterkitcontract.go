// Package iterkitcontract holds reusable test suites for iterators implementing the iterkit protocol.
package iterkitcontract

import (
	"slices"
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/iterextd/pkg/iterkit"
)

// Subject is an iterator which can be consumed from both ends and knows its exact length.
type Subject[T any] interface {
	iterkit.DoubleEnded[T]
	iterkit.ExactSize
}

// Fixture is an iterator with the values it is expected to yield in forward order.
type Fixture[T any] struct {
	Iterator Subject[T]
	Expected []T
}

// DoubleEnded verifies that an iterator yields the expected values from both ends,
// keeps its length exact while being consumed, and stays exhausted once it ran out of values.
func DoubleEnded[T any](t *testing.T, mk func(testing.TB) Fixture[T]) {
	s := testcase.NewSpec(t)

	fixture := testcase.Let(s, func(t *testcase.T) Fixture[T] {
		return mk(t)
	})

	s.Then("values are yielded in forward order", func(t *testcase.T) {
		f := fixture.Get(t)
		equalValues(t, f.Expected, iterkit.Collect[T](f.Iterator))
	})

	s.Then("values are yielded in reverse order from the back", func(t *testcase.T) {
		f := fixture.Get(t)
		exp := slices.Clone(f.Expected)
		slices.Reverse(exp)
		equalValues(t, exp, iterkit.CollectBack[T](f.Iterator))
	})

	s.Then("the length is exact before and during the iteration", func(t *testcase.T) {
		f := fixture.Get(t)
		for remaining := len(f.Expected); 0 < remaining; remaining-- {
			assert.Equal(t, remaining, f.Iterator.Len())
			lower, upper, ok := iterkit.SizeHint[T](f.Iterator)
			assert.True(t, ok)
			assert.Equal(t, remaining, lower)
			assert.Equal(t, remaining, upper)
			_, ok = f.Iterator.Next()
			assert.True(t, ok)
		}
		assert.Equal(t, 0, f.Iterator.Len())
	})

	s.Then("the front and the back meet without yielding a value twice", func(t *testcase.T) {
		f := fixture.Get(t)
		var front, back []T
		for i := 0; ; i++ {
			var (
				v  T
				ok bool
			)
			if i%2 == 0 {
				v, ok = f.Iterator.Next()
				if ok {
					front = append(front, v)
				}
			} else {
				v, ok = f.Iterator.NextBack()
				if ok {
					back = append(back, v)
				}
			}
			if !ok {
				break
			}
		}
		slices.Reverse(back)
		equalValues(t, f.Expected, append(front, back...))
	})

	s.Then("once exhausted, it stays exhausted", func(t *testcase.T) {
		f := fixture.Get(t)
		iterkit.Collect[T](f.Iterator)
		t.Random.Repeat(2, 5, func() {
			_, ok := f.Iterator.Next()
			assert.False(t, ok)
			_, ok = f.Iterator.NextBack()
			assert.False(t, ok)
		})
		assert.Equal(t, 0, f.Iterator.Len())
	})
}

func equalValues[T any](tb testing.TB, exp, got []T) {
	tb.Helper()
	if len(exp) == 0 {
		assert.Empty(tb, got)
		return
	}
	assert.Equal(tb, exp, got)
}
