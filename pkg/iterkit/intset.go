package iterkit

import (
	"github.com/RoaringBitmap/roaring/v2/roaring64"
	"github.com/bits-and-blooms/bitset"

	"go.llib.dev/iterextd/pkg/convkit"
	"go.llib.dev/iterextd/pkg/mathkit"
)

// UniqueSorted consumes the iterator, and returns an iterator over its distinct values in ascending order.
//
// Values are kept in a compressed bitmap,
// so sparse values spread over a wide domain don't need memory proportional to the domain.
func UniqueSorted[T mathkit.Integer](it Iterator[T]) *UniqueSortedIter[T] {
	bm := roaring64.New()
	for {
		v, ok := it.Next()
		if !ok {
			break
		}
		bm.Add(convkit.ByAdd[uint64](v))
	}
	return &UniqueSortedIter[T]{bm: bm, remaining: bm.GetCardinality()}
}

type UniqueSortedIter[T mathkit.Integer] struct {
	bm        *roaring64.Bitmap
	front     roaring64.IntPeekable64
	back      roaring64.IntIterable64
	remaining uint64
}

func (u *UniqueSortedIter[T]) Next() (T, bool) {
	if u.remaining == 0 {
		var zero T
		return zero, false
	}
	if u.front == nil {
		u.front = u.bm.Iterator()
	}
	u.remaining--
	return convkit.ByAdd[T](u.front.Next()), true
}

func (u *UniqueSortedIter[T]) NextBack() (T, bool) {
	if u.remaining == 0 {
		var zero T
		return zero, false
	}
	if u.back == nil {
		u.back = u.bm.ReverseIterator()
	}
	u.remaining--
	return convkit.ByAdd[T](u.back.Next()), true
}

func (u *UniqueSortedIter[T]) Len() int {
	n, _ := saturatingInt(u.remaining)
	return n
}

// MissingIntegers consumes the iterator, and returns an iterator over the integers
// which are between its minimum and maximum, but not present in it, in ascending order.
//
// It allocates a bit set with one bit for every integer between the minimum and the maximum.
//
//	MissingIntegers(Slice([]uint8{9, 5, 6, 4, 8, 8, 2, 4, 10, 2, 12})) // 3, 7, 11
func MissingIntegers[T mathkit.Integer](it Iterator[T]) *MissingIntegersIter[T] {
	var (
		keys   = make([]uint64, 0, capacity(it))
		lo, hi uint64
	)
	for {
		v, ok := it.Next()
		if !ok {
			break
		}
		// the by add conversion into uint64 keeps the order of every integer type
		k := convkit.ByAdd[uint64](v)
		if len(keys) == 0 || k < lo {
			lo = k
		}
		if len(keys) == 0 || hi < k {
			hi = k
		}
		keys = append(keys, k)
	}
	if len(keys) < 2 {
		return &MissingIntegersIter[T]{set: bitset.New(0)}
	}
	size := uint(hi-lo) + 1
	set := bitset.New(size)
	set.FlipRange(0, size)
	for _, k := range keys {
		set.Clear(uint(k - lo))
	}
	return &MissingIntegersIter[T]{
		set:       set,
		offset:    lo,
		remaining: set.Count(),
	}
}

type MissingIntegersIter[T mathkit.Integer] struct {
	set       *bitset.BitSet
	offset    uint64
	cursor    uint
	remaining uint
}

func (m *MissingIntegersIter[T]) Next() (T, bool) {
	i, ok := m.set.NextSet(m.cursor)
	if !ok || m.remaining == 0 {
		var zero T
		return zero, false
	}
	m.cursor = i + 1
	m.remaining--
	return convkit.ByAdd[T](m.offset + uint64(i)), true
}

func (m *MissingIntegersIter[T]) Len() int {
	n, _ := saturatingInt(uint64(m.remaining))
	return n
}

// MissingIntegersSorted yields the integers missing between the values of an iterator,
// which already yields unique values in ascending order.
// Unlike MissingIntegers, it works lazily in constant memory.
// Values which are not greater than their predecessor are ignored.
//
//	MissingIntegersSorted(Slice([]int8{-2, 2, 4, 5, 6, 8})) // -1, 0, 1, 3, 7
func MissingIntegersSorted[T mathkit.Integer](it Iterator[T]) *MissingIntegersSortedIter[T] {
	return &MissingIntegersSortedIter[T]{it: it}
}

type MissingIntegersSortedIter[T mathkit.Integer] struct {
	it      Iterator[T]
	started bool
	last    T
	gap     bool
	cur, hi T
}

func (m *MissingIntegersSortedIter[T]) Next() (T, bool) {
	for {
		if m.gap {
			if m.cur < m.hi {
				v := m.cur
				m.cur++
				return v, true
			}
			m.gap = false
			m.last = m.hi
		}
		v, ok := m.it.Next()
		if !ok {
			var zero T
			return zero, false
		}
		if !m.started {
			m.started = true
			m.last = v
			continue
		}
		if v <= m.last {
			continue
		}
		// last < v, thus last+1 can't overflow
		m.cur, m.hi, m.gap = m.last+1, v, true
	}
}

// GCD returns the greatest common divisor of the iterator's values.
// It needs at least two values, otherwise it reports false.
func GCD[T mathkit.Integer](it Iterator[T]) (T, bool) {
	a, ok := it.Next()
	if !ok {
		return a, false
	}
	b, ok := it.Next()
	if !ok {
		var zero T
		return zero, false
	}
	acc := mathkit.GCD(a, b)
	for {
		v, ok := it.Next()
		if !ok {
			return acc, true
		}
		acc = mathkit.GCD(acc, v)
	}
}
