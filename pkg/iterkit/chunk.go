package iterkit

// ArrChunks groups the elements into chunks of exactly size elements.
// The trailing elements which can't fill a whole chunk are dropped.
// Every chunk is a new slice, so it's safe to keep them.
// It panics with ErrZeroStep if size is less than one.
//
//	ArrChunks(Slice([]rune("functions")), 4) // "func", "tion"
func ArrChunks[T any](it Iterator[T], size int) *ArrChunksIter[T] {
	if size < 1 {
		panic(ErrZeroStep.F("chunk size: %d", size))
	}
	return &ArrChunksIter[T]{it: Fuse(it), size: size}
}

type ArrChunksIter[T any] struct {
	it   *FuseIter[T]
	size int
}

func (c *ArrChunksIter[T]) Next() ([]T, bool) {
	chunk := make([]T, 0, c.size)
	for len(chunk) < c.size {
		v, ok := c.it.Next()
		if !ok {
			return nil, false
		}
		chunk = append(chunk, v)
	}
	return chunk, true
}

func (c *ArrChunksIter[T]) SizeHint() (lower, upper int, ok bool) {
	lower, upper, ok = c.it.SizeHint()
	return lower / c.size, upper / c.size, ok
}

// CollectArrZeroed collects at most size elements into a slice of exactly size length.
// The positions after the collected elements keep the zero value of T.
// It returns the number of the collected elements, and leaves the rest of the iterator unconsumed.
// It panics with ErrZeroStep if size is less than one.
func CollectArrZeroed[T any](it Iterator[T], size int) (int, []T) {
	if size < 1 {
		panic(ErrZeroStep.F("array size: %d", size))
	}
	arr := make([]T, size)
	var n int
	for n < size {
		v, ok := it.Next()
		if !ok {
			break
		}
		arr[n] = v
		n++
	}
	return n, arr
}

// CombineIters interleaves two iterators in parts:
// basePart elements from base, then otherPart elements from other, and so on.
// The iteration ends as soon as the iterator in turn is exhausted.
//
// A zero otherPart yields only base, and a zero basePart yields only other.
// It panics with ErrZeroStep if both parts are zero, or if any of them is negative.
//
//	CombineIters(Slice([]byte{200, 110, 25, 73, 49, 155}), 3, Slice([]byte{10, 20}), 1)
//	// 200, 110, 25, 10, 73, 49, 155, 20
func CombineIters[T any](base Iterator[T], basePart int, other Iterator[T], otherPart int) *CombineItersIter[T] {
	if basePart < 0 || otherPart < 0 || (basePart == 0 && otherPart == 0) {
		panic(ErrZeroStep.F("parts: %d and %d", basePart, otherPart))
	}
	return &CombineItersIter[T]{
		base:      base,
		basePart:  basePart,
		other:     other,
		otherPart: otherPart,
	}
}

type CombineItersIter[T any] struct {
	base      Iterator[T]
	other     Iterator[T]
	basePart  int
	otherPart int
	// taken counts the elements taken from the part in turn
	taken   int
	inOther bool
	done    bool
}

func (c *CombineItersIter[T]) Next() (T, bool) {
	for !c.done {
		if c.otherPart == 0 {
			return c.pull(c.base)
		}
		if c.basePart == 0 {
			return c.pull(c.other)
		}
		part, src := c.basePart, c.base
		if c.inOther {
			part, src = c.otherPart, c.other
		}
		if c.taken == part {
			c.inOther, c.taken = !c.inOther, 0
			continue
		}
		c.taken++
		return c.pull(src)
	}
	var zero T
	return zero, false
}

func (c *CombineItersIter[T]) pull(src Iterator[T]) (T, bool) {
	v, ok := src.Next()
	if !ok {
		c.done = true
	}
	return v, ok
}
