package iterkit

// MapByTwo takes two elements per iteration and maps them into one value.
// A trailing single element is dropped.
//
//	MapByTwo(Slice([]int{1, 2, 3, 4, 5}), func(a, b int) int { return a + b }) // 3, 7
func MapByTwo[T, B any](it Iterator[T], fn func(a, b T) B) *MapByTwoIter[T, B] {
	return &MapByTwoIter[T, B]{it: Fuse(it), fn: fn}
}

type MapByTwoIter[T, B any] struct {
	it *FuseIter[T]
	fn func(a, b T) B
}

func (m *MapByTwoIter[T, B]) Next() (B, bool) {
	var zero B
	a, ok := m.it.Next()
	if !ok {
		return zero, false
	}
	b, ok := m.it.Next()
	if !ok {
		return zero, false
	}
	return m.fn(a, b), true
}

func (m *MapByTwoIter[T, B]) SizeHint() (lower, upper int, ok bool) {
	lower, upper, ok = m.it.SizeHint()
	return lower / 2, upper / 2, ok
}

// MapByThree takes three elements per iteration and maps them into one value.
// Trailing elements which can't make a triple are dropped.
func MapByThree[T, B any](it Iterator[T], fn func(a, b, c T) B) *MapByThreeIter[T, B] {
	return &MapByThreeIter[T, B]{it: Fuse(it), fn: fn}
}

type MapByThreeIter[T, B any] struct {
	it *FuseIter[T]
	fn func(a, b, c T) B
}

func (m *MapByThreeIter[T, B]) Next() (B, bool) {
	var (
		zero B
		abc  [3]T
	)
	for i := range abc {
		v, ok := m.it.Next()
		if !ok {
			return zero, false
		}
		abc[i] = v
	}
	return m.fn(abc[0], abc[1], abc[2]), true
}

func (m *MapByThreeIter[T, B]) SizeHint() (lower, upper int, ok bool) {
	lower, upper, ok = m.it.SizeHint()
	return lower / 3, upper / 3, ok
}

// MapIters hands both iterators to fn on every iteration,
// and yields what fn returns, until fn reports false.
// fn decides how many elements it pulls from each iterator.
//
//	MapIters(Slice([]int{10, 20, 30}), Slice([]int{1, 2}), func(a, b Iterator[int]) ([2]int, bool) {
//		x, okX := a.Next()
//		y, okY := b.Next()
//		return [2]int{x, y}, okX && okY
//	}) // [10 1], [20 2]
func MapIters[T, K, B any](it Iterator[T], other Iterator[K], fn func(it Iterator[T], other Iterator[K]) (B, bool)) *MapItersIter[T, K, B] {
	return &MapItersIter[T, K, B]{it: it, other: other, fn: fn}
}

type MapItersIter[T, K, B any] struct {
	it    Iterator[T]
	other Iterator[K]
	fn    func(Iterator[T], Iterator[K]) (B, bool)
	done  bool
}

func (m *MapItersIter[T, K, B]) Next() (B, bool) {
	if m.done {
		var zero B
		return zero, false
	}
	v, ok := m.fn(m.it, m.other)
	if !ok {
		m.done = true
	}
	return v, ok
}

// Step is a pair of consecutive values.
type Step[T any] struct {
	Prev T
	Curr T
}

// Previous yields every element together with the one before it.
// The first element is paired with first.
//
//	Previous(Slice([]int{1, 2, 3}), 16) // {16 1}, {1 2}, {2 3}
func Previous[T any](it Iterator[T], first T) *PreviousIter[T] {
	return &PreviousIter[T]{it: it, prev: first}
}

type PreviousIter[T any] struct {
	it   Iterator[T]
	prev T
}

func (p *PreviousIter[T]) Next() (Step[T], bool) {
	v, ok := p.it.Next()
	if !ok {
		return Step[T]{}, false
	}
	s := Step[T]{Prev: p.prev, Curr: v}
	p.prev = v
	return s, true
}

func (p *PreviousIter[T]) SizeHint() (lower, upper int, ok bool) {
	return SizeHint(p.it)
}

// LastTaken remembers the last element it yielded, see LastItem.
func LastTaken[T any](it Iterator[T]) *LastTakenIter[T] {
	return &LastTakenIter[T]{it: it}
}

type LastTakenIter[T any] struct {
	it   Iterator[T]
	last T
	has  bool
}

func (l *LastTakenIter[T]) Next() (T, bool) {
	v, ok := l.it.Next()
	if !ok {
		return v, false
	}
	l.last, l.has = v, true
	return v, true
}

// LastItem returns the last element yielded by Next.
// It reports false until Next yields the first element.
func (l *LastTakenIter[T]) LastItem() (T, bool) {
	return l.last, l.has
}

func (l *LastTakenIter[T]) SizeHint() (lower, upper int, ok bool) {
	return SizeHint(l.it)
}
