package iterkit

// Rev reverses the iteration direction of a double ended iterator.
// Unlike collecting and reversing, Rev is lazy and works in constant memory.
func Rev[T any](it DoubleEnded[T]) *RevIter[T] {
	return &RevIter[T]{it: it}
}

type RevIter[T any] struct {
	it DoubleEnded[T]
}

func (r *RevIter[T]) Next() (T, bool)     { return r.it.NextBack() }
func (r *RevIter[T]) NextBack() (T, bool) { return r.it.Next() }
func (r *RevIter[T]) Len() int            { return Len[T](r.it) }

func (r *RevIter[T]) SizeHint() (lower, upper int, ok bool) {
	return SizeHint[T](r.it)
}

// Fuse returns an iterator which keeps reporting exhaustion,
// after its source reported exhaustion once, even if the source would yield values again.
func Fuse[T any](it Iterator[T]) *FuseIter[T] {
	return &FuseIter[T]{it: it}
}

type FuseIter[T any] struct {
	it   Iterator[T]
	done bool
}

func (f *FuseIter[T]) Next() (T, bool) {
	if f.done {
		var zero T
		return zero, false
	}
	v, ok := f.it.Next()
	if !ok {
		f.done = true
	}
	return v, ok
}

// NextBack panics with ErrNotDoubleEnded when the source can't iterate backwards.
func (f *FuseIter[T]) NextBack() (T, bool) {
	if f.done {
		var zero T
		return zero, false
	}
	v, ok := NextBack(f.it)
	if !ok {
		f.done = true
	}
	return v, ok
}

func (f *FuseIter[T]) Len() int {
	if f.done {
		return 0
	}
	return Len(f.it)
}

func (f *FuseIter[T]) SizeHint() (lower, upper int, ok bool) {
	if f.done {
		return 0, 0, true
	}
	return SizeHint(f.it)
}

func (f *FuseIter[T]) Nth(n int) (T, bool) {
	if f.done {
		var zero T
		return zero, false
	}
	v, ok := Nth(f.it, n)
	if !ok {
		f.done = true
	}
	return v, ok
}

// Limit yields at most n elements of the iterator.
func Limit[T any](it Iterator[T], n int) *LimitIter[T] {
	return &LimitIter[T]{it: it, n: max(n, 0)}
}

type LimitIter[T any] struct {
	it Iterator[T]
	n  int
}

func (l *LimitIter[T]) Next() (T, bool) {
	if l.n == 0 {
		var zero T
		return zero, false
	}
	v, ok := l.it.Next()
	if !ok {
		l.n = 0
		return v, false
	}
	l.n--
	return v, true
}

func (l *LimitIter[T]) SizeHint() (lower, upper int, ok bool) {
	if l.n == 0 {
		return 0, 0, true
	}
	lower, upper, ok = SizeHint(l.it)
	if !ok || l.n < upper {
		upper = l.n
	}
	return min(lower, l.n), upper, true
}
