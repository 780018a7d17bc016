package iterkit

// SkipStepBy skips the first skip elements, then yields every step-th element.
// It's the equivalent of skipping and then stepping, but done in a single adapter.
// It panics with ErrZeroStep if step is less than one.
//
//	SkipStepBy(Slice([]rune("iterator")), 3, 4) // 'r', 'r'
func SkipStepBy[T any](it Iterator[T], skip, step int) *SkipStepByIter[T] {
	if step < 1 {
		panic(ErrZeroStep.F("step: %d", step))
	}
	return &SkipStepByIter[T]{it: Fuse(it), skip: max(skip, 0), step: step}
}

type SkipStepByIter[T any] struct {
	it   *FuseIter[T]
	skip int
	step int
}

func (s *SkipStepByIter[T]) Next() (T, bool) {
	v, ok := s.it.Nth(s.skip)
	s.skip = s.step - 1
	return v, ok
}

func (s *SkipStepByIter[T]) SizeHint() (lower, upper int, ok bool) {
	lower, upper, ok = s.it.SizeHint()
	return s.count(lower), s.count(upper), ok
}

func (s *SkipStepByIter[T]) count(remaining int) int {
	if remaining <= s.skip {
		return 0
	}
	return 1 + (remaining-s.skip-1)/s.step
}

// StepByFn yields elements with a variable step.
// Before each element, fn is called with a pointer to a state value, which starts from zero,
// and fn returns how many elements to advance: one yields the next element, two skips one element, and so on.
// Returning zero reports the end of the iteration.
func StepByFn[T any](it Iterator[T], fn func(state *int) int) *StepByFnIter[T] {
	return &StepByFnIter[T]{it: Fuse(it), fn: fn}
}

type StepByFnIter[T any] struct {
	it    *FuseIter[T]
	fn    func(*int) int
	state int
}

func (s *StepByFnIter[T]) Next() (T, bool) {
	n := s.fn(&s.state)
	if n <= 0 {
		var zero T
		return zero, false
	}
	return s.it.Nth(n - 1)
}

// InclusiveStepBy yields every step-th element, including the first and the last one,
// even if the last element is not a step away from the previous one.
// It panics with ErrZeroStep if step is less than one.
//
//	InclusiveStepBy(Range(0, 9), 4) // 0, 4, 8, 9
func InclusiveStepBy[T any](it Iterator[T], step int) *InclusiveStepByIter[T] {
	if step < 1 {
		panic(ErrZeroStep.F("step: %d", step))
	}
	return &InclusiveStepByIter[T]{it: it, step: step, first: true}
}

type InclusiveStepByIter[T any] struct {
	it    Iterator[T]
	step  int
	first bool
}

func (s *InclusiveStepByIter[T]) Next() (T, bool) {
	if s.first {
		s.first = false
		return s.it.Next()
	}
	elem, ok := s.it.Next()
	if !ok {
		return elem, false
	}
	for i := 1; i < s.step; i++ {
		v, ok := s.it.Next()
		if !ok {
			return elem, true
		}
		elem = v
	}
	return elem, true
}

func (s *InclusiveStepByIter[T]) SizeHint() (lower, upper int, ok bool) {
	lower, upper, ok = SizeHint(s.it)
	return s.count(lower), s.count(upper), ok
}

func (s *InclusiveStepByIter[T]) count(remaining int) int {
	if remaining <= 0 {
		return 0
	}
	if !s.first {
		return 1 + (remaining-1)/s.step
	}
	n := 1 + (remaining-1)/s.step
	if (remaining-1)%s.step != 0 {
		n++
	}
	return n
}

// Boundary holds the first and the last element of a step.
type Boundary[T any] struct {
	Start T
	End   T
}

// StepBoundary groups the elements into steps of the given size,
// and yields the first and last element of each step.
// The last step may be shorter than size.
// It panics with ErrZeroStep if size is less than one.
//
//	StepBoundary(Range(0, 7), 3) // {0 2}, {3 5}, {6 7}
func StepBoundary[T any](it Iterator[T], size int) *StepBoundaryIter[T] {
	if size < 1 {
		panic(ErrZeroStep.F("size: %d", size))
	}
	return &StepBoundaryIter[T]{it: it, size: size}
}

type StepBoundaryIter[T any] struct {
	it   Iterator[T]
	size int
}

func (s *StepBoundaryIter[T]) Next() (Boundary[T], bool) {
	start, ok := s.it.Next()
	if !ok {
		return Boundary[T]{}, false
	}
	b := Boundary[T]{Start: start, End: start}
	for i := 1; i < s.size; i++ {
		v, ok := s.it.Next()
		if !ok {
			break
		}
		b.End = v
	}
	return b, true
}

func (s *StepBoundaryIter[T]) SizeHint() (lower, upper int, ok bool) {
	lower, upper, ok = SizeHint(s.it)
	return s.count(lower), s.count(upper), ok
}

func (s *StepBoundaryIter[T]) count(remaining int) int {
	if remaining <= 0 {
		return 0
	}
	return 1 + (remaining-1)/s.size
}

// TakeSkipCyclic yields take elements, then skips skip elements, and repeats this until the source runs out.
// A zero take yields nothing, and a zero skip yields every element.
// It panics with ErrZeroStep if take or skip is negative.
//
//	TakeSkipCyclic(Range(1, 10), 3, 2) // 1, 2, 3, 6, 7, 8
func TakeSkipCyclic[T any](it Iterator[T], take, skip int) *TakeSkipCyclicIter[T] {
	if take < 0 || skip < 0 {
		panic(ErrZeroStep.F("take: %d, skip: %d", take, skip))
	}
	return &TakeSkipCyclicIter[T]{it: Fuse(it), take: take, skip: skip}
}

type TakeSkipCyclicIter[T any] struct {
	it    *FuseIter[T]
	take  int
	skip  int
	taken int
}

func (c *TakeSkipCyclicIter[T]) Next() (T, bool) {
	if c.take == 0 {
		var zero T
		return zero, false
	}
	if c.taken == c.take {
		c.taken = 1
		return c.it.Nth(c.skip)
	}
	c.taken++
	return c.it.Next()
}

func (c *TakeSkipCyclicIter[T]) SizeHint() (lower, upper int, ok bool) {
	lower, upper, ok = c.it.SizeHint()
	return c.count(lower), c.count(upper), ok
}

func (c *TakeSkipCyclicIter[T]) count(remaining int) int {
	if c.take == 0 || remaining <= 0 {
		return 0
	}
	left := c.take - c.taken
	if remaining <= left {
		return remaining
	}
	rest := remaining - left - c.skip
	if rest <= 0 {
		return left
	}
	cycle := c.take + c.skip
	return left + rest/cycle*c.take + min(rest%cycle, c.take)
}
