package iterkit

import "go.llib.dev/iterextd/internal/errorkitlite"

const ErrInvalidArea errorkitlite.Error = "ErrInvalidArea"

// Size is the width and height of a row-major 2D area.
type Size struct {
	Width  int
	Height int
}

func (s Size) area() int { return s.Width * s.Height }

// Overlay2D treats base as a row-major area of the target size,
// and replaces the region of the given size at offset with the elements of overlay.
// Elements of base after the target area are yielded unchanged.
// If overlay runs out before the region is filled, the rest of the region keeps the base elements.
//
// It panics with ErrInvalidArea if any size is not positive, or if the region doesn't fit into the target.
//
//	Overlay2D(Slice(blank[:36]), Slice(fill[:16]), Size{6, 6}, Size{4, 4}, Point[int]{1, 1})
func Overlay2D[T any](base, overlay Iterator[T], target, size Size, offset Point[int]) *Overlay2DIter[T] {
	if target.Width <= 0 || target.Height <= 0 || size.Width <= 0 || size.Height <= 0 {
		panic(ErrInvalidArea.F("target %v and overlay %v must not be empty", target, size))
	}
	if offset.X < 0 || offset.Y < 0 ||
		target.Width < offset.X+size.Width || target.Height < offset.Y+size.Height {
		panic(ErrInvalidArea.F("overlay %v at %v exceeds the target %v", size, offset, target))
	}
	return &Overlay2DIter[T]{
		base:    base,
		overlay: overlay,
		target:  target,
		size:    size,
		offset:  offset,
	}
}

type Overlay2DIter[T any] struct {
	base    Iterator[T]
	overlay Iterator[T]
	target  Size
	size    Size
	offset  Point[int]
	pos     int
	// spent is set once overlay runs out
	spent bool
}

func (o *Overlay2DIter[T]) Next() (T, bool) {
	v, ok := o.base.Next()
	if !ok {
		return v, false
	}
	pos := o.pos
	o.pos++
	if o.spent || !o.inRegion(pos) {
		return v, true
	}
	ov, ok := o.overlay.Next()
	if !ok {
		o.spent = true
		return v, true
	}
	return ov, true
}

func (o *Overlay2DIter[T]) inRegion(pos int) bool {
	if o.target.area() <= pos {
		return false
	}
	x, y := pos%o.target.Width, pos/o.target.Width
	return o.offset.X <= x && x < o.offset.X+o.size.Width &&
		o.offset.Y <= y && y < o.offset.Y+o.size.Height
}

func (o *Overlay2DIter[T]) SizeHint() (lower, upper int, ok bool) {
	return SizeHint(o.base)
}
