package iterkit

import (
	"go.llib.dev/iterextd/internal/errorkitlite"
	"go.llib.dev/iterextd/pkg/mathkit"
)

const ErrRadiusOverflow errorkitlite.Error = "ErrRadiusOverflow"

// Point is a position on an integer grid.
type Point[T any] struct {
	X T
	Y T
}

type Direction int

const (
	Clockwise Direction = iota
	CounterClockwise
)

// Circle generates the points of a circle around the origin with Bresenham's algorithm.
// Both directions start from the point straight above the origin, at (0, -radius).
// A zero radius yields no points.
// It panics with ErrRadiusOverflow if four times the radius doesn't fit into T.
//
//	Circle[int](1, Clockwise) // {0 -1}, {1 0}, {0 1}, {-1 0}
func Circle[T mathkit.Int](radius uint64, dir Direction) *CircleIter[T] {
	if uint64(mathkit.MaxInt[T]())/4 < radius {
		panic(ErrRadiusOverflow.F("radius %d is too large for %T", radius, T(0)))
	}
	if radius == 0 {
		return &CircleIter[T]{quadrant: 4, dir: dir}
	}
	r := T(radius)
	return &CircleIter[T]{x: -r, err: 2 - 2*r, quadrant: 1, dir: dir}
}

type CircleIter[T mathkit.Int] struct {
	x, y, err T
	quadrant  int
	dir       Direction
}

func (c *CircleIter[T]) Next() (Point[T], bool) {
	if c.x == 0 {
		if c.quadrant == 4 {
			return Point[T]{}, false
		}
		c.quadrant++
		c.x = -c.y
		c.err = 2 - 2*c.y
		c.y = 0
	}
	p := c.point()
	r := c.err
	if r <= c.y {
		c.y++
		c.err += 2*c.y + 1
	}
	if r > c.x || c.err > c.y {
		c.x++
		c.err += 2*c.x + 1
	}
	return p, true
}

// point maps the octant walk state into the current quadrant.
func (c *CircleIter[T]) point() Point[T] {
	x, y := c.x, c.y
	if c.dir == CounterClockwise {
		switch c.quadrant {
		case 1:
			return Point[T]{X: -y, Y: x}
		case 2:
			return Point[T]{X: x, Y: y}
		case 3:
			return Point[T]{X: y, Y: -x}
		default:
			return Point[T]{X: -x, Y: -y}
		}
	}
	switch c.quadrant {
	case 1:
		return Point[T]{X: y, Y: x}
	case 2:
		return Point[T]{X: -x, Y: y}
	case 3:
		return Point[T]{X: -y, Y: -x}
	default:
		return Point[T]{X: x, Y: -y}
	}
}

func (c *CircleIter[T]) Clone() *CircleIter[T] {
	cc := *c
	return &cc
}

// Offset moves every point by dx and dy.
//
//	Offset(Circle[int](1, Clockwise), 1, 1) // {1 0}, {2 1}, {1 2}, {0 1}
func Offset[T mathkit.Number](it Iterator[Point[T]], dx, dy T) *OffsetIter[T] {
	return &OffsetIter[T]{it: it, dx: dx, dy: dy}
}

type OffsetIter[T mathkit.Number] struct {
	it     Iterator[Point[T]]
	dx, dy T
}

func (o *OffsetIter[T]) Next() (Point[T], bool) {
	p, ok := o.it.Next()
	if !ok {
		return p, false
	}
	return Point[T]{X: p.X + o.dx, Y: p.Y + o.dy}, true
}

func (o *OffsetIter[T]) SizeHint() (lower, upper int, ok bool) {
	return SizeHint(o.it)
}
