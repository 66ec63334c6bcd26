package geom

import "iter"

// Circle is a circle with a center and a radius.
type Circle[T Scalar] struct {
	Center Point[T] `json:"center"`
	Radius T        `json:"radius"`
}

// Circ is shorthand for Circle[T]{Center: center, Radius: radius}.
func Circ[T Scalar](center Point[T], radius T) Circle[T] {
	return Circle[T]{Center: center, Radius: radius}
}

// UnitCircle returns the circle of radius one centered on the origin.
func UnitCircle[T Scalar]() Circle[T] {
	return Circle[T]{Radius: 1}
}

// CircleFromRadius returns a circle centered on the origin.
func CircleFromRadius[T Scalar](radius T) Circle[T] {
	return UnitCircle[T]().WithRadius(radius)
}

// CircleFromCenter returns a circle of radius one centered on center.
func CircleFromCenter[T Scalar](center Point[T]) Circle[T] {
	return UnitCircle[T]().WithCenter(center)
}

// MapCircle returns the circle built from the results of calling f
// with the center and radius of c.
func MapCircle[U, T Scalar](c Circle[T], f func(Point[T], T) (Point[U], U)) Circle[U] {
	center, radius := f(c.Center, c.Radius)
	return Circ(center, radius)
}

// CConv converts c to a circle of a different scalar type using
// [Cast].
func CConv[Out, In Scalar](c Circle[In]) Circle[Out] {
	return MapCircle(c, func(center Point[In], radius In) (Point[Out], Out) {
		return PConv[Out](center), Cast[Out](radius)
	})
}

func (c Circle[T]) WithRadius(radius T) Circle[T] {
	c.Radius = radius
	return c
}

func (c Circle[T]) WithCenter(center Point[T]) Circle[T] {
	c.Center = center
	return c
}

func (c Circle[T]) MapCenter(f func(Point[T]) Point[T]) Circle[T] {
	return MapCircle(c, func(center Point[T], radius T) (Point[T], T) {
		return f(center), radius
	})
}

func (c Circle[T]) MapRadius(f func(T) T) Circle[T] {
	return MapCircle(c, func(center Point[T], radius T) (Point[T], T) {
		return center, f(radius)
	})
}

// AddRadius grows the radius of c by n.
func (c Circle[T]) AddRadius(n T) Circle[T] {
	return c.MapRadius(func(r T) T { return r + n })
}

// ScaleRadius multiplies the radius of c by k.
func (c Circle[T]) ScaleRadius(k T) Circle[T] {
	return c.MapRadius(func(r T) T { return r * k })
}

func (c Circle[T]) RadiusSquared() T {
	return c.Radius * c.Radius
}

// Contains reports whether p is inside of or on the boundary of c. It
// compares squared distances, so it is exact for integer types. A
// circle with a negative radius contains nothing.
func (c Circle[T]) Contains(p Point[T]) bool {
	if c.Radius < 0 {
		return false
	}
	return p.Diff(c.Center).MagnitudeSquared() <= c.RadiusSquared()
}

// Add returns c moved by v.
func (c Circle[T]) Add(v Vector[T]) Circle[T] {
	return c.MapCenter(func(p Point[T]) Point[T] { return p.Add(v) })
}

// Sub returns c moved by -v.
func (c Circle[T]) Sub(v Vector[T]) Circle[T] {
	return c.MapCenter(func(p Point[T]) Point[T] { return p.Sub(v) })
}

// Ellipse returns the ellipse with both radii equal to the radius of
// c.
func (c Circle[T]) Ellipse() Ellipse[T] {
	return Ell(c.Center, UniformVec(c.Radius))
}

// BoundingRect returns the smallest rectangle that encloses c.
func (c Circle[T]) BoundingRect() Rect[T] {
	return c.Ellipse().BoundingRect()
}

// ArcPoints is the same as [Ellipse.ArcPoints].
func (c Circle[T]) ArcPoints(steps int, start, end Angle[T]) iter.Seq[Point[T]] {
	return c.Ellipse().ArcPoints(steps, start, end)
}

// Points is the same as [Ellipse.Points].
func (c Circle[T]) Points(steps int, start Angle[T]) iter.Seq[Point[T]] {
	return c.Ellipse().Points(steps, start)
}
