package geom

import (
	"iter"
	"math"
)

// Ellipse is an axis-aligned ellipse with a center and a radius along
// each axis.
type Ellipse[T Scalar] struct {
	Center Point[T]  `json:"center"`
	Radii  Vector[T] `json:"radii"`
}

// Ell is shorthand for Ellipse[T]{Center: center, Radii: radii}.
func Ell[T Scalar](center Point[T], radii Vector[T]) Ellipse[T] {
	return Ellipse[T]{Center: center, Radii: radii}
}

// MapEllipse returns a new ellipse with f applied to the coordinates
// of the center and to both radii.
func MapEllipse[U, T Scalar](e Ellipse[T], f func(T) U) Ellipse[U] {
	return Ellipse[U]{Center: MapPt(e.Center, f), Radii: MapVec(e.Radii, f)}
}

// EConv converts e to an ellipse of a different scalar type using
// [Cast].
func EConv[Out, In Scalar](e Ellipse[In]) Ellipse[Out] {
	return MapEllipse(e, Cast[Out, In])
}

// BoundingRect returns the smallest rectangle that encloses e.
func (e Ellipse[T]) BoundingRect() Rect[T] {
	return Rt(
		e.Center.X-e.Radii.DX,
		e.Center.Y-e.Radii.DY,
		e.Center.X+e.Radii.DX,
		e.Center.Y+e.Radii.DY,
	)
}

// Contains reports whether p is inside of or on the boundary of e. Like
// [Circle.Contains], an ellipse with a negative radius contains nothing
// and a zero radius collapses e onto a line segment or its center.
func (e Ellipse[T]) Contains(p Point[T]) bool {
	if e.Radii.DX < 0 || e.Radii.DY < 0 {
		return false
	}

	d := PConv[float64](p).Diff(PConv[float64](e.Center))
	r := VConv[float64](e.Radii)
	return axisRatio(d.DX, r.DX)+axisRatio(d.DY, r.DY) <= 1
}

// axisRatio returns (d/r)² without producing NaN when r is zero.
func axisRatio(d, r float64) float64 {
	if r == 0 {
		if d == 0 {
			return 0
		}
		return math.Inf(1)
	}
	q := d / r
	return q * q
}

// PointAt returns the point on the boundary of e at the angle a from
// its center.
func (e Ellipse[T]) PointAt(a Angle[T]) Point[T] {
	return e.pointAt(float64(a.Radians()))
}

func (e Ellipse[T]) pointAt(rad float64) Point[T] {
	sin, cos := math.Sincos(rad)
	c := PConv[float64](e.Center)
	r := VConv[float64](e.Radii)
	return PConv[T](c.Add(Vec(r.DX*cos, r.DY*sin)))
}

// ArcPoints returns an iterator that yields steps+1 evenly spaced
// points along the boundary of e from start to end, inclusive. It
// yields nothing if steps is less than one.
func (e Ellipse[T]) ArcPoints(steps int, start, end Angle[T]) iter.Seq[Point[T]] {
	return func(yield func(Point[T]) bool) {
		if steps < 1 {
			return
		}

		from := float64(start.Radians())
		step := (float64(end.Radians()) - from) / float64(steps)
		for i := range steps + 1 {
			if !yield(e.pointAt(from + float64(i)*step)) {
				return
			}
		}
	}
}

// Points returns an iterator that yields steps evenly spaced points
// around the whole boundary of e, beginning at start. The first point
// is not repeated at the end. It yields nothing if steps is less than
// one.
func (e Ellipse[T]) Points(steps int, start Angle[T]) iter.Seq[Point[T]] {
	return func(yield func(Point[T]) bool) {
		from := float64(start.Radians())
		step := 2 * math.Pi / float64(steps)
		for i := range steps {
			if !yield(e.pointAt(from + float64(i)*step)) {
				return
			}
		}
	}
}
