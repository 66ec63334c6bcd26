package geom

// Point is a position in 2D space. Points and vectors are kept
// distinct: a point may be displaced by a [Vector] and the difference
// between two points is a Vector, but two points cannot be added.
type Point[T Scalar] struct {
	X T `json:"x"`
	Y T `json:"y"`
}

// Pt is shorthand for Point[T]{X: x, Y: y}.
func Pt[T Scalar](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

func PtFromArray[T Scalar](a [2]T) Point[T] {
	return Pt(a[0], a[1])
}

// MapPt returns a new point with f applied to each coordinate of p.
func MapPt[U, T Scalar](p Point[T], f func(T) U) Point[U] {
	return Point[U]{X: f(p.X), Y: f(p.Y)}
}

// PConv converts p to a point of a different scalar type using
// [Cast].
func PConv[Out, In Scalar](p Point[In]) Point[Out] {
	return MapPt(p, Cast[Out, In])
}

func (p Point[T]) WithX(x T) Point[T] {
	p.X = x
	return p
}

func (p Point[T]) WithY(y T) Point[T] {
	p.Y = y
	return p
}

func (p Point[T]) Map(f func(T) T) Point[T] {
	return MapPt(p, f)
}

func (p Point[T]) MapX(f func(T) T) Point[T] {
	return p.WithX(f(p.X))
}

func (p Point[T]) MapY(f func(T) T) Point[T] {
	return p.WithY(f(p.Y))
}

// Vec returns the displacement of p from the origin.
func (p Point[T]) Vec() Vector[T] {
	return Vec(p.X, p.Y)
}

// Add returns p displaced by v.
func (p Point[T]) Add(v Vector[T]) Point[T] {
	return p.Vec().Add(v).pt()
}

// Sub returns p displaced by -v.
func (p Point[T]) Sub(v Vector[T]) Point[T] {
	return p.Vec().Sub(v).pt()
}

// Diff returns the vector from q to p, that is p-q.
func (p Point[T]) Diff(q Point[T]) Vector[T] {
	return p.Vec().Sub(q.Vec())
}

// MulScalar returns p with both coordinates multiplied by k.
func (p Point[T]) MulScalar(k T) Point[T] {
	return p.Vec().MulScalar(k).pt()
}

// DivScalar returns p with both coordinates divided by k.
func (p Point[T]) DivScalar(k T) Point[T] {
	return p.Vec().DivScalar(k).pt()
}

// Midpoint returns the point halfway between p and q.
func (p Point[T]) Midpoint(q Point[T]) Point[T] {
	return Pt(midpoint(p.X, q.X), midpoint(p.Y, q.Y))
}

// In reports whether p is in r. See [Rect.Contains].
func (p Point[T]) In(r Rect[T]) bool {
	return r.Contains(p)
}

// Transform applies t to p, including its translation.
func (p Point[T]) Transform(t Transform[T]) Point[T] {
	return t.TransformPoint(p)
}

func (p Point[T]) Array() [2]T {
	return [2]T{p.X, p.Y}
}

func (v Vector[T]) pt() Point[T] {
	return Pt(v.DX, v.DY)
}
