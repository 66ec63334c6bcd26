package geom

// Vector is a displacement in 2D space. Unlike a [Point], it has no
// position, so transforms and rectangles treat it differently.
type Vector[T Scalar] struct {
	DX T `json:"dx"`
	DY T `json:"dy"`
}

// Vec is shorthand for Vector[T]{DX: dx, DY: dy}.
func Vec[T Scalar](dx, dy T) Vector[T] {
	return Vector[T]{DX: dx, DY: dy}
}

// UniformVec returns a vector with both components set to d.
func UniformVec[T Scalar](d T) Vector[T] {
	return Vec(d, d)
}

func VecFromDX[T Scalar](dx T) Vector[T] {
	return Vector[T]{DX: dx}
}

func VecFromDY[T Scalar](dy T) Vector[T] {
	return Vector[T]{DY: dy}
}

// ZeroVec returns the zero vector. It is the same as the zero value of
// Vector[T].
func ZeroVec[T Scalar]() Vector[T] {
	return Vector[T]{}
}

// OneVec returns the vector (1, 1).
func OneVec[T Scalar]() Vector[T] {
	return UniformVec[T](1)
}

func VecFromArray[T Scalar](a [2]T) Vector[T] {
	return Vec(a[0], a[1])
}

// VecFromDirection returns the unit vector pointing in the direction
// d. For integer types the components are truncated, so diagonals
// become the zero vector.
func VecFromDirection[T Scalar](d Direction) Vector[T] {
	return VConv[T](d.Angle().UnitVector())
}

// VecFromCardinal returns the unit vector pointing in the direction c.
func VecFromCardinal[T Scalar](c Cardinal) Vector[T] {
	return VConv[T](c.Angle().UnitVector())
}

// MapVec returns a new vector with f applied to each component of v.
// It is the basis for converting between scalar types.
func MapVec[U, T Scalar](v Vector[T], f func(T) U) Vector[U] {
	return Vector[U]{DX: f(v.DX), DY: f(v.DY)}
}

// VConv converts v to a vector of a different scalar type using
// [Cast].
func VConv[Out, In Scalar](v Vector[In]) Vector[Out] {
	return MapVec(v, Cast[Out, In])
}

func (v Vector[T]) WithDX(dx T) Vector[T] {
	v.DX = dx
	return v
}

func (v Vector[T]) WithDY(dy T) Vector[T] {
	v.DY = dy
	return v
}

// Map returns v with f applied to each component.
func (v Vector[T]) Map(f func(T) T) Vector[T] {
	return MapVec(v, f)
}

func (v Vector[T]) MapDX(f func(T) T) Vector[T] {
	return v.WithDX(f(v.DX))
}

func (v Vector[T]) MapDY(f func(T) T) Vector[T] {
	return v.WithDY(f(v.DY))
}

// Dot returns the dot product of v and w.
func (v Vector[T]) Dot(w Vector[T]) T {
	return v.DX*w.DX + v.DY*w.DY
}

// MagnitudeSquared returns the squared length of v. Unlike
// [Vector.Magnitude], it is exact for integer types.
func (v Vector[T]) MagnitudeSquared() T {
	return v.Dot(v)
}

// Magnitude returns the length of v. For integer types the result is
// truncated.
func (v Vector[T]) Magnitude() T {
	return sqrt(v.MagnitudeSquared())
}

// Normalize returns a vector with the same direction as v and a
// magnitude of one. The zero vector has no direction, so normalizing it
// produces NaN components for floating-point types and a division by
// zero panic for integer types. It is up to the caller to avoid that.
func (v Vector[T]) Normalize() Vector[T] {
	return v.DivScalar(v.Magnitude())
}

// Angle returns the angle of v measured from the positive X axis.
func (v Vector[T]) Angle() Angle[T] {
	return AngleFromXY(v.DX, v.DY)
}

// Scaled multiplies the components of v by the width and height of s
// respectively.
func (v Vector[T]) Scaled(s Size[T]) Vector[T] {
	return Vec(v.DX*s.Width, v.DY*s.Height)
}

// Perpendicular returns v rotated by 90 degrees, mapping (dx, dy) to
// (-dy, dx). For unsigned types the negation wraps.
func (v Vector[T]) Perpendicular() Vector[T] {
	return Vec(-v.DY, v.DX)
}

// YX returns v with its components swapped.
func (v Vector[T]) YX() Vector[T] {
	return Vec(v.DY, v.DX)
}

// Transform applies the linear part of t to v. Vectors are
// displacements, so the translation of t is ignored.
func (v Vector[T]) Transform(t Transform[T]) Vector[T] {
	return t.TransformVector(v)
}

func (v Vector[T]) Array() [2]T {
	return [2]T{v.DX, v.DY}
}

// Point returns the point reached by displacing the origin by v.
func (v Vector[T]) Point() Point[T] {
	return Point[T]{}.Add(v)
}

func (v Vector[T]) Size() Size[T] {
	return Sz(v.DX, v.DY)
}

func (v Vector[T]) IsZero() bool {
	return v.DX == 0 && v.DY == 0
}

// Add returns the vector v+w.
func (v Vector[T]) Add(w Vector[T]) Vector[T] {
	return Vec(v.DX+w.DX, v.DY+w.DY)
}

// Sub returns the vector v-w.
func (v Vector[T]) Sub(w Vector[T]) Vector[T] {
	return Vec(v.DX-w.DX, v.DY-w.DY)
}

// Mul returns the component-wise product of v and w.
func (v Vector[T]) Mul(w Vector[T]) Vector[T] {
	return Vec(v.DX*w.DX, v.DY*w.DY)
}

// MulScalar returns the vector v*k.
func (v Vector[T]) MulScalar(k T) Vector[T] {
	return v.Map(func(c T) T { return c * k })
}

// Div returns the component-wise quotient of v and w.
func (v Vector[T]) Div(w Vector[T]) Vector[T] {
	return Vec(v.DX/w.DX, v.DY/w.DY)
}

// DivScalar returns the vector v/k.
func (v Vector[T]) DivScalar(k T) Vector[T] {
	return v.Map(func(c T) T { return c / k })
}

// Rem returns the component-wise remainder of v and w. It works for
// floating-point types as well, with the same truncated semantics as
// Go's % operator.
func (v Vector[T]) Rem(w Vector[T]) Vector[T] {
	return Vec(rem(v.DX, w.DX), rem(v.DY, w.DY))
}

// RemScalar returns the remainder of each component of v divided by k.
func (v Vector[T]) RemScalar(k T) Vector[T] {
	return v.Map(func(c T) T { return rem(c, k) })
}

// Neg returns the vector -v.
func (v Vector[T]) Neg() Vector[T] {
	return v.Map(func(c T) T { return -c })
}
