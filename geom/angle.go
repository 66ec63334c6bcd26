package geom

import "math"

// Angle is an angle stored in radians. Positive angles turn from the
// positive X axis towards the positive Y axis, which is clockwise on a
// screen with Y extending downwards.
type Angle[T Scalar] struct {
	Rad T `json:"rad"`
}

// Rad returns an angle of r radians.
func Rad[T Scalar](r T) Angle[T] {
	return Angle[T]{Rad: r}
}

// Deg returns an angle of d degrees.
func Deg[T Scalar](d T) Angle[T] {
	return Rad(Cast[T](float64(d) * math.Pi / 180))
}

// AngleFromXY returns the angle of the vector (dx, dy) measured from
// the positive X axis, in the range [-π, π].
func AngleFromXY[T Scalar](dx, dy T) Angle[T] {
	return Rad(Cast[T](math.Atan2(float64(dy), float64(dx))))
}

// AConv converts a to an angle of a different scalar type.
func AConv[Out, In Scalar](a Angle[In]) Angle[Out] {
	return Rad(Cast[Out](a.Rad))
}

func (a Angle[T]) Radians() T {
	return a.Rad
}

func (a Angle[T]) Degrees() T {
	return Cast[T](float64(a.Rad) * 180 / math.Pi)
}

func (a Angle[T]) Add(b Angle[T]) Angle[T] {
	return Rad(a.Rad + b.Rad)
}

func (a Angle[T]) Sub(b Angle[T]) Angle[T] {
	return Rad(a.Rad - b.Rad)
}

func (a Angle[T]) Sin() T {
	return Cast[T](math.Sin(float64(a.Rad)))
}

func (a Angle[T]) Cos() T {
	return Cast[T](math.Cos(float64(a.Rad)))
}

// UnitVector returns the vector of length one pointing along a.
func (a Angle[T]) UnitVector() Vector[T] {
	sin, cos := math.Sincos(float64(a.Rad))
	return Vec(Cast[T](cos), Cast[T](sin))
}
