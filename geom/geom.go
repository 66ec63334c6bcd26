// Package geom provides generic 2D geometry primitives.
//
// Every type is parameterized by a [Scalar] so that the same vector,
// point, size, rectangle, and circle logic works for integer,
// fixed-point, and floating-point coordinates. The coordinate space
// has the origin in the top left corner with the axes extending right
// and down, like the standard library's image package.
package geom

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Scalar is a constraint for the types that geom types and functions
// can handle.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Integer is a constraint for any integer type.
type Integer interface {
	constraints.Integer
}

// Float is a constraint for any floating-point type.
type Float interface {
	constraints.Float
}

// Edges is a bitmask representing zero or more edges of a rectangle.
type Edges uint32

const (
	EdgeNone Edges = 0
	EdgeTop  Edges = 1 << (iota - 1)
	EdgeBottom
	EdgeLeft
	EdgeRight
)

// Cast converts x to the scalar type U. Conversions from a
// floating-point type to an integer type saturate at the bounds of U
// and map NaN to zero. All other conversions follow the usual Go
// conversion rules, so they may wrap or lose precision.
func Cast[U, T Scalar](x T) U {
	if !isFloat[T]() || isFloat[U]() {
		return U(x)
	}

	f := float64(x)
	if f != f {
		return 0
	}
	lo, hi := intRange[U]()
	switch {
	case f <= float64(lo):
		return lo
	case f >= float64(hi):
		return hi
	}
	return U(x)
}

func isFloat[T Scalar]() bool {
	var one T = 1
	return one/2 != 0
}

// intRange returns the smallest and largest values representable by
// the integer type T.
func intRange[T Scalar]() (lo, hi T) {
	var zero T
	if zero-1 > zero {
		return zero, zero - 1
	}

	hi = 1
	for hi*2 > hi {
		hi *= 2
	}
	hi += hi - 1
	return -hi - 1, hi
}

// midpoint returns the value halfway between a and b without
// overflowing when both are large. The result is the same regardless
// of argument order, including for unsigned types.
func midpoint[T Scalar](a, b T) T {
	lo, hi := min(a, b), max(a, b)
	return lo + (hi-lo)/2
}

// rem returns the remainder of a/b, truncated towards zero like Go's %
// operator, for every scalar type.
func rem[T Scalar](a, b T) T {
	if isFloat[T]() {
		return T(math.Mod(float64(a), float64(b)))
	}
	return a - a/b*b
}

// sqrt returns the square root of x, truncated for integer types.
func sqrt[T Scalar](x T) T {
	return Cast[T](math.Sqrt(float64(x)))
}
