// Package imageconv converts between geom types and the geometry
// types of the standard library's image package and of
// golang.org/x/image's math/fixed and math/f64 packages.
//
// geom types can use fixed.Int26_6 directly as their scalar type.
// Addition, subtraction, comparison, and the layout functions of geom
// work as expected with it, but multiplication and division treat the
// values as plain integers in units of 1/64, so scale factors should
// be integers rather than fixed.Int26_6 values.
package imageconv

import (
	"image"
	"math"

	"deedles.dev/xgeom/geom"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"
)

// Point converts p to an image.Point using [geom.Cast].
func Point[T geom.Scalar](p geom.Point[T]) image.Point {
	q := geom.PConv[int](p)
	return image.Pt(q.X, q.Y)
}

func FromPoint[T geom.Scalar](p image.Point) geom.Point[T] {
	return geom.PConv[T](geom.Pt(p.X, p.Y))
}

// Rectangle converts r to an image.Rectangle with the same edges.
// Unlike image.Rect, it does not canonicalize the result.
func Rectangle[T geom.Scalar](r geom.Rect[T]) image.Rectangle {
	return image.Rectangle{
		Min: Point(r.TopLeft()),
		Max: Point(r.BottomRight()),
	}
}

func FromRectangle[T geom.Scalar](r image.Rectangle) geom.Rect[T] {
	return geom.RConv[T](geom.Rt(r.Min.X, r.Min.Y, r.Max.X, r.Max.Y))
}

// Int26_6 converts x to the nearest 26.6 fixed-point value, saturating
// at its bounds.
func Int26_6[T geom.Scalar](x T) fixed.Int26_6 {
	return geom.Cast[fixed.Int26_6](math.Round(float64(x) * 64))
}

// FromInt26_6 converts x from 26.6 fixed-point to T.
func FromInt26_6[T geom.Scalar](x fixed.Int26_6) T {
	return geom.Cast[T](float64(x) / 64)
}

// ToFixed converts the edges of r to 26.6 fixed-point.
func ToFixed[T geom.Scalar](r geom.Rect[T]) geom.Rect[fixed.Int26_6] {
	return geom.MapRect(r, Int26_6[T])
}

// FromFixed converts the edges of r from 26.6 fixed-point to T.
func FromFixed[T geom.Scalar](r geom.Rect[fixed.Int26_6]) geom.Rect[T] {
	return geom.MapRect(r, FromInt26_6[T])
}

func Point26_6(p geom.Point[fixed.Int26_6]) fixed.Point26_6 {
	return fixed.Point26_6{X: p.X, Y: p.Y}
}

func FromPoint26_6(p fixed.Point26_6) geom.Point[fixed.Int26_6] {
	return geom.Pt(p.X, p.Y)
}

// Rectangle26_6 converts r to a fixed.Rectangle26_6 with the same
// edges.
func Rectangle26_6(r geom.Rect[fixed.Int26_6]) fixed.Rectangle26_6 {
	return fixed.Rectangle26_6{
		Min: Point26_6(r.TopLeft()),
		Max: Point26_6(r.BottomRight()),
	}
}

func FromRectangle26_6(r fixed.Rectangle26_6) geom.Rect[fixed.Int26_6] {
	return geom.Rt(r.Min.X, r.Min.Y, r.Max.X, r.Max.Y)
}

// Aff3 converts t to an f64.Aff3. An Aff3 multiplies column vectors,
// so it holds the transpose of t's matrix.
func Aff3[T geom.Scalar](t geom.Transform[T]) f64.Aff3 {
	m := geom.TConv[float64](t)
	return f64.Aff3{
		m.M11, m.M21, m.M31,
		m.M12, m.M22, m.M32,
	}
}

func FromAff3[T geom.Scalar](a f64.Aff3) geom.Transform[T] {
	return geom.TConv[T](geom.Transform[float64]{
		M11: a[0], M21: a[1], M31: a[2],
		M12: a[3], M22: a[4], M32: a[5],
	})
}
