// Package gonumconv converts between geom types and the types of
// gonum's spatial/r2 package, and uses gonum's linear algebra to fit
// transforms to point correspondences.
package gonumconv

import (
	"errors"
	"fmt"

	"deedles.dev/xgeom/geom"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r2"
)

var (
	// ErrTooFewPoints is returned by FitAffine when given fewer than
	// three point pairs.
	ErrTooFewPoints = errors.New("need at least three points")

	// ErrPointCount is returned by FitAffine when the source and
	// destination sets are different sizes.
	ErrPointCount = errors.New("point count mismatch")
)

// Vec converts v to an r2.Vec.
func Vec[T geom.Scalar](v geom.Vector[T]) r2.Vec {
	return r2.Vec{X: float64(v.DX), Y: float64(v.DY)}
}

// FromVec converts v to a geom.Vector using [geom.Cast].
func FromVec[T geom.Scalar](v r2.Vec) geom.Vector[T] {
	return geom.VConv[T](geom.Vec(v.X, v.Y))
}

// Point converts p to the r2.Vec pointing from the origin to it.
func Point[T geom.Scalar](p geom.Point[T]) r2.Vec {
	return Vec(p.Vec())
}

func FromPoint[T geom.Scalar](v r2.Vec) geom.Point[T] {
	return FromVec[T](v).Point()
}

// Box converts r to an r2.Box with r's top-left corner as its Min
// and r's bottom-right corner as its Max. Inverted rectangles produce
// inverted boxes.
func Box[T geom.Scalar](r geom.Rect[T]) r2.Box {
	return r2.Box{
		Min: Point(r.TopLeft()),
		Max: Point(r.BottomRight()),
	}
}

// FromBox converts b to a geom.Rect positioned at b.Min with the size
// of b.
func FromBox[T geom.Scalar](b r2.Box) geom.Rect[T] {
	size := b.Size()
	return geom.RectWithTopLeft(
		FromPoint[T](b.Min),
		geom.SConv[T](geom.Sz(size.X, size.Y)),
	)
}

// Rotate rotates p by a around the point around.
func Rotate[T geom.Scalar](p geom.Point[T], a geom.Angle[T], around geom.Point[T]) geom.Point[T] {
	return FromPoint[T](r2.Rotate(Point(p), float64(a.Radians()), Point(around)))
}

// FitAffine returns the affine transform that maps the points of src
// onto the corresponding points of dst with the least squared error.
// At least three non-collinear pairs are required.
func FitAffine(src, dst []geom.Point[float64]) (geom.Transform[float64], error) {
	if len(src) != len(dst) {
		return geom.Transform[float64]{}, fmt.Errorf("fit affine: %v source and %v destination points: %w", len(src), len(dst), ErrPointCount)
	}
	if len(src) < 3 {
		return geom.Transform[float64]{}, fmt.Errorf("fit affine: got %v: %w", len(src), ErrTooFewPoints)
	}

	// Unknowns are ordered M11, M21, M31, M12, M22, M32.
	a := mat.NewDense(2*len(src), 6, nil)
	b := mat.NewVecDense(2*len(src), nil)
	for i, p := range src {
		q := dst[i]

		a.Set(2*i, 0, p.X)
		a.Set(2*i, 1, p.Y)
		a.Set(2*i, 2, 1)
		b.SetVec(2*i, q.X)

		a.Set(2*i+1, 3, p.X)
		a.Set(2*i+1, 4, p.Y)
		a.Set(2*i+1, 5, 1)
		b.SetVec(2*i+1, q.Y)
	}

	var qr mat.QR
	qr.Factorize(a)

	var params mat.VecDense
	err := qr.SolveVecTo(&params, false, b)
	if err != nil {
		return geom.Transform[float64]{}, fmt.Errorf("fit affine: %w", err)
	}

	return geom.Transform[float64]{
		M11: params.AtVec(0), M21: params.AtVec(1), M31: params.AtVec(2),
		M12: params.AtVec(3), M22: params.AtVec(4), M32: params.AtVec(5),
	}, nil
}
