package geom

// Transform is a 2D affine transformation stored as a 3x2 matrix that
// multiplies row vectors. A point (x, y) is mapped to
//
//	(x*M11 + y*M21 + M31, x*M12 + y*M22 + M32)
//
// Vectors are mapped the same way without the M31 and M32 translation
// terms.
type Transform[T Scalar] struct {
	M11 T `json:"m11"`
	M12 T `json:"m12"`
	M21 T `json:"m21"`
	M22 T `json:"m22"`
	M31 T `json:"m31"`
	M32 T `json:"m32"`
}

// IdentityTransform returns the transform that maps every point to
// itself.
func IdentityTransform[T Scalar]() Transform[T] {
	return Transform[T]{M11: 1, M22: 1}
}

// TranslationTransform returns a transform that moves points by v.
func TranslationTransform[T Scalar](v Vector[T]) Transform[T] {
	t := IdentityTransform[T]()
	t.M31, t.M32 = v.DX, v.DY
	return t
}

// ScaleTransform returns a transform that scales by sx horizontally
// and sy vertically around the origin.
func ScaleTransform[T Scalar](sx, sy T) Transform[T] {
	return Transform[T]{M11: sx, M22: sy}
}

// RotationTransform returns a transform that rotates by a around the
// origin. For integer types only quarter turns are exact.
func RotationTransform[T Scalar](a Angle[T]) Transform[T] {
	sin, cos := a.Sin(), a.Cos()
	return Transform[T]{
		M11: cos, M12: sin,
		M21: -sin, M22: cos,
	}
}

// MapTransform returns a new transform with f applied to each element
// of t.
func MapTransform[U, T Scalar](t Transform[T], f func(T) U) Transform[U] {
	return Transform[U]{
		M11: f(t.M11), M12: f(t.M12),
		M21: f(t.M21), M22: f(t.M22),
		M31: f(t.M31), M32: f(t.M32),
	}
}

// TConv converts t to a transform of a different scalar type using
// [Cast].
func TConv[Out, In Scalar](t Transform[In]) Transform[Out] {
	return MapTransform(t, Cast[Out, In])
}

// Then returns the transform that applies t and then o.
func (t Transform[T]) Then(o Transform[T]) Transform[T] {
	return Transform[T]{
		M11: t.M11*o.M11 + t.M12*o.M21,
		M12: t.M11*o.M12 + t.M12*o.M22,
		M21: t.M21*o.M11 + t.M22*o.M21,
		M22: t.M21*o.M12 + t.M22*o.M22,
		M31: t.M31*o.M11 + t.M32*o.M21 + o.M31,
		M32: t.M31*o.M12 + t.M32*o.M22 + o.M32,
	}
}

// Translate returns t followed by a translation by v.
func (t Transform[T]) Translate(v Vector[T]) Transform[T] {
	return t.Then(TranslationTransform(v))
}

// Scale returns t followed by a scale by sx and sy.
func (t Transform[T]) Scale(sx, sy T) Transform[T] {
	return t.Then(ScaleTransform(sx, sy))
}

// Rotate returns t followed by a rotation by a.
func (t Transform[T]) Rotate(a Angle[T]) Transform[T] {
	return t.Then(RotationTransform(a))
}

func (t Transform[T]) Determinant() T {
	return t.M11*t.M22 - t.M12*t.M21
}

// Inverse returns the transform that undoes t. If t is not invertible,
// it returns false. For integer types the elements of the result are
// truncated.
func (t Transform[T]) Inverse() (Transform[T], bool) {
	det := t.Determinant()
	if det == 0 {
		return Transform[T]{}, false
	}

	inv := Transform[T]{
		M11: t.M22 / det, M12: -t.M12 / det,
		M21: -t.M21 / det, M22: t.M11 / det,
	}
	inv.M31 = -(t.M31*inv.M11 + t.M32*inv.M21)
	inv.M32 = -(t.M31*inv.M12 + t.M32*inv.M22)
	return inv, true
}

// TransformVector applies the linear part of t to v, ignoring the
// translation.
func (t Transform[T]) TransformVector(v Vector[T]) Vector[T] {
	return Vec(
		v.DX*t.M11+v.DY*t.M21,
		v.DX*t.M12+v.DY*t.M22,
	)
}

// TransformPoint applies t to p.
func (t Transform[T]) TransformPoint(p Point[T]) Point[T] {
	return Pt(t.M31, t.M32).Add(t.TransformVector(p.Vec()))
}

// TransformRect returns the bounds of the four corners of r after
// applying t to them.
func (t Transform[T]) TransformRect(r Rect[T]) Rect[T] {
	return RectFromPointList(
		t.TransformPoint(r.TopLeft()),
		t.TransformPoint(r.TopRight()),
		t.TransformPoint(r.BottomLeft()),
		t.TransformPoint(r.BottomRight()),
	)
}
