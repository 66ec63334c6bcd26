package geom

import (
	"iter"
	"slices"
)

// Rect is an axis-aligned rectangle stored as its four edges. It
// contains the points (X, Y) where Left <= X < Right and
// Top <= Y < Bottom. It is well-formed if Left <= Right and
// Top <= Bottom, but inverted rectangles are representable and most
// methods pass them through unchanged.
type Rect[T Scalar] struct {
	Left   T `json:"left"`
	Top    T `json:"top"`
	Right  T `json:"right"`
	Bottom T `json:"bottom"`
}

// Rt is shorthand for Rect[T]{Left: left, Top: top, Right: right,
// Bottom: bottom}.
func Rt[T Scalar](left, top, right, bottom T) Rect[T] {
	return Rect[T]{Left: left, Top: top, Right: right, Bottom: bottom}
}

// ZeroRect returns the rectangle with all four edges at zero.
func ZeroRect[T Scalar]() Rect[T] {
	return Rect[T]{}
}

func RectWithTopLeft[T Scalar](p Point[T], s Size[T]) Rect[T] {
	return Rt(p.X, p.Y, p.X+s.Width, p.Y+s.Height)
}

func RectWithTopRight[T Scalar](p Point[T], s Size[T]) Rect[T] {
	return Rt(p.X-s.Width, p.Y, p.X, p.Y+s.Height)
}

func RectWithBottomLeft[T Scalar](p Point[T], s Size[T]) Rect[T] {
	return Rt(p.X, p.Y-s.Height, p.X+s.Width, p.Y)
}

func RectWithBottomRight[T Scalar](p Point[T], s Size[T]) Rect[T] {
	return Rt(p.X-s.Width, p.Y-s.Height, p.X, p.Y)
}

// RectWithCenter returns a rectangle of size s centered on p. Each half
// extent is computed by dividing by two, so for integer types an odd
// dimension loses one unit.
func RectWithCenter[T Scalar](p Point[T], s Size[T]) Rect[T] {
	hw, hh := s.Width/2, s.Height/2
	return Rt(p.X-hw, p.Y-hh, p.X+hw, p.Y+hh)
}

func RectWithTopCenter[T Scalar](p Point[T], s Size[T]) Rect[T] {
	hw := s.Width / 2
	return Rt(p.X-hw, p.Y, p.X+hw, p.Y+s.Height)
}

func RectWithBottomCenter[T Scalar](p Point[T], s Size[T]) Rect[T] {
	hw := s.Width / 2
	return Rt(p.X-hw, p.Y-s.Height, p.X+hw, p.Y)
}

func RectWithLeftCenter[T Scalar](p Point[T], s Size[T]) Rect[T] {
	hh := s.Height / 2
	return Rt(p.X, p.Y-hh, p.X+s.Width, p.Y+hh)
}

func RectWithRightCenter[T Scalar](p Point[T], s Size[T]) Rect[T] {
	hh := s.Height / 2
	return Rt(p.X-s.Width, p.Y-hh, p.X, p.Y+hh)
}

// RectWithAnchor returns a rectangle of size s positioned so that the
// anchor described by edges is at p. [EdgeNone] anchors the center,
// a single edge anchors the middle of that edge, and a pair of adjacent
// edges anchors their shared corner. Opposite edges cancel each other
// out.
func RectWithAnchor[T Scalar](edges Edges, p Point[T], s Size[T]) Rect[T] {
	if edges&(EdgeTop|EdgeBottom) == EdgeTop|EdgeBottom {
		edges &^= EdgeTop | EdgeBottom
	}
	if edges&(EdgeLeft|EdgeRight) == EdgeLeft|EdgeRight {
		edges &^= EdgeLeft | EdgeRight
	}

	switch edges {
	case EdgeTop | EdgeLeft:
		return RectWithTopLeft(p, s)
	case EdgeTop | EdgeRight:
		return RectWithTopRight(p, s)
	case EdgeBottom | EdgeLeft:
		return RectWithBottomLeft(p, s)
	case EdgeBottom | EdgeRight:
		return RectWithBottomRight(p, s)
	case EdgeTop:
		return RectWithTopCenter(p, s)
	case EdgeBottom:
		return RectWithBottomCenter(p, s)
	case EdgeLeft:
		return RectWithLeftCenter(p, s)
	case EdgeRight:
		return RectWithRightCenter(p, s)
	default:
		return RectWithCenter(p, s)
	}
}

// RectFromPoints returns the smallest well-formed rectangle with a and
// b as opposite corners. The order of the arguments does not matter.
func RectFromPoints[T Scalar](a, b Point[T]) Rect[T] {
	return Rt(
		min(a.X, b.X),
		min(a.Y, b.Y),
		max(a.X, b.X),
		max(a.Y, b.Y),
	)
}

// RectFromPointSeq returns the bounds of all of the points yielded by
// points. Because of the half-open nature of rectangles, points on the
// right and bottom edges of the result are not contained by it. If
// points yields nothing, the zero rectangle is returned.
func RectFromPointSeq[T Scalar](points iter.Seq[Point[T]]) Rect[T] {
	var r Rect[T]
	first := true
	for p := range points {
		if first {
			r = Rt(p.X, p.Y, p.X, p.Y)
			first = false
			continue
		}

		r.Left = min(r.Left, p.X)
		r.Top = min(r.Top, p.Y)
		r.Right = max(r.Right, p.X)
		r.Bottom = max(r.Bottom, p.Y)
	}
	return r
}

// RectFromPointList is like [RectFromPointSeq] but takes its points as
// arguments.
func RectFromPointList[T Scalar](points ...Point[T]) Rect[T] {
	return RectFromPointSeq(slices.Values(points))
}

// MapRect returns a new rectangle with f applied to each edge of r.
func MapRect[U, T Scalar](r Rect[T], f func(T) U) Rect[U] {
	return Rect[U]{
		Left:   f(r.Left),
		Top:    f(r.Top),
		Right:  f(r.Right),
		Bottom: f(r.Bottom),
	}
}

// RConv converts r to a rectangle of a different scalar type using
// [Cast].
func RConv[Out, In Scalar](r Rect[In]) Rect[Out] {
	return MapRect(r, Cast[Out, In])
}

func (r Rect[T]) Map(f func(T) T) Rect[T] {
	return MapRect(r, f)
}

// Width returns Right-Left. It is negative for horizontally inverted
// rectangles.
func (r Rect[T]) Width() T {
	return r.Right - r.Left
}

// Height returns Bottom-Top. It is negative for vertically inverted
// rectangles.
func (r Rect[T]) Height() T {
	return r.Bottom - r.Top
}

func (r Rect[T]) Size() Size[T] {
	return Sz(r.Width(), r.Height())
}

// AspectRatio returns the width of r divided by its height.
func (r Rect[T]) AspectRatio() T {
	return r.Size().AspectRatio()
}

// IsEmpty reports whether r has a zero width or a zero height. Inverted
// rectangles are not considered empty.
func (r Rect[T]) IsEmpty() bool {
	return r.Left == r.Right || r.Top == r.Bottom
}

// Contains reports whether p is in r. The left and top edges are
// inside of r while the right and bottom edges are not, so adjacent
// rectangles never both contain the same point.
func (r Rect[T]) Contains(p Point[T]) bool {
	return r.Left <= p.X && p.X < r.Right &&
		r.Top <= p.Y && p.Y < r.Bottom
}

// Canon returns the canonical version of r, with the edges swapped as
// necessary so that it is well-formed.
func (r Rect[T]) Canon() Rect[T] {
	return RectFromPoints(r.TopLeft(), r.BottomRight())
}

func (r Rect[T]) TopLeft() Point[T]     { return Pt(r.Left, r.Top) }
func (r Rect[T]) TopRight() Point[T]    { return Pt(r.Right, r.Top) }
func (r Rect[T]) BottomLeft() Point[T]  { return Pt(r.Left, r.Bottom) }
func (r Rect[T]) BottomRight() Point[T] { return Pt(r.Right, r.Bottom) }

// CenterX returns the X coordinate halfway between the left and right
// edges, truncated for integer types.
func (r Rect[T]) CenterX() T {
	return midpoint(r.Left, r.Right)
}

// CenterY returns the Y coordinate halfway between the top and bottom
// edges, truncated for integer types.
func (r Rect[T]) CenterY() T {
	return midpoint(r.Top, r.Bottom)
}

func (r Rect[T]) Center() Point[T]       { return Pt(r.CenterX(), r.CenterY()) }
func (r Rect[T]) TopCenter() Point[T]    { return Pt(r.CenterX(), r.Top) }
func (r Rect[T]) BottomCenter() Point[T] { return Pt(r.CenterX(), r.Bottom) }
func (r Rect[T]) LeftCenter() Point[T]   { return Pt(r.Left, r.CenterY()) }
func (r Rect[T]) RightCenter() Point[T]  { return Pt(r.Right, r.CenterY()) }

// ClippedAbove moves the top edge of r down to y if it is above it.
func (r Rect[T]) ClippedAbove(y T) Rect[T] {
	r.Top = max(r.Top, y)
	return r
}

// ClippedBelow moves the bottom edge of r up to y if it is below it.
func (r Rect[T]) ClippedBelow(y T) Rect[T] {
	r.Bottom = min(r.Bottom, y)
	return r
}

// ClippedLeft moves the left edge of r right to x if it is left of it.
func (r Rect[T]) ClippedLeft(x T) Rect[T] {
	r.Left = max(r.Left, x)
	return r
}

// ClippedRight moves the right edge of r left to x if it is right of
// it.
func (r Rect[T]) ClippedRight(x T) Rect[T] {
	r.Right = min(r.Right, x)
	return r
}

// ScaledFromTop scales the height of r by scale, keeping the top edge
// in place.
func (r Rect[T]) ScaledFromTop(scale T) Rect[T] {
	r.Bottom = r.Top + r.Height()*scale
	return r
}

// ScaledFromBottom scales the height of r by scale, keeping the bottom
// edge in place.
func (r Rect[T]) ScaledFromBottom(scale T) Rect[T] {
	r.Top = r.Bottom - r.Height()*scale
	return r
}

// ScaledFromLeft scales the width of r by scale, keeping the left edge
// in place.
func (r Rect[T]) ScaledFromLeft(scale T) Rect[T] {
	r.Right = r.Left + r.Width()*scale
	return r
}

// ScaledFromRight scales the width of r by scale, keeping the right
// edge in place.
func (r Rect[T]) ScaledFromRight(scale T) Rect[T] {
	r.Left = r.Right - r.Width()*scale
	return r
}

// Intersection returns the largest rectangle contained by both r and
// o. If they do not overlap, it returns false. Rectangles that only
// share an edge intersect in an empty rectangle along that edge.
func (r Rect[T]) Intersection(o Rect[T]) (Rect[T], bool) {
	top, bottom := max(r.Top, o.Top), min(r.Bottom, o.Bottom)
	if top > bottom {
		return Rect[T]{}, false
	}

	left, right := max(r.Left, o.Left), min(r.Right, o.Right)
	if left > right {
		return Rect[T]{}, false
	}

	return Rt(left, top, right, bottom), true
}

// Union returns the smallest rectangle that contains both r and o.
func (r Rect[T]) Union(o Rect[T]) Rect[T] {
	return Rt(
		min(r.Left, o.Left),
		min(r.Top, o.Top),
		max(r.Right, o.Right),
		max(r.Bottom, o.Bottom),
	)
}

// Add returns r translated by v.
func (r Rect[T]) Add(v Vector[T]) Rect[T] {
	return Rt(r.Left+v.DX, r.Top+v.DY, r.Right+v.DX, r.Bottom+v.DY)
}

// Sub returns r translated by -v.
func (r Rect[T]) Sub(v Vector[T]) Rect[T] {
	return Rt(r.Left-v.DX, r.Top-v.DY, r.Right-v.DX, r.Bottom-v.DY)
}

// MulScalar multiplies all four edges of r by k.
func (r Rect[T]) MulScalar(k T) Rect[T] {
	return r.Map(func(e T) T { return e * k })
}

// Resize returns r with its top-left corner in place and its size
// changed to s.
func (r Rect[T]) Resize(s Size[T]) Rect[T] {
	return RectWithTopLeft(r.TopLeft(), s)
}

// CenterAt returns r moved so that its center is at p.
func (r Rect[T]) CenterAt(p Point[T]) Rect[T] {
	return r.Add(p.Diff(r.Center()))
}

// Inset returns r with every edge moved inwards by n. Negative values
// of n move the edges outwards.
func (r Rect[T]) Inset(n T) Rect[T] {
	return Rt(r.Left+n, r.Top+n, r.Right-n, r.Bottom-n)
}

// WidthSlice splits r horizontally into num equal bands and returns
// the band at index i, counting from the left. The caller must ensure
// that i < num.
func (r Rect[T]) WidthSlice(num, i int) Rect[T] {
	w := r.Width() / T(num)
	left := r.Left + T(i)*w
	r.Left, r.Right = left, left+w
	return r
}

// HeightSlice splits r vertically into num equal bands and returns the
// band at index i, counting from the top. The caller must ensure that
// i < num.
func (r Rect[T]) HeightSlice(num, i int) Rect[T] {
	h := r.Height() / T(num)
	top := r.Top + T(i)*h
	r.Top, r.Bottom = top, top+h
	return r
}

// WidthSliceWithMargin is like [Rect.WidthSlice] but leaves margin
// between the bands and between the outer bands and the edges of r.
// That reserves num*margin+margin of the width for margins, with the
// remainder split evenly among the bands.
func (r Rect[T]) WidthSliceWithMargin(num, i int, margin T) Rect[T] {
	n := T(num)
	total := n*margin + margin
	w := (r.Width() - total) / n
	left := r.Left + margin + T(i)*(margin+w)
	r.Left, r.Right = left, left+w
	return r
}

// HeightSliceWithMargin is like [Rect.HeightSlice] but leaves margin
// between the bands in the same way as [Rect.WidthSliceWithMargin].
func (r Rect[T]) HeightSliceWithMargin(num, i int, margin T) Rect[T] {
	n := T(num)
	total := n*margin + margin
	h := (r.Height() - total) / n
	top := r.Top + margin + T(i)*(margin+h)
	r.Top, r.Bottom = top, top+h
	return r
}
