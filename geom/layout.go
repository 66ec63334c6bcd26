package geom

import (
	"iter"

	"deedles.dev/xiter"
)

// hsplit splits a rectangle into two rectangles arranged
// horizontally.
func hsplit[T Scalar](r Rect[T], w T) (left, right Rect[T]) {
	x := r.Left + w
	return r.ClippedRight(x), r.ClippedLeft(x)
}

func hsplitHalf[T Scalar](r Rect[T]) (left, right Rect[T]) {
	return hsplit(r, r.Width()/2)
}

// vsplit splits a rectangle into two rectangles arranged vertically.
func vsplit[T Scalar](r Rect[T], h T) (top, bottom Rect[T]) {
	y := r.Top + h
	return r.ClippedBelow(y), r.ClippedAbove(y)
}

func vsplitHalf[T Scalar](r Rect[T]) (top, bottom Rect[T]) {
	return vsplit(r, r.Height()/2)
}

// TileRightThenDown arranges and resizes the elements of tiles in
// order to split r into a series of rectangles that recursively split
// each section halfway to the right and then downwards. In other
// words,
//
//	tiles := make([]geom.Rect[float64], 4)
//	TileRightThenDown(tiles, r)
//
// will produce
//
//	------------
//	|    |     |
//	|    -------
//	|    |  |  |
//	------------
func TileRightThenDown[T Scalar](tiles []Rect[T], r Rect[T]) {
	insertTilesFromSeq(tiles, TiledRightThenDown(len(tiles), r))
}

// TiledRightThenDown is the same as [TileRightThenDown] but yields
// the successive tiles from an iterator instead of inserting them
// into a slice.
func TiledRightThenDown[T Scalar](numtiles int, r Rect[T]) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		if numtiles < 1 {
			return
		}

		split, next := hsplitHalf[T], vsplitHalf[T]
		c, rem := r, r
		for range numtiles - 1 {
			c, rem = split(rem)
			if !yield(c) {
				return
			}
			split, next = next, split
		}

		yield(rem)
	}
}

// TileTwoThirdsSidebar arranges and resizes the elements of tiles so
// that the result are a series of rectangles where the first is
// two-thirds the width of r and the rest are arranged vertically in
// an even split in the remaining space.
func TileTwoThirdsSidebar[T Scalar](tiles []Rect[T], r Rect[T]) {
	insertTilesFromSeq(tiles, TiledTwoThirdsSidebar(len(tiles), r))
}

// TiledTwoThirdsSidebar is the same as [TileTwoThirdsSidebar] except
// that it yields the successive rectangles from an iterator instead
// of inserting them into a slice.
func TiledTwoThirdsSidebar[T Scalar](numtiles int, r Rect[T]) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		if numtiles < 1 {
			return
		}

		first, rem := hsplit(r, 2*r.Width()/3)
		if !yield(first) {
			return
		}

		for t := range TiledEvenVertically(numtiles-1, rem) {
			if !yield(t) {
				return
			}
		}
	}
}

// TileEvenVertically arranges and resizes the elements of tiles so
// that the result are a series of rectangles that comprise an even,
// vertical splitting of r. In other words,
//
//	tiles := make([]geom.Rect[float64], 3)
//	TileEvenVertically(tiles, r)
//
// will produce
//
//	----------
//	|        |
//	----------
//	|        |
//	----------
//	|        |
//	----------
func TileEvenVertically[T Scalar](tiles []Rect[T], r Rect[T]) {
	insertTilesFromSeq(tiles, TiledEvenVertically(len(tiles), r))
}

// TiledEvenVertically is the same as [TileEvenVertically] except that
// it yields the tiles from an iterator.
func TiledEvenVertically[T Scalar](numtiles int, r Rect[T]) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		for i := range numtiles {
			if !yield(r.HeightSlice(numtiles, i)) {
				return
			}
		}
	}
}

// TiledEvenVerticallyWithMargin is like [TiledEvenVertically] but
// leaves margin between the tiles and around the outside of them. See
// [Rect.HeightSliceWithMargin].
func TiledEvenVerticallyWithMargin[T Scalar](numtiles int, r Rect[T], margin T) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		for i := range numtiles {
			if !yield(r.HeightSliceWithMargin(numtiles, i, margin)) {
				return
			}
		}
	}
}

// TileEvenHorizontally arranges and resizes the elements of tiles so
// that the result are a series of rectangles that comprise an even,
// horizontal splitting of r. In other words,
//
//	tiles := make([]geom.Rect[float64], 3)
//	TileEvenHorizontally(tiles, r)
//
// will produce
//
//	----------
//	|  |  |  |
//	----------
func TileEvenHorizontally[T Scalar](tiles []Rect[T], r Rect[T]) {
	insertTilesFromSeq(tiles, TiledEvenHorizontally(len(tiles), r))
}

// TiledEvenHorizontally is the same as [TileEvenHorizontally] except
// that it yields the tiles from an iterator.
func TiledEvenHorizontally[T Scalar](numtiles int, r Rect[T]) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		for i := range numtiles {
			if !yield(r.WidthSlice(numtiles, i)) {
				return
			}
		}
	}
}

// TiledEvenHorizontallyWithMargin is like [TiledEvenHorizontally] but
// leaves margin between the tiles and around the outside of them. See
// [Rect.WidthSliceWithMargin].
func TiledEvenHorizontallyWithMargin[T Scalar](numtiles int, r Rect[T], margin T) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		for i := range numtiles {
			if !yield(r.WidthSliceWithMargin(numtiles, i, margin)) {
				return
			}
		}
	}
}

// TileRows arranges and resizes the elements of tiles to produce a
// series of rows and columns the union of which reproduces r. The
// final row of the table is split evenly into at most cols columns.
// When that number is exceeded, a new row is added below it instead.
func TileRows[T Scalar](tiles []Rect[T], r Rect[T], cols int) {
	insertTilesFromSeq(tiles, TiledRows(len(tiles), r, cols))
}

// TiledRows is the same as [TileRows] except that it yields the tiles
// from an iterator.
func TiledRows[T Scalar](numtiles int, r Rect[T], cols int) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		numrows := numtiles / cols
		if numtiles%cols != 0 {
			numrows++
		}
		rows := TiledEvenVertically(numrows, r)

		remaining := numtiles
		for row := range rows {
			if remaining <= 0 {
				break
			}

			numcols := min(remaining, cols)
			for t := range TiledEvenHorizontally(numcols, row) {
				if !yield(t) {
					return
				}
			}
			remaining -= numcols
		}
	}
}

// VerticalStack returns an iterator that yields the rectangle
// provided and then identical copies shifted downwards by its height
// repeatedly, thus producing an infinite vertical stack of rectangles
// below the first.
func VerticalStack[T Scalar](first Rect[T]) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		shift := VecFromDY(first.Canon().Height())
		for r := first; ; r = r.Add(shift) {
			if !yield(r) {
				return
			}
		}
	}
}

// ArrangeVerticalStack arranges the subsequent rectangles of rects
// underneath the first vertically, expanding all for which it is
// necessary so that they are all the same width including the first.
func ArrangeVerticalStack[T Scalar](rects []Rect[T]) {
	if len(rects) <= 1 {
		return
	}

	prev := rects[0].Canon()
	for _, rect := range rects {
		if rect.Width() > prev.Width() {
			prev.Right = prev.Left + rect.Width()
		}
	}
	rects[0] = prev

	for i := 1; i < len(rects); i++ {
		rects[i] = Rt(
			prev.Left,
			prev.Bottom,
			prev.Right,
			prev.Bottom+rects[i].Height(),
		)
		prev = rects[i]
	}
}

// Align shifts the specified edges of inner to align with the
// corresponding edges of outer, stretching the rectangle as
// necessary if opposite edges are specified.
func Align[T Scalar](outer, inner Rect[T], edges Edges) Rect[T] {
	inner = inner.CenterAt(outer.Center())
	switch {
	case edges&EdgeTop != 0:
		inner.Top, inner.Bottom = outer.Top, outer.Top+inner.Height()
		if edges&EdgeBottom != 0 {
			inner.Bottom = outer.Bottom
		}
	case edges&EdgeBottom != 0:
		inner.Top, inner.Bottom = outer.Bottom-inner.Height(), outer.Bottom
	}
	switch {
	case edges&EdgeLeft != 0:
		inner.Left, inner.Right = outer.Left, outer.Left+inner.Width()
		if edges&EdgeRight != 0 {
			inner.Right = outer.Right
		}
	case edges&EdgeRight != 0:
		inner.Left, inner.Right = outer.Right-inner.Width(), outer.Right
	}

	return inner
}

func insertTilesFromSeq[T Scalar](tiles []Rect[T], s iter.Seq[Rect[T]]) {
	for i, t := range xiter.Enumerate(s) {
		tiles[i] = t
	}
}
