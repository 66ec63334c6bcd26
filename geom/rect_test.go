package geom_test

import (
	"encoding/json"
	"math"
	"testing"

	"deedles.dev/xgeom/geom"
	"github.com/stretchr/testify/require"
)

func TestRectContainsIsHalfOpen(t *testing.T) {
	rects := []geom.Rect[int]{
		geom.Rt(0, 0, 10, 10),
		geom.Rt(-5, -5, 5, 5),
		geom.Rt(3, 7, 4, 8),
		geom.RectWithCenter(geom.Pt(100, 100), geom.Sz(20, 40)),
	}
	for _, r := range rects {
		require.True(t, r.Contains(r.TopLeft()), "%v", r)
		require.False(t, r.Contains(r.BottomRight()), "%v", r)
		require.False(t, r.Contains(r.TopRight()), "%v", r)
		require.False(t, r.Contains(r.BottomLeft()), "%v", r)
		require.True(t, r.TopLeft().In(r), "%v", r)
	}

	f := geom.Rt(0.0, 0.0, 1.0, 1.0)
	require.True(t, f.Contains(geom.Pt(0.999, 0.999)))
	require.False(t, f.Contains(geom.Pt(1.0, 0.5)))
}

func TestRectSlice(t *testing.T) {
	r := geom.RectWithTopLeft(geom.Pt(0, 0), geom.Sz(100, 100))
	require.Equal(t, geom.Rt(0, 0, 25, 100), r.WidthSlice(4, 0))
	require.Equal(t, geom.Rt(75, 0, 100, 100), r.WidthSlice(4, 3))
	require.Equal(t, geom.Rt(0, 25, 100, 50), r.HeightSlice(4, 1))
	require.Equal(t, geom.Rt(0, 75, 100, 100), r.HeightSlice(4, 3))

	odd := geom.Rt(10, 0, 20, 5)
	require.Equal(t, geom.Rt(10, 0, 13, 5), odd.WidthSlice(3, 0))
	require.Equal(t, geom.Rt(16, 0, 19, 5), odd.WidthSlice(3, 2))
}

func TestRectSliceWithMargin(t *testing.T) {
	r := geom.Rt(0, 0, 100, 50)
	require.Equal(t, geom.Rt(4, 0, 24, 50), r.WidthSliceWithMargin(4, 0, 4))
	require.Equal(t, geom.Rt(28, 0, 48, 50), r.WidthSliceWithMargin(4, 1, 4))
	require.Equal(t, geom.Rt(76, 0, 96, 50), r.WidthSliceWithMargin(4, 3, 4))

	require.Equal(t, geom.Rt(0, 5, 100, 22), r.HeightSliceWithMargin(2, 0, 5))
	require.Equal(t, geom.Rt(0, 27, 100, 44), r.HeightSliceWithMargin(2, 1, 5))

	f := geom.Rt(0.0, 0.0, 10.0, 10.0)
	s := f.WidthSliceWithMargin(3, 1, 1)
	require.InDelta(t, 4.0, s.Left, 1e-12)
	require.InDelta(t, 6.0, s.Right, 1e-12)
}

func TestRectAnchors(t *testing.T) {
	p, s := geom.Pt(10, 20), geom.Sz(6, 4)

	tests := []struct {
		name   string
		edges  geom.Edges
		rect   geom.Rect[int]
		anchor func(geom.Rect[int]) geom.Point[int]
	}{
		{"TopLeft", geom.EdgeTop | geom.EdgeLeft, geom.RectWithTopLeft(p, s), geom.Rect[int].TopLeft},
		{"TopRight", geom.EdgeTop | geom.EdgeRight, geom.RectWithTopRight(p, s), geom.Rect[int].TopRight},
		{"BottomLeft", geom.EdgeBottom | geom.EdgeLeft, geom.RectWithBottomLeft(p, s), geom.Rect[int].BottomLeft},
		{"BottomRight", geom.EdgeBottom | geom.EdgeRight, geom.RectWithBottomRight(p, s), geom.Rect[int].BottomRight},
		{"Center", geom.EdgeNone, geom.RectWithCenter(p, s), geom.Rect[int].Center},
		{"TopCenter", geom.EdgeTop, geom.RectWithTopCenter(p, s), geom.Rect[int].TopCenter},
		{"BottomCenter", geom.EdgeBottom, geom.RectWithBottomCenter(p, s), geom.Rect[int].BottomCenter},
		{"LeftCenter", geom.EdgeLeft, geom.RectWithLeftCenter(p, s), geom.Rect[int].LeftCenter},
		{"RightCenter", geom.EdgeRight, geom.RectWithRightCenter(p, s), geom.Rect[int].RightCenter},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, p, tt.anchor(tt.rect))
			require.Equal(t, s, tt.rect.Size())
			require.Equal(t, tt.rect, geom.RectWithAnchor(tt.edges, p, s))
		})
	}

	all := geom.EdgeTop | geom.EdgeBottom | geom.EdgeLeft | geom.EdgeRight
	require.Equal(t, geom.RectWithCenter(p, s), geom.RectWithAnchor(all, p, s))
	require.Equal(t, geom.RectWithLeftCenter(p, s), geom.RectWithAnchor(all&^geom.EdgeRight, p, s))
}

func TestRectWithCenterTruncates(t *testing.T) {
	require.Equal(t, geom.Rt(8, 8, 12, 12), geom.RectWithCenter(geom.Pt(10, 10), geom.Sz(5, 5)))
	require.Equal(t, geom.Rt(7.5, 7.5, 12.5, 12.5), geom.RectWithCenter(geom.Pt(10.0, 10.0), geom.Sz(5.0, 5.0)))
}

func TestRectCenterDoesNotOverflow(t *testing.T) {
	r := geom.Rt[int8](100, 90, 120, 126)
	require.Equal(t, geom.Pt[int8](110, 108), r.Center())
	require.Equal(t, geom.Pt[int8](110, 90), r.TopCenter())
	require.Equal(t, geom.Pt[int8](110, 126), r.BottomCenter())
	require.Equal(t, geom.Pt[int8](100, 108), r.LeftCenter())
	require.Equal(t, geom.Pt[int8](120, 108), r.RightCenter())

	big := geom.Rt[int64](math.MaxInt64-10, 0, math.MaxInt64, 2)
	require.Equal(t, int64(math.MaxInt64-5), big.CenterX())
}

func TestRectCenterUnsignedInverted(t *testing.T) {
	r := geom.Rt[uint8](10, 10, 4, 4)
	require.Equal(t, geom.Pt[uint8](7, 7), r.Center())
	require.Equal(t, r.Canon().Center(), r.Center())
	require.Equal(t, geom.Pt[uint8](7, 10), r.TopCenter())
}

func TestRectQueries(t *testing.T) {
	r := geom.Rt(1, 2, 11, 7)
	require.Equal(t, 10, r.Width())
	require.Equal(t, 5, r.Height())
	require.Equal(t, geom.Sz(10, 5), r.Size())
	require.Equal(t, 2, r.AspectRatio())
	require.Equal(t, 2.0, geom.Rt(0.0, 0.0, 4.0, 2.0).AspectRatio())

	inverted := geom.Rt(10, 10, 0, 0)
	require.Equal(t, -10, inverted.Width())
	require.Equal(t, -10, inverted.Height())
	require.False(t, inverted.IsEmpty())
	require.Equal(t, geom.Rt(0, 0, 10, 10), inverted.Canon())
}

func TestRectIsEmpty(t *testing.T) {
	require.True(t, geom.ZeroRect[int]().IsEmpty())
	require.True(t, geom.RectWithTopLeft(geom.Pt(0, 0), geom.Sz(0, 5)).IsEmpty())
	require.True(t, geom.Rt(0, 3, 5, 3).IsEmpty())
	require.False(t, geom.Rt(0, 0, 1, 1).IsEmpty())
}

func TestRectClipped(t *testing.T) {
	r := geom.Rt(0, 0, 10, 10)
	require.Equal(t, geom.Rt(0, 3, 10, 10), r.ClippedAbove(3))
	require.Equal(t, r, r.ClippedAbove(-5))
	require.Equal(t, geom.Rt(0, 0, 10, 7), r.ClippedBelow(7))
	require.Equal(t, r, r.ClippedBelow(15))
	require.Equal(t, geom.Rt(2, 0, 10, 10), r.ClippedLeft(2))
	require.Equal(t, r, r.ClippedLeft(-1))
	require.Equal(t, geom.Rt(0, 0, 8, 10), r.ClippedRight(8))
	require.Equal(t, r, r.ClippedRight(11))
}

func TestRectScaled(t *testing.T) {
	r := geom.Rt(0, 0, 10, 10)
	require.Equal(t, geom.Rt(0, 0, 10, 20), r.ScaledFromTop(2))
	require.Equal(t, geom.Rt(0, -10, 10, 10), r.ScaledFromBottom(2))
	require.Equal(t, geom.Rt(0, 0, 30, 10), r.ScaledFromLeft(3))
	require.Equal(t, geom.Rt(-20, 0, 10, 10), r.ScaledFromRight(3))

	f := geom.Rt(0.0, 0.0, 10.0, 10.0)
	require.Equal(t, geom.Rt(0.0, 0.0, 5.0, 10.0), f.ScaledFromLeft(0.5))
	require.Equal(t, geom.Rt(5.0, 0.0, 10.0, 10.0), f.ScaledFromRight(0.5))
}

func TestRectIntersection(t *testing.T) {
	a := geom.Rt(0, 0, 10, 10)

	tests := []struct {
		name string
		b    geom.Rect[int]
		want geom.Rect[int]
		ok   bool
	}{
		{"Overlap", geom.Rt(5, 5, 15, 15), geom.Rt(5, 5, 10, 10), true},
		{"Inside", geom.Rt(2, 2, 4, 4), geom.Rt(2, 2, 4, 4), true},
		{"SharedEdge", geom.Rt(10, 0, 20, 10), geom.Rt(10, 0, 10, 10), true},
		{"SharedCorner", geom.Rt(10, 10, 20, 20), geom.Rt(10, 10, 10, 10), true},
		{"DisjointX", geom.Rt(11, 0, 20, 10), geom.Rect[int]{}, false},
		{"DisjointY", geom.Rt(0, -20, 10, -1), geom.Rect[int]{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := a.Intersection(tt.b)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.want, got)

			got, ok = tt.b.Intersection(a)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.want, got)
		})
	}

	edge, _ := a.Intersection(geom.Rt(10, 0, 20, 10))
	require.True(t, edge.IsEmpty())
}

func TestRectUnion(t *testing.T) {
	pairs := [][2]geom.Rect[int]{
		{geom.Rt(0, 0, 10, 10), geom.Rt(5, 5, 15, 15)},
		{geom.Rt(0, 0, 1, 1), geom.Rt(100, 100, 101, 101)},
		{geom.Rt(-5, 3, 0, 4), geom.Rt(2, -8, 3, 9)},
	}
	for _, p := range pairs {
		u := p[0].Union(p[1])
		require.Equal(t, u, p[1].Union(p[0]))
		for _, r := range p {
			got, ok := u.Intersection(r)
			require.True(t, ok)
			require.Equal(t, r, got)
		}
	}
}

func TestRectFromPoints(t *testing.T) {
	a, b := geom.Pt(5, 2), geom.Pt(1, 7)
	require.Equal(t, geom.Rt(1, 2, 5, 7), geom.RectFromPoints(a, b))
	require.Equal(t, geom.RectFromPoints(a, b), geom.RectFromPoints(b, a))

	require.Equal(t, geom.ZeroRect[int](), geom.RectFromPointList[int]())
	require.Equal(t, geom.Rt(3, 1, 3, 1), geom.RectFromPointList(geom.Pt(3, 1)))
	require.Equal(t,
		geom.Rt(-1, -2, 3, 4),
		geom.RectFromPointList(geom.Pt(3, 1), geom.Pt(-1, 4), geom.Pt(2, -2)),
	)

	circle := geom.Circ(geom.Pt(0.0, 0.0), 1.0)
	bounds := geom.RectFromPointSeq(circle.Points(4, geom.Rad(0.0)))
	require.InDelta(t, -1, bounds.Left, 1e-12)
	require.InDelta(t, -1, bounds.Top, 1e-12)
	require.InDelta(t, 1, bounds.Right, 1e-12)
	require.InDelta(t, 1, bounds.Bottom, 1e-12)
}

func TestRectArithmetic(t *testing.T) {
	r := geom.Rt(1, 2, 3, 4)
	require.Equal(t, geom.Rt(11, 22, 13, 24), r.Add(geom.Vec(10, 20)))
	require.Equal(t, r, r.Add(geom.Vec(10, 20)).Sub(geom.Vec(10, 20)))
	require.Equal(t, geom.Rt(2, 4, 6, 8), r.MulScalar(2))
	require.Equal(t, geom.Rt(2, 3, 2, 3), r.Inset(1))
	require.Equal(t, geom.Rt(1, 2, 11, 7), r.Resize(geom.Sz(10, 5)))
	require.Equal(t, geom.Rt(-1, -1, 1, 1), r.CenterAt(geom.Pt(0, 0)))

	moved := r
	moved = moved.Add(geom.Vec(1, 1))
	require.Equal(t, geom.Rt(1, 2, 3, 4), r)
	require.Equal(t, geom.Rt(2, 3, 4, 5), moved)
}

func TestRConv(t *testing.T) {
	r := geom.Rt(1.5, -2.5, 300.0, 4.0)
	require.Equal(t, geom.Rt(1, -2, 300, 4), geom.RConv[int](r))
	require.Equal(t, geom.Rt[uint8](1, 0, 255, 4), geom.RConv[uint8](r))
	require.Equal(t, geom.Rt(2.0, 3.0, 4.0, 5.0), geom.RConv[float64](geom.Rt(2, 3, 4, 5)))
}

func TestRectJSONFieldOrder(t *testing.T) {
	data, err := json.Marshal(geom.Rt(1, 2, 3, 4))
	require.Nil(t, err)
	require.Equal(t, `{"left":1,"top":2,"right":3,"bottom":4}`, string(data))

	var r geom.Rect[float64]
	err = json.Unmarshal([]byte(`{"left":0.5,"top":1,"right":2,"bottom":3}`), &r)
	require.Nil(t, err)
	require.Equal(t, geom.Rt(0.5, 1, 2, 3), r)
}
