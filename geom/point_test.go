package geom_test

import (
	"encoding/json"
	"math"
	"testing"

	"deedles.dev/xgeom/geom"
	"github.com/stretchr/testify/require"
)

func TestPoint(t *testing.T) {
	p := geom.Pt(1, 2)
	require.Equal(t, geom.Pt(4, 6), p.Add(geom.Vec(3, 4)))
	require.Equal(t, geom.Pt(-2, -2), p.Sub(geom.Vec(3, 4)))
	require.Equal(t, geom.Vec(3, 4), geom.Pt(5, 5).Diff(geom.Pt(2, 1)))
	require.Equal(t, geom.Pt(3, 6), p.MulScalar(3))
	require.Equal(t, geom.Pt(2, 3), geom.Pt(4, 6).DivScalar(2))
	require.Equal(t, geom.Pt(7, 2), p.WithX(7))
	require.Equal(t, geom.Pt(1, 7), p.WithY(7))
	require.Equal(t, geom.Pt(-1, 2), p.MapX(func(x int) int { return -x }))
	require.Equal(t, geom.Pt(1, -2), p.MapY(func(y int) int { return -y }))
	require.Equal(t, geom.Pt(2, 4), p.Map(func(c int) int { return c * 2 }))
	require.Equal(t, p, geom.PtFromArray(p.Array()))
	require.Equal(t, geom.Vec(1, 2), p.Vec())
}

func TestPointMidpoint(t *testing.T) {
	require.Equal(t, geom.Pt(1, 2), geom.Pt(0, 0).Midpoint(geom.Pt(3, 5)))
	require.Equal(t, geom.Pt(1.5, 2.5), geom.Pt(0.0, 0.0).Midpoint(geom.Pt(3.0, 5.0)))

	a, b := geom.Pt[int8](120, -120), geom.Pt[int8](100, -100)
	require.Equal(t, geom.Pt[int8](110, -110), a.Midpoint(b))
	require.Equal(t, a.Midpoint(b), b.Midpoint(a))

	u, v := geom.Pt[uint](10, 10), geom.Pt[uint](4, 4)
	require.Equal(t, geom.Pt[uint](7, 7), u.Midpoint(v))
	require.Equal(t, geom.Pt[uint](7, 7), v.Midpoint(u))
}

func TestPConv(t *testing.T) {
	require.Equal(t, geom.Pt(1, -1), geom.PConv[int](geom.Pt(1.2, -1.8)))
	require.Equal(t, geom.Pt[uint16](math.MaxUint16, 0), geom.PConv[uint16](geom.Pt(1e9, -1e9)))
}

func TestSize(t *testing.T) {
	s := geom.Sz(4, 2)
	require.Equal(t, 8, s.Area())
	require.Equal(t, 2, s.AspectRatio())
	require.False(t, s.IsEmpty())
	require.True(t, s.WithHeight(0).IsEmpty())
	require.Equal(t, geom.Sz(9, 2), s.WithWidth(9))
	require.Equal(t, geom.Sz(6, 5), s.Add(geom.Sz(2, 3)))
	require.Equal(t, geom.Sz(2, -1), s.Sub(geom.Sz(2, 3)))
	require.Equal(t, geom.Sz(8, 6), s.Mul(geom.Sz(2, 3)))
	require.Equal(t, geom.Sz(2, 0), s.Div(geom.Sz(2, 3)))
	require.Equal(t, geom.Sz(12, 6), s.MulScalar(3))
	require.Equal(t, geom.Sz(2, 1), s.DivScalar(2))
	require.Equal(t, geom.Sz(3, 3), geom.UniformSize(3))
	require.Equal(t, geom.Vec(4, 2), s.Vec())
	require.Equal(t, geom.Sz(0.5, 0.25), geom.MapSize(s, func(c int) float64 { return float64(c) / 8 }))
	require.Equal(t, geom.Sz[uint8](255, 0), geom.SConv[uint8](geom.Sz(256, -1)))
}

func TestAngle(t *testing.T) {
	require.InDelta(t, math.Pi, geom.Deg(180.0).Radians(), 1e-12)
	require.InDelta(t, 90, geom.Rad(math.Pi/2).Degrees(), 1e-12)
	require.InDelta(t, math.Pi/2, geom.AngleFromXY(0.0, 1.0).Radians(), 1e-12)
	require.InDelta(t, 1.5, geom.Rad(1.0).Add(geom.Rad(0.5)).Radians(), 1e-12)
	require.InDelta(t, 0.5, geom.Rad(1.0).Sub(geom.Rad(0.5)).Radians(), 1e-12)
	require.InDelta(t, 1, geom.Deg(90.0).Sin(), 1e-12)
	require.InDelta(t, -1, geom.Deg(180.0).Cos(), 1e-12)

	require.Equal(t, 1, geom.Deg(90).Radians())
	require.Equal(t, float32(0.25), geom.AConv[float32](geom.Rad(0.25)).Radians())
}

func TestAngleJSON(t *testing.T) {
	data, err := json.Marshal(geom.Rad(1.5))
	require.Nil(t, err)
	require.Equal(t, `{"rad":1.5}`, string(data))

	var a geom.Angle[float64]
	err = json.Unmarshal(data, &a)
	require.Nil(t, err)
	require.Equal(t, geom.Rad(1.5), a)
}
