package geom

// Size is a width and a height. Sizes are expected to be non-negative,
// but nothing enforces it.
type Size[T Scalar] struct {
	Width  T `json:"width"`
	Height T `json:"height"`
}

// Sz is shorthand for Size[T]{Width: w, Height: h}.
func Sz[T Scalar](w, h T) Size[T] {
	return Size[T]{Width: w, Height: h}
}

func UniformSize[T Scalar](d T) Size[T] {
	return Sz(d, d)
}

// MapSize returns a new size with f applied to the width and height of
// s.
func MapSize[U, T Scalar](s Size[T], f func(T) U) Size[U] {
	return Size[U]{Width: f(s.Width), Height: f(s.Height)}
}

// SConv converts s to a size of a different scalar type using [Cast].
func SConv[Out, In Scalar](s Size[In]) Size[Out] {
	return MapSize(s, Cast[Out, In])
}

func (s Size[T]) WithWidth(w T) Size[T] {
	s.Width = w
	return s
}

func (s Size[T]) WithHeight(h T) Size[T] {
	s.Height = h
	return s
}

func (s Size[T]) Map(f func(T) T) Size[T] {
	return MapSize(s, f)
}

// AspectRatio returns the width divided by the height. The caller must
// make sure that the height is not zero.
func (s Size[T]) AspectRatio() T {
	return s.Width / s.Height
}

func (s Size[T]) Area() T {
	return s.Width * s.Height
}

// IsEmpty reports whether either dimension is zero.
func (s Size[T]) IsEmpty() bool {
	return s.Width == 0 || s.Height == 0
}

func (s Size[T]) Vec() Vector[T] {
	return Vec(s.Width, s.Height)
}

func (s Size[T]) Add(o Size[T]) Size[T] {
	return s.Vec().Add(o.Vec()).Size()
}

func (s Size[T]) Sub(o Size[T]) Size[T] {
	return s.Vec().Sub(o.Vec()).Size()
}

// Mul multiplies the dimensions of s and o together.
func (s Size[T]) Mul(o Size[T]) Size[T] {
	return s.Vec().Mul(o.Vec()).Size()
}

func (s Size[T]) Div(o Size[T]) Size[T] {
	return s.Vec().Div(o.Vec()).Size()
}

// MulScalar scales both dimensions of s by k.
func (s Size[T]) MulScalar(k T) Size[T] {
	return s.Vec().MulScalar(k).Size()
}

func (s Size[T]) DivScalar(k T) Size[T] {
	return s.Vec().DivScalar(k).Size()
}
