package easel

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Shape is a solid-colour rectangle filling the node's bounds. Its transform
// scales, rotates and skews the rectangle around the transform's pivot.
type Shape struct {
	Node

	color Color
	op    ebiten.DrawImageOptions
}

// NewShape creates a shape with the given fill colour and an empty rectangle.
func NewShape(name string, c Color) *Shape {
	s := &Shape{color: c}
	s.Init(s, name)
	return s
}

// Color returns the fill colour.
func (s *Shape) Color() Color {
	return s.color
}

// SetColor sets the fill colour and invalidates the shape unless it is
// currently drawing.
func (s *Shape) SetColor(c Color) {
	if s.color == c {
		return
	}
	s.color = c
	if !s.IsDrawing() {
		s.Invalidate()
	}
}

// OnDraw fills the shape's global bounds on surface.
func (s *Shape) OnDraw(surface *ebiten.Image) {
	if surface == nil || s.Width() <= 0 || s.Height() <= 0 {
		return
	}
	s.op.GeoM = geoMFromMatrix(s.paintMatrix())
	s.op.ColorScale.Reset()
	a := float32(s.color.A)
	s.op.ColorScale.Scale(float32(s.color.R)*a, float32(s.color.G)*a, float32(s.color.B)*a, a)
	surface.DrawImage(whitePixel, &s.op)
}

// paintMatrix maps the unit square onto the shape's rectangle in root space.
func (s *Shape) paintMatrix() [6]float64 {
	origin := s.Bounds().Origin()
	m := multiplyAffine([6]float64{1, 0, 0, 1, origin.X, origin.Y}, s.Transform().Matrix())
	return multiplyAffine(m, [6]float64{s.Width(), 0, 0, s.Height(), 0, 0})
}
