package easel

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Canvas is a persistent offscreen image the scene renders into. It keeps
// its content between frames, so a scene only repaints it when something
// was invalidated.
type Canvas struct {
	image *ebiten.Image
	w, h  int
}

// NewCanvas creates a canvas of the given size.
func NewCanvas(w, h int) *Canvas {
	return &Canvas{
		image: ebiten.NewImage(w, h),
		w:     w,
		h:     h,
	}
}

// Image returns the underlying *ebiten.Image for direct manipulation.
func (c *Canvas) Image() *ebiten.Image {
	return c.image
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.w
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.h
}

// Clear fills the canvas with transparent black.
func (c *Canvas) Clear() {
	c.image.Clear()
}

// Fill fills the entire canvas with the given color.
func (c *Canvas) Fill(col Color) {
	c.image.Fill(col.toRGBA())
}

// DrawTo copies the canvas onto dst at the origin.
func (c *Canvas) DrawTo(dst *ebiten.Image) {
	dst.DrawImage(c.image, nil)
}

// Resize deallocates the old image and creates a new one at the given
// dimensions. The new canvas is empty.
func (c *Canvas) Resize(width, height int) {
	if width == c.w && height == c.h {
		return
	}
	if c.image != nil {
		c.image.Deallocate()
	}
	c.image = ebiten.NewImage(width, height)
	c.w = width
	c.h = height
}

// Dispose deallocates the underlying image. The Canvas should not be
// used after calling Dispose.
func (c *Canvas) Dispose() {
	if c.image != nil {
		c.image.Deallocate()
		c.image = nil
	}
}
