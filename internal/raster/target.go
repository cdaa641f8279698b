package raster

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
)

// Target is a render target with RGBA colour, float depth in [0,1] and an
// 8-bit stencil plane.
type Target struct {
	Color   *image.RGBA
	Depth   []float32
	Stencil []uint8
	w, h    int
}

// NewTarget allocates a w×h target.
func NewTarget(w, h int) *Target {
	return &Target{
		Color:   image.NewRGBA(image.Rect(0, 0, w, h)),
		Depth:   make([]float32, w*h),
		Stencil: make([]uint8, w*h),
		w:       w,
		h:       h,
	}
}

// Size returns the target dimensions in pixels.
func (t *Target) Size() (int, int) {
	return t.w, t.h
}

// Clear resets every plane.
func (t *Target) Clear(c color.RGBA, depth float32, stencil uint8) {
	pix := t.Color.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i+0] = c.R
		pix[i+1] = c.G
		pix[i+2] = c.B
		pix[i+3] = c.A
	}
	for i := range t.Depth {
		t.Depth[i] = depth
	}
	for i := range t.Stencil {
		t.Stencil[i] = stencil
	}
}

// StencilAt returns the stencil value of pixel (x, y).
func (t *Target) StencilAt(x, y int) uint8 {
	return t.Stencil[y*t.w+x]
}

// DepthAt returns the depth value of pixel (x, y).
func (t *Target) DepthAt(x, y int) float32 {
	return t.Depth[y*t.w+x]
}

// ColorAt returns the colour of pixel (x, y).
func (t *Target) ColorAt(x, y int) color.RGBA {
	return t.Color.RGBAAt(x, y)
}

// Resolve scales the colour plane into dst. A supersampled target is
// filtered down to dst's size; equal sizes copy.
func (t *Target) Resolve(dst *image.RGBA) {
	if dst.Bounds().Size() == t.Color.Bounds().Size() {
		copy(dst.Pix, t.Color.Pix)
		return
	}
	xdraw.BiLinear.Scale(dst, dst.Bounds(), t.Color, t.Color.Bounds(), xdraw.Src, nil)
}
