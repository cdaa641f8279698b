// Package raster is a small software rasterizer with colour, depth and stencil
// planes, driven by immutable per-pass state descriptors.
package raster

// DepthFunc selects the depth comparison applied to each fragment.
type DepthFunc int

const (
	DepthAlways DepthFunc = iota
	DepthLess
	DepthLessEqual
)

func (f DepthFunc) pass(frag, stored float32) bool {
	switch f {
	case DepthLess:
		return frag < stored
	case DepthLessEqual:
		return frag <= stored
	default:
		return true
	}
}

// Cull discards triangles by their on-screen winding (NDC, y up).
type Cull int

const (
	CullNone Cull = iota
	CullClockwise
	CullCounterClockwise
)

// StencilFunc is the stencil comparison against Stencil.Ref.
type StencilFunc int

const (
	StencilAlways StencilFunc = iota
	StencilEqual
)

// StencilOp updates the stencil value of a fragment that passed both the
// stencil and depth tests. Increment and decrement saturate.
type StencilOp int

const (
	StencilKeep StencilOp = iota
	StencilIncrement
	StencilDecrement
)

func (op StencilOp) apply(v uint8) uint8 {
	switch op {
	case StencilIncrement:
		if v < 255 {
			return v + 1
		}
	case StencilDecrement:
		if v > 0 {
			return v - 1
		}
	}
	return v
}

// Stencil configures the stencil test and the per-winding depth-pass ops.
type Stencil struct {
	Func    StencilFunc
	Ref     uint8
	PassCW  StencilOp
	PassCCW StencilOp
}

func (s Stencil) test(v uint8) bool {
	switch s.Func {
	case StencilEqual:
		return v == s.Ref
	default:
		return true
	}
}

// Blend selects how fragment colour combines with the target.
type Blend int

const (
	BlendNone Blend = iota
	BlendAlpha
)

// PassState is the fixed pipeline state for one draw pass.
type PassState struct {
	Name       string
	DepthFunc  DepthFunc
	DepthWrite bool
	ColorWrite bool
	Cull       Cull
	Stencil    Stencil
	Blend      Blend
}
