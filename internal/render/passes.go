package render

import "github.com/Garsondee/chessjam/internal/raster"

// Geometry selects which triangles of a mesh a pass draws.
type Geometry int

const (
	GeometryVisible Geometry = iota
	GeometryVolume
)

// Source selects which command list a pass draws.
type Source int

const (
	SourceOpaque Source = iota
	SourceHighlight
)

// PaletteKind selects the light colours used for shading.
type PaletteKind int

const (
	PaletteLit PaletteKind = iota
	PaletteShadow
)

// Pass pairs fixed pipeline state with what it draws.
type Pass struct {
	State    raster.PassState
	Source   Source
	Geometry Geometry
	Palette  PaletteKind
	Specular bool
}

// Passes returns the ordered pass list:
//
//  1. everything as if in shadow, filling depth
//  2. volume front faces increment stencil
//  3. volume back faces decrement stencil
//  4. lit colour where stencil is zero
//  5. translucent highlights
func Passes() []Pass {
	return []Pass{
		{
			State: raster.PassState{
				Name:       "dark-pass",
				DepthFunc:  raster.DepthLess,
				DepthWrite: true,
				ColorWrite: true,
				Cull:       raster.CullClockwise,
			},
			Source:   SourceOpaque,
			Geometry: GeometryVisible,
			Palette:  PaletteShadow,
		},
		{
			State: raster.PassState{
				Name:      "shadow-front-pass",
				DepthFunc: raster.DepthLess,
				Cull:      raster.CullCounterClockwise,
				Stencil:   raster.Stencil{PassCW: raster.StencilIncrement},
			},
			Source:   SourceOpaque,
			Geometry: GeometryVolume,
		},
		{
			State: raster.PassState{
				Name:      "shadow-back-pass",
				DepthFunc: raster.DepthLess,
				Cull:      raster.CullClockwise,
				Stencil:   raster.Stencil{PassCCW: raster.StencilDecrement},
			},
			Source:   SourceOpaque,
			Geometry: GeometryVolume,
		},
		{
			State: raster.PassState{
				Name:       "light-pass",
				DepthFunc:  raster.DepthLessEqual,
				ColorWrite: true,
				Cull:       raster.CullClockwise,
				Stencil:    raster.Stencil{Func: raster.StencilEqual, Ref: 0},
			},
			Source:   SourceOpaque,
			Geometry: GeometryVisible,
			Palette:  PaletteLit,
			Specular: true,
		},
		{
			State: raster.PassState{
				Name:       "highlight-pass",
				DepthFunc:  raster.DepthLess,
				ColorWrite: true,
				Cull:       raster.CullClockwise,
				Blend:      raster.BlendAlpha,
			},
			Source:   SourceHighlight,
			Geometry: GeometryVisible,
			Palette:  PaletteLit,
		},
	}
}
