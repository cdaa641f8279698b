package render

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Light indices into Lighting.Dirs and Palette.Colors.
const (
	KeyLight = iota
	FillLight
	BackLight
	lightCount
)

// Palette is one set of light colours plus the ambient term.
type Palette struct {
	Colors  [lightCount]mgl32.Vec3
	Ambient mgl32.Vec3
}

// Lighting describes the three directional lights. Dirs are unit vectors in
// the direction the light travels. Lit is used outside shadow, Shadow inside.
type Lighting struct {
	Dirs          [lightCount]mgl32.Vec3
	Lit           Palette
	Shadow        Palette
	SpecularColor mgl32.Vec3
	SpecularPower float32
}

// NormalizeDirs makes every light direction unit length.
func (l *Lighting) NormalizeDirs() {
	for i := range l.Dirs {
		l.Dirs[i] = l.Dirs[i].Normalize()
	}
}

// Shade computes the flat colour of a face with the given normal and albedo.
// Specular uses the key light only.
func (l *Lighting) Shade(normal mgl32.Vec3, albedo mgl32.Vec4, p *Palette, specular bool, view mgl32.Vec3) color.RGBA {
	light := p.Ambient
	for i, d := range l.Dirs {
		if ndl := normal.Dot(d.Mul(-1)); ndl > 0 {
			light = light.Add(p.Colors[i].Mul(ndl))
		}
	}
	rgb := mgl32.Vec3{albedo[0] * light[0], albedo[1] * light[1], albedo[2] * light[2]}

	if specular && l.SpecularPower > 0 {
		toKey := l.Dirs[KeyLight].Mul(-1)
		if normal.Dot(toKey) > 0 {
			half := toKey.Add(view)
			if half.Len() > 1e-6 {
				s := normal.Dot(half.Normalize())
				if s > 0 {
					k := float32(math.Pow(float64(s), float64(l.SpecularPower)))
					rgb = rgb.Add(l.SpecularColor.Mul(k))
				}
			}
		}
	}
	return ToRGBA(rgb.Vec4(albedo[3]))
}

// ToRGBA converts a [0,1] colour to 8-bit channels, clamping out-of-range values.
func ToRGBA(c mgl32.Vec4) color.RGBA {
	return color.RGBA{R: unit8(c[0]), G: unit8(c[1]), B: unit8(c[2]), A: unit8(c[3])}
}

func unit8(f float32) uint8 {
	switch {
	case f <= 0:
		return 0
	case f >= 1:
		return 255
	default:
		return uint8(f*255 + 0.5)
	}
}
