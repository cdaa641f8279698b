package raster

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// screenVert is a vertex after the perspective divide: pixel x/y (y down)
// and NDC z.
type screenVert struct {
	x, y, z float32
}

// DrawTriangle rasterizes one clip-space triangle with a flat colour under the
// given pass state. Geometry in front of the near plane is clipped away.
func (t *Target) DrawTriangle(s *PassState, v0, v1, v2 mgl32.Vec4, c color.RGBA) {
	var buf [clipMax]mgl32.Vec4
	poly := clipNear(buf[:0], v0, v1, v2)
	if len(poly) < 3 {
		return
	}

	var sv [clipMax]screenVert
	var ndc [clipMax][2]float32
	for i, v := range poly {
		inv := 1 / v.W()
		nx, ny := v.X()*inv, v.Y()*inv
		ndc[i] = [2]float32{nx, ny}
		sv[i] = screenVert{
			x: (nx + 1) * 0.5 * float32(t.w),
			y: (1 - ny) * 0.5 * float32(t.h),
			z: v.Z() * inv,
		}
	}

	// Winding is a property of the whole polygon; use its signed area in NDC.
	var area float32
	for i := range poly {
		j := (i + 1) % len(poly)
		area += ndc[i][0]*ndc[j][1] - ndc[j][0]*ndc[i][1]
	}
	if area == 0 {
		return
	}
	ccw := area > 0
	switch s.Cull {
	case CullClockwise:
		if !ccw {
			return
		}
	case CullCounterClockwise:
		if ccw {
			return
		}
	}
	op := s.Stencil.PassCW
	if ccw {
		op = s.Stencil.PassCCW
	}

	for i := 1; i+1 < len(poly); i++ {
		t.fill(s, op, sv[0], sv[i], sv[i+1], c)
	}
}

// Screen positions are snapped to 1/256 pixel so edge functions are exact:
// an edge evaluated in either direction gives exactly opposite values.
const (
	subBits  = 8
	subScale = 1 << subBits
	subHalf  = subScale / 2
	// guardBand clamps far off-screen vertices so edge products fit in int64.
	guardBand = 1 << 20
)

func snap(f float32) int64 {
	if math.IsNaN(float64(f)) {
		return 0
	}
	f = max(min(f, guardBand), -guardBand)
	return int64(math.Round(float64(f) * subScale))
}

// edgeIncludesZero decides ownership of pixels exactly on an edge. The two
// triangles sharing an edge traverse it in opposite directions, so exactly
// one of them owns it.
func edgeIncludesZero(dx, dy int64) bool {
	return dy > 0 || (dy == 0 && dx < 0)
}

type fixedVert struct {
	x, y int64
	z    float32
}

func (t *Target) fill(s *PassState, op StencilOp, sa, sb, sc screenVert, col color.RGBA) {
	a := fixedVert{snap(sa.x), snap(sa.y), sa.z}
	b := fixedVert{snap(sb.x), snap(sb.y), sb.z}
	c := fixedVert{snap(sc.x), snap(sc.y), sc.z}

	// Rasterize with positive area in pixel space (y down).
	area := (b.x-a.x)*(c.y-a.y) - (b.y-a.y)*(c.x-a.x)
	if area == 0 {
		return
	}
	if area < 0 {
		b, c = c, b
		area = -area
	}

	minX := int(min(a.x, b.x, c.x) >> subBits)
	maxX := int(max(a.x, b.x, c.x) >> subBits)
	minY := int(min(a.y, b.y, c.y) >> subBits)
	maxY := int(max(a.y, b.y, c.y) >> subBits)
	minX = max(minX, 0)
	minY = max(minY, 0)
	maxX = min(maxX, t.w-1)
	maxY = min(maxY, t.h-1)
	if minX > maxX || minY > maxY {
		return
	}

	// Edge e0 is opposite a, e1 opposite b, e2 opposite c.
	e0dx, e0dy := c.x-b.x, c.y-b.y
	e1dx, e1dy := a.x-c.x, a.y-c.y
	e2dx, e2dy := b.x-a.x, b.y-a.y
	inc0 := edgeIncludesZero(e0dx, e0dy)
	inc1 := edgeIncludesZero(e1dx, e1dy)
	inc2 := edgeIncludesZero(e2dx, e2dy)
	invArea := 1 / float32(area)

	alpha := float32(col.A) / 255

	for py := minY; py <= maxY; py++ {
		fy := int64(py)<<subBits + subHalf
		row := py * t.w
		for px := minX; px <= maxX; px++ {
			fx := int64(px)<<subBits + subHalf
			w0 := e0dx*(fy-b.y) - e0dy*(fx-b.x)
			w1 := e1dx*(fy-c.y) - e1dy*(fx-c.x)
			w2 := e2dx*(fy-a.y) - e2dy*(fx-a.x)
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}
			if (w0 == 0 && !inc0) || (w1 == 0 && !inc1) || (w2 == 0 && !inc2) {
				continue
			}

			z := (float32(w0)*a.z + float32(w1)*b.z + float32(w2)*c.z) * invArea
			if z < -1 || z > 1 {
				continue
			}
			depth := z*0.5 + 0.5
			i := row + px

			if !s.Stencil.test(t.Stencil[i]) {
				continue
			}
			if !s.DepthFunc.pass(depth, t.Depth[i]) {
				continue
			}
			t.Stencil[i] = op.apply(t.Stencil[i])
			if s.DepthWrite {
				t.Depth[i] = depth
			}
			if !s.ColorWrite {
				continue
			}
			p := t.Color.Pix[i*4 : i*4+4 : i*4+4]
			switch s.Blend {
			case BlendAlpha:
				p[0] = blend(col.R, p[0], alpha)
				p[1] = blend(col.G, p[1], alpha)
				p[2] = blend(col.B, p[2], alpha)
			default:
				p[0], p[1], p[2], p[3] = col.R, col.G, col.B, col.A
			}
		}
	}
}

func blend(src, dst uint8, a float32) uint8 {
	return uint8(float32(src)*a + float32(dst)*(1-a) + 0.5)
}
