// Package render draws the scene with stencil shadow volumes in five
// ordered passes over a raster.Target.
package render

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Garsondee/chessjam/internal/mesh"
	"github.com/Garsondee/chessjam/internal/raster"
)

// ErrNilMesh is returned when a submitted command carries no mesh.
var ErrNilMesh = errors.New("render: command without mesh")

// Command is one mesh instance to draw. Mesh is shared and not owned.
type Command struct {
	Mesh  *mesh.Mesh
	Color mgl32.Vec4
	MVP   mgl32.Mat4
}

// Frame holds the per-frame command lists. The renderer owns the backing
// arrays and reuses them across frames.
type Frame struct {
	Opaque     []Command
	Highlight  []Command
	ViewVector mgl32.Vec3
	Sky        color.RGBA
}

// AddOpaque queues a shadow-casting, shadow-receiving mesh.
func (f *Frame) AddOpaque(m *mesh.Mesh, c mgl32.Vec4, mvp mgl32.Mat4) {
	f.Opaque = append(f.Opaque, Command{Mesh: m, Color: c, MVP: mvp})
}

// AddHighlight queues a translucent overlay mesh.
func (f *Frame) AddHighlight(m *mesh.Mesh, c mgl32.Vec4, mvp mgl32.Mat4) {
	f.Highlight = append(f.Highlight, Command{Mesh: m, Color: c, MVP: mvp})
}

// Lapper receives a mark after each pass; the frame timesheet implements it.
type Lapper interface {
	Lap(stage string)
}

// Renderer runs the pass list over a frame.
type Renderer struct {
	Lighting Lighting
	passes   []Pass
	frame    Frame
}

// NewRenderer returns a renderer using the given lighting.
func NewRenderer(l Lighting) *Renderer {
	l.NormalizeDirs()
	return &Renderer{
		Lighting: l,
		passes:   Passes(),
	}
}

// BeginFrame empties the command lists, keeping their capacity, and returns
// the frame to fill.
func (r *Renderer) BeginFrame(view mgl32.Vec3, sky color.RGBA) *Frame {
	r.frame.Opaque = r.frame.Opaque[:0]
	r.frame.Highlight = r.frame.Highlight[:0]
	r.frame.ViewVector = view
	r.frame.Sky = sky
	return &r.frame
}

// Frame returns the frame being built.
func (r *Renderer) Frame() *Frame {
	return &r.frame
}

// Render clears t and runs every pass in order. lap may be nil.
func (r *Renderer) Render(t *raster.Target, lap Lapper) error {
	t.Clear(r.frame.Sky, 1, 0)
	for i := range r.passes {
		if err := r.runPass(t, &r.passes[i]); err != nil {
			return fmt.Errorf("pass %s: %w", r.passes[i].State.Name, err)
		}
		if lap != nil {
			lap.Lap(r.passes[i].State.Name)
		}
	}
	return nil
}

func (r *Renderer) runPass(t *raster.Target, p *Pass) error {
	cmds := r.frame.Opaque
	if p.Source == SourceHighlight {
		cmds = r.frame.Highlight
	}
	for i := range cmds {
		cmd := &cmds[i]
		if cmd.Mesh == nil {
			return ErrNilMesh
		}
		switch p.Geometry {
		case GeometryVolume:
			for _, tri := range cmd.Mesh.Volume {
				v0, v1, v2 := transform(cmd.MVP, tri)
				t.DrawTriangle(&p.State, v0, v1, v2, color.RGBA{})
			}
		case GeometryVisible:
			palette := &r.Lighting.Lit
			if p.Palette == PaletteShadow {
				palette = &r.Lighting.Shadow
			}
			for _, tri := range cmd.Mesh.Triangles {
				c := r.Lighting.Shade(tri.Normal, cmd.Color, palette, p.Specular, r.frame.ViewVector)
				v0, v1, v2 := transform(cmd.MVP, tri)
				t.DrawTriangle(&p.State, v0, v1, v2, c)
			}
		}
	}
	return nil
}

func transform(mvp mgl32.Mat4, tri mesh.Triangle) (mgl32.Vec4, mgl32.Vec4, mgl32.Vec4) {
	return mvp.Mul4x1(tri.V[0].Vec4(1)),
		mvp.Mul4x1(tri.V[1].Vec4(1)),
		mvp.Mul4x1(tri.V[2].Vec4(1))
}
