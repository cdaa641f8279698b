// Package mesh builds the procedural board and piece meshes together with
// their shadow-volume geometry.
//
// Winding: a Solid's faces are ordered so cross(v1-v0, v2-v0) points out of
// the solid. The renderer works in a left-handed view space, where such a
// face facing the camera appears clockwise on screen. Mesh.Triangles are
// therefore stored reversed (front faces counter-clockwise on screen) and
// Mesh.Volume keeps the solid order (near volume faces clockwise on screen).
package mesh

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Triangle is a flat-shaded triangle with its outward unit normal.
type Triangle struct {
	V      [3]mgl32.Vec3
	Normal mgl32.Vec3
}

// Mesh is immutable after Build and shared by every render command that uses it.
type Mesh struct {
	Name      string
	Triangles []Triangle
	Volume    []Triangle
}

// Solid is a closed, welded triangle mesh. Edges are shared by index, which
// the silhouette search relies on.
type Solid struct {
	Positions []mgl32.Vec3
	Faces     [][3]int
}

// Translate returns a copy of s moved by d.
func (s Solid) Translate(d mgl32.Vec3) Solid {
	out := Solid{
		Positions: make([]mgl32.Vec3, len(s.Positions)),
		Faces:     s.Faces,
	}
	for i, p := range s.Positions {
		out.Positions[i] = p.Add(d)
	}
	return out
}

// Build assembles a mesh from closed solids. lightDir is the direction the
// shadow-casting light travels. extrude <= 0 builds no volume.
func Build(name string, lightDir mgl32.Vec3, extrude float32, solids ...Solid) *Mesh {
	m := &Mesh{Name: name}
	for _, s := range solids {
		for _, f := range s.Faces {
			a, b, c := s.Positions[f[0]], s.Positions[f[1]], s.Positions[f[2]]
			n, ok := faceNormal(a, b, c)
			if !ok {
				continue
			}
			m.Triangles = append(m.Triangles, Triangle{V: [3]mgl32.Vec3{a, c, b}, Normal: n})
		}
		if extrude > 0 {
			m.Volume = append(m.Volume, ShadowVolume(s, lightDir, extrude)...)
		}
	}
	return m
}

// faceNormal returns the unit normal of an outward-wound face; ok is false
// for degenerate faces.
func faceNormal(a, b, c mgl32.Vec3) (mgl32.Vec3, bool) {
	n := b.Sub(a).Cross(c.Sub(a))
	l := n.Len()
	if l < 1e-9 {
		return mgl32.Vec3{}, false
	}
	return n.Mul(1 / l), true
}
