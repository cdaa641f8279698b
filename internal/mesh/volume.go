package mesh

import (
	"github.com/go-gl/mathgl/mgl32"
)

type edge struct{ a, b int }

// ShadowVolume extrudes the silhouette of s along lightDir. A silhouette edge
// separates a face lit by the light (n·-L > 0) from one that is not. Only the
// side quads are emitted; the occluder itself closes the near end and the far
// end is pushed extrude units away.
func ShadowVolume(s Solid, lightDir mgl32.Vec3, extrude float32) []Triangle {
	l := lightDir.Normalize()
	toLight := l.Mul(-1)
	offset := l.Mul(extrude)

	lit := make([]bool, len(s.Faces))
	owner := make(map[edge]int, len(s.Faces)*3)
	for i, f := range s.Faces {
		a, b, c := s.Positions[f[0]], s.Positions[f[1]], s.Positions[f[2]]
		n := b.Sub(a).Cross(c.Sub(a))
		lit[i] = n.Dot(toLight) > 0
		for k := 0; k < 3; k++ {
			owner[edge{f[k], f[(k+1)%3]}] = i
		}
	}

	var out []Triangle
	for i, f := range s.Faces {
		if !lit[i] {
			continue
		}
		for k := 0; k < 3; k++ {
			e := edge{f[k], f[(k+1)%3]}
			twin, ok := owner[edge{e.b, e.a}]
			// Open edges also bound the volume.
			if ok && lit[twin] {
				continue
			}
			a, b := s.Positions[e.a], s.Positions[e.b]
			a2, b2 := a.Add(offset), b.Add(offset)
			// Reversing the lit face's edge direction makes the quad face outward.
			out = appendFace(out, b, a, a2)
			out = appendFace(out, b, a2, b2)
		}
	}
	return out
}

func appendFace(out []Triangle, a, b, c mgl32.Vec3) []Triangle {
	n, ok := faceNormal(a, b, c)
	if !ok {
		return out
	}
	return append(out, Triangle{V: [3]mgl32.Vec3{a, b, c}, Normal: n})
}
