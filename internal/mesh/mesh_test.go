package mesh

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Garsondee/chessjam/internal/chess"
)

var down = mgl32.Vec3{0, -1, 0}

// signedVolume is positive when faces are wound outward.
func signedVolume(s Solid) float32 {
	var v float32
	for _, f := range s.Faces {
		a, b, c := s.Positions[f[0]], s.Positions[f[1]], s.Positions[f[2]]
		v += a.Dot(b.Cross(c)) / 6
	}
	return v
}

func checkClosed(t *testing.T, name string, s Solid) {
	t.Helper()
	directed := map[edge]int{}
	for _, f := range s.Faces {
		for k := 0; k < 3; k++ {
			directed[edge{f[k], f[(k+1)%3]}]++
		}
	}
	for e, n := range directed {
		if n != 1 {
			t.Fatalf("%s: edge %v used %d times in the same direction", name, e, n)
		}
		if directed[edge{e.b, e.a}] != 1 {
			t.Fatalf("%s: edge %v has no twin", name, e)
		}
	}
}

func TestBoxClosedAndOutward(t *testing.T) {
	b := Box(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 2, 3})
	checkClosed(t, "box", b)
	if v := signedVolume(b); v < 5.99 || v > 6.01 {
		t.Fatalf("box signed volume = %v, want 6", v)
	}
}

func TestPieceSolidsClosedAndOutward(t *testing.T) {
	for _, k := range chess.Kinds {
		for i, s := range pieceSolids(k) {
			checkClosed(t, k.String(), s)
			if v := signedVolume(s); v <= 0 {
				t.Fatalf("%s part %d: signed volume %v, faces wound inward", k, i, v)
			}
		}
	}
}

func TestBuildStoresScreenWinding(t *testing.T) {
	m := Build("box", down, 0, Box(mgl32.Vec3{-1, -1, -1}, mgl32.Vec3{1, 1, 1}))
	if len(m.Triangles) != 12 {
		t.Fatalf("expected 12 triangles, got %d", len(m.Triangles))
	}
	if len(m.Volume) != 0 {
		t.Fatalf("extrude 0 should build no volume")
	}
	for _, tri := range m.Triangles {
		c := tri.V[1].Sub(tri.V[0]).Cross(tri.V[2].Sub(tri.V[0])).Normalize()
		if c.Dot(tri.Normal) > -0.99 {
			t.Fatalf("triangle %v not reversed against its normal %v", tri.V, tri.Normal)
		}
		centre := tri.V[0].Add(tri.V[1]).Add(tri.V[2]).Mul(1.0 / 3)
		if centre.Dot(tri.Normal) <= 0 {
			t.Fatalf("normal %v points inward", tri.Normal)
		}
	}
}

func TestShadowVolumeOfBoxLitFromAbove(t *testing.T) {
	b := Box(mgl32.Vec3{-0.5, 1, -0.5}, mgl32.Vec3{0.5, 2, 0.5})
	vol := ShadowVolume(b, down, 10)
	// Four top edges, two triangles each.
	if len(vol) != 8 {
		t.Fatalf("expected 8 volume triangles, got %d", len(vol))
	}
	for _, tri := range vol {
		if tri.Normal.Y() > 1e-5 || tri.Normal.Y() < -1e-5 {
			t.Fatalf("side quad normal %v should be horizontal", tri.Normal)
		}
		centre := tri.V[0].Add(tri.V[1]).Add(tri.V[2]).Mul(1.0 / 3)
		horiz := mgl32.Vec3{centre.X(), 0, centre.Z()}
		if horiz.Dot(tri.Normal) <= 0 {
			t.Fatalf("side quad normal %v points into the volume", tri.Normal)
		}
		c := tri.V[1].Sub(tri.V[0]).Cross(tri.V[2].Sub(tri.V[0]))
		if c.Dot(tri.Normal) <= 0 {
			t.Fatalf("volume triangle not wound along its normal")
		}
		for _, v := range tri.V {
			if v.Y() > 2+1e-5 || v.Y() < 2-10-1e-5 {
				t.Fatalf("volume vertex %v outside the extruded span", v)
			}
		}
	}
}

func TestShadowVolumeSlantedLight(t *testing.T) {
	b := Box(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 1, 1})
	vol := ShadowVolume(b, mgl32.Vec3{1, -1, 0}, 5)
	// Lit faces: top and -x. The silhouette is the loop around them: six edges.
	if len(vol) != 12 {
		t.Fatalf("expected 12 volume triangles, got %d", len(vol))
	}
}

func TestLibraryMeshes(t *testing.T) {
	lib := NewLibrary(mgl32.Vec3{0.3, -1, 0.2}, 4)
	if lib.Tile == nil || len(lib.Tile.Triangles) != 12 || len(lib.Tile.Volume) != 0 {
		t.Fatalf("unexpected tile mesh: %+v", lib.Tile)
	}
	for _, k := range chess.Kinds {
		m := lib.Piece(k)
		if m == nil || len(m.Triangles) == 0 {
			t.Fatalf("%s: empty mesh", k)
		}
		if len(m.Volume) == 0 {
			t.Fatalf("%s: no shadow volume", k)
		}
		if len(m.Volume)%2 != 0 {
			t.Fatalf("%s: volume is not made of quads", k)
		}
	}
}
