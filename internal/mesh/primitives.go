package mesh

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Box returns an axis-aligned box spanning min..max.
func Box(min, max mgl32.Vec3) Solid {
	x0, y0, z0 := min.Elem()
	x1, y1, z1 := max.Elem()
	return Solid{
		Positions: []mgl32.Vec3{
			{x0, y0, z0}, // 0
			{x1, y0, z0}, // 1
			{x1, y0, z1}, // 2
			{x0, y0, z1}, // 3
			{x0, y1, z0}, // 4
			{x1, y1, z0}, // 5
			{x1, y1, z1}, // 6
			{x0, y1, z1}, // 7
		},
		Faces: [][3]int{
			{0, 1, 2}, {0, 2, 3}, // bottom (-y)
			{4, 7, 6}, {4, 6, 5}, // top (+y)
			{0, 4, 5}, {0, 5, 1}, // -z
			{3, 2, 6}, {3, 6, 7}, // +z
			{0, 3, 7}, {0, 7, 4}, // -x
			{1, 5, 6}, {1, 6, 2}, // +x
		},
	}
}

// ProfilePoint is one point of a lathe profile: distance from the Y axis and height.
type ProfilePoint struct {
	R float32
	Y float32
}

// Lathe revolves a profile about the Y axis. The profile runs bottom to top;
// its first and last points must sit on the axis (R == 0) and every point in
// between must not.
func Lathe(profile []ProfilePoint, segments int) Solid {
	if len(profile) < 3 || segments < 3 {
		panic("mesh: lathe needs at least 3 profile points and 3 segments")
	}
	rings := profile[1 : len(profile)-1]
	var s Solid

	bottom := 0
	s.Positions = append(s.Positions, mgl32.Vec3{0, profile[0].Y, 0})
	for _, p := range rings {
		if p.R <= 0 {
			panic("mesh: lathe ring on the axis")
		}
		for j := 0; j < segments; j++ {
			theta := 2 * math.Pi * float64(j) / float64(segments)
			s.Positions = append(s.Positions, mgl32.Vec3{
				p.R * float32(math.Cos(theta)),
				p.Y,
				p.R * float32(math.Sin(theta)),
			})
		}
	}
	top := len(s.Positions)
	s.Positions = append(s.Positions, mgl32.Vec3{0, profile[len(profile)-1].Y, 0})

	at := func(ring, j int) int {
		return 1 + ring*segments + j%segments
	}

	for j := 0; j < segments; j++ {
		s.Faces = append(s.Faces, [3]int{bottom, at(0, j), at(0, j+1)})
	}
	for i := 0; i < len(rings)-1; i++ {
		for j := 0; j < segments; j++ {
			s.Faces = append(s.Faces,
				[3]int{at(i, j), at(i+1, j), at(i, j+1)},
				[3]int{at(i+1, j), at(i+1, j+1), at(i, j+1)},
			)
		}
	}
	last := len(rings) - 1
	for j := 0; j < segments; j++ {
		s.Faces = append(s.Faces, [3]int{top, at(last, j+1), at(last, j)})
	}
	return s
}
