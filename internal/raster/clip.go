package raster

import "github.com/go-gl/mathgl/mgl32"

// clipMax bounds the vertex count of a triangle clipped by one plane.
const clipMax = 4

// clipNear clips a clip-space triangle against the near plane (z >= -w),
// appending the resulting convex polygon to dst.
func clipNear(dst []mgl32.Vec4, v0, v1, v2 mgl32.Vec4) []mgl32.Vec4 {
	in := [3]mgl32.Vec4{v0, v1, v2}
	for i := 0; i < 3; i++ {
		cur := in[i]
		next := in[(i+1)%3]
		dc := cur.Z() + cur.W()
		dn := next.Z() + next.W()
		if dc >= 0 {
			dst = append(dst, cur)
		}
		if (dc >= 0) != (dn >= 0) {
			t := dc / (dc - dn)
			dst = append(dst, cur.Add(next.Sub(cur).Mul(t)))
		}
	}
	return dst
}
