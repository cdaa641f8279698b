package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Garsondee/chessjam/internal/chess"
)

// CursorToNDC maps a cursor position in pixels of a w×h viewport to
// normalized device coordinates in [-1,1], y up.
func CursorToNDC(px, py float32, w, h int) (float32, float32) {
	mx := (px/float32(w) - 0.5) * 2
	my := (py/float32(h) - 0.5) * -2
	return mx, my
}

// Ray returns the direction from the camera through the NDC point, scaled so
// its forward component reaches the near plane.
func (c Camera) Ray(mx, my float32) mgl32.Vec3 {
	forward, right, up := c.Basis()
	halfH := float32(math.Tan(float64(c.FOV)/2)) * NearPlane
	halfW := halfH * TargetAspect
	return right.Mul(mx * halfW).Add(up.Mul(my * halfH)).Add(forward.Mul(NearPlane))
}

// PickTile intersects the cursor ray with the y=0 plane and returns the cell
// under it. A ray parallel to the plane yields a meaningless cell, which
// simply matches no piece.
func PickTile(c Camera, mx, my float32) chess.Cell {
	pos := c.Position()
	ray := c.Ray(mx, my)
	t := -pos.Y() / ray.Y()
	hit := pos.Add(ray.Mul(t))
	return WorldToGrid(hit)
}

// ProjectToNDC maps a world point through the camera to NDC x/y. ok is false
// for points behind the camera.
func (c Camera) ProjectToNDC(p mgl32.Vec3) (x, y float32, ok bool) {
	clip := c.ViewProjection().Mul4x1(p.Vec4(1))
	if clip.W() <= 0 {
		return 0, 0, false
	}
	return clip.X() / clip.W(), clip.Y() / clip.W(), true
}
