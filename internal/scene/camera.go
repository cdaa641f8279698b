package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Fixed projection parameters. The picker assumes the same aspect, so the
// presentation layer letterboxes to it.
const (
	TargetAspect float32 = 16.0 / 9.0
	NearPlane    float32 = 0.1
	FarPlane     float32 = 100.0
)

// Camera orbits the board centre. Angle and Tilt are in degrees, FOV is in
// radians of vertical field of view.
type Camera struct {
	Angle    float32
	Tilt     float32
	Distance float32
	FOV      float32
}

// NewCamera builds a camera from configured values. fovTurns is the field of
// view as a fraction of a full turn.
func NewCamera(angle, tilt, distance, fovTurns float32) Camera {
	return Camera{
		Angle:    angle,
		Tilt:     tilt,
		Distance: distance,
		FOV:      2 * math.Pi * fovTurns,
	}
}

// Orbit accumulates a scroll or drag delta scaled by elapsed seconds. The
// result is not clamped.
func (c *Camera) Orbit(dx, dy, dt float32) {
	c.Angle += dx * dt
	c.Tilt += dy * dt
}

// Orientation is yaw about +Y followed by pitch about +X.
func (c Camera) Orientation() mgl32.Mat4 {
	yaw := mgl32.HomogRotate3DY(mgl32.DegToRad(c.Angle))
	pitch := mgl32.HomogRotate3DX(mgl32.DegToRad(c.Tilt))
	return yaw.Mul4(pitch)
}

// Direction is the unit vector the camera looks along.
func (c Camera) Direction() mgl32.Vec3 {
	return c.Orientation().Mul4x1(mgl32.Vec4{0, 0, 1, 0}).Vec3().Normalize()
}

// Position places the camera Distance units back from the origin along Direction.
func (c Camera) Position() mgl32.Vec3 {
	return c.Direction().Mul(-c.Distance)
}

// View maps world space into a left-handed view space (x right, y up, z forward).
func (c Camera) View() mgl32.Mat4 {
	return c.Orientation().Transpose().Mul4(mgl32.Translate3D(c.Position().Mul(-1).Elem()))
}

// Projection is a left-handed perspective projection with the fixed aspect
// and near/far planes.
func (c Camera) Projection() mgl32.Mat4 {
	return mgl32.Perspective(c.FOV, TargetAspect, NearPlane, FarPlane).Mul4(mgl32.Scale3D(1, 1, -1))
}

// ViewProjection is Projection * View.
func (c Camera) ViewProjection() mgl32.Mat4 {
	return c.Projection().Mul4(c.View())
}

// Basis returns the camera's forward, right and up unit vectors in world space.
func (c Camera) Basis() (forward, right, up mgl32.Vec3) {
	forward = c.Direction()
	right = mgl32.Vec3{0, 1, 0}.Cross(forward).Normalize()
	up = forward.Cross(right)
	return forward, right, up
}

// ViewVector points from the scene toward the camera; used for specular.
func (c Camera) ViewVector() mgl32.Vec3 {
	return c.Direction().Mul(-1)
}
