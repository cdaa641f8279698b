package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Garsondee/chessjam/internal/chess"
)

// GridToWorld returns the centre of a cell on the y=0 board plane. The board
// spans [-4,4] in x and z.
func GridToWorld(c chess.Cell) mgl32.Vec3 {
	return mgl32.Vec3{float32(c.X) - 3.5, 0, float32(c.Y) - 3.5}
}

// WorldToGrid returns the cell containing p (y is ignored).
func WorldToGrid(p mgl32.Vec3) chess.Cell {
	return chess.Cell{
		X: int(math.Floor(float64(p.X()) + 4)),
		Y: int(math.Floor(float64(p.Z()) + 4)),
	}
}
