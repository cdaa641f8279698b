package mesh

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Garsondee/chessjam/internal/chess"
)

const latheSegments = 16

// Tile dimensions. The top face sits on the y=0 board plane.
const (
	TileSize  float32 = 1.0
	TileDepth float32 = 0.2
)

// Library holds every mesh the scene draws. It is built once and read-only after.
type Library struct {
	Tile   *Mesh
	pieces [len(chess.Kinds)]*Mesh
}

// NewLibrary builds the tile and piece meshes with shadow volumes for the
// given key light. Tiles do not cast volumes: their silhouettes extrude below
// the board, where nothing is visible.
func NewLibrary(lightDir mgl32.Vec3, extrude float32) *Library {
	lib := &Library{}
	h := TileSize / 2
	lib.Tile = Build("tile", lightDir, 0, Box(mgl32.Vec3{-h, -TileDepth, -h}, mgl32.Vec3{h, 0, h}))
	for _, k := range chess.Kinds {
		lib.pieces[k] = Build(k.String(), lightDir, extrude, pieceSolids(k)...)
	}
	return lib
}

// Piece returns the shared mesh for a piece kind.
func (l *Library) Piece(k chess.Kind) *Mesh {
	return l.pieces[k]
}

func pieceSolids(k chess.Kind) []Solid {
	switch k {
	case chess.Pawn:
		return []Solid{Lathe([]ProfilePoint{
			{0, 0}, {0.28, 0}, {0.28, 0.08}, {0.2, 0.14}, {0.12, 0.36},
			{0.17, 0.42}, {0.1, 0.46}, {0.16, 0.54}, {0.14, 0.66}, {0, 0.7},
		}, latheSegments)}
	case chess.Rook:
		return []Solid{Lathe([]ProfilePoint{
			{0, 0}, {0.32, 0}, {0.32, 0.1}, {0.23, 0.18}, {0.2, 0.62},
			{0.29, 0.68}, {0.29, 0.88}, {0, 0.88},
		}, latheSegments)}
	case chess.Bishop:
		return []Solid{Lathe([]ProfilePoint{
			{0, 0}, {0.3, 0}, {0.3, 0.09}, {0.21, 0.16}, {0.12, 0.58},
			{0.2, 0.64}, {0.12, 0.68}, {0.18, 0.8}, {0.14, 0.94}, {0.05, 1.02},
			{0.06, 1.06}, {0, 1.1},
		}, latheSegments)}
	case chess.Queen:
		return []Solid{Lathe([]ProfilePoint{
			{0, 0}, {0.33, 0}, {0.33, 0.1}, {0.23, 0.18}, {0.13, 0.74},
			{0.22, 0.8}, {0.14, 0.86}, {0.25, 1.1}, {0.12, 1.14}, {0.07, 1.22},
			{0, 1.26},
		}, latheSegments)}
	case chess.King:
		return []Solid{
			Lathe([]ProfilePoint{
				{0, 0}, {0.34, 0}, {0.34, 0.1}, {0.24, 0.18}, {0.14, 0.8},
				{0.23, 0.86}, {0.15, 0.92}, {0.22, 1.14}, {0, 1.16},
			}, latheSegments),
			Box(mgl32.Vec3{-0.04, 1.16, -0.04}, mgl32.Vec3{0.04, 1.46, 0.04}),
			Box(mgl32.Vec3{-0.13, 1.28, -0.04}, mgl32.Vec3{0.13, 1.36, 0.04}),
		}
	case chess.Knight:
		return []Solid{
			Lathe([]ProfilePoint{
				{0, 0}, {0.3, 0}, {0.3, 0.09}, {0.22, 0.16}, {0.2, 0.3}, {0, 0.3},
			}, latheSegments),
			Box(mgl32.Vec3{-0.11, 0.3, -0.2}, mgl32.Vec3{0.11, 0.82, 0.12}),
			Box(mgl32.Vec3{-0.1, 0.56, 0.12}, mgl32.Vec3{0.1, 0.8, 0.36}),
		}
	default:
		panic(fmt.Sprintf("mesh: no mesh for piece kind %d", int(k)))
	}
}
