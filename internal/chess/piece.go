package chess

import "fmt"

// Color is the side a piece belongs to.
type Color int

const (
	Black Color = iota
	White
)

// Other returns the opposing side.
func (c Color) Other() Color {
	switch c {
	case Black:
		return White
	case White:
		return Black
	default:
		panic(fmt.Sprintf("chess: invalid color %d", int(c)))
	}
}

func (c Color) String() string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return "unknown"
	}
}

// Kind is the type of a chess piece.
type Kind int

const (
	Pawn Kind = iota
	Knight
	Rook
	Bishop
	Queen
	King
)

// Kinds lists every piece kind, in declaration order.
var Kinds = [...]Kind{Pawn, Knight, Rook, Bishop, Queen, King}

func (k Kind) String() string {
	switch k {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Rook:
		return "rook"
	case Bishop:
		return "bishop"
	case Queen:
		return "queen"
	case King:
		return "king"
	default:
		return "unknown"
	}
}

// Letter returns the record letter for a piece: uppercase for white, lowercase for black.
func Letter(c Color, k Kind) byte {
	var l byte
	switch k {
	case Pawn:
		l = 'p'
	case Knight:
		l = 'n'
	case Rook:
		l = 'r'
	case Bishop:
		l = 'b'
	case Queen:
		l = 'q'
	case King:
		l = 'k'
	default:
		panic(fmt.Sprintf("chess: invalid kind %d", int(k)))
	}
	if c == White {
		l -= 'a' - 'A'
	}
	return l
}

// --- Cells ---

// BoardSize is the number of files and ranks.
const BoardSize = 8

// Cell is a board coordinate: X is the file (0 = a), Y the rank (0 = rank 1).
// Cells outside 0..7 are representable; they are simply never occupied.
type Cell struct {
	X int
	Y int
}

// InBounds reports whether c lies on the board.
func (c Cell) InBounds() bool {
	return c.X >= 0 && c.X < BoardSize && c.Y >= 0 && c.Y < BoardSize
}

// Index returns the linear square index rank*8+file.
func (c Cell) Index() int {
	return c.Y*BoardSize + c.X
}

// CellFromIndex is the inverse of Cell.Index.
func CellFromIndex(i int) Cell {
	return Cell{X: i % BoardSize, Y: i / BoardSize}
}

// String formats the cell in algebraic form (e.g. "e4"); off-board cells use brackets.
func (c Cell) String() string {
	if !c.InBounds() {
		return fmt.Sprintf("(%d,%d)", c.X, c.Y)
	}
	return fmt.Sprintf("%c%d", 'a'+c.X, c.Y+1)
}

// ParseCell parses an algebraic square such as "e2".
func ParseCell(s string) (Cell, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return Cell{}, fmt.Errorf("invalid square %q", s)
	}
	return Cell{X: int(s[0] - 'a'), Y: int(s[1] - '1')}, nil
}

// --- Pieces ---

// PieceID is a stable handle for a piece. IDs are never reused within a board.
type PieceID int

// Piece is one piece on the board.
type Piece struct {
	ID       PieceID
	Position Cell
	Color    Color
	Kind     Kind
}

func (p Piece) String() string {
	return fmt.Sprintf("%s %s@%s", p.Color, p.Kind, p.Position)
}
