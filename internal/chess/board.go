package chess

import (
	"errors"
	"fmt"
	"slices"
)

// ErrUnknownPiece is returned when a piece ID is not on the board.
var ErrUnknownPiece = errors.New("chess: unknown piece")

// Board is the dense, ordered list of pieces plus the side to move.
// At most one piece occupies any cell.
type Board struct {
	Pieces []Piece
	Turn   Color

	nextID PieceID
}

// NewBoard returns an empty board with white to move.
func NewBoard() *Board {
	return &Board{Turn: White}
}

// NewStandardBoard returns the standard starting arrangement, white to move.
func NewStandardBoard() *Board {
	b := NewBoard()
	for x := 0; x < BoardSize; x++ {
		b.Add(White, Pawn, Cell{X: x, Y: 1})
		b.Add(Black, Pawn, Cell{X: x, Y: 6})
	}
	back := []struct {
		kind  Kind
		files []int
	}{
		{King, []int{4}},
		{Queen, []int{3}},
		{Bishop, []int{2, 5}},
		{Knight, []int{1, 6}},
		{Rook, []int{0, 7}},
	}
	for _, row := range back {
		for _, c := range []Color{White, Black} {
			y := 0
			if c == Black {
				y = 7
			}
			for _, x := range row.files {
				b.Add(c, row.kind, Cell{X: x, Y: y})
			}
		}
	}
	return b
}

// Add places a new piece and returns its ID. The caller keeps cells unique.
func (b *Board) Add(c Color, k Kind, at Cell) PieceID {
	id := b.nextID
	b.nextID++
	b.Pieces = append(b.Pieces, Piece{ID: id, Position: at, Color: c, Kind: k})
	return id
}

// PieceAt returns the index of the piece occupying cell, if any.
func (b *Board) PieceAt(cell Cell) (int, bool) {
	for i := range b.Pieces {
		if b.Pieces[i].Position == cell {
			return i, true
		}
	}
	return -1, false
}

// Piece looks up a piece by ID.
func (b *Board) Piece(id PieceID) (Piece, bool) {
	for _, p := range b.Pieces {
		if p.ID == id {
			return p, true
		}
	}
	return Piece{}, false
}

// Remove deletes a piece by ID, preserving the order of the rest.
func (b *Board) Remove(id PieceID) error {
	n := len(b.Pieces)
	b.Pieces = slices.DeleteFunc(b.Pieces, func(p Piece) bool { return p.ID == id })
	if len(b.Pieces) == n {
		return fmt.Errorf("remove %d: %w", id, ErrUnknownPiece)
	}
	return nil
}

// MovePiece sets the position of a piece.
func (b *Board) MovePiece(id PieceID, to Cell) error {
	for i := range b.Pieces {
		if b.Pieces[i].ID == id {
			b.Pieces[i].Position = to
			return nil
		}
	}
	return fmt.Errorf("move %d: %w", id, ErrUnknownPiece)
}

// ToggleTurn hands the move to the other side.
func (b *Board) ToggleTurn() {
	b.Turn = b.Turn.Other()
}

// CheckOccupancy verifies that no two pieces share a cell.
func (b *Board) CheckOccupancy() error {
	seen := make(map[Cell]PieceID, len(b.Pieces))
	for _, p := range b.Pieces {
		if other, ok := seen[p.Position]; ok {
			return fmt.Errorf("pieces %d and %d share %s", other, p.ID, p.Position)
		}
		seen[p.Position] = p.ID
	}
	return nil
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	return &Board{
		Pieces: slices.Clone(b.Pieces),
		Turn:   b.Turn,
		nextID: b.nextID,
	}
}
