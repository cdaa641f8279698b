package chess

import (
	"fmt"

	nchess "github.com/corentings/chess/v2"
)

// Move is a from/to pair of square indices (rank*8+file).
type Move struct {
	From int
	To   int
}

// MoveOracle answers which moves are legal in a given positional record.
type MoveOracle interface {
	LegalMoves(record string) ([]Move, error)
}

// LegalityOracle is a MoveOracle backed by the corentings chess engine.
type LegalityOracle struct{}

// NewLegalityOracle returns the engine-backed oracle.
func NewLegalityOracle() *LegalityOracle {
	return &LegalityOracle{}
}

// LegalMoves parses the record and lists every legal move for the side to move.
func (LegalityOracle) LegalMoves(record string) ([]Move, error) {
	opt, err := nchess.FEN(record)
	if err != nil {
		return nil, fmt.Errorf("parse record %q: %w", record, err)
	}
	game := nchess.NewGame(opt)
	valid := game.ValidMoves()
	moves := make([]Move, 0, len(valid))
	for _, mv := range valid {
		moves = append(moves, Move{From: int(mv.S1()), To: int(mv.S2())})
	}
	return moves, nil
}

// Destinations returns the cells the piece on from may move to, in oracle order.
func Destinations(oracle MoveOracle, b *Board, from Cell) ([]Cell, error) {
	moves, err := oracle.LegalMoves(EncodeRecord(b))
	if err != nil {
		return nil, err
	}
	src := from.Index()
	var out []Cell
	for _, mv := range moves {
		if mv.From == src {
			out = append(out, CellFromIndex(mv.To))
		}
	}
	return out, nil
}
