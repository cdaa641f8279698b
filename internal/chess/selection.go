package chess

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// DestinationSet is the ordered set of cells the selected piece may move to.
type DestinationSet struct {
	cells []Cell
	index mapset.Set[Cell]
}

// NewDestinationSet builds a set from cells, dropping duplicates but keeping
// first-seen order (promotion moves share a destination).
func NewDestinationSet(cells []Cell) DestinationSet {
	ds := DestinationSet{index: mapset.New[Cell]()}
	for _, c := range cells {
		if ds.index.Has(c) {
			continue
		}
		ds.index.Put(c)
		ds.cells = append(ds.cells, c)
	}
	return ds
}

// Contains reports whether c is a destination.
func (ds DestinationSet) Contains(c Cell) bool {
	return ds.index.Has(c)
}

// Cells returns the destinations in oracle order. The slice must not be modified.
func (ds DestinationSet) Cells() []Cell {
	return ds.cells
}

// Len returns the number of destinations.
func (ds DestinationSet) Len() int {
	return len(ds.cells)
}

// --- State machine ---

// OutcomeKind classifies what a click did.
type OutcomeKind int

const (
	OutcomeNone       OutcomeKind = iota // idle click on an empty cell
	OutcomeSelected                      // a piece became selected
	OutcomeMoved                         // the selected piece moved to an empty cell
	OutcomeCaptured                      // the selected piece moved and took a piece
	OutcomeDeselected                    // second click was not a destination
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeNone:
		return "none"
	case OutcomeSelected:
		return "selected"
	case OutcomeMoved:
		return "moved"
	case OutcomeCaptured:
		return "captured"
	case OutcomeDeselected:
		return "deselected"
	default:
		return "unknown"
	}
}

// Outcome describes the effect of one Select call.
type Outcome struct {
	Kind     OutcomeKind
	Piece    Piece // the selected or moving piece, as it was before the click
	From     Cell
	To       Cell
	Captured Piece // valid when Kind == OutcomeCaptured
}

// Selector is the two-click selection state machine. The zero value is Idle.
type Selector struct {
	oracle   MoveOracle
	selected PieceID
	active   bool
	dests    DestinationSet
}

// NewSelector returns an idle selector consulting oracle for destinations.
func NewSelector(oracle MoveOracle) *Selector {
	return &Selector{oracle: oracle}
}

// Selected returns the selected piece ID, if any.
func (s *Selector) Selected() (PieceID, bool) {
	return s.selected, s.active
}

// Destinations returns the legal destinations of the current selection.
func (s *Selector) Destinations() DestinationSet {
	return s.dests
}

// Reset returns the selector to Idle.
func (s *Selector) Reset() {
	s.active = false
	s.selected = 0
	s.dests = DestinationSet{}
}

// Select handles a click on cell. An oracle failure is returned wrapped and
// leaves the selector Idle.
func (s *Selector) Select(b *Board, cell Cell) (Outcome, error) {
	if s.active {
		return s.commit(b, cell)
	}

	idx, ok := b.PieceAt(cell)
	if !ok {
		s.Reset()
		return Outcome{Kind: OutcomeNone, To: cell}, nil
	}
	p := b.Pieces[idx]
	cells, err := Destinations(s.oracle, b, p.Position)
	if err != nil {
		s.Reset()
		return Outcome{}, fmt.Errorf("destinations for %s: %w", p, err)
	}
	s.selected = p.ID
	s.active = true
	s.dests = NewDestinationSet(cells)
	return Outcome{Kind: OutcomeSelected, Piece: p, From: p.Position}, nil
}

func (s *Selector) commit(b *Board, cell Cell) (Outcome, error) {
	id := s.selected
	dests := s.dests
	s.Reset()

	p, ok := b.Piece(id)
	if !ok {
		return Outcome{}, fmt.Errorf("selected piece %d: %w", id, ErrUnknownPiece)
	}
	if !dests.Contains(cell) {
		return Outcome{Kind: OutcomeDeselected, Piece: p, From: p.Position, To: cell}, nil
	}

	out := Outcome{Kind: OutcomeMoved, Piece: p, From: p.Position, To: cell}
	if idx, taken := b.PieceAt(cell); taken {
		out.Kind = OutcomeCaptured
		out.Captured = b.Pieces[idx]
		if err := b.Remove(out.Captured.ID); err != nil {
			return Outcome{}, err
		}
	}
	if err := b.MovePiece(id, cell); err != nil {
		return Outcome{}, err
	}
	b.ToggleTurn()
	return out, nil
}
