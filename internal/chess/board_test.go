package chess

import (
	"errors"
	"testing"
)

func TestStandardBoardRecord(t *testing.T) {
	b := NewStandardBoard()
	got := EncodeRecord(b)
	want := "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	if got != want {
		t.Fatalf("initial record:\n got  %s\n want %s", got, want)
	}
	if len(b.Pieces) != 32 {
		t.Fatalf("expected 32 pieces, got %d", len(b.Pieces))
	}
	if err := b.CheckOccupancy(); err != nil {
		t.Fatalf("standard board occupancy: %v", err)
	}
}

func TestStandardBoardOrder(t *testing.T) {
	b := NewStandardBoard()
	// Pawns come first, interleaved white/black per file.
	if p := b.Pieces[0]; p.Kind != Pawn || p.Color != White || p.Position != (Cell{0, 1}) {
		t.Fatalf("piece 0: %v", p)
	}
	if p := b.Pieces[1]; p.Kind != Pawn || p.Color != Black || p.Position != (Cell{0, 6}) {
		t.Fatalf("piece 1: %v", p)
	}
	if p := b.Pieces[16]; p.Kind != King || p.Color != White || p.Position != (Cell{4, 0}) {
		t.Fatalf("piece 16: %v", p)
	}
	last := b.Pieces[len(b.Pieces)-1]
	if last.Kind != Rook || last.Color != Black || last.Position != (Cell{7, 7}) {
		t.Fatalf("last piece: %v", last)
	}
}

func TestRecordBlackToMoveAndRuns(t *testing.T) {
	b := NewBoard()
	b.Add(White, King, Cell{4, 0})
	b.Add(Black, King, Cell{4, 7})
	b.Add(White, Queen, Cell{0, 3})
	b.Turn = Black
	got := EncodeRecord(b)
	want := "4k3/8/8/8/Q7/8/8/4K3 b KQkq - 0 1"
	if got != want {
		t.Fatalf("record:\n got  %s\n want %s", got, want)
	}
}

func TestRemovePreservesOrderAndIDs(t *testing.T) {
	b := NewStandardBoard()
	victim := b.Pieces[3]
	after := b.Pieces[4]
	lastID := b.Pieces[len(b.Pieces)-1].ID

	if err := b.Remove(victim.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if b.Pieces[3] != after {
		t.Fatalf("expected order preserved, index 3 is now %v", b.Pieces[3])
	}
	if b.Pieces[len(b.Pieces)-1].ID != lastID {
		t.Fatalf("last piece changed: %v", b.Pieces[len(b.Pieces)-1])
	}
	if _, ok := b.Piece(victim.ID); ok {
		t.Fatalf("removed piece still present")
	}
	if err := b.Remove(victim.ID); !errors.Is(err, ErrUnknownPiece) {
		t.Fatalf("expected ErrUnknownPiece, got %v", err)
	}
}

func TestAddNeverReusesIDs(t *testing.T) {
	b := NewBoard()
	a := b.Add(White, Pawn, Cell{0, 1})
	if err := b.Remove(a); err != nil {
		t.Fatal(err)
	}
	c := b.Add(White, Pawn, Cell{0, 1})
	if c == a {
		t.Fatalf("id %d reused", a)
	}
}

func TestCheckOccupancyDetectsOverlap(t *testing.T) {
	b := NewBoard()
	b.Add(White, Pawn, Cell{2, 2})
	b.Add(Black, Pawn, Cell{2, 2})
	if err := b.CheckOccupancy(); err == nil {
		t.Fatalf("expected overlap error")
	}
}

func TestCellIndexRoundTrip(t *testing.T) {
	for i := 0; i < 64; i++ {
		c := CellFromIndex(i)
		if !c.InBounds() || c.Index() != i {
			t.Fatalf("index %d -> %v -> %d", i, c, c.Index())
		}
	}
	c, err := ParseCell("e4")
	if err != nil || c != (Cell{4, 3}) {
		t.Fatalf("ParseCell(e4) = %v, %v", c, err)
	}
	if c.String() != "e4" {
		t.Fatalf("String() = %s", c.String())
	}
	if _, err := ParseCell("z9"); err == nil {
		t.Fatalf("expected error for z9")
	}
}

func TestLetters(t *testing.T) {
	cases := []struct {
		c    Color
		k    Kind
		want byte
	}{
		{White, Pawn, 'P'}, {White, Knight, 'N'}, {White, Bishop, 'B'},
		{White, Rook, 'R'}, {White, Queen, 'Q'}, {White, King, 'K'},
		{Black, Pawn, 'p'}, {Black, King, 'k'},
	}
	for _, tc := range cases {
		if got := Letter(tc.c, tc.k); got != tc.want {
			t.Fatalf("Letter(%s,%s) = %c, want %c", tc.c, tc.k, got, tc.want)
		}
	}
}
