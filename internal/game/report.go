package game

import (
	"fmt"
	"strings"

	"github.com/Garsondee/chessjam/internal/chess"
)

// Report summarises the session: position, move list, event counts and the
// last frame's timesheet.
func (s *Session) Report() string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- chessjam session report ---\n")
	fmt.Fprintf(&b, "session=%s frames=%d turn=%s\n", s.ID, s.frame, s.Board.Turn)
	fmt.Fprintf(&b, "record=%s\n\n", s.Record())

	b.WriteString(boardDiagram(s.Board))
	b.WriteByte('\n')

	fmt.Fprintf(&b, "== moves (%d) ==\n", s.Moves.Plies())
	for _, m := range s.Moves.Recent() {
		fmt.Fprintf(&b, "%3d. %-5s %s\n", m.Ply, m.Color, m.Text)
	}
	b.WriteByte('\n')

	fmt.Fprintf(&b, "== events ==\n")
	fmt.Fprintf(&b, "selected=%d deselected=%d committed=%d captured=%d\n",
		s.Events.CountCategory(CatSelection, "selected"),
		s.Events.CountCategory(CatSelection, "deselected"),
		s.Events.CountCategory(CatMove, "committed"),
		s.Events.CountCategory(CatMove, "captured"),
	)

	if lines := s.Timesheet.Lines(); len(lines) > 0 {
		b.WriteString("\n== last frame ==\n")
		for _, l := range lines {
			b.WriteString(l)
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// boardDiagram draws the board as text, rank 8 at the top.
func boardDiagram(b *chess.Board) string {
	var sb strings.Builder
	for y := chess.BoardSize - 1; y >= 0; y-- {
		fmt.Fprintf(&sb, "%d ", y+1)
		for x := range chess.BoardSize {
			label := "."
			if idx, ok := b.PieceAt(chess.Cell{X: x, Y: y}); ok {
				label = pieceLabel(b.Pieces[idx])
			}
			sb.WriteString(label)
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
