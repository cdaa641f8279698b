package chess

import "strings"

// recordSuffix is appended after the side to move. Castling rights, en
// passant and move counters are not tracked, so they are fixed.
const recordSuffix = "KQkq - 0 1"

// EncodeRecord serializes the board to the positional record consumed by the
// move oracle: ranks 8 down to 1, files a to h, digit runs for empty cells,
// then the side to move.
func EncodeRecord(b *Board) string {
	var grid [BoardSize][BoardSize]byte
	for _, p := range b.Pieces {
		if !p.Position.InBounds() {
			continue
		}
		grid[p.Position.Y][p.Position.X] = Letter(p.Color, p.Kind)
	}

	var sb strings.Builder
	for y := BoardSize - 1; y >= 0; y-- {
		empty := 0
		for x := 0; x < BoardSize; x++ {
			l := grid[y][x]
			if l == 0 {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(l)
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if y > 0 {
			sb.WriteByte('/')
		}
	}

	switch b.Turn {
	case White:
		sb.WriteString(" w ")
	case Black:
		sb.WriteString(" b ")
	}
	sb.WriteString(recordSuffix)
	return sb.String()
}
