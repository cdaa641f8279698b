package game

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/chessjam/internal/chess"
)

// Inspector panel, rendered into a small buffer then blitted at inspScale.
const (
	inspScale = 2
	inspBufW  = 200
	inspBufH  = 120
	inspPad   = 4
	inspLineH = 13
)

// inspectorLines describes the tile under the cursor and the current selection.
func (s *Session) inspectorLines() []string {
	lines := []string{fmt.Sprintf("frame %d  turn %s", s.frame, s.Board.Turn)}

	if s.Cursor.InBounds() {
		occupant := "empty"
		if idx, ok := s.Board.PieceAt(s.Cursor); ok {
			occupant = s.Board.Pieces[idx].String()
		}
		lines = append(lines, fmt.Sprintf("cursor %s  %s", s.Cursor, occupant))
	} else {
		lines = append(lines, "cursor off board")
	}

	id, ok := s.Selector.Selected()
	if !ok {
		lines = append(lines, "selection: none")
		return lines
	}
	p, _ := s.Board.Piece(id)
	lines = append(lines, fmt.Sprintf("selection: %s", p))

	dests := s.Selector.Destinations().Cells()
	names := make([]string, len(dests))
	for i, d := range dests {
		names[i] = d.String()
	}
	// Wrap at six cells per line to fit the panel.
	for len(names) > 0 {
		n := min(6, len(names))
		lines = append(lines, "  "+strings.Join(names[:n], " "))
		names = names[n:]
	}
	if len(dests) == 0 {
		lines = append(lines, "  no legal moves")
	}
	return lines
}

type inspector struct {
	buf *ebiten.Image
}

func (in *inspector) draw(screen *ebiten.Image, s *Session) {
	if !s.showInspector {
		return
	}
	if in.buf == nil {
		in.buf = ebiten.NewImage(inspBufW, inspBufH)
	}
	buf := in.buf
	buf.Clear()

	bw, bh := float32(inspBufW), float32(inspBufH)
	border := color.RGBA{R: 60, G: 70, B: 90, A: 255}
	vector.FillRect(buf, 0, 0, bw, bh, color.RGBA{R: 14, G: 16, B: 22, A: 220}, false)
	vector.StrokeRect(buf, 0, 0, bw, bh, 1.0, border, false)

	ly := inspPad
	ebitenutil.DebugPrintAt(buf, "[ TILE INSPECTOR ]  [I]", inspPad, ly)
	ly += inspLineH + 2
	vector.StrokeLine(buf, inspPad, float32(ly), bw-inspPad, float32(ly), 1.0, border, false)
	ly += 3
	for _, line := range s.inspectorLines() {
		ebitenutil.DebugPrintAt(buf, line, inspPad, ly)
		ly += inspLineH
	}

	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(inspScale, inspScale)
	opts.GeoM.Translate(float64(sw-movePanelWidth-inspBufW*inspScale-8), float64(sh-inspBufH*inspScale-8))
	screen.DrawImage(buf, opts)
}

// pieceLabel is the one-letter code of a piece, cased by colour.
func pieceLabel(p chess.Piece) string {
	return string(chess.Letter(p.Color, p.Kind))
}
