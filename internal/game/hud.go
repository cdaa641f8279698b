package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"

	"github.com/Garsondee/chessjam/internal/chess"
	"github.com/Garsondee/chessjam/internal/obslog"
)

// hudScale is the integer upscale applied to HUD text.
const hudScale = 2

const (
	hudLineH    = 12 // debug font line height at 1x
	hudCharW    = 6  // debug font char width at 1x
	hudPad      = 4
	hudIconSize = 24
)

// HUD draws the text overlays: turn label, FPS, timesheet and key help.
type HUD struct {
	buf   *ebiten.Image
	icons [2]*ebiten.Image
	insp  inspector
}

func (h *HUD) icon(c chess.Color) *ebiten.Image {
	if h.icons[c] != nil {
		return h.icons[c]
	}
	img, err := turnIcon(c, hudIconSize)
	if err != nil {
		obslog.L().Warn("turn icon unavailable", zap.Error(err))
		return nil
	}
	h.icons[c] = ebiten.NewImageFromImage(img)
	return h.icons[c]
}

// hudLines returns the text block drawn in the top-left corner.
func (s *Session) hudLines() []string {
	var lines []string
	if s.cfg.Text.TurnLabel {
		lines = append(lines, fmt.Sprintf("      %s to move", s.Board.Turn))
	}
	lines = append(lines, fmt.Sprintf("FPS %.0f", s.fps))
	if s.showTimesheet {
		lines = append(lines, s.Timesheet.Lines()...)
		lines = append(lines, fmt.Sprintf("total: %.3fms", float64(s.Timesheet.Total().Microseconds())/1000))
	}
	lines = append(lines, "[H] timings [I] inspect [C] copy FEN")
	return lines
}

// Draw renders the HUD, the move panel and the inspector over screen.
func (h *HUD) Draw(screen *ebiten.Image, s *Session) {
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	if h.buf == nil {
		h.buf = ebiten.NewImage(sw/hudScale, sh/hudScale)
	}
	h.buf.Clear()

	lines := s.hudLines()
	maxLen := 0
	for _, l := range lines {
		maxLen = max(maxLen, len(l))
	}
	boxW := float32(maxLen*hudCharW + hudPad*2)
	boxH := float32(len(lines)*hudLineH + hudPad*2)
	vector.FillRect(h.buf, 4, 4, boxW, boxH, color.RGBA{R: 8, G: 10, B: 14, A: 190}, false)
	vector.StrokeRect(h.buf, 4, 4, boxW, boxH, 1.0, color.RGBA{R: 60, G: 70, B: 90, A: 180}, false)
	for i, line := range lines {
		ebitenutil.DebugPrintAt(h.buf, line, 4+hudPad, 4+hudPad+i*hudLineH)
	}

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(hudScale, hudScale)
	screen.DrawImage(h.buf, opts)

	if s.cfg.Text.TurnLabel {
		if icon := h.icon(s.Board.Turn); icon != nil {
			io := &ebiten.DrawImageOptions{}
			io.GeoM.Translate(float64((4+hudPad)*hudScale), float64((4+hudPad)*hudScale-6))
			screen.DrawImage(icon, io)
		}
	}

	s.Moves.Draw(screen, sw, sh)
	h.insp.draw(screen, s)
}
