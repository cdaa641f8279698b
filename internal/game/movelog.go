package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/chessjam/internal/chess"
)

const (
	movePanelWidth = 180
	moveMaxEntries = 40
	moveLineHeight = 14
)

// MoveEntry is a single committed move.
type MoveEntry struct {
	Ply   int
	Color chess.Color
	Text  string // e.g. "Pe2-e4", "Nf3xe5"
}

// MoveLog is a ring buffer of committed moves drawn as a side panel.
type MoveLog struct {
	entries []MoveEntry
	head    int
	count   int
	plies   int
}

// NewMoveLog creates a move log with a fixed capacity.
func NewMoveLog() *MoveLog {
	return &MoveLog{
		entries: make([]MoveEntry, moveMaxEntries),
	}
}

// Add records the move described by out. Only committed moves are kept.
func (ml *MoveLog) Add(out chess.Outcome) {
	var text string
	p := out.Piece
	letter := string(chess.Letter(chess.White, p.Kind))
	switch out.Kind {
	case chess.OutcomeMoved:
		text = fmt.Sprintf("%s%s-%s", letter, out.From, out.To)
	case chess.OutcomeCaptured:
		text = fmt.Sprintf("%s%sx%s", letter, out.From, out.To)
	default:
		return
	}
	ml.plies++
	ml.entries[ml.head] = MoveEntry{Ply: ml.plies, Color: p.Color, Text: text}
	ml.head = (ml.head + 1) % moveMaxEntries
	if ml.count < moveMaxEntries {
		ml.count++
	}
}

// Plies returns the number of moves recorded, including evicted ones.
func (ml *MoveLog) Plies() int { return ml.plies }

// Recent returns entries in chronological order (oldest first).
func (ml *MoveLog) Recent() []MoveEntry {
	result := make([]MoveEntry, ml.count)
	for i := 0; i < ml.count; i++ {
		idx := (ml.head - ml.count + i + moveMaxEntries) % moveMaxEntries
		result[i] = ml.entries[idx]
	}
	return result
}

// Draw renders the move panel against the right edge of screen.
func (ml *MoveLog) Draw(screen *ebiten.Image, screenW, panelH int) {
	panelX := float32(screenW - movePanelWidth)
	vector.FillRect(screen, panelX, 0, movePanelWidth, float32(panelH), color.RGBA{R: 10, G: 12, B: 16, A: 200}, false)
	vector.StrokeLine(screen, panelX, 0, panelX, float32(panelH), 1.0, color.RGBA{R: 60, G: 70, B: 90, A: 255}, false)

	vector.FillRect(screen, panelX, 0, movePanelWidth, 16, color.RGBA{R: 24, G: 30, B: 40, A: 255}, false)
	ebitenutil.DebugPrintAt(screen, "MOVES", int(panelX)+8, 0)

	entries := ml.Recent()
	maxVisible := (panelH - 24) / moveLineHeight
	if len(entries) > maxVisible {
		entries = entries[len(entries)-maxVisible:]
	}

	y := 20
	for i, e := range entries {
		// Latest move gets a highlight row.
		if i == len(entries)-1 {
			vector.FillRect(screen, panelX+2, float32(y), movePanelWidth-4, moveLineHeight, color.RGBA{R: 40, G: 48, B: 64, A: 160}, false)
		}
		dot := color.RGBA{R: 235, G: 230, B: 215, A: 255}
		if e.Color == chess.Black {
			dot = color.RGBA{R: 70, G: 70, B: 70, A: 255}
		}
		vector.FillRect(screen, panelX+5, float32(y+4), 4, 6, dot, false)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%3d. %s", e.Ply, e.Text), int(panelX)+14, y-1)
		y += moveLineHeight
	}
}
