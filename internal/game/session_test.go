package game

import (
	"errors"
	"strings"
	"testing"

	"github.com/Garsondee/chessjam/internal/chess"
)

const startRecord = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

type failingOracle struct{}

var errEngineDown = errors.New("engine down")

func (failingOracle) LegalMoves(string) ([]chess.Move, error) {
	return nil, errEngineDown
}

func mustCell(t *testing.T, sq string) chess.Cell {
	t.Helper()
	c, err := chess.ParseCell(sq)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestHoverPicksCellUnderCursor(t *testing.T) {
	ts := NewTestSession()
	for _, sq := range []string{"a1", "h1", "e4", "a8", "h8"} {
		want := mustCell(t, sq)
		if err := ts.Hover(want); err != nil {
			t.Fatal(err)
		}
		if ts.Session.Cursor != want {
			t.Fatalf("hover %s picked %s", sq, ts.Session.Cursor)
		}
	}
}

func TestClickScriptMovesPawn(t *testing.T) {
	ts := NewTestSession()
	if err := ts.PlayScript("e2e4"); err != nil {
		t.Fatal(err)
	}
	s := ts.Session
	want := "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1"
	if got := s.Record(); got != want {
		t.Fatalf("record = %q, want %q", got, want)
	}
	if _, ok := s.Selector.Selected(); ok {
		t.Fatalf("selector should be idle after the move")
	}
	if s.Selector.Destinations().Len() != 0 {
		t.Fatalf("destinations should be cleared")
	}
	if n := s.Events.CountCategory(CatMove, "committed"); n != 1 {
		t.Fatalf("committed events = %d\n%s", n, s.Events.Format())
	}
	moves := s.Moves.Recent()
	if len(moves) != 1 || moves[0].Text != "Pe2-e4" || moves[0].Color != chess.White {
		t.Fatalf("move log = %+v", moves)
	}
}

func TestUnreachableSecondClickDeselects(t *testing.T) {
	ts := NewTestSession()
	if err := ts.PlayScript("e2e5"); err != nil {
		t.Fatal(err)
	}
	s := ts.Session
	if got := s.Record(); got != startRecord {
		t.Fatalf("board changed: %q", got)
	}
	if s.Board.Turn != chess.White {
		t.Fatalf("turn toggled without a move")
	}
	if !s.Events.HasEntry(CatSelection, "deselected", "e5") {
		t.Fatalf("missing deselect event\n%s", s.Events.Format())
	}
}

func TestCaptureThroughClicks(t *testing.T) {
	ts := NewTestSession()
	if err := ts.PlayScript("e2e4", "d7d5", "e4d5"); err != nil {
		t.Fatal(err)
	}
	s := ts.Session
	if len(s.Board.Pieces) != 31 {
		t.Fatalf("pieces = %d, want 31", len(s.Board.Pieces))
	}
	if err := s.Board.CheckOccupancy(); err != nil {
		t.Fatal(err)
	}
	if !s.Events.HasEntry(CatMove, "captured", "black pawn") {
		t.Fatalf("missing capture event\n%s", s.Events.Format())
	}
	if s.Board.Turn != chess.Black {
		t.Fatalf("turn = %s after three plies", s.Board.Turn)
	}
	last := s.Moves.Recent()[2]
	if last.Text != "Pe4xd5" {
		t.Fatalf("last move = %q", last.Text)
	}
}

func TestHighlightCommands(t *testing.T) {
	ts := NewTestSession()
	if err := ts.ClickSquare("e2"); err != nil {
		t.Fatal(err)
	}
	f := ts.Session.Commands()
	if len(f.Opaque) != 64+32 {
		t.Fatalf("opaque commands = %d", len(f.Opaque))
	}
	// selected tile + cursor + e3 + e4
	if len(f.Highlight) != 4 {
		t.Fatalf("highlight commands = %d", len(f.Highlight))
	}

	if err := ts.ClickSquare("e4"); err != nil {
		t.Fatal(err)
	}
	f = ts.Session.Commands()
	if len(f.Highlight) != 1 {
		t.Fatalf("idle frame should only highlight the cursor, got %d", len(f.Highlight))
	}
	if len(f.Opaque) != 64+32 {
		t.Fatalf("opaque commands leaked across frames: %d", len(f.Opaque))
	}
}

func TestOffBoardCursorHasNoHighlight(t *testing.T) {
	ts := NewTestSession()
	if _, err := ts.Step(Input{CursorX: 2, CursorY: 2}); err != nil {
		t.Fatal(err)
	}
	if ts.Session.Cursor.InBounds() {
		t.Fatalf("corner of the screen picked %s", ts.Session.Cursor)
	}
	if n := len(ts.Session.Commands().Highlight); n != 0 {
		t.Fatalf("highlight commands = %d", n)
	}
}

func TestOracleErrorAbortsFrame(t *testing.T) {
	ts := NewTestSession(WithOracle(failingOracle{}))
	err := ts.ClickSquare("e2")
	if !errors.Is(err, errEngineDown) {
		t.Fatalf("expected wrapped oracle error, got %v", err)
	}
	if _, ok := ts.Session.Selector.Selected(); ok {
		t.Fatalf("selector should stay idle on oracle failure")
	}
}

func TestExitSignals(t *testing.T) {
	ts := NewTestSession()
	if sig, _ := ts.Step(Input{Escape: true}); sig != SignalQuit {
		t.Fatalf("escape -> %s", sig)
	}
	if sig, _ := ts.Step(Input{Close: true}); sig != SignalQuit {
		t.Fatalf("close -> %s", sig)
	}
	if sig, _ := ts.Step(Input{Restart: true}); sig != SignalRestart {
		t.Fatalf("restart -> %s", sig)
	}
	if ts.Session.Events.CountCategory(CatSession, "quit") != 2 {
		t.Fatalf("quit events missing\n%s", ts.Session.Events.Format())
	}
}

func TestOrbitAccumulatesScaledByDT(t *testing.T) {
	ts := NewTestSession(WithCamera(10, 40))
	if err := ts.Orbit(60, -120); err != nil {
		t.Fatal(err)
	}
	cam := ts.Session.Camera
	if d := cam.Angle - 11; d > 1e-4 || d < -1e-4 {
		t.Fatalf("angle = %v, want 11", cam.Angle)
	}
	if d := cam.Tilt - 38; d > 1e-4 || d < -1e-4 {
		t.Fatalf("tilt = %v, want 38", cam.Tilt)
	}
}

func TestCopyRecordToClipboard(t *testing.T) {
	ts := NewTestSession()
	if _, err := ts.Step(Input{CopyRecord: true}); err != nil {
		t.Fatal(err)
	}
	if len(ts.Clipboard) != 1 || ts.Clipboard[0] != startRecord {
		t.Fatalf("clipboard = %q", ts.Clipboard)
	}
}

func TestCustomBoardSetup(t *testing.T) {
	ts := NewTestSession(
		WithEmptyBoard(chess.Black),
		WithPiece(chess.White, chess.King, "e1"),
		WithPiece(chess.Black, chess.King, "e8"),
		WithPiece(chess.Black, chess.Rook, "a8"),
	)
	if err := ts.PlayScript("a8a1"); err != nil {
		t.Fatal(err)
	}
	want := "4k3/8/8/8/8/8/8/r3K3 w KQkq - 0 1"
	if got := ts.Session.Record(); got != want {
		t.Fatalf("record = %q, want %q", got, want)
	}
}

func TestRenderFillsFrameAndTimesheet(t *testing.T) {
	ts := NewTestSession(WithRender(true))
	if err := ts.Hover(mustCell(t, "d4")); err != nil {
		t.Fatal(err)
	}
	img := ts.Session.Image()
	sky := ts.Session.Commands().Sky
	drawn := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y) != sky {
				drawn++
			}
		}
	}
	if drawn < b.Dx()*b.Dy()/10 {
		t.Fatalf("only %d pixels differ from the sky", drawn)
	}

	var stages []string
	for _, l := range ts.Session.Timesheet.Previous() {
		stages = append(stages, l.Stage)
	}
	joined := strings.Join(stages, ",")
	for _, want := range []string{"inputs", "buffers", "dark-pass", "shadow-front-pass", "shadow-back-pass", "light-pass", "highlight-pass", "resolve"} {
		if !strings.Contains(joined, want) {
			t.Fatalf("timesheet stages %q missing %s", joined, want)
		}
	}
}

func TestInspectorAndHUDLines(t *testing.T) {
	ts := NewTestSession()
	if err := ts.ClickSquare("e2"); err != nil {
		t.Fatal(err)
	}
	lines := strings.Join(ts.Session.inspectorLines(), "\n")
	for _, want := range []string{"cursor e2", "selection: white pawn@e2", "e3", "e4"} {
		if !strings.Contains(lines, want) {
			t.Fatalf("inspector missing %q:\n%s", want, lines)
		}
	}

	hud := strings.Join(ts.Session.hudLines(), "\n")
	if !strings.Contains(hud, "white to move") {
		t.Fatalf("hud missing turn label:\n%s", hud)
	}
	if strings.Contains(hud, "total:") {
		t.Fatalf("timesheet shown by default:\n%s", hud)
	}
	if _, err := ts.Step(Input{ToggleTimesheet: true}); err != nil {
		t.Fatal(err)
	}
	if hud := strings.Join(ts.Session.hudLines(), "\n"); !strings.Contains(hud, "total:") {
		t.Fatalf("timesheet toggle had no effect:\n%s", hud)
	}
}

func TestReport(t *testing.T) {
	ts := NewTestSession()
	if err := ts.PlayScript("g1f3"); err != nil {
		t.Fatal(err)
	}
	r := ts.Session.Report()
	for _, want := range []string{"== moves (1) ==", "Ng1-f3", "committed=1", "3 . . . . . N . ."} {
		if !strings.Contains(r, want) {
			t.Fatalf("report missing %q:\n%s", want, r)
		}
	}
}

func TestUnrenderedTicksDoNotAccumulateLaps(t *testing.T) {
	ts := NewTestSession()
	if err := ts.PlayScript("e2e4", "e7e5", "g1f3"); err != nil {
		t.Fatal(err)
	}
	if n := len(ts.Session.Timesheet.Current()); n != 4 {
		t.Fatalf("current frame holds %d laps after an unrendered script", n)
	}
	if err := ts.Session.Render(); err != nil {
		t.Fatal(err)
	}
	// 4 tick stages, 5 passes, resolve
	if n := len(ts.Session.Timesheet.Previous()); n != 10 {
		t.Fatalf("rendered frame holds %d laps, want 10:\n%s", n, ts.Session.Timesheet)
	}
}

func TestWithPieceBadSquarePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected a panic for a malformed square")
		}
	}()
	NewTestSession(WithEmptyBoard(chess.White), WithPiece(chess.White, chess.King, "e9"))
}
