package game

import (
	"fmt"
	"strings"

	"github.com/Garsondee/chessjam/internal/chess"
	"github.com/Garsondee/chessjam/internal/config"
	"github.com/Garsondee/chessjam/internal/mesh"
	"github.com/Garsondee/chessjam/internal/scene"
)

// harnessDT is the fixed frame time of the headless harness.
const harnessDT float32 = 1.0 / 60

// TestSession drives a Session without a window: it synthesises Input
// snapshots, so tests and the headless renderer exercise the same Tick and
// Render the ebiten shell does.
type TestSession struct {
	Config    *config.Config
	Oracle    chess.MoveOracle
	Session   *Session
	Clipboard []string

	render bool
}

// sessionOptionKind controls the pass in which an option is applied.
type sessionOptionKind int

const (
	sessOptInfra sessionOptionKind = iota // config, oracle: applied before the session exists
	sessOptSetup                          // board and camera edits: applied after
)

// SessionOption is a builder function applied to a TestSession during construction.
type SessionOption struct {
	kind sessionOptionKind
	fn   func(*TestSession)
}

// WithConfig edits the configuration before the session is built.
func WithConfig(edit func(*config.Config)) SessionOption {
	return SessionOption{sessOptInfra, func(ts *TestSession) {
		edit(ts.Config)
	}}
}

// WithOracle replaces the move oracle.
func WithOracle(o chess.MoveOracle) SessionOption {
	return SessionOption{sessOptInfra, func(ts *TestSession) {
		ts.Oracle = o
	}}
}

// WithRender makes every step also render the frame.
func WithRender(on bool) SessionOption {
	return SessionOption{sessOptInfra, func(ts *TestSession) {
		ts.render = on
	}}
}

// WithCamera sets the orbit angle and tilt in degrees.
func WithCamera(angle, tilt float32) SessionOption {
	return SessionOption{sessOptSetup, func(ts *TestSession) {
		ts.Session.Camera.Angle = angle
		ts.Session.Camera.Tilt = tilt
	}}
}

// WithEmptyBoard clears the board and sets the side to move.
func WithEmptyBoard(turn chess.Color) SessionOption {
	return SessionOption{sessOptSetup, func(ts *TestSession) {
		b := chess.NewBoard()
		b.Turn = turn
		ts.Session.Board = b
	}}
}

// WithPiece places a piece. Combine with WithEmptyBoard for custom positions.
// A malformed square panics, since the test would otherwise run on the
// wrong board.
func WithPiece(c chess.Color, k chess.Kind, at string) SessionOption {
	return SessionOption{sessOptSetup, func(ts *TestSession) {
		cell, err := chess.ParseCell(at)
		if err != nil {
			panic(fmt.Sprintf("WithPiece %s %s: %v", c, k, err))
		}
		ts.Session.Board.Add(c, k, cell)
	}}
}

// NewTestSession builds a session from options in two ordered passes:
//  1. Infrastructure (config, oracle, render flag), then the session itself
//  2. Setup (board contents, camera)
//
// The defaults render at a quarter of the logical resolution.
func NewTestSession(opts ...SessionOption) *TestSession {
	cfg, err := config.Default()
	if err != nil {
		panic(fmt.Sprintf("embedded config: %v", err))
	}
	cfg.Graphics.RenderScale = 0.25
	cfg.Graphics.Multisampling = 1

	ts := &TestSession{
		Config: cfg,
		Oracle: chess.NewLegalityOracle(),
	}
	for _, o := range opts {
		if o.kind == sessOptInfra {
			o.fn(ts)
		}
	}

	lib := mesh.NewLibrary(cfg.Light.KeyDir.Vec(), cfg.Shadow.Extrude)
	ts.Session = NewSession(cfg, ts.Oracle, lib)
	ts.Session.clip = func(text string) error {
		ts.Clipboard = append(ts.Clipboard, text)
		return nil
	}

	for _, o := range opts {
		if o.kind == sessOptSetup {
			o.fn(ts)
		}
	}
	return ts
}

// Step runs one frame with the given input.
func (ts *TestSession) Step(in Input) (Signal, error) {
	sig, err := ts.Session.Tick(in, harnessDT)
	if err != nil || sig != SignalContinue {
		return sig, err
	}
	if ts.render {
		if err := ts.Session.Render(); err != nil {
			return sig, err
		}
	}
	return sig, nil
}

// CellPixel returns the logical pixel over the centre of a cell's top face.
func (ts *TestSession) CellPixel(c chess.Cell) (x, y float32, ok bool) {
	nx, ny, ok := ts.Session.Camera.ProjectToNDC(scene.GridToWorld(c))
	if !ok {
		return 0, 0, false
	}
	w, h := ts.Session.LogicalSize()
	return (nx/2 + 0.5) * float32(w), (0.5 - ny/2) * float32(h), true
}

// Hover moves the cursor over a cell without clicking.
func (ts *TestSession) Hover(c chess.Cell) error {
	_, err := ts.pointAt(c, false)
	return err
}

// Click clicks the centre of a cell through the picker.
func (ts *TestSession) Click(c chess.Cell) error {
	_, err := ts.pointAt(c, true)
	return err
}

// ClickSquare is Click with an algebraic square name.
func (ts *TestSession) ClickSquare(sq string) error {
	c, err := chess.ParseCell(sq)
	if err != nil {
		return err
	}
	return ts.Click(c)
}

func (ts *TestSession) pointAt(c chess.Cell, click bool) (Signal, error) {
	x, y, ok := ts.CellPixel(c)
	if !ok {
		return SignalContinue, fmt.Errorf("cell %s is behind the camera", c)
	}
	return ts.Step(Input{CursorX: x, CursorY: y, Select: click})
}

// Orbit turns the camera for one frame by the given degrees per second.
func (ts *TestSession) Orbit(dx, dy float32) error {
	in := Input{}
	in.Orbit[0], in.Orbit[1] = dx, dy
	_, err := ts.Step(in)
	return err
}

// PlayScript clicks through moves written as "e2e4" or "e2-e4", two clicks
// per move.
func (ts *TestSession) PlayScript(moves ...string) error {
	for _, m := range moves {
		m = strings.ReplaceAll(strings.TrimSpace(m), "-", "")
		if len(m) != 4 {
			return fmt.Errorf("move %q: want four characters like e2e4", m)
		}
		if err := ts.ClickSquare(m[:2]); err != nil {
			return fmt.Errorf("move %q: %w", m, err)
		}
		if err := ts.ClickSquare(m[2:]); err != nil {
			return fmt.Errorf("move %q: %w", m, err)
		}
	}
	return nil
}
