package game

import (
	"fmt"
	"image"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Garsondee/chessjam/internal/chess"
	"github.com/Garsondee/chessjam/internal/config"
	"github.com/Garsondee/chessjam/internal/mesh"
	"github.com/Garsondee/chessjam/internal/obslog"
	"github.com/Garsondee/chessjam/internal/raster"
	"github.com/Garsondee/chessjam/internal/render"
	"github.com/Garsondee/chessjam/internal/scene"
)

// Signal tells the shell what to do after a tick.
type Signal int

const (
	SignalContinue Signal = iota
	SignalQuit
	SignalRestart
)

func (s Signal) String() string {
	switch s {
	case SignalContinue:
		return "continue"
	case SignalQuit:
		return "quit"
	case SignalRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// highlightLift raises highlight tiles above the board tiles.
const highlightLift float32 = 0.2

// Session is one game from the initial arrangement until quit or restart.
// It owns the board and selection; meshes in lib are shared across sessions.
type Session struct {
	ID        uuid.UUID
	Board     *chess.Board
	Camera    scene.Camera
	Selector  *chess.Selector
	Cursor    chess.Cell
	Timesheet *Timesheet
	Moves     *MoveLog
	Events    *EventLog

	cfg      *config.Config
	lib      *mesh.Library
	renderer *render.Renderer
	target   *raster.Target
	image    *image.RGBA
	clip     func(string) error
	log      *zap.Logger

	logicalW, logicalH int
	frame              int
	fps                float32
	showTimesheet      bool
	showInspector      bool
}

// NewSession starts a game with the standard arrangement, White to move.
func NewSession(cfg *config.Config, oracle chess.MoveOracle, lib *mesh.Library) *Session {
	res := cfg.Graphics.Resolution
	rw, rh := renderSize(res, cfg.Graphics.RenderScale)
	ms := cfg.Graphics.Multisampling

	s := &Session{
		ID:        uuid.New(),
		Board:     chess.NewStandardBoard(),
		Camera:    scene.NewCamera(cfg.Camera.Angle, cfg.Camera.Tilt, cfg.Camera.Distance, cfg.Camera.FOV),
		Selector:  chess.NewSelector(oracle),
		Cursor:    chess.Cell{X: -1, Y: -1},
		Timesheet: NewTimesheet(),
		Moves:     NewMoveLog(),
		Events:    NewEventLog(),

		cfg:      cfg,
		lib:      lib,
		renderer: render.NewRenderer(LightingFromConfig(cfg)),
		target:   raster.NewTarget(rw*ms, rh*ms),
		image:    image.NewRGBA(image.Rect(0, 0, rw, rh)),
		clip:     setClipboardText,

		logicalW:      res[0],
		logicalH:      res[1],
		showTimesheet: cfg.Text.Timesheet,
	}
	s.log = obslog.L().With(zap.String("session", s.ID.String()))
	s.log.Info("session_start",
		zap.Int("render_w", rw), zap.Int("render_h", rh), zap.Int("multisampling", ms))
	s.Events.Add(0, CatSession, "start", s.ID.String(), 0)
	return s
}

func renderSize(res [2]int, scale float32) (int, int) {
	w := int(float32(res[0]) * scale)
	h := int(float32(res[1]) * scale)
	return max(w, 1), max(h, 1)
}

// LightingFromConfig builds the renderer's lights from the light and shadow sections.
func LightingFromConfig(cfg *config.Config) render.Lighting {
	l := render.Lighting{
		SpecularColor: cfg.Light.SpecularColor.Vec(),
		SpecularPower: cfg.Light.SpecularPower,
	}
	l.Dirs[render.KeyLight] = cfg.Light.KeyDir.Vec()
	l.Dirs[render.FillLight] = cfg.Light.FillDir.Vec()
	l.Dirs[render.BackLight] = cfg.Light.BackDir.Vec()

	l.Lit.Colors[render.KeyLight] = cfg.Light.KeyColor.Vec()
	l.Lit.Colors[render.FillLight] = cfg.Light.FillColor.Vec()
	l.Lit.Colors[render.BackLight] = cfg.Light.BackColor.Vec()
	l.Lit.Ambient = cfg.Light.AmbColor.Vec()

	l.Shadow.Colors[render.KeyLight] = cfg.Shadow.KeyColor.Vec()
	l.Shadow.Colors[render.FillLight] = cfg.Shadow.FillColor.Vec()
	l.Shadow.Colors[render.BackLight] = cfg.Shadow.BackColor.Vec()
	l.Shadow.Ambient = cfg.Shadow.AmbColor.Vec()
	return l
}

// Tick runs one frame of logic: exit checks, camera, picking, selection and
// the rebuild of the command lists. An error is an invariant violation and
// must end the loop.
func (s *Session) Tick(in Input, dt float32) (Signal, error) {
	s.Timesheet.Begin()
	s.frame++
	if dt > 0 {
		s.fps = 1 / dt
	}
	s.Timesheet.Lap("inputs")

	if in.Close || in.Escape {
		s.log.Info("session_quit", zap.Int("frame", s.frame))
		s.Events.Add(s.frame, CatSession, "quit", "", 0)
		return SignalQuit, nil
	}
	if in.Restart {
		s.log.Info("session_restart", zap.Int("frame", s.frame))
		s.Events.Add(s.frame, CatSession, "restart", "", 0)
		return SignalRestart, nil
	}

	s.Camera.Orbit(in.Orbit.X(), in.Orbit.Y(), dt)
	mx, my := scene.CursorToNDC(in.CursorX, in.CursorY, s.logicalW, s.logicalH)
	s.Cursor = scene.PickTile(s.Camera, mx, my)
	s.Timesheet.Lap("pre-update")

	if in.ToggleTimesheet {
		s.showTimesheet = !s.showTimesheet
	}
	if in.ToggleInspector {
		s.showInspector = !s.showInspector
	}
	if in.CopyRecord {
		s.copyRecord()
	}
	if in.Select {
		out, err := s.Selector.Select(s.Board, s.Cursor)
		if err != nil {
			return SignalContinue, fmt.Errorf("frame %d: select %s: %w", s.frame, s.Cursor, err)
		}
		s.recordOutcome(out)
	}
	s.Timesheet.Lap("update")

	s.buildCommands()
	s.Timesheet.Lap("buffers")
	return SignalContinue, nil
}

func (s *Session) recordOutcome(out chess.Outcome) {
	switch out.Kind {
	case chess.OutcomeSelected:
		n := s.Selector.Destinations().Len()
		s.Events.Add(s.frame, CatSelection, "selected", out.Piece.String(), float64(n))
		s.log.Info("piece_selected",
			zap.String("piece", out.Piece.String()),
			zap.Int("destinations", n))
	case chess.OutcomeDeselected:
		s.Events.Add(s.frame, CatSelection, "deselected", fmt.Sprintf("%s to %s", out.Piece, out.To), 0)
	case chess.OutcomeMoved, chess.OutcomeCaptured:
		s.Moves.Add(out)
		move := fmt.Sprintf("%s-%s", out.From, out.To)
		s.Events.Add(s.frame, CatMove, "committed", move, float64(s.Moves.Plies()))
		s.log.Info("move_committed",
			zap.String("piece", out.Piece.String()),
			zap.String("move", move),
			zap.String("turn", s.Board.Turn.String()))
		if out.Kind == chess.OutcomeCaptured {
			s.Events.Add(s.frame, CatMove, "captured", out.Captured.String(), 0)
			s.log.Info("piece_captured",
				zap.String("piece", out.Captured.String()))
		}
	case chess.OutcomeNone:
	}
}

func (s *Session) copyRecord() {
	rec := chess.EncodeRecord(s.Board)
	if err := s.clip(rec); err != nil {
		s.log.Warn("clipboard write failed", zap.Error(err))
		s.Events.Add(s.frame, CatUI, "copy_failed", err.Error(), 0)
		return
	}
	s.Events.Add(s.frame, CatUI, "copied", rec, 0)
}

// buildCommands refills the renderer's command lists from the board, cursor
// and selection.
func (s *Session) buildCommands() {
	colors := &s.cfg.Colors
	f := s.renderer.BeginFrame(s.Camera.ViewVector(), render.ToRGBA(colors.Sky.Vec()))
	vp := s.Camera.ViewProjection()

	for y := range chess.BoardSize {
		for x := range chess.BoardSize {
			c := chess.Cell{X: x, Y: y}
			tint := colors.White.Vec()
			if (x+y)%2 == 0 {
				tint = colors.Black.Vec()
			}
			f.AddOpaque(s.lib.Tile, tint, modelAt(vp, scene.GridToWorld(c)))
		}
	}

	for _, p := range s.Board.Pieces {
		f.AddOpaque(s.lib.Piece(p.Kind), s.pieceColor(p.Color), modelAt(vp, scene.GridToWorld(p.Position)))
	}

	lift := mgl32.Vec3{0, highlightLift, 0}
	if id, ok := s.Selector.Selected(); ok {
		if p, found := s.Board.Piece(id); found {
			f.AddHighlight(s.lib.Tile, colors.Selected.Vec(), modelAt(vp, scene.GridToWorld(p.Position).Add(lift)))
		}
	}
	if s.Cursor.InBounds() {
		f.AddHighlight(s.lib.Tile, colors.Cursor.Vec(), modelAt(vp, scene.GridToWorld(s.Cursor).Add(lift)))
	}
	for _, d := range s.Selector.Destinations().Cells() {
		f.AddHighlight(s.lib.Tile, colors.Dest.Vec(), modelAt(vp, scene.GridToWorld(d).Add(lift)))
	}
}

func (s *Session) pieceColor(c chess.Color) mgl32.Vec4 {
	switch c {
	case chess.Black:
		return s.cfg.Colors.Grey.Vec()
	case chess.White:
		return s.cfg.Colors.White.Vec()
	default:
		panic(fmt.Sprintf("unknown colour %d", c))
	}
}

func modelAt(vp mgl32.Mat4, pos mgl32.Vec3) mgl32.Mat4 {
	return vp.Mul4(mgl32.Translate3D(pos.X(), pos.Y(), pos.Z()))
}

// Render draws the command lists built by the last Tick and resolves the
// result into Image.
func (s *Session) Render() error {
	if err := s.renderer.Render(s.target, s.Timesheet); err != nil {
		return fmt.Errorf("frame %d: %w", s.frame, err)
	}
	s.target.Resolve(s.image)
	s.Timesheet.Lap("resolve")
	s.Timesheet.Finish()
	return nil
}

// Image is the last rendered frame at render resolution.
func (s *Session) Image() *image.RGBA { return s.image }

// Target exposes the raster target of the last frame.
func (s *Session) Target() *raster.Target { return s.target }

// Commands returns the command lists built by the last Tick.
func (s *Session) Commands() *render.Frame { return s.renderer.Frame() }

// FrameCount is the number of ticks run so far.
func (s *Session) FrameCount() int { return s.frame }

// FPS is derived from the last tick's elapsed time.
func (s *Session) FPS() float32 { return s.fps }

// Record encodes the board as it stands.
func (s *Session) Record() string { return chess.EncodeRecord(s.Board) }

// LogicalSize is the fixed logical resolution picking assumes.
func (s *Session) LogicalSize() (int, int) { return s.logicalW, s.logicalH }
