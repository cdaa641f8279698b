package game

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/Garsondee/chessjam/internal/chess"
	"github.com/Garsondee/chessjam/internal/config"
	"github.com/Garsondee/chessjam/internal/mesh"
	"github.com/Garsondee/chessjam/internal/obslog"
)

// Game is the ebiten shell around a Session. It polls input, runs the
// session's tick and render inside Update, and only presents in Draw.
type Game struct {
	cfg    *config.Config
	oracle chess.MoveOracle
	lib    *mesh.Library

	session  *Session
	poller   Poller
	hud      HUD
	sceneImg *ebiten.Image
	dirty    bool
	last     time.Time
	restarts int
}

// New builds the mesh library once and starts the first session.
func New(cfg *config.Config, oracle chess.MoveOracle) *Game {
	g := &Game{
		cfg:    cfg,
		oracle: oracle,
		lib:    mesh.NewLibrary(cfg.Light.KeyDir.Vec(), cfg.Shadow.Extrude),
		poller: Poller{
			ScrollScale: cfg.Input.ScrollScale,
			DragScale:   cfg.Input.DragScale,
		},
	}
	g.session = NewSession(cfg, oracle, g.lib)
	g.last = time.Now()
	return g
}

// Session returns the running session.
func (g *Game) Session() *Session { return g.session }

// Restarts counts how many times the session was rebuilt.
func (g *Game) Restarts() int { return g.restarts }

// Update runs one frame. Invariant violations end the game with an error;
// Escape or closing the window ends it with ebiten.Termination.
func (g *Game) Update() error {
	now := time.Now()
	dt := float32(now.Sub(g.last).Seconds())
	g.last = now

	sig, err := g.session.Tick(g.poller.Poll(), dt)
	if err != nil {
		obslog.L().Error("frame aborted", zap.Error(err))
		return err
	}
	switch sig {
	case SignalQuit:
		return ebiten.Termination
	case SignalRestart:
		g.restart()
		return nil
	case SignalContinue:
	}

	if err := g.session.Render(); err != nil {
		obslog.L().Error("render failed", zap.Error(err))
		return fmt.Errorf("render: %w", err)
	}
	g.dirty = true
	return nil
}

// restart replaces the session with a fresh one: board, camera, timers and
// logs all start over. Meshes are kept.
func (g *Game) restart() {
	g.restarts++
	g.session = NewSession(g.cfg, g.oracle, g.lib)
	g.dirty = false
	g.last = time.Now()
}

func (g *Game) Draw(screen *ebiten.Image) {
	img := g.session.Image()
	if g.sceneImg == nil {
		g.sceneImg = ebiten.NewImage(img.Rect.Dx(), img.Rect.Dy())
	}
	if g.dirty {
		g.sceneImg.WritePixels(img.Pix)
		g.dirty = false
	}

	// Scale the render-resolution frame up to the logical screen.
	w, h := g.session.LogicalSize()
	opts := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
	opts.GeoM.Scale(float64(w)/float64(img.Rect.Dx()), float64(h)/float64(img.Rect.Dy()))
	screen.DrawImage(g.sceneImg, opts)

	g.hud.Draw(screen, g.session)
}

// Layout keeps a fixed logical resolution; ebiten letterboxes the window
// around it, so the picker's fixed aspect holds.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.session.LogicalSize()
}
