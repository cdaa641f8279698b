package game

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input is the per-frame input snapshot the session consumes. Booleans are
// edge-triggered: true only on the frame the key or button went down.
type Input struct {
	Close           bool // window close requested
	Escape          bool
	Restart         bool // R with Meta or Ctrl held
	Select          bool // left button pressed
	CopyRecord      bool
	ToggleTimesheet bool
	ToggleInspector bool

	// Cursor position in logical pixels.
	CursorX, CursorY float32

	// Orbit is the camera motion for this frame, in degrees per second:
	// x drives the angle and y the tilt.
	Orbit mgl32.Vec2
}

// Poller turns ebiten's raw input state into Input snapshots.
type Poller struct {
	ScrollScale float32
	DragScale   float32

	dragging     bool
	lastX, lastY int
}

// Poll reads the current frame's input.
func (p *Poller) Poll() Input {
	cx, cy := ebiten.CursorPosition()
	in := Input{
		Close:           ebiten.IsWindowBeingClosed(),
		Escape:          inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Select:          inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		CopyRecord:      inpututil.IsKeyJustPressed(ebiten.KeyC),
		ToggleTimesheet: inpututil.IsKeyJustPressed(ebiten.KeyH),
		ToggleInspector: inpututil.IsKeyJustPressed(ebiten.KeyI),
		CursorX:         float32(cx),
		CursorY:         float32(cy),
	}
	mod := ebiten.IsKeyPressed(ebiten.KeyMeta) || ebiten.IsKeyPressed(ebiten.KeyControl)
	in.Restart = mod && inpututil.IsKeyJustPressed(ebiten.KeyR)

	wx, wy := ebiten.Wheel()
	in.Orbit = mgl32.Vec2{float32(wx), float32(wy)}.Mul(p.ScrollScale)

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		if p.dragging {
			d := mgl32.Vec2{float32(cx - p.lastX), float32(cy - p.lastY)}
			in.Orbit = in.Orbit.Add(d.Mul(p.DragScale))
		}
		p.dragging = true
		p.lastX, p.lastY = cx, cy
	} else {
		p.dragging = false
	}
	return in
}
