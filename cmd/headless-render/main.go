package main

import (
	"errors"
	"flag"
	"fmt"
	"image/png"
	"os"
	"strconv"
	"strings"

	"github.com/gookit/color"

	"github.com/Garsondee/chessjam/internal/chess"
	"github.com/Garsondee/chessjam/internal/config"
	"github.com/Garsondee/chessjam/internal/game"
	"github.com/Garsondee/chessjam/internal/obslog"
	"github.com/Garsondee/chessjam/internal/raster"
)

var (
	styleTitle = color.Style{color.FgCyan, color.OpBold}
	styleOK    = color.Style{color.FgGreen, color.OpBold}
	styleErr   = color.Style{color.FgRed, color.OpBold}
	styleDim   = color.Style{color.FgGray}
)

type options struct {
	configPath string
	moves      string
	camera     string
	hover      string
	out        string
	scale      float64
	noColor    bool
}

func main() {
	var o options
	flag.StringVar(&o.configPath, "config", "", "YAML file overriding the embedded defaults")
	flag.StringVar(&o.moves, "moves", "e2e4,e7e5,g1f3", "comma-separated click script, two squares per move")
	flag.StringVar(&o.camera, "camera", "", "orbit override as angle,tilt in degrees")
	flag.StringVar(&o.hover, "hover", "", "square under the cursor in the final frame (default: last destination)")
	flag.StringVar(&o.out, "out", "frame.png", "PNG output path, empty to skip")
	flag.Float64Var(&o.scale, "scale", 0, "render scale override in (0,1]")
	flag.BoolVar(&o.noColor, "no-color", false, "disable coloured output")
	flag.Parse()

	if o.noColor {
		color.Enable = false
	}
	if err := obslog.InitFromEnv(); err != nil {
		fmt.Println(styleErr.Sprint("error: ") + err.Error())
		os.Exit(1)
	}
	if err := run(o); err != nil {
		fmt.Println(styleErr.Sprint("error: ") + err.Error())
		os.Exit(1)
	}
}

func run(o options) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	if o.scale != 0 {
		cfg.Graphics.RenderScale = float32(o.scale)
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	moves := parseMoves(o.moves)

	opts := []game.SessionOption{
		game.WithConfig(func(c *config.Config) { *c = *cfg }),
	}
	if o.camera != "" {
		angle, tilt, err := parseCamera(o.camera)
		if err != nil {
			return err
		}
		opts = append(opts, game.WithCamera(angle, tilt))
	}
	ts := game.NewTestSession(opts...)

	fmt.Println(styleTitle.Sprint("=== Headless Render ==="))
	fmt.Printf("moves=%d camera=%.1f/%.1f session=%s\n\n",
		len(moves), ts.Session.Camera.Angle, ts.Session.Camera.Tilt, ts.Session.ID)

	if err := ts.PlayScript(moves...); err != nil {
		return err
	}

	hover, err := hoverCell(o.hover, moves)
	if err != nil {
		return err
	}
	if err := ts.Hover(hover); err != nil {
		return err
	}
	if err := ts.Session.Render(); err != nil {
		return err
	}

	fmt.Print(ts.Session.Report())
	fmt.Println()

	shadowed, total := countShadowed(ts.Session.Target())
	fmt.Printf("%s %d of %d target pixels inside a shadow volume (%.1f%%)\n",
		styleDim.Sprint("stencil:"), shadowed, total, percent(shadowed, total))

	if o.out != "" {
		if err := writePNG(o.out, ts); err != nil {
			return err
		}
		fmt.Println(styleOK.Sprint("wrote ") + o.out)
	}
	return nil
}

// parseMoves splits a comma or space separated script, dropping blanks.
func parseMoves(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	out := fields[:0]
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

func parseCamera(s string) (angle, tilt float32, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("camera %q: want angle,tilt", s)
	}
	a, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 32)
	if err != nil {
		return 0, 0, fmt.Errorf("camera angle: %w", err)
	}
	t, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 32)
	if err != nil {
		return 0, 0, fmt.Errorf("camera tilt: %w", err)
	}
	return float32(a), float32(t), nil
}

// hoverCell resolves the -hover square, falling back to the destination of
// the last scripted move, then e4.
func hoverCell(flagValue string, moves []string) (chess.Cell, error) {
	sq := flagValue
	if sq == "" && len(moves) > 0 {
		last := strings.ReplaceAll(moves[len(moves)-1], "-", "")
		if len(last) == 4 {
			sq = last[2:]
		}
	}
	if sq == "" {
		sq = "e4"
	}
	return chess.ParseCell(sq)
}

func countShadowed(t *raster.Target) (shadowed, total int) {
	w, h := t.Size()
	for y := range h {
		for x := range w {
			if t.StencilAt(x, y) != 0 {
				shadowed++
			}
		}
	}
	return shadowed, w * h
}

func percent(n, d int) float64 {
	if d == 0 {
		return 0
	}
	return 100 * float64(n) / float64(d)
}

func writePNG(path string, ts *game.TestSession) (err error) {
	f, err := os.Create(path) // #nosec G304 -- output path from flag
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	if err := png.Encode(f, ts.Session.Image()); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
