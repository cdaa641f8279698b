package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/Garsondee/chessjam/internal/chess"
	"github.com/Garsondee/chessjam/internal/raster"
)

func TestParseMoves(t *testing.T) {
	got := parseMoves(" e2e4, e7e5 ,,g1f3 b8c6")
	want := []string{"e2e4", "e7e5", "g1f3", "b8c6"}
	if len(got) != len(want) {
		t.Fatalf("got %q", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %q, want %q", got, want)
		}
	}
	if len(parseMoves("")) != 0 {
		t.Fatalf("empty script should have no moves")
	}
}

func TestParseCamera(t *testing.T) {
	a, tl, err := parseCamera("45, 30.5")
	if err != nil || a != 45 || tl != 30.5 {
		t.Fatalf("got %v %v %v", a, tl, err)
	}
	if _, _, err := parseCamera("45"); err == nil {
		t.Fatalf("expected error for a single value")
	}
	if _, _, err := parseCamera("x,1"); err == nil {
		t.Fatalf("expected error for a non-number")
	}
}

func TestHoverCellFallbacks(t *testing.T) {
	c, err := hoverCell("", []string{"e2e4", "g8-f6"})
	if err != nil || c != (chess.Cell{X: 5, Y: 5}) {
		t.Fatalf("last destination: got %v %v", c, err)
	}
	c, err = hoverCell("", nil)
	if err != nil || c != (chess.Cell{X: 4, Y: 3}) {
		t.Fatalf("default: got %v %v", c, err)
	}
	if _, err := hoverCell("z9", nil); err == nil {
		t.Fatalf("expected error for a bad square")
	}
}

func TestCountShadowed(t *testing.T) {
	tg := raster.NewTarget(4, 2)
	if s, n := countShadowed(tg); s != 0 || n != 8 {
		t.Fatalf("cleared target: %d of %d", s, n)
	}
}

func TestRunWritesPNG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "frame.png")
	err := run(options{
		moves: "e2e4,d7d5,e4d5",
		out:   out,
		scale: 0.125,
	})
	if err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 160 || b.Dy() != 90 {
		t.Fatalf("frame is %dx%d, want 160x90", b.Dx(), b.Dy())
	}
}
