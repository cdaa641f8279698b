package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultValidates(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("embedded defaults invalid: %v", err)
	}
	if c.Graphics.Resolution != [2]int{1280, 720} {
		t.Fatalf("resolution = %v", c.Graphics.Resolution)
	}
	if c.Colors.Sky[3] != 1 {
		t.Fatalf("sky alpha = %v", c.Colors.Sky[3])
	}
}

func TestLoadOverlaysFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "override.yaml")
	body := "camera:\n  tilt: 70\ngraphics:\n  multisampling: 2\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.Camera.Tilt != 70 || c.Graphics.Multisampling != 2 {
		t.Fatalf("override not applied: tilt=%v ms=%d", c.Camera.Tilt, c.Graphics.Multisampling)
	}
	if c.Camera.Distance != 10.5 {
		t.Fatalf("untouched key lost its default: distance=%v", c.Camera.Distance)
	}
}

func TestLoadFromEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "env.yaml")
	if err := os.WriteFile(path, []byte("camera:\n  angle: 45\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvPath, path)
	c, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if c.Camera.Angle != 45 {
		t.Fatalf("angle = %v", c.Camera.Angle)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestValidateRejects(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	c.Camera.FOV = 0
	c.Light.KeyDir = Vec3{0, 1, 0}
	c.Graphics.Multisampling = 9
	err = c.Validate()
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
	for _, want := range []string{"camera.fov", "light.key_dir", "graphics.multisampling"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("error %q does not mention %s", err, want)
		}
	}
}
