// Package config loads the YAML configuration: embedded defaults overlaid
// by an optional user file.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	yaml "gopkg.in/yaml.v3"
)

// EnvPath names the environment variable holding an override file path.
const EnvPath = "CHESSJAM_CONFIG"

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

//go:embed default.yaml
var defaultYAML []byte

// Vec3 is a YAML list of three numbers.
type Vec3 [3]float32

// Vec returns the value as an mgl32 vector.
func (v Vec3) Vec() mgl32.Vec3 { return mgl32.Vec3(v) }

// Vec4 is a YAML list of four numbers, used for RGBA colours in [0,1].
type Vec4 [4]float32

// Vec returns the value as an mgl32 vector.
func (v Vec4) Vec() mgl32.Vec4 { return mgl32.Vec4(v) }

// Camera is the initial orbit and the field of view in turns.
type Camera struct {
	FOV      float32 `yaml:"fov"`
	Distance float32 `yaml:"distance"`
	Angle    float32 `yaml:"angle"`
	Tilt     float32 `yaml:"tilt"`
}

// Input scales wheel and drag deltas into orbit degrees per second.
type Input struct {
	ScrollScale float32 `yaml:"scroll_scale"`
	DragScale   float32 `yaml:"drag_scale"`
}

// Light holds the three directional lights, ambient and specular terms.
type Light struct {
	KeyDir        Vec3    `yaml:"key_dir"`
	KeyColor      Vec3    `yaml:"key_color"`
	FillDir       Vec3    `yaml:"fill_dir"`
	FillColor     Vec3    `yaml:"fill_color"`
	BackDir       Vec3    `yaml:"back_dir"`
	BackColor     Vec3    `yaml:"back_color"`
	AmbColor      Vec3    `yaml:"amb_color"`
	SpecularColor Vec3    `yaml:"specular_color"`
	SpecularPower float32 `yaml:"specular_power"`
}

// Shadow holds the light colours used inside shadow volumes and the extrusion length.
type Shadow struct {
	KeyColor  Vec3    `yaml:"key_color"`
	FillColor Vec3    `yaml:"fill_color"`
	BackColor Vec3    `yaml:"back_color"`
	AmbColor  Vec3    `yaml:"amb_color"`
	Extrude   float32 `yaml:"extrude"`
}

// Colors are the tile, piece, highlight and sky colours.
type Colors struct {
	Black    Vec4 `yaml:"black"`
	White    Vec4 `yaml:"white"`
	Grey     Vec4 `yaml:"grey"`
	Selected Vec4 `yaml:"selected"`
	Cursor   Vec4 `yaml:"cursor"`
	Dest     Vec4 `yaml:"dest"`
	Sky      Vec4 `yaml:"sky"`
}

// Graphics sets the window resolution and the offscreen render target.
type Graphics struct {
	Resolution    [2]int  `yaml:"resolution"`
	RenderScale   float32 `yaml:"render_scale"`
	Multisampling int     `yaml:"multisampling"`
	VSync         bool    `yaml:"vsync"`
}

// Text toggles HUD overlays.
type Text struct {
	TurnLabel bool `yaml:"turn_label"`
	Timesheet bool `yaml:"timesheet"`
}

// Config is the full configuration tree.
type Config struct {
	Camera   Camera   `yaml:"camera"`
	Input    Input    `yaml:"input"`
	Light    Light    `yaml:"light"`
	Shadow   Shadow   `yaml:"shadow"`
	Colors   Colors   `yaml:"colors"`
	Graphics Graphics `yaml:"graphics"`
	Text     Text     `yaml:"text"`
}

// Default returns the embedded configuration.
func Default() (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(defaultYAML, &c); err != nil {
		return nil, fmt.Errorf("parse embedded config: %w", err)
	}
	return &c, nil
}

// Load returns the defaults overlaid with the file at path. An empty path
// falls back to $CHESSJAM_CONFIG; if that is empty too, defaults are used.
func Load(path string) (*Config, error) {
	c, err := Default()
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(path) == "" {
		path = os.Getenv(EnvPath)
	}
	if strings.TrimSpace(path) != "" {
		raw, err := os.ReadFile(path) // #nosec G304 -- user-supplied config path
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := c.Overlay(raw); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Overlay decodes YAML onto c; keys absent from raw keep their values.
func (c *Config) Overlay(raw []byte) error {
	return yaml.Unmarshal(raw, c)
}

// Validate checks the values the core relies on.
func (c *Config) Validate() error {
	var problems []string
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 0.5 {
		problems = append(problems, "camera.fov must be in (0, 0.5)")
	}
	if c.Camera.Distance <= 0 {
		problems = append(problems, "camera.distance must be positive")
	}
	for name, d := range map[string]Vec3{
		"light.key_dir":  c.Light.KeyDir,
		"light.fill_dir": c.Light.FillDir,
		"light.back_dir": c.Light.BackDir,
	} {
		if d.Vec().Len() == 0 {
			problems = append(problems, name+" must be non-zero")
		}
	}
	if c.Light.KeyDir[1] >= 0 {
		problems = append(problems, "light.key_dir must point downward")
	}
	if c.Shadow.Extrude <= 0 {
		problems = append(problems, "shadow.extrude must be positive")
	}
	if c.Graphics.Resolution[0] <= 0 || c.Graphics.Resolution[1] <= 0 {
		problems = append(problems, "graphics.resolution must be positive")
	}
	if c.Graphics.RenderScale <= 0 || c.Graphics.RenderScale > 1 {
		problems = append(problems, "graphics.render_scale must be in (0, 1]")
	}
	if c.Graphics.Multisampling < 1 || c.Graphics.Multisampling > 4 {
		problems = append(problems, "graphics.multisampling must be 1..4")
	}
	if len(problems) == 0 {
		return nil
	}
	slices.Sort(problems)
	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
}
