package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

const (
	DefaultWindowWidth  = 640
	DefaultWindowHeight = 480
	DefaultWindowTitle  = "Pong"
	DefaultPaddleSpeed  = 8.0
	DefaultBallSpeed    = 5.0
)

// CollisionMode selects how the ball is tested against paddles.
type CollisionMode string

const (
	// CollisionCenter compares centre offsets against the ball's halved
	// size. This is how the game has always played.
	CollisionCenter CollisionMode = "center"
	// CollisionAABB overlaps the full sprite rectangles.
	CollisionAABB CollisionMode = "aabb"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type WindowSpec struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type GameSpec struct {
	Window      WindowSpec    `yaml:"window"`
	ClearColor  *YAMLColor    `yaml:"clear_color"`
	PaddleSpeed float64       `yaml:"paddle_speed"`
	BallSpeed   float64       `yaml:"ball_speed"`
	ExactAngles bool          `yaml:"exact_angles"`
	Collision   CollisionMode `yaml:"collision"`
}

func LoadGameSpec() (*GameSpec, error) {
	spec, err := LoadSpec[GameSpec]("game.yaml")
	if err != nil {
		return nil, err
	}
	spec.applyDefaults()
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: game.yaml: %w", err)
	}
	return &spec, nil
}

func (s *GameSpec) applyDefaults() {
	if s.Window.Width == 0 {
		s.Window.Width = DefaultWindowWidth
	}
	if s.Window.Height == 0 {
		s.Window.Height = DefaultWindowHeight
	}
	if s.Window.Title == "" {
		s.Window.Title = DefaultWindowTitle
	}
	if s.ClearColor == nil {
		s.ClearColor = &YAMLColor{Color: color.Black}
	}
	if s.PaddleSpeed == 0 {
		s.PaddleSpeed = DefaultPaddleSpeed
	}
	if s.BallSpeed == 0 {
		s.BallSpeed = DefaultBallSpeed
	}
	if s.Collision == "" {
		s.Collision = CollisionCenter
	}
}

func (s *GameSpec) Validate() error {
	if s.Window.Width < 0 || s.Window.Height < 0 {
		return fmt.Errorf("window size %dx%d must not be negative", s.Window.Width, s.Window.Height)
	}
	switch s.Collision {
	case CollisionCenter, CollisionAABB:
	default:
		return fmt.Errorf("unknown collision mode %q", s.Collision)
	}
	return nil
}

type TransformSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type SpriteSpec struct {
	Image    string `yaml:"image"`
	Rotation int    `yaml:"rotation"`
	// Width and Height override the image's native size when non-zero.
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type ControlsSpec struct {
	Up   string `yaml:"up"`
	Down string `yaml:"down"`
}

type RenderLayerSpec struct {
	Index int `yaml:"index"`
}

type AudioSpec struct {
	Name   string  `yaml:"name"`
	File   string  `yaml:"file"`
	Volume float64 `yaml:"volume"`
}

// PaddleSpec describes a player paddle. A zero transform.y centres the paddle
// vertically in the window.
type PaddleSpec struct {
	Name        string          `yaml:"name"`
	Transform   TransformSpec   `yaml:"transform"`
	Sprite      SpriteSpec      `yaml:"sprite"`
	Controls    ControlsSpec    `yaml:"controls"`
	RenderLayer RenderLayerSpec `yaml:"render_layer"`
}

func LoadPaddleSpec(filename string) (*PaddleSpec, error) {
	spec, err := LoadSpec[PaddleSpec](filename)
	if err != nil {
		return nil, err
	}
	if spec.Sprite.Image == "" {
		return nil, fmt.Errorf("prefabs: %s: sprite.image is required", filename)
	}
	if spec.Controls.Up == "" || spec.Controls.Down == "" {
		return nil, fmt.Errorf("prefabs: %s: controls.up and controls.down are required", filename)
	}
	return &spec, nil
}

// BallSpec describes the ball. A zero transform centres it in the window.
type BallSpec struct {
	Name        string          `yaml:"name"`
	Transform   TransformSpec   `yaml:"transform"`
	Sprite      SpriteSpec      `yaml:"sprite"`
	RenderLayer RenderLayerSpec `yaml:"render_layer"`
	Audio       []AudioSpec     `yaml:"audio"`
}

func LoadBallSpec() (*BallSpec, error) {
	spec, err := LoadSpec[BallSpec]("ball.yaml")
	if err != nil {
		return nil, err
	}
	if spec.Sprite.Image == "" {
		return nil, fmt.Errorf("prefabs: ball.yaml: sprite.image is required")
	}
	return &spec, nil
}

// YAMLColor accepts "#rrggbb", "#rrggbbaa" or an SVG colour name.
type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	if named, ok := colornames.Map[strings.ToLower(value.Value)]; ok {
		c.Color = named
		return nil
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
