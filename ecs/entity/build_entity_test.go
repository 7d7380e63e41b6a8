package entity

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/pong/ecs"
	"github.com/milk9111/pong/ecs/component"
	"github.com/milk9111/pong/prefabs"
)

// noImage stands in for the GPU loader; sizes come from the spec overrides.
func noImage(string) (*ebiten.Image, error) { return nil, nil }

func testOptions() Options {
	return Options{Width: 640, Height: 480, LoadImage: noImage}
}

func paddleSpec() *prefabs.PaddleSpec {
	return &prefabs.PaddleSpec{
		Name:      "player1",
		Transform: prefabs.TransformSpec{X: 20},
		Sprite:    prefabs.SpriteSpec{Image: "paddle.png", Width: 24, Height: 104},
		Controls:  prefabs.ControlsSpec{Up: "W", Down: "S"},
	}
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		in      string
		want    ebiten.Key
		wantErr bool
	}{
		{"W", ebiten.KeyW, false},
		{"s", ebiten.KeyS, false},
		{"ArrowUp", ebiten.KeyArrowUp, false},
		{" arrowdown ", ebiten.KeyArrowDown, false},
		{"F13", 0, true},
	}

	for _, tc := range tests {
		got, err := ParseKey(tc.in)
		if (err != nil) != tc.wantErr {
			t.Fatalf("ParseKey(%q) err = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
		if !tc.wantErr && got != tc.want {
			t.Fatalf("ParseKey(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestBuildPaddle(t *testing.T) {
	w := ecs.NewWorld()
	e, err := BuildPaddle(w, paddleSpec(), 8, testOptions())
	if err != nil {
		t.Fatalf("BuildPaddle: %v", err)
	}

	tr, ok := ecs.Get(w, e, component.TransformComponent)
	if !ok || tr.X != 20 || tr.Y != 240 {
		t.Fatalf("expected paddle at (20,240), got %+v", tr)
	}
	p, ok := ecs.Get(w, e, component.PaddleComponent)
	if !ok || p.Up != ebiten.KeyW || p.Down != ebiten.KeyS || p.Speed != 8 {
		t.Fatalf("unexpected paddle control %+v", p)
	}
	if !ecs.Has(w, e, component.PaddleTagComponent) {
		t.Fatalf("expected paddle tag")
	}
	if ecs.Has(w, e, component.VelocityComponent) {
		t.Fatalf("paddles do not carry velocity")
	}
	s, _ := ecs.Get(w, e, component.SpriteComponent)
	if s.Width != 24 || s.Height != 104 || s.Rotation != component.Rotation0 {
		t.Fatalf("unexpected sprite %+v", s)
	}
}

func TestBuildPaddleKeepsExplicitY(t *testing.T) {
	w := ecs.NewWorld()
	spec := paddleSpec()
	spec.Transform.Y = 100
	e, err := BuildPaddle(w, spec, 8, testOptions())
	if err != nil {
		t.Fatalf("BuildPaddle: %v", err)
	}
	tr, _ := ecs.Get(w, e, component.TransformComponent)
	if tr.Y != 100 {
		t.Fatalf("expected y 100, got %v", tr.Y)
	}
}

func TestBuildPaddleErrors(t *testing.T) {
	loadErr := errors.New("boom")
	tests := []struct {
		name   string
		mutate func(*prefabs.PaddleSpec, *Options)
	}{
		{"unknown key", func(s *prefabs.PaddleSpec, _ *Options) { s.Controls.Up = "Hyper" }},
		{"bad rotation", func(s *prefabs.PaddleSpec, _ *Options) { s.Sprite.Rotation = 45 }},
		{"no size", func(s *prefabs.PaddleSpec, _ *Options) { s.Sprite.Width, s.Sprite.Height = 0, 0 }},
		{"loader fails", func(_ *prefabs.PaddleSpec, o *Options) {
			o.LoadImage = func(string) (*ebiten.Image, error) { return nil, loadErr }
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := ecs.NewWorld()
			spec := paddleSpec()
			opts := testOptions()
			tc.mutate(spec, &opts)
			if _, err := BuildPaddle(w, spec, 8, opts); err == nil {
				t.Fatalf("expected error")
			}
			if n := len(w.Entities()); n != 0 {
				t.Fatalf("failed build must not leave entities, got %d", n)
			}
		})
	}

	if _, err := BuildPaddle(ecs.NewWorld(), nil, 8, testOptions()); err == nil {
		t.Fatalf("expected error for nil spec")
	}
}

type stubSound struct{}

func (stubSound) Rewind() error       { return nil }
func (stubSound) Play()               {}
func (stubSound) SetVolume(v float64) {}

func TestBuildBall(t *testing.T) {
	w := ecs.NewWorld()
	spec := &prefabs.BallSpec{
		Name:        "ball",
		Sprite:      prefabs.SpriteSpec{Image: "ball.png", Width: 22, Height: 22},
		RenderLayer: prefabs.RenderLayerSpec{Index: component.LayerBall},
		Audio:       []prefabs.AudioSpec{{Name: "bounce", File: "bounce.wav"}},
	}

	e, err := BuildBall(w, spec, 5, stubSound{}, testOptions())
	if err != nil {
		t.Fatalf("BuildBall: %v", err)
	}
	tr, _ := ecs.Get(w, e, component.TransformComponent)
	if tr.X != 320 || tr.Y != 240 {
		t.Fatalf("expected ball centred at (320,240), got %+v", tr)
	}
	v, _ := ecs.Get(w, e, component.VelocityComponent)
	if v.X != -5 || v.Y != 0 {
		t.Fatalf("expected velocity (-5,0), got %+v", v)
	}
	if layer, ok := ecs.Get(w, e, component.RenderLayerComponent); !ok || layer.Index != component.LayerBall {
		t.Fatalf("expected ball on layer %d, got %+v", component.LayerBall, layer)
	}
	snd, ok := ecs.Get(w, e, component.SoundComponent)
	if !ok || snd.Name != "bounce" || snd.Volume != 1 {
		t.Fatalf("unexpected sound %+v ok=%v", snd, ok)
	}

	silent, err := BuildBall(w, spec, 5, nil, testOptions())
	if err != nil {
		t.Fatalf("BuildBall without sound: %v", err)
	}
	if ecs.Has(w, silent, component.SoundComponent) {
		t.Fatalf("nil sound must not attach a component")
	}
}

func TestBuildSpriteExactAngles(t *testing.T) {
	opts := testOptions()
	opts.ExactAngles = true
	s, err := buildSprite(prefabs.SpriteSpec{Image: "p.png", Rotation: 90, Width: 24, Height: 104}, opts)
	if err != nil {
		t.Fatalf("buildSprite: %v", err)
	}
	if !s.ExactAngle || s.Rotation != component.Rotation90 {
		t.Fatalf("unexpected sprite %+v", s)
	}
	if s.EffectiveWidth() != 104 || s.EffectiveHeight() != 24 {
		t.Fatalf("expected swapped size, got %vx%v", s.EffectiveWidth(), s.EffectiveHeight())
	}
}
