package main

import (
	"fmt"
	"image/color"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/pong/assets"
	"github.com/milk9111/pong/ecs"
	"github.com/milk9111/pong/ecs/component"
	"github.com/milk9111/pong/ecs/entity"
	"github.com/milk9111/pong/ecs/render"
	"github.com/milk9111/pong/ecs/system"
	"github.com/milk9111/pong/prefabs"
)

var paddlePrefabs = []string{"paddle_left.yaml", "paddle_right.yaml"}

// SoundLoader opens a sound effect by asset path.
type SoundLoader func(path string) (component.SoundPlayer, error)

type Options struct {
	Variant Variant
	Debug   bool
	Mute    bool

	// Keys, LoadImage and LoadSound default to the live keyboard and the
	// embedded assets.
	Keys      system.KeySource
	LoadImage render.ImageLoader
	LoadSound SoundLoader
}

// Game owns the world and the three entities that make up a match. Entities
// a variant does not use stay zero.
type Game struct {
	spec  *prefabs.GameSpec
	world *ecs.World
	keys  system.KeySource

	player1 ecs.Entity
	player2 ecs.Entity
	ball    ecs.Entity

	watcher *prefabs.Watcher
}

// NewGame loads the prefabs and builds the entities for opts.Variant. Any
// image that fails to load aborts construction.
func NewGame(opts Options) (*Game, error) {
	if opts.Variant == "" {
		opts.Variant = VariantFull
	}
	if opts.Keys == nil {
		opts.Keys = system.EbitenKeys{}
	}
	if opts.LoadSound == nil {
		opts.LoadSound = loadSound
	}

	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		return nil, err
	}

	g := &Game{
		spec:  spec,
		world: ecs.NewWorld(),
		keys:  opts.Keys,
	}

	buildOpts := entity.Options{
		Width:       float64(spec.Window.Width),
		Height:      float64(spec.Window.Height),
		ExactAngles: spec.ExactAngles,
		LoadImage:   opts.LoadImage,
	}

	players := []*ecs.Entity{&g.player1, &g.player2}
	for i := 0; i < opts.Variant.paddles(); i++ {
		ps, err := prefabs.LoadPaddleSpec(paddlePrefabs[i])
		if err != nil {
			return nil, err
		}
		e, err := entity.BuildPaddle(g.world, ps, spec.PaddleSpeed, buildOpts)
		if err != nil {
			return nil, err
		}
		*players[i] = e
	}

	if opts.Variant.hasBall() {
		bs, err := prefabs.LoadBallSpec()
		if err != nil {
			return nil, err
		}
		var snd component.SoundPlayer
		if !opts.Mute && len(bs.Audio) > 0 {
			snd, err = opts.LoadSound(bs.Audio[0].File)
			if err != nil {
				log.Warn("bounce sound unavailable, continuing silently", "file", bs.Audio[0].File, "err", err)
				snd = nil
			}
		}
		g.ball, err = entity.BuildBall(g.world, bs, spec.BallSpeed, snd, buildOpts)
		if err != nil {
			return nil, err
		}
	}

	g.world.AddSystem(system.NewPaddleInputSystem(opts.Keys))
	g.world.AddSystem(system.NewCollisionSystem(spec.Collision))
	g.world.AddSystem(system.NewMovementSystem())
	g.world.AddSystem(system.NewAudioSystem(opts.Mute))
	g.world.AddSystem(system.NewRenderSystem())
	if opts.Debug {
		g.world.AddSystem(system.NewDebugSystem())
	}

	log.Debug("game ready",
		"variant", opts.Variant,
		"entities", len(g.world.Entities()),
		"collision", spec.Collision,
		"exact_angles", spec.ExactAngles,
	)
	return g, nil
}

func loadSound(path string) (component.SoundPlayer, error) {
	p, err := assets.LoadAudioPlayer(path)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Watch reloads game.yaml from dir whenever it changes on disk.
func (g *Game) Watch(dir string) error {
	w, err := prefabs.NewWatcher(dir)
	if err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	g.watcher = w
	log.Info("watching prefabs", "dir", dir)
	return nil
}

func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}

func (g *Game) Update() error {
	if g.keys.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.pollReload()
	g.world.Update()
	return nil
}

func (g *Game) pollReload() {
	for _, err := range g.watcher.PollErrors() {
		log.Error("watch prefabs", "err", err)
	}
	changed := g.watcher.Poll()
	if !slices.Contains(changed, "game.yaml") {
		return
	}
	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		log.Error("reload game.yaml", "err", err)
		return
	}
	g.applyTuning(spec)
}

// applyTuning takes the live-tunable values from spec. Everything else in
// game.yaml needs a restart.
func (g *Game) applyTuning(spec *prefabs.GameSpec) {
	g.spec.PaddleSpeed = spec.PaddleSpeed
	ecs.ForEach(g.world, component.PaddleComponent, func(_ ecs.Entity, p *component.Paddle) {
		p.Speed = spec.PaddleSpeed
	})
	log.Info("reloaded game.yaml", "paddle_speed", spec.PaddleSpeed)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.clearColor())
	g.world.Draw(screen)
}

func (g *Game) clearColor() color.Color {
	if g.spec.ClearColor == nil || g.spec.ClearColor.Color == nil {
		return color.Black
	}
	return g.spec.ClearColor.Color
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.spec.Window.Width, g.spec.Window.Height
}
