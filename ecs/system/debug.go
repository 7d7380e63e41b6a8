package system

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/pong/ecs"
	"github.com/milk9111/pong/ecs/component"
	"golang.org/x/image/colornames"
)

// DebugSystem overlays collision boxes and frame stats.
type DebugSystem struct {
	frames int
}

func NewDebugSystem() *DebugSystem {
	return &DebugSystem{}
}

func (d *DebugSystem) Update(w *ecs.World) {
	if d == nil {
		return
	}
	d.frames++
}

func (d *DebugSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if d == nil || w == nil || screen == nil {
		return
	}

	for _, e := range w.Query(component.TransformComponent.Kind(), component.SpriteComponent.Kind()) {
		if fp, ok := ecs.Footprint(w, e); ok {
			vector.StrokeRect(screen, float32(fp.X), float32(fp.Y), float32(fp.Width), float32(fp.Height), 1, colornames.Lime, false)
		}
		// The collision reach is drawn as a box of twice the reach around
		// the centre, which is what the centre-offset test accepts.
		if b, ok := ecs.Bounds(w, e); ok {
			vector.StrokeRect(screen, float32(b.X-b.Width), float32(b.Y-b.Height), float32(b.Width*2), float32(b.Height*2), 1, colornames.Orangered, false)
		}
	}

	ebitenutil.DebugPrint(screen, d.Status(w))
}

// Status renders the overlay text.
func (d *DebugSystem) Status(w *ecs.World) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Frames: %d    FPS: %.2f    TPS: %.2f\n", d.frames, ebiten.ActualFPS(), ebiten.ActualTPS())
	if ball, ok := w.First(component.BallTagComponent.Kind()); ok {
		t, _ := ecs.Get(w, ball, component.TransformComponent)
		v, _ := ecs.Get(w, ball, component.VelocityComponent)
		if t != nil && v != nil {
			fmt.Fprintf(&b, "Ball %s: (%.1f, %.1f)  v=(%.1f, %.1f)\n", ball, t.X, t.Y, v.X, v.Y)
		}
	}
	return b.String()
}
