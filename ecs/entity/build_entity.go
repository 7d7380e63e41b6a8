package entity

import (
	"fmt"

	"github.com/milk9111/pong/ecs/component"
	"github.com/milk9111/pong/ecs/render"
	"github.com/milk9111/pong/prefabs"
)

// Options carries the window-level settings every builder needs.
type Options struct {
	Width       float64
	Height      float64
	ExactAngles bool
	LoadImage   render.ImageLoader
}

func (o Options) loader() render.ImageLoader {
	if o.LoadImage != nil {
		return o.LoadImage
	}
	return render.LoadImage
}

func buildSprite(spec prefabs.SpriteSpec, opts Options) (component.Sprite, error) {
	rot, err := component.RotationFromDegrees(spec.Rotation)
	if err != nil {
		return component.Sprite{}, err
	}
	img, err := opts.loader()(spec.Image)
	if err != nil {
		return component.Sprite{}, err
	}
	sprite := component.NewSprite(img, rot)
	if spec.Width > 0 {
		sprite.Width = spec.Width
	}
	if spec.Height > 0 {
		sprite.Height = spec.Height
	}
	if sprite.Width <= 0 || sprite.Height <= 0 {
		return component.Sprite{}, fmt.Errorf("entity: sprite %s has no size", spec.Image)
	}
	sprite.ExactAngle = opts.ExactAngles
	return sprite, nil
}
