package component

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Rotation is one of the four fixed orientations a sprite can be drawn in.
type Rotation int

const (
	Rotation0 Rotation = iota
	Rotation90
	Rotation180
	Rotation270
)

// RotationFromDegrees maps 0, 90, 180 and 270 to a Rotation.
func RotationFromDegrees(deg int) (Rotation, error) {
	switch deg {
	case 0:
		return Rotation0, nil
	case 90:
		return Rotation90, nil
	case 180:
		return Rotation180, nil
	case 270:
		return Rotation270, nil
	}
	return Rotation0, fmt.Errorf("component: unsupported rotation %d", deg)
}

func (r Rotation) Degrees() int {
	return int(r) * 90
}

// Swapped reports whether width and height trade places in this orientation.
func (r Rotation) Swapped() bool {
	return r == Rotation90 || r == Rotation270
}

// DrawAngle returns the rotation in radians using the two-decimal constants
// the game has always drawn with. They are close to, but not exactly,
// multiples of pi/2.
func (r Rotation) DrawAngle() float64 {
	switch r {
	case Rotation90:
		return 1.57
	case Rotation180:
		return 3.14
	case Rotation270:
		return 4.71
	default:
		return 0.0
	}
}

// ExactAngle returns the rotation as an exact multiple of pi/2.
func (r Rotation) ExactAngle() float64 {
	return float64(r) * math.Pi / 2
}

func (r Rotation) String() string {
	return fmt.Sprintf("%d°", r.Degrees())
}

// Sprite is a drawable image plus the orientation it is drawn in. Width and
// Height hold the native image size so geometry does not depend on the image
// itself.
type Sprite struct {
	Image      *ebiten.Image
	Width      float64
	Height     float64
	Rotation   Rotation
	ExactAngle bool
}

// NewSprite captures the native size of img.
func NewSprite(img *ebiten.Image, rot Rotation) Sprite {
	s := Sprite{Image: img, Rotation: rot}
	if img != nil {
		b := img.Bounds()
		s.Width = float64(b.Dx())
		s.Height = float64(b.Dy())
	}
	return s
}

func (s Sprite) EffectiveWidth() float64 {
	if s.Rotation.Swapped() {
		return s.Height
	}
	return s.Width
}

func (s Sprite) EffectiveHeight() float64 {
	if s.Rotation.Swapped() {
		return s.Width
	}
	return s.Height
}

// Angle is the draw rotation in radians.
func (s Sprite) Angle() float64 {
	if s.ExactAngle {
		return s.Rotation.ExactAngle()
	}
	return s.Rotation.DrawAngle()
}

// Origin is the pivot the sprite is rotated about and drawn centred on.
func (s Sprite) Origin() (float64, float64) {
	return s.EffectiveWidth() * 0.5, s.EffectiveHeight() * 0.5
}

var SpriteComponent = NewComponent[Sprite]()
