package component

import "github.com/hajimehoshi/ebiten/v2"

// Paddle binds a pair of keys to vertical movement. Speed is applied once per
// frame a key is held.
type Paddle struct {
	Up    ebiten.Key
	Down  ebiten.Key
	Speed float64
}

var PaddleComponent = NewComponent[Paddle]()
