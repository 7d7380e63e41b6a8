package entity

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

var keyNames = map[string]ebiten.Key{
	"w":         ebiten.KeyW,
	"a":         ebiten.KeyA,
	"s":         ebiten.KeyS,
	"d":         ebiten.KeyD,
	"i":         ebiten.KeyI,
	"k":         ebiten.KeyK,
	"arrowup":   ebiten.KeyArrowUp,
	"arrowdown": ebiten.KeyArrowDown,
	"up":        ebiten.KeyArrowUp,
	"down":      ebiten.KeyArrowDown,
}

// ParseKey resolves a prefab key name, case-insensitively.
func ParseKey(name string) (ebiten.Key, error) {
	k, ok := keyNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("entity: unknown key %q", name)
	}
	return k, nil
}
