package render

import (
	"path"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
)

// imageCache holds every sprite image decoded this run. Both paddles and the
// ball reference their image by path in the prefabs, so the key is the
// cleaned slash path: "./ballBlue.png" and "ballBlue.png" share one image.
var imageCache = map[string]*ebiten.Image{}

func cacheKey(p string) string {
	if p == "" {
		return ""
	}
	return path.Clean(filepath.ToSlash(p))
}

// CacheImage remembers img under the cleaned form of p.
func CacheImage(p string, img *ebiten.Image) {
	key := cacheKey(p)
	if key == "" || img == nil {
		return
	}
	imageCache[key] = img
}

// CachedImage returns the image cached for p, or nil.
func CachedImage(p string) *ebiten.Image {
	key := cacheKey(p)
	if key == "" {
		return nil
	}
	return imageCache[key]
}
