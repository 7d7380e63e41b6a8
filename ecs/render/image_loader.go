package render

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/pong/assets"
)

// ImageLoader resolves an image path to a GPU image.
type ImageLoader func(path string) (*ebiten.Image, error)

// LoadImage loads a sprite image from the embedded assets or the filesystem.
// Each path is decoded once; later calls share the cached image.
func LoadImage(path string) (*ebiten.Image, error) {
	if path == "" {
		return nil, fmt.Errorf("render: empty image path")
	}
	if img := CachedImage(path); img != nil {
		return img, nil
	}
	img, err := loadImageFromAssetsOrFS(path)
	if err != nil {
		return nil, err
	}
	CacheImage(path, img)
	return img, nil
}

func loadImageFromAssetsOrFS(path string) (*ebiten.Image, error) {
	img, err := assets.LoadImage(path)
	if err == nil {
		return img, nil
	}
	errs := []error{err}
	for _, p := range candidatePaths(path) {
		b, err := os.ReadFile(p)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		im, _, err := image.Decode(bytes.NewReader(b))
		if err != nil {
			errs = append(errs, fmt.Errorf("decode %s: %w", p, err))
			continue
		}
		return ebiten.NewImageFromImage(im), nil
	}
	return nil, fmt.Errorf("render: load image %s: %w", path, errors.Join(errs...))
}

func candidatePaths(path string) []string {
	return []string{
		path,
		filepath.Join("assets", path),
		filepath.Join("resources", path),
	}
}
