package prefabs

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.yaml
var PrefabsFS embed.FS

var diskDir = "prefabs"

// SetDir changes the on-disk directory consulted before the embedded copies.
func SetDir(dir string) {
	if dir == "" {
		return
	}
	diskDir = dir
}

// Dir returns the on-disk prefab directory.
func Dir() string {
	return diskDir
}

// Load returns the on-disk prefab if one exists, else the embedded default.
func Load(name string) ([]byte, error) {
	clean := cleanPrefabPath(name)
	if data, err := os.ReadFile(diskPrefabPath(clean)); err == nil {
		return data, nil
	}
	return PrefabsFS.ReadFile(clean)
}

func cleanPrefabPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "prefabs/"); ok {
		return after
	}
	return s
}

func diskPrefabPath(clean string) string {
	return filepath.Join(diskDir, filepath.FromSlash(clean))
}
