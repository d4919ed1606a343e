package render

import (
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"meteorfall/assets"
)

// LoadSprite resolves a sprite key against, in order: a file in assetsDir,
// the embedded defaults, and finally a solid placeholder of the requested
// size. It always returns a usable image.
func LoadSprite(assetsDir, key string, width, height int) *ebiten.Image {
	path := filepath.Join(assetsDir, key)
	if _, err := os.Stat(path); err == nil {
		return assets.LoadImageFile(path, width, height)
	}
	if img, err := assets.LoadImage(key); err == nil {
		return img
	}
	// No file on disk and no embedded default; LoadImageFile falls through
	// to the placeholder.
	return assets.LoadImageFile(path, width, height)
}
