package assets

import (
	"bytes"
	"image"
	"image/draw"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"
)

// PlaceholderColor is the fill used when an asset cannot be loaded. Magenta
// is visually distinct so a missing file is obvious without failing the game.
var PlaceholderColor = colornames.Magenta

// LoadImageFile loads the image at path, substituting a solid-color
// placeholder of the requested dimensions on any read or decode failure. It
// never returns an error; a missing asset must not stop the game.
func LoadImageFile(path string, width, height int) *ebiten.Image {
	return ebiten.NewImageFromImage(decodeOrPlaceholder(path, width, height))
}

// decodeOrPlaceholder is the pure decode stage of LoadImageFile, split out so
// the fallback behavior is testable without a graphics context.
func decodeOrPlaceholder(path string, width, height int) image.Image {
	b, err := os.ReadFile(path)
	if err != nil {
		log.Printf("assets: read %s: %v, using placeholder", path, err)
		return placeholder(width, height)
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		log.Printf("assets: decode %s: %v, using placeholder", path, err)
		return placeholder(width, height)
	}
	return img
}

func placeholder(width, height int) image.Image {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(PlaceholderColor), image.Point{}, draw.Src)
	return img
}
