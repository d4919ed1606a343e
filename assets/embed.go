package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	_ "image/png"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

//go:embed *.png *.wav
var assetsFS embed.FS

// audioContext is created on first use so importing the package (e.g. from
// tests) does not open an audio device.
var audioContext *audio.Context

// LoadImage loads an embedded asset by assets-relative path.
func LoadImage(path string) (*ebiten.Image, error) {
	b, err := assetsFS.ReadFile(path)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	return ebiten.NewImageFromImage(img), nil
}

// LoadAudioPlayer loads an embedded audio asset and creates a player for it.
func LoadAudioPlayer(path string) (*audio.Player, error) {
	b, err := assetsFS.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(strings.ToLower(path), ".wav") {
		return nil, fmt.Errorf("assets: unsupported audio format %q", path)
	}
	if audioContext == nil {
		audioContext = audio.NewContext(44100)
	}
	stream, err := wav.DecodeWithSampleRate(audioContext.SampleRate(), bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode wav %q: %w", path, err)
	}
	return audioContext.NewPlayer(stream)
}
