package render

import "github.com/hajimehoshi/ebiten/v2"

// Registry caches loaded sprite images by key. It is owned by the game and
// filled once at startup (and again on asset reload).
type Registry struct {
	images map[string]*ebiten.Image
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{images: map[string]*ebiten.Image{}}
}

// Register stores an image by key.
func (r *Registry) Register(key string, img *ebiten.Image) {
	if r == nil || key == "" || img == nil {
		return
	}
	r.images[key] = img
}

// Get returns a cached image by key, or nil.
func (r *Registry) Get(key string) *ebiten.Image {
	if r == nil || key == "" {
		return nil
	}
	return r.images[key]
}
