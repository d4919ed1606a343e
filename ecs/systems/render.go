package systems

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"meteorfall/ecs"
	"meteorfall/ecs/components"
	"meteorfall/ecs/render"
)

// RenderSystem draws every entity with a Transform and a Sprite, ordered by
// layer. Drawing is a pure read of world state; all mutation happens in the
// update systems.
type RenderSystem struct {
	Registry *render.Registry
}

// NewRenderSystem creates a RenderSystem backed by an image registry.
func NewRenderSystem(registry *render.Registry) *RenderSystem {
	return &RenderSystem{Registry: registry}
}

// Update is a no-op; rendering happens in Draw.
func (s *RenderSystem) Update(w *ecs.World) {}

// Draw renders all sprites, stars first, ship/explosion last.
func (s *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if w == nil || s == nil || screen == nil {
		return
	}
	sprites := w.Sprites()
	trs := w.Transforms()

	type item struct {
		id    int
		layer int
	}
	items := make([]item, 0, sprites.Len())
	for _, id := range sprites.Entities() {
		spr, ok := sprites.Get(id).(*components.Sprite)
		if !ok || spr == nil {
			continue
		}
		if _, ok := trs.Get(id).(*components.Transform); !ok {
			continue
		}
		items = append(items, item{id: id, layer: spr.Layer})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].layer < items[j].layer
	})

	for _, it := range items {
		spr := sprites.Get(it.id).(*components.Sprite)
		tr := trs.Get(it.id).(*components.Transform)
		s.drawSprite(screen, spr, tr)
	}
}

func (s *RenderSystem) drawSprite(screen *ebiten.Image, spr *components.Sprite, tr *components.Transform) {
	img := s.Registry.Get(spr.ImageKey)
	if img == nil {
		return
	}
	bw := img.Bounds().Dx()
	bh := img.Bounds().Dy()
	if bw <= 0 || bh <= 0 {
		return
	}

	op := &ebiten.DrawImageOptions{}
	if spr.Width > 0 && spr.Height > 0 {
		op.GeoM.Scale(float64(spr.Width)/float64(bw), float64(spr.Height)/float64(bh))
	}
	op.GeoM.Translate(float64(tr.X), float64(tr.Y))
	screen.DrawImage(img, op)
}
