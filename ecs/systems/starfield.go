package systems

import (
	"meteorfall/ecs"
	"meteorfall/ecs/components"
)

// StarfieldSystem wraps background stars back to the top edge once they pass
// the bottom of the playfield. Stars keep their x so the field stays evenly
// spread.
type StarfieldSystem struct {
	Height float32
}

// NewStarfieldSystem creates a StarfieldSystem for a playfield height.
func NewStarfieldSystem(height float32) *StarfieldSystem {
	return &StarfieldSystem{Height: height}
}

// Update wraps stars.
func (s *StarfieldSystem) Update(w *ecs.World) {
	if w == nil || s == nil || s.Height <= 0 {
		return
	}
	stars := w.Stars()
	trs := w.Transforms()
	sprites := w.Sprites()
	for _, id := range stars.Entities() {
		tr, ok := trs.Get(id).(*components.Transform)
		if !ok || tr == nil {
			continue
		}
		var sprH float32
		if spr, ok := sprites.Get(id).(*components.Sprite); ok && spr != nil {
			sprH = spr.Height
		}
		if tr.Y > s.Height {
			tr.Y -= s.Height + sprH
		}
	}
}
