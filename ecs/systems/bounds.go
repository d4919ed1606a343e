package systems

import (
	"meteorfall/common"
	"meteorfall/ecs"
	"meteorfall/ecs/components"
)

// BoundsSystem keeps the ship inside the playfield and removes meteors that
// have fallen past the bottom edge. Every culled meteor counts as a dodge.
type BoundsSystem struct {
	Height float32
}

// NewBoundsSystem creates a BoundsSystem for a playfield height.
func NewBoundsSystem(height float32) *BoundsSystem {
	return &BoundsSystem{Height: height}
}

// Update clamps ships and culls off-screen meteors.
func (s *BoundsSystem) Update(w *ecs.World) {
	if w == nil || s == nil {
		return
	}
	trs := w.Transforms()

	ctrls := w.ShipControls()
	for _, id := range ctrls.Entities() {
		ctrl, ok := ctrls.Get(id).(*components.ShipControl)
		if !ok || ctrl == nil {
			continue
		}
		tr, ok := trs.Get(id).(*components.Transform)
		if !ok || tr == nil {
			continue
		}
		tr.X = common.Clamp(tr.X, ctrl.MinX, ctrl.MaxX)
	}

	meteors := w.Meteors()
	var culled []int
	for _, id := range meteors.Entities() {
		tr, ok := trs.Get(id).(*components.Transform)
		if !ok || tr == nil {
			continue
		}
		if tr.Y > s.Height {
			culled = append(culled, id)
		}
	}
	for _, id := range culled {
		w.DestroyEntity(w.EntityByID(id))
		w.Events().Push(ecs.Event{Type: ecs.EventMeteorDodged})
	}
}
