package systems

import (
	"meteorfall/ecs"
	"meteorfall/ecs/components"
)

// MovementSystem advances every entity by its velocity, one tick at a time.
type MovementSystem struct{}

// NewMovementSystem creates a MovementSystem.
func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

// Update integrates positions.
func (s *MovementSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	vels := w.Velocities()
	trs := w.Transforms()
	for _, id := range vels.Entities() {
		vel, ok := vels.Get(id).(*components.Velocity)
		if !ok || vel == nil {
			continue
		}
		tr, ok := trs.Get(id).(*components.Transform)
		if !ok || tr == nil {
			continue
		}
		tr.X += vel.VX
		tr.Y += vel.VY
	}
}
