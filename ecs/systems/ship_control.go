package systems

import (
	"meteorfall/ecs"
	"meteorfall/ecs/components"
)

// ShipControlSystem sets the ship's horizontal velocity from its input
// state. Movement itself happens in MovementSystem; BoundsSystem clamps the
// resulting position to the playfield.
type ShipControlSystem struct{}

// NewShipControlSystem creates a ShipControlSystem.
func NewShipControlSystem() *ShipControlSystem {
	return &ShipControlSystem{}
}

// Update applies MoveX * Speed to every controlled ship.
func (s *ShipControlSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ctrls := w.ShipControls()
	vels := w.Velocities()
	inputs := w.Inputs()
	for _, id := range ctrls.Entities() {
		ctrl, ok := ctrls.Get(id).(*components.ShipControl)
		if !ok || ctrl == nil {
			continue
		}
		vel, ok := vels.Get(id).(*components.Velocity)
		if !ok || vel == nil {
			continue
		}
		var moveX float32
		if st, ok := inputs.Get(id).(*components.InputState); ok && st != nil {
			moveX = st.MoveX
		}
		vel.VX = moveX * ctrl.Speed
		vel.VY = 0
	}
}
