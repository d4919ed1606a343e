package systems

import (
	"meteorfall/ecs"
	"meteorfall/ecs/components"
	"meteorfall/obj"
)

// InputSystem mirrors polled input into the ship's InputState component.
type InputSystem struct {
	Input  *obj.Input
	Entity ecs.Entity
}

// NewInputSystem creates an InputSystem for the controlled entity.
func NewInputSystem(input *obj.Input, entity ecs.Entity) *InputSystem {
	return &InputSystem{Input: input, Entity: entity}
}

// Update copies input state into ECS.
func (s *InputSystem) Update(w *ecs.World) {
	if w == nil || s == nil || s.Input == nil || s.Entity.ID == 0 {
		return
	}
	inputs := w.Inputs()
	st, _ := inputs.Get(s.Entity.ID).(*components.InputState)
	if st == nil {
		st = &components.InputState{}
		inputs.Set(s.Entity.ID, st)
	}
	st.MoveX = s.Input.MoveX
}
