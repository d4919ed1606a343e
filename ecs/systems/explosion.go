package systems

import (
	"meteorfall/ecs"
	"meteorfall/ecs/components"
)

// ExplosionSystem counts down explosion timers. When one expires the entity
// is removed and EventExplosionDone is pushed so the game can move to the
// game-over state.
type ExplosionSystem struct{}

// NewExplosionSystem creates an ExplosionSystem.
func NewExplosionSystem() *ExplosionSystem {
	return &ExplosionSystem{}
}

// Update advances timers.
func (s *ExplosionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	explosions := w.Explosions()
	var done []int
	for _, id := range explosions.Entities() {
		ex, ok := explosions.Get(id).(*components.Explosion)
		if !ok || ex == nil {
			continue
		}
		ex.Remaining--
		if ex.Remaining <= 0 {
			done = append(done, id)
		}
	}
	for _, id := range done {
		w.DestroyEntity(w.EntityByID(id))
		w.Events().Push(ecs.Event{Type: ecs.EventExplosionDone})
	}
}
