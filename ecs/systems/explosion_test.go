package systems

import (
	"testing"

	"meteorfall/ecs"
	"meteorfall/ecs/components"
)

func TestExplosionTimerExpires(t *testing.T) {
	w := ecs.NewWorld()
	e := w.CreateEntity()
	w.Transforms().Set(e.ID, &components.Transform{X: 100, Y: 500})
	// 1.0s at 60 ticks per second
	w.Explosions().Set(e.ID, &components.Explosion{Remaining: 60})

	sys := NewExplosionSystem()

	for i := 0; i < 59; i++ {
		sys.Update(w)
	}
	if !w.IsAlive(e) {
		t.Fatalf("explosion expired early")
	}
	if evts := w.Events().Drain(); len(evts) != 0 {
		t.Fatalf("events before expiry: %v", evts)
	}

	sys.Update(w)
	if w.IsAlive(e) {
		t.Fatalf("explosion should be removed after 60 ticks")
	}
	evts := w.Events().Drain()
	if len(evts) != 1 || evts[0].Type != ecs.EventExplosionDone {
		t.Fatalf("events = %v, want one EventExplosionDone", evts)
	}

	// further ticks are inert
	sys.Update(w)
	if evts := w.Events().Drain(); len(evts) != 0 {
		t.Fatalf("events after expiry: %v", evts)
	}
}
