package systems

import (
	"meteorfall/common"
	"meteorfall/ecs"
	"meteorfall/ecs/components"
)

// CollisionSystem tests the ship's box against every active meteor. On the
// first overlap it destroys both, spawns an explosion at the ship's last
// position, and pushes EventShipHit. At most one hit is processed per tick;
// the game only schedules this system while in the playing state.
type CollisionSystem struct {
	ExplosionTicks  int
	ExplosionWidth  float32
	ExplosionHeight float32
}

// NewCollisionSystem creates a CollisionSystem.
func NewCollisionSystem(explosionTicks int, explosionW, explosionH float32) *CollisionSystem {
	return &CollisionSystem{
		ExplosionTicks:  explosionTicks,
		ExplosionWidth:  explosionW,
		ExplosionHeight: explosionH,
	}
}

// Update runs the ship-vs-meteor overlap scan.
func (s *CollisionSystem) Update(w *ecs.World) {
	if w == nil || s == nil {
		return
	}
	trs := w.Transforms()
	ctrls := w.ShipControls()
	meteors := w.Meteors()

	for _, shipID := range ctrls.Entities() {
		ctrl, ok := ctrls.Get(shipID).(*components.ShipControl)
		if !ok || ctrl == nil {
			continue
		}
		shipTr, ok := trs.Get(shipID).(*components.Transform)
		if !ok || shipTr == nil {
			continue
		}
		shipBox := common.Rect{X: shipTr.X, Y: shipTr.Y, Width: ctrl.Width, Height: ctrl.Height}

		for _, meteorID := range meteors.Entities() {
			m, ok := meteors.Get(meteorID).(*components.Meteor)
			if !ok || m == nil {
				continue
			}
			mTr, ok := trs.Get(meteorID).(*components.Transform)
			if !ok || mTr == nil {
				continue
			}
			meteorBox := common.Rect{X: mTr.X, Y: mTr.Y, Width: m.Width, Height: m.Height}
			if !shipBox.Intersects(&meteorBox) {
				continue
			}

			hitX, hitY := shipTr.X, shipTr.Y
			ship := w.EntityByID(shipID)
			meteor := w.EntityByID(meteorID)
			w.DestroyEntity(ship)
			w.DestroyEntity(meteor)
			explosion := s.spawnExplosion(w, hitX, hitY)
			w.Events().Push(ecs.Event{Type: ecs.EventShipHit, Data: ecs.ShipHitEvent{
				Ship:      ship,
				Meteor:    meteor,
				X:         hitX,
				Y:         hitY,
				Explosion: explosion,
			}})
			// First overlap wins; no further meteors are checked this tick.
			return
		}
	}
}

func (s *CollisionSystem) spawnExplosion(w *ecs.World, x, y float32) ecs.Entity {
	e := w.CreateEntity()
	w.Transforms().Set(e.ID, &components.Transform{X: x, Y: y})
	w.Sprites().Set(e.ID, &components.Sprite{
		ImageKey: "explosion.png",
		Width:    s.ExplosionWidth,
		Height:   s.ExplosionHeight,
		Layer:    2,
	})
	w.Explosions().Set(e.ID, &components.Explosion{Remaining: s.ExplosionTicks})
	return e
}
