package ecs

// EventType identifies gameplay events pushed by systems and consumed by the
// game loop at the end of each tick.
type EventType string

const (
	// EventShipHit is pushed when a meteor box overlaps the ship box.
	EventShipHit EventType = "ship_hit"
	// EventExplosionDone is pushed when an explosion timer runs out.
	EventExplosionDone EventType = "explosion_done"
	// EventMeteorDodged is pushed when a meteor leaves the bottom of the
	// playfield without hitting the ship.
	EventMeteorDodged EventType = "meteor_dodged"
)

// Event is a typed event payload.
type Event struct {
	Type EventType
	Data any
}

// ShipHitEvent carries the ship position at the moment of impact.
type ShipHitEvent struct {
	Ship      Entity
	Meteor    Entity
	X, Y      float32
	Explosion Entity
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all queued events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}
