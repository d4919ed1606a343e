package ecs

// System updates a world each frame.
type System interface {
	Update(w *World)
}

// World owns entities, component storage, and the event queue. All mutation
// happens on the game loop's single thread.
type World struct {
	entities entityStore
	events   EventQueue

	transforms *SparseSet
	velocities *SparseSet
	sprites    *SparseSet
	shipCtrls  *SparseSet
	meteors    *SparseSet
	stars      *SparseSet
	explosions *SparseSet
	inputs     *SparseSet
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity invalidates an entity handle and removes all its components.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.destroy(e) {
		return false
	}
	for _, s := range w.allSets() {
		s.Remove(e.ID)
	}
	return true
}

// EntityByID rebuilds the current-generation handle for a slot id. Only
// meaningful for ids taken from a component set, which drop their ids on
// destroy.
func (w *World) EntityByID(id int) Entity {
	if w == nil || id <= 0 || id > len(w.entities.gen) {
		return Entity{}
	}
	return Entity{ID: id, Gen: w.entities.gen[id-1]}
}

// IsAlive reports whether an entity handle is still valid.
func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

func (w *World) allSets() []*SparseSet {
	return []*SparseSet{
		w.Transforms(), w.Velocities(), w.Sprites(), w.ShipControls(),
		w.Meteors(), w.Stars(), w.Explosions(), w.Inputs(),
	}
}

// Transforms returns the transform storage.
func (w *World) Transforms() *SparseSet {
	if w.transforms == nil {
		w.transforms = &SparseSet{}
	}
	return w.transforms
}

// Velocities returns the velocity storage.
func (w *World) Velocities() *SparseSet {
	if w.velocities == nil {
		w.velocities = &SparseSet{}
	}
	return w.velocities
}

// Sprites returns the sprite storage.
func (w *World) Sprites() *SparseSet {
	if w.sprites == nil {
		w.sprites = &SparseSet{}
	}
	return w.sprites
}

// ShipControls returns the ship control storage.
func (w *World) ShipControls() *SparseSet {
	if w.shipCtrls == nil {
		w.shipCtrls = &SparseSet{}
	}
	return w.shipCtrls
}

// Meteors returns the meteor tag storage.
func (w *World) Meteors() *SparseSet {
	if w.meteors == nil {
		w.meteors = &SparseSet{}
	}
	return w.meteors
}

// Stars returns the star tag storage.
func (w *World) Stars() *SparseSet {
	if w.stars == nil {
		w.stars = &SparseSet{}
	}
	return w.stars
}

// Explosions returns the explosion storage.
func (w *World) Explosions() *SparseSet {
	if w.explosions == nil {
		w.explosions = &SparseSet{}
	}
	return w.explosions
}

// Inputs returns the input state storage.
func (w *World) Inputs() *SparseSet {
	if w.inputs == nil {
		w.inputs = &SparseSet{}
	}
	return w.inputs
}
