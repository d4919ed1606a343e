package systems

import (
	"log"
	"math/rand"

	"meteorfall/ecs"
	"meteorfall/ecs/components"
	"meteorfall/tuning"
)

// MeteorSpawnSystem introduces new meteors on a tick-based interval. The
// interval only ever shrinks while a run is in progress: each recomputed
// value is clamped to min(previous, computed) and floored at the tuned
// minimum, so neither the builtin ramp nor a difficulty script can make the
// game easier over time.
type MeteorSpawnSystem struct {
	Rng            *rand.Rand
	PlayfieldWidth float32
	Score          *int

	meteor tuning.MeteorSpec
	spawn  tuning.SpawnSpec
	curve  tuning.Curve

	elapsed  int
	accum    float64
	interval float64
}

// NewMeteorSpawnSystem creates a spawner. curve may be nil, in which case the
// builtin ramp from the spawn spec is used.
func NewMeteorSpawnSystem(rng *rand.Rand, playfieldWidth float32, score *int, meteor tuning.MeteorSpec, spawn tuning.SpawnSpec, curve tuning.Curve) *MeteorSpawnSystem {
	s := &MeteorSpawnSystem{
		Rng:            rng,
		PlayfieldWidth: playfieldWidth,
		Score:          score,
		meteor:         meteor,
		spawn:          spawn,
		curve:          curve,
	}
	if s.curve == nil {
		s.curve = spawn.Ramp()
	}
	s.interval = spawn.StartIntervalTicks
	return s
}

// Retune applies new tuning mid-run. The monotonic clamp survives a retune:
// the effective interval only takes the new start value when that is lower
// than the current one.
func (s *MeteorSpawnSystem) Retune(meteor tuning.MeteorSpec, spawn tuning.SpawnSpec, curve tuning.Curve) {
	if s == nil {
		return
	}
	s.meteor = meteor
	s.spawn = spawn
	s.curve = curve
	if s.curve == nil {
		s.curve = spawn.Ramp()
	}
	if spawn.StartIntervalTicks < s.interval {
		s.interval = spawn.StartIntervalTicks
	}
}

// Interval returns the current effective spawn interval in ticks.
func (s *MeteorSpawnSystem) Interval() float64 {
	return s.interval
}

// Update advances the accumulator and spawns a meteor when it fills.
func (s *MeteorSpawnSystem) Update(w *ecs.World) {
	if w == nil || s == nil || s.Rng == nil {
		return
	}
	s.elapsed++
	s.accum++

	score := 0
	if s.Score != nil {
		score = *s.Score
	}
	target, err := s.curve.Interval(s.elapsed, score)
	if err != nil {
		log.Printf("spawn: difficulty curve: %v, falling back to builtin ramp", err)
		s.curve = s.spawn.Ramp()
		target, _ = s.curve.Interval(s.elapsed, score)
	}
	if target < s.spawn.MinIntervalTicks {
		target = s.spawn.MinIntervalTicks
	}
	if target < s.interval {
		s.interval = target
	}

	if s.accum < s.interval {
		return
	}
	s.accum = 0
	s.spawnMeteor(w)
}

func (s *MeteorSpawnSystem) spawnMeteor(w *ecs.World) {
	x := s.Rng.Float32() * (s.PlayfieldWidth - s.meteor.Width)
	speed := s.meteor.BaseSpeed + s.Rng.Float32()*s.meteor.SpeedVariance

	e := w.CreateEntity()
	w.Transforms().Set(e.ID, &components.Transform{X: x, Y: -s.meteor.Height})
	w.Velocities().Set(e.ID, &components.Velocity{VY: speed})
	w.Sprites().Set(e.ID, &components.Sprite{
		ImageKey: "meteor.png",
		Width:    s.meteor.Width,
		Height:   s.meteor.Height,
		Layer:    1,
	})
	w.Meteors().Set(e.ID, &components.Meteor{Width: s.meteor.Width, Height: s.meteor.Height})
}
