package systems

import (
	"math/rand"
	"testing"

	"meteorfall/ecs"
	"meteorfall/ecs/components"
	"meteorfall/tuning"
)

func testMeteorSpec() tuning.MeteorSpec {
	return tuning.MeteorSpec{Width: 32, Height: 32, BaseSpeed: 4, SpeedVariance: 2}
}

func TestSpawnCadence(t *testing.T) {
	w := ecs.NewWorld()
	score := 0
	spawn := tuning.SpawnSpec{StartIntervalTicks: 60, MinIntervalTicks: 60, RampPerDodge: 0}
	sys := NewMeteorSpawnSystem(rand.New(rand.NewSource(1)), 800, &score, testMeteorSpec(), spawn, nil)

	ticks := []struct {
		upto int
		want int
	}{
		{59, 0},
		{60, 1},
		{119, 1},
		{120, 2},
	}
	tick := 0
	for _, c := range ticks {
		for ; tick < c.upto; tick++ {
			sys.Update(w)
		}
		if got := w.Meteors().Len(); got != c.want {
			t.Fatalf("after %d ticks: %d meteors, want %d", tick, got, c.want)
		}
	}
}

func TestSpawnPositionWithinPlayfield(t *testing.T) {
	w := ecs.NewWorld()
	score := 0
	spawn := tuning.SpawnSpec{StartIntervalTicks: 1, MinIntervalTicks: 1, RampPerDodge: 0}
	sys := NewMeteorSpawnSystem(rand.New(rand.NewSource(42)), 800, &score, testMeteorSpec(), spawn, nil)

	for i := 0; i < 200; i++ {
		sys.Update(w)
	}
	if w.Meteors().Len() == 0 {
		t.Fatalf("no meteors spawned")
	}
	for _, id := range w.Meteors().Entities() {
		tr := w.Transforms().Get(id).(*components.Transform)
		if tr.X < 0 || tr.X > 800-32 {
			t.Fatalf("meteor x = %v, outside [0, 768]", tr.X)
		}
		if tr.Y != -32 {
			t.Fatalf("meteor y = %v, want -32", tr.Y)
		}
		vel := w.Velocities().Get(id).(*components.Velocity)
		if vel.VY < 4 || vel.VY > 6 {
			t.Fatalf("meteor speed = %v, outside [4, 6]", vel.VY)
		}
	}
}

func TestSpawnDeterministicUnderFixedSeed(t *testing.T) {
	spawn := tuning.SpawnSpec{StartIntervalTicks: 5, MinIntervalTicks: 5, RampPerDodge: 0}

	run := func() []float32 {
		w := ecs.NewWorld()
		score := 0
		sys := NewMeteorSpawnSystem(rand.New(rand.NewSource(7)), 800, &score, testMeteorSpec(), spawn, nil)
		for i := 0; i < 100; i++ {
			sys.Update(w)
		}
		var xs []float32
		for _, id := range w.Meteors().Entities() {
			tr := w.Transforms().Get(id).(*components.Transform)
			xs = append(xs, tr.X)
		}
		return xs
	}

	a, b := run(), run()
	if len(a) == 0 || len(a) != len(b) {
		t.Fatalf("runs spawned %d and %d meteors", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("meteor %d at x=%v vs x=%v, want identical runs", i, a[i], b[i])
		}
	}
}

func TestSpawnIntervalMonotonicNonIncreasing(t *testing.T) {
	cases := []struct {
		name  string
		curve tuning.Curve
	}{
		{"builtin_ramp", nil},
		{"misbehaving_curve", wobbleCurve{}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			score := 0
			spawn := tuning.SpawnSpec{StartIntervalTicks: 60, MinIntervalTicks: 18, RampPerDodge: 0.5}
			sys := NewMeteorSpawnSystem(rand.New(rand.NewSource(3)), 800, &score, testMeteorSpec(), spawn, c.curve)

			prev := sys.Interval()
			for i := 0; i < 600; i++ {
				sys.Update(w)
				score++ // difficulty input only ever grows
				cur := sys.Interval()
				if cur > prev {
					t.Fatalf("tick %d: interval grew from %v to %v", i, prev, cur)
				}
				if cur < spawn.MinIntervalTicks {
					t.Fatalf("tick %d: interval %v below floor %v", i, cur, spawn.MinIntervalTicks)
				}
				prev = cur
			}
			if prev != spawn.MinIntervalTicks {
				t.Fatalf("interval settled at %v, want floor %v", prev, spawn.MinIntervalTicks)
			}
		})
	}
}

func TestRetuneNeverRaisesInterval(t *testing.T) {
	w := ecs.NewWorld()
	score := 0
	spawn := tuning.SpawnSpec{StartIntervalTicks: 60, MinIntervalTicks: 18, RampPerDodge: 0.5}
	sys := NewMeteorSpawnSystem(rand.New(rand.NewSource(3)), 800, &score, testMeteorSpec(), spawn, nil)

	// ramp the interval down to 40 before retuning
	for sys.Interval() > 40 {
		sys.Update(w)
		score++
	}
	got := sys.Interval()

	t.Run("higher_start_keeps_current", func(t *testing.T) {
		sys.Retune(testMeteorSpec(), tuning.SpawnSpec{StartIntervalTicks: 90, MinIntervalTicks: 18, RampPerDodge: 0.5}, nil)
		if sys.Interval() != got {
			t.Fatalf("interval after retune = %v, want unchanged %v", sys.Interval(), got)
		}
	})

	t.Run("lower_start_is_taken", func(t *testing.T) {
		sys.Retune(testMeteorSpec(), tuning.SpawnSpec{StartIntervalTicks: 30, MinIntervalTicks: 18, RampPerDodge: 0.5}, nil)
		if sys.Interval() != 30 {
			t.Fatalf("interval after retune = %v, want 30", sys.Interval())
		}
	})
}

// wobbleCurve tries to raise the interval again; the spawner must clamp it.
type wobbleCurve struct{}

func (wobbleCurve) Interval(elapsedTicks, score int) (float64, error) {
	if elapsedTicks%2 == 0 {
		return 200, nil
	}
	return 60 - float64(score)*0.5, nil
}
