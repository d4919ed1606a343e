package tuning

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Spec holds all gameplay tuning. Fields left zero or invalid in the YAML
// fall back to the compiled defaults, matching the window env-override
// fallback policy.
type Spec struct {
	Window    WindowSpec    `yaml:"window"`
	Ship      ShipSpec      `yaml:"ship"`
	Meteor    MeteorSpec    `yaml:"meteor"`
	Spawn     SpawnSpec     `yaml:"spawn"`
	Explosion ExplosionSpec `yaml:"explosion"`
	Stars     StarSpec      `yaml:"stars"`

	// DifficultyScript names an optional tengo file that overrides the
	// builtin spawn interval ramp.
	DifficultyScript string `yaml:"difficulty_script"`
}

type WindowSpec struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type ShipSpec struct {
	Speed  float32 `yaml:"speed"`
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

type MeteorSpec struct {
	Width         float32 `yaml:"width"`
	Height        float32 `yaml:"height"`
	BaseSpeed     float32 `yaml:"base_speed"`
	SpeedVariance float32 `yaml:"speed_variance"`
}

type SpawnSpec struct {
	StartIntervalTicks float64 `yaml:"start_interval_ticks"`
	MinIntervalTicks   float64 `yaml:"min_interval_ticks"`
	RampPerDodge       float64 `yaml:"ramp_per_dodge"`
}

type ExplosionSpec struct {
	Width   float32 `yaml:"width"`
	Height  float32 `yaml:"height"`
	Seconds float64 `yaml:"seconds"`
}

type StarSpec struct {
	Count    int     `yaml:"count"`
	MinSpeed float32 `yaml:"min_speed"`
	MaxSpeed float32 `yaml:"max_speed"`
}

// Default returns the compiled-in tuning values.
func Default() Spec {
	return Spec{
		Window:    WindowSpec{Width: 800, Height: 600, Title: "Meteorfall"},
		Ship:      ShipSpec{Speed: 5, Width: 32, Height: 32},
		Meteor:    MeteorSpec{Width: 32, Height: 32, BaseSpeed: 4, SpeedVariance: 2},
		Spawn:     SpawnSpec{StartIntervalTicks: 60, MinIntervalTicks: 18, RampPerDodge: 0.5},
		Explosion: ExplosionSpec{Width: 48, Height: 48, Seconds: 1.0},
		Stars:     StarSpec{Count: 48, MinSpeed: 1, MaxSpeed: 3},
	}
}

// Load reads and normalizes a tuning file. An empty path returns the
// embedded default spec.
func Load(path string) (Spec, error) {
	if path == "" {
		return loadEmbedded()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), fmt.Errorf("tuning: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse unmarshals tuning YAML and fills invalid fields with defaults.
func Parse(data []byte) (Spec, error) {
	spec := Spec{}
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return Default(), fmt.Errorf("tuning: unmarshal: %w", err)
	}
	spec.normalize()
	return spec, nil
}

func (s *Spec) normalize() {
	def := Default()
	if s.Window.Width <= 0 {
		s.Window.Width = def.Window.Width
	}
	if s.Window.Height <= 0 {
		s.Window.Height = def.Window.Height
	}
	if s.Window.Title == "" {
		s.Window.Title = def.Window.Title
	}
	if s.Ship.Speed <= 0 {
		s.Ship.Speed = def.Ship.Speed
	}
	if s.Ship.Width <= 0 {
		s.Ship.Width = def.Ship.Width
	}
	if s.Ship.Height <= 0 {
		s.Ship.Height = def.Ship.Height
	}
	if s.Meteor.Width <= 0 {
		s.Meteor.Width = def.Meteor.Width
	}
	if s.Meteor.Height <= 0 {
		s.Meteor.Height = def.Meteor.Height
	}
	if s.Meteor.BaseSpeed <= 0 {
		s.Meteor.BaseSpeed = def.Meteor.BaseSpeed
	}
	if s.Meteor.SpeedVariance < 0 {
		s.Meteor.SpeedVariance = def.Meteor.SpeedVariance
	}
	if s.Spawn.StartIntervalTicks <= 0 {
		s.Spawn.StartIntervalTicks = def.Spawn.StartIntervalTicks
	}
	if s.Spawn.MinIntervalTicks <= 0 {
		s.Spawn.MinIntervalTicks = def.Spawn.MinIntervalTicks
	}
	if s.Spawn.MinIntervalTicks > s.Spawn.StartIntervalTicks {
		s.Spawn.MinIntervalTicks = s.Spawn.StartIntervalTicks
	}
	if s.Spawn.RampPerDodge < 0 {
		s.Spawn.RampPerDodge = def.Spawn.RampPerDodge
	}
	if s.Explosion.Width <= 0 {
		s.Explosion.Width = def.Explosion.Width
	}
	if s.Explosion.Height <= 0 {
		s.Explosion.Height = def.Explosion.Height
	}
	if s.Explosion.Seconds <= 0 {
		s.Explosion.Seconds = def.Explosion.Seconds
	}
	if s.Stars.Count <= 0 {
		s.Stars.Count = def.Stars.Count
	}
	if s.Stars.MinSpeed <= 0 {
		s.Stars.MinSpeed = def.Stars.MinSpeed
	}
	if s.Stars.MaxSpeed < s.Stars.MinSpeed {
		s.Stars.MaxSpeed = s.Stars.MinSpeed
	}
}
