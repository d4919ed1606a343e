package tuning

import (
	"path/filepath"
	"testing"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name  string
		yaml  string
		check func(t *testing.T, s Spec)
	}{
		{
			name: "overrides_applied",
			yaml: "window:\n  width: 1024\n  height: 768\nship:\n  speed: 8\nspawn:\n  start_interval_ticks: 90\n  min_interval_ticks: 30\n",
			check: func(t *testing.T, s Spec) {
				if s.Window.Width != 1024 || s.Window.Height != 768 {
					t.Fatalf("window = %dx%d, want 1024x768", s.Window.Width, s.Window.Height)
				}
				if s.Ship.Speed != 8 {
					t.Fatalf("ship speed = %v, want 8", s.Ship.Speed)
				}
				if s.Spawn.StartIntervalTicks != 90 || s.Spawn.MinIntervalTicks != 30 {
					t.Fatalf("spawn = %+v", s.Spawn)
				}
			},
		},
		{
			name: "invalid_fields_fall_back",
			yaml: "window:\n  width: -50\nship:\n  speed: 0\nmeteor:\n  base_speed: -1\n",
			check: func(t *testing.T, s Spec) {
				def := Default()
				if s.Window.Width != def.Window.Width {
					t.Fatalf("window width = %d, want default %d", s.Window.Width, def.Window.Width)
				}
				if s.Ship.Speed != def.Ship.Speed {
					t.Fatalf("ship speed = %v, want default %v", s.Ship.Speed, def.Ship.Speed)
				}
				if s.Meteor.BaseSpeed != def.Meteor.BaseSpeed {
					t.Fatalf("meteor speed = %v, want default %v", s.Meteor.BaseSpeed, def.Meteor.BaseSpeed)
				}
			},
		},
		{
			name: "min_interval_capped_at_start",
			yaml: "spawn:\n  start_interval_ticks: 20\n  min_interval_ticks: 50\n",
			check: func(t *testing.T, s Spec) {
				if s.Spawn.MinIntervalTicks != 20 {
					t.Fatalf("min interval = %v, want capped to 20", s.Spawn.MinIntervalTicks)
				}
			},
		},
		{
			name: "empty_document_is_all_defaults",
			yaml: "",
			check: func(t *testing.T, s Spec) {
				if s != Default() {
					t.Fatalf("spec = %+v, want defaults", s)
				}
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s, err := Parse([]byte(c.yaml))
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			c.check(t, s)
		})
	}
}

func TestParseMalformedYAML(t *testing.T) {
	s, err := Parse([]byte("window: [not, a, map"))
	if err == nil {
		t.Fatalf("expected error for malformed yaml")
	}
	if s != Default() {
		t.Fatalf("malformed yaml should yield defaults, got %+v", s)
	}
}

func TestLoad(t *testing.T) {
	t.Run("embedded_default", func(t *testing.T) {
		s, err := Load("")
		if err != nil {
			t.Fatalf("Load(\"\"): %v", err)
		}
		if s != Default() {
			t.Fatalf("embedded tuning = %+v, want the compiled defaults", s)
		}
	})

	t.Run("missing_file_falls_back", func(t *testing.T) {
		s, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		if err == nil {
			t.Fatalf("expected error for missing file")
		}
		if s != Default() {
			t.Fatalf("missing file should yield defaults, got %+v", s)
		}
	})
}
