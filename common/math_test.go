package common

import "testing"

func TestRectIntersects(t *testing.T) {
	cases := []struct {
		name string
		a, b Rect
		want bool
	}{
		{
			name: "overlapping",
			a:    Rect{X: 100, Y: 500, Width: 32, Height: 32},
			b:    Rect{X: 105, Y: 505, Width: 32, Height: 32},
			want: true,
		},
		{
			name: "disjoint",
			a:    Rect{X: 0, Y: 0, Width: 32, Height: 32},
			b:    Rect{X: 100, Y: 100, Width: 32, Height: 32},
			want: false,
		},
		{
			name: "touching_right_edge",
			a:    Rect{X: 0, Y: 0, Width: 32, Height: 32},
			b:    Rect{X: 32, Y: 0, Width: 32, Height: 32},
			want: false,
		},
		{
			name: "touching_bottom_edge",
			a:    Rect{X: 0, Y: 0, Width: 32, Height: 32},
			b:    Rect{X: 0, Y: 32, Width: 32, Height: 32},
			want: false,
		},
		{
			name: "contained",
			a:    Rect{X: 0, Y: 0, Width: 100, Height: 100},
			b:    Rect{X: 40, Y: 40, Width: 10, Height: 10},
			want: true,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.a.Intersects(&c.b); got != c.want {
				t.Fatalf("Intersects = %v, want %v", got, c.want)
			}
			// overlap must be symmetric
			if got := c.b.Intersects(&c.a); got != c.want {
				t.Fatalf("reverse Intersects = %v, want %v", got, c.want)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	cases := []struct {
		name      string
		v, lo, hi float32
		want      float32
	}{
		{"below", -5, 0, 768, 0},
		{"inside", 100, 0, 768, 100},
		{"above", 800, 0, 768, 768},
		{"at_low", 0, 0, 768, 0},
		{"at_high", 768, 0, 768, 768},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Clamp(c.v, c.lo, c.hi); got != c.want {
				t.Fatalf("Clamp(%v, %v, %v) = %v, want %v", c.v, c.lo, c.hi, got, c.want)
			}
		})
	}
}

func TestLerp(t *testing.T) {
	cases := []struct {
		name    string
		a, b, t float32
		want    float32
	}{
		{"at_start", 1, 3, 0, 1},
		{"at_end", 1, 3, 1, 3},
		{"midpoint", 1, 3, 0.5, 2},
		{"descending", 10, 0, 0.25, 7.5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Lerp(c.a, c.b, c.t); got != c.want {
				t.Fatalf("Lerp(%v, %v, %v) = %v, want %v", c.a, c.b, c.t, got, c.want)
			}
		})
	}
}
