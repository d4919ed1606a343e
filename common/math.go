package common

// Rect is an axis-aligned bounding box in playfield pixels.
type Rect struct {
	X, Y          float32
	Width, Height float32
}

// Intersects reports whether two boxes overlap. Comparisons are strict, so
// boxes that only touch along an edge do not intersect.
func (r *Rect) Intersects(other *Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func Lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}
