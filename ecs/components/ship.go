package components

// ShipControl marks the player ship and holds its movement tuning. MinX and
// MaxX bound the reachable x positions so the ship never leaves the
// playfield.
type ShipControl struct {
	Speed  float32
	Width  float32
	Height float32
	MinX   float32
	MaxX   float32
}
