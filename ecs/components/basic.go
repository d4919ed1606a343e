package components

// Transform stores position in playfield space. X,Y is the top-left corner
// of the entity's sprite and bounding box.
type Transform struct {
	X, Y float32
}

// Velocity stores linear velocity in pixels per tick.
type Velocity struct {
	VX, VY float32
}

// Sprite stores render data. Width/Height scale the source image; Layer
// orders drawing (stars below meteors below the ship/explosion).
type Sprite struct {
	ImageKey string
	Width    float32
	Height   float32
	Layer    int
}

// InputState mirrors the polled input state for the controlled entity.
type InputState struct {
	MoveX float32
}
