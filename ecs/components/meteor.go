package components

// Meteor marks a falling meteor and holds its box size.
type Meteor struct {
	Width  float32
	Height float32
}

// Star marks a background starfield dot. Stars never collide; they wrap back
// to the top edge once they pass the bottom.
type Star struct{}
