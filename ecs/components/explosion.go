package components

// Explosion is the short-lived visual shown where the ship was hit. Remaining
// counts down one per tick; at zero the game moves to the game-over state.
type Explosion struct {
	Remaining int
}
