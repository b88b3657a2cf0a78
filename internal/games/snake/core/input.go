package core

// RequestDirection admits a direction change for the next tick.
//
// The request is ignored unless the game is Running and no change has been
// admitted since the last tick. Asking for the current direction or its
// opposite is ignored as well; reversing would drive the head into the neck.
// An admitted change becomes the current direction and closes input until
// Advance reopens it, so at most one change lands per tick.
func RequestDirection(s State, d Direction) State {
	if s.phase != PhaseRunning || !s.acceptInput {
		return s
	}
	if !d.Valid() || d == s.direction || IsOpposite(s.direction, d) {
		return s
	}
	s.direction = d
	s.acceptInput = false
	return s
}
