package core

import "testing"

// seqSource replays vals in a loop.
type seqSource struct {
	vals []int
	pos  int
}

func (s *seqSource) Intn(n int) int {
	v := s.vals[s.pos%len(s.vals)]
	s.pos++
	return v % n
}

// running builds a Running state from l or fails the test.
func running(t *testing.T, l Layout) State {
	t.Helper()
	l.Phase = PhaseRunning
	s, err := FromLayout(l)
	if err != nil {
		t.Fatalf("FromLayout() failed: %v", err)
	}
	return s
}

func equalCoords(a, b []Coordinate) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
