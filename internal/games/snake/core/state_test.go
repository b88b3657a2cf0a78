package core

import (
	"errors"
	"math/rand"
	"testing"
)

func TestInitialize(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	s, err := Initialize(10, 5, rng)
	if err != nil {
		t.Fatalf("Initialize() failed: %v", err)
	}

	expected := []Coordinate{C(0, 4), C(0, 3), C(0, 2), C(0, 1), C(0, 0)}
	if !equalCoords(s.Snake(), expected) {
		t.Errorf("Snake() = %v, expected %v", s.Snake(), expected)
	}
	if s.Direction() != DirRight {
		t.Errorf("Direction() = %v, expected right", s.Direction())
	}
	if s.Phase() != PhaseIdle {
		t.Errorf("Phase() = %v, expected idle", s.Phase())
	}
	if !s.Reward().InBounds(10) || s.Occupies(s.Reward()) {
		t.Errorf("Reward() = %v, expected a free cell", s.Reward())
	}
	if s.Growth().Len() != 0 || s.Score() != 0 || s.Tick() != 0 {
		t.Error("fresh state should have no growth, score or ticks")
	}
}

func TestInitializeInvalid(t *testing.T) {
	tests := []struct {
		name         string
		size, length int
	}{
		{"board too small", 1, 1},
		{"zero length", 10, 0},
		{"longer than a row", 5, 6},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Initialize(tc.size, tc.length, rand.New(rand.NewSource(1)))
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Initialize(%d, %d) error = %v, expected ErrInvalidConfig", tc.size, tc.length, err)
			}
		})
	}
}

func TestFromLayoutInvalid(t *testing.T) {
	tests := []struct {
		name   string
		layout Layout
	}{
		{"empty snake", Layout{Size: 5, Reward: C(1, 1)}},
		{"segment off board", Layout{Size: 5, Snake: []Coordinate{C(0, 5)}, Reward: C(1, 1)}},
		{"overlapping segments", Layout{Size: 5, Snake: []Coordinate{C(0, 1), C(0, 1)}, Reward: C(1, 1)}},
		{"reward on snake", Layout{Size: 5, Snake: []Coordinate{C(1, 1)}, Reward: C(1, 1)}},
		{"reward off board", Layout{Size: 5, Snake: []Coordinate{C(1, 1)}, Reward: C(5, 5)}},
		{"bad direction", Layout{Size: 5, Snake: []Coordinate{C(1, 1)}, Reward: C(2, 2), Direction: Direction(9)}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := FromLayout(tc.layout); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("FromLayout() error = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestStartIsOneWay(t *testing.T) {
	s, err := Initialize(10, 5, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("Initialize() failed: %v", err)
	}

	s = Start(s)
	if !s.Running() {
		t.Fatalf("Phase() = %v, expected running", s.Phase())
	}

	l := s.Layout()
	l.Phase = PhaseGameOver
	over, err := FromLayout(l)
	if err != nil {
		t.Fatalf("FromLayout() failed: %v", err)
	}
	if Start(over).Phase() != PhaseGameOver {
		t.Error("Start() should not revive a finished game")
	}
}

func TestSnakeAccessorReturnsCopy(t *testing.T) {
	s := running(t, startLayout())
	body := s.Snake()
	body[0] = C(9, 9)

	if s.Head() != C(0, 4) {
		t.Errorf("Head() = %v after editing the Snake() copy, expected (0,4)", s.Head())
	}
}
