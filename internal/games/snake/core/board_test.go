package core

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
)

func TestProjectInitialBoard(t *testing.T) {
	s := running(t, Layout{
		Size:      4,
		Snake:     []Coordinate{C(0, 2), C(0, 1), C(0, 0)},
		Reward:    C(3, 3),
		Direction: DirRight,
	})

	expected := strings.Join([]string{
		"BBH.",
		"....",
		"....",
		"...R",
	}, "\n")
	if got := Project(s).String(); got != expected {
		t.Errorf("Project() =\n%s\nexpected\n%s", got, expected)
	}
}

func TestProjectFreshGrid(t *testing.T) {
	s := running(t, startLayout())
	g1 := Project(s)
	g1[5][5] = CellHead

	g2 := Project(s)
	if g2.At(C(5, 5)) != CellEmpty {
		t.Error("Project() returned a grid sharing storage with an earlier call")
	}
}

// TestProjectCountsDuringPlay drives random legal input and checks the
// projected cell counts and the growth bookkeeping after every tick.
func TestProjectCountsDuringPlay(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		s, err := Initialize(8, 3, rng)
		if err != nil {
			t.Fatalf("Initialize() failed: %v", err)
		}
		s = Start(s)
		initial := s.Len()

		for tick := 0; tick < 500 && s.Running(); tick++ {
			if rng.Intn(3) == 0 {
				s = RequestDirection(s, Directions[rng.Intn(len(Directions))])
			}

			s, err = Advance(s, rng)
			if err != nil {
				if !errors.Is(err, ErrCollision) && !errors.Is(err, ErrBoardFull) {
					t.Fatalf("seed %d tick %d: unexpected error %v", seed, tick, err)
				}
				break
			}

			g := Project(s)
			if n := g.Count(CellHead); n != 1 {
				t.Fatalf("seed %d tick %d: %d head cells, expected 1", seed, tick, n)
			}
			if n := g.Count(CellReward); n != 1 {
				t.Fatalf("seed %d tick %d: %d reward cells, expected 1", seed, tick, n)
			}
			if n := g.Count(CellBody); n != s.Len()-1 {
				t.Fatalf("seed %d tick %d: %d body cells, expected %d", seed, tick, n, s.Len()-1)
			}
			if s.Occupies(s.Reward()) {
				t.Fatalf("seed %d tick %d: reward %v on the snake", seed, tick, s.Reward())
			}
			// Every eaten reward grows the snake exactly once
			if s.Len() != initial+s.Score()-s.Growth().Len() {
				t.Fatalf("seed %d tick %d: len %d, score %d, pending %d",
					seed, tick, s.Len(), s.Score(), s.Growth().Len())
			}
		}
	}
}
