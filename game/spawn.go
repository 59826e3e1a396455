// spawn.go places the players at the start of a game.

package game

import (
	"errors"
	"math/rand"

	"github.com/zyedidia/generic/mapset"
)

var ErrNoSpace = errors.New("not enough open cells to place every player")

// RandomStart returns a round-zero state with every player on a distinct
// open cell drawn from rng.
func RandomStart(m *Maze, rng *rand.Rand) (*State, error) {
	free := m.OpenCells()
	if len(free) < NumPlayers {
		return nil, ErrNoSpace
	}

	occupied := mapset.New[Point]()
	state := &State{Maze: m}
	for i := 0; i < NumPlayers; i++ {
		for {
			p := free[rng.Intn(len(free))]
			if occupied.Has(p) {
				continue
			}
			occupied.Put(p)
			state.Positions[i] = p
			break
		}
	}
	return state, nil
}
