// Package agent holds the players: the mapping, routing smart goody and the
// trivial goody and baddy variants, all behind game.Player.
package agent

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/brensch/rendezvous/game"
)

// Rand is the randomness an agent needs. *rand.Rand satisfies it; tests
// inject scripted sources to force each branch.
type Rand interface {
	Intn(n int) int
}

var (
	ErrUnknownKind = errors.New("unknown agent kind")
	ErrNoRand      = errors.New("agent needs a random source")
)

// Agent kinds selectable by name.
const (
	KindStatic = "static"
	KindRandom = "random"
	KindSmart  = "smart"
)

// NewGoody builds a goody of the named kind. opts only apply to smart
// goodies.
func NewGoody(kind string, rng *rand.Rand, opts ...Option) (game.Player, error) {
	if rng == nil && kind != KindStatic {
		return nil, fmt.Errorf("%w: goody %q", ErrNoRand, kind)
	}
	switch kind {
	case KindStatic:
		return StaticGoody{}, nil
	case KindRandom:
		return NewRandomGoody(rng), nil
	case KindSmart, "":
		return NewSmartGoody(rng, opts...), nil
	}
	return nil, fmt.Errorf("%w: goody %q", ErrUnknownKind, kind)
}

// NewBaddy builds a baddy of the named kind.
func NewBaddy(kind string, rng *rand.Rand) (game.Player, error) {
	if rng == nil && kind != KindStatic {
		return nil, fmt.Errorf("%w: baddy %q", ErrNoRand, kind)
	}
	switch kind {
	case KindStatic:
		return StaticBaddy{}, nil
	case KindRandom, "":
		return NewRandomBaddy(rng), nil
	}
	return nil, fmt.Errorf("%w: baddy %q", ErrUnknownKind, kind)
}
