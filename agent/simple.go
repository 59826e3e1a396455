package agent

import "github.com/brensch/rendezvous/game"

// StaticGoody never leaves its starting cell.
type StaticGoody struct{}

func (StaticGoody) TakeTurn(game.Obstruction, game.PingResponse) game.Action { return game.Stay }

// StaticBaddy never leaves its starting cell.
type StaticBaddy struct{}

func (StaticBaddy) TakeTurn(game.Obstruction, game.PingResponse) game.Action { return game.Stay }

// RandomGoody ignores pings and picks uniformly among the open directions
// and PING.
type RandomGoody struct {
	rng Rand
}

func NewRandomGoody(rng Rand) *RandomGoody { return &RandomGoody{rng: rng} }

func (g *RandomGoody) TakeTurn(obs game.Obstruction, _ game.PingResponse) game.Action {
	options := append(openDirections(obs), game.Ping)
	return options[g.rng.Intn(len(options))]
}

// RandomBaddy wanders through open directions and never pings.
type RandomBaddy struct {
	rng Rand
}

func NewRandomBaddy(rng Rand) *RandomBaddy { return &RandomBaddy{rng: rng} }

func (b *RandomBaddy) TakeTurn(obs game.Obstruction, _ game.PingResponse) game.Action {
	options := openDirections(obs)
	if len(options) == 0 {
		return game.Stay
	}
	return options[b.rng.Intn(len(options))]
}

func openDirections(obs game.Obstruction) []game.Action {
	out := make([]game.Action, 0, 5)
	for _, d := range game.Directions {
		if !obs.Blocked(d) {
			out = append(out, d)
		}
	}
	return out
}
