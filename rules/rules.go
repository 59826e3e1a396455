// Package rules is the turn engine: it produces each player's observations,
// applies a round of actions and judges the outcome.
package rules

import (
	"github.com/brensch/rendezvous/game"
)

// Outcome is the state of a game after a round.
type Outcome int

const (
	Running Outcome = iota
	GoodiesWin
	BaddyWins
	Draw
)

func (o Outcome) String() string {
	switch o {
	case GoodiesWin:
		return "goodies_win"
	case BaddyWins:
		return "baddy_wins"
	case Draw:
		return "draw"
	}
	return "running"
}

// Observe returns the obstruction reading for a player standing on p.
func Observe(m *game.Maze, p game.Point) game.Obstruction {
	var obs game.Obstruction
	for _, d := range game.Directions {
		obs[d] = m.Blocked(p.Add(d.Delta()))
	}
	return obs
}

// PingFor returns what player who sees when a ping is answered: every other
// player with its offset from who.
func PingFor(state *game.State, who int) game.PingResponse {
	resp := make(game.PingResponse, 0, game.NumPlayers-1)
	for i, p := range state.Positions {
		if i == who {
			continue
		}
		resp = append(resp, game.Sighting{
			Kind:   game.KindOf(i),
			Offset: p.Sub(state.Positions[who]),
		})
	}
	return resp
}

// Broadcast answers a ping for every player at once.
func Broadcast(state *game.State) [game.NumPlayers]game.PingResponse {
	var out [game.NumPlayers]game.PingResponse
	for i := range out {
		out[i] = PingFor(state, i)
	}
	return out
}

// AnyPing reports whether any action in the round was a ping.
func AnyPing(actions [game.NumPlayers]game.Action) bool {
	for _, a := range actions {
		if a == game.Ping {
			return true
		}
	}
	return false
}

// Step applies all actions simultaneously and returns the next state.
// A move into a wall or off the maze leaves that player where it was.
func Step(state *game.State, actions [game.NumPlayers]game.Action) (*game.State, Outcome) {
	next := state.Clone()
	next.Round++

	for i, a := range actions {
		if !a.IsMove() {
			continue
		}
		dst := next.Positions[i].Add(a.Delta())
		if state.Maze.Blocked(dst) {
			continue
		}
		next.Positions[i] = dst
	}

	return next, Judge(state, next)
}

// Judge decides the outcome of the round that turned before into after.
// Two players meet when they end on the same cell or swap cells. A catch by
// the baddy takes precedence over the goodies meeting.
func Judge(before, after *game.State) Outcome {
	for _, g := range []int{game.GoodyA, game.GoodyB} {
		if met(before, after, g, game.TheBaddy) {
			return BaddyWins
		}
	}
	if met(before, after, game.GoodyA, game.GoodyB) {
		return GoodiesWin
	}
	return Running
}

func met(before, after *game.State, i, j int) bool {
	a, b := after.Positions[i], after.Positions[j]
	if a == b {
		return true
	}
	return a == before.Positions[j] && b == before.Positions[i]
}
