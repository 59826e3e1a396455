// Package match runs games between players: it owns the round loop that
// feeds the engine's observations to each player and applies their actions.
package match

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/brensch/rendezvous/agent"
	"github.com/brensch/rendezvous/game"
	"github.com/brensch/rendezvous/rules"
)

// Settings controls who plays and for how long.
type Settings struct {
	MaxRounds int    `yaml:"max_rounds"`
	Goody     string `yaml:"goody"`
	Baddy     string `yaml:"baddy"`
}

var DefaultSettings = Settings{MaxRounds: 1000, Goody: agent.KindSmart, Baddy: agent.KindRandom}

// WithDefaults fills unset fields from DefaultSettings.
func (s Settings) WithDefaults() Settings {
	if s.MaxRounds <= 0 {
		s.MaxRounds = DefaultSettings.MaxRounds
	}
	if s.Goody == "" {
		s.Goody = DefaultSettings.Goody
	}
	if s.Baddy == "" {
		s.Baddy = DefaultSettings.Baddy
	}
	return s
}

type Result struct {
	GameID  string
	Seed    int64
	Outcome rules.Outcome
	Rounds  int
	Pings   int
}

// Hook observes the game after every round.
type Hook func(state *game.State, actions [game.NumPlayers]game.Action)

// NewPlayers builds two goodies and a baddy, each with its own random
// source derived from rng.
func NewPlayers(s Settings, rng *rand.Rand) ([game.NumPlayers]game.Player, error) {
	var players [game.NumPlayers]game.Player
	for i := range players {
		own := rand.New(rand.NewSource(rng.Int63()))
		var err error
		if game.KindOf(i) == game.Baddy {
			players[i], err = agent.NewBaddy(s.Baddy, own)
		} else {
			players[i], err = agent.NewGoody(s.Goody, own, agent.WithLogger(log.WithField("slot", i)))
		}
		if err != nil {
			return players, err
		}
	}
	return players, nil
}

// Play sets up a game on m from seed and runs it to completion.
func Play(ctx context.Context, m *game.Maze, s Settings, seed int64, hook Hook) (Result, error) {
	s = s.WithDefaults()
	rng := rand.New(rand.NewSource(seed))

	state, err := game.RandomStart(m, rng)
	if err != nil {
		return Result{Seed: seed}, fmt.Errorf("place players: %w", err)
	}
	players, err := NewPlayers(s, rng)
	if err != nil {
		return Result{Seed: seed}, fmt.Errorf("create players: %w", err)
	}

	res, err := Run(ctx, state, players, s.MaxRounds, hook)
	res.Seed = seed
	return res, err
}

// Run plays from state until someone wins or maxRounds is reached. A ping
// by anyone is answered for every player on the following round, measured
// from the positions at the end of the pinging round.
func Run(ctx context.Context, state *game.State, players [game.NumPlayers]game.Player, maxRounds int, hook Hook) (Result, error) {
	res := Result{GameID: uuid.NewString()}
	if maxRounds <= 0 {
		maxRounds = DefaultSettings.MaxRounds
	}

	var pending [game.NumPlayers]game.PingResponse
	for state.Round < maxRounds {
		if err := ctx.Err(); err != nil {
			res.Rounds = state.Round
			return res, err
		}

		var actions [game.NumPlayers]game.Action
		for i, p := range players {
			obs := rules.Observe(state.Maze, state.Positions[i])
			actions[i] = p.TakeTurn(obs, pending[i])
			if actions[i] == game.Ping && game.KindOf(i) == game.Goody {
				res.Pings++
			}
		}

		next, outcome := rules.Step(state, actions)
		pending = [game.NumPlayers]game.PingResponse{}
		if rules.AnyPing(actions) {
			pending = rules.Broadcast(next)
		}

		log.WithFields(log.Fields{
			"game_id": res.GameID,
			"round":   next.Round,
			"actions": actions,
		}).Debug("round played")

		if hook != nil {
			hook(next, actions)
		}
		state = next
		res.Rounds = state.Round

		if outcome != rules.Running {
			res.Outcome = outcome
			log.WithFields(log.Fields{
				"game_id": res.GameID,
				"result":  outcome,
				"rounds":  res.Rounds,
			}).Debug("game over")
			return res, nil
		}
	}

	res.Outcome = rules.Draw
	log.WithFields(log.Fields{
		"game_id": res.GameID,
		"result":  res.Outcome,
		"rounds":  res.Rounds,
	}).Debug("round limit reached")
	return res, nil
}
