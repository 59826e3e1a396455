package agent

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/brensch/rendezvous/game"
)

const (
	// horizontalFirst resolves a step that differs on both axes: the
	// horizontal direction wins over the vertical one.
	horizontalFirst = true

	maxTargetNudges = 64
	neverPinged     = -1
)

// SmartGoody maps the maze from its own observations, tracks everyone in a
// private frame and replans a route to a rendezvous cell every turn.
type SmartGoody struct {
	tracker *Tracker
	rng     Rand
	log     logrus.FieldLogger

	turn           int
	turnsSincePing int
}

type Option func(*SmartGoody)

// WithLogger routes the agent's debug events to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(g *SmartGoody) { g.log = l }
}

// NewSmartGoody returns an agent that knows nothing about the maze yet.
// rng must not be nil.
func NewSmartGoody(rng Rand, opts ...Option) *SmartGoody {
	quiet := logrus.New()
	quiet.SetOutput(io.Discard)
	g := &SmartGoody{
		tracker:        NewTracker(),
		rng:            rng,
		log:            quiet,
		turnsSincePing: neverPinged,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *SmartGoody) Tracker() *Tracker   { return g.tracker }
func (g *SmartGoody) Turn() int           { return g.turn }
func (g *SmartGoody) TurnsSincePing() int { return g.turnsSincePing }

// Position is the agent's belief about where it is, relative to where it started.
func (g *SmartGoody) Position() game.Point { return g.tracker.Logical(g.tracker.Self()) }

// TakeTurn integrates this turn's observations and decides what to do.
func (g *SmartGoody) TakeTurn(obs game.Obstruction, ping game.PingResponse) game.Action {
	t := g.tracker

	g.turn++
	if g.turnsSincePing != neverPinged {
		g.turnsSincePing++
	}

	if ping != nil {
		g.turnsSincePing = 0
		t.IntegratePing(ping)
		g.chooseTarget()
	}

	t.ExpandToInclude(t.Self())
	t.StoreObstruction(obs)

	if g.turnsSincePing == neverPinged {
		return game.Ping
	}

	target, ok := t.Target()
	if !ok {
		return game.Ping
	}
	for i := 0; i < maxTargetNudges && t.Map.Get(target) == Blocked; i++ {
		t.nudgeTarget(game.Point{X: g.rng.Intn(3) - 1, Y: g.rng.Intn(3) - 1})
		target, _ = t.Target()
	}

	path, ok := FindPath(t.Map, t.Self(), target)
	if !ok || len(path) < 2 {
		g.log.WithFields(logrus.Fields{
			"turn":   g.turn,
			"found":  ok,
			"target": t.Logical(target),
		}).Debug("nothing to step toward")
		return g.fallback()
	}

	choice, ok := stepDirection(t.Self(), path[len(path)-2])
	if !ok || obs.Blocked(choice) {
		return g.fallback()
	}

	t.Advance(choice)
	t.ExpandToInclude(t.Self())
	return choice
}

func (g *SmartGoody) chooseTarget() {
	t := g.tracker
	ally, okAlly := t.Ally()
	pursuer, okPursuer := t.Pursuer()
	if !okAlly || !okPursuer {
		return
	}
	target := ChooseTarget(t.Logical(t.Self()), t.Logical(ally), t.Logical(pursuer))
	t.SetTarget(target)
	g.log.WithFields(logrus.Fields{
		"turn":    g.turn,
		"self":    t.Logical(t.Self()),
		"ally":    t.Logical(ally),
		"pursuer": t.Logical(pursuer),
		"target":  target,
	}).Debug("rendezvous target chosen")
}

// fallback stays or pings with equal probability so the agent cannot lock
// into a deterministic stall.
func (g *SmartGoody) fallback() game.Action {
	if g.rng.Intn(2) == 0 {
		return game.Stay
	}
	return game.Ping
}

// stepDirection converts a one-cell step into a direction.
func stepDirection(from, to game.Point) (game.Action, bool) {
	var vertical, horizontal game.Action = -1, -1
	switch {
	case to.Y > from.Y:
		vertical = game.Down
	case to.Y < from.Y:
		vertical = game.Up
	}
	switch {
	case to.X > from.X:
		horizontal = game.Right
	case to.X < from.X:
		horizontal = game.Left
	}

	first, second := vertical, horizontal
	if horizontalFirst {
		first, second = horizontal, vertical
	}
	if first >= 0 {
		return first, true
	}
	if second >= 0 {
		return second, true
	}
	return game.Stay, false
}
