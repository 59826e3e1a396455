package agent

import "github.com/brensch/rendezvous/game"

// Tracker keeps the agent's beliefs about where everyone is, in the index
// frame of its LocalMap. Every tracked position is shifted whenever the map
// grows, so position-to-cell lookups never need rescanning.
type Tracker struct {
	Map *LocalMap

	origin  game.Point // map index of the agent's first cell
	self    game.Point
	ally    game.Point
	pursuer game.Point
	target  game.Point

	hasAlly    bool
	hasPursuer bool
	hasTarget  bool
}

// NewTracker starts with a 1x1 map holding the agent at the origin.
func NewTracker() *Tracker {
	return &Tracker{Map: NewLocalMap(1, 1)}
}

func (t *Tracker) Self() game.Point                    { return t.self }
func (t *Tracker) Origin() game.Point                  { return t.origin }
func (t *Tracker) Ally() (game.Point, bool)            { return t.ally, t.hasAlly }
func (t *Tracker) Pursuer() (game.Point, bool)         { return t.pursuer, t.hasPursuer }
func (t *Tracker) Target() (game.Point, bool)          { return t.target, t.hasTarget }
func (t *Tracker) Logical(p game.Point) game.Point     { return p.Sub(t.origin) }
func (t *Tracker) FromLogical(p game.Point) game.Point { return p.Add(t.origin) }

// Expand pads the map and re-bases every known position in lock-step.
func (t *Tracker) Expand(top, bottom, left, right int) {
	t.Map.Pad(top, bottom, left, right)
	shift := game.Point{X: left, Y: top}
	t.origin = t.origin.Add(shift)
	t.self = t.self.Add(shift)
	if t.hasAlly {
		t.ally = t.ally.Add(shift)
	}
	if t.hasPursuer {
		t.pursuer = t.pursuer.Add(shift)
	}
	if t.hasTarget {
		t.target = t.target.Add(shift)
	}
}

// ExpandToInclude grows the map just enough that p has at least one cell of
// margin on every side. Callers holding p must re-read it from the tracker
// afterwards if it is not one of the tracked positions.
func (t *Tracker) ExpandToInclude(p game.Point) game.Point {
	var top, bottom, left, right int
	if p.X <= 0 {
		left = 1 - p.X
	}
	if p.Y <= 0 {
		top = 1 - p.Y
	}
	if last := t.Map.Width() - 1; p.X >= last {
		right = 1 + p.X - last
	}
	if last := t.Map.Height() - 1; p.Y >= last {
		bottom = 1 + p.Y - last
	}
	if top == 0 && bottom == 0 && left == 0 && right == 0 {
		return p
	}
	t.Expand(top, bottom, left, right)
	return p.Add(game.Point{X: left, Y: top})
}

// StoreObstruction writes a fresh wall reading into the four neighbours of
// self. The newest reading always wins.
func (t *Tracker) StoreObstruction(obs game.Obstruction) {
	for _, d := range game.Directions {
		state := Traversable
		if obs.Blocked(d) {
			state = Blocked
		}
		t.Map.Set(t.self.Add(d.Delta()), state)
	}
}

// IntegratePing resolves every sighting relative to self. A goody sighting
// is the ally and a baddy sighting is the pursuer. Occupied cells cannot be
// walls, so both are marked Traversable.
func (t *Tracker) IntegratePing(resp game.PingResponse) {
	for _, s := range resp {
		p := t.self.Add(s.Offset)
		switch s.Kind {
		case game.Goody:
			t.ally, t.hasAlly = p, true
			t.ExpandToInclude(t.ally)
			t.Map.Set(t.ally, Traversable)
		case game.Baddy:
			t.pursuer, t.hasPursuer = p, true
			t.ExpandToInclude(t.pursuer)
			t.Map.Set(t.pursuer, Traversable)
		}
	}
}

// SetTarget records a target given in the logical frame.
func (t *Tracker) SetTarget(logical game.Point) {
	t.target, t.hasTarget = t.FromLogical(logical), true
	t.ExpandToInclude(t.target)
}

// nudgeTarget moves the target by d, keeping it inside the TargetBound box
// around the origin.
func (t *Tracker) nudgeTarget(d game.Point) {
	if !t.hasTarget {
		return
	}
	l := t.Logical(t.target.Add(d))
	t.SetTarget(game.Point{X: clampCoord(float64(l.X)), Y: clampCoord(float64(l.Y))})
}

// Advance moves self one cell in direction a.
func (t *Tracker) Advance(a game.Action) {
	t.self = t.self.Add(a.Delta())
}
