// Package game defines the core types shared by the maze engine and the agents.
//
// Coordinates are maze cells: x grows to the right, y grows downward, so
// moving Up decreases Y. The same convention holds in every agent's private
// frame, which keeps ping offsets additive on both axes.
package game

import "strings"

// Point is a cell coordinate.
type Point struct {
	X int
	Y int
}

func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Action is what a player does on its turn.
type Action int

const (
	Up Action = iota
	Down
	Left
	Right
	Stay
	Ping
)

// Directions lists the movement actions in obstruction-reading order.
var Directions = [4]Action{Up, Down, Left, Right}

var actionNames = [...]string{"UP", "DOWN", "LEFT", "RIGHT", "STAY", "PING"}

func (a Action) String() string {
	if a < Up || a > Ping {
		return "UNKNOWN"
	}
	return actionNames[a]
}

// IsMove reports whether a is one of the four directions.
func (a Action) IsMove() bool { return a >= Up && a <= Right }

// Delta is the one-cell displacement of a movement action, zero otherwise.
func (a Action) Delta() Point {
	switch a {
	case Up:
		return Point{Y: -1}
	case Down:
		return Point{Y: 1}
	case Left:
		return Point{X: -1}
	case Right:
		return Point{X: 1}
	}
	return Point{}
}

// Obstruction is a per-turn wall reading for the four neighbours of a player,
// indexed by Up, Down, Left, Right. True means that move is blocked by a wall
// or the maze boundary.
type Obstruction [4]bool

func (o Obstruction) Blocked(a Action) bool {
	if !a.IsMove() {
		return false
	}
	return o[a]
}

// Kind tags a player as one of the cooperating goodies or the baddy.
type Kind int

const (
	Goody Kind = iota
	Baddy
)

func (k Kind) String() string {
	if k == Baddy {
		return "baddy"
	}
	return "goody"
}

// Sighting is one other player as revealed by a ping. Offset is the other
// player's position minus the receiver's position at ping time.
type Sighting struct {
	Kind   Kind
	Offset Point
}

// PingResponse is nil on turns without ping information.
type PingResponse []Sighting

// Player decides one action per turn from local information only.
type Player interface {
	TakeTurn(obstruction Obstruction, ping PingResponse) Action
}

// Player slots in State.Positions.
const (
	GoodyA = iota
	GoodyB
	TheBaddy
	NumPlayers
)

// KindOf returns the kind of the player in slot i.
func KindOf(i int) Kind {
	if i == TheBaddy {
		return Baddy
	}
	return Goody
}

// State is the authoritative game state owned by the turn engine.
type State struct {
	Maze      *Maze
	Positions [NumPlayers]Point
	Round     int
}

// Clone copies the state. The maze is immutable during a game and is shared.
func (s *State) Clone() *State {
	if s == nil {
		return nil
	}
	out := *s
	return &out
}

// Render draws the maze with goodies as A and B and the baddy as X.
// Shared cells show the later slot.
func (s *State) Render() string {
	grid := s.Maze.grid()
	for i, p := range s.Positions {
		if s.Maze.InBounds(p) {
			grid[p.Y][p.X] = "ABX"[i]
		}
	}
	var sb strings.Builder
	for _, row := range grid {
		sb.Write(row)
		sb.WriteByte('\n')
	}
	return sb.String()
}
