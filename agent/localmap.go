package agent

import "github.com/brensch/rendezvous/game"

// CellState is what an agent believes about one cell of the maze.
type CellState uint8

const (
	Unknown CellState = iota
	Traversable
	Blocked
)

func (c CellState) String() string {
	switch c {
	case Traversable:
		return "traversable"
	case Blocked:
		return "blocked"
	}
	return "unknown"
}

// LocalMap is an agent-private, growable grid of CellState. Indices are
// map-local; the Tracker owns the translation to the agent's logical frame.
type LocalMap struct {
	width  int
	height int
	cells  []CellState
}

// NewLocalMap returns a width x height map of Unknown cells.
func NewLocalMap(width, height int) *LocalMap {
	return &LocalMap{width: width, height: height, cells: make([]CellState, width*height)}
}

func (m *LocalMap) Width() int  { return m.width }
func (m *LocalMap) Height() int { return m.height }

func (m *LocalMap) InBounds(p game.Point) bool {
	return p.X >= 0 && p.X < m.width && p.Y >= 0 && p.Y < m.height
}

// Get returns the state of p, treating anything outside the map as Unknown.
func (m *LocalMap) Get(p game.Point) CellState {
	if !m.InBounds(p) {
		return Unknown
	}
	return m.cells[p.Y*m.width+p.X]
}

// Set records an observation. Writes outside the map and writes that would
// return a known cell to Unknown are ignored.
func (m *LocalMap) Set(p game.Point, s CellState) bool {
	if !m.InBounds(p) || s == Unknown {
		return false
	}
	m.cells[p.Y*m.width+p.X] = s
	return true
}

// Pad grows the map by the given number of Unknown cells on each side.
// The cell formerly at p is afterwards at p + (left, top).
func (m *LocalMap) Pad(top, bottom, left, right int) {
	w := m.width + left + right
	h := m.height + top + bottom
	cells := make([]CellState, w*h)
	for y := 0; y < m.height; y++ {
		copy(cells[(y+top)*w+left:], m.cells[y*m.width:(y+1)*m.width])
	}
	m.width, m.height, m.cells = w, h, cells
}

// Count returns how many cells are in state s.
func (m *LocalMap) Count(s CellState) int {
	n := 0
	for _, c := range m.cells {
		if c == s {
			n++
		}
	}
	return n
}
