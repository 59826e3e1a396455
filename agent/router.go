package agent

import (
	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"

	"github.com/brensch/rendezvous/game"
)

const (
	// SearchWindow bounds expansion to this many cells from the source on
	// each axis, capping work as the map grows.
	SearchWindow = 50

	knownStepCost   = 1.0
	unknownStepCost = 1.2
)

type searchNode struct {
	p   game.Point
	g   float64
	f   float64
	seq int
}

// FindPath runs A* over m from src to dst. Blocked cells are never entered,
// Unknown cells (including anything outside the map) cost a little more
// than Traversable ones. The returned path runs from dst back to src, so the
// next step is the second-to-last element. ok is false when the frontier
// empties first.
func FindPath(m *LocalMap, src, dst game.Point) (path []game.Point, ok bool) {
	open := heap.New[searchNode](func(a, b searchNode) bool {
		if a.f != b.f {
			return a.f < b.f
		}
		return a.seq < b.seq
	})
	closed := mapset.New[game.Point]()
	cameFrom := make(map[game.Point]game.Point)
	cost := map[game.Point]float64{src: 0}

	seq := 0
	open.Push(searchNode{p: src, f: manhattan(src, dst)})

	for open.Size() > 0 {
		cur, _ := open.Pop()
		if closed.Has(cur.p) || cur.g > cost[cur.p] {
			continue
		}
		if cur.p == dst {
			return reconstruct(cameFrom, src, dst), true
		}
		closed.Put(cur.p)

		for _, d := range game.Directions {
			n := cur.p.Add(d.Delta())
			if !inWindow(src, n) || closed.Has(n) {
				continue
			}
			state := m.Get(n)
			if state == Blocked {
				continue
			}
			g := cur.g + stepCost(state)
			if old, seen := cost[n]; seen && g >= old {
				continue
			}
			cost[n] = g
			cameFrom[n] = cur.p
			seq++
			open.Push(searchNode{p: n, g: g, f: g + manhattan(n, dst), seq: seq})
		}
	}
	return nil, false
}

func reconstruct(cameFrom map[game.Point]game.Point, src, dst game.Point) []game.Point {
	path := []game.Point{dst}
	for cur := dst; cur != src; {
		cur = cameFrom[cur]
		path = append(path, cur)
	}
	return path
}

func stepCost(s CellState) float64 {
	if s == Traversable {
		return knownStepCost
	}
	return unknownStepCost
}

func manhattan(a, b game.Point) float64 {
	return float64(abs(a.X-b.X) + abs(a.Y-b.Y))
}

func inWindow(src, p game.Point) bool {
	return abs(p.X-src.X) <= SearchWindow && abs(p.Y-src.Y) <= SearchWindow
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
