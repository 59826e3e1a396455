package agent

import (
	"math/rand"
	"testing"

	"github.com/brensch/rendezvous/game"
)

// bfsDistance is the true shortest path length over non-blocked in-map cells.
func bfsDistance(m *LocalMap, src, dst game.Point) int {
	dist := map[game.Point]int{src: 0}
	queue := []game.Point{src}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == dst {
			return dist[cur]
		}
		for _, d := range game.Directions {
			n := cur.Add(d.Delta())
			if _, seen := dist[n]; seen || !m.InBounds(n) || m.Get(n) == Blocked {
				continue
			}
			dist[n] = dist[cur] + 1
			queue = append(queue, n)
		}
	}
	return -1
}

func checkPath(t *testing.T, m *LocalMap, path []game.Point, src, dst game.Point) {
	t.Helper()
	if path[0] != dst || path[len(path)-1] != src {
		t.Fatalf("path runs %v..%v, want %v..%v", path[0], path[len(path)-1], dst, src)
	}
	for i, p := range path {
		if m.Get(p) == Blocked {
			t.Fatalf("path enters blocked cell %v", p)
		}
		if i > 0 && manhattan(p, path[i-1]) != 1 {
			t.Fatalf("path jumps from %v to %v", path[i-1], p)
		}
	}
}

func TestFindPath_OptimalOnKnownMaps(t *testing.T) {
	const size = 14
	for seed := int64(0); seed < 40; seed++ {
		rng := rand.New(rand.NewSource(seed))
		m := NewLocalMap(size, size)
		var open []game.Point
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				p := game.Point{X: x, Y: y}
				border := x == 0 || y == 0 || x == size-1 || y == size-1
				if border || rng.Intn(100) < 28 {
					m.Set(p, Blocked)
					continue
				}
				m.Set(p, Traversable)
				open = append(open, p)
			}
		}
		src := open[rng.Intn(len(open))]
		dst := open[rng.Intn(len(open))]

		want := bfsDistance(m, src, dst)
		path, ok := FindPath(m, src, dst)
		if want < 0 {
			if ok {
				logMap(t, "unexpected path", m, map[game.Point]byte{src: 'S', dst: 'D'})
				t.Fatalf("seed %d: found a path where BFS found none", seed)
			}
			continue
		}
		if !ok {
			logMap(t, "missing path", m, map[game.Point]byte{src: 'S', dst: 'D'})
			t.Fatalf("seed %d: no path, BFS distance %d", seed, want)
		}
		checkPath(t, m, path, src, dst)
		if got := len(path) - 1; got != want {
			t.Fatalf("seed %d: path length %d want %d", seed, got, want)
		}
	}
}

func TestFindPath_PrefersKnownCells(t *testing.T) {
	m := mapFromRows(
		"...",
		".#.",
		"???",
	)
	src, dst := game.Point{X: 0, Y: 1}, game.Point{X: 2, Y: 1}
	path, ok := FindPath(m, src, dst)
	if !ok {
		t.Fatalf("no path")
	}
	checkPath(t, m, path, src, dst)
	for _, p := range path {
		if p == (game.Point{X: 1, Y: 2}) {
			t.Fatalf("took the unknown route: %v", path)
		}
	}
	if len(path) != 5 {
		t.Fatalf("path=%v want 4 steps", path)
	}
}

func TestFindPath_ExploresUnknown(t *testing.T) {
	m := NewLocalMap(1, 1)
	path, ok := FindPath(m, game.Point{}, game.Point{X: -3, Y: 4})
	if !ok || len(path) != 8 {
		t.Fatalf("ok=%v len=%d want a 7-step path through unknown space", ok, len(path))
	}
}

func TestFindPath_EnclosedDestination(t *testing.T) {
	m := mapFromRows(
		"?????",
		"??#??",
		"?#.#?",
		"??#??",
		"?????",
	)
	path, ok := FindPath(m, game.Point{X: 0, Y: 0}, game.Point{X: 2, Y: 2})
	if ok || path != nil {
		t.Fatalf("expected no path, got %v", path)
	}
}

func TestFindPath_BlockedDestination(t *testing.T) {
	m := mapFromRows("..#")
	if _, ok := FindPath(m, game.Point{}, game.Point{X: 2}); ok {
		t.Fatalf("a blocked destination is unreachable")
	}
}

func TestFindPath_SourceIsDestination(t *testing.T) {
	m := mapFromRows("...")
	path, ok := FindPath(m, game.Point{X: 1}, game.Point{X: 1})
	if !ok || len(path) != 1 {
		t.Fatalf("ok=%v path=%v want single-cell path", ok, path)
	}
}

func TestFindPath_WindowBound(t *testing.T) {
	m := NewLocalMap(1, 1)
	if _, ok := FindPath(m, game.Point{}, game.Point{X: SearchWindow, Y: -SearchWindow}); !ok {
		t.Fatalf("destination on the window edge should be reachable")
	}
	if _, ok := FindPath(m, game.Point{}, game.Point{X: SearchWindow + 1}); ok {
		t.Fatalf("destination outside the window must not be reached")
	}
}
