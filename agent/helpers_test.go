package agent

import (
	"strings"
	"testing"

	"github.com/brensch/rendezvous/game"
)

// scriptedRand replays vals in order, wrapping around.
type scriptedRand struct {
	vals []int
	i    int
}

func (r *scriptedRand) Intn(n int) int {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v % n
}

// mapFromRows builds a map from rows of '.' (traversable), '#' (blocked)
// and '?' (unknown).
func mapFromRows(rows ...string) *LocalMap {
	m := NewLocalMap(len(rows[0]), len(rows))
	for y, row := range rows {
		for x, c := range row {
			switch c {
			case '.':
				m.Set(game.Point{X: x, Y: y}, Traversable)
			case '#':
				m.Set(game.Point{X: x, Y: y}, Blocked)
			}
		}
	}
	return m
}

func dumpMap(m *LocalMap, marks map[game.Point]byte) string {
	var sb strings.Builder
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			p := game.Point{X: x, Y: y}
			if c, ok := marks[p]; ok {
				sb.WriteByte(c)
				continue
			}
			switch m.Get(p) {
			case Traversable:
				sb.WriteByte('.')
			case Blocked:
				sb.WriteByte('#')
			default:
				sb.WriteByte('?')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func logMap(t *testing.T, label string, m *LocalMap, marks map[game.Point]byte) {
	t.Helper()
	t.Logf("%s (%dx%d):\n%s", label, m.Width(), m.Height(), dumpMap(m, marks))
}

func hasMargin(m *LocalMap, p game.Point) bool {
	return p.X >= 1 && p.Y >= 1 && p.X <= m.Width()-2 && p.Y <= m.Height()-2
}
