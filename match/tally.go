package match

import (
	"fmt"
	"strings"

	"github.com/brensch/rendezvous/rules"
)

// Tally accumulates results across many games.
type Tally struct {
	Games     int
	Rounds    int
	Pings     int
	ByOutcome map[rules.Outcome]int
}

func (t *Tally) Add(r Result) {
	if t.ByOutcome == nil {
		t.ByOutcome = make(map[rules.Outcome]int)
	}
	t.Games++
	t.Rounds += r.Rounds
	t.Pings += r.Pings
	t.ByOutcome[r.Outcome]++
}

// AvgRounds is the mean game length, zero before any game is added.
func (t *Tally) AvgRounds() float64 {
	if t.Games == 0 {
		return 0
	}
	return float64(t.Rounds) / float64(t.Games)
}

func (t *Tally) String() string {
	parts := make([]string, 0, 3)
	for _, o := range []rules.Outcome{rules.GoodiesWin, rules.BaddyWins, rules.Draw} {
		parts = append(parts, fmt.Sprintf("%s: %d", o, t.ByOutcome[o]))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
