package rules

import (
	"fmt"
	"strings"
	"testing"

	"github.com/brensch/rendezvous/game"
)

func dumpState(state *game.State) string {
	if state == nil {
		return "<nil state>"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Round=%d Size=%dx%d\n", state.Round, state.Maze.Width, state.Maze.Height)
	b.WriteString(state.Render())
	return b.String()
}

func logStep(t *testing.T, name string, before *game.State, actions [game.NumPlayers]game.Action, after *game.State, outcome Outcome) {
	t.Helper()
	t.Logf("=== %s ===\nBefore:\n%sActions: %v\nAfter:\n%sOutcome: %s", name, dumpState(before), actions, dumpState(after), outcome)
}

func mustMaze(t *testing.T, w, h int, cells string) *game.Maze {
	t.Helper()
	m, err := game.ParseMaze(w, h, cells)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestObserve_WallsAndBoundary(t *testing.T) {
	m := mustMaze(t, 3, 3, ""+
		"010"+
		"000"+
		"001")
	obs := Observe(m, game.Point{X: 0, Y: 0})
	want := game.Obstruction{true, false, true, true} // up=edge, down=open, left=edge, right=wall
	if obs != want {
		t.Fatalf("obs=%v want=%v", obs, want)
	}
	obs = Observe(m, game.Point{X: 1, Y: 1})
	want = game.Obstruction{true, false, false, false}
	if obs != want {
		t.Fatalf("centre obs=%v want=%v", obs, want)
	}
}

func TestPingFor_OffsetsAreOtherMinusSelf(t *testing.T) {
	state := &game.State{
		Maze:      game.NewMaze(8, 8),
		Positions: [game.NumPlayers]game.Point{{X: 1, Y: 1}, {X: 4, Y: 5}, {X: 0, Y: 3}},
	}
	resp := PingFor(state, game.GoodyA)
	if len(resp) != 2 {
		t.Fatalf("len=%d want 2", len(resp))
	}
	if resp[0] != (game.Sighting{Kind: game.Goody, Offset: game.Point{X: 3, Y: 4}}) {
		t.Fatalf("ally sighting=%+v", resp[0])
	}
	if resp[1] != (game.Sighting{Kind: game.Baddy, Offset: game.Point{X: -1, Y: 2}}) {
		t.Fatalf("baddy sighting=%+v", resp[1])
	}

	all := Broadcast(state)
	for _, s := range all[game.TheBaddy] {
		if s.Kind != game.Goody {
			t.Fatalf("the baddy should only see goodies, got %+v", s)
		}
	}
	// Adding the offset to the receiver gives the other player's cell.
	for who, resp := range all {
		for _, s := range resp {
			p := state.Positions[who].Add(s.Offset)
			found := false
			for i, q := range state.Positions {
				if i != who && q == p {
					found = true
				}
			}
			if !found {
				t.Fatalf("player %d resolved %v to nobody", who, p)
			}
		}
	}
}

func TestStep_MoveIntoWallStays(t *testing.T) {
	m := mustMaze(t, 3, 3, "010000000")
	before := &game.State{Maze: m, Positions: [game.NumPlayers]game.Point{{X: 0, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}}}
	actions := [game.NumPlayers]game.Action{game.Right, game.Down, game.Left}
	after, outcome := Step(before, actions)
	logStep(t, "wall", before, actions, after, outcome)

	if after.Positions != before.Positions {
		t.Fatalf("every move was illegal, positions changed: %v", after.Positions)
	}
	if after.Round != 1 || before.Round != 0 {
		t.Fatalf("round accounting wrong: before=%d after=%d", before.Round, after.Round)
	}
	if outcome != Running {
		t.Fatalf("outcome=%s want running", outcome)
	}
}

func TestStep_BaddyCatchesOnSameCell(t *testing.T) {
	m := game.NewMaze(5, 1)
	before := &game.State{Maze: m, Positions: [game.NumPlayers]game.Point{{X: 1, Y: 0}, {X: 4, Y: 0}, {X: 2, Y: 0}}}
	actions := [game.NumPlayers]game.Action{game.Stay, game.Stay, game.Left}
	after, outcome := Step(before, actions)
	logStep(t, "catch", before, actions, after, outcome)
	if outcome != BaddyWins {
		t.Fatalf("outcome=%s want baddy_wins", outcome)
	}
}

func TestStep_SwapCountsAsMeeting(t *testing.T) {
	m := game.NewMaze(4, 3)
	before := &game.State{Maze: m, Positions: [game.NumPlayers]game.Point{{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 2}}}
	actions := [game.NumPlayers]game.Action{game.Right, game.Left, game.Stay}
	after, outcome := Step(before, actions)
	logStep(t, "swap", before, actions, after, outcome)
	if outcome != GoodiesWin {
		t.Fatalf("outcome=%s want goodies_win", outcome)
	}
}

func TestStep_CatchBeatsMeeting(t *testing.T) {
	m := game.NewMaze(3, 3)
	before := &game.State{Maze: m, Positions: [game.NumPlayers]game.Point{{X: 0, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 0}}}
	actions := [game.NumPlayers]game.Action{game.Right, game.Left, game.Down}
	after, outcome := Step(before, actions)
	logStep(t, "three-way", before, actions, after, outcome)
	if outcome != BaddyWins {
		t.Fatalf("outcome=%s want baddy_wins", outcome)
	}
}

func TestAnyPing(t *testing.T) {
	if AnyPing([game.NumPlayers]game.Action{game.Up, game.Stay, game.Left}) {
		t.Fatalf("no ping expected")
	}
	if !AnyPing([game.NumPlayers]game.Action{game.Up, game.Ping, game.Left}) {
		t.Fatalf("ping expected")
	}
}
