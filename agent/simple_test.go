package agent

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/brensch/rendezvous/game"
)

func TestStaticPlayersStay(t *testing.T) {
	for _, p := range []game.Player{StaticGoody{}, StaticBaddy{}} {
		if got := p.TakeTurn(game.Obstruction{}, nil); got != game.Stay {
			t.Fatalf("%T action=%s want STAY", p, got)
		}
	}
}

func TestRandomGoody_OnlyOpenDirectionsOrPing(t *testing.T) {
	obs := game.Obstruction{true, false, true, false}
	want := []game.Action{game.Down, game.Right, game.Ping}
	for i, a := range want {
		g := NewRandomGoody(&scriptedRand{vals: []int{i}})
		if got := g.TakeTurn(obs, nil); got != a {
			t.Fatalf("roll %d: action=%s want %s", i, got, a)
		}
	}
}

func TestRandomBaddy_StaysWhenBoxedIn(t *testing.T) {
	b := NewRandomBaddy(rand.New(rand.NewSource(1)))
	if got := b.TakeTurn(game.Obstruction{true, true, true, true}, nil); got != game.Stay {
		t.Fatalf("action=%s want STAY", got)
	}
	obs := game.Obstruction{false, true, true, true}
	for i := 0; i < 20; i++ {
		if got := b.TakeTurn(obs, nil); got != game.Up {
			t.Fatalf("action=%s want the only open direction", got)
		}
	}
}

func TestFactory(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	g, err := NewGoody(KindSmart, rng)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := g.(*SmartGoody); !ok {
		t.Fatalf("got %T want *SmartGoody", g)
	}
	if _, err := NewGoody("clever", rng); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("err=%v want ErrUnknownKind", err)
	}
	b, err := NewBaddy(KindRandom, rng)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := b.(*RandomBaddy); !ok {
		t.Fatalf("got %T want *RandomBaddy", b)
	}
	if _, err := NewBaddy(KindSmart, rng); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("err=%v want ErrUnknownKind", err)
	}
}

func TestFactory_RejectsMissingRand(t *testing.T) {
	if _, err := NewGoody(KindSmart, nil); !errors.Is(err, ErrNoRand) {
		t.Fatalf("smart goody err=%v want ErrNoRand", err)
	}
	if _, err := NewGoody(KindRandom, nil); !errors.Is(err, ErrNoRand) {
		t.Fatalf("random goody err=%v want ErrNoRand", err)
	}
	if _, err := NewBaddy(KindRandom, nil); !errors.Is(err, ErrNoRand) {
		t.Fatalf("random baddy err=%v want ErrNoRand", err)
	}
	if _, err := NewGoody(KindStatic, nil); err != nil {
		t.Fatalf("static goody needs no rand: %v", err)
	}
	if _, err := NewBaddy(KindStatic, nil); err != nil {
		t.Fatalf("static baddy needs no rand: %v", err)
	}
}
