// Command playgame plays a single game and prints the board after every
// round.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/brensch/rendezvous/game"
	"github.com/brensch/rendezvous/match"
	"github.com/brensch/rendezvous/mazes"
	"github.com/brensch/rendezvous/store"
)

func main() {
	mazeName := flag.String("maze", "example", "Maze to play on")
	mazeFile := flag.String("mazes", "", "YAML maze library (defaults to the built-in one)")
	seed := flag.Int64("seed", time.Now().UnixNano(), "Game seed")
	delay := flag.Duration("delay", 100*time.Millisecond, "Pause between rounds")
	goody := flag.String("goody", "", "Goody kind: smart, random or static")
	baddy := flag.String("baddy", "", "Baddy kind: random or static")
	maxRounds := flag.Int("max-rounds", 0, "Round limit (0 uses the library setting)")
	out := flag.String("out", "", "If set, write the result to this parquet file")
	verbose := flag.Bool("v", false, "Log every round")
	flag.Parse()

	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	var lib *mazes.Library
	var err error
	if *mazeFile == "" {
		lib, err = mazes.Builtin()
	} else {
		lib, err = mazes.Load(*mazeFile)
	}
	if err != nil {
		log.Fatalf("load mazes: %v", err)
	}
	m, err := lib.Maze(*mazeName)
	if err != nil {
		log.Fatal(err)
	}

	s := lib.Settings
	if *goody != "" {
		s.Goody = *goody
	}
	if *baddy != "" {
		s.Baddy = *baddy
	}
	if *maxRounds > 0 {
		s.MaxRounds = *maxRounds
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	hook := func(st *game.State, actions [game.NumPlayers]game.Action) {
		fmt.Println(match.FormatRound(st, actions))
		if *delay > 0 {
			time.Sleep(*delay)
		}
	}

	res, err := match.Play(ctx, m, s, *seed, hook)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%s after %d rounds (%d pings, seed %d)\n", res.Outcome, res.Rounds, res.Pings, res.Seed)

	if *out != "" {
		row := store.NewResultRow(res, *mazeName, m, s)
		if err := store.WriteResultsParquet(*out, []store.ResultRow{row}); err != nil {
			log.WithError(err).Fatal("write result")
		}
		log.WithField("path", *out).Info("result written")
	}
}
