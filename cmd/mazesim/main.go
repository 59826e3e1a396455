// Command mazesim plays many games on one maze and reports how often the
// goodies meet, the baddy catches them or the round limit runs out.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"github.com/brensch/rendezvous/game"
	"github.com/brensch/rendezvous/match"
	"github.com/brensch/rendezvous/mazes"
	"github.com/brensch/rendezvous/store"
)

type GameUpdate struct {
	WorkerID int
	Index    int
	Result   match.Result
}

type gameWriteRequest struct {
	result store.ResultRow
	rounds []store.RoundRow
}

func main() {
	mazeName := flag.String("maze", "open", "Maze to play on")
	mazeFile := flag.String("mazes", "", "YAML maze library (defaults to the built-in one)")
	games := flag.Int("games", 1000, "Number of games to play")
	workers := flag.Int("workers", 8, "Number of concurrent game workers")
	seed := flag.Int64("seed", 1, "Base seed; game i uses seed+i")
	maxRounds := flag.Int("max-rounds", 0, "Round limit per game (0 uses the library setting)")
	goody := flag.String("goody", "", "Goody kind: smart, random or static")
	baddy := flag.String("baddy", "", "Baddy kind: random or static")
	outDir := flag.String("out-dir", "", "If set, write result parquet batches here")
	gamesPerFlush := flag.Int("games-per-flush", 100, "Number of games to buffer per parquet flush")
	trace := flag.Bool("trace", false, "Also write every round to a parquet trace (needs -out-dir)")
	useTUI := flag.Bool("tui", false, "Show a live dashboard instead of progress lines")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn, error")
	flag.Parse()

	level, err := log.ParseLevel(*logLevel)
	if err != nil {
		log.Fatalf("bad -log-level: %v", err)
	}
	log.SetLevel(level)

	lib, err := loadLibrary(*mazeFile)
	if err != nil {
		log.Fatalf("load mazes: %v", err)
	}
	m, err := lib.Maze(*mazeName)
	if err != nil {
		log.Fatal(err)
	}

	settings := lib.Settings
	if *maxRounds > 0 {
		settings.MaxRounds = *maxRounds
	}
	if *goody != "" {
		settings.Goody = *goody
	}
	if *baddy != "" {
		settings.Baddy = *baddy
	}
	if *workers < 1 {
		*workers = 1
	}

	if *useTUI {
		f, err := os.OpenFile("mazesim.log", os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("open log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.WithFields(log.Fields{
		"maze":       *mazeName,
		"size":       fmt.Sprintf("%dx%d", m.Width, m.Height),
		"games":      *games,
		"workers":    *workers,
		"max_rounds": settings.MaxRounds,
		"goody":      settings.Goody,
		"baddy":      settings.Baddy,
	}).Info("starting")

	jobs := make(chan int)
	updates := make(chan GameUpdate, *workers)
	var writeReqs chan gameWriteRequest
	writerDone := make(chan struct{})
	if *outDir != "" {
		writeReqs = make(chan gameWriteRequest, (*workers)*4)
		go func() {
			parquetWriterLoop(*outDir, *gamesPerFlush, *trace, writeReqs)
			close(writerDone)
		}()
	} else {
		close(writerDone)
	}

	var workerWG sync.WaitGroup
	for w := 0; w < *workers; w++ {
		workerWG.Add(1)
		go func(workerID int) {
			defer workerWG.Done()
			for i := range jobs {
				res, rounds, err := playOne(ctx, m, settings, *seed+int64(i), *trace && writeReqs != nil)
				if err != nil {
					if ctx.Err() == nil {
						log.WithError(err).WithField("game", i).Error("game failed")
					}
					continue
				}
				if writeReqs != nil {
					writeReqs <- gameWriteRequest{
						result: store.NewResultRow(res, *mazeName, m, settings),
						rounds: rounds,
					}
				}
				updates <- GameUpdate{WorkerID: workerID, Index: i, Result: res}
			}
		}(w)
	}

	go func() {
		defer close(jobs)
		for i := 0; i < *games; i++ {
			select {
			case jobs <- i:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		workerWG.Wait()
		close(updates)
	}()

	var tally match.Tally
	if *useTUI {
		p := tea.NewProgram(initialModel(updates, *games, *mazeName))
		final, err := p.Run()
		if err != nil {
			log.Fatal(err)
		}
		stop()
		if fm, ok := final.(model); ok {
			tally = fm.tally
		}
		// Drain anything still in flight after quitting the dashboard.
		for u := range updates {
			tally.Add(u.Result)
		}
	} else {
		for u := range updates {
			tally.Add(u.Result)
			if tally.Games%10 == 0 {
				fmt.Println(tally.Games, "/", *games, ":", tally.String())
			}
		}
	}

	if writeReqs != nil {
		close(writeReqs)
	}
	<-writerDone

	fmt.Println(tally.String())
	fmt.Printf("average rounds %.1f, pings per game %.1f\n", tally.AvgRounds(), float64(tally.Pings)/float64(max(tally.Games, 1)))
}

func loadLibrary(path string) (*mazes.Library, error) {
	if path == "" {
		return mazes.Builtin()
	}
	return mazes.Load(path)
}

// playOne runs a single game, collecting its rounds when traced.
func playOne(ctx context.Context, m *game.Maze, s match.Settings, seed int64, traced bool) (match.Result, []store.RoundRow, error) {
	var rounds []store.RoundRow
	var states []*game.State
	var actions [][game.NumPlayers]game.Action
	var hook match.Hook
	if traced {
		hook = func(st *game.State, acts [game.NumPlayers]game.Action) {
			states = append(states, st)
			actions = append(actions, acts)
		}
	}
	res, err := match.Play(ctx, m, s, seed, hook)
	if err != nil {
		return res, nil, err
	}
	// The game id is only known once the game has run.
	for i, st := range states {
		rounds = append(rounds, store.NewRoundRow(res.GameID, st, actions[i]))
	}
	return res, rounds, nil
}

func parquetWriterLoop(outDir string, gamesPerFlush int, trace bool, in <-chan gameWriteRequest) {
	if gamesPerFlush <= 0 {
		gamesPerFlush = 100
	}

	var rw *store.RoundWriter
	if trace {
		var err error
		rw, err = store.NewRoundWriter(outDir)
		if err != nil {
			log.WithError(err).Error("round trace disabled")
		}
	}

	pending := make([]store.ResultRow, 0, gamesPerFlush)
	flush := func(final bool) {
		if len(pending) == 0 {
			return
		}
		outPath, err := store.WriteResultsBatchAtomic(outDir, pending)
		fields := log.Fields{"games": len(pending), "final": final}
		if err != nil {
			log.WithFields(fields).WithError(err).Error("parquet flush failed")
		} else {
			log.WithFields(fields).WithField("path", outPath).Info("parquet flush ok")
		}
		pending = pending[:0]
	}

	for req := range in {
		pending = append(pending, req.result)
		if rw != nil {
			if err := rw.WriteGame(req.rounds); err != nil {
				log.WithError(err).WithField("game_id", req.result.GameID).Error("write rounds")
			}
		}
		if len(pending) >= gamesPerFlush {
			flush(false)
		}
	}
	flush(true)

	if rw != nil {
		outPath, err := rw.Finalize()
		if err != nil {
			log.WithError(err).Error("finalize round trace")
			return
		}
		log.WithFields(log.Fields{"path": outPath, "games": rw.Games(), "rows": rw.Rows()}).Info("round trace written")
	}
}
