package store

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"

	"github.com/brensch/rendezvous/game"
	"github.com/brensch/rendezvous/match"
)

const (
	resultSchema = "game_result_v1"
	roundSchema  = "game_round_v1"
)

// ResultRow is the summary of one finished game.
type ResultRow struct {
	GameID  string `parquet:"game_id,dict"`
	Maze    string `parquet:"maze,dict"`
	Width   int32  `parquet:"width"`
	Height  int32  `parquet:"height"`
	Seed    int64  `parquet:"seed"`
	Outcome string `parquet:"outcome,dict"`
	Rounds  int32  `parquet:"rounds"`
	Pings   int32  `parquet:"pings"`
	Goody   string `parquet:"goody,dict"`
	Baddy   string `parquet:"baddy,dict"`
}

// RoundRow is one round of a game: every player's position after the round
// and the action that took it there, indexed by player slot.
type RoundRow struct {
	GameID  string  `parquet:"game_id,dict"`
	Round   int32   `parquet:"round"`
	X       []int32 `parquet:"x"`
	Y       []int32 `parquet:"y"`
	Actions []int32 `parquet:"actions"`
}

func NewResultRow(res match.Result, mazeName string, m *game.Maze, s match.Settings) ResultRow {
	return ResultRow{
		GameID:  res.GameID,
		Maze:    mazeName,
		Width:   int32(m.Width),
		Height:  int32(m.Height),
		Seed:    res.Seed,
		Outcome: res.Outcome.String(),
		Rounds:  int32(res.Rounds),
		Pings:   int32(res.Pings),
		Goody:   s.Goody,
		Baddy:   s.Baddy,
	}
}

func NewRoundRow(gameID string, state *game.State, actions [game.NumPlayers]game.Action) RoundRow {
	row := RoundRow{
		GameID:  gameID,
		Round:   int32(state.Round),
		X:       make([]int32, game.NumPlayers),
		Y:       make([]int32, game.NumPlayers),
		Actions: make([]int32, game.NumPlayers),
	}
	for i, p := range state.Positions {
		row.X[i] = int32(p.X)
		row.Y[i] = int32(p.Y)
		row.Actions[i] = int32(actions[i])
	}
	return row
}

// WriteResultsParquet writes rows to outPath through a temp file so readers
// never see a partial file.
func WriteResultsParquet(outPath string, rows []ResultRow) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	tmpPath := outPath + ".tmp"
	_ = os.Remove(tmpPath)

	if err := parquet.WriteFile(tmpPath, rows,
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
		parquet.KeyValueMetadata("schema", resultSchema),
	); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write parquet: %w", err)
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		return fmt.Errorf("rename parquet: %w", err)
	}
	return nil
}

// WriteResultsBatchAtomic writes a Parquet file into outDir/tmp and then
// atomically moves it into outDir. The returned path is the final file.
func WriteResultsBatchAtomic(outDir string, rows []ResultRow) (string, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	tmpDir := filepath.Join(outDir, "tmp")
	if err := os.MkdirAll(tmpDir, 0o755); err != nil {
		return "", fmt.Errorf("create tmp dir: %w", err)
	}

	name := fmt.Sprintf("results_%d.parquet", time.Now().UnixNano())
	finalPath := filepath.Join(outDir, name)
	tmpPath := filepath.Join(tmpDir, name+".tmp")
	_ = os.Remove(tmpPath)

	if err := parquet.WriteFile(tmpPath, rows,
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
		parquet.KeyValueMetadata("schema", resultSchema),
	); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("write parquet: %w", err)
	}

	if err := os.Rename(tmpPath, finalPath); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("rename parquet: %w", err)
	}

	return finalPath, nil
}

func ReadResults(path string) ([]ResultRow, error) {
	rows, err := parquet.ReadFile[ResultRow](path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return rows, nil
}

func ReadRounds(path string) ([]RoundRow, error) {
	rows, err := parquet.ReadFile[RoundRow](path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return rows, nil
}
