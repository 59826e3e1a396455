package store

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"
)

// RoundWriter streams round traces for many games into one Parquet file.
// Rows go to outDir/tmp until Finalize moves the file into outDir.
type RoundWriter struct {
	tmpPath string
	outPath string

	file   *os.File
	writer *parquet.GenericWriter[RoundRow]

	games int
	rows  int
}

func NewRoundWriter(outDir string) (*RoundWriter, error) {
	if outDir == "" {
		return nil, fmt.Errorf("outDir is required")
	}

	absOut, err := filepath.Abs(outDir)
	if err != nil {
		absOut = outDir
	}
	tmpDir := filepath.Join(absOut, "tmp")
	if err := os.MkdirAll(tmpDir, 0o755); err != nil {
		return nil, fmt.Errorf("create tmp dir: %w", err)
	}

	name := fmt.Sprintf("rounds_%d.parquet", time.Now().UnixNano())
	tmpPath := filepath.Join(tmpDir, name)

	f, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open tmp parquet: %w", err)
	}

	w := parquet.NewGenericWriter[RoundRow](
		f,
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
	)
	w.SetKeyValueMetadata("schema", roundSchema)

	return &RoundWriter{
		tmpPath: tmpPath,
		outPath: filepath.Join(absOut, name),
		file:    f,
		writer:  w,
	}, nil
}

func (w *RoundWriter) OutPath() string { return w.outPath }
func (w *RoundWriter) Games() int      { return w.games }
func (w *RoundWriter) Rows() int       { return w.rows }

// WriteGame appends the rounds of one game.
func (w *RoundWriter) WriteGame(rows []RoundRow) error {
	if w.writer == nil {
		return fmt.Errorf("round writer is closed")
	}
	if len(rows) == 0 {
		return nil
	}
	if _, err := w.writer.Write(rows); err != nil {
		return err
	}
	w.rows += len(rows)
	w.games++
	return nil
}

// Finalize closes the file and moves it into place. If nothing was written
// the temp file is removed and outPath is empty.
func (w *RoundWriter) Finalize() (outPath string, err error) {
	if w.writer == nil && w.file == nil {
		return "", nil
	}

	var closeErr, fileErr error
	if w.writer != nil {
		closeErr = w.writer.Close()
		w.writer = nil
	}
	if w.file != nil {
		_ = w.file.Sync()
		fileErr = w.file.Close()
		w.file = nil
	}
	if closeErr != nil {
		return "", fmt.Errorf("close parquet writer: %w", closeErr)
	}
	if fileErr != nil {
		return "", fmt.Errorf("close parquet file: %w", fileErr)
	}

	if w.rows == 0 {
		_ = os.Remove(w.tmpPath)
		return "", nil
	}
	if err := os.Rename(w.tmpPath, w.outPath); err != nil {
		return "", fmt.Errorf("rename parquet: %w", err)
	}
	return w.outPath, nil
}
