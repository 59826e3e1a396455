// Package store persists match results and round traces as zstd-compressed
// Parquet files.
package store
