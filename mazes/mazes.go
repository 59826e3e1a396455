// Package mazes loads named maze layouts and default match settings from
// YAML. A built-in library is embedded in the binary.
package mazes

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/brensch/rendezvous/game"
	"github.com/brensch/rendezvous/match"
)

//go:embed builtin.yaml
var builtinYAML []byte

var ErrUnknownMaze = errors.New("unknown maze")

// Entry is one maze as written in YAML. Rows use '1' for walls and '0' for
// open cells. Tile, when set, repeats the layout across and down.
type Entry struct {
	Name   string   `yaml:"name"`
	Width  int      `yaml:"width"`
	Height int      `yaml:"height"`
	Tile   []int    `yaml:"tile"`
	Rows   []string `yaml:"rows"`
}

type Library struct {
	Settings match.Settings `yaml:"settings"`
	Mazes    []Entry        `yaml:"mazes"`
}

// Builtin returns the embedded library.
func Builtin() (*Library, error) {
	return Parse(builtinYAML)
}

// Load reads a library from a YAML file.
func Load(path string) (*Library, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	lib, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lib, nil
}

// Parse decodes a library and checks that every maze builds.
func Parse(b []byte) (*Library, error) {
	var lib Library
	if err := yaml.Unmarshal(b, &lib); err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(lib.Mazes))
	for _, e := range lib.Mazes {
		if seen[e.Name] {
			return nil, fmt.Errorf("%w: duplicate name %q", game.ErrInvalidMaze, e.Name)
		}
		seen[e.Name] = true
		if _, err := e.Build(); err != nil {
			return nil, err
		}
	}
	lib.Settings = lib.Settings.WithDefaults()
	return &lib, nil
}

// Build turns the entry into a maze, tiled if requested.
func (e Entry) Build() (*game.Maze, error) {
	m, err := game.ParseMaze(e.Width, e.Height, strings.Join(e.Rows, ""))
	if err != nil {
		return nil, fmt.Errorf("maze %q: %w", e.Name, err)
	}
	switch len(e.Tile) {
	case 0:
		return m, nil
	case 2:
		return m.Tile(e.Tile[0], e.Tile[1]), nil
	}
	return nil, fmt.Errorf("%w: maze %q tile wants 2 values, got %d", game.ErrInvalidMaze, e.Name, len(e.Tile))
}

// Maze builds the named maze.
func (l *Library) Maze(name string) (*game.Maze, error) {
	for _, e := range l.Mazes {
		if e.Name == name {
			return e.Build()
		}
	}
	return nil, fmt.Errorf("%w: %q (have %s)", ErrUnknownMaze, name, strings.Join(l.Names(), ", "))
}

// Names lists the library's mazes alphabetically.
func (l *Library) Names() []string {
	names := make([]string, 0, len(l.Mazes))
	for _, e := range l.Mazes {
		names = append(names, e.Name)
	}
	sort.Strings(names)
	return names
}
