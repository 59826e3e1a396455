package game

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidMaze = errors.New("invalid maze")

// Maze is the authoritative wall layout. Cells outside the maze count as walls.
type Maze struct {
	Width  int
	Height int
	walls  []bool
}

// NewMaze returns an open maze with no interior walls.
func NewMaze(width, height int) *Maze {
	return &Maze{Width: width, Height: height, walls: make([]bool, width*height)}
}

// ParseMaze reads a row-major string of '0' (open) and '1' (wall) cells.
// Whitespace is ignored so rows may be laid out on separate lines.
func ParseMaze(width, height int, cells string) (*Maze, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrInvalidMaze, width, height)
	}
	m := NewMaze(width, height)
	i := 0
	for _, c := range cells {
		switch c {
		case ' ', '\t', '\n', '\r':
			continue
		case '0', '1':
		default:
			return nil, fmt.Errorf("%w: unexpected cell %q", ErrInvalidMaze, c)
		}
		if i >= len(m.walls) {
			return nil, fmt.Errorf("%w: more than %d cells", ErrInvalidMaze, len(m.walls))
		}
		m.walls[i] = c == '1'
		i++
	}
	if i != len(m.walls) {
		return nil, fmt.Errorf("%w: got %d cells, want %d", ErrInvalidMaze, i, len(m.walls))
	}
	return m, nil
}

func (m *Maze) InBounds(p Point) bool {
	return p.X >= 0 && p.X < m.Width && p.Y >= 0 && p.Y < m.Height
}

// Blocked reports whether p is a wall or outside the maze.
func (m *Maze) Blocked(p Point) bool {
	if !m.InBounds(p) {
		return true
	}
	return m.walls[p.Y*m.Width+p.X]
}

// Tile repeats the maze nx times horizontally and ny times vertically.
func (m *Maze) Tile(nx, ny int) *Maze {
	if nx < 1 {
		nx = 1
	}
	if ny < 1 {
		ny = 1
	}
	out := NewMaze(m.Width*nx, m.Height*ny)
	for y := 0; y < out.Height; y++ {
		for x := 0; x < out.Width; x++ {
			out.walls[y*out.Width+x] = m.walls[(y%m.Height)*m.Width+x%m.Width]
		}
	}
	return out
}

// OpenCells lists every non-wall cell in row-major order.
func (m *Maze) OpenCells() []Point {
	out := make([]Point, 0, len(m.walls))
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if !m.walls[y*m.Width+x] {
				out = append(out, Point{X: x, Y: y})
			}
		}
	}
	return out
}

func (m *Maze) grid() [][]byte {
	grid := make([][]byte, m.Height)
	for y := range grid {
		grid[y] = make([]byte, m.Width)
		for x := range grid[y] {
			if m.walls[y*m.Width+x] {
				grid[y][x] = '#'
			} else {
				grid[y][x] = '.'
			}
		}
	}
	return grid
}

// String renders walls as '#' and open cells as '.', one row per line.
func (m *Maze) String() string {
	var sb strings.Builder
	for _, row := range m.grid() {
		sb.Write(row)
		sb.WriteByte('\n')
	}
	return sb.String()
}
