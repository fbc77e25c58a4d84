package visualizer

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/pathgrid/gridgraph"
	"github.com/katalvlaran/pathgrid/layout"
)

// TileState is the drawn state of one tile.
type TileState uint8

const (
	Unvisited TileState = iota
	Wall
	Weighted
	Start
	Goal
	Visited
	Path
)

var glyphs = [...]rune{
	Unvisited: '.',
	Wall:      '#',
	Weighted:  '~',
	Start:     'S',
	Goal:      'G',
	Visited:   'o',
	Path:      '*',
}

// Glyph returns the character Render draws for s.
func (s TileState) Glyph() rune {
	if int(s) < len(glyphs) {
		return glyphs[s]
	}
	return '?'
}

// Board is the tile-state table of one grid, stored row-major.
type Board struct {
	grid  *layout.Grid
	tiles []TileState
}

// NewBoard builds a board in its cleared state.
func NewBoard(grid *layout.Grid) *Board {
	b := &Board{
		grid:  grid,
		tiles: make([]TileState, grid.Graph.Width*grid.Graph.Height),
	}
	b.Reset()
	return b
}

// Reset drops every Visited and Path mark and re-reads walls, weights and
// endpoints from the grid, which the editor may have changed.
func (b *Board) Reset() {
	g := b.grid.Graph
	for j := 0; j < g.Height; j++ {
		for i := 0; i < g.Width; i++ {
			c := g.CoordAt(i, j)
			b.tiles[j*g.Width+i] = b.base(c)
		}
	}
}

func (b *Board) base(c gridgraph.Coord) TileState {
	switch c {
	case b.grid.Start:
		return Start
	case b.grid.Goal:
		return Goal
	}
	n, _ := b.grid.Graph.Node(c)
	switch {
	case !n.Walkable:
		return Wall
	case b.grid.Graph.Weighted() && n.Weight > 0:
		return Weighted
	}
	return Unvisited
}

func (b *Board) index(c gridgraph.Coord) (int, bool) {
	g := b.grid.Graph
	if !g.Contains(c) {
		return 0, false
	}
	i, j := g.Index(c)
	return j*g.Width + i, true
}

// State returns the current state of c; false if c is off the board.
func (b *Board) State(c gridgraph.Coord) (TileState, bool) {
	idx, ok := b.index(c)
	if !ok {
		return Unvisited, false
	}
	return b.tiles[idx], true
}

// Apply paints one step. Start and goal keep their own state, as do walls.
// Reports whether the tile changed.
func (b *Board) Apply(s Step) bool {
	idx, ok := b.index(s.Coord)
	if !ok {
		return false
	}
	switch b.tiles[idx] {
	case Start, Goal, Wall:
		return false
	}
	if b.tiles[idx] == s.State {
		return false
	}
	b.tiles[idx] = s.State
	return true
}

// Render draws the board one row per line. Odd hexagon rows are shifted
// half a tile right.
func (b *Board) Render(w io.Writer) error {
	g := b.grid.Graph
	bw := bufio.NewWriter(w)
	for j := 0; j < g.Height; j++ {
		if g.Topology() == gridgraph.Hexagon && j%2 == 1 {
			bw.WriteByte(' ')
		}
		for i := 0; i < g.Width; i++ {
			if i > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteRune(b.tiles[j*g.Width+i].Glyph())
		}
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("visualizer: render: %w", err)
	}
	return nil
}
