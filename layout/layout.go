// Package layout is the grid editor side of pathgrid: it reads grid
// layouts from text or YAML, builds the gridgraph.Graph with its start and
// goal, and applies the editor's wall and endpoint moves.
//
// Text glyphs, one per tile, rows top to bottom; spaces are ignored so hex
// rows may be indented for readability:
//
//	.    open tile
//	#    wall
//	S    start (exactly one)
//	G    goal (exactly one)
//	1-9  open tile with that extra weight
//
// YAML form:
//
//	topology: hexagon
//	weighted: true
//	rows:
//	  - "S . . 3"
//	  - " . # . G"
package layout

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pathgrid/gridgraph"
)

// Layout is the serializable description of a grid.
type Layout struct {
	Topology string   `yaml:"topology"`
	Weighted bool     `yaml:"weighted"`
	Rows     []string `yaml:"rows"`
}

// Grid is a built layout: the graph plus its designated endpoints.
type Grid struct {
	Graph *gridgraph.Graph
	Start gridgraph.Coord
	Goal  gridgraph.Coord
}

// Parse reads a layout from text, one row per non-blank line.
func Parse(text string, topology gridgraph.Topology, weighted bool) *Layout {
	l := &Layout{Topology: topology.String(), Weighted: weighted}
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		l.Rows = append(l.Rows, line)
	}
	return l
}

// Decode reads a YAML layout from r.
func Decode(r io.Reader) (*Layout, error) {
	var l Layout
	if err := yaml.NewDecoder(r).Decode(&l); err != nil {
		return nil, fmt.Errorf("layout: decode yaml: %w", err)
	}
	return &l, nil
}

// Load reads a YAML layout file.
func Load(path string) (*Layout, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("layout: open %s: %w", path, err)
	}
	defer f.Close()
	return Decode(f)
}

// Encode writes l as YAML to w.
func (l *Layout) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(l); err != nil {
		return fmt.Errorf("layout: encode yaml: %w", err)
	}
	return enc.Close()
}

// glyphs strips the spacing from one row.
func glyphs(row string) []rune {
	out := make([]rune, 0, len(row))
	for _, r := range row {
		if r != ' ' && r != '\t' && r != '\r' {
			out = append(out, r)
		}
	}
	return out
}

// Build constructs the Grid described by l. Row j, column i becomes storage
// slot (i, j); the tile coordinate follows the topology.
func (l *Layout) Build() (*Grid, error) {
	top, err := gridgraph.ParseTopology(l.Topology)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, l.Topology)
	}
	if len(l.Rows) == 0 {
		return nil, gridgraph.ErrEmptyGrid
	}
	rows := make([][]rune, len(l.Rows))
	for j, row := range l.Rows {
		rows[j] = glyphs(row)
		if len(rows[j]) != len(rows[0]) {
			return nil, fmt.Errorf("%w: row %d has %d tiles, want %d", gridgraph.ErrNonRectangular, j, len(rows[j]), len(rows[0]))
		}
	}

	opts := []gridgraph.Option{gridgraph.WithTopology(top)}
	if l.Weighted {
		opts = append(opts, gridgraph.WithWeights())
	}
	g, err := gridgraph.New(len(rows[0]), len(rows), opts...)
	if err != nil {
		return nil, err
	}

	grid := &Grid{Graph: g}
	var haveStart, haveGoal bool
	for j, row := range rows {
		for i, r := range row {
			c := g.CoordAt(i, j)
			switch {
			case r == '.':
			case r == '#':
				if err := g.SetWall(c, true); err != nil {
					return nil, err
				}
			case r == 'S':
				if haveStart {
					return nil, fmt.Errorf("%w: %v", ErrDuplicateStart, c)
				}
				haveStart, grid.Start = true, c
			case r == 'G':
				if haveGoal {
					return nil, fmt.Errorf("%w: %v", ErrDuplicateGoal, c)
				}
				haveGoal, grid.Goal = true, c
			case r >= '1' && r <= '9':
				if err := g.SetWeight(c, float64(r-'0')); err != nil {
					return nil, err
				}
			default:
				return nil, fmt.Errorf("%w: %q at row %d column %d", ErrBadGlyph, r, j, i)
			}
		}
	}
	if !haveStart {
		return nil, ErrNoStart
	}
	if !haveGoal {
		return nil, ErrNoGoal
	}
	return grid, nil
}

// DefaultEndpoints returns the storage slots an empty editor grid starts
// with: start a fifth of the way in from the left, goal mirrored on the
// right, both on the middle row.
func DefaultEndpoints(width, height int) (start, goal [2]int) {
	xOffset := int(math.Floor(float64(width) * 0.2))
	y := int(math.Round(float64(height) / 2))
	if y > height-1 {
		y = height - 1
	}
	gx := width - 1 - xOffset
	return [2]int{xOffset, y}, [2]int{gx, y}
}

// Blank builds an open width×height grid with the default endpoints.
// Grids narrower than two tiles cannot hold distinct endpoints and return
// ErrOccupied.
func Blank(width, height int, opts ...gridgraph.Option) (*Grid, error) {
	g, err := gridgraph.New(width, height, opts...)
	if err != nil {
		return nil, err
	}
	s, t := DefaultEndpoints(width, height)
	grid := &Grid{
		Graph: g,
		Start: g.CoordAt(s[0], s[1]),
		Goal:  g.CoordAt(t[0], t[1]),
	}
	if grid.Start == grid.Goal {
		return nil, ErrOccupied
	}
	return grid, nil
}

// ToggleWall flips c between wall and open. The endpoints cannot be walled.
func (gr *Grid) ToggleWall(c gridgraph.Coord) error {
	if c == gr.Start || c == gr.Goal {
		return fmt.Errorf("%w: %v", ErrEndpointTile, c)
	}
	n, ok := gr.Graph.Node(c)
	if !ok {
		return fmt.Errorf("%w: %v", gridgraph.ErrOutOfBounds, c)
	}
	return gr.Graph.SetWall(c, n.Walkable)
}

// MoveStart drags the start onto c, clearing any wall there.
func (gr *Grid) MoveStart(c gridgraph.Coord) error {
	if err := gr.moveCheck(c, gr.Goal); err != nil {
		return err
	}
	gr.Start = c
	return gr.Graph.SetWall(c, false)
}

// MoveGoal drags the goal onto c, clearing any wall there.
func (gr *Grid) MoveGoal(c gridgraph.Coord) error {
	if err := gr.moveCheck(c, gr.Start); err != nil {
		return err
	}
	gr.Goal = c
	return gr.Graph.SetWall(c, false)
}

func (gr *Grid) moveCheck(c, other gridgraph.Coord) error {
	if !gr.Graph.Contains(c) {
		return fmt.Errorf("%w: %v", gridgraph.ErrOutOfBounds, c)
	}
	if c == other {
		return fmt.Errorf("%w: %v", ErrOccupied, c)
	}
	return nil
}

// Layout renders gr back into its serializable form. Only whole-number
// weights survive the round trip: a weight is rounded to the nearest
// integer and clamped to 9, so 0.4 becomes '.', 2.6 becomes '3' and 12
// becomes '9'.
func (gr *Grid) Layout() *Layout {
	g := gr.Graph
	l := &Layout{Topology: g.Topology().String(), Weighted: g.Weighted(), Rows: make([]string, g.Height)}
	var b strings.Builder
	for j := 0; j < g.Height; j++ {
		b.Reset()
		if g.Topology() == gridgraph.Hexagon && j%2 == 1 {
			b.WriteByte(' ')
		}
		for i := 0; i < g.Width; i++ {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteRune(gr.glyph(g.CoordAt(i, j)))
		}
		l.Rows[j] = b.String()
	}
	return l
}

func (gr *Grid) glyph(c gridgraph.Coord) rune {
	n, _ := gr.Graph.Node(c)
	switch {
	case c == gr.Start:
		return 'S'
	case c == gr.Goal:
		return 'G'
	case !n.Walkable:
		return '#'
	case math.Round(n.Weight) >= 1:
		return rune('0' + int(math.Min(9, math.Round(n.Weight))))
	}
	return '.'
}
