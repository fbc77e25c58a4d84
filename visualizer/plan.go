package visualizer

import (
	"github.com/katalvlaran/pathgrid/gridgraph"
	"github.com/katalvlaran/pathgrid/search"
)

// Step recolors one tile.
type Step struct {
	gridgraph.Coord
	State TileState
}

// Plan lists the replay of res: each visited tile in expansion order,
// then each path tile from start to goal. A nil res or an empty path
// yields only what exists.
func Plan(res *search.Result) []Step {
	if res == nil {
		return nil
	}
	steps := make([]Step, 0, len(res.Visited)+len(res.Path))
	for _, c := range res.Visited {
		steps = append(steps, Step{Coord: c, State: Visited})
	}
	for _, c := range res.Path {
		steps = append(steps, Step{Coord: c, State: Path})
	}
	return steps
}
