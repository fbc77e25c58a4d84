// Command pathviz runs one grid search and replays it in the terminal.
//
// Configuration comes from PATHVIZ_* environment variables (see
// internal/config); the -layout and -algorithm flags override them.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/katalvlaran/pathgrid/gridgraph"
	"github.com/katalvlaran/pathgrid/internal/config"
	"github.com/katalvlaran/pathgrid/internal/logging"
	"github.com/katalvlaran/pathgrid/layout"
	"github.com/katalvlaran/pathgrid/search"
	"github.com/katalvlaran/pathgrid/visualizer"
)

const clearScreen = "\033[H\033[2J"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	layoutPath := flag.String("layout", cfg.Grid.LayoutPath, "YAML grid layout (blank grid when empty)")
	algorithm := flag.String("algorithm", cfg.Search.Algorithm, "bfs|dfs|dijkstra|gbfs|astar, or all to compare")
	flag.Parse()
	cfg.Grid.LayoutPath = *layoutPath
	cfg.Search.Algorithm = *algorithm

	logger := logging.New(os.Stderr, cfg.Logging)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, logger, cfg, os.Stdout); err != nil {
		logger.Error("pathviz failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, cfg config.Config, out io.Writer) error {
	grid, err := loadGrid(cfg.Grid)
	if err != nil {
		return err
	}
	if cfg.Search.Algorithm == compareAll {
		results, err := compare(ctx, logger, grid)
		if err != nil {
			return err
		}
		return writeTable(out, results)
	}
	alg, err := search.ParseAlgorithm(cfg.Search.Algorithm)
	if err != nil {
		return err
	}
	logger.Info("grid ready",
		"topology", grid.Graph.Topology().String(),
		"width", grid.Graph.Width,
		"height", grid.Graph.Height,
		"start", grid.Start.String(),
		"goal", grid.Goal.String(),
	)

	res, err := search.Run(alg, grid.Graph, grid.Start, grid.Goal)
	if err != nil {
		return fmt.Errorf("search %s: %w", alg, err)
	}
	logger.Info("search finished",
		"algorithm", alg.String(),
		"found", res.Found(),
		"visited", len(res.Visited),
		"path_length", len(res.Path),
		"cost", res.Cost,
	)
	if !res.Found() {
		suggestBreach(logger, grid)
	}

	board := visualizer.NewBoard(grid)
	steps := visualizer.Plan(res)
	if !cfg.Replay.Animate {
		for _, s := range steps {
			board.Apply(s)
		}
		return board.Render(out)
	}

	var session visualizer.Session
	delays := visualizer.Delays{Visited: cfg.Replay.VisitedDelay, Path: cfg.Replay.PathDelay}
	var frameErr error
	err = session.Play(ctx, board, steps, delays, func(visualizer.Step) {
		if frameErr != nil {
			return
		}
		if _, frameErr = io.WriteString(out, clearScreen); frameErr == nil {
			frameErr = board.Render(out)
		}
	})
	if err != nil {
		return err
	}
	return frameErr
}

func loadGrid(cfg config.GridConfig) (*layout.Grid, error) {
	if cfg.LayoutPath != "" {
		l, err := layout.Load(cfg.LayoutPath)
		if err != nil {
			return nil, err
		}
		return l.Build()
	}

	top, err := gridgraph.ParseTopology(cfg.Topology)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, cfg.Topology)
	}
	opts := []gridgraph.Option{gridgraph.WithTopology(top)}
	if cfg.Weighted {
		opts = append(opts, gridgraph.WithWeights())
	}
	return layout.Blank(cfg.Width, cfg.Height, opts...)
}

// suggestBreach logs the fewest walls the editor would have to clear to
// connect start and goal.
func suggestBreach(logger *slog.Logger, grid *layout.Grid) {
	route, walls, err := grid.Graph.BreachWalls(grid.Start, grid.Goal)
	if err != nil {
		logger.Warn("goal unreachable", "error", err)
		return
	}
	logger.Warn("goal unreachable",
		"walls_to_clear", walls,
		"route_length", len(route),
	)
}

func writeTable(out io.Writer, results []outcome) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ALGORITHM\tFOUND\tVISITED\tPATH\tCOST")
	for _, o := range results {
		fmt.Fprintf(tw, "%s\t%t\t%d\t%d\t%g\n", o.alg, o.res.Found(), len(o.res.Visited), len(o.res.Path), o.res.Cost)
	}
	return tw.Flush()
}
