package main

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/pathgrid/layout"
	"github.com/katalvlaran/pathgrid/search"
)

// compareAll is the PATHVIZ_ALGORITHM value that runs every search.
const compareAll = "all"

type outcome struct {
	alg search.Algorithm
	res *search.Result
}

// compare runs every algorithm on grid, one goroutine each, and logs a
// summary line per algorithm in declaration order. The graph is only read
// while the searches run.
func compare(ctx context.Context, logger *slog.Logger, grid *layout.Grid) ([]outcome, error) {
	algs := search.Algorithms()
	out := make([]outcome, len(algs))

	eg, ctx := errgroup.WithContext(ctx)
	for i, alg := range algs {
		i, alg := i, alg
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := search.Run(alg, grid.Graph, grid.Start, grid.Goal)
			if err != nil {
				return fmt.Errorf("search %s: %w", alg, err)
			}
			out[i] = outcome{alg: alg, res: res}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	for _, o := range out {
		logger.Info("search finished",
			"algorithm", o.alg.String(),
			"found", o.res.Found(),
			"visited", len(o.res.Visited),
			"path_length", len(o.res.Path),
			"cost", o.res.Cost,
		)
	}
	return out, nil
}
