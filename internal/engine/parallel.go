package engine

import (
	"context"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"tictactoe/internal/tictactoe"
)

// SolveParallel is Solve with the first-move branches split across workers.
// Each branch is searched by a private Engine and the tables are merged into
// e once all branches are done. workers <= 0 means runtime.NumCPU().
func (e *Engine) SolveParallel(ctx context.Context, workers int) (SolveResult, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	start := time.Now()
	before := e.Stats()

	root := tictactoe.Empty
	if s, ok := e.table.Lookup(root.Index()); ok {
		e.nodes++
		e.hits++
		return e.result(s, before, time.Since(start)), nil
	}

	type branch struct {
		cell  int
		local *Engine
		score Score
	}
	var branches []*branch
	for empty := root.EmptyCells(); !empty.IsEmpty(); {
		branches = append(branches, &branch{cell: empty.Pop()})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, br := range branches {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			br.local = e.local()
			br.score = br.local.Search(root.Play(tictactoe.X, br.cell), false).Negate()
			e.log.Debug().
				Str("move", tictactoe.CellName(br.cell)).
				Str("score", br.score.String()).
				Int("positions", br.local.table.Known()).
				Msg("branch solved")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return SolveResult{}, err
	}

	best := Losing
	for _, br := range branches {
		if err := e.table.Merge(br.local.table); err != nil {
			return SolveResult{}, err
		}
		e.nodes += br.local.nodes
		e.hits += br.local.hits
		if br.score > best {
			best = br.score
		}
	}
	e.nodes++
	e.table.Store(root.Index(), best)

	res := e.result(best, before, time.Since(start))
	e.observe(res)
	e.log.Info().
		Str("score", best.String()).
		Int("positions", res.Positions).
		Int("workers", workers).
		Dur("took", res.TimeUsed).
		Msg("solved in parallel")
	return res, nil
}
