package main

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/midway/cube"
	"github.com/katalvlaran/midway/meet"
)

type benchFlags struct {
	count   int
	depth   int
	workers int
	seed    int64
}

// benchResult is the outcome of solving one scramble.
type benchResult struct {
	turns   int
	splits  int // solver runs, one per meeting state
	elapsed time.Duration
}

func newBenchCmd(a *app) *cobra.Command {
	f := &benchFlags{}
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Solve many random cube scrambles concurrently",
		Long: `Generate --count scrambles of --depth random turns from one seed and solve
them on --workers goroutines. Every solve is an independent search; the
first failure cancels the rest.

Examples:
  midway bench --count 100 --depth 5
  midway bench --count 20 --depth 6 --workers 8 --seed 7`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runBench(cmd, f)
		},
	}

	cmd.Flags().IntVar(&f.count, "count", 20, "number of scrambles")
	cmd.Flags().IntVar(&f.depth, "depth", 5, "random turns per scramble")
	cmd.Flags().IntVar(&f.workers, "workers", 0, "concurrent solves (0 uses bench.workers from config)")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "random seed (0 uses bench.seed from config)")

	return cmd
}

func (a *app) runBench(cmd *cobra.Command, f *benchFlags) error {
	if f.count < 1 || f.depth < 0 || f.workers < 0 {
		return fmt.Errorf("--count must be >= 1, --depth and --workers >= 0")
	}
	workers, seed := f.workers, f.seed
	if workers == 0 {
		workers = a.cfg.Bench.Workers
	}
	if seed == 0 {
		seed = a.cfg.Bench.Seed
	}

	rng := rand.New(rand.NewSource(seed))
	scrambles := make([]cube.Cube, f.count)
	for i := range scrambles {
		scrambles[i] = cube.Scramble(rng, f.depth)
	}

	started := time.Now()
	results, err := a.solveAll(cmd.Context(), scrambles, workers)
	if err != nil {
		return err
	}
	total := time.Since(started)

	printSummary(cmd, results, total)
	a.log.Info("bench finished",
		zap.Int("count", f.count),
		zap.Int("depth", f.depth),
		zap.Int("workers", workers),
		zap.Duration("elapsed", total),
	)
	return nil
}

// solveAll solves every scramble with at most workers concurrent searches.
func (a *app) solveAll(ctx context.Context, scrambles []cube.Cube, workers int) ([]benchResult, error) {
	results := make([]benchResult, len(scrambles))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, c := range scrambles {
		g.Go(func() error {
			sctx, cancel := a.searchContext(gCtx)
			defer cancel()

			splits := 0
			opts := append(a.searchOptions(sctx),
				meet.WithOnMeet(func(fmt.Stringer, int) { splits++ }),
			)
			start := time.Now()
			path, err := cube.Solve(c, opts...)
			if err != nil {
				return fmt.Errorf("scramble %d: %w", i, err)
			}
			results[i] = benchResult{
				turns:   len(path) - 1,
				splits:  splits,
				elapsed: time.Since(start),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// printSummary writes a turn histogram and latency percentiles.
func printSummary(cmd *cobra.Command, results []benchResult, total time.Duration) {
	out := cmd.OutOrStdout()

	hist := map[int]int{}
	durations := make([]time.Duration, len(results))
	splits := 0
	for i, r := range results {
		hist[r.turns]++
		durations[i] = r.elapsed
		splits += r.splits
	}
	turns := make([]int, 0, len(hist))
	for t := range hist {
		turns = append(turns, t)
	}
	sort.Ints(turns)
	sort.Slice(durations, func(i, j int) bool { return durations[i] < durations[j] })

	fmt.Fprintf(out, "solved %d scrambles in %s\n", len(results), total.Round(time.Millisecond))
	for _, t := range turns {
		fmt.Fprintf(out, "  %2d turns: %d\n", t, hist[t])
	}
	fmt.Fprintf(out, "solver runs: %d\n", splits)
	fmt.Fprintf(out, "p50: %s  p90: %s  max: %s\n",
		percentile(durations, 50), percentile(durations, 90), durations[len(durations)-1])
}

// percentile returns the p-th percentile of sorted durations.
func percentile(sorted []time.Duration, p int) time.Duration {
	i := (len(sorted) - 1) * p / 100
	return sorted[i]
}
