package main

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/midway/cube"
)

type cubeFlags struct {
	scramble int
	seed     int64
}

func newCubeCmd(a *app) *cobra.Command {
	f := &cubeFlags{}
	cmd := &cobra.Command{
		Use:   "cube",
		Short: "Scramble a Rubik's cube and solve it in the fewest turns",
		Long: `Scramble a solved cube with random layer turns, then search for the
shortest sequence of turns back to solved. Each of the 18 turns (3 axes,
2 layers, 1-3 quarter turns) counts as one move.

Searches deeper than about 7 turns need a lot of memory; bound them with
--max-discoveries or --timeout.

Examples:
  midway cube --scramble 5
  midway cube --scramble 7 --seed 3 --timeout 2m`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runCube(cmd, f)
		},
	}

	cmd.Flags().IntVar(&f.scramble, "scramble", 5, "number of random turns")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "random seed (0 uses bench.seed from config)")

	return cmd
}

func (a *app) runCube(cmd *cobra.Command, f *cubeFlags) error {
	if f.scramble < 0 {
		return fmt.Errorf("--scramble must be >= 0, got %d", f.scramble)
	}
	seed := f.seed
	if seed == 0 {
		seed = a.cfg.Bench.Seed
	}
	start := cube.Scramble(rand.New(rand.NewSource(seed)), f.scramble)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "scrambled with %d turns (seed %d):\n%s\n\n", f.scramble, seed, start)

	ctx, cancel := a.searchContext(cmd.Context())
	defer cancel()

	path, err := cube.Solve(start, a.searchOptions(ctx)...)
	if err != nil {
		return err
	}
	rots, err := cube.Rotations(path)
	if err != nil {
		return err
	}

	names := make([]string, len(rots))
	for i, r := range rots {
		names[i] = r.String()
	}
	a.log.Info("cube solved", zap.Int("turns", len(rots)), zap.Int64("seed", seed))
	fmt.Fprintf(out, "solved in %d turns: %s\n", len(rots), strings.Join(names, " "))

	return nil
}
