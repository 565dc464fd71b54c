package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/midway/bfs"
	"github.com/katalvlaran/midway/gridgraph"
	"github.com/katalvlaran/midway/meet"
)

// errMismatch reports a path longer than the BFS distance.
var errMismatch = errors.New("path is not shortest")

type gridFlags struct {
	width, height int
	mapFile       string
	from, to      string
	diagonal      bool
	verify        bool
	quiet         bool
}

func newGridCmd(a *app) *cobra.Command {
	f := &gridFlags{}
	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Find a shortest path between two cells of a grid",
		Long: `Find a shortest path between two cells of a rectangle or of an ASCII map,
where '.' is open floor and '#' is a wall. Coordinates are x,y with the
origin in the top-left corner.

Examples:
  midway grid --width 8 --height 5 --from 0,0 --to 7,4 --diagonal
  midway grid --map maze.txt --from 0,0 --to 20,11 --verify`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runGrid(cmd, f)
		},
	}

	cmd.Flags().IntVar(&f.width, "width", 10, "grid width when no --map is given")
	cmd.Flags().IntVar(&f.height, "height", 10, "grid height when no --map is given")
	cmd.Flags().StringVar(&f.mapFile, "map", "", "ASCII map file ('.' open, '#' wall)")
	cmd.Flags().StringVar(&f.from, "from", "0,0", "start cell as x,y")
	cmd.Flags().StringVar(&f.to, "to", "", "goal cell as x,y")
	cmd.Flags().BoolVar(&f.diagonal, "diagonal", false, "allow diagonal moves")
	cmd.Flags().BoolVar(&f.verify, "verify", false, "check the length against breadth-first search")
	cmd.Flags().BoolVar(&f.quiet, "quiet", false, "print only the path length")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func (a *app) runGrid(cmd *cobra.Command, f *gridFlags) error {
	conn := gridgraph.Conn4
	if f.diagonal {
		conn = gridgraph.Conn8
	}
	g, err := loadGrid(f, conn)
	if err != nil {
		return err
	}

	from, err := cellFlag(g, f.from)
	if err != nil {
		return fmt.Errorf("--from: %w", err)
	}
	to, err := cellFlag(g, f.to)
	if err != nil {
		return fmt.Errorf("--to: %w", err)
	}

	ctx, cancel := a.searchContext(cmd.Context())
	defer cancel()

	path, err := g.Path(from, to, a.searchOptions(ctx)...)
	if err != nil {
		return err
	}
	if err := meet.Verify[gridgraph.Cell, gridgraph.Move](path); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !f.quiet {
		moves := make([]string, 0, len(path))
		for _, c := range path {
			moves = append(moves, c.String())
		}
		fmt.Fprintln(out, strings.Join(moves, " "))
	}
	fmt.Fprintf(out, "length: %d\n", len(path)-1)

	if f.verify {
		want, err := bfs.Distance[gridgraph.Cell, gridgraph.Move](from, to, bfs.WithContext(ctx))
		if err != nil {
			return err
		}
		if want != len(path)-1 {
			return fmt.Errorf("%w: got %d, breadth-first search found %d", errMismatch, len(path)-1, want)
		}
		a.log.Info("path verified", zap.Int("length", want))
		fmt.Fprintln(out, "verified: ok")
	}

	return nil
}

// loadGrid reads --map or builds a width×height rectangle.
func loadGrid(f *gridFlags, conn gridgraph.Connectivity) (*gridgraph.GridGraph, error) {
	if f.mapFile == "" {
		return gridgraph.Rectangle(f.width, f.height, conn)
	}
	text, err := os.ReadFile(f.mapFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read map: %w", err)
	}
	return gridgraph.ParseGrid(string(text), conn)
}

// cellFlag parses "x,y" into a passable cell of g.
func cellFlag(g *gridgraph.GridGraph, s string) (gridgraph.Cell, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return gridgraph.Cell{}, fmt.Errorf("want x,y, got %q", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return gridgraph.Cell{}, fmt.Errorf("bad x in %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return gridgraph.Cell{}, fmt.Errorf("bad y in %q: %w", s, err)
	}
	return g.Cell(x, y)
}
