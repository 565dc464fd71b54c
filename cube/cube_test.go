package cube_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/midway/cube"
	"github.com/katalvlaran/midway/meet"
)

// CubeSuite covers the cube encoding, its rotations and solving.
type CubeSuite struct {
	suite.Suite
}

func TestCubeSuite(t *testing.T) {
	suite.Run(t, new(CubeSuite))
}

// TestFaceGetSet verifies that Set returns a copy and Get reads it back.
func (s *CubeSuite) TestFaceGetSet() {
	f := cube.Uniform(2)
	g := f.Set(4, 5)
	require.Equal(s.T(), cube.Color(2), f.Get(4), "Set must not modify the receiver")
	require.Equal(s.T(), cube.Color(5), g.Get(4))
	require.True(s.T(), f.IsUniform())
	require.False(s.T(), g.IsUniform())
	require.Equal(s.T(), "CCC/CFC/CCC", g.String())
}

// TestNewRejectsBadColors checks both construction errors.
func (s *CubeSuite) TestNewRejectsBadColors() {
	faces := cube.Solved().Faces()

	bad := faces
	bad[cube.Front][0] = 6
	_, err := cube.New(bad)
	require.ErrorIs(s.T(), err, cube.ErrInvalidColor)

	skewed := faces
	skewed[cube.Front][0] = 0
	_, err = cube.New(skewed)
	require.ErrorIs(s.T(), err, cube.ErrColorCount)

	c, err := cube.New(faces)
	require.NoError(s.T(), err)
	require.Equal(s.T(), cube.Solved(), c)
}

// TestRotationPacking round-trips every field and checks that all 18
// rotations are distinct and valid.
func (s *CubeSuite) TestRotationPacking() {
	seen := make(map[cube.Rotation]bool)
	for _, r := range cube.AllRotations {
		require.True(s.T(), r.Valid())
		require.False(s.T(), seen[r], "duplicate rotation %s", r)
		seen[r] = true
		require.Equal(s.T(), r, cube.NewRotation(r.Axis(), r.Layer(), r.Times()))
	}
	require.Len(s.T(), seen, 18)

	r := cube.NewRotation(cube.Z, cube.LayerLast, cube.Twice)
	require.Equal(s.T(), cube.Z, r.Axis())
	require.Equal(s.T(), cube.LayerLast, r.Layer())
	require.Equal(s.T(), cube.Twice, r.Times())
	require.Equal(s.T(), "Z-last-2", r.String())
	require.False(s.T(), cube.Rotation(0b0000_0111).Valid())
}

// TestInverseUndoes applies each rotation followed by its inverse.
func (s *CubeSuite) TestInverseUndoes() {
	start := cube.Scramble(rand.New(rand.NewSource(7)), 12)
	for _, r := range cube.AllRotations {
		require.Equal(s.T(), start, start.Apply(r).Apply(r.Inverse()), "%s", r)
		require.Equal(s.T(), r, r.Inverse().Inverse())
	}
}

// TestFourQuarterTurns verifies that a quarter turn has order four and
// that Twice and Thrice match repeated quarter turns.
func (s *CubeSuite) TestFourQuarterTurns() {
	start := cube.Scramble(rand.New(rand.NewSource(3)), 10)
	for _, r := range cube.AllRotations {
		if r.Times() != cube.Once {
			continue
		}
		c := start
		for i := 1; i <= 4; i++ {
			c = c.Apply(r)
			if i < 4 {
				want := start.Apply(cube.NewRotation(r.Axis(), r.Layer(), cube.Times(i-1)))
				require.Equal(s.T(), want, c, "%s applied %d times", r, i)
			}
		}
		require.Equal(s.T(), start, c, "%s has order four", r)
	}
}

// TestOppositeLayersCommute checks that the two layers of one axis commute.
func (s *CubeSuite) TestOppositeLayersCommute() {
	start := cube.Scramble(rand.New(rand.NewSource(11)), 10)
	for _, a := range []cube.Axis{cube.X, cube.Y, cube.Z} {
		first := cube.NewRotation(a, cube.LayerFirst, cube.Once)
		last := cube.NewRotation(a, cube.LayerLast, cube.Thrice)
		require.Equal(s.T(), start.Apply(first).Apply(last), start.Apply(last).Apply(first))
	}
}

// TestCommutatorOrder checks that the commutator of two adjacent quarter
// turns returns to the start after six repetitions and not before.
func (s *CubeSuite) TestCommutatorOrder() {
	a := cube.NewRotation(cube.X, cube.LayerFirst, cube.Once)
	b := cube.NewRotation(cube.Y, cube.LayerFirst, cube.Once)
	c := cube.Solved()
	for i := 1; i <= 6; i++ {
		c = c.Apply(a).Apply(b).Apply(a.Inverse()).Apply(b.Inverse())
		require.Equal(s.T(), i == 6, c.IsSolved(), "repetition %d", i)
	}
}

// TestTopLayerTurn pins down the direction of a quarter turn: turning the
// top layer moves Front's top row onto Right.
func (s *CubeSuite) TestTopLayerTurn() {
	c := cube.Solved().Apply(cube.NewRotation(cube.Y, cube.LayerFirst, cube.Once))
	right := c.Face(cube.Right).Colors()
	for i := 0; i < 3; i++ {
		require.Equal(s.T(), cube.Color(cube.Front), right[i])
	}
	for i := 3; i < 9; i++ {
		require.Equal(s.T(), cube.Color(cube.Right), right[i])
	}
	require.True(s.T(), c.Face(cube.Top).IsUniform())
	require.True(s.T(), c.Face(cube.Bottom).IsUniform())
}

// TestScramblePreservesColors rebuilds scrambled cubes through New.
func (s *CubeSuite) TestScramblePreservesColors() {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		c := cube.Scramble(rng, 25)
		rebuilt, err := cube.New(c.Faces())
		require.NoError(s.T(), err)
		require.Equal(s.T(), c, rebuilt)
	}
}

// TestTransitionsIsACopy ensures callers cannot alter AllRotations.
func (s *CubeSuite) TestTransitionsIsACopy() {
	ts := cube.Solved().Transitions()
	require.Len(s.T(), ts, 18)
	ts[0] = ts[1]
	require.Equal(s.T(), cube.NewRotation(cube.X, cube.LayerFirst, cube.Once), cube.AllRotations[0])
}

// TestStringNet checks the solved net rendering.
func (s *CubeSuite) TestStringNet() {
	want := "" +
		"      A A A\n" +
		"      A A A\n" +
		"      A A A\n" +
		"B B B C C C D D D E E E\n" +
		"B B B C C C D D D E E E\n" +
		"B B B C C C D D D E E E\n" +
		"      F F F\n" +
		"      F F F\n" +
		"      F F F"
	require.Equal(s.T(), want, cube.Solved().String())
}

// TestSolveScrambles solves short scrambles and checks the path is valid
// and no longer than the scramble.
func (s *CubeSuite) TestSolveScrambles() {
	rng := rand.New(rand.NewSource(2024))
	for _, k := range []int{1, 2, 4, 6} {
		if k == 6 && testing.Short() {
			continue
		}
		start := cube.Scramble(rng, k)
		path, err := cube.Solve(start)
		require.NoError(s.T(), err, "scramble of %d", k)
		require.LessOrEqual(s.T(), len(path), k+1)
		require.Equal(s.T(), start, path[0])
		require.True(s.T(), path[len(path)-1].IsSolved())
		require.NoError(s.T(), meet.Verify[cube.Cube, cube.Rotation](path))

		rots, err := cube.Rotations(path)
		require.NoError(s.T(), err)
		c := start
		for _, r := range rots {
			c = c.Apply(r)
		}
		require.True(s.T(), c.IsSolved())
	}
}

// TestSolveSolved returns the single-state path.
func (s *CubeSuite) TestSolveSolved() {
	path, err := cube.Solve(cube.Solved())
	require.NoError(s.T(), err)
	require.Len(s.T(), path, 1)
}

// TestSolveBudget stops a deep search once the discovery budget is spent.
func (s *CubeSuite) TestSolveBudget() {
	start := cube.Scramble(rand.New(rand.NewSource(5)), 8)
	_, err := cube.Solve(start, meet.WithMaxDiscoveries(30))
	require.ErrorIs(s.T(), err, meet.ErrBudgetExceeded)
}

// TestRotationsRejectsGap reports non-adjacent consecutive cubes.
func (s *CubeSuite) TestRotationsRejectsGap() {
	a := cube.Solved()
	b := a.Apply(cube.NewRotation(cube.X, cube.LayerFirst, cube.Once)).
		Apply(cube.NewRotation(cube.Y, cube.LayerFirst, cube.Once))
	_, err := cube.Rotations([]cube.Cube{a, b})
	require.ErrorIs(s.T(), err, cube.ErrNotAdjacent)

	rots, err := cube.Rotations(nil)
	require.NoError(s.T(), err)
	require.Empty(s.T(), rots)
}
