package pathplan_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/pathplan"
)

// mustGrid builds a grid or fails the test.
func mustGrid(t *testing.T, values [][]int) *grid.Grid {
	t.Helper()
	g, err := grid.NewGrid(values, grid.DefaultGridOptions())
	require.NoError(t, err)

	return g
}

// requireValidPath asserts every structural invariant a returned path must
// satisfy: exact length, pinned start, in-bounds and obstacle-free cells,
// and per-step Manhattan displacement of at most one.
func requireValidPath(t *testing.T, g *grid.Grid, path pathplan.Path, horizon int) {
	t.Helper()
	require.Len(t, path, horizon)
	require.Equal(t, g.Start(), path[0])
	for i, p := range path {
		require.Truef(t, g.InBounds(p), "step %d: %v out of bounds", i, p)
		require.Falsef(t, g.IsObstacle(p), "step %d: %v is an obstacle", i, p)
		if i > 0 {
			dx := abs(p.X - path[i-1].X)
			dy := abs(p.Y - path[i-1].Y)
			require.LessOrEqualf(t, dx+dy, 1,
				"step %d: %v -> %v is not a unit move", i, path[i-1], p)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

// SolveSuite exercises both variants end to end on small grids.
type SolveSuite struct {
	suite.Suite

	corridor *grid.Grid // obstacles at (1,0) and (1,2); min distance 4
	walled   *grid.Grid // destination sealed off by (2,1) and (1,2)
	single   *grid.Grid // 1x1
}

func (s *SolveSuite) SetupTest() {
	s.corridor = mustGrid(s.T(), [][]int{
		{0, 1, 0},
		{0, 0, 0},
		{0, 1, 0},
	})
	s.walled = mustGrid(s.T(), [][]int{
		{0, 0, 0},
		{0, 0, 1},
		{0, 1, 0},
	})
	s.single = mustGrid(s.T(), [][]int{{0}})
}

// TestFixedEndpoint_Feasible: minimal-plus-one horizon through the corridor.
func (s *SolveSuite) TestFixedEndpoint_Feasible() {
	opts := pathplan.DefaultOptions()
	opts.Variant = pathplan.FixedEndpoint

	res, err := pathplan.Solve(context.Background(), s.corridor, 5, opts)
	s.Require().NoError(err)
	requireValidPath(s.T(), s.corridor, res.Path, 5)
	s.Require().Equal(s.corridor.Destination(), res.Path[4])
	s.Require().Zero(res.Score)
}

// TestDestinationBonus_Parks: with one slack timestep the optimum reaches
// the destination at t=4 and parks there, collecting the bonus twice.
func (s *SolveSuite) TestDestinationBonus_Parks() {
	res, err := pathplan.Solve(context.Background(), s.corridor, 6, pathplan.DefaultOptions())
	s.Require().NoError(err)
	requireValidPath(s.T(), s.corridor, res.Path, 6)
	s.Require().Equal(2, res.Score)
	s.Require().Equal(s.corridor.Destination(), res.Path[4])
	s.Require().Equal(s.corridor.Destination(), res.Path[5])
}

// TestDestinationBonus_Weighted: the score scales linearly with the weight.
func (s *SolveSuite) TestDestinationBonus_Weighted() {
	opts := pathplan.DefaultOptions()
	opts.DestinationWeight = 3

	res, err := pathplan.Solve(context.Background(), s.corridor, 6, opts)
	s.Require().NoError(err)
	s.Require().Equal(6, res.Score)
}

// TestDestinationBonus_Unreachable: when the destination is sealed off the
// bonus variant still succeeds; the best score is simply zero.
func (s *SolveSuite) TestDestinationBonus_Unreachable() {
	res, err := pathplan.Solve(context.Background(), s.walled, 3, pathplan.DefaultOptions())
	s.Require().NoError(err)
	requireValidPath(s.T(), s.walled, res.Path, 3)
	s.Require().Zero(res.Score)
}

// TestSingleCell: a 1×1 grid with horizon 1 yields the trivial path, which
// already sits on the destination.
func (s *SolveSuite) TestSingleCell() {
	res, err := pathplan.Solve(context.Background(), s.single, 1, pathplan.DefaultOptions())
	s.Require().NoError(err)
	s.Require().Equal(pathplan.Path{{X: 0, Y: 0}}, res.Path)
	s.Require().Equal(1, res.Score)
}

// TestFixedEndpoint_Unreachable: the precheck rejects a sealed destination
// without invoking the solver.
func (s *SolveSuite) TestFixedEndpoint_Unreachable() {
	opts := pathplan.DefaultOptions()
	opts.Variant = pathplan.FixedEndpoint

	_, err := pathplan.Solve(context.Background(), s.walled, 5, opts)
	s.Require().ErrorIs(err, pathplan.ErrInfeasibleHorizon)
}

// TestFixedEndpoint_HorizonTooSmall: distance 4 needs 5 timesteps; 4 is
// one short, with and without the precheck.
func (s *SolveSuite) TestFixedEndpoint_HorizonTooSmall() {
	opts := pathplan.DefaultOptions()
	opts.Variant = pathplan.FixedEndpoint

	_, err := pathplan.Solve(context.Background(), s.corridor, 4, opts)
	s.Require().ErrorIs(err, pathplan.ErrInfeasibleHorizon)

	// The solver itself must reach the same verdict.
	opts.SkipPrecheck = true
	_, err = pathplan.Solve(context.Background(), s.corridor, 4, opts)
	s.Require().ErrorIs(err, pathplan.ErrInfeasibleHorizon)
}

// TestFixedEndpoint_UnreachableViaSolver: a sealed destination proved UNSAT
// by the solver rather than the precheck.
func (s *SolveSuite) TestFixedEndpoint_UnreachableViaSolver() {
	opts := pathplan.DefaultOptions()
	opts.Variant = pathplan.FixedEndpoint
	opts.SkipPrecheck = true

	_, err := pathplan.Solve(context.Background(), s.walled, 3, opts)
	s.Require().ErrorIs(err, pathplan.ErrInfeasibleHorizon)
}

// TestRepeatedSolves: back-to-back solves share no state; the score is
// reproducible and each path satisfies the same invariants.
func (s *SolveSuite) TestRepeatedSolves() {
	first, err := pathplan.Solve(context.Background(), s.corridor, 6, pathplan.DefaultOptions())
	s.Require().NoError(err)
	second, err := pathplan.Solve(context.Background(), s.corridor, 6, pathplan.DefaultOptions())
	s.Require().NoError(err)

	requireValidPath(s.T(), s.corridor, first.Path, 6)
	requireValidPath(s.T(), s.corridor, second.Path, 6)
	s.Require().Equal(first.Score, second.Score)
}

func TestSolveSuite(t *testing.T) {
	suite.Run(t, new(SolveSuite))
}

func TestSolve_InputValidation(t *testing.T) {
	g := mustGrid(t, [][]int{{0, 0}, {0, 0}})

	_, err := pathplan.Solve(context.Background(), nil, 3, pathplan.DefaultOptions())
	require.ErrorIs(t, err, pathplan.ErrNilGrid)

	_, err = pathplan.Solve(context.Background(), g, 0, pathplan.DefaultOptions())
	require.ErrorIs(t, err, pathplan.ErrHorizon)

	opts := pathplan.DefaultOptions()
	opts.DestinationWeight = 0
	_, err = pathplan.Solve(context.Background(), g, 3, opts)
	require.ErrorIs(t, err, pathplan.ErrWeight)
}

func TestSolve_NilContext(t *testing.T) {
	g := mustGrid(t, [][]int{{0}})

	res, err := pathplan.Solve(nil, g, 1, pathplan.DefaultOptions()) //nolint:staticcheck
	require.NoError(t, err)
	require.Equal(t, 1, res.Score)
}

func TestSolve_Timeout(t *testing.T) {
	g := mustGrid(t, [][]int{
		{0, 1, 0},
		{0, 0, 0},
		{0, 1, 0},
	})
	opts := pathplan.DefaultOptions()
	opts.Variant = pathplan.FixedEndpoint
	opts.Timeout = time.Nanosecond

	_, err := pathplan.Solve(context.Background(), g, 5, opts)
	require.ErrorIs(t, err, pathplan.ErrSolveTimeout)
	require.NotErrorIs(t, err, pathplan.ErrInfeasibleHorizon)
}

func TestSolve_CancelledContext(t *testing.T) {
	g := mustGrid(t, [][]int{
		{0, 1, 0},
		{0, 0, 0},
		{0, 1, 0},
	})
	opts := pathplan.DefaultOptions()
	opts.Variant = pathplan.FixedEndpoint

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := pathplan.Solve(ctx, g, 5, opts)
	require.ErrorIs(t, err, pathplan.ErrSolveTimeout)
}
