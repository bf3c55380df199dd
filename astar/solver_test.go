package astar_test

import (
	"testing"

	"github.com/katalvlaran/hotyard/astar"
	"github.com/katalvlaran/hotyard/container"
	"github.com/katalvlaran/hotyard/yard"
	"github.com/stretchr/testify/require"
)

func testTimings() astar.Timings {
	return astar.Timings{CraneMoveS: 10, CraneLowerS: 5, CraneLiftS: 5, ClearingS: 60}
}

func TestSolve_AlreadyGoalReturnsTrivialSolution(t *testing.T) {
	s := yard.New(2, 2, 4000)
	sol, err := astar.Solve(*s, astar.WithTimings(testTimings()))
	require.NoError(t, err)
	require.True(t, sol.Found)
	require.Len(t, sol.Path, 1)
	require.Equal(t, 0.0, sol.TotalCost)
}

func TestSolve_ZeroTimingsRejected(t *testing.T) {
	s := yard.New(2, 2, 4000)
	_, err := astar.Solve(*s)
	require.ErrorIs(t, err, astar.ErrNilBuffers)
}

func TestSolve_SingleContainerEntryToOutgoing(t *testing.T) {
	s := yard.New(2, 2, 4000)
	s.Seed(0, container.New("A", 0, 600))

	sol, err := astar.Solve(*s, astar.WithTimings(testTimings()), astar.WithMaxNodes(5000))
	require.NoError(t, err)
	require.True(t, sol.Found, "a single container with a generous due window should always be placeable")

	last := sol.Path[len(sol.Path)-1]
	require.True(t, last.IsGoal())
}

func TestSolve_RespectsMaxSolutions(t *testing.T) {
	s := yard.New(3, 2, 4000)
	s.Seed(0, container.New("A", 0, 600))
	s.Seed(0, container.New("B", 0, 600))

	sol, err := astar.Solve(*s, astar.WithTimings(testTimings()), astar.WithMaxNodes(20000), astar.WithMaxSolutions(2))
	require.NoError(t, err)
	require.True(t, sol.Found)
	require.LessOrEqual(t, len(sol.Alternatives), 2)
}

func TestSolve_NodeBudgetExhaustionFailsCleanly(t *testing.T) {
	s := yard.New(3, 2, 4000)
	s.Seed(0, container.New("A", 0, 600))
	s.Seed(0, container.New("B", 0, 600))
	s.Seed(0, container.New("C", 0, 600))

	sol, err := astar.Solve(*s, astar.WithTimings(testTimings()), astar.WithMaxNodes(1))
	require.NoError(t, err)
	require.False(t, sol.Found)
	require.Equal(t, 1, sol.NodesExpanded)
}

func TestHeuristic_ZeroOnGoalState(t *testing.T) {
	s := yard.New(2, 2, 4000)
	require.Equal(t, 0.0, astar.Heuristic(s, testTimings()))
}
