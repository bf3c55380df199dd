package astar

import (
	"testing"

	"github.com/katalvlaran/hotyard/container"
	"github.com/katalvlaran/hotyard/yard"
	"github.com/stretchr/testify/require"
)

func genTimings() Timings {
	return Timings{CraneMoveS: 10, CraneLowerS: 5, CraneLiftS: 5, ClearingS: 60}
}

func TestGenerate_EmptyCraneOffersPickUps(t *testing.T) {
	s := yard.New(3, 2, 4000)
	s.Seed(0, container.New("A", 0, 600))

	succs := Generate(s, genTimings())
	// One pick-up, followed by the wait transition (nothing is overdue).
	require.Len(t, succs, 2)
	require.True(t, succs[0].state.Crane.HasContainer())
	require.Equal(t, "A", succs[0].state.Crane.Held.ID)
}

func TestGenerate_HeldCraneOffersPutDowns(t *testing.T) {
	s := yard.New(3, 2, 4000)
	held := container.New("A", 0, 600)
	s.Crane.Held = &held
	s.Crane.Position = 0

	succs := Generate(s, genTimings())
	// Put-downs on buffer 1 and outgoing 2, followed by the wait
	// transition, which keeps the container on the crane.
	require.Len(t, succs, 3)
	for _, succ := range succs[:2] {
		require.False(t, succ.state.Crane.HasContainer())
	}
	require.True(t, succs[2].state.Crane.HasContainer())
}

func TestApplyPutDown_OnOutgoingCommitsExitTimeAndLateness(t *testing.T) {
	s := yard.New(2, 2, 4000)
	held := container.New("A", 100, 10) // due at t=110
	s.Crane.Held = &held
	s.Crane.Position = 0
	s.CurrentTime = 200 // already late by 90s at put-down time

	succ := applyPutDown(s, 1, genTimings())
	placed := succ.state.Stacks[1][0]
	require.True(t, placed.Exited())
	require.Greater(t, succ.state.TotalAccumulatedLateness, 0.0, "placing an overdue container must accrue lateness")
}

func TestApplyPickUp_MovesCraneAndAdvancesClock(t *testing.T) {
	s := yard.New(4, 2, 4000)
	s.Seed(2, container.New("A", 0, 600))
	s.Crane.Position = 0

	succ := applyPickUp(s, 2, genTimings())
	require.Equal(t, 2, succ.state.Crane.Position)
	require.Greater(t, succ.state.CurrentTime, s.CurrentTime)
	require.Empty(t, succ.state.Stacks[2])
}

func TestShouldWait_FalseWhenUrgentWorkPending(t *testing.T) {
	s := yard.New(3, 2, 4000)
	s.Seed(1, container.New("Overdue", -1000, 10)) // already due in the past
	s.CurrentTime = 0

	require.False(t, shouldWait(s, genTimings()))
}

func TestHasWaitedTooMuch_ConsecutiveCap(t *testing.T) {
	s := yard.New(2, 2, 4000)
	s.ConsecutiveWaits = maxConsecutiveWaits
	require.True(t, hasWaitedTooMuch(s))
}

func TestHasWaitedTooMuch_RatioCap(t *testing.T) {
	s := yard.New(2, 2, 4000)
	s.CurrentTime = 100
	s.TotalWaitTime = 101
	require.True(t, hasWaitedTooMuch(s))
}
