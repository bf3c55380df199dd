package yard_test

import (
	"testing"

	"github.com/katalvlaran/hotyard/container"
	"github.com/katalvlaran/hotyard/yard"
	"github.com/stretchr/testify/require"
)

func twoStack() *yard.State {
	s := yard.New(2, 3, 4000)
	s.Seed(0, container.New("X", 0, 300))
	return s
}

func TestIsGoal_InitialNotGoal(t *testing.T) {
	s := twoStack()
	require.False(t, s.IsGoal())
}

func TestIsGoal_EmptyYardAndCrane(t *testing.T) {
	s := yard.New(2, 3, 4000)
	require.True(t, s.IsGoal())
}

func TestCanPickUp_OutgoingAlwaysRejected(t *testing.T) {
	s := twoStack()
	require.False(t, s.CanPickUp(1)) // outgoing
}

func TestCanPickUp_EmptyStackRejected(t *testing.T) {
	s := yard.New(3, 2, 4000)
	require.False(t, s.CanPickUp(1))
}

func TestCanPutDown_NeverEntry(t *testing.T) {
	s := twoStack()
	c := s.PopTop(0)
	s.Crane.Held = &c
	require.False(t, s.CanPutDown(0))
}

func TestCanPutDown_BufferCapacity(t *testing.T) {
	s := yard.New(3, 1, 4000)
	s.Seed(1, container.New("A", 0, 100))
	held := container.New("B", 0, 100)
	s.Crane.Held = &held
	s.Crane.Position = 0
	require.False(t, s.CanPutDown(1)) // buffer already at capacity 1
}

func TestCanPutDown_TopDueSoonerRejectsBuried(t *testing.T) {
	s := yard.New(3, 2, 4000)
	s.Seed(1, container.New("Soon", 0, 10)) // due at t=10
	held := container.New("Late", 0, 1000)  // due at t=1000
	s.Crane.Held = &held
	s.Crane.Position = 0
	require.False(t, s.CanPutDown(1), "must not bury a sooner-due container under a later-due one")
}

func TestCanPutDown_SameStackAsCraneRejected(t *testing.T) {
	s := yard.New(3, 2, 4000)
	held := container.New("A", 0, 100)
	s.Crane.Held = &held
	s.Crane.Position = 1
	require.False(t, s.CanPutDown(1))
}

func TestFingerprint_ExcludesTimeAndCounters(t *testing.T) {
	a := twoStack()
	b := a.Clone()
	b.CurrentTime = 999
	b.ConsecutiveWaits = 5
	b.TotalWaitTime = 5
	require.Equal(t, a.Fingerprint(), b.Fingerprint())
	require.False(t, a.Equal(b), "Equal must still distinguish them by CurrentTime")
}

func TestClone_IsDeep(t *testing.T) {
	a := twoStack()
	b := a.Clone()
	b.Stacks[0][0] = container.New("MUTATED", 0, 1)
	require.NotEqual(t, a.Stacks[0][0].ID, b.Stacks[0][0].ID)
}

func TestPutDownOnto_CommitsExitTimeAndLateness(t *testing.T) {
	s := yard.New(2, 2, 4000)
	s.CurrentTime = 700 // due at 500, so this placement is 200s late
	held := container.New("A", 0, 500)
	s.Crane.Held = &held
	s.Crane.Position = 0

	lateness, err := s.PutDownOnto(1)
	require.NoError(t, err)
	require.Equal(t, float64(200), lateness)
	require.Equal(t, float64(200), s.TotalAccumulatedLateness)
	require.True(t, s.Stacks[1][0].Exited())
	require.False(t, s.Crane.HasContainer())
}

func TestPutDownOnto_RejectsWithoutHeldContainer(t *testing.T) {
	s := yard.New(2, 2, 4000)
	_, err := s.PutDownOnto(1)
	require.ErrorIs(t, err, yard.ErrCraneEmpty)
}

func TestDrainOutgoing_PopsOnlyExitedTop(t *testing.T) {
	s := yard.New(2, 2, 4000)
	s.CurrentTime = 100
	c1 := container.New("A", 0, 10).WithExitTime(60)
	c2 := container.New("B", 0, 10).WithExitTime(120)
	s.Seed(1, c1)
	s.Seed(1, c2)
	s.DrainOutgoing()
	require.Len(t, s.Stacks[1], 2, "top container B has not exited yet (120 > 100)")
}
