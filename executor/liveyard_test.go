package executor_test

import (
	"testing"

	"github.com/katalvlaran/hotyard/container"
	"github.com/katalvlaran/hotyard/executor"
	"github.com/katalvlaran/hotyard/yard"
	"github.com/stretchr/testify/require"
)

func TestLiveYard_AppendEntryThenPickUp(t *testing.T) {
	live := executor.NewLiveYard(*yard.New(2, 2, 4000))
	live.AppendEntry(container.New("A1", 0, 100))

	require.NoError(t, live.PickUp(0))
	_, err := live.PutDown(1)
	require.NoError(t, err)
	require.Len(t, live.Snapshot().Stacks[1], 1)
}

func TestLiveYard_DrainOutgoingReportsCount(t *testing.T) {
	s := yard.New(2, 2, 4000)
	s.CurrentTime = 100
	s.Seed(1, container.New("A", 0, 10).WithExitTime(60))
	live := executor.NewLiveYard(*s)

	require.Equal(t, 1, live.DrainOutgoing())
	require.Empty(t, live.Snapshot().Stacks[1])
}

func TestLiveYard_TickAdvancesClock(t *testing.T) {
	live := executor.NewLiveYard(*yard.New(2, 2, 4000))
	live.Tick(42)
	require.Equal(t, 42, live.CurrentTime())
}
