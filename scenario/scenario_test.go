package scenario_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/hotyard/scenario"
	"github.com/katalvlaran/hotyard/yardconfig"
	"github.com/stretchr/testify/require"
)

func TestNew_SeedsInitialLayout(t *testing.T) {
	cfg := yardconfig.Config{
		StackNames:     []string{"entry", "buffer-1", "outgoing"},
		BufferCapacity: 2,
	}
	cfg.InitialLayout = []yardconfig.StackLayout{
		{Stack: "entry", Containers: []yardconfig.ContainerSpec{{ID: "A1"}}},
	}

	st, err := scenario.New(cfg)
	require.NoError(t, err)
	require.Len(t, st.Stacks[0], 1)
	require.Equal(t, "A1", st.Stacks[0][0].ID)
	require.Equal(t, 0, st.Crane.Position)
	require.False(t, st.Crane.HasContainer())
}

func TestNew_UnknownStackRejected(t *testing.T) {
	cfg := yardconfig.Config{
		StackNames:     []string{"entry", "buffer-1", "outgoing"},
		BufferCapacity: 2,
		InitialLayout: []yardconfig.StackLayout{
			{Stack: "nope", Containers: []yardconfig.ContainerSpec{{ID: "A1"}}},
		},
	}
	_, err := scenario.New(cfg)
	require.ErrorIs(t, err, yardconfig.ErrUnknownStack)
}

func TestNew_OverCapacityLayoutRejected(t *testing.T) {
	cfg := yardconfig.Config{
		StackNames:     []string{"entry", "buffer-1", "outgoing"},
		BufferCapacity: 1,
		InitialLayout: []yardconfig.StackLayout{
			{Stack: "buffer-1", Containers: []yardconfig.ContainerSpec{{ID: "A1"}, {ID: "A2"}}},
		},
	}
	_, err := scenario.New(cfg)
	require.ErrorIs(t, err, scenario.ErrStackOverflowsCapacity)
}

func TestRandomContainer_Deterministic(t *testing.T) {
	r1 := rand.New(rand.NewSource(42))
	r2 := rand.New(rand.NewSource(42))

	c1 := scenario.RandomContainer(r1, 0)
	c2 := scenario.RandomContainer(r2, 0)
	require.Equal(t, c1, c2)
}

func TestRandomContainer_IDHasPrefix(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	c := scenario.RandomContainer(r, 0)
	require.Contains(t, c.ID, "B")
}
