package executor_test

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/katalvlaran/hotyard/astar"
	"github.com/katalvlaran/hotyard/container"
	"github.com/katalvlaran/hotyard/executor"
	"github.com/katalvlaran/hotyard/planscript"
	"github.com/katalvlaran/hotyard/yard"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// scaledClock scales every requested duration down by a fixed factor,
// so a Reactor configured with Timings expressed in (simulated) seconds
// runs its sleeps in milliseconds — real concurrency and real ordering,
// but fast enough for a test to wait on deterministically instead of
// sleeping wall-clock seconds.
type scaledClock struct {
	factor float64
}

func (c scaledClock) After(d time.Duration) <-chan time.Time {
	return time.After(time.Duration(float64(d) * c.factor))
}

func testConfig() executor.Config {
	timings := astar.Timings{CraneMoveS: 1, CraneLowerS: 1, CraneLiftS: 1, ClearingS: 60}
	return executor.Config{
		Timings:     timings,
		FeedPeriodS: 3600, // never fires within a test's real-time window
		ClearingS:   60,
		RNG:         rand.New(rand.NewSource(1)),
		SolverOptions: []astar.Option{
			astar.WithTimings(timings),
			astar.WithMaxNodes(5000),
		},
		Log: zerolog.Nop(),
	}
}

func twoStackYard() yard.State {
	s := yard.New(2, 2, 4000)
	s.Seed(0, container.New("A1", 0, 600))
	return *s
}

func TestReactor_ExecutesSingleMoveAndAdvancesClock(t *testing.T) {
	live := executor.NewLiveYard(twoStackYard())
	clock := scaledClock{factor: 0.001} // 1 simulated second -> 1ms real
	moves := []planscript.Token{{Kind: planscript.Move, Source: 0, Dest: 1}}

	r := executor.NewReactor(live, testConfig(), clock, moves)

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	require.Eventually(t, func() bool {
		return len(live.Snapshot().Stacks[1]) == 1
	}, 400*time.Millisecond, 5*time.Millisecond, "the moved container should land on stack 1")

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("reactor did not stop after cancellation")
	}
	// The crane starts at stack 0 (the move's source), so the first
	// CraneMoveS is skipped: lower+lift (pick) + move+lower+lift (place)
	// = 1+1+1+1+1 = 5 simulated seconds.
	require.Equal(t, 5, live.CurrentTime())
}

func TestReactor_WaitTokenAdvancesClockBySeconds(t *testing.T) {
	live := executor.NewLiveYard(twoStackYard())
	clock := scaledClock{factor: 0.001}
	moves := []planscript.Token{{Kind: planscript.Wait, WaitSeconds: 10}}

	r := executor.NewReactor(live, testConfig(), clock, moves)
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	require.Eventually(t, func() bool {
		return live.CurrentTime() >= 10
	}, 400*time.Millisecond, 5*time.Millisecond)

	cancel()
	<-done
}

func TestReactor_MalformedTokenStopsTheGroup(t *testing.T) {
	live := executor.NewLiveYard(twoStackYard())
	clock := scaledClock{factor: 0.001}
	moves := []planscript.Token{{Kind: planscript.Raw, Literal: "nonsense"}}

	r := executor.NewReactor(live, testConfig(), clock, moves)
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	err := r.Run(ctx)
	require.ErrorIs(t, err, executor.ErrMalformedToken)
}

func TestReactor_SameStackMoveRejected(t *testing.T) {
	live := executor.NewLiveYard(twoStackYard())
	clock := scaledClock{factor: 0.001}
	moves := []planscript.Token{{Kind: planscript.Move, Source: 0, Dest: 0}}

	r := executor.NewReactor(live, testConfig(), clock, moves)
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	err := r.Run(ctx)
	require.ErrorIs(t, err, executor.ErrSameStack)
}
