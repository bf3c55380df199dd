package executor

import (
	"math/rand"

	"github.com/katalvlaran/hotyard/astar"
	"github.com/rs/zerolog"
)

// Config parameterizes one Run: the crane's operation durations, the
// entry feeder's period, the outgoing drainer's cadence, the RNG that
// drives the feeder's arrivals, the options astar.Solve runs with on
// every recalculation, and the logger every actor writes through.
type Config struct {
	Timings astar.Timings

	// FeedPeriodS is how often, in simulated seconds, the entry feeder
	// generates a new container (spec's P_feed).
	FeedPeriodS int

	// ClearingS is the outgoing drainer's cadence, in simulated seconds
	// (spec's T_clear).
	ClearingS int

	RNG *rand.Rand

	SolverOptions []astar.Option

	Log zerolog.Logger
}
