package scenario

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/hotyard/container"
	"github.com/katalvlaran/hotyard/yard"
	"github.com/katalvlaran/hotyard/yardconfig"
)

// New assembles the initial yard.State described by cfg: one stack per
// cfg.StackNames, each buffer's capacity from cfg.BufferCapacity, seeded
// bottom-first with cfg.InitialLayout's containers. The crane starts
// empty at stack 0.
func New(cfg yardconfig.Config, opts ...Option) (yard.State, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s := yard.New(len(cfg.StackNames), cfg.BufferCapacity, cfg.PlacementExitSlackS)

	for _, layout := range cfg.InitialLayout {
		idx := cfg.StackIndex(layout.Stack)
		if idx < 0 {
			return yard.State{}, fmt.Errorf("%w: %q", yardconfig.ErrUnknownStack, layout.Stack)
		}
		if cfg.OutgoingIndex() != idx && idx != 0 && len(layout.Containers) > cfg.BufferCapacity {
			return yard.State{}, fmt.Errorf("%w: stack %q has %d containers, capacity %d",
				ErrStackOverflowsCapacity, layout.Stack, len(layout.Containers), cfg.BufferCapacity)
		}
		for _, spec := range layout.Containers {
			s.Seed(idx, container.New(spec.ID, o.ArrivalTime, spec.DueIn.ToSeconds()))
		}
	}

	return *s, nil
}

// randomContainerNamePrefix and the id/due ranges below describe the
// live Entry Feeder's draws: a "B"-prefixed id from a 1-100 draw, due
// window 0-3 minutes and 0-59 seconds.
const randomContainerNamePrefix = "B"

// RandomContainer draws one container the way the live Entry Feeder
// generates arrivals. Using a seeded rng rather than an unseeded global
// generator lets a fixed seed reproduce the same sequence of arrivals.
func RandomContainer(rng *rand.Rand, arrivalTime int) container.Container {
	id := fmt.Sprintf("%s%d", randomContainerNamePrefix, rng.Intn(100)+1)
	minutes := rng.Intn(4)
	seconds := rng.Intn(60)
	dueIn := container.DueWindow{Minutes: minutes, Seconds: seconds}.ToSeconds()
	return container.New(id, arrivalTime, dueIn)
}
