package executor

import (
	"sync"

	"github.com/katalvlaran/hotyard/container"
	"github.com/katalvlaran/hotyard/yard"
)

// LiveYard is the yard.State the crane runner, entry feeder, and
// outgoing drainer mutate concurrently. Its mutex guards Stacks (every
// actor touches some stack: the feeder appends to entry, the runner
// pops/pushes between stacks, the drainer pops outgoing); the crane
// field is owned and mutated only by the crane runner, per the Design
// Notes' "shared crane object" resolution, so it needs no lock.
type LiveYard struct {
	mu    sync.Mutex
	state *yard.State
}

// NewLiveYard wraps initial as the yard the simulation will mutate.
func NewLiveYard(initial yard.State) *LiveYard {
	s := initial
	return &LiveYard{state: &s}
}

// AppendEntry appends c to the entry stack. Called by the entry feeder
// on every simulated arrival.
func (lv *LiveYard) AppendEntry(c container.Container) {
	lv.mu.Lock()
	defer lv.mu.Unlock()
	lv.state.Seed(0, c)
}

// Snapshot returns a deep copy of the current yard, suitable as astar's
// initial state for a recalculation. Called by the crane runner only
// while the system is paused, so the crane field it reads is stable.
func (lv *LiveYard) Snapshot() yard.State {
	lv.mu.Lock()
	defer lv.mu.Unlock()
	return *lv.state.Clone()
}

// PickUp pops stack i's top container into the crane.
func (lv *LiveYard) PickUp(i int) error {
	lv.mu.Lock()
	defer lv.mu.Unlock()
	return lv.state.PickUp(i)
}

// PutDown places the crane's held container onto stack i, committing an
// exit time (and lateness) if i is the outgoing stack. It returns the
// lateness incurred, 0 for a non-exiting placement.
func (lv *LiveYard) PutDown(i int) (float64, error) {
	lv.mu.Lock()
	defer lv.mu.Unlock()
	return lv.state.PutDownOnto(i)
}

// Tick advances every not-yet-cleared container's informational
// due-window view by elapsed seconds and the simulated clock itself.
// Called by the crane runner after every T_* sleep.
func (lv *LiveYard) Tick(elapsed int) {
	lv.mu.Lock()
	defer lv.mu.Unlock()
	lv.state.CurrentTime += elapsed
	lv.state.Tick(elapsed)
}

// DrainOutgoing pops every outgoing container whose committed exit time
// has passed and returns how many were cleared. Called by the outgoing
// drainer at the T_clear cadence.
func (lv *LiveYard) DrainOutgoing() int {
	lv.mu.Lock()
	defer lv.mu.Unlock()
	before := len(lv.state.Stacks[lv.state.OutgoingIndex()])
	lv.state.DrainOutgoing()
	return before - len(lv.state.Stacks[lv.state.OutgoingIndex()])
}

// CranePosition returns the crane's current stack index. Used once, at
// Reactor construction, to seed the crane runner's local mirror of crane
// position (see Reactor.cranePos).
func (lv *LiveYard) CranePosition() int {
	lv.mu.Lock()
	defer lv.mu.Unlock()
	return lv.state.Crane.Position
}

// CurrentTime returns the live yard's simulated clock.
func (lv *LiveYard) CurrentTime() int {
	lv.mu.Lock()
	defer lv.mu.Unlock()
	return lv.state.CurrentTime
}
