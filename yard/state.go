package yard

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/hotyard/container"
)

// State is an immutable-by-copy snapshot of the yard: the stack sequence,
// the crane, the simulated clock, and search bookkeeping.
type State struct {
	// Stacks holds one ordered container slice per stack. Stacks[0] is
	// entry, Stacks[len(Stacks)-1] is outgoing; indices between are
	// capacity-bounded buffers.
	Stacks [][]container.Container

	// Crane is the crane's position and held container.
	Crane Crane

	// CurrentTime is the simulated clock, in seconds. Monotone
	// non-decreasing along any search path (Invariant 4).
	CurrentTime int

	// LastAction traces the transition that produced this state, and
	// feeds the Plan Encoder.
	LastAction string

	// AccumulatedCost sums the step costs (clock advances) along the path
	// that produced this state. Used only for tracing; the search's g
	// value is computed from TotalAccumulatedLateness and CurrentTime, not
	// this field (see astar).
	AccumulatedCost float64

	// ConsecutiveWaits and TotalWaitTime throttle the wait transition
	// (see astar's wait-policy gates).
	ConsecutiveWaits int
	TotalWaitTime    int

	// TotalAccumulatedLateness is monotonically non-decreasing and is
	// finalized only at placement on outgoing (Invariant 3's exit-time
	// commitment feeds this).
	TotalAccumulatedLateness float64

	// BufferCapacity is B: the fixed capacity shared by every buffer
	// stack (all stacks except index 0 and the last).
	BufferCapacity int

	// PlacementExitSlackS is the outgoing top-of-stack guard constant
	// (spec Open Question, default 4000; see yardconfig).
	PlacementExitSlackS int
}

// New constructs an empty yard with numStacks stacks (index 0 entry,
// last outgoing, the rest buffers of capacity bufferCapacity), crane
// parked at stack 0, clock at zero.
func New(numStacks, bufferCapacity, placementExitSlackS int) *State {
	s := &State{
		Stacks:              make([][]container.Container, numStacks),
		Crane:               Crane{Position: 0},
		LastAction:          "Initial state",
		BufferCapacity:      bufferCapacity,
		PlacementExitSlackS: placementExitSlackS,
	}
	return s
}

// Seed appends a container directly onto stack i's bottom-up ordering
// (used when constructing the initial scenario and for live entry arrivals,
// never during search).
func (s *State) Seed(stackIndex int, c container.Container) {
	s.Stacks[stackIndex] = append(s.Stacks[stackIndex], c)
}

// OutgoingIndex returns the index of the outgoing stack.
func (s *State) OutgoingIndex() int {
	return len(s.Stacks) - 1
}

// IsBuffer reports whether stack index i is a buffer (neither entry nor
// outgoing).
func (s *State) IsBuffer(i int) bool {
	return i > 0 && i < s.OutgoingIndex()
}

// Top returns a pointer to the top container of stack i, or nil if empty
// or i is out of range.
func (s *State) Top(i int) *container.Container {
	if i < 0 || i >= len(s.Stacks) || len(s.Stacks[i]) == 0 {
		return nil
	}
	return &s.Stacks[i][len(s.Stacks[i])-1]
}

// IsGoal reports whether the crane is empty and every non-outgoing stack
// contains no not-yet-cleared container.
func (s *State) IsGoal() bool {
	if s.Crane.HasContainer() {
		return false
	}
	for i := 0; i < s.OutgoingIndex(); i++ {
		for _, c := range s.Stacks[i] {
			if !c.Exited() {
				return false
			}
		}
	}
	return true
}

// CanPickUp reports whether stack i is a legal pick-up source: not
// outgoing, non-empty, its top container not yet cleared, and the crane
// empty.
func (s *State) CanPickUp(i int) bool {
	if i < 0 || i >= len(s.Stacks) {
		return false
	}
	if i == s.OutgoingIndex() {
		return false
	}
	top := s.Top(i)
	if top == nil || top.Exited() {
		return false
	}
	return !s.Crane.HasContainer()
}

// CanPutDown reports whether stack i is a legal place-down destination:
// never entry, crane holding something, capacity respected for buffers,
// not the crane's current stack, and the top-of-destination rule: a
// non-empty destination is rejected if its top is due strictly earlier than
// the held container, and on outgoing, if the top already has an exit time,
// the new placement's projected clearance must not exceed it by more than
// the placement-exit slack.
func (s *State) CanPutDown(i int) bool {
	if i <= 0 || i >= len(s.Stacks) {
		return false
	}
	if !s.Crane.HasContainer() {
		return false
	}
	if s.IsBuffer(i) && len(s.Stacks[i]) >= s.BufferCapacity {
		return false
	}
	if s.Crane.Position == i {
		return false
	}

	top := s.Top(i)
	if top == nil {
		return true
	}
	held := s.Crane.Held

	if top.DueTime() < held.DueTime() {
		return false
	}
	if i == s.OutgoingIndex() && top.Exited() {
		nextBoundary := ((s.CurrentTime / 60) + 1) * 60
		projected := nextBoundary + 60
		if projected > top.ExitTime+s.placementExitSlack() {
			return false
		}
	}
	return true
}

func (s *State) placementExitSlack() int {
	if s.PlacementExitSlackS == 0 {
		return 4000
	}
	return s.PlacementExitSlackS
}

// Fingerprint is the structural equality key used for duplicate detection
// (Invariant 5): crane position, whether it holds something (and which
// id), and, per stack, the ordered ids of not-yet-cleared containers.
// CurrentTime, counters, and LastAction are deliberately excluded.
func (s *State) Fingerprint() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d|", s.Crane.Position)
	if s.Crane.HasContainer() {
		fmt.Fprintf(&b, "1|%s|", s.Crane.Held.ID)
	} else {
		b.WriteString("0|")
	}
	for i, stack := range s.Stacks {
		fmt.Fprintf(&b, "S%d:", i)
		for _, c := range stack {
			if !c.Exited() {
				b.WriteString(c.ID)
				b.WriteByte(',')
			}
		}
		b.WriteByte('|')
	}
	return b.String()
}

// Equal compares two states field-by-field, including CurrentTime — unlike
// Fingerprint, which is the only key duplicate detection uses. Equal exists
// for tests only.
func (s *State) Equal(other *State) bool {
	if s.CurrentTime != other.CurrentTime {
		return false
	}
	if s.Crane.Position != other.Crane.Position || s.Crane.HasContainer() != other.Crane.HasContainer() {
		return false
	}
	if s.Crane.HasContainer() && s.Crane.Held.ID != other.Crane.Held.ID {
		return false
	}
	if len(s.Stacks) != len(other.Stacks) {
		return false
	}
	for i := range s.Stacks {
		if len(s.Stacks[i]) != len(other.Stacks[i]) {
			return false
		}
		for j := range s.Stacks[i] {
			a, b := s.Stacks[i][j], other.Stacks[i][j]
			if !a.Exited() || !b.Exited() {
				if a.ID != b.ID || a.DueIn != b.DueIn {
					return false
				}
			}
		}
	}
	return true
}

// UnexitedCount returns the number of containers in the yard that have not
// yet been placed-with-exit-time.
func (s *State) UnexitedCount() int {
	n := 0
	for _, stack := range s.Stacks {
		for _, c := range stack {
			if !c.Exited() {
				n++
			}
		}
	}
	return n
}

// Clone returns a deep copy: a fresh Stacks slice-of-slices, a fresh Crane
// (deep-copying any held container), and all scalar fields copied by
// value. Every successor produced by astar's generator starts from Clone
// and mutates only the copy.
func (s *State) Clone() *State {
	clone := *s
	clone.Stacks = make([][]container.Container, len(s.Stacks))
	for i, stack := range s.Stacks {
		clone.Stacks[i] = append([]container.Container(nil), stack...)
	}
	clone.Crane = s.Crane.clone()
	return &clone
}

// Tick advances every not-yet-cleared container's informational
// RemainingDue view by elapsed seconds. It does not touch CurrentTime;
// callers advance that separately so clock advance and due-window decay
// happen in a well-defined order.
func (s *State) Tick(elapsed int) {
	for i, stack := range s.Stacks {
		for j, c := range stack {
			s.Stacks[i][j] = c.Tick(elapsed)
		}
	}
}

// PopTop removes and returns the top container of stack i. Callers must
// have already confirmed CanPickUp(i).
func (s *State) PopTop(i int) container.Container {
	stack := s.Stacks[i]
	c := stack[len(stack)-1]
	s.Stacks[i] = stack[:len(stack)-1]
	return c
}

// PushTop appends c to the top of stack i. Callers must have already
// confirmed CanPutDown(i).
func (s *State) PushTop(i int, c container.Container) {
	s.Stacks[i] = append(s.Stacks[i], c)
}

// PickUp validates CanPickUp(i) and, on success, pops stack i's top
// container into the crane. It returns ErrStackIndex, ErrCraneFull, or a
// generic precondition failure otherwise, so a broken precondition fails
// loudly instead of silently corrupting a stack. The live executor calls
// this; astar's generator checks CanPickUp and calls PopTop on a clone.
func (s *State) PickUp(i int) error {
	if i < 0 || i >= len(s.Stacks) {
		return ErrStackIndex
	}
	if s.Crane.HasContainer() {
		return ErrCraneFull
	}
	if !s.CanPickUp(i) {
		return fmt.Errorf("yard: stack %d is not a legal pick-up source", i)
	}
	c := s.PopTop(i)
	s.Crane.Position = i
	s.Crane.Held = &c
	return nil
}

// PutDown validates CanPutDown(i) and, on success, pushes the crane's held
// container onto stack i and empties the crane. It returns ErrStackIndex,
// ErrCraneEmpty, or a generic precondition failure otherwise.
func (s *State) PutDown(i int) error {
	if i < 0 || i >= len(s.Stacks) {
		return ErrStackIndex
	}
	if !s.Crane.HasContainer() {
		return ErrCraneEmpty
	}
	if !s.CanPutDown(i) {
		return fmt.Errorf("yard: stack %d is not a legal put-down destination", i)
	}
	c := *s.Crane.Held
	s.PushTop(i, c)
	s.Crane.Position = i
	s.Crane.Held = nil
	return nil
}

// PutDownOnto validates CanPutDown(i) and places the crane's held
// container on stack i in place, returning the lateness incurred if i is
// the outgoing stack (i.e. this placement exits the container). This is
// the live counterpart to astar's applyPutDown: the live yard has no
// precomputed path to replay the exit-time commitment from, so it commits
// it itself using the same formula.
func (s *State) PutDownOnto(i int) (float64, error) {
	if i < 0 || i >= len(s.Stacks) {
		return 0, ErrStackIndex
	}
	if !s.Crane.HasContainer() {
		return 0, ErrCraneEmpty
	}
	if !s.CanPutDown(i) {
		return 0, fmt.Errorf("yard: stack %d is not a legal put-down destination", i)
	}

	placed := *s.Crane.Held
	var lateness float64

	if i == s.OutgoingIndex() {
		nextBoundary := ((s.CurrentTime / 60) + 1) * 60
		existing := len(s.Stacks[i])

		placed = placed.WithExitTime(nextBoundary)
		if late := s.CurrentTime - placed.DueTime(); late > 0 {
			lateness = float64(late)
			s.TotalAccumulatedLateness += lateness
		}

		for j := range s.Stacks[i] {
			clearTime := nextBoundary + (existing-j)*60
			s.Stacks[i][j] = s.Stacks[i][j].WithExitTime(clearTime)
		}
	}

	s.PushTop(i, placed)
	s.Crane.Position = i
	s.Crane.Held = nil
	return lateness, nil
}

// DrainOutgoing removes containers from the top of the outgoing stack
// while their committed ExitTime has passed (step 2 of "Advancing the
// clock"). Outgoing is popped from the top only, so "top" here means
// Stacks[last][len-1], matching the physical crane/stack model.
func (s *State) DrainOutgoing() {
	out := s.OutgoingIndex()
	stack := s.Stacks[out]
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.Exited() && top.ExitTime <= s.CurrentTime {
			stack = stack[:len(stack)-1]
			continue
		}
		break
	}
	s.Stacks[out] = stack
}
