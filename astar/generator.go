package astar

import (
	"strconv"

	"github.com/katalvlaran/hotyard/yard"
)

// Wait-policy gates bounding the Wait transition.
const (
	maxConsecutiveWaits = 6
	maxWaitRatio        = 1.0
	maxWaitTimeS        = 10
)

// successor pairs a candidate next state with the step cost (seconds of
// simulated time) spent producing it.
type successor struct {
	state *yard.State
	cost  float64
}

// Generate produces every legal successor of current under t: one
// Pick-up per legal source stack if the crane is empty, one Put-down per
// legal destination stack if the crane holds a container, and at most one
// Wait transition gated by shouldWait. Generate never mutates current;
// every successor starts from current.Clone().
func Generate(current *yard.State, t Timings) []successor {
	var out []successor

	if !current.Crane.HasContainer() {
		for i := range current.Stacks {
			if current.CanPickUp(i) {
				out = append(out, applyPickUp(current, i, t))
			}
		}
	} else {
		for i := range current.Stacks {
			if current.CanPutDown(i) {
				out = append(out, applyPutDown(current, i, t))
			}
		}
	}

	if shouldWait(current, t) {
		if w := optimalWaitTime(current, t); w > 0 && w <= maxWaitTimeS {
			out = append(out, applyWait(current, w))
		}
	}

	return out
}

// craneMoveTime returns the seconds to move the crane from one stack
// index to another: one CraneMoveS per stack crossed.
func craneMoveTime(from, to int, t Timings) int {
	d := to - from
	if d < 0 {
		d = -d
	}
	return d * t.CraneMoveS
}

// advanceClock moves current_time forward by elapsed seconds, ticks every
// not-yet-exited container's informational due-window, and drains any
// outgoing containers whose committed exit time has now passed. This is
// the "advancing the clock" sequence shared by every transition.
func advanceClock(s *yard.State, elapsed int) {
	s.CurrentTime += elapsed
	s.Tick(elapsed)
	s.DrainOutgoing()
}

// applyPickUp clones current, moves the crane to stack i if needed,
// performs the lower+lift pick-up, and returns the resulting successor
// with its step cost. Precondition: current.CanPickUp(i).
func applyPickUp(current *yard.State, i int, t Timings) successor {
	if !current.CanPickUp(i) {
		panic("astar: applyPickUp called on a state that cannot pick up from stack " + strconv.Itoa(i))
	}
	next := current.Clone()
	next.ConsecutiveWaits = 0
	cost := 0

	if next.Crane.Position != i {
		move := craneMoveTime(next.Crane.Position, i, t)
		cost += move
		advanceClock(next, move)
		next.Crane.Position = i
	}

	pickTime := t.CraneLowerS + t.CraneLiftS
	cost += pickTime

	held := next.PopTop(i)
	advanceClock(next, pickTime)
	next.Crane.Held = &held

	next.LastAction = "Picked up " + held.ID + " from stack " + strconv.Itoa(i)
	next.AccumulatedCost = current.AccumulatedCost + float64(cost)

	return successor{state: next, cost: float64(cost)}
}

// applyPutDown clones current, moves the crane to stack i if needed,
// lowers the held container onto it, and — if i is the outgoing stack —
// commits an exit time to every container in the stack and finalizes the
// held container's lateness. Precondition: current.CanPutDown(i).
func applyPutDown(current *yard.State, i int, t Timings) successor {
	if !current.Crane.HasContainer() {
		panic("astar: applyPutDown called with an empty crane")
	}
	if !current.CanPutDown(i) {
		panic("astar: applyPutDown called on a state that cannot put down on stack " + strconv.Itoa(i))
	}
	next := current.Clone()
	next.ConsecutiveWaits = 0
	cost := 0

	if next.Crane.Position != i {
		move := craneMoveTime(next.Crane.Position, i, t)
		cost += move
		advanceClock(next, move)
		next.Crane.Position = i
	}

	cost += t.CraneLowerS
	advanceClock(next, t.CraneLowerS)

	placed := *next.Crane.Held

	isOutgoing := i == next.OutgoingIndex()
	if isOutgoing {
		nextBoundary := ((next.CurrentTime / 60) + 1) * 60
		existing := len(next.Stacks[i])

		placed = placed.WithExitTime(nextBoundary)

		if late := next.CurrentTime - placed.DueTime(); late > 0 {
			next.TotalAccumulatedLateness += float64(late)
		}

		for j := range next.Stacks[i] {
			clearTime := nextBoundary + (existing-j)*60
			next.Stacks[i][j] = next.Stacks[i][j].WithExitTime(clearTime)
		}
	}

	next.PushTop(i, placed)
	next.Crane.Held = nil

	cost += t.CraneLiftS
	advanceClock(next, t.CraneLiftS)

	next.LastAction = "Put down " + placed.ID + " on stack " + strconv.Itoa(i)
	if isOutgoing {
		next.LastAction += " (EXIT)"
	}
	next.AccumulatedCost = current.AccumulatedCost + float64(cost)

	return successor{state: next, cost: float64(cost)}
}

// applyWait clones current and advances the clock by waitSeconds with no
// crane movement, used to let an imminent outgoing clearing or a
// currently-legal pick/place window open up.
func applyWait(current *yard.State, waitSeconds int) successor {
	next := current.Clone()
	next.ConsecutiveWaits = current.ConsecutiveWaits + 1
	next.TotalWaitTime = current.TotalWaitTime + waitSeconds

	advanceClock(next, waitSeconds)

	next.LastAction = "Waited for " + strconv.Itoa(waitSeconds) + " seconds"
	next.AccumulatedCost = current.AccumulatedCost + float64(waitSeconds)

	return successor{state: next, cost: float64(waitSeconds)}
}

// shouldWait reports whether a Wait transition should even be offered:
// waiting must plausibly help (canWaitingHelp) and the state must not
// already have waited too much (hasWaitedTooMuch).
func shouldWait(s *yard.State, t Timings) bool {
	return canWaitingHelp(s, t) && !hasWaitedTooMuch(s)
}

// canWaitingHelp checks two conditions: an imminent outgoing clearing
// within the wait window, or no non-outgoing stack whose top container is
// already overdue (in which case waiting cannot make things worse and
// may let a clearing window open). The clearing window is t.ClearingS
// seconds past a container's committed exit time, not the larger
// PlacementExitSlackS guard CanPutDown uses.
func canWaitingHelp(s *yard.State, t Timings) bool {
	out := s.OutgoingIndex()
	if top := s.Top(out); top != nil && top.Exited() {
		untilClear := (top.ExitTime + t.ClearingS) - s.CurrentTime
		if untilClear > 0 && untilClear <= maxWaitTimeS {
			return true
		}
	}

	for i := 0; i < out; i++ {
		top := s.Top(i)
		if top == nil || top.Exited() {
			continue
		}
		if top.DueTime() < s.CurrentTime {
			return false // urgent work pending: waiting cannot help
		}
	}
	return true
}

// hasWaitedTooMuch enforces the two wait-throttle gates: an absolute cap
// on consecutive waits, and a ratio cap on total time spent waiting.
func hasWaitedTooMuch(s *yard.State) bool {
	if s.ConsecutiveWaits >= maxConsecutiveWaits {
		return true
	}
	if s.CurrentTime > 0 {
		ratio := float64(s.TotalWaitTime) / float64(s.CurrentTime)
		if ratio > maxWaitRatio {
			return true
		}
	}
	return false
}

// optimalWaitTime returns the number of seconds until the outgoing
// stack's top container next clears, capped at maxWaitTimeS, or
// maxWaitTimeS itself if no clearing is imminent.
func optimalWaitTime(s *yard.State, t Timings) int {
	min := maxWaitTimeS
	if top := s.Top(s.OutgoingIndex()); top != nil && top.Exited() {
		untilClear := (top.ExitTime + t.ClearingS) - s.CurrentTime
		if untilClear > 0 && untilClear < min {
			min = untilClear
		}
	}
	return min
}
