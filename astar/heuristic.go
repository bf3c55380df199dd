package astar

import "github.com/katalvlaran/hotyard/yard"

// Heuristic returns an admissible lower bound on the total lateness still
// to be incurred from s: for every not-yet-exited container (including
// one held by the crane), the minimum possible seconds until it could be
// delivered to outgoing, converted to a lateness contribution against its
// fixed DueTime. Summing independent per-container lower bounds never
// overestimates the true remaining cost, since any real plan must spend
// at least that much time on each container and containers cannot be
// delivered in less time than minTimeToExit computes.
func Heuristic(s *yard.State, t Timings) float64 {
	total := 0.0
	out := s.OutgoingIndex()

	if s.Crane.HasContainer() {
		held := s.Crane.Held
		timeToExit := craneMoveTime(s.Crane.Position, out, t) + t.CraneLowerS
		exitTime := s.CurrentTime + timeToExit
		total += lateness(exitTime, held.DueTime())
	}

	for stackIdx := 0; stackIdx < out; stackIdx++ {
		stack := s.Stacks[stackIdx]
		for pos, c := range stack {
			if c.Exited() {
				continue
			}
			minTime := minTimeToExit(s, stackIdx, pos, t)
			if s.Crane.HasContainer() {
				minTime += craneMoveTime(s.Crane.Position, out, t) + t.CraneLowerS
			}
			exitTime := s.CurrentTime + minTime
			total += lateness(exitTime, c.DueTime())
		}
	}

	return total
}

func lateness(exitTime, dueTime int) float64 {
	if d := exitTime - dueTime; d > 0 {
		return float64(d)
	}
	return 0
}

// minTimeToExit computes the fastest possible number of seconds for the
// crane to deliver the container at (stackIndex, containerPosition) to
// outgoing, assuming the crane is currently empty: one round trip to
// unbury and redeposit each container stacked above it, then the grab,
// the move to outgoing, and the drop.
func minTimeToExit(s *yard.State, stackIndex, containerPosition int, t Timings) int {
	total := 0
	out := s.OutgoingIndex()

	if !s.Crane.HasContainer() && s.Crane.Position != stackIndex {
		total += craneMoveTime(s.Crane.Position, stackIndex, t)
	}

	containersAbove := len(s.Stacks[stackIndex]) - containerPosition - 1
	if containersAbove > 0 {
		perContainer := t.CraneLowerS + t.CraneLiftS + t.CraneMoveS + t.CraneLowerS + t.CraneLiftS + t.CraneMoveS
		total += containersAbove * perContainer
	}

	total += t.CraneLowerS + t.CraneLiftS
	total += craneMoveTime(stackIndex, out, t)
	total += t.CraneLowerS

	return total
}
