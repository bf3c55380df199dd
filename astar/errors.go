package astar

import "errors"

// Sentinel errors of the search, grounded in dijkstra/types.go's
// sentinel-error block (ErrNilGraph, ErrEmptySource). Only ErrNilBuffers
// is returned by Solve, for a construction-time mistake a caller should
// fail fast on; ErrNoSuccessors is a diagnostic classification only.
var (
	// ErrNilBuffers indicates Solve was called with a zero Timings (every
	// crane timing at its zero value), which would make every move free
	// and the search degenerate.
	ErrNilBuffers = errors.New("astar: timings are unset")

	// ErrNoSuccessors names the diagnostic classification recorded on
	// Solution.FrontierExhausted when a non-goal search exhausts its
	// frontier without ever finding a goal state — distinct from MaxNodes
	// exhaustion. It is never itself returned as an error from Solve; see
	// Solution.FrontierExhausted.
	ErrNoSuccessors = errors.New("astar: frontier exhausted with no goal state reachable")
)
