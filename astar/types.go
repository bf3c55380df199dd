package astar

import "github.com/katalvlaran/hotyard/yard"

// Timings are the crane's four fixed operation durations, in seconds:
// moving one stack over, lowering onto a stack, lifting off a stack, and
// the outgoing clearing cadence. All four come from the parsed yard
// configuration (see yardconfig); a zero Timings is invalid (ErrNilBuffers).
type Timings struct {
	CraneMoveS  int
	CraneLowerS int
	CraneLiftS  int
	ClearingS   int
}

// IsZero reports whether every timing is unset.
func (t Timings) IsZero() bool {
	return t.CraneMoveS == 0 && t.CraneLowerS == 0 && t.CraneLiftS == 0 && t.ClearingS == 0
}

// node is one entry in the search arena: a state snapshot plus its g/h/f
// score and an integer handle to its parent, rather than a pointer. Parent
// is -1 for the root. Using indices into a flat slice instead of *node
// lets a finished search be released by dropping the slice, with no
// pointer graph to walk.
type node struct {
	state  *yard.State
	g      float64
	h      float64
	f      float64
	parent int
}

// Solution is Solve's return value: the best path found (possibly empty
// if Found is false), its accumulated g-cost, and search statistics.
type Solution struct {
	Found             bool
	Path              []yard.State
	TotalCost         float64
	TotalLateness     float64
	NodesExpanded     int
	NodesGenerated    int
	DuplicatesSkipped int

	// SearchElapsed is the wall-clock time Solve spent searching, in
	// seconds.
	SearchElapsed float64

	// FrontierExhausted distinguishes, when Found is false, a search that
	// ran out of reachable states (true, ErrNoSuccessors's classification)
	// from one that hit Options.MaxNodes with states still unexplored
	// (false). Never surfaced as an error — see astar/errors.go.
	FrontierExhausted bool

	// Alternatives holds every goal state found, ranked best first, up to
	// Options.MaxSolutions. When the search found a goal, Path equals
	// Alternatives[0].Path. When the initial state is already a goal,
	// Solve returns it as Path without searching and Alternatives is empty.
	Alternatives []CompleteSolution
}

// CompleteSolution is one ranked goal-state result: its full path, cost
// breakdown, and a short trace of key moves for reporting.
type CompleteSolution struct {
	Path                   []yard.State
	TotalCost              float64
	TotalLateness          float64
	NodesExpandedWhenFound int
	KeyMoves               []string
}

// Progress is passed to a WithProgress callback periodically during the
// search so a caller can report liveness without polling internal state.
type Progress struct {
	NodesExpanded int
	QueueSize     int
	BestF         float64
}
