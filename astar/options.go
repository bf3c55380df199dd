package astar

// Options configures a single Solve call.
//
//   - MaxNodes caps the number of expanded nodes; reaching it without a
//     goal ends the search with Solution.Found == false.
//   - MaxSolutions caps how many distinct goal states are collected before
//     the search stops early (with a value above 1 the search continues
//     past the first goal, looking for cheaper alternatives, up to this
//     many; with the default of 1 it stops at the first goal).
//   - Verbose is a hint Solve itself ignores; callers (cmd/planner) use it
//     to decide whether to attach a Progress callback and emit a detailed
//     transcript.
//   - Progress, if non-nil, is invoked every 100 expansions regardless of
//     Verbose.
//   - PlacementExitSlack overrides yard.State.PlacementExitSlackS for
//     every generated successor (0 keeps each state's own value).
//   - Timings supplies the crane's operation durations; required.
type Options struct {
	MaxNodes           int
	MaxSolutions       int
	Verbose            bool
	Progress           func(Progress)
	PlacementExitSlack int
	Timings            Timings
}

// Option is a functional option for Solve.
type Option func(*Options)

// DefaultOptions returns sensible defaults: 200000 max nodes, a single
// solution, no progress callback, no placement-exit-slack override.
func DefaultOptions() Options {
	return Options{
		MaxNodes:     200000,
		MaxSolutions: 1,
	}
}

// WithMaxNodes caps the number of node expansions. Panics if n <= 0.
func WithMaxNodes(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic("astar: MaxNodes must be positive")
		}
		o.MaxNodes = n
	}
}

// WithMaxSolutions sets how many ranked goal states Solve collects before
// stopping early. Panics if n <= 0.
func WithMaxSolutions(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic("astar: MaxSolutions must be positive")
		}
		o.MaxSolutions = n
	}
}

// WithVerbose sets a hint for callers; Solve itself ignores it.
func WithVerbose(v bool) Option {
	return func(o *Options) {
		o.Verbose = v
	}
}

// WithProgress registers a callback invoked periodically during the
// search with the current expansion count, frontier size, and best f.
func WithProgress(fn func(Progress)) Option {
	return func(o *Options) {
		o.Progress = fn
	}
}

// WithPlacementExitSlack overrides the outgoing top-of-stack guard
// constant for every state the search generates. Panics if s < 0.
func WithPlacementExitSlack(s int) Option {
	return func(o *Options) {
		if s < 0 {
			panic("astar: PlacementExitSlack must be non-negative")
		}
		o.PlacementExitSlack = s
	}
}

// WithTimings supplies the crane's operation durations. Required; Solve
// returns ErrNilBuffers if Timings is left at its zero value.
func WithTimings(t Timings) Option {
	return func(o *Options) {
		o.Timings = t
	}
}
