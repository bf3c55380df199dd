package yard

import "errors"

// Sentinel errors returned by yard.State's mutating operations (PickUp,
// PutDown, PutDownOnto). None of these are expected in a correctly driven
// yard: they classify programmer errors in a caller (e.g. the executor), not
// user input, and are returned rather than panicked because they are cheap
// to check at the call site. astar's generator does not call these
// operations; it panics on its own precondition checks instead.
var (
	// ErrStackIndex indicates a stack index outside [0, len(Stacks)).
	ErrStackIndex = errors.New("yard: stack index out of range")

	// ErrCraneEmpty indicates an operation that requires a held container
	// (e.g. PutDown) was attempted while the crane held nothing.
	ErrCraneEmpty = errors.New("yard: crane is not holding a container")

	// ErrCraneFull indicates an operation that requires an empty crane
	// (e.g. PickUp) was attempted while the crane already held a container.
	ErrCraneFull = errors.New("yard: crane already holds a container")
)
