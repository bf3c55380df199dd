package yardconfig

import "errors"

// Sentinel errors returned by Load. All of them are configuration
// errors in spec terms: fail fast at startup with a human-readable
// message, never a panic — the file is untrusted input.
var (
	// ErrReadConfig wraps an underlying viper read failure (missing
	// file, permissions, malformed YAML syntax).
	ErrReadConfig = errors.New("yardconfig: failed to read configuration")

	// ErrUnmarshalConfig wraps a viper unmarshal failure (YAML parses
	// but does not fit the Config shape).
	ErrUnmarshalConfig = errors.New("yardconfig: failed to parse configuration")

	// ErrTooFewStacks indicates fewer than two stacks were configured
	// (a yard needs at least an entry and an outgoing stack).
	ErrTooFewStacks = errors.New("yardconfig: at least two stacks (entry and outgoing) are required")

	// ErrNoBufferStack indicates a yard with no buffer stacks at all
	// (exactly two stacks configured, entry and outgoing with nothing
	// between them) — legal per the state model but flagged since a
	// real yard always stages containers somewhere.
	ErrNoBufferStack = errors.New("yardconfig: no buffer stack configured between entry and outgoing")

	// ErrBadBufferCapacity indicates BufferCapacity <= 0.
	ErrBadBufferCapacity = errors.New("yardconfig: buffer capacity must be positive")

	// ErrNegativeTiming indicates a crane timing constant was negative.
	ErrNegativeTiming = errors.New("yardconfig: crane timing constants must be non-negative")

	// ErrDuplicateContainerID indicates two initial containers share an
	// id, which would break Fingerprint-based duplicate detection.
	ErrDuplicateContainerID = errors.New("yardconfig: duplicate container id in initial layout")

	// ErrUnknownStack indicates an initial container was assigned to a
	// stack name that isn't in StackNames.
	ErrUnknownStack = errors.New("yardconfig: initial container assigned to unknown stack")
)
