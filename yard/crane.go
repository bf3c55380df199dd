package yard

import (
	"fmt"

	"github.com/katalvlaran/hotyard/container"
)

// Crane holds at most one container at a time, positioned above one stack.
type Crane struct {
	Position int
	Held     *container.Container
}

// HasContainer reports whether the crane currently holds a container.
func (c Crane) HasContainer() bool {
	return c.Held != nil
}

// String renders the crane for tracing.
func (c Crane) String() string {
	if c.Held == nil {
		return fmt.Sprintf("Crane at stack %d (empty)", c.Position)
	}
	return fmt.Sprintf("Crane at stack %d holding %s", c.Position, c.Held.ID)
}

// clone returns a deep copy: the held container, if any, is copied by
// value so mutating the clone's Held never aliases the original's.
func (c Crane) clone() Crane {
	if c.Held == nil {
		return Crane{Position: c.Position}
	}
	held := *c.Held
	return Crane{Position: c.Position, Held: &held}
}
