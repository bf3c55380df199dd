package container

import "fmt"

// Unset is the sentinel for a Container field that has not yet been
// assigned (ArrivalTime before first entry, ExitTime before placement on
// outgoing).
const Unset = -1

// DueWindow is a minutes+seconds view of a duration, kept purely for
// display and for round-tripping the yard configuration's minutes+seconds
// format. All admissibility math uses the absolute DueTime (ArrivalTime +
// DueIn seconds) computed at arrival, never this view.
type DueWindow struct {
	Minutes int
	Seconds int
}

// ToSeconds returns the duration the window represents, in seconds.
func (w DueWindow) ToSeconds() int {
	return w.Minutes*60 + w.Seconds
}

// String renders "MM:SS", zero-padded.
func (w DueWindow) String() string {
	return fmt.Sprintf("%02d:%02d", w.Minutes, w.Seconds)
}

// FromSeconds builds a DueWindow from a duration in seconds. Negative
// durations are represented with both fields negative, so an overdue
// window still renders as a single signed "MM:SS" pair.
func FromSeconds(totalSeconds int) DueWindow {
	if totalSeconds < 0 {
		return DueWindow{Minutes: -((-totalSeconds) / 60), Seconds: -((-totalSeconds) % 60)}
	}
	return DueWindow{Minutes: totalSeconds / 60, Seconds: totalSeconds % 60}
}

// Container is one unit of cargo moving through the yard. ID is opaque and
// compared only for equality. ArrivalTime is assigned once, at first entry
// into the system (the live feeder or the initial scenario). DueIn is the
// seconds-from-arrival deadline. ExitTime is Unset while the container is
// still in the system; it is committed to a concrete clock value the
// instant the container is placed on outgoing (see yard.State.PutDownOnto).
type Container struct {
	ID           string
	ArrivalTime  int
	DueIn        int
	ExitTime     int
	RemainingDue DueWindow // informational view updated as time advances; see Tick
}

// New constructs a Container that has just arrived: ExitTime is Unset and
// RemainingDue mirrors DueIn.
func New(id string, arrivalTime, dueIn int) Container {
	return Container{
		ID:           id,
		ArrivalTime:  arrivalTime,
		DueIn:        dueIn,
		ExitTime:     Unset,
		RemainingDue: FromSeconds(dueIn),
	}
}

// DueTime is the absolute instant the container ought to be on outgoing.
func (c Container) DueTime() int {
	return c.ArrivalTime + c.DueIn
}

// Exited reports whether the container has a committed exit time.
func (c Container) Exited() bool {
	return c.ExitTime != Unset
}

// Lateness is max(0, ExitTime-DueTime); zero while the container has not
// yet exited.
func (c Container) Lateness() int {
	if !c.Exited() {
		return 0
	}
	if d := c.ExitTime - c.DueTime(); d > 0 {
		return d
	}
	return 0
}

// Tick decrements the informational RemainingDue view by elapsed seconds.
// The value is allowed to go negative (the container is already overdue);
// it never feeds back into DueTime, which stays fixed at arrival.
func (c Container) Tick(elapsed int) Container {
	if c.Exited() {
		return c
	}
	c.RemainingDue = FromSeconds(c.RemainingDue.ToSeconds() - elapsed)
	return c
}

// WithExitTime returns a copy of c with ExitTime set to t.
func (c Container) WithExitTime(t int) Container {
	c.ExitTime = t
	return c
}
