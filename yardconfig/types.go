package yardconfig

import "github.com/katalvlaran/hotyard/container"

// ContainerSpec is one pre-placed container in the initial layout: an id
// and its due window (minutes+seconds from the moment it is seeded).
type ContainerSpec struct {
	ID    string              `mapstructure:"id"`
	DueIn container.DueWindow `mapstructure:"due_in"`
}

// StackLayout assigns a list of initial containers, bottom-first, to one
// named stack.
type StackLayout struct {
	Stack      string          `mapstructure:"stack"`
	Containers []ContainerSpec `mapstructure:"containers"`
}

// Timing is a minutes+seconds duration as configured.
type Timing struct {
	Minutes int `mapstructure:"minutes"`
	Seconds int `mapstructure:"seconds"`
}

// ToSeconds returns the duration in seconds.
func (t Timing) ToSeconds() int {
	return t.Minutes*60 + t.Seconds
}

// Config is the fully parsed, validated yard configuration.
type Config struct {
	// StackNames is the ordered stack geometry: index 0 is entry, the
	// last index is outgoing, everything between is a buffer.
	StackNames []string `mapstructure:"stack_names"`

	// BufferCapacity is B, the fixed capacity shared by every buffer
	// stack.
	BufferCapacity int `mapstructure:"buffer_capacity"`

	CraneMove  Timing `mapstructure:"crane_move"`
	CraneLower Timing `mapstructure:"crane_lower"`
	CraneLift  Timing `mapstructure:"crane_lift"`
	Clearing   Timing `mapstructure:"clearing_time"`

	// PlacementExitSlackS is the outgoing top-of-stack guard constant
	// (design's open question; default 4000 if unset).
	PlacementExitSlackS int `mapstructure:"placement_exit_slack_s"`

	// FeedPeriodS is how often, in seconds, the live Entry Feeder actor
	// generates a new container (design's P_feed, default 35 if unset).
	FeedPeriodS int `mapstructure:"feed_period_s"`

	// InitialLayout seeds the scenario's starting stacks.
	InitialLayout []StackLayout `mapstructure:"initial_layout"`
}

// StackIndex returns the index of a stack by name, or -1 if unknown.
func (c Config) StackIndex(name string) int {
	for i, n := range c.StackNames {
		if n == name {
			return i
		}
	}
	return -1
}

// OutgoingIndex returns the index of the outgoing stack.
func (c Config) OutgoingIndex() int {
	return len(c.StackNames) - 1
}
