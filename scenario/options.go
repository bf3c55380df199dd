package scenario

// Options configures New's assembly of the initial yard.State.
type Options struct {
	// ArrivalTime is stamped onto every seeded container (default 0: every
	// pre-placed container is treated as having arrived at time zero).
	ArrivalTime int
}

// Option is a functional option for New.
type Option func(*Options)

// DefaultOptions returns ArrivalTime: 0.
func DefaultOptions() Options {
	return Options{ArrivalTime: 0}
}

// WithArrivalTime stamps every seeded container with the given arrival
// time instead of zero, for assembling a yard whose containers count as
// having arrived at a later clock value rather than at time zero.
func WithArrivalTime(t int) Option {
	return func(o *Options) {
		o.ArrivalTime = t
	}
}
