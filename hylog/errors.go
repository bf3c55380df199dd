package hylog

import "errors"

// ErrUnknownSink indicates an Options.Sink value outside the Sink enum.
var ErrUnknownSink = errors.New("hylog: unknown sink")
