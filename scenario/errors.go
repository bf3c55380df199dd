package scenario

import "errors"

// ErrStackOverflowsCapacity indicates a yardconfig.StackLayout assigns
// more containers to a buffer stack than its configured capacity, which
// would violate Invariant 2 before the search even starts.
var ErrStackOverflowsCapacity = errors.New("scenario: initial layout exceeds buffer capacity")
