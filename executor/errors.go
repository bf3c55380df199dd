package executor

import "errors"

// ErrMalformedToken indicates the crane runner consumed a move-script
// token planscript.Decode could not classify as a Move or a Wait.
var ErrMalformedToken = errors.New("executor: malformed move token")

// ErrSameStack indicates a Move token names the same stack as both
// source and destination.
var ErrSameStack = errors.New("executor: source and destination stacks are identical")
