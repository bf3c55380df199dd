package planscript

import "errors"

// Sentinel errors returned while decoding a move script. These classify a
// malformed or foreign script, not an internal bug — Decode is the
// boundary where untrusted file content enters the program, so errors
// here are always plain returns, never panics.
var (
	// ErrMalformedToken indicates a wait-run token "101010 k" whose count
	// k is not a positive integer. Any other unrecognized token decodes
	// as Raw rather than failing.
	ErrMalformedToken = errors.New("planscript: malformed move token")
)
