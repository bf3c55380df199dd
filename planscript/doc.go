// Package planscript encodes a solved search path into the compact move
// script the Executor consumes, and decodes it back for replay and
// testing.
//
// Each consecutive (Pick from stack s, Place on stack d) pair in the path
// collapses to one token "s d". A run of k consecutive ten-second waits
// collapses to one token "101010 k"; the Executor interprets it as a
// wait of 10*k simulated seconds. Only ten-second waits are collapsed:
// astar's generator emits waits of at most ten seconds, and a shorter one
// (when the outgoing top's clearing is nearer than that) is not collapsed
// but passes through as its raw action sentence.
package planscript
