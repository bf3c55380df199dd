// Package astar searches a yard.State for a sequence of crane moves that
// clears every container through outgoing with minimum accumulated
// lateness. Generate enumerates legal successor states, Heuristic is an
// admissible lower bound on remaining lateness, and Solve runs the
// best-first search itself.
//
// The search treats states as immutable by copy (see yard.State.Clone):
// Generate never mutates the state passed to it, only clones of it. Nodes
// form a tree via integer parent handles into a flat arena rather than
// *Node pointers, so a completed search can be discarded by dropping the
// arena slice without chasing a pointer graph.
package astar
