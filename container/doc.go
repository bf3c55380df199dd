// Package container defines the Container value type shared by the yard and
// astar packages: an opaque id, its arrival/due bookkeeping, and the
// optional committed exit time assigned once it is placed on the outgoing
// stack.
//
// Container is deliberately a small, copyable struct — yard.State snapshots
// hold containers by value so that cloning a state for a search successor
// never aliases mutable data with its parent.
package container
