// Package yard implements the state model of a hot-storage yard: an
// ordered sequence of container stacks, a single single-container crane,
// and the clock/lateness bookkeeping the search and the executor both
// read.
//
// A yard.State is an immutable-by-copy snapshot for the search: every
// successor astar.Generate produces starts from Clone and never mutates a
// shared State in place. The executor's live yard is the one exception: it
// holds a single State and mutates it in place (PickUp, PutDownOnto,
// DrainOutgoing) under its own mutex.
//
// Stack roles are positional: index 0 is entry, index len(Stacks)-1 is
// outgoing, everything between is a capacity-bounded buffer.
package yard
