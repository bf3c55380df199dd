// Package executor runs the live, continuously-operating yard simulation:
// three long-lived actors (an entry feeder, a crane runner, and an
// outgoing drainer) sharing one live yard, a swappable move script, and
// a pause protocol that lets the crane runner recalculate the plan
// in-flight whenever a new container arrives.
//
// Run launches the three actors as an errgroup.Group and blocks until one
// returns an error or ctx is canceled. Within the crane runner, no lock is
// held across a simulated sleep: the duration is computed, every lock is
// released, and only then does the goroutine block on the Clock.
package executor
