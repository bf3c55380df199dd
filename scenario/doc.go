// Package scenario assembles an initial yard.State from a loaded
// yardconfig.Config, and generates the random containers the live Entry
// Feeder actor draws from.
//
// New is a single deterministic assembly entry-point driven by
// functional options. RandomContainer takes an explicit seeded RNG so a
// fixed seed reproduces the same draws.
package scenario
