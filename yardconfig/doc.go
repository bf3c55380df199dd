// Package yardconfig loads the yard's external configuration: stack
// geometry, buffer capacity, crane timing constants, the initial
// container layout, and the tunables introduced to resolve the design's
// open questions (PlacementExitSlackS, FeedPeriodS).
//
// Load reads a YAML file through a viper.Viper instance and validates it
// fail-fast, the way a misconfigured yard should never reach the
// scenario builder or the search at all.
package yardconfig
