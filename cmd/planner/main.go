// Command planner runs a single A* search over a configured yard and
// writes its transcript and move script to disk.
//
// Usage: planner <config_path> [verbose]
//
// Exit 0 whether or not a solution was found; non-zero only on a
// configuration error.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/hotyard/astar"
	"github.com/katalvlaran/hotyard/hylog"
	"github.com/katalvlaran/hotyard/planscript"
	"github.com/katalvlaran/hotyard/scenario"
	"github.com/katalvlaran/hotyard/yardconfig"
)

const (
	processFile  = "AStarProcess.txt"
	solutionFile = "BestSolutionMoves.txt"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: planner <config_path> [verbose]")
		os.Exit(1)
	}
	verbose := len(os.Args) >= 3 && os.Args[2] == "verbose"

	log, closer, err := hylog.New(hylog.WithSink(hylog.SinkConsole), hylog.WithVerbose(verbose))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closer.Close()

	cfg, err := yardconfig.Load(os.Args[1])
	if err != nil {
		log.Error().Err(err).Msg("failed to load configuration")
		os.Exit(1)
	}

	initial, err := scenario.New(cfg)
	if err != nil {
		log.Error().Err(err).Msg("failed to assemble initial yard")
		os.Exit(1)
	}

	timings := astar.Timings{
		CraneMoveS:  cfg.CraneMove.ToSeconds(),
		CraneLowerS: cfg.CraneLower.ToSeconds(),
		CraneLiftS:  cfg.CraneLift.ToSeconds(),
		ClearingS:   cfg.Clearing.ToSeconds(),
	}

	opts := []astar.Option{
		astar.WithTimings(timings),
		astar.WithPlacementExitSlack(cfg.PlacementExitSlackS),
		astar.WithVerbose(verbose),
	}
	if verbose {
		opts = append(opts, astar.WithProgress(func(p astar.Progress) {
			log.Debug().
				Int("nodes_expanded", p.NodesExpanded).
				Int("queue_size", p.QueueSize).
				Float64("best_f", p.BestF).
				Msg("search progress")
		}))
	}

	sol, err := astar.Solve(initial, opts...)
	if err != nil {
		log.Error().Err(err).Msg("search could not run")
		os.Exit(1)
	}

	if err := writeTranscript(sol, verbose); err != nil {
		log.Error().Err(err).Msg("failed to write process transcript")
	}
	if err := writeSolution(sol); err != nil {
		log.Error().Err(err).Msg("failed to write move script")
	}

	if sol.Found {
		log.Info().
			Float64("total_lateness", sol.TotalLateness).
			Int("nodes_expanded", sol.NodesExpanded).
			Msg("solution found")
	} else if sol.FrontierExhausted {
		log.Info().Err(astar.ErrNoSuccessors).Int("nodes_expanded", sol.NodesExpanded).Msg("no solution found")
	} else {
		log.Info().Int("nodes_expanded", sol.NodesExpanded).Msg("no solution found before reaching the node budget")
	}
}

// writeTranscript renders a human-readable search summary (found flag,
// node counts, total lateness, elapsed time) and, when verbose, a
// move-by-move trace of the best path with each state's simulated time.
func writeTranscript(sol astar.Solution, verbose bool) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Solution found: %v\n", sol.Found)
	fmt.Fprintf(&b, "Nodes expanded: %d\n", sol.NodesExpanded)
	fmt.Fprintf(&b, "Nodes generated: %d\n", sol.NodesGenerated)
	fmt.Fprintf(&b, "Duplicates skipped: %d\n", sol.DuplicatesSkipped)
	fmt.Fprintf(&b, "Total lateness: %.2f\n", sol.TotalLateness)
	fmt.Fprintf(&b, "Search elapsed (s): %.3f\n", sol.SearchElapsed)

	if verbose {
		b.WriteString("\n--- Move-by-move trace ---\n")
		for i, st := range sol.Path {
			fmt.Fprintf(&b, "%d. %s (time: %ds)\n", i, st.LastAction, st.CurrentTime)
		}
	}

	return os.WriteFile(processFile, []byte(b.String()), 0o644)
}

// writeSolution persists the reduced move script, or an empty file if
// no solution was found.
func writeSolution(sol astar.Solution) error {
	if !sol.Found {
		return os.WriteFile(solutionFile, nil, 0o644)
	}
	tokens := planscript.Encode(sol.Path)
	return os.WriteFile(solutionFile, []byte(planscript.Join(tokens)), 0o644)
}
