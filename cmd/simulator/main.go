// Command simulator runs the live, continuously-operating yard
// simulation until interrupted.
//
// Usage: simulator [<config_path>]
//
// config_path defaults to "ulaz.txt". The simulator loads the
// configuration, plans an initial move script, then hands off to the
// three-actor executor (entry feeder, crane runner, outgoing drainer)
// until SIGINT/SIGTERM.
package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/katalvlaran/hotyard/astar"
	"github.com/katalvlaran/hotyard/executor"
	"github.com/katalvlaran/hotyard/hylog"
	"github.com/katalvlaran/hotyard/planscript"
	"github.com/katalvlaran/hotyard/scenario"
	"github.com/katalvlaran/hotyard/yardconfig"
)

const defaultConfigPath = "ulaz.txt"

func main() {
	configPath := defaultConfigPath
	if len(os.Args) >= 2 {
		configPath = os.Args[1]
	}

	log, closer, err := hylog.New(hylog.WithSink(hylog.SinkBoth), hylog.WithFilePath("hotyard.log"))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closer.Close()

	cfg, err := yardconfig.Load(configPath)
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
	solverOpts := []astar.Option{
		astar.WithTimings(timings),
		astar.WithPlacementExitSlack(cfg.PlacementExitSlackS),
	}

	sol, err := astar.Solve(initial, solverOpts...)
	if err != nil {
		log.Error().Err(err).Msg("initial search could not run")
		os.Exit(1)
	}
	if !sol.Found {
		log.Warn().Msg("no initial plan found; crane runner will start idle and recalculate on arrival")
	}

	moves, err := planscript.Decode(planscript.Encode(sol.Path))
	if err != nil {
		log.Error().Err(err).Msg("initial plan produced an undecodable script")
		os.Exit(1)
	}

	live := executor.NewLiveYard(initial)
	execCfg := executor.Config{
		Timings:       timings,
		FeedPeriodS:   cfg.FeedPeriodS,
		ClearingS:     cfg.Clearing.ToSeconds(),
		RNG:           rand.New(rand.NewSource(time.Now().UnixNano())),
		SolverOptions: solverOpts,
		Log:           log,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().Str("config", configPath).Msg("simulation starting")
	if err := executor.Run(ctx, live, execCfg, moves); err != nil {
		log.Error().Err(err).Msg("simulation stopped with an error")
		os.Exit(1)
	}
	log.Info().Msg("simulation stopped")
}
