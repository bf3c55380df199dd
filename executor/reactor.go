package executor

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/katalvlaran/hotyard/astar"
	"github.com/katalvlaran/hotyard/planscript"
	"github.com/katalvlaran/hotyard/scenario"
	"golang.org/x/sync/errgroup"
)

// idlePollInterval is how often the crane runner rechecks for work once
// its move script is exhausted and no recalculation is pending.
const idlePollInterval = time.Second

// Reactor drives the three live actors over one LiveYard: a shared
// needsRecalc flag set by the feeder and cleared by the runner, a pause
// mutex+condition guarding systemPaused, and a separate mutex guarding
// the current move script and its index.
type Reactor struct {
	live  *LiveYard
	cfg   Config
	clock Clock

	movesMu   sync.Mutex
	moves     []planscript.Token
	moveIndex int

	pauseMu      sync.Mutex
	pauseCond    *sync.Cond
	systemPaused bool

	needsRecalc atomic.Bool
	systemTime  atomic.Int64

	// cranePos mirrors the crane's stack index. Read and written only by
	// the crane-runner goroutine, which owns the crane exclusively, so it
	// needs no lock and lets executeMove skip a redundant CraneMoveS when
	// already positioned.
	cranePos int
}

// NewReactor builds a Reactor over live, seeded with an already-decoded
// initial move script (the caller's initial astar.Solve result, encoded
// and decoded the same way a recalculation's result is).
func NewReactor(live *LiveYard, cfg Config, clock Clock, initialMoves []planscript.Token) *Reactor {
	r := &Reactor{
		live:     live,
		cfg:      cfg,
		clock:    clock,
		moves:    initialMoves,
		cranePos: live.CranePosition(),
	}
	r.pauseCond = sync.NewCond(&r.pauseMu)
	return r
}

// Run launches the entry feeder, crane runner, and outgoing drainer as
// three errgroup goroutines and blocks until one returns an error or ctx
// is canceled.
func Run(ctx context.Context, live *LiveYard, cfg Config, initialMoves []planscript.Token) error {
	r := NewReactor(live, cfg, RealClock(), initialMoves)
	return r.Run(ctx)
}

// Run blocks until the actor group stops, either because ctx was
// canceled or because one actor returned an error.
func (r *Reactor) Run(ctx context.Context) error {
	group, groupCtx := errgroup.WithContext(ctx)

	// Bridges context cancellation into the condition variable: Cond.Wait
	// has no channel to select on, so a cancellation must be turned into
	// a Broadcast to wake any actor parked between tasks.
	group.Go(func() error {
		<-groupCtx.Done()
		r.pauseCond.Broadcast()
		return nil
	})

	group.Go(func() error { return r.feederLoop(groupCtx) })
	group.Go(func() error { return r.craneLoop(groupCtx) })
	group.Go(func() error { return r.drainerLoop(groupCtx) })

	return group.Wait()
}

// waitWhilePaused blocks the entry feeder or outgoing drainer until
// systemPaused clears or ctx is canceled.
func (r *Reactor) waitWhilePaused(ctx context.Context) error {
	r.pauseMu.Lock()
	defer r.pauseMu.Unlock()
	for r.systemPaused {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		r.pauseCond.Wait()
	}
	return ctx.Err()
}

func (r *Reactor) beginPause() {
	r.pauseMu.Lock()
	r.systemPaused = true
	r.pauseMu.Unlock()
	r.cfg.Log.Info().Msg("pausing system for recalculation")
}

func (r *Reactor) endPause() {
	r.pauseMu.Lock()
	r.systemPaused = false
	r.pauseMu.Unlock()
	r.pauseCond.Broadcast()
	r.cfg.Log.Info().Msg("system resumed with new plan")
}

// feederLoop generates a new random container on the entry stack every
// FeedPeriodS simulated seconds and flags needsRecalc.
func (r *Reactor) feederLoop(ctx context.Context) error {
	period := time.Duration(r.cfg.FeedPeriodS) * time.Second
	for {
		if err := r.waitWhilePaused(ctx); err != nil {
			return ctxErrOrNil(err)
		}

		select {
		case <-ctx.Done():
			return nil
		case <-r.clock.After(period):
		}

		c := scenario.RandomContainer(r.cfg.RNG, int(r.systemTime.Load()))
		r.live.AppendEntry(c)
		r.needsRecalc.Store(true)
		r.cfg.Log.Info().Str("container", c.ID).Msg("new container arrived on entry stack")
	}
}

// drainerLoop clears the outgoing stack at the ClearingS cadence.
func (r *Reactor) drainerLoop(ctx context.Context) error {
	period := time.Duration(r.cfg.ClearingS) * time.Second
	for {
		if err := r.waitWhilePaused(ctx); err != nil {
			return ctxErrOrNil(err)
		}

		select {
		case <-ctx.Done():
			return nil
		case <-r.clock.After(period):
		}

		if n := r.live.DrainOutgoing(); n > 0 {
			r.cfg.Log.Info().Int("cleared", n).Msg("drained outgoing stack")
		}
	}
}

// craneLoop consumes the current move script one token at a time,
// recalculating whenever needsRecalc is set and it holds no container —
// which, since holding is only ever transient inside executeMove, is
// always true at the top of this loop.
func (r *Reactor) craneLoop(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return nil
		}

		if r.needsRecalc.Load() {
			if err := r.recalc(ctx); err != nil {
				return err
			}
		}

		tok, ok := r.nextToken()
		if !ok {
			if r.needsRecalc.Load() {
				continue
			}
			select {
			case <-ctx.Done():
				return nil
			case <-r.clock.After(idlePollInterval):
			}
			continue
		}

		if err := r.execute(ctx, tok); err != nil {
			return err
		}
	}
}

// recalc snapshots the live yard, runs astar.Solve on it, and swaps in
// the resulting move script under the pause protocol.
func (r *Reactor) recalc(ctx context.Context) error {
	r.beginPause()
	defer r.endPause()

	snapshot := r.live.Snapshot()
	sol, err := astar.Solve(snapshot, r.cfg.SolverOptions...)
	if err != nil {
		return fmt.Errorf("executor: recalculation failed: %w", err)
	}

	tokens := planscript.Encode(sol.Path)
	decoded, err := planscript.Decode(tokens)
	if err != nil {
		return fmt.Errorf("executor: recalculation produced an undecodable script: %w", err)
	}

	r.movesMu.Lock()
	r.moves = decoded
	r.moveIndex = 0
	r.movesMu.Unlock()

	r.needsRecalc.Store(false)
	r.cfg.Log.Info().Bool("found", sol.Found).Int("tokens", len(decoded)).Msg("recalculated plan")
	return nil
}

// nextToken pops the next token off the current move script, or reports
// ok == false if the script is exhausted.
func (r *Reactor) nextToken() (planscript.Token, bool) {
	r.movesMu.Lock()
	defer r.movesMu.Unlock()
	if r.moveIndex >= len(r.moves) {
		return planscript.Token{}, false
	}
	tok := r.moves[r.moveIndex]
	r.moveIndex++
	return tok, true
}

// execute replays one decoded token against the live yard.
func (r *Reactor) execute(ctx context.Context, tok planscript.Token) error {
	switch tok.Kind {
	case planscript.Wait:
		return r.advance(ctx, tok.WaitSeconds)
	case planscript.Move:
		return r.executeMove(ctx, tok.Source, tok.Dest)
	default:
		return fmt.Errorf("%w: %q", ErrMalformedToken, tok.Literal)
	}
}

// executeMove replays a pick-then-place move: move, lower, pick, lift,
// move, lower, place, lift, advancing the live clock by each timing in
// turn and persisting the mutation only after each simulated sleep.
func (r *Reactor) executeMove(ctx context.Context, source, dest int) error {
	if source == dest {
		return fmt.Errorf("%w: stack %d", ErrSameStack, source)
	}

	if r.cranePos != source {
		if err := r.advance(ctx, r.cfg.Timings.CraneMoveS); err != nil {
			return err
		}
		r.cranePos = source
	}
	if err := r.advance(ctx, r.cfg.Timings.CraneLowerS); err != nil {
		return err
	}
	if err := r.live.PickUp(source); err != nil {
		return err
	}
	if err := r.advance(ctx, r.cfg.Timings.CraneLiftS); err != nil {
		return err
	}

	if r.cranePos != dest {
		if err := r.advance(ctx, r.cfg.Timings.CraneMoveS); err != nil {
			return err
		}
		r.cranePos = dest
	}
	if err := r.advance(ctx, r.cfg.Timings.CraneLowerS); err != nil {
		return err
	}
	lateness, err := r.live.PutDown(dest)
	if err != nil {
		return err
	}
	if lateness > 0 {
		r.cfg.Log.Info().Float64("lateness_s", lateness).Msg("container exited late")
	}
	return r.advance(ctx, r.cfg.Timings.CraneLiftS)
}

// advance blocks for seconds of simulated time, with no lock held
// across the sleep, then advances the live yard's clock and the
// Reactor's own systemTime counter.
func (r *Reactor) advance(ctx context.Context, seconds int) error {
	select {
	case <-ctx.Done():
		return nil
	case <-r.clock.After(time.Duration(seconds) * time.Second):
	}
	r.systemTime.Add(int64(seconds))
	r.live.Tick(seconds)
	return nil
}

// ctxErrOrNil turns context.Canceled into a nil error (clean shutdown),
// surfacing only unexpected cancellation causes.
func ctxErrOrNil(err error) error {
	if err == context.Canceled || err == context.DeadlineExceeded {
		return nil
	}
	return err
}
