package astar

import (
	"container/heap"
	"math"
	"sort"
	"time"

	"github.com/katalvlaran/hotyard/yard"
)

// epsilon is the tie-breaking weight on simulated time folded into g, so
// that among two successors of equal lateness the search prefers the one
// that reaches it sooner: g = total_accumulated_lateness + ε·current_time.
const epsilon = 0.001

// costTieThreshold is how close two solutions' TotalCost must be before
// ranking falls back to comparing TotalLateness.
const costTieThreshold = 0.01

// progressEvery is the node-expansion cadence at which Options.Progress
// is invoked.
const progressEvery = 100

// Solve runs a best-first search from initial, returning the lowest-cost
// goal state found (and, internally, every alternative up to
// Options.MaxSolutions). The search continues past the first goal state
// in search of cheaper alternatives, stopping when MaxSolutions goals
// have been collected, the frontier is exhausted, or MaxNodes nodes have
// been expanded.
//
// Duplicate detection keys on yard.State.Fingerprint, never Equal: two
// states with the same fingerprint are treated as the same search state
// even if their CurrentTime or counters differ, per Invariant 5.
func Solve(initial yard.State, opts ...Option) (Solution, error) {
	start := time.Now()

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Timings.IsZero() {
		return Solution{}, ErrNilBuffers
	}
	if cfg.PlacementExitSlack != 0 {
		initial.PlacementExitSlackS = cfg.PlacementExitSlack
	}

	r := &runner{
		cfg:    cfg,
		arena:  make([]node, 0, 1024),
		bestG:  make(map[string]float64),
		closed: make(map[string]bool),
	}

	if initial.IsGoal() {
		return Solution{
			Found:         true,
			Path:          []yard.State{initial},
			TotalCost:     0,
			TotalLateness: initial.TotalAccumulatedLateness,
			SearchElapsed: time.Since(start).Seconds(),
		}, nil
	}

	sol := r.run(&initial)
	sol.SearchElapsed = time.Since(start).Seconds()
	return sol, nil
}

// runner holds the mutable state of one Solve call: the node arena,
// frontier, and duplicate-detection maps.
type runner struct {
	cfg Options

	arena []node
	pq    openPQ

	bestG  map[string]float64
	closed map[string]bool

	nodesExpanded     int
	nodesGenerated    int
	duplicatesSkipped int
	nextSeq           int64

	allSolutions []CompleteSolution
}

func (r *runner) run(initial *yard.State) Solution {
	g0 := initial.TotalAccumulatedLateness
	h0 := Heuristic(initial, r.cfg.Timings)
	r.arena = append(r.arena, node{state: initial, g: g0, h: h0, f: g0 + h0, parent: -1})
	r.bestG[initial.Fingerprint()] = g0
	r.pushOpen(0, g0+h0)
	r.nodesGenerated++

	for r.pq.Len() > 0 && r.nodesExpanded < r.cfg.MaxNodes {
		idx := r.popOpen()
		cur := &r.arena[idx]

		if cur.state.IsGoal() {
			r.recordSolution(idx)
			if len(r.allSolutions) >= r.cfg.MaxSolutions {
				break
			}
			continue
		}

		fp := cur.state.Fingerprint()
		if r.closed[fp] {
			r.duplicatesSkipped++
			continue
		}
		r.nodesExpanded++
		r.closed[fp] = true

		if r.cfg.Progress != nil && r.nodesExpanded%progressEvery == 0 {
			r.cfg.Progress(Progress{
				NodesExpanded: r.nodesExpanded,
				QueueSize:     r.pq.Len(),
				BestF:         cur.f,
			})
		}

		r.expand(idx)
	}

	return r.finalize()
}

func (r *runner) expand(parentIdx int) {
	parent := &r.arena[parentIdx]
	for _, succ := range Generate(parent.state, r.cfg.Timings) {
		g := succ.state.TotalAccumulatedLateness + epsilon*float64(succ.state.CurrentTime)
		fp := succ.state.Fingerprint()

		if best, ok := r.bestG[fp]; ok && best <= g {
			r.duplicatesSkipped++
			continue
		}
		r.bestG[fp] = g

		h := Heuristic(succ.state, r.cfg.Timings)
		idx := len(r.arena)
		r.arena = append(r.arena, node{state: succ.state, g: g, h: h, f: g + h, parent: parentIdx})
		r.pushOpen(idx, g+h)
		r.nodesGenerated++
	}
}

func (r *runner) recordSolution(goalIdx int) {
	path := r.reconstructPath(goalIdx)
	goal := &r.arena[goalIdx]

	sol := CompleteSolution{
		Path:                   path,
		TotalCost:              goal.g,
		TotalLateness:          goal.state.TotalAccumulatedLateness,
		NodesExpandedWhenFound: r.nodesExpanded,
		KeyMoves:               keyMoves(path),
	}
	r.allSolutions = append(r.allSolutions, sol)
}

// keyMoves summarizes a path's actions for reporting: the first five,
// and — for paths longer than seven states — an ellipsis plus the last two.
func keyMoves(path []yard.State) []string {
	var moves []string
	limit := len(path)
	if limit > 5 {
		limit = 5
	}
	for i := 0; i < limit; i++ {
		moves = append(moves, path[i].LastAction)
	}
	if len(path) > 7 {
		moves = append(moves, "...")
		for i := len(path) - 2; i < len(path); i++ {
			moves = append(moves, path[i].LastAction)
		}
	}
	return moves
}

func (r *runner) reconstructPath(goalIdx int) []yard.State {
	var path []yard.State
	for idx := goalIdx; idx != -1; idx = r.arena[idx].parent {
		path = append(path, *r.arena[idx].state)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

func (r *runner) finalize() Solution {
	sort.SliceStable(r.allSolutions, func(i, j int) bool {
		a, b := r.allSolutions[i], r.allSolutions[j]
		if math.Abs(a.TotalCost-b.TotalCost) < costTieThreshold {
			return a.TotalLateness < b.TotalLateness
		}
		return a.TotalCost < b.TotalCost
	})

	sol := Solution{
		NodesExpanded:     r.nodesExpanded,
		NodesGenerated:    r.nodesGenerated,
		DuplicatesSkipped: r.duplicatesSkipped,
		Alternatives:      r.allSolutions,
		FrontierExhausted: r.pq.Len() == 0 && r.nodesExpanded < r.cfg.MaxNodes,
	}
	if len(r.allSolutions) > 0 {
		best := r.allSolutions[0]
		sol.Found = true
		sol.Path = best.Path
		sol.TotalCost = best.TotalCost
		sol.TotalLateness = best.TotalLateness
	}
	return sol
}

func (r *runner) pushOpen(idx int, f float64) {
	r.nextSeq++
	heap.Push(&r.pq, &openItem{idx: idx, f: f, seq: r.nextSeq})
}

func (r *runner) popOpen() int {
	return heap.Pop(&r.pq).(*openItem).idx
}

// openItem is one frontier entry: an arena index, its f-score, and an
// insertion sequence number used to break exact f ties in FIFO order.
type openItem struct {
	idx int
	f   float64
	seq int64
}

// openPQ is a min-heap of *openItem ordered by f, then by seq — the
// lazy-decrease-key priority queue pattern, generalized from
// dijkstra/dijkstra.go's nodePQ to a float score plus a FIFO tiebreak.
type openPQ []*openItem

func (pq openPQ) Len() int { return len(pq) }

func (pq openPQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	return pq[i].seq < pq[j].seq
}

func (pq openPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *openPQ) Push(x interface{}) { *pq = append(*pq, x.(*openItem)) }

func (pq *openPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
