package libtubes

import (
	"context"
	"math/rand/v2"
	"runtime"
	"sync/atomic"

	"github.com/fine-structures/fliptubes/gotubes"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Walk is a walk through a flip graph where each step introduces a tube not seen before in the walk.
type Walk struct {
	fg      *FlipGraph
	Start   int   // index of the starting tubing
	End     int   // index of the current (last) tubing
	Path    []int // visited tubing indices, starting with Start
	Flips   []int // Flips[i] is the ID of the tube introduced moving from Path[i] to Path[i+1]
	seen    []bool
	numSeen int
}

// SearchResult is the outcome of a multi-trial search.
type SearchResult struct {
	Outcome   gotubes.Outcome // Outcome_Found or Outcome_NotFound
	Walk      *Walk           // first successful trial's walk (nil unless found)
	TrialsRun int             // trials that ran to completion (trials after a success may be skipped)
	Seed      uint64          // seed the per-trial streams were derived from
}

func newWalk(fg *FlipGraph, start int) *Walk {
	return &Walk{
		fg:    fg,
		Start: start,
		End:   start,
		Path:  []int{start},
		seen:  make([]bool, fg.G.Tubes().Len()),
	}
}

func (w *Walk) markSeen(tubeID int) {
	if !w.seen[tubeID] {
		w.seen[tubeID] = true
		w.numSeen++
	}
}

func (w *Walk) step(f Flip) {
	w.markSeen(f.Tube)
	w.End = f.To
	w.Path = append(w.Path, f.To)
	w.Flips = append(w.Flips, f.Tube)
}

// NumSeen returns the number of distinct tubes seen so far.
func (w *Walk) NumSeen() int {
	return w.numSeen
}

// SeenTubes returns the tubes seen by this walk in ascending order.
func (w *Walk) SeenTubes() []gotubes.Tube {
	tubes := w.fg.G.Tubes()
	out := make([]gotubes.Tube, 0, w.numSeen)
	for id, seen := range w.seen {
		if seen {
			out = append(out, tubes.Tube(id))
		}
	}
	return out
}

// Tubings returns the tubings visited by this walk, in order.
func (w *Walk) Tubings() []gotubes.Tubing {
	out := make([]gotubes.Tubing, len(w.Path))
	for i, vi := range w.Path {
		out[i] = w.fg.tubings[vi]
	}
	return out
}

// IsClosed returns true if this walk ends where it started.
func (w *Walk) IsClosed() bool {
	return w.Start == w.End
}

// isComplete is the termination rule: every tube of the graph has been seen (and for cycles, the walk is closed).
//
// This counts distinct tubes rather than visited tubings, so a "path" need not visit every flip graph vertex.
func (w *Walk) isComplete(mode gotubes.Mode) bool {
	if w.numSeen != len(w.seen) {
		return false
	}
	return mode != gotubes.Mode_Cycles || w.IsClosed()
}

// TryOnce runs a single randomized trial using the given random stream.
//
// It returns the completed walk, or nil if the walk got stuck.  Repeated flips pick the first direction
// (in shuffled order) that introduces an unseen tube, and there is no backtracking.
func (fg *FlipGraph) TryOnce(rng *rand.Rand, mode gotubes.Mode) (*Walk, error) {
	if len(fg.tubings) == 0 {
		return nil, nil
	}

	numDirs := fg.G.VertexCount() - 1
	dirs := make([]int, numDirs)
	for i := range dirs {
		dirs[i] = i
	}

	w := newWalk(fg, rng.IntN(len(fg.tubings)))
	if mode == gotubes.Mode_Paths {
		for _, tubeID := range fg.tubeIDs[w.Start] {
			w.markSeen(tubeID)
		}
	}

	for {
		if w.isComplete(mode) {
			return w, nil
		}

		rng.Shuffle(len(dirs), func(i, j int) {
			dirs[i], dirs[j] = dirs[j], dirs[i]
		})

		flips := fg.flips[w.End]
		flipped := false
		for _, dir := range dirs {
			if dir >= len(flips) {
				return nil, errors.Wrapf(gotubes.ErrBrokenFlipGraph, "tubing %d has %d neighbors (expected %d)", w.End, len(flips), numDirs)
			}
			f := flips[dir]
			if !w.seen[f.Tube] {
				w.step(f)
				flipped = true
				break
			}
		}
		if !flipped {
			return nil, nil
		}
	}
}

// Search runs opts.Tries independent trials over a bounded worker pool and returns the first success (if any).
//
// Each trial has its own random stream derived from opts.Seed and the trial number.  Once a trial succeeds,
// trials that have not yet started are skipped while trials in flight run to completion and are discarded.
// metrics may be nil.
func (fg *FlipGraph) Search(ctx context.Context, opts gotubes.SearchOpts, metrics *Metrics) (*SearchResult, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	res := &SearchResult{
		Outcome: gotubes.Outcome_NotFound,
		Seed:    opts.Seed,
	}
	if res.Seed == 0 {
		res.Seed = rand.Uint64()
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	var (
		slots     = make([]*Walk, opts.Tries)
		found     atomic.Bool
		trialsRun atomic.Int64
		skipped   atomic.Int64
	)

	grp := errgroup.Group{}
	grp.SetLimit(workers)

	scheduled := 0
	for trial := range opts.Tries {
		if found.Load() || ctx.Err() != nil {
			break
		}
		scheduled++
		grp.Go(func() error {
			if found.Load() {
				skipped.Add(1)
				return nil
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			rng := rand.New(rand.NewPCG(res.Seed, uint64(trial)))
			w, err := fg.TryOnce(rng, opts.Mode)
			if err != nil {
				return err
			}
			trialsRun.Add(1)
			if w != nil {
				slots[trial] = w
				found.Store(true)
				metrics.observeTrial(opts.Mode, "found")
			} else {
				metrics.observeTrial(opts.Mode, "stuck")
			}
			return nil
		})
	}

	waitErr := grp.Wait()

	metrics.observeSkipped(opts.Mode, int(skipped.Load())+opts.Tries-scheduled)
	res.TrialsRun = int(trialsRun.Load())
	if err := res.resolve(ctx, slots, waitErr); err != nil {
		return nil, err
	}
	return res, nil
}

// resolve takes the lowest-index witness in slots as the result.
//
// A witness stored before ctx was cancelled wins over the cancellation error of a trial that raced with it.
// A cancelled search that found nothing says nothing about the trial budget, so ctx.Err() is returned.
func (res *SearchResult) resolve(ctx context.Context, slots []*Walk, waitErr error) error {
	if waitErr != nil && !errors.Is(waitErr, ctx.Err()) {
		return waitErr
	}
	for _, w := range slots {
		if w != nil {
			res.Outcome = gotubes.Outcome_Found
			res.Walk = w
			return nil
		}
	}
	if waitErr != nil {
		return waitErr
	}
	return ctx.Err()
}
