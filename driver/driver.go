// Package driver iterates terminal-set combinations across point
// counts, composing Painter -> Transformer -> SteinerSolver ->
// Renderer for each sampled combination and handing the result to a
// Sink.
//
// Each point count's rank range is fanned out across a worker pool:
// one sync.WaitGroup for worker completion, and narrowly-scoped
// sync.Mutex guards (one for the progress counter, one for
// per-point-count file counters) rather than a single global lock, so
// progress reads never contend with file-naming writes.
package driver

import (
	"errors"
	"runtime"
	"sync"

	"github.com/rs/zerolog"

	"github.com/routegraph/steinergrid/comb"
	"github.com/routegraph/steinergrid/grid"
	"github.com/routegraph/steinergrid/paint"
	"github.com/routegraph/steinergrid/steiner"
	"github.com/routegraph/steinergrid/transform"
)

// Sample is one fully computed (source, target, nodes) triple, ready
// for the Sink to serialize.
type Sample struct {
	K       int
	Counter uint64

	SourceShape []int // (D, H, W)
	Source      []byte

	TargetShape []int // (D, H, W)
	Target      []byte

	NodesShape []int // (MaxPoints, 3)
	Nodes      []byte
}

// Sink receives completed samples. Implementations are responsible for
// their own filenames and directories; the Driver only supplies K and
// a per-K monotonic Counter for naming.
type Sink interface {
	Emit(Sample) error
}

// Params holds the validated generation parameters plus the ambient
// concurrency knobs the worker pool needs.
type Params struct {
	Size                int
	Depth               int
	MaxPoints           int
	DesiredCombinations uint64

	// WorkerCount is the number of goroutines fanned out per point
	// count. Zero or negative is clamped to runtime.NumCPU().
	WorkerCount int

	// AbortFunc is polled between samples; a nil AbortFunc never
	// aborts. Cancellation is purely cooperative: a worker finishes its
	// current sample and then exits.
	AbortFunc func() bool

	Sink Sink
	Log  zerolog.Logger
}

func (p Params) clamp() Params {
	if p.Size < 1 {
		p.Size = 1
	} else if p.Size > 255 {
		p.Size = 255
	}
	if p.Depth < 1 {
		p.Depth = 1
	} else if p.Depth > 255 {
		p.Depth = 255
	}
	if p.MaxPoints < 1 {
		p.MaxPoints = 1
	} else if p.MaxPoints > 255 {
		p.MaxPoints = 255
	}
	if p.DesiredCombinations < 1 {
		p.DesiredCombinations = 1
	}
	if p.WorkerCount < 1 {
		p.WorkerCount = runtime.NumCPU()
	}

	return p
}

// progress is the shared, mutex-guarded sample counter — the only
// cross-worker state besides the Sink.
type progress struct {
	mu      sync.Mutex
	emitted uint64
}

func (p *progress) increment() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.emitted++

	return p.emitted
}

// fileCounters hands out per-point-count monotonic counters, kept
// separate from the progress mutex so progress reads never contend
// with file-naming writes.
type fileCounters struct {
	mu  sync.Mutex
	byK map[int]uint64
}

func newFileCounters() *fileCounters {
	return &fileCounters{byK: make(map[int]uint64)}
}

func (f *fileCounters) next(k int) uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byK[k]++

	return f.byK[k]
}

// Run drives the full pipeline for every point count in [2, MaxPoints],
// fanning each point count's rank range out across Params.WorkerCount
// goroutines.
func Run(params Params) error {
	p := params.clamp()
	n := p.Size * p.Size * p.Depth

	prog := &progress{}
	counters := newFileCounters()

	for k := 2; k <= p.MaxPoints; k++ {
		if err := runPointCount(p, n, k, prog, counters); err != nil {
			return err
		}
		p.Log.Info().Int("points", k).Uint64("emitted", prog.emitted).Msg("point count complete")
		if aborted(p.AbortFunc) {
			break
		}
	}

	return nil
}

func aborted(fn func() bool) bool {
	return fn != nil && fn()
}

// errAbort unwinds a worker's Stride loop as soon as an abort is
// observed, rather than draining the remaining ranks as no-ops.
var errAbort = errors.New("driver: aborted")

// runPointCount samples and processes every k-terminal combination
// for one point count.
func runPointCount(p Params, n, k int, prog *progress, counters *fileCounters) error {
	total := comb.NCr(n, k)
	if total == 0 {
		return nil
	}
	stride := total / p.DesiredCombinations
	if stride < 1 {
		stride = 1
	}

	slices := partition(total, p.WorkerCount)

	var wg sync.WaitGroup
	errs := make(chan error, len(slices))

	for _, sl := range slices {
		wg.Add(1)
		go func(lo, hi uint64) {
			defer wg.Done()
			err := comb.Stride(n, k, lo, hi, stride, func(rank uint64, combo []int) error {
				if aborted(p.AbortFunc) {
					return errAbort
				}

				return processSample(p, k, combo, prog, counters)
			})
			if err != nil && err != errAbort {
				errs <- err
			}
		}(sl.lo, sl.hi)
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			return err
		}
	}

	return nil
}

type rankSlice struct{ lo, hi uint64 }

// partition splits [0, total) into count contiguous, roughly equal
// half-open slices.
func partition(total uint64, count int) []rankSlice {
	if count < 1 {
		count = 1
	}
	size := total / uint64(count)
	if size == 0 {
		size = 1
	}

	var out []rankSlice
	var lo uint64
	for i := 0; i < count && lo < total; i++ {
		hi := lo + size
		if hi > total {
			hi = total
		}
		out = append(out, rankSlice{lo: lo, hi: hi})
		lo = hi
	}
	if len(out) > 0 {
		out[len(out)-1].hi = total
	}

	return out
}

// processSample runs one combination through Painter -> Transformer ->
// SteinerSolver -> Renderer and emits the result.
func processSample(p Params, k int, combo []int, prog *progress, counters *fileCounters) error {
	coords := make([]grid.Coordinate, k)
	for i, idx := range combo {
		coords[i] = grid.CoordinateOf(idx, p.Size, p.Size)
	}

	src, err := grid.New(p.Size, p.Size, p.Depth)
	if err != nil {
		return err
	}
	if err := paint.Terminals(src, coords); err != nil {
		return err
	}

	g, err := transform.ToGraph(src)
	if err != nil {
		return err
	}

	mst := steiner.Solve(g)

	target, err := transform.Render(p.Size, p.Size, p.Depth, mst, g.Coordinate)
	if err != nil {
		return err
	}

	nodes := nodeTable(coords, p.MaxPoints)
	counter := counters.next(k)

	sample := Sample{
		K:           k,
		Counter:     counter,
		SourceShape: []int{p.Depth, p.Size, p.Size},
		Source:      src.RawBytes(),
		TargetShape: []int{p.Depth, p.Size, p.Size},
		Target:      target.RawBytes(),
		NodesShape:  []int{p.MaxPoints, 3},
		Nodes:       nodes,
	}

	if p.Sink != nil {
		if err := p.Sink.Emit(sample); err != nil {
			return err
		}
	}

	prog.increment()

	return nil
}

// nodeTable builds the (maxPoints, 3) zero-padded byte table for the
// Nodes sink.
func nodeTable(coords []grid.Coordinate, maxPoints int) []byte {
	out := make([]byte, maxPoints*3)
	for i, c := range coords {
		if i >= maxPoints {
			break
		}
		out[i*3+0] = byte(c.X)
		out[i*3+1] = byte(c.Y)
		out[i*3+2] = byte(c.Z)
	}

	return out
}
