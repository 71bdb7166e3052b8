package provision

import (
	"context"
	"io"
	"os"
	"sort"
	"sync/atomic"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
	"golang.org/x/sync/errgroup"
)

// Runner fans a per-site job out over the requested index range.  The default
// is one worker with a fixed sleep between jobs - the whole run is meant to
// be gently sequential, the remote service is shared.  More workers are only
// sensible for read-only phases.
type Runner struct {
	Workers  int
	Throttle time.Duration

	// Progress bar destination; defaults to stdout.  Tests point this at
	// io.Discard.
	Progress io.Writer
}

// Indexes expands an inclusive [from, to] range into the index list.
func Indexes(from, to int) []int {
	if to < from {
		return nil
	}
	indexes := make([]int, 0, to-from+1)
	for i := from; i <= to; i++ {
		indexes = append(indexes, i)
	}
	return indexes
}

// Run executes fn once per index and collects the per-item results, sorted by
// index.  A failing item is recorded and the run continues - errors never
// abort the loop, only context cancellation does.
func (r *Runner) Run(ctx context.Context, phase string, indexes []int, fn func(ctx context.Context, index int) Result) ([]Result, error) {
	// a zero-total bar never completes, so don't spin any of this up
	if len(indexes) == 0 {
		return []Result{}, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	workers := r.Workers
	if workers < 1 {
		workers = 1
	}

	out := r.Progress
	if out == nil {
		out = os.Stdout
	}

	jobQueue := make(chan int, len(indexes))
	for _, index := range indexes {
		jobQueue <- index
	}
	close(jobQueue)

	results := make(chan Result, workers*3)

	grp, gctx := errgroup.WithContext(ctx)

	remaining := int32(workers)
	for i := 0; i < workers; i++ {
		grp.Go(func() error {
			for {
				select {
				case index, ok := <-jobQueue:
					if !ok {
						// Last one out closes the shop
						if atomic.AddInt32(&remaining, -1) == 0 {
							close(results)
						}
						return nil
					}

					result := fn(gctx, index)
					result.Index = index

					select {
					case results <- result:
					case <-gctx.Done():
						return context.Cause(gctx)
					}

					if r.Throttle > 0 {
						select {
						case <-time.After(r.Throttle):
						case <-gctx.Done():
							return context.Cause(gctx)
						}
					}

				case <-gctx.Done():
					return context.Cause(gctx)
				}
			}
		})
	}

	p := mpb.New(mpb.WithWidth(64), mpb.WithOutput(out))

	bar := p.AddBar(int64(len(indexes)),
		mpb.PrependDecorators(
			decor.Name(phase+":",
				decor.WC{C: decor.DindentRight | decor.DextraSpace}),
		),
		mpb.AppendDecorators(
			decor.CountersNoUnit("(%d/%d) "),
			decor.NewPercentage("%d"),
		),
	)

	collected := []Result{}
	grp.Go(func() error {
		for {
			select {
			case result, ok := <-results:
				if !ok {
					// this is good news, we're done
					return nil
				}
				collected = append(collected, result)
				bar.Increment()

			case <-gctx.Done():
				return context.Cause(gctx)
			}
		}
	})

	if err := grp.Wait(); err != nil {
		// the bar won't reach its total now; drop it so the render
		// goroutine shuts down too
		bar.Abort(true)
		p.Wait()
		return nil, err
	}

	// wait for our bar to complete and flush
	p.Wait()

	sort.Slice(collected, func(i, j int) bool { return collected[i].Index < collected[j].Index })

	return collected, nil
}
