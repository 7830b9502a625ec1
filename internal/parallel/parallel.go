// Package parallel provides the fork-join loop used by the routing layers:
// run a task per index on a bounded set of goroutines, wait for all of them,
// then let the caller read the results each task wrote into its own slot.
package parallel

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/buzznav/internal/ctxlog"
)

// ErrWorkerPanic reports a task that panicked. The panic is confined to the
// ForEach call that ran it.
var ErrWorkerPanic = errors.New("parallel: worker panicked")

// stackSize bounds the captured goroutine stack logged for a panic.
const stackSize = 4096

// Task processes index i. It must write only to state owned by index i.
type Task func(ctx context.Context, i int) error

// ForEach runs fn for every i in [0, n) on at most limit goroutines
// (limit ≤ 0 means GOMAXPROCS) and blocks until all started tasks return.
//
// The first non-nil error cancels the context handed to later tasks and is
// returned after the join; tasks already running are not interrupted. A task
// that panics is reported as ErrWorkerPanic. If ctx is already done, no
// task starts and ctx.Err() is returned.
func ForEach(ctx context.Context, n, limit int, fn Task) error {
	if n <= 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	if limit > n {
		limit = n
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i := 0; i < n; i++ {
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					buf := make([]byte, stackSize)
					buf = buf[:runtime.Stack(buf, false)]
					ctxlog.FromContext(ctx).Error("panic in parallel worker",
						slog.Int("task", i),
						slog.Any("panic", r),
						slog.String("stack", string(buf)),
					)
					err = fmt.Errorf("%w: task %d: %v", ErrWorkerPanic, i, r)
				}
			}()
			return fn(gctx, i)
		})
	}

	return g.Wait()
}

// Workers resolves a configured worker count: values ≤ 0 mean GOMAXPROCS.
func Workers(configured int) int {
	if configured <= 0 {
		return runtime.GOMAXPROCS(0)
	}

	return configured
}
