// File: pool.go
// Role: Fixed-size worker pool draining a shared atomic node cursor.
// Each worker claims-and-increments the next node id until the cursor
// reaches n, the context is cancelled, or a sibling fails. The call blocks
// until every worker has exited (barrier), so the caller observes a fully
// written phase before starting the next one.
package deepgl

import (
	"context"
	"sync"
	"sync/atomic"
)

// forEachNode runs fn(node) for every node in [0, n), distributing work over
// `workers` goroutines via a lock-free claim cursor. Dynamic partitioning
// tolerates uneven per-node cost (variable neighbourhood size) without
// static chunking.
//
// The first error wins: it cancels the shared context so siblings stop at
// their next claim, and it is returned after the barrier completes. fn must
// confine its writes to the claimed node's row; no ordering is guaranteed
// between nodes.
func forEachNode(ctx context.Context, workers, n int, fn func(node int) error) error {
	if n == 0 {
		return nil
	}
	if workers > n {
		workers = n
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		cursor   atomic.Int64
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
	)

	fail := func(err error) {
		errOnce.Do(func() {
			firstErr = err
			cancel()
		})
	}

	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for {
				node := int(cursor.Add(1)) - 1
				if node >= n {
					return
				}
				// Cooperative cancellation at every claimed-id boundary.
				select {
				case <-ctx.Done():
					fail(ctx.Err())

					return
				default:
				}
				if err := fn(node); err != nil {
					fail(err)

					return
				}
			}
		}()
	}
	wg.Wait()

	return firstErr
}
