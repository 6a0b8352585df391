package scoring

import (
	"context"
	"sync"
)

// ForEach runs fn for every index in [0,n) on a bounded worker set. Workers
// write results into caller-owned slots keyed by index, so the outcome is
// identical to a serial loop regardless of scheduling. Scoring is pure
// computation; a cancelled context just abandons the remaining indexes.
func ForEach(ctx context.Context, n, workers int, fn func(ctx context.Context, i int)) {
	if n <= 0 || fn == nil {
		return
	}
	if workers <= 1 || n == 1 {
		for i := 0; i < n; i++ {
			if ctx.Err() != nil {
				return
			}
			fn(ctx, i)
		}
		return
	}
	if workers > n {
		workers = n
	}

	indexes := make(chan int, n)
	for i := 0; i < n; i++ {
		indexes <- i
	}
	close(indexes)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case i, ok := <-indexes:
					if !ok {
						return
					}
					fn(ctx, i)
				}
			}
		}()
	}
	wg.Wait()
}
