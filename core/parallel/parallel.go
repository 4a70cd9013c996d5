// Package parallel provides chunked CPU fan-out helpers for loops whose
// iterations are independent of each other.
package parallel

import (
	"runtime"
	"sync"
)

// Parallelize splits items across the available CPU cores and runs fn on
// each contiguous range [start, end). fn must be safe to call concurrently
// for disjoint ranges. Parallelize returns after every range completes.
func Parallelize(items int, fn func(start, end int)) {
	if items <= 0 {
		return
	}

	numWorkers := runtime.NumCPU()
	if numWorkers > items {
		numWorkers = items
	}

	// Ceiling division so the last chunk absorbs the remainder.
	chunkSize := (items + numWorkers - 1) / numWorkers

	var wg sync.WaitGroup
	for start := 0; start < items; start += chunkSize {
		end := start + chunkSize
		if end > items {
			end = items
		}

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}

// ParallelizeWithThreshold runs fn sequentially over [0, items) when items
// is at or below threshold, and falls back to Parallelize above it. Small
// inputs stay on the calling goroutine to avoid scheduling overhead.
func ParallelizeWithThreshold(items, threshold int, fn func(start, end int)) {
	if items <= 0 {
		return
	}
	if items <= threshold {
		fn(0, items)
		return
	}
	Parallelize(items, fn)
}
