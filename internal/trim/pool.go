// Package trim implements the parallel driver (C3): it applies one filter
// kernel across a batch, fanning out over a bounded worker pool for
// single-end data and over exactly two concurrent per-mate sections for
// paired-end data (§4.3, §5).
package trim

import (
	"sync"

	"github.com/guillaume-gricourt/HmnTrimmer/internal/batch"
	"github.com/guillaume-gricourt/HmnTrimmer/internal/filter"
)

// clampThreads enforces the [1, 8] bound from §5.
func clampThreads(threads int) int {
	if threads < 1 {
		return 1
	}
	if threads > 8 {
		return 8
	}
	return threads
}

// RunSingle applies kernel/params across every surviving row of a
// single-end store, fanning out over a pool sized from threads (clamped to
// [1, 8]). Rows already marked for discard by an earlier filter in this
// batch are skipped.
func RunSingle(store *batch.Store, kernel filter.Kernel, params filter.Params, threads int) error {
	n := store.Size()
	if n == 0 {
		return nil
	}
	workers := clampThreads(threads)
	if workers > n {
		workers = n
	}

	rows := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range rows {
				applyToRow(store, kernel, params, i)
			}
		}()
	}
	for i := 0; i < n; i++ {
		rows <- i
	}
	close(rows)
	wg.Wait()
	return nil
}

func applyToRow(store *batch.Store, kernel filter.Kernel, params filter.Params, i int) {
	if store.Discarded(i) {
		return
	}
	d := kernel(store.Seqs1[i], store.Quals1[i], params)
	if d.Discard {
		store.MarkDiscard(i)
		return
	}
	if d.Keep < len(store.Seqs1[i]) {
		_ = store.TruncateR1(i, d.Keep)
	}
}
