package trim

import (
	"sync"

	"github.com/guillaume-gricourt/HmnTrimmer/internal/batch"
	"github.com/guillaume-gricourt/HmnTrimmer/internal/filter"
)

// RunPaired applies kernel/params across a paired store using exactly two
// goroutines — one per mate, each serial internally — running concurrently
// (§4.3, §5). Both write into the same discard set; a discard recorded by
// either mate drops the pair at the next Partition (I4).
func RunPaired(store *batch.Store, kernel filter.Kernel, params filter.Params) error {
	n := store.Size()
	if n == 0 {
		return nil
	}

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := 0; i < n; i++ {
			if store.Discarded(i) {
				continue
			}
			d := kernel(store.Seqs1[i], store.Quals1[i], params)
			if d.Discard {
				store.MarkDiscard(i)
				continue
			}
			if d.Keep < len(store.Seqs1[i]) {
				_ = store.TruncateR1(i, d.Keep)
			}
		}
	}()

	go func() {
		defer wg.Done()
		for i := 0; i < n; i++ {
			if store.Discarded(i) {
				continue
			}
			d := kernel(store.Seqs2[i], store.Quals2[i], params)
			if d.Discard {
				store.MarkDiscard(i)
				continue
			}
			if d.Keep < len(store.Seqs2[i]) {
				_ = store.TruncateR2(i, d.Keep)
			}
		}
	}()

	wg.Wait()
	return nil
}

// Run dispatches to RunSingle or RunPaired depending on the store's mode.
func Run(store *batch.Store, kernel filter.Kernel, params filter.Params, threads int) error {
	if store.Paired {
		return RunPaired(store, kernel, params)
	}
	return RunSingle(store, kernel, params, threads)
}
