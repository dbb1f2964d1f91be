// Package pipeline implements the pipeline runner (C4): the per-batch
// state machine that drives the batch store through fill, filter,
// partition and write, accumulating the statistics the JSON report needs
// (§4.4).
package pipeline

import (
	"github.com/guillaume-gricourt/HmnTrimmer/internal/batch"
	"github.com/guillaume-gricourt/HmnTrimmer/internal/config"
	"github.com/guillaume-gricourt/HmnTrimmer/internal/fastqio"
	"github.com/guillaume-gricourt/HmnTrimmer/internal/filter"
	"github.com/guillaume-gricourt/HmnTrimmer/internal/trim"
)

// State names one point in the per-batch state machine (§4.4).
type State string

const (
	Idle         State = "Idle"
	Filling      State = "Filling"
	Filtering    State = "Filtering"
	Partitioning State = "Partitioning"
	Writing      State = "Writing"
	Cleared      State = "Cleared"
)

// Stats accumulates the counters the JSON report needs across all batches
// of a run (§6, §8 P7).
type Stats struct {
	Total, Kept, Discarded uint64
	LengthBefore           map[int]uint64
	LengthAfter            map[int]uint64
	DiscardedByFilter      map[string]uint64
}

func newStats() Stats {
	return Stats{
		LengthBefore:      make(map[int]uint64),
		LengthAfter:       make(map[int]uint64),
		DiscardedByFilter: make(map[string]uint64),
	}
}

// Runner owns one batch store and drives it through repeated batches until
// the source is exhausted (§4.4).
type Runner struct {
	Store   *batch.Store
	Specs   []config.FilterSpec
	Threads int

	SourceR1    batch.RecordSource
	SourceR2    batch.RecordSource
	Interleaved bool
	ReadsBatch  int

	WriterR1          *fastqio.Writer
	WriterR2          *fastqio.Writer
	InterleavedOutput bool

	DiscardWriter *fastqio.Writer

	state State
	Stats Stats
}

// NewRunner constructs a Runner with its statistics accumulators ready.
func NewRunner(store *batch.Store, specs []config.FilterSpec, threads, readsBatch int) *Runner {
	return &Runner{
		Store:      store,
		Specs:      specs,
		Threads:    threads,
		ReadsBatch: readsBatch,
		state:      Idle,
		Stats:      newStats(),
	}
}

// State returns the runner's current point in the state machine.
func (r *Runner) State() State { return r.state }

// RunAll drives batches to completion, returning the accumulated Stats.
func (r *Runner) RunAll() (Stats, error) {
	for {
		done, err := r.runBatch()
		if err != nil {
			return r.Stats, err
		}
		if done {
			return r.Stats, nil
		}
	}
}

func (r *Runner) runBatch() (done bool, err error) {
	r.state = Filling
	var n int
	if r.Interleaved {
		n, err = r.Store.ReadBatchInterleaved(r.SourceR1, r.ReadsBatch)
	} else {
		n, err = r.Store.ReadBatch(r.SourceR1, r.SourceR2, r.ReadsBatch)
	}
	if err != nil {
		return false, wrap(IOReadError, err, "pipeline: reading batch")
	}
	if n == 0 {
		r.state = Idle
		return true, nil
	}

	mult := uint64(1)
	if r.Store.Paired {
		mult = 2
	}
	r.Stats.Total += uint64(n) * mult
	r.Store.DistributionInto(r.Stats.LengthBefore)

	for _, spec := range r.Specs {
		r.state = Filtering
		kernel := filter.Kernels[spec.Kind]
		before := r.Store.DiscardCount()
		if err := trim.Run(r.Store, kernel, spec.Params, r.Threads); err != nil {
			return false, wrap(ResourceError, err, "pipeline: applying filter "+string(spec.Kind))
		}
		delta := uint64(r.Store.DiscardCount()-before) * mult
		r.Stats.DiscardedByFilter[string(spec.Kind)] += delta
	}

	r.state = Partitioning
	if r.DiscardWriter != nil {
		r.Store.KeepDiscardBuffer = true
	}
	r.Store.Partition()

	r.state = Writing
	if r.DiscardWriter != nil {
		if err := r.drainDiscard(); err != nil {
			return false, wrap(IOWriteError, err, "pipeline: writing discard sink")
		}
	}
	if err := r.drainSurvivors(); err != nil {
		return false, wrap(IOWriteError, err, "pipeline: writing survivors")
	}

	kept := uint64(r.Store.Size()) * mult
	discardedThisBatch := uint64(n)*mult - kept
	r.Stats.Kept += kept
	r.Stats.Discarded += discardedThisBatch
	r.Store.DistributionInto(r.Stats.LengthAfter)

	r.state = Cleared
	r.Store.Clear()
	r.state = Idle
	return false, nil
}

func (r *Runner) drainDiscard() error {
	names1, seqs1, quals1 := r.Store.DiscardNames1, r.Store.DiscardSeqs1, r.Store.DiscardQuals1
	for i := range names1 {
		if r.Store.Paired {
			if r.InterleavedOutput {
				if err := r.DiscardWriter.WriteRecordLabeled(names1[i], seqs1[i], quals1[i], `\1`); err != nil {
					return err
				}
				if err := r.DiscardWriter.WriteRecordLabeled(r.Store.DiscardNames2[i], r.Store.DiscardSeqs2[i], r.Store.DiscardQuals2[i], `\2`); err != nil {
					return err
				}
				continue
			}
		}
		if err := r.DiscardWriter.WriteRecord(names1[i], seqs1[i], quals1[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) drainSurvivors() error {
	for i := range r.Store.Names1 {
		if r.Store.Paired {
			if r.InterleavedOutput {
				if err := r.WriterR1.WriteRecordLabeled(r.Store.Names1[i], r.Store.Seqs1[i], r.Store.Quals1[i], `\1`); err != nil {
					return err
				}
				if err := r.WriterR1.WriteRecordLabeled(r.Store.Names2[i], r.Store.Seqs2[i], r.Store.Quals2[i], `\2`); err != nil {
					return err
				}
				continue
			}
			if err := r.WriterR1.WriteRecord(r.Store.Names1[i], r.Store.Seqs1[i], r.Store.Quals1[i]); err != nil {
				return err
			}
			if err := r.WriterR2.WriteRecord(r.Store.Names2[i], r.Store.Seqs2[i], r.Store.Quals2[i]); err != nil {
				return err
			}
			continue
		}
		if err := r.WriterR1.WriteRecord(r.Store.Names1[i], r.Store.Seqs1[i], r.Store.Quals1[i]); err != nil {
			return err
		}
	}
	return nil
}
