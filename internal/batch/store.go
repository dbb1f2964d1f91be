// Package batch implements the columnar paired-record store (C2): the
// two-stream column arrays for R1/R2, the discard-id set, and the prune
// operation that keeps both streams aligned across a batch.
package batch

import (
	"sync"

	"github.com/pkg/errors"
)

// ErrDiscordant is returned by ReadBatch when one mate stream ends before
// the other mid-record.
var ErrDiscordant = errors.New("batch: paired streams ended discordantly")

// ErrAlreadyDiscarded is returned by Truncate when called on a row already
// present in the discard set (§4.2 forbids this).
var ErrAlreadyDiscarded = errors.New("batch: row already marked for discard")

// RecordSource is the external reader boundary a Store fills from. It is
// satisfied by internal/fastqio's readers.
type RecordSource interface {
	ReadRecord() (name, seq, qual []byte, ok bool, err error)
}

// Store is the batch's columnar read store (§3/§4.2).
type Store struct {
	mu sync.Mutex

	Paired bool

	Names1, Seqs1, Quals1 [][]byte
	Names2, Seqs2, Quals2 [][]byte

	discard *idSet

	KeepDiscardBuffer                                   bool
	DiscardNames1, DiscardSeqs1, DiscardQuals1           [][]byte
	DiscardNames2, DiscardSeqs2, DiscardQuals2           [][]byte

	scratchNames, scratchSeqs, scratchQuals [][]byte
}

// New creates an empty store. paired selects whether R2 columns are used.
func New(paired bool, keepDiscardBuffer bool) *Store {
	return &Store{
		Paired:            paired,
		discard:           newIDSet(),
		KeepDiscardBuffer: keepDiscardBuffer,
	}
}

// ReadBatch fills the store from r1 (and r2, when paired) up to capacity
// reads. It returns the number of reads actually read; 0 means
// end-of-input. Used for single-end and paired forward/reverse input.
func (s *Store) ReadBatch(r1, r2 RecordSource, capacity int) (int, error) {
	n := 0
	for n < capacity {
		name1, seq1, qual1, ok1, err := r1.ReadRecord()
		if err != nil {
			return n, errors.Wrap(err, "batch: reading R1")
		}
		if !ok1 {
			if r2 != nil {
				_, _, _, ok2, err := r2.ReadRecord()
				if err != nil {
					return n, errors.Wrap(err, "batch: reading R2")
				}
				if ok2 {
					return n, ErrDiscordant
				}
			}
			break
		}
		if r2 != nil {
			name2, seq2, qual2, ok2, err := r2.ReadRecord()
			if err != nil {
				return n, errors.Wrap(err, "batch: reading R2")
			}
			if !ok2 {
				return n, ErrDiscordant
			}
			s.Names2 = append(s.Names2, name2)
			s.Seqs2 = append(s.Seqs2, seq2)
			s.Quals2 = append(s.Quals2, qual2)
		}
		s.Names1 = append(s.Names1, name1)
		s.Seqs1 = append(s.Seqs1, seq1)
		s.Quals1 = append(s.Quals1, qual1)
		n++
	}
	return n, nil
}

// mateLabel1, mateLabel2 are the literal interleaved mate-name suffixes
// this system recognises (§6): a trailing backslash-digit, not the
// slash-digit convention some other tools use.
var (
	mateLabel1 = []byte{'\\', '1'}
	mateLabel2 = []byte{'\\', '2'}
)

func stripMateLabel(name []byte) []byte {
	if len(name) >= 2 {
		suf := name[len(name)-2:]
		if string(suf) == string(mateLabel1) || string(suf) == string(mateLabel2) {
			return name[:len(name)-2]
		}
	}
	return name
}

// ReadBatchInterleaved fills a paired store from a single interleaved
// stream, splitting by even/odd row index into R1/R2 via scratch columns
// and stripping the trailing mate-label suffix from names.
func (s *Store) ReadBatchInterleaved(src RecordSource, capacity int) (int, error) {
	s.scratchNames = s.scratchNames[:0]
	s.scratchSeqs = s.scratchSeqs[:0]
	s.scratchQuals = s.scratchQuals[:0]

	want := capacity * 2
	got := 0
	for got < want {
		name, seq, qual, ok, err := src.ReadRecord()
		if err != nil {
			return got / 2, errors.Wrap(err, "batch: reading interleaved stream")
		}
		if !ok {
			break
		}
		s.scratchNames = append(s.scratchNames, stripMateLabel(name))
		s.scratchSeqs = append(s.scratchSeqs, seq)
		s.scratchQuals = append(s.scratchQuals, qual)
		got++
	}
	if got%2 != 0 {
		return got / 2, ErrDiscordant
	}
	n := got / 2
	for i := 0; i < n; i++ {
		s.Names1 = append(s.Names1, s.scratchNames[2*i])
		s.Seqs1 = append(s.Seqs1, s.scratchSeqs[2*i])
		s.Quals1 = append(s.Quals1, s.scratchQuals[2*i])
		s.Names2 = append(s.Names2, s.scratchNames[2*i+1])
		s.Seqs2 = append(s.Seqs2, s.scratchSeqs[2*i+1])
		s.Quals2 = append(s.Quals2, s.scratchQuals[2*i+1])
	}
	return n, nil
}

// MarkDiscard unions ids into discard_ids (I3, I4). Thread-safe.
func (s *Store) MarkDiscard(ids ...int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.discard.union(ids)
}

// Discarded reports whether row i is currently marked for discard.
func (s *Store) Discarded(i int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.discard.has(i)
}

// TruncateR1 replaces Seqs1[i]/Quals1[i] with their first l positions (I2).
// It is an error to call this on a row already in discard_ids.
func (s *Store) TruncateR1(i, l int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.discard.has(i) {
		return ErrAlreadyDiscarded
	}
	s.Seqs1[i] = s.Seqs1[i][:l]
	s.Quals1[i] = s.Quals1[i][:l]
	return nil
}

// TruncateR2 is TruncateR1's mate-2 counterpart.
func (s *Store) TruncateR2(i, l int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.discard.has(i) {
		return ErrAlreadyDiscarded
	}
	s.Seqs2[i] = s.Seqs2[i][:l]
	s.Quals2[i] = s.Quals2[i][:l]
	return nil
}

// Partition compacts the store to its surviving rows (I5), optionally
// staging the discarded rows into the discard buffer in input order, in a
// single linear scan with stable compaction.
func (s *Store) Partition() {
	n := len(s.Names1)
	keepNames1 := s.Names1[:0:0]
	keepSeqs1 := s.Seqs1[:0:0]
	keepQuals1 := s.Quals1[:0:0]
	var keepNames2, keepSeqs2, keepQuals2 [][]byte
	if s.Paired {
		keepNames2 = s.Names2[:0:0]
		keepSeqs2 = s.Seqs2[:0:0]
		keepQuals2 = s.Quals2[:0:0]
	}

	for i := 0; i < n; i++ {
		if s.discard.has(i) {
			if s.KeepDiscardBuffer {
				s.DiscardNames1 = append(s.DiscardNames1, s.Names1[i])
				s.DiscardSeqs1 = append(s.DiscardSeqs1, s.Seqs1[i])
				s.DiscardQuals1 = append(s.DiscardQuals1, s.Quals1[i])
				if s.Paired {
					s.DiscardNames2 = append(s.DiscardNames2, s.Names2[i])
					s.DiscardSeqs2 = append(s.DiscardSeqs2, s.Seqs2[i])
					s.DiscardQuals2 = append(s.DiscardQuals2, s.Quals2[i])
				}
			}
			continue
		}
		keepNames1 = append(keepNames1, s.Names1[i])
		keepSeqs1 = append(keepSeqs1, s.Seqs1[i])
		keepQuals1 = append(keepQuals1, s.Quals1[i])
		if s.Paired {
			keepNames2 = append(keepNames2, s.Names2[i])
			keepSeqs2 = append(keepSeqs2, s.Seqs2[i])
			keepQuals2 = append(keepQuals2, s.Quals2[i])
		}
	}

	s.Names1, s.Seqs1, s.Quals1 = keepNames1, keepSeqs1, keepQuals1
	if s.Paired {
		s.Names2, s.Seqs2, s.Quals2 = keepNames2, keepSeqs2, keepQuals2
	}
	s.discard.clear()
}

// Size returns the current number of rows.
func (s *Store) Size() int {
	return len(s.Names1)
}

// Empty reports whether the store currently holds no rows.
func (s *Store) Empty() bool {
	return s.Size() == 0
}

// Clear empties all columns, the discard set, and the discard buffer.
func (s *Store) Clear() {
	s.Names1, s.Seqs1, s.Quals1 = nil, nil, nil
	s.Names2, s.Seqs2, s.Quals2 = nil, nil, nil
	s.DiscardNames1, s.DiscardSeqs1, s.DiscardQuals1 = nil, nil, nil
	s.DiscardNames2, s.DiscardSeqs2, s.DiscardQuals2 = nil, nil, nil
	s.discard.clear()
}

// DiscardCount reports how many rows are currently marked for discard.
func (s *Store) DiscardCount() int {
	return s.discard.len()
}

// DistributionInto increments histogram[len(read)] for every surviving
// read in R1 and, if paired, R2.
func (s *Store) DistributionInto(histogram map[int]uint64) {
	for _, seq := range s.Seqs1 {
		histogram[len(seq)]++
	}
	if s.Paired {
		for _, seq := range s.Seqs2 {
			histogram[len(seq)]++
		}
	}
}
