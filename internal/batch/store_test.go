package batch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeSource is a canned RecordSource for tests.
type fakeSource struct {
	names, seqs, quals [][]byte
	i                  int
	errAt              int
	err                error
}

func (f *fakeSource) ReadRecord() (name, seq, qual []byte, ok bool, err error) {
	if f.err != nil && f.i == f.errAt {
		return nil, nil, nil, false, f.err
	}
	if f.i >= len(f.names) {
		return nil, nil, nil, false, nil
	}
	name, seq, qual = f.names[f.i], f.seqs[f.i], f.quals[f.i]
	f.i++
	return name, seq, qual, true, nil
}

func rec(name, seq string) ([]byte, []byte, []byte) {
	q := make([]byte, len(seq))
	for i := range q {
		q[i] = 40
	}
	return []byte(name), []byte(seq), q
}

func TestReadBatchSingleEnd(t *testing.T) {
	n1, s1, q1 := rec("r1", "ACGT")
	n2, s2, q2 := rec("r2", "TTTT")
	src := &fakeSource{names: [][]byte{n1, n2}, seqs: [][]byte{s1, s2}, quals: [][]byte{q1, q2}}

	store := New(false, false)
	n, err := store.ReadBatch(src, nil, 10)
	assert.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 2, store.Size())
	assert.Equal(t, "ACGT", string(store.Seqs1[0]))
}

func TestReadBatchPaired(t *testing.T) {
	n1, s1, q1 := rec("r1", "ACGT")
	n2, s2, q2 := rec("r1", "TTTT")
	r1 := &fakeSource{names: [][]byte{n1}, seqs: [][]byte{s1}, quals: [][]byte{q1}}
	r2 := &fakeSource{names: [][]byte{n2}, seqs: [][]byte{s2}, quals: [][]byte{q2}}

	store := New(true, false)
	n, err := store.ReadBatch(r1, r2, 10)
	assert.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, "ACGT", string(store.Seqs1[0]))
	assert.Equal(t, "TTTT", string(store.Seqs2[0]))
}

func TestReadBatchDiscordant(t *testing.T) {
	n1, s1, q1 := rec("r1", "ACGT")
	r1 := &fakeSource{names: [][]byte{n1}, seqs: [][]byte{s1}, quals: [][]byte{q1}}
	r2 := &fakeSource{names: nil, seqs: nil, quals: nil}

	store := New(true, false)
	_, err := store.ReadBatch(r1, r2, 10)
	assert.ErrorIs(t, err, ErrDiscordant)
}

func TestReadBatchInterleavedStripsMateLabel(t *testing.T) {
	n1, s1, q1 := rec(`r1\1`, "ACGT")
	n2, s2, q2 := rec(`r1\2`, "TTTT")
	src := &fakeSource{names: [][]byte{n1, n2}, seqs: [][]byte{s1, s2}, quals: [][]byte{q1, q2}}

	store := New(true, false)
	n, err := store.ReadBatchInterleaved(src, 10)
	assert.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, "r1", string(store.Names1[0]))
	assert.Equal(t, "r1", string(store.Names2[0]))
	assert.Equal(t, "ACGT", string(store.Seqs1[0]))
	assert.Equal(t, "TTTT", string(store.Seqs2[0]))
}

func TestMarkDiscardAndPartition(t *testing.T) {
	store := New(false, true)
	for _, name := range []string{"a", "b", "c"} {
		n, s, q := rec(name, "ACGTACGT")
		store.Names1 = append(store.Names1, n)
		store.Seqs1 = append(store.Seqs1, s)
		store.Quals1 = append(store.Quals1, q)
	}
	store.MarkDiscard(1)
	assert.True(t, store.Discarded(1))
	assert.Equal(t, 1, store.DiscardCount())

	store.Partition()
	assert.Equal(t, 2, store.Size())
	assert.Equal(t, "a", string(store.Names1[0]))
	assert.Equal(t, "c", string(store.Names1[1]))
	assert.Equal(t, 1, len(store.DiscardNames1))
	assert.Equal(t, "b", string(store.DiscardNames1[0]))
	assert.Equal(t, 0, store.DiscardCount())
}

func TestTruncateRejectsDiscardedRow(t *testing.T) {
	store := New(false, false)
	n, s, q := rec("a", "ACGTACGT")
	store.Names1 = append(store.Names1, n)
	store.Seqs1 = append(store.Seqs1, s)
	store.Quals1 = append(store.Quals1, q)
	store.MarkDiscard(0)

	err := store.TruncateR1(0, 3)
	assert.ErrorIs(t, err, ErrAlreadyDiscarded)
}

func TestTruncateShortensInPlace(t *testing.T) {
	store := New(false, false)
	n, s, q := rec("a", "ACGTACGT")
	store.Names1 = append(store.Names1, n)
	store.Seqs1 = append(store.Seqs1, s)
	store.Quals1 = append(store.Quals1, q)

	assert.NoError(t, store.TruncateR1(0, 3))
	assert.Equal(t, "ACG", string(store.Seqs1[0]))
	assert.Equal(t, 3, len(store.Quals1[0]))
}

func TestDistributionInto(t *testing.T) {
	store := New(false, false)
	for _, seq := range []string{"ACGT", "ACG", "ACGT"} {
		n, s, q := rec("x", seq)
		store.Names1 = append(store.Names1, n)
		store.Seqs1 = append(store.Seqs1, s)
		store.Quals1 = append(store.Quals1, q)
	}
	hist := make(map[int]uint64)
	store.DistributionInto(hist)
	assert.Equal(t, uint64(2), hist[4])
	assert.Equal(t, uint64(1), hist[3])
}

func TestClear(t *testing.T) {
	store := New(false, false)
	n, s, q := rec("a", "ACGT")
	store.Names1 = append(store.Names1, n)
	store.Seqs1 = append(store.Seqs1, s)
	store.Quals1 = append(store.Quals1, q)
	store.MarkDiscard(0)

	store.Clear()
	assert.True(t, store.Empty())
	assert.Equal(t, 0, store.DiscardCount())
}
