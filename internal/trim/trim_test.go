package trim

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/guillaume-gricourt/HmnTrimmer/internal/batch"
	"github.com/guillaume-gricourt/HmnTrimmer/internal/filter"
)

func qual(n int, v byte) []byte {
	q := make([]byte, n)
	for i := range q {
		q[i] = v
	}
	return q
}

func TestRunSingleLenMin(t *testing.T) {
	store := batch.New(false, false)
	for _, seq := range []string{"ACGTACGT", "AC", "ACGTACGT"} {
		store.Names1 = append(store.Names1, []byte("r"))
		store.Seqs1 = append(store.Seqs1, []byte(seq))
		store.Quals1 = append(store.Quals1, qual(len(seq), 40))
	}

	err := RunSingle(store, filter.EvalLenMin, filter.Params{"len_min": 5}, 4)
	assert.NoError(t, err)
	assert.Equal(t, 1, store.DiscardCount())
	assert.True(t, store.Discarded(1))
	assert.False(t, store.Discarded(0))
}

func TestRunSingleQualTailTruncates(t *testing.T) {
	store := batch.New(false, false)
	store.Names1 = append(store.Names1, []byte("r"))
	store.Seqs1 = append(store.Seqs1, []byte("ACGTACGTAC"))
	q := append(qual(2, 40), qual(8, 0)...)
	store.Quals1 = append(store.Quals1, q)

	err := RunSingle(store, filter.EvalQualTail, filter.Params{"base_quality": 5, "base_number": 2}, 2)
	assert.NoError(t, err)
	assert.Equal(t, 0, store.DiscardCount())
	assert.Equal(t, "AC", string(store.Seqs1[0]))
}

func TestRunPairedEitherMateDiscards(t *testing.T) {
	store := batch.New(true, false)
	store.Names1 = append(store.Names1, []byte("r"))
	store.Seqs1 = append(store.Seqs1, []byte("ACGTACGT"))
	store.Quals1 = append(store.Quals1, qual(8, 40))
	store.Names2 = append(store.Names2, []byte("r"))
	store.Seqs2 = append(store.Seqs2, []byte("AC"))
	store.Quals2 = append(store.Quals2, qual(2, 40))

	err := RunPaired(store, filter.EvalLenMin, filter.Params{"len_min": 5})
	assert.NoError(t, err)
	assert.Equal(t, 1, store.DiscardCount())
	assert.True(t, store.Discarded(0))
}
