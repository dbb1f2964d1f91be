package pipeline

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/guillaume-gricourt/HmnTrimmer/internal/batch"
	"github.com/guillaume-gricourt/HmnTrimmer/internal/config"
	"github.com/guillaume-gricourt/HmnTrimmer/internal/fastqio"
	"github.com/guillaume-gricourt/HmnTrimmer/internal/filter"
)

type nopWriteCloser struct{ *bytes.Buffer }

func (nopWriteCloser) Close() error { return nil }

type fakeSource struct {
	records [][3]string
	i       int
}

func (f *fakeSource) ReadRecord() (name, seq, qual []byte, ok bool, err error) {
	if f.i >= len(f.records) {
		return nil, nil, nil, false, nil
	}
	rec := f.records[f.i]
	f.i++
	q := make([]byte, len(rec[1]))
	for i := range q {
		q[i] = 40
	}
	return []byte(rec[0]), []byte(rec[1]), q, true, nil
}

func TestRunAllSingleEndLenMin(t *testing.T) {
	src := &fakeSource{records: [][3]string{
		{"r1", "ACGTACGT", ""},
		{"r2", "AC", ""},
		{"r3", "ACGTACGT", ""},
	}}

	store := batch.New(false, false)
	specs, err := config.ParseSpec(filter.LenMin, "5")
	assert.NoError(t, err)

	var out bytes.Buffer
	writer := fastqio.NewWriterTo(nopWriteCloser{&out})

	r := NewRunner(store, []config.FilterSpec{specs}, 2, 100)
	r.SourceR1 = src
	r.WriterR1 = writer

	stats, err := r.RunAll()
	assert.NoError(t, err)
	assert.Equal(t, uint64(3), stats.Total)
	assert.Equal(t, uint64(2), stats.Kept)
	assert.Equal(t, uint64(1), stats.Discarded)
	assert.Equal(t, uint64(1), stats.DiscardedByFilter["LenMin"])
	assert.Equal(t, Idle, r.State())

	assert.Equal(t, "@r1\nACGTACGT\n+\nIIIIIIII\n@r3\nACGTACGT\n+\nIIIIIIII\n", out.String())
}

func TestRunAllEmptySourceFinishesImmediately(t *testing.T) {
	store := batch.New(false, false)
	var out bytes.Buffer
	r := NewRunner(store, nil, 1, 100)
	r.SourceR1 = &fakeSource{}
	r.WriterR1 = fastqio.NewWriterTo(nopWriteCloser{&out})

	stats, err := r.RunAll()
	assert.NoError(t, err)
	assert.Equal(t, uint64(0), stats.Total)
}
