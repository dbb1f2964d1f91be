package fastqio

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

type nopReadCloser struct{ io.Reader }

func (nopReadCloser) Close() error { return nil }

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

func TestReaderDecodesPhredAndStripsAt(t *testing.T) {
	raw := "@read1\nACGT\n+\nIIII\n"
	r := NewReaderFrom(nopReadCloser{bytes.NewBufferString(raw)})

	name, seq, qual, ok, err := r.ReadRecord()
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "read1", string(name))
	assert.Equal(t, "ACGT", string(seq))
	assert.Equal(t, []byte{40, 40, 40, 40}, qual)

	_, _, _, ok, err = r.ReadRecord()
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestWriterEncodesPhredAndAddsAt(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriterTo(nopWriteCloser{&buf})

	assert.NoError(t, w.WriteRecord([]byte("read1"), []byte("ACGT"), []byte{40, 40, 40, 40}))
	assert.Equal(t, "@read1\nACGT\n+\nIIII\n", buf.String())
}

func TestWriterRecordLabeled(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriterTo(nopWriteCloser{&buf})

	assert.NoError(t, w.WriteRecordLabeled([]byte("read1"), []byte("AC"), []byte{40, 40}, `\1`))
	assert.Equal(t, "@read1\\1\nAC\n+\nII\n", buf.String())
}

func TestRoundTrip(t *testing.T) {
	raw := "@r1\nACGTACGT\n+\nIIIIIIII\n@r2\nTTTT\n+\nIIII\n"
	r := NewReaderFrom(nopReadCloser{bytes.NewBufferString(raw)})
	var buf bytes.Buffer
	w := NewWriterTo(nopWriteCloser{&buf})

	for {
		name, seq, qual, ok, err := r.ReadRecord()
		assert.NoError(t, err)
		if !ok {
			break
		}
		assert.NoError(t, w.WriteRecord(name, seq, qual))
	}
	assert.Equal(t, raw, buf.String())
}
