package fastqio

import (
	"io"
	"strings"

	"github.com/grailbio/bio/encoding/fastq"
)

// Reader adapts a single FASTQ stream to batch.RecordSource.
type Reader struct {
	closer io.Closer
	sc     *fastq.Scanner
}

// NewReader opens path (transparently gunzipping `.gz` paths) and returns a
// Reader over it.
func NewReader(path string) (*Reader, error) {
	rc, err := openReadStream(path)
	if err != nil {
		return nil, err
	}
	return NewReaderFrom(rc), nil
}

// NewReaderFrom wraps an already-open stream, e.g. for tests that do not
// want to touch the filesystem.
func NewReaderFrom(r io.ReadCloser) *Reader {
	return &Reader{closer: r, sc: fastq.NewScanner(r, fastq.All)}
}

// ReadRecord implements batch.RecordSource.
func (r *Reader) ReadRecord() (name, seq, qual []byte, ok bool, err error) {
	var rd fastq.Read
	if !r.sc.Scan(&rd) {
		return nil, nil, nil, false, r.sc.Err()
	}
	name = []byte(strings.TrimPrefix(rd.ID, "@"))
	seq = []byte(rd.Seq)
	qual = decodePhred([]byte(rd.Qual))
	return name, seq, qual, true, nil
}

// Close releases the underlying file/gzip stream.
func (r *Reader) Close() error {
	return r.closer.Close()
}
