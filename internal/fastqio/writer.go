package fastqio

import (
	"io"

	"github.com/grailbio/bio/encoding/fastq"
)

// Writer adapts a single FASTQ output stream.
type Writer struct {
	closer io.Closer
	w      *fastq.Writer
}

// NewWriter creates path (gzip-compressing when it ends in `.gz`, with
// internal block parallelism sized from threads) and returns a Writer over
// it.
func NewWriter(path string, threads int) (*Writer, error) {
	wc, err := openWriteStream(path, threads)
	if err != nil {
		return nil, err
	}
	return NewWriterTo(wc), nil
}

// NewWriterTo wraps an already-open stream, e.g. for tests that do not want
// to touch the filesystem.
func NewWriterTo(w io.WriteCloser) *Writer {
	return &Writer{closer: w, w: fastq.NewWriter(w)}
}

// WriteRecord writes one record, re-encoding raw Phred qualities to
// Phred+33 ASCII and re-adding the leading '@'.
func (w *Writer) WriteRecord(name, seq, qual []byte) error {
	rd := fastq.Read{
		ID:   "@" + string(name),
		Seq:  string(seq),
		Unk:  "+",
		Qual: string(encodePhred(qual)),
	}
	return w.w.Write(&rd)
}

// WriteRecordLabeled writes one record with the given literal interleaved
// mate-label suffix (`\1` or `\2`) re-appended to the name, per §6.
func (w *Writer) WriteRecordLabeled(name, seq, qual []byte, label string) error {
	labeled := make([]byte, 0, len(name)+len(label))
	labeled = append(labeled, name...)
	labeled = append(labeled, label...)
	return w.WriteRecord(labeled, seq, qual)
}

// Close releases the underlying file/gzip stream.
func (w *Writer) Close() error {
	return w.closer.Close()
}
