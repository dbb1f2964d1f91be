// Package fastqio adapts github.com/grailbio/bio/encoding/fastq's
// Scanner/PairScanner/Writer model to the batch store's RecordSource
// boundary (§4.2), handling gzip transport and the `\1`/`\2` interleaved
// mate-label convention (§6).
package fastqio

import (
	"io"
	"os"
	"strings"

	"github.com/klauspost/pgzip"
	"github.com/pkg/errors"
)

func isGzipPath(path string) bool {
	return strings.HasSuffix(path, ".gz")
}

func openReadStream(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "fastqio: opening %s", path)
	}
	if !isGzipPath(path) {
		return f, nil
	}
	gz, err := pgzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, errors.Wrapf(err, "fastqio: opening gzip stream %s", path)
	}
	return &gzipReadCloser{gz: gz, f: f}, nil
}

type gzipReadCloser struct {
	gz *pgzip.Reader
	f  *os.File
}

func (g *gzipReadCloser) Read(p []byte) (int, error) { return g.gz.Read(p) }
func (g *gzipReadCloser) Close() error {
	gzErr := g.gz.Close()
	fErr := g.f.Close()
	if gzErr != nil {
		return gzErr
	}
	return fErr
}

func openWriteStream(path string, threads int) (io.WriteCloser, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(err, "fastqio: creating %s", path)
	}
	if !isGzipPath(path) {
		return f, nil
	}
	gz := pgzip.NewWriter(f)
	_ = gz.SetConcurrency(1<<20, threads)
	return &gzipWriteCloser{gz: gz, f: f}, nil
}

type gzipWriteCloser struct {
	gz *pgzip.Writer
	f  *os.File
}

func (g *gzipWriteCloser) Write(p []byte) (int, error) { return g.gz.Write(p) }
func (g *gzipWriteCloser) Close() error {
	gzErr := g.gz.Close()
	fErr := g.f.Close()
	if gzErr != nil {
		return gzErr
	}
	return fErr
}
