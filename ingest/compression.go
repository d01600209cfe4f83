package ingest

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/snappy"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/kmi-jp/labeled/dataerrors"
)

// Compression identifies the codec applied to a delimited-text file.
type Compression string

const (
	None   Compression = "none"
	Gzip   Compression = "gzip"
	Zstd   Compression = "zstd"
	Snappy Compression = "snappy"
	LZ4    Compression = "lz4"
)

// CompressionFor picks the codec from the file extension.
func CompressionFor(filename string) Compression {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".gz", ".gzip":
		return Gzip
	case ".zst", ".zstd":
		return Zstd
	case ".sz", ".snappy":
		return Snappy
	case ".lz4":
		return LZ4
	default:
		return None
	}
}

// Open opens filename for reading, transparently decompressing it according
// to its extension.
func Open(filename string) (io.ReadCloser, error) {
	f, err := os.Open(filename) //nolint:gosec // path is supplied by the caller
	if err != nil {
		return nil, dataerrors.Wrap(err, dataerrors.ErrorTypeFile, "failed to open file").
			WithDetail("file", filename)
	}

	rc, err := NewReader(f, CompressionFor(filename))
	if err != nil {
		f.Close()
		return nil, dataerrors.Wrap(err, dataerrors.ErrorTypeFile, "failed to initialize decompressor").
			WithDetail("file", filename)
	}
	return &stackedCloser{Reader: rc, closers: []io.Closer{rc, f}}, nil
}

// NewReader wraps r with a decompressor for c. Closing the result releases
// the decompressor only; r stays open.
func NewReader(r io.Reader, c Compression) (io.ReadCloser, error) {
	switch c {
	case Gzip:
		return gzip.NewReader(r)
	case Zstd:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return dec.IOReadCloser(), nil
	case Snappy:
		return io.NopCloser(snappy.NewReader(r)), nil
	case LZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	default:
		return io.NopCloser(r), nil
	}
}

// Create creates filename for writing, compressing output according to its
// extension. Close flushes the compressor before closing the file.
func Create(filename string) (io.WriteCloser, error) {
	f, err := os.Create(filename) //nolint:gosec // path is supplied by the caller
	if err != nil {
		return nil, dataerrors.Wrap(err, dataerrors.ErrorTypeFile, "failed to create file").
			WithDetail("file", filename)
	}

	wc, err := NewWriter(f, CompressionFor(filename))
	if err != nil {
		f.Close()
		return nil, dataerrors.Wrap(err, dataerrors.ErrorTypeFile, "failed to initialize compressor").
			WithDetail("file", filename)
	}
	return &stackedCloser{Writer: wc, closers: []io.Closer{wc, f}}, nil
}

// NewWriter wraps w with a compressor for c. Closing the result flushes the
// compressor only; w stays open.
func NewWriter(w io.Writer, c Compression) (io.WriteCloser, error) {
	switch c {
	case Gzip:
		return gzip.NewWriter(w), nil
	case Zstd:
		return zstd.NewWriter(w)
	case Snappy:
		return snappy.NewBufferedWriter(w), nil
	case LZ4:
		return lz4.NewWriter(w), nil
	default:
		return nopWriteCloser{w}, nil
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// stackedCloser closes its closers in order and reports the first failure.
type stackedCloser struct {
	io.Reader
	io.Writer
	closers []io.Closer
}

func (s *stackedCloser) Close() error {
	var first error
	for _, c := range s.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
