package compress

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/klauspost/compress/gzip"
)

// gzipWriterPool pools gzip writers; Reset rebinds them to a new output.
var gzipWriterPool = sync.Pool{
	New: func() any {
		w, err := gzip.NewWriterLevel(nil, gzip.DefaultCompression)
		if err != nil {
			panic(fmt.Sprintf("failed to create gzip writer for pool: %v", err))
		}

		return w
	},
}

var gzipReaderPool = sync.Pool{
	New: func() any {
		return new(gzip.Reader)
	},
}

// GzipCodec serves CRAM method 1: a gzip member holding deflate data.
//
// Multi-member streams are read to the end, matching what htslib writes
// for large blocks.
type GzipCodec struct{}

var _ Codec = (*GzipCodec)(nil)

// NewGzipCodec creates a gzip codec at the default compression level.
func NewGzipCodec() GzipCodec {
	return GzipCodec{}
}

// Name returns "gzip".
func (c GzipCodec) Name() string {
	return "gzip"
}

// Compress writes data as a single gzip member using a pooled writer.
func (c GzipCodec) Compress(data []byte) ([]byte, error) {
	var out bytes.Buffer
	out.Grow(len(data)/2 + 32)

	w, _ := gzipWriterPool.Get().(*gzip.Writer)
	defer gzipWriterPool.Put(w)
	w.Reset(&out)

	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("gzip compression failed: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("gzip compression failed: %w", err)
	}

	return out.Bytes(), nil
}

// Decompress inflates a gzip stream using a pooled reader.
//
// Parameters:
//   - data: gzip stream
//   - size: Declared uncompressed size, or UnknownSize
//
// Returns:
//   - []byte: Inflated bytes
//   - error: Corrupt stream or errs.ErrSizeMismatch
func (c GzipCodec) Decompress(data []byte, size int) ([]byte, error) {
	if len(data) == 0 {
		return checkSize(c.Name(), nil, size)
	}

	r, _ := gzipReaderPool.Get().(*gzip.Reader)
	defer gzipReaderPool.Put(r)

	if err := r.Reset(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("gzip decompression failed: %w", err)
	}
	defer r.Close()

	return readAll(c.Name(), r, size)
}
