package compress

import (
	"bytes"
	"fmt"

	"github.com/dsnet/compress/bzip2"
)

// Bzip2Codec serves CRAM method 2.
type Bzip2Codec struct {
	level int
}

var _ Codec = (*Bzip2Codec)(nil)

// NewBzip2Codec creates a bzip2 codec at the best compression level, the
// level samtools uses for CRAM blocks.
func NewBzip2Codec() Bzip2Codec {
	return Bzip2Codec{level: bzip2.BestCompression}
}

// Name returns "bzip2".
func (c Bzip2Codec) Name() string {
	return "bzip2"
}

// Compress encodes data as one bzip2 stream.
func (c Bzip2Codec) Compress(data []byte) ([]byte, error) {
	var out bytes.Buffer

	w, err := bzip2.NewWriter(&out, &bzip2.WriterConfig{Level: c.level})
	if err != nil {
		return nil, fmt.Errorf("bzip2 compression failed: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("bzip2 compression failed: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("bzip2 compression failed: %w", err)
	}

	return out.Bytes(), nil
}

// Decompress decodes a bzip2 stream.
func (c Bzip2Codec) Decompress(data []byte, size int) ([]byte, error) {
	if len(data) == 0 {
		return checkSize(c.Name(), nil, size)
	}

	r, err := bzip2.NewReader(bytes.NewReader(data), nil)
	if err != nil {
		return nil, fmt.Errorf("bzip2 decompression failed: %w", err)
	}
	defer r.Close()

	return readAll(c.Name(), r, size)
}
