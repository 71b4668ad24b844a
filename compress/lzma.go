package compress

import (
	"bytes"
	"fmt"

	"github.com/ulikunitz/xz"
)

// LZMACodec serves CRAM method 3. htslib stores these blocks in the xz
// container, so that is what the codec reads and writes.
type LZMACodec struct{}

var _ Codec = (*LZMACodec)(nil)

// NewLZMACodec creates an xz codec with the library defaults.
func NewLZMACodec() LZMACodec {
	return LZMACodec{}
}

// Name returns "lzma".
func (c LZMACodec) Name() string {
	return "lzma"
}

// Compress encodes data as one xz stream.
func (c LZMACodec) Compress(data []byte) ([]byte, error) {
	var out bytes.Buffer

	w, err := xz.NewWriter(&out)
	if err != nil {
		return nil, fmt.Errorf("lzma compression failed: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("lzma compression failed: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("lzma compression failed: %w", err)
	}

	return out.Bytes(), nil
}

// Decompress decodes an xz stream.
func (c LZMACodec) Decompress(data []byte, size int) ([]byte, error) {
	if len(data) == 0 {
		return checkSize(c.Name(), nil, size)
	}

	r, err := xz.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("lzma decompression failed: %w", err)
	}

	return readAll(c.Name(), r, size)
}
