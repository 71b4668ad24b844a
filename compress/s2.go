package compress

import (
	"fmt"

	"github.com/klauspost/compress/s2"

	"github.com/arloliu/htscodec/errs"
)

// S2Compressor archives decoded block payloads with S2, trading ratio for speed.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates a new S2 compressor.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Name returns "s2".
func (c S2Compressor) Name() string {
	return "s2"
}

// Compress compresses the input data using S2 compression.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress decompresses the input data using S2 decompression.
//
// The block header carries the decoded length, so a size mismatch is
// reported before anything is allocated.
func (c S2Compressor) Decompress(data []byte, size int) ([]byte, error) {
	if len(data) == 0 {
		return checkSize(c.Name(), nil, size)
	}

	n, err := s2.DecodedLen(data)
	if err != nil {
		return nil, fmt.Errorf("s2 decompression failed: %w", err)
	}
	if size >= 0 && n != size {
		return nil, fmt.Errorf("s2: %w: header declares %d bytes, want %d", errs.ErrSizeMismatch, n, size)
	}

	out, err := s2.Decode(nil, data)
	if err != nil {
		return nil, fmt.Errorf("s2 decompression failed: %w", err)
	}

	return out, nil
}
