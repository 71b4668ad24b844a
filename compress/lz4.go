package compress

import (
	"errors"
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"

	"github.com/arloliu/htscodec/errs"
)

// lz4CompressorPool pools lz4.Compressor instances for reuse.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Compressor archives decoded block payloads as raw LZ4 blocks.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates a new LZ4 compressor.
//
// Returns:
//   - LZ4Compressor: New LZ4 compressor instance
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Name returns "lz4".
func (c LZ4Compressor) Name() string {
	return "lz4"
}

// Compress compresses the input data using a pooled lz4.Compressor.
//
// Parameters:
//   - data: Input data to compress
//
// Returns:
//   - []byte: Compressed data (nil if input is empty)
//   - error: Compression error if any
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// Decompress decompresses a raw LZ4 block.
//
// LZ4 blocks do not record their decoded length. With a known size the
// output buffer is allocated exactly once. Otherwise the buffer starts at
// 4x the compressed size and doubles on ErrInvalidSourceShortBuffer, up to
// 128MB.
//
// Parameters:
//   - data: Compressed data to decompress
//   - size: Declared uncompressed size, or UnknownSize
//
// Returns:
//   - []byte: Decompressed data (nil if input is empty)
//   - error: Decompression error or errs.ErrSizeMismatch
func (c LZ4Compressor) Decompress(data []byte, size int) ([]byte, error) {
	if len(data) == 0 {
		return checkSize(c.Name(), nil, size)
	}

	if size >= 0 {
		buf := make([]byte, size)
		n, err := lz4.UncompressBlock(data, buf)
		if err != nil {
			if errors.Is(err, lz4.ErrInvalidSourceShortBuffer) {
				return nil, fmt.Errorf("lz4: %w: output exceeds %d bytes", errs.ErrSizeMismatch, size)
			}

			return nil, fmt.Errorf("lz4 decompression failed: %w", err)
		}

		return checkSize(c.Name(), buf[:n], size)
	}

	bufSize := len(data) * 4
	const maxSize = 128 * 1024 * 1024

	for bufSize <= maxSize {
		buf := make([]byte, bufSize)
		n, err := lz4.UncompressBlock(data, buf)
		if err != nil {
			if errors.Is(err, lz4.ErrInvalidSourceShortBuffer) && bufSize < maxSize {
				bufSize *= 2
				continue
			}

			return nil, fmt.Errorf("lz4 decompression failed: %w", err)
		}

		return buf[:n], nil
	}

	return nil, lz4.ErrInvalidSourceShortBuffer
}
