package compress

// RawCodec serves CRAM method 0: the block payload is stored as is.
type RawCodec struct{}

var _ Codec = (*RawCodec)(nil)

// NewRawCodec creates a codec that passes data through unchanged.
//
// Returns:
//   - RawCodec: New raw codec instance
func NewRawCodec() RawCodec {
	return RawCodec{}
}

// Name returns "raw".
func (c RawCodec) Name() string {
	return "raw"
}

// Compress returns the input slice as is, without copying.
//
// Note: The returned slice shares the same underlying memory as the input.
func (c RawCodec) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns the input slice as is after checking it against size.
//
// Note: The returned slice shares the same underlying memory as the input.
//
// Parameters:
//   - data: Stored block payload
//   - size: Declared block size, or UnknownSize
//
// Returns:
//   - []byte: Same slice as input data
//   - error: errs.ErrSizeMismatch when len(data) differs from a known size
func (c RawCodec) Decompress(data []byte, size int) ([]byte, error) {
	return checkSize(c.Name(), data, size)
}
