package compress

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/arloliu/htscodec/errs"
	"github.com/arloliu/htscodec/format"
)

// UnknownSize tells Decompress that the caller does not know the
// uncompressed size.
const UnknownSize = -1

// maxUnknownSize caps streaming decompression when the size is unknown.
const maxUnknownSize = 1 << 30

// Compressor compresses one block.
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	//
	// Memory management:
	//   - Returned slice is newly allocated and owned by the caller,
	//     except for the raw codec which returns its input
	//   - Input slice is not modified
	Compress(data []byte) ([]byte, error)
}

// Decompressor decompresses one block.
//
// Example:
//
//	codec, _ := compress.GetCodec(format.MethodGzip)
//	payload, err := codec.Decompress(block.Data, block.RawSize)
//	if errors.Is(err, errs.ErrSizeMismatch) {
//	    // framing and payload disagree
//	}
//
// Thread Safety: all Decompressor implementations in this package are safe
// for concurrent use.
type Decompressor interface {
	// Decompress decompresses data, which must have been produced by the
	// matching compressor.
	//
	// size is the uncompressed length declared by the block framing, or
	// UnknownSize. A known size is enforced: any other output length fails
	// with errs.ErrSizeMismatch.
	//
	// Memory management:
	//   - Returned slice is newly allocated and owned by the caller,
	//     except for the raw codec which returns its input
	//   - Input slice is not modified
	Decompress(data []byte, size int) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor

	// Name identifies the codec in logs and statistics.
	Name() string
}

// CompressionStats describes one compress/decompress round trip.
type CompressionStats struct {
	// Algorithm is the codec name.
	Algorithm string

	// OriginalSize is the size of input data before compression
	OriginalSize int64

	// CompressedSize is the size of data after compression
	CompressedSize int64

	// CompressionTimeNs is the time taken to compress the data
	CompressionTimeNs int64

	// DecompressionTimeNs is the time taken to decompress the data
	DecompressionTimeNs int64
}

// CompressionRatio returns the compression ratio (compressed size / original size).
//
// Values less than 1.0 indicate successful compression.
//
// Returns:
//   - float64: Compression ratio (0.0 if original size is zero)
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space savings as a percentage (0-100%).
func (s CompressionStats) SpaceSavings() float64 {
	return (1.0 - s.CompressionRatio()) * 100.0
}

// Measure compresses data with codec, decompresses the result and checks
// that it reproduces data exactly.
//
// Parameters:
//   - codec: Codec under test
//   - data: Sample payload
//
// Returns:
//   - CompressionStats: Sizes and timings of the round trip
//   - error: Codec failure, or errs.ErrInvalidData if the round trip differs
func Measure(codec Codec, data []byte) (CompressionStats, error) {
	stats := CompressionStats{
		Algorithm:    codec.Name(),
		OriginalSize: int64(len(data)),
	}

	start := time.Now()
	compressed, err := codec.Compress(data)
	if err != nil {
		return stats, fmt.Errorf("%s compress: %w", codec.Name(), err)
	}
	stats.CompressionTimeNs = time.Since(start).Nanoseconds()
	stats.CompressedSize = int64(len(compressed))

	start = time.Now()
	restored, err := codec.Decompress(compressed, len(data))
	if err != nil {
		return stats, fmt.Errorf("%s decompress: %w", codec.Name(), err)
	}
	stats.DecompressionTimeNs = time.Since(start).Nanoseconds()

	if !bytes.Equal(restored, data) {
		return stats, fmt.Errorf("%s: %w: round trip differs from input", codec.Name(), errs.ErrInvalidData)
	}

	return stats, nil
}

// CreateCodec is a factory function that creates a Codec for a CRAM block
// compression method.
//
// Parameters:
//   - method: CRAM block compression method
//
// Returns:
//   - Codec: Codec for the method
//   - error: errs.ErrUnsupportedMethod for methods this package cannot decode
func CreateCodec(method format.BlockMethod) (Codec, error) {
	switch method {
	case format.MethodRaw:
		return NewRawCodec(), nil
	case format.MethodGzip:
		return NewGzipCodec(), nil
	case format.MethodBzip2:
		return NewBzip2Codec(), nil
	case format.MethodLZMA:
		return NewLZMACodec(), nil
	case format.MethodRansNx16:
		codec, err := NewRansNx16Codec(DefaultRansNx16Flags)
		if err != nil {
			return nil, err
		}

		return codec, nil
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedMethod, method)
	}
}

var builtinCodecs = func() map[format.BlockMethod]Codec {
	codecs := make(map[format.BlockMethod]Codec)
	for _, m := range []format.BlockMethod{
		format.MethodRaw, format.MethodGzip, format.MethodBzip2, format.MethodLZMA, format.MethodRansNx16,
	} {
		codec, err := CreateCodec(m)
		if err != nil {
			panic(fmt.Sprintf("built-in codec %s: %v", m, err))
		}
		codecs[m] = codec
	}

	return codecs
}()

// GetCodec retrieves a shared built-in Codec for a CRAM block method.
func GetCodec(method format.BlockMethod) (Codec, error) {
	if codec, ok := builtinCodecs[method]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedMethod, method)
}

var archiveCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewRawCodec(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetArchiveCodec retrieves a general-purpose codec used to archive decoded
// payloads.
func GetArchiveCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := archiveCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}

// checkSize enforces a known uncompressed size.
func checkSize(name string, out []byte, size int) ([]byte, error) {
	if size >= 0 && len(out) != size {
		return nil, fmt.Errorf("%s: %w: got %d bytes, want %d", name, errs.ErrSizeMismatch, len(out), size)
	}

	return out, nil
}

// readAll drains a decompressing reader. With a known size it reads at most
// one byte past it so an oversized stream is detected without buffering
// all of it.
func readAll(name string, r io.Reader, size int) ([]byte, error) {
	limit := int64(maxUnknownSize) + 1
	initial := 0
	if size >= 0 {
		limit = int64(size) + 1
		initial = size
	}

	buf := bytes.NewBuffer(make([]byte, 0, initial+1))
	if _, err := buf.ReadFrom(io.LimitReader(r, limit)); err != nil {
		return nil, fmt.Errorf("%s decompression failed: %w", name, err)
	}
	if size < 0 && int64(buf.Len()) >= limit {
		return nil, fmt.Errorf("%s: %w: output exceeds %d bytes", name, errs.ErrInvalidLength, maxUnknownSize)
	}

	return checkSize(name, buf.Bytes(), size)
}
