// Package compress provides the block codecs of a CRAM container plus a few
// general-purpose codecs for archiving decoded payloads.
//
// # Overview
//
// Every CRAM block header names the method its payload was compressed with.
// The package maps those methods to codecs:
//   - Raw (format.MethodRaw): payload stored as is
//   - Gzip (format.MethodGzip): deflate in a gzip member
//   - Bzip2 (format.MethodBzip2)
//   - LZMA (format.MethodLZMA): xz container
//   - rANS Nx16 (format.MethodRansNx16): the CRAM 3.1 entropy coder
//
// rANS 4x8, the adaptive arithmetic coder, fqzcomp and the name tokenizer
// are recognised but not served; asking for them fails with
// errs.ErrUnsupportedMethod.
//
// Archive codecs (format.CompressionType) recompress decoded payloads for
// storage outside CRAM:
//   - None: no compression
//   - Zstd: best ratio, moderate speed
//   - S2: balanced
//   - LZ4: fastest decompression
//
// # Architecture
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte, size int) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	    Name() string
//	}
//
// size is the uncompressed length from the block header. A known size is
// enforced and a different output length fails with errs.ErrSizeMismatch.
// Pass UnknownSize when the caller has no declared length.
//
// # Usage
//
//	codec, err := compress.GetCodec(format.MethodRansNx16)
//	if err != nil {
//	    return err
//	}
//	payload, err := codec.Decompress(block.Data, block.RawSize)
//
// Measure runs a compress/decompress round trip and reports a
// CompressionStats, which the ransnx16 command uses to compare codecs:
//
//	stats, err := compress.Measure(compress.NewZstdCompressor(), payload)
//	fmt.Printf("%s: %.1f%% saved\n", stats.Algorithm, stats.SpaceSavings())
//
// # Thread Safety
//
// All codecs are stateless or use sync.Pool internally and are safe for
// concurrent use. GetCodec returns shared instances.
package compress
