// Package htscodec decodes the compressed data blocks of CRAM alignment
// files.
//
// The heavy lifting lives in the ransnx16 package (the CRAM 3.1 rANS Nx16
// entropy coder) and the compress package (one codec per CRAM block
// compression method). This package offers convenient top-level wrappers
// for the common cases.
//
// # Basic Usage
//
// Decoding a single rANS Nx16 stream:
//
//	payload, err := htscodec.DecodeRansNx16(stream, 0)
//
// Decoding one block by its header's method byte:
//
//	payload, err := htscodec.DecompressBlock(format.MethodGzip, block, rawSize)
//
// Decoding the blocks of a slice concurrently:
//
//	blocks := []htscodec.Block{
//	    {Method: format.MethodRansNx16, Data: qual, RawSize: 9000},
//	    {Method: format.MethodGzip, Data: names, RawSize: 4000},
//	}
//	payloads, err := htscodec.DecompressBlocks(ctx, blocks, runtime.NumCPU())
//
// # Package Structure
//
//   - ransnx16: rANS Nx16 decoder and encoder
//   - compress: block codecs and archive codecs
//   - format: block method and compression type enumerations
//   - errs: sentinel errors shared by all packages
package htscodec

import (
	"context"
	"fmt"
	"sync"

	"github.com/arloliu/htscodec/compress"
	"github.com/arloliu/htscodec/format"
	"github.com/arloliu/htscodec/ransnx16"
)

// Block is one compressed CRAM block as handed over by the container layer.
type Block struct {
	// Method is the compression method byte from the block header.
	Method format.BlockMethod
	// Data is the compressed payload.
	Data []byte
	// RawSize is the declared uncompressed size, or compress.UnknownSize.
	RawSize int
}

// DecodeRansNx16 decodes one rANS Nx16 stream.
//
// size is only consulted when the stream sets ransnx16.FlagNoSize.
//
// Parameters:
//   - src: Compressed stream
//   - size: Uncompressed length supplied out of band
//
// Returns:
//   - []byte: Decoded bytes
//   - error: Decode failure wrapping an errs sentinel
func DecodeRansNx16(src []byte, size int) ([]byte, error) {
	return ransnx16.Decode(src, size)
}

// EncodeRansNx16 encodes src as one rANS Nx16 stream.
//
// Example:
//
//	stream, err := htscodec.EncodeRansNx16(qualities, ransnx16.FlagOrder|ransnx16.FlagRLE)
func EncodeRansNx16(src []byte, flags ransnx16.Flags) ([]byte, error) {
	return ransnx16.Encode(src, flags)
}

// DecompressBlock decodes one block payload with the codec for method.
//
// Parameters:
//   - method: Compression method from the block header
//   - data: Compressed payload
//   - size: Declared uncompressed size, or compress.UnknownSize
//
// Returns:
//   - []byte: Uncompressed payload
//   - error: errs.ErrUnsupportedMethod, errs.ErrSizeMismatch or a codec error
func DecompressBlock(method format.BlockMethod, data []byte, size int) ([]byte, error) {
	codec, err := compress.GetCodec(method)
	if err != nil {
		return nil, err
	}

	return codec.Decompress(data, size)
}

// DecompressBlocks decodes blocks with up to workers goroutines.
//
// Results are returned in block order. The first failure cancels the
// remaining work and is returned with its block index. Cancelling ctx stops
// dispatching new blocks and returns ctx.Err().
//
// Parameters:
//   - ctx: Cancellation context
//   - blocks: Blocks to decode
//   - workers: Maximum concurrent decodes; values below 1 mean 1
//
// Returns:
//   - [][]byte: Payloads indexed like blocks (nil on error)
//   - error: First decode failure or context error
func DecompressBlocks(ctx context.Context, blocks []Block, workers int) ([][]byte, error) {
	if workers < 1 {
		workers = 1
	}
	workers = min(workers, len(blocks))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make([][]byte, len(blocks))
	jobs := make(chan int)

	var (
		wg       sync.WaitGroup
		once     sync.Once
		firstErr error
	)

	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				b := blocks[i]
				out, err := DecompressBlock(b.Method, b.Data, b.RawSize)
				if err != nil {
					once.Do(func() {
						firstErr = fmt.Errorf("block %d (%s): %w", i, b.Method, err)
						cancel()
					})

					continue
				}
				results[i] = out
			}
		}()
	}

dispatch:
	for i := range blocks {
		select {
		case <-ctx.Done():
			break dispatch
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return results, nil
}
