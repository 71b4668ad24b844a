package compress

import (
	"fmt"

	"github.com/arloliu/htscodec/ransnx16"
)

// DefaultRansNx16Flags is the flag set used by CreateCodec. The encoder
// drops PACK and RLE when they do not apply.
const DefaultRansNx16Flags = ransnx16.FlagOrder | ransnx16.FlagPack | ransnx16.FlagRLE

// RansNx16Codec serves CRAM method 5.
//
// Decompress honours streams written with any flag combination; flags only
// steer Compress.
type RansNx16Codec struct {
	flags   ransnx16.Flags
	decoder *ransnx16.Decoder
}

var _ Codec = (*RansNx16Codec)(nil)

// NewRansNx16Codec creates an rANS Nx16 codec.
//
// Parameters:
//   - flags: Encoder flags; zero is the plain order-0 model with 4 lanes
//   - opts: Decoder options
//
// Returns:
//   - *RansNx16Codec: New codec instance
//   - error: Invalid decoder option
func NewRansNx16Codec(flags ransnx16.Flags, opts ...ransnx16.DecoderOption) (*RansNx16Codec, error) {
	decoder, err := ransnx16.NewDecoder(opts...)
	if err != nil {
		return nil, err
	}

	return &RansNx16Codec{flags: flags, decoder: decoder}, nil
}

// Name returns "ransNx16" followed by the encoder flags.
func (c *RansNx16Codec) Name() string {
	return fmt.Sprintf("ransNx16(%s)", c.flags)
}

// Flags returns the encoder flags.
func (c *RansNx16Codec) Flags() ransnx16.Flags {
	return c.flags
}

// Compress encodes data with the codec flags.
func (c *RansNx16Codec) Compress(data []byte) ([]byte, error) {
	return ransnx16.Encode(data, c.flags)
}

// Decompress decodes one rANS Nx16 stream. size is required for streams
// that set FlagNoSize.
func (c *RansNx16Codec) Decompress(data []byte, size int) ([]byte, error) {
	out, err := c.decoder.Decode(data, size)
	if err != nil {
		return nil, err
	}

	return checkSize("ransNx16", out, size)
}
