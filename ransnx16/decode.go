package ransnx16

import (
	"bytes"
	"fmt"

	"github.com/arloliu/htscodec/encoding"
	"github.com/arloliu/htscodec/endian"
	"github.com/arloliu/htscodec/errs"
	"github.com/arloliu/htscodec/internal/options"
)

const maxInt = int(^uint(0) >> 1)

// Decoder decodes rANS Nx16 streams.
//
// A Decoder holds only its configuration and is safe for concurrent use.
type Decoder struct {
	cfg decoderConfig
}

var defaultDecoder = &Decoder{cfg: defaultDecoderConfig()}

// NewDecoder creates a decoder with the given options.
//
// Parameters:
//   - opts: Decoder options (WithMaxLength, WithMaxStripeDepth, WithStripeConcurrency)
//
// Returns:
//   - *Decoder: The configured decoder
//   - error: Invalid option value
func NewDecoder(opts ...DecoderOption) (*Decoder, error) {
	d := &Decoder{cfg: defaultDecoderConfig()}
	if err := options.Apply(&d.cfg, opts...); err != nil {
		return nil, err
	}

	return d, nil
}

// Decode decodes one rANS Nx16 stream with the default decoder.
//
// size is the uncompressed length supplied by the block framing. It is only
// used when the stream sets FlagNoSize; otherwise the stream's own length
// field wins.
func Decode(src []byte, size int) ([]byte, error) {
	return defaultDecoder.Decode(src, size)
}

// Decode decodes one rANS Nx16 stream held in src.
//
// Bytes after the end of the stream are ignored. On failure the returned
// slice is nil and the error wraps one of the errs sentinels.
//
// Parameters:
//   - src: Compressed stream
//   - size: Uncompressed length, used when the stream sets FlagNoSize
//
// Returns:
//   - []byte: Decoded bytes, owned by the caller
//   - error: Decode failure
func (d *Decoder) Decode(src []byte, size int) ([]byte, error) {
	return d.DecodeFrom(encoding.NewCursor(src, endian.GetLittleEndianEngine()), size)
}

// DecodeFrom decodes one stream starting at the cursor position and leaves
// the cursor just past the bytes the stream consumed.
func (d *Decoder) DecodeFrom(c *encoding.Cursor, size int) ([]byte, error) {
	out, err := d.decode(c, size, 0)
	if err != nil {
		return nil, fmt.Errorf("rANS Nx16: %w", err)
	}

	return out, nil
}

// decode runs the pipeline for one stream: header, then either stripes or
// PACK meta, RLE meta, core decode, RLE expansion and PACK expansion.
func (d *Decoder) decode(c *encoding.Cursor, size, depth int) ([]byte, error) {
	b, err := c.ReadUint8()
	if err != nil {
		return nil, err
	}
	flags := Flags(b)

	if flags.Has(FlagNoSize) {
		if size < 0 || size > d.cfg.maxLength {
			return nil, fmt.Errorf("%w: size %d outside [0, %d]", errs.ErrInvalidLength, size, d.cfg.maxLength)
		}
	} else if size, err = c.ReadLength(d.cfg.maxLength); err != nil {
		return nil, err
	}

	lanes := flags.LaneCount()
	if flags.Has(FlagStripe) {
		return d.decodeStripes(c, size, lanes, depth)
	}

	work := size

	var pack packMeta
	if flags.Has(FlagPack) {
		if pack, err = readPackMeta(c, d.cfg.maxLength); err != nil {
			return nil, fmt.Errorf("pack meta: %w", err)
		}
		work = pack.packedLen
	}

	var rle *rleMeta
	rleLen := work
	if flags.Has(FlagRLE) {
		if rle, err = readRLEMeta(c, lanes, d.cfg.maxLength); err != nil {
			return nil, fmt.Errorf("rle meta: %w", err)
		}
		work = rle.coreLen
	}

	data, err := decodeCore(c, flags, lanes, work)
	if err != nil {
		return nil, err
	}

	if rle != nil {
		if data, err = rle.expand(data, rleLen); err != nil {
			return nil, err
		}
	}
	if flags.Has(FlagPack) {
		if data, err = pack.unpack(data, size); err != nil {
			return nil, err
		}
	}

	return data, nil
}

// decodeCore entropy decodes n bytes, or copies them for FlagCat. Nothing
// is read when n is zero.
func decodeCore(c *encoding.Cursor, flags Flags, lanes, n int) ([]byte, error) {
	if n == 0 {
		return []byte{}, nil
	}

	// CAT bytes are taken from the input before the output is allocated.
	if flags.Has(FlagCat) {
		raw, err := c.Next(n)
		if err != nil {
			return nil, err
		}

		return bytes.Clone(raw), nil
	}

	out := make([]byte, n)
	switch {
	case flags.Has(FlagOrder):
		if err := decodeOrder1(c, out, lanes); err != nil {
			return nil, err
		}
	default:
		if err := decodeOrder0(c, out, lanes); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// readExtent reads a uint7 length and returns that many following bytes.
func readExtent(c *encoding.Cursor) ([]byte, error) {
	n, err := c.ReadLength(maxInt)
	if err != nil {
		return nil, err
	}

	return c.Next(n)
}
