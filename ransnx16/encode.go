package ransnx16

import (
	"bytes"
	"fmt"
	"math"

	"github.com/arloliu/htscodec/encoding"
	"github.com/arloliu/htscodec/errs"
	"github.com/arloliu/htscodec/internal/pool"
)

const knownFlags = FlagOrder | FlagN32 | FlagStripe | FlagNoSize | FlagCat | FlagRLE | FlagPack

// Encode compresses src into a single rANS Nx16 stream.
//
// flags selects the model and transforms. Transforms that cannot apply are
// dropped from the written header: PACK when src has more than 16 distinct
// byte values, RLE when no symbol repeats profitably, and STRIPE, PACK and
// RLE for empty input. With FlagNoSize the caller must pass len(src) to
// Decode. The effective flags are the first byte of the result.
//
// Parameters:
//   - src: Bytes to compress
//   - flags: Requested model and transforms
//
// Returns:
//   - []byte: Encoded stream
//   - error: errs.ErrInvalidLength when src exceeds 4 GiB - 1
func Encode(src []byte, flags Flags) ([]byte, error) {
	if uint64(len(src)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d bytes exceeds uint32 range", errs.ErrInvalidLength, len(src))
	}

	buf := pool.GetEncodeBuffer()
	defer pool.PutEncodeBuffer(buf)

	buf.Grow(len(src)/2 + 64)
	buf.B = appendStream(buf.B, src, flags&knownFlags)

	return bytes.Clone(buf.B), nil
}

// appendStream appends one stream, header included.
func appendStream(dst, src []byte, flags Flags) []byte {
	if len(src) == 0 {
		flags &^= FlagStripe | FlagPack | FlagRLE
	}
	lanes := flags.LaneCount()

	if flags.Has(FlagStripe) {
		sub := (flags &^ FlagStripe) | FlagNoSize
		dst = appendHeader(dst, flags&(FlagStripe|FlagN32|FlagNoSize), len(src))

		return appendStripes(dst, src, sub, lanes)
	}

	data := src

	var pack packMeta
	var packed bool
	if flags.Has(FlagPack) {
		if pack, packed = buildPack(data); packed {
			data = pack.pack(data)
		} else {
			flags &^= FlagPack
		}
	}

	var runMeta, literals []byte
	if flags.Has(FlagRLE) {
		var ok bool
		if len(data) > 0 {
			runMeta, literals, ok = buildRLE(data)
		}
		if !ok {
			flags &^= FlagRLE
		}
	}

	dst = appendHeader(dst, flags, len(src))
	if packed {
		dst = pack.appendTo(dst)
	}
	if flags.Has(FlagRLE) {
		dst = appendRLEMeta(dst, runMeta, len(literals), lanes)
		data = literals
	}

	if len(data) == 0 {
		return dst
	}

	switch {
	case flags.Has(FlagCat):
		return append(dst, data...)
	case flags.Has(FlagOrder):
		return appendOrder1(dst, data, lanes)
	default:
		return appendOrder0(dst, data, lanes)
	}
}

func appendHeader(dst []byte, flags Flags, n int) []byte {
	dst = append(dst, byte(flags))
	if !flags.Has(FlagNoSize) {
		dst = encoding.AppendUint7(dst, uint32(n)) //nolint:gosec
	}

	return dst
}
