package ransnx16

import (
	"fmt"

	"github.com/arloliu/htscodec/encoding"
	"github.com/arloliu/htscodec/errs"
)

const maxPackSymbols = 16

// packMeta describes a bit-packed stream: the symbol table mapping codes
// back to byte values and the length of the packed buffer.
type packMeta struct {
	nsym      int
	table     [maxPackSymbols]byte
	packedLen int
}

// packWidth returns the bits per code for an alphabet of nsym symbols.
func packWidth(nsym int) uint {
	switch {
	case nsym <= 1:
		return 0
	case nsym == 2:
		return 1
	case nsym <= 4:
		return 2
	default:
		return 4
	}
}

func readPackMeta(c *encoding.Cursor, maxLength int) (packMeta, error) {
	var p packMeta

	n, err := c.ReadUint8()
	if err != nil {
		return p, err
	}
	if n == 0 || n > maxPackSymbols {
		return p, fmt.Errorf("%w: %d", errs.ErrInvalidPackSymbols, n)
	}
	p.nsym = int(n)

	table, err := c.Next(p.nsym)
	if err != nil {
		return p, err
	}
	copy(p.table[:], table)

	if p.packedLen, err = c.ReadLength(maxLength); err != nil {
		return p, err
	}

	return p, nil
}

// unpack expands src into n bytes. Codes are read least significant bits
// first. A single-symbol table ignores src.
func (p *packMeta) unpack(src []byte, n int) ([]byte, error) {
	out := make([]byte, n)

	width := packWidth(p.nsym)
	if width == 0 {
		for i := range out {
			out[i] = p.table[0]
		}
		return out, nil
	}

	perByte := 8 / int(width)
	if need := (n + perByte - 1) / perByte; len(src) < need {
		return nil, fmt.Errorf("%w: packed buffer has %d bytes, need %d", errs.ErrLengthMismatch, len(src), need)
	}

	mask := byte(1)<<width - 1
	for i := range out {
		code := src[i/perByte] >> (uint(i%perByte) * width) & mask
		if int(code) >= p.nsym {
			return nil, fmt.Errorf("%w: pack code %d at byte %d exceeds %d symbols", errs.ErrInvalidData, code, i, p.nsym)
		}
		out[i] = p.table[code]
	}

	return out, nil
}

// buildPack returns the pack table of src, or ok=false when src is empty or
// has more than 16 distinct byte values.
func buildPack(src []byte) (packMeta, bool) {
	var p packMeta
	if len(src) == 0 {
		return p, false
	}

	var present alphabet
	for _, b := range src {
		present[b] = true
	}
	syms := present.symbols()
	if len(syms) > maxPackSymbols {
		return p, false
	}
	p.nsym = len(syms)
	copy(p.table[:], syms)

	return p, true
}

// pack maps src through the table built by buildPack and packs the codes.
// It sets packedLen.
func (p *packMeta) pack(src []byte) []byte {
	width := packWidth(p.nsym)
	if width == 0 {
		p.packedLen = 0
		return nil
	}

	var code [256]byte
	for i := range p.nsym {
		code[p.table[i]] = byte(i)
	}

	perByte := 8 / int(width)
	out := make([]byte, (len(src)+perByte-1)/perByte)
	for i, b := range src {
		out[i/perByte] |= code[b] << (uint(i%perByte) * width)
	}
	p.packedLen = len(out)

	return out
}

func (p *packMeta) appendTo(dst []byte) []byte {
	dst = append(dst, byte(p.nsym))
	dst = append(dst, p.table[:p.nsym]...)

	return encoding.AppendUint7(dst, uint32(p.packedLen)) //nolint:gosec
}
