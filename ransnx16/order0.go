package ransnx16

import (
	"fmt"

	"github.com/arloliu/htscodec/encoding"
	"github.com/arloliu/htscodec/endian"
	"github.com/arloliu/htscodec/errs"
	"github.com/arloliu/htscodec/internal/pool"
)

// order0Model is a single 12-bit frequency table with a slot lookup table.
type order0Model struct {
	freq frequencies
	cum  [257]uint32
	sym  [totFreq]byte
}

// read decodes the alphabet and per-symbol uint7 frequencies, then
// normalises them to totFreq.
func (m *order0Model) read(c *encoding.Cursor) error {
	a, err := readAlphabet(c)
	if err != nil {
		return err
	}
	for s, ok := range a {
		if !ok {
			continue
		}
		if m.freq[s], err = c.ReadUint7(); err != nil {
			return err
		}
	}

	total, err := m.freq.normalize(totFreqBits)
	if err != nil {
		return err
	}
	if total == 0 {
		return fmt.Errorf("%w: order-0 table has no non-zero frequency", errs.ErrInvalidFrequencies)
	}

	m.freq.cumulative(m.cum[:])
	for s := range 256 {
		for slot := m.cum[s]; slot < m.cum[s+1]; slot++ {
			m.sym[slot] = byte(s)
		}
	}

	return nil
}

// minOrder0Stream is the size of the smallest order-0 stream that yields
// any bytes: a one-symbol alphabet, its frequency and the lane states.
func minOrder0Stream(lanes int) int {
	return 3 + 4*lanes
}

// decodeOrder0 fills out from an order-0 stream using lanes interleaved
// states. Byte i belongs to lane i % lanes.
func decodeOrder0(c *encoding.Cursor, out []byte, lanes int) error {
	m := new(order0Model)
	if err := m.read(c); err != nil {
		return fmt.Errorf("order-0 model: %w", err)
	}

	var stateBuf [32]uint32
	states := stateBuf[:lanes]
	if err := c.ReadUint32s(states); err != nil {
		return fmt.Errorf("order-0 states: %w", err)
	}

	const mask = totFreq - 1
	for i := range out {
		j := i % lanes
		x := states[j]
		slot := x & mask
		s := m.sym[slot]
		x = m.freq[s]*(x>>totFreqBits) + slot - m.cum[s]
		if x < renormLow {
			w, err := c.ReadUint16()
			if err != nil {
				return fmt.Errorf("order-0 renormalisation at byte %d: %w", i, err)
			}
			x = x<<16 | uint32(w)
		}
		states[j] = x
		out[i] = s
	}

	return nil
}

// appendOrder0 appends the order-0 encoding of src with lanes interleaved
// states. src must not be empty.
func appendOrder0(dst, src []byte, lanes int) []byte {
	engine := endian.GetLittleEndianEngine()

	var counts frequencies
	for _, b := range src {
		counts[b]++
	}
	freq := scaleCounts(&counts, totFreq)

	var present alphabet
	for s, f := range freq {
		present[s] = f > 0
	}
	dst = present.appendTo(dst)
	for _, f := range freq {
		if f > 0 {
			dst = encoding.AppendUint7(dst, f)
		}
	}

	var cum [257]uint32
	freq.cumulative(cum[:])

	var stateBuf [32]uint32
	states := stateBuf[:lanes]
	for j := range states {
		states[j] = renormLow
	}

	// At most one renormalisation word per symbol; filled back to front.
	words, cleanup := pool.GetUint16Slice(len(src))
	defer cleanup()
	w := len(words)

	for i := len(src) - 1; i >= 0; i-- {
		j := i % lanes
		s := src[i]
		f := freq[s]
		x := states[j]
		if x >= ((renormLow>>totFreqBits)<<16)*f {
			w--
			words[w] = uint16(x) //nolint:gosec
			x >>= 16
		}
		states[j] = (x/f)<<totFreqBits + x%f + cum[s]
	}

	for _, x := range states {
		dst = engine.AppendUint32(dst, x)
	}
	for _, word := range words[w:] {
		dst = engine.AppendUint16(dst, word)
	}

	return dst
}
