package ransnx16

import (
	"fmt"
	"math"

	"github.com/arloliu/htscodec/encoding"
	"github.com/arloliu/htscodec/endian"
	"github.com/arloliu/htscodec/errs"
	"github.com/arloliu/htscodec/internal/pool"
)

const (
	// order1CompressedTable marks an order-0 compressed frequency table in
	// the order-1 header byte.
	order1CompressedTable = 0x01

	// maxOrder1TableSize bounds the uncompressed frequency table: an
	// alphabet plus 256x256 uint7 frequencies.
	maxOrder1TableSize = 256*256*encoding.MaxUint7Bytes + 2*256 + 1

	cumRow = 257
)

// order1Model holds one cumulative table per context. Row ctx lives at
// cum[ctx*cumRow : (ctx+1)*cumRow]; an all-zero row is a context the
// stream never declared.
type order1Model struct {
	shift   uint
	cum     []uint32
	release func()
}

func newOrder1Model(shift uint) *order1Model {
	cum, release := pool.GetUint32Slice(256 * cumRow)
	return &order1Model{shift: shift, cum: cum, release: release}
}

func (m *order1Model) close() {
	if m.release != nil {
		m.release()
		m.release = nil
	}
}

func (m *order1Model) row(ctx byte) []uint32 {
	off := int(ctx) * cumRow
	return m.cum[off : off+cumRow]
}

// readTable decodes the shared alphabet and one frequency row per present
// context. Within a row a zero frequency is followed by the number of
// further zero entries, which are skipped.
func (m *order1Model) readTable(c *encoding.Cursor) error {
	a, err := readAlphabet(c)
	if err != nil {
		return err
	}
	syms := a.symbols()

	for _, ctx := range syms {
		var f frequencies
		zeros := 0
		for _, s := range syms {
			if zeros > 0 {
				zeros--
				continue
			}
			v, err := c.ReadUint7()
			if err != nil {
				return err
			}
			if v == 0 {
				z, err := c.ReadUint8()
				if err != nil {
					return err
				}
				zeros = int(z)
			}
			f[s] = v
		}

		if _, err := f.normalize(m.shift); err != nil {
			return fmt.Errorf("context 0x%02x: %w", ctx, err)
		}
		f.cumulative(m.row(ctx))
	}

	return nil
}

// readOrder1Model decodes the order-1 header byte and frequency table.
func readOrder1Model(c *encoding.Cursor) (*order1Model, error) {
	comp, err := c.ReadUint8()
	if err != nil {
		return nil, err
	}
	shift := uint(comp >> 4)
	if shift == 0 || shift > totFreqBits {
		return nil, fmt.Errorf("%w: order-1 precision %d bits", errs.ErrInvalidFrequencies, shift)
	}

	table := c
	if comp&order1CompressedTable != 0 {
		usize, err := c.ReadLength(maxOrder1TableSize)
		if err != nil {
			return nil, err
		}
		packed, err := readExtent(c)
		if err != nil {
			return nil, err
		}
		if usize > 0 && len(packed) < minOrder0Stream(4) {
			return nil, fmt.Errorf("%w: compressed table of %d bytes", errs.ErrUnexpectedEOF, len(packed))
		}
		raw := make([]byte, usize)
		if err := decodeOrder0(encoding.NewCursor(packed, endian.GetLittleEndianEngine()), raw, 4); err != nil {
			return nil, fmt.Errorf("compressed table: %w", err)
		}
		table = encoding.NewCursor(raw, endian.GetLittleEndianEngine())
	}

	m := newOrder1Model(shift)
	if err := m.readTable(table); err != nil {
		m.close()
		return nil, err
	}

	return m, nil
}

// decodeSymbol finds the symbol owning slot in row and advances state x.
func (m *order1Model) decodeSymbol(ctx byte, x uint32) (byte, uint32, error) {
	row := m.row(ctx)
	if row[256] == 0 {
		return 0, 0, fmt.Errorf("%w: context 0x%02x has no frequencies", errs.ErrInvalidFrequencies, ctx)
	}

	slot := x & (row[256] - 1)
	// Smallest s with row[s+1] > slot.
	lo, hi := 0, 255
	for lo < hi {
		mid := (lo + hi) / 2
		if row[mid+1] > slot {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	start := row[lo]
	f := row[lo+1] - start

	return byte(lo), f*(x>>m.shift) + slot - start, nil
}

// decodeOrder1 fills out from an order-1 stream. The output is split into
// lanes contiguous segments of len(out)/lanes bytes, one per state, with any
// remainder decoded by the last lane. Each lane starts in context 0.
func decodeOrder1(c *encoding.Cursor, out []byte, lanes int) error {
	m, err := readOrder1Model(c)
	if err != nil {
		return fmt.Errorf("order-1 model: %w", err)
	}
	defer m.close()

	var stateBuf [32]uint32
	states := stateBuf[:lanes]
	if err := c.ReadUint32s(states); err != nil {
		return fmt.Errorf("order-1 states: %w", err)
	}

	var ctxBuf [32]byte
	ctx := ctxBuf[:lanes]

	step := func(j, pos int) error {
		s, x, err := m.decodeSymbol(ctx[j], states[j])
		if err != nil {
			return err
		}
		if x < renormLow {
			w, err := c.ReadUint16()
			if err != nil {
				return fmt.Errorf("order-1 renormalisation at byte %d: %w", pos, err)
			}
			x = x<<16 | uint32(w)
		}
		states[j] = x
		ctx[j] = s
		out[pos] = s

		return nil
	}

	segment := len(out) / lanes
	for i := range segment {
		for j := range lanes {
			if err := step(j, j*segment+i); err != nil {
				return err
			}
		}
	}
	for pos := lanes * segment; pos < len(out); pos++ {
		if err := step(lanes-1, pos); err != nil {
			return err
		}
	}

	return nil
}

// appendOrder1Table writes the alphabet and frequency rows read by
// readTable.
func appendOrder1Table(dst []byte, freq []frequencies, a *alphabet) []byte {
	dst = a.appendTo(dst)
	syms := a.symbols()

	for _, ctx := range syms {
		row := &freq[ctx]
		for k := 0; k < len(syms); {
			v := row[syms[k]]
			dst = encoding.AppendUint7(dst, v)
			k++
			if v != 0 {
				continue
			}
			run := 0
			for k+run < len(syms) && row[syms[k+run]] == 0 && run < math.MaxUint8 {
				run++
			}
			dst = append(dst, byte(run))
			k += run
		}
	}

	return dst
}

// appendOrder1 appends the order-1 encoding of src with lanes interleaved
// states, using the lane layout of decodeOrder1. src must not be empty.
func appendOrder1(dst, src []byte, lanes int) []byte {
	engine := endian.GetLittleEndianEngine()
	segment := len(src) / lanes

	// Context of the byte at pos when decoded by lane j.
	contextAt := func(j, pos int) byte {
		if pos == j*segment {
			return 0
		}
		return src[pos-1]
	}
	laneEnd := func(j int) int {
		if j == lanes-1 {
			return len(src)
		}
		return (j + 1) * segment
	}

	counts := make([]frequencies, 256)
	for j := range lanes {
		for pos := j * segment; pos < laneEnd(j); pos++ {
			counts[contextAt(j, pos)][src[pos]]++
		}
	}

	var present alphabet
	present[0] = true
	for _, b := range src {
		present[b] = true
	}

	freq := make([]frequencies, 256)
	for ctx := range freq {
		freq[ctx] = scaleCounts(&counts[ctx], totFreq)
	}

	table := appendOrder1Table(nil, freq, &present)
	packed := appendOrder0(nil, table, 4)
	if len(packed)+encoding.Uint7Len(uint32(len(table)))+encoding.Uint7Len(uint32(len(packed))) < len(table) { //nolint:gosec
		dst = append(dst, totFreqBits<<4|order1CompressedTable)
		dst = encoding.AppendUint7(dst, uint32(len(table)))  //nolint:gosec
		dst = encoding.AppendUint7(dst, uint32(len(packed))) //nolint:gosec
		dst = append(dst, packed...)
	} else {
		dst = append(dst, totFreqBits<<4)
		dst = append(dst, table...)
	}

	cum, release := pool.GetUint32Slice(256 * cumRow)
	defer release()
	for ctx := range freq {
		freq[ctx].cumulative(cum[ctx*cumRow : (ctx+1)*cumRow])
	}

	var stateBuf [32]uint32
	states := stateBuf[:lanes]
	for j := range states {
		states[j] = renormLow
	}

	words, cleanup := pool.GetUint16Slice(len(src))
	defer cleanup()
	w := len(words)

	put := func(j, pos int) {
		ctx := contextAt(j, pos)
		s := src[pos]
		f := freq[ctx][s]
		x := states[j]
		if x >= ((renormLow>>totFreqBits)<<16)*f {
			w--
			words[w] = uint16(x) //nolint:gosec
			x >>= 16
		}
		states[j] = (x/f)<<totFreqBits + x%f + cum[int(ctx)*cumRow+int(s)]
	}

	// Reverse of the decode order.
	for pos := len(src) - 1; pos >= lanes*segment; pos-- {
		put(lanes-1, pos)
	}
	for i := segment - 1; i >= 0; i-- {
		for j := lanes - 1; j >= 0; j-- {
			put(j, j*segment+i)
		}
	}

	for _, x := range states {
		dst = engine.AppendUint32(dst, x)
	}
	for _, word := range words[w:] {
		dst = engine.AppendUint16(dst, word)
	}

	return dst
}
