package ransnx16

import (
	"fmt"

	"github.com/arloliu/htscodec/encoding"
	"github.com/arloliu/htscodec/endian"
	"github.com/arloliu/htscodec/errs"
)

// rleMeta holds the run-length symbol set and the cursor over the run
// counts that follow it in the meta block.
type rleMeta struct {
	symbols alphabet
	runs    *encoding.Cursor
	coreLen int
}

// readRLEMeta decodes the RLE header: uint7 meta length, uint7 length of the
// run-collapsed stream, then the meta block. An odd meta length stores
// metaLen/2 raw bytes; an even one stores a uint7 compressed size followed
// by an order-0 stream of metaLen/2 bytes using lanes states.
func readRLEMeta(c *encoding.Cursor, lanes, maxLength int) (*rleMeta, error) {
	metaLen, err := c.ReadLength(rleMetaLimit(maxLength))
	if err != nil {
		return nil, err
	}
	r := &rleMeta{}
	if r.coreLen, err = c.ReadLength(maxLength); err != nil {
		return nil, err
	}

	var meta []byte
	if metaLen&1 == 1 {
		if meta, err = c.Next(metaLen / 2); err != nil {
			return nil, err
		}
	} else {
		packed, err := readExtent(c)
		if err != nil {
			return nil, err
		}
		if metaLen > 0 && len(packed) < minOrder0Stream(lanes) {
			return nil, fmt.Errorf("%w: compressed meta of %d bytes", errs.ErrUnexpectedEOF, len(packed))
		}
		meta = make([]byte, metaLen/2)
		if err := decodeOrder0(encoding.NewCursor(packed, endian.GetLittleEndianEngine()), meta, lanes); err != nil {
			return nil, fmt.Errorf("compressed meta: %w", err)
		}
	}

	r.runs = encoding.NewCursor(meta, endian.GetLittleEndianEngine())
	m, err := r.runs.ReadUint8()
	if err != nil {
		return nil, err
	}
	count := int(m)
	if count == 0 {
		count = 256
	}
	syms, err := r.runs.Next(count)
	if err != nil {
		return nil, err
	}
	for _, s := range syms {
		r.symbols[s] = true
	}

	return r, nil
}

// rleMetaLimit bounds the meta block: the symbol list plus one uint7 run
// count per collapsed byte, doubled for the raw/compressed marker bit.
func rleMetaLimit(maxLength int) int {
	const maxInt = int(^uint(0) >> 1)
	if maxLength > (maxInt-1024)/(2*encoding.MaxUint7Bytes) {
		return maxInt
	}

	return 2*(257+maxLength*encoding.MaxUint7Bytes) + 1
}

// expand re-inflates runs: each flagged symbol in src is written run+1
// times, where run is the next uint7 of the meta block. The result must be
// exactly n bytes.
func (r *rleMeta) expand(src []byte, n int) ([]byte, error) {
	out := make([]byte, 0, n)
	for i, s := range src {
		if !r.symbols[s] {
			if len(out) == n {
				return nil, fmt.Errorf("%w: RLE output exceeds %d bytes at input %d", errs.ErrLengthMismatch, n, i)
			}
			out = append(out, s)

			continue
		}

		run, err := r.runs.ReadUint7()
		if err != nil {
			return nil, fmt.Errorf("run count at input %d: %w", i, err)
		}
		if uint64(run)+1 > uint64(n-len(out)) { //nolint:gosec
			return nil, fmt.Errorf("%w: run of %d exceeds remaining %d bytes", errs.ErrLengthMismatch, uint64(run)+1, n-len(out))
		}
		for k := uint32(0); k <= run; k++ {
			out = append(out, s)
		}
	}

	if len(out) != n {
		return nil, fmt.Errorf("%w: RLE produced %d bytes, want %d", errs.ErrLengthMismatch, len(out), n)
	}

	return out, nil
}

// buildRLE collapses runs of profitable symbols. A symbol is flagged when
// it repeats more often than it starts a new run. It returns ok=false when
// no symbol qualifies.
func buildRLE(src []byte) (meta, literals []byte, ok bool) {
	var saved [256]int
	last := -1
	for _, b := range src {
		if int(b) == last {
			saved[b]++
		} else {
			saved[b]--
		}
		last = int(b)
	}

	var flagged alphabet
	count := 0
	for s, v := range saved {
		if v > 0 {
			flagged[s] = true
			count++
		}
	}
	if count == 0 {
		return nil, nil, false
	}

	meta = append(meta, byte(count)) // 256 wraps to 0
	meta = append(meta, flagged.symbols()...)

	literals = make([]byte, 0, len(src))
	for i := 0; i < len(src); {
		b := src[i]
		literals = append(literals, b)
		if !flagged[b] {
			i++
			continue
		}
		end := i + 1
		for end < len(src) && src[end] == b {
			end++
		}
		meta = encoding.AppendUint7(meta, uint32(end-i-1)) //nolint:gosec
		i = end
	}

	return meta, literals, true
}

// appendRLEMeta writes the RLE header read by readRLEMeta, compressing the
// meta block with order-0 when that is smaller.
func appendRLEMeta(dst, meta []byte, coreLen, lanes int) []byte {
	packed := appendOrder0(nil, meta, lanes)
	if len(packed)+encoding.Uint7Len(uint32(len(packed))) < len(meta) { //nolint:gosec
		dst = encoding.AppendUint7(dst, uint32(2*len(meta))) //nolint:gosec
		dst = encoding.AppendUint7(dst, uint32(coreLen))     //nolint:gosec
		dst = encoding.AppendUint7(dst, uint32(len(packed))) //nolint:gosec

		return append(dst, packed...)
	}

	dst = encoding.AppendUint7(dst, uint32(2*len(meta)+1)) //nolint:gosec
	dst = encoding.AppendUint7(dst, uint32(coreLen))       //nolint:gosec

	return append(dst, meta...)
}
