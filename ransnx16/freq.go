package ransnx16

import (
	"fmt"
	"math/bits"

	"github.com/arloliu/htscodec/errs"
)

const (
	// totFreqBits is the precision of order-0 models and of order-1 models
	// written by Encode.
	totFreqBits = 12
	totFreq     = 1 << totFreqBits

	// renormLow is the lower bound of a renormalised lane state.
	renormLow = 1 << 15
)

// frequencies holds one frequency per symbol.
type frequencies [256]uint32

// normalize scales f so that it sums to exactly 1<<shift.
//
// A table must already sum to a power of two no larger than 1<<shift. An
// all-zero table is left unchanged and reports a total of 0.
func (f *frequencies) normalize(shift uint) (uint32, error) {
	limit := uint32(1) << shift

	var total uint32
	for s, v := range f {
		if v > limit {
			return 0, fmt.Errorf("%w: symbol 0x%02x frequency %d exceeds %d",
				errs.ErrInvalidFrequencies, s, v, limit)
		}
		total += v
	}
	if total == 0 {
		return 0, nil
	}
	if total > limit || total&(total-1) != 0 {
		return 0, fmt.Errorf("%w: total %d is not a power of two <= %d",
			errs.ErrInvalidFrequencies, total, limit)
	}

	up := shift - uint(bits.Len32(total)-1)
	if up > 0 {
		for s := range f {
			f[s] <<= up
		}
	}

	return limit, nil
}

// cumulative writes the 257-entry cumulative table of f into cum.
func (f *frequencies) cumulative(cum []uint32) {
	_ = cum[256]
	cum[0] = 0
	for s, v := range f {
		cum[s+1] = cum[s] + v
	}
}

// scaleCounts builds a frequency table summing to exactly total from raw
// symbol counts. Every counted symbol gets a frequency of at least 1; the
// rounding difference is settled on the most frequent symbol.
func scaleCounts(counts *frequencies, total uint32) frequencies {
	var f frequencies

	var sum uint64
	for _, c := range counts {
		sum += uint64(c)
	}
	if sum == 0 {
		return f
	}

	var assigned int64
	for s, c := range counts {
		if c == 0 {
			continue
		}
		v := uint64(c) * uint64(total) / sum
		if v == 0 {
			v = 1
		}
		f[s] = uint32(v) //nolint:gosec
		assigned += int64(v)
	}

	diff := int64(total) - assigned
	for diff != 0 {
		m := 0
		for s := 1; s < 256; s++ {
			if f[s] > f[m] {
				m = s
			}
		}
		if diff > 0 {
			f[m] += uint32(diff) //nolint:gosec
			break
		}
		take := min(-diff, int64(f[m])-1)
		if take <= 0 {
			break
		}
		f[m] -= uint32(take) //nolint:gosec
		diff += take
	}

	return f
}
