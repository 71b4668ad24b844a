package ransnx16

import (
	"fmt"
	"sync"

	"github.com/arloliu/htscodec/encoding"
	"github.com/arloliu/htscodec/endian"
	"github.com/arloliu/htscodec/errs"
)

// stripeLengths returns the uncompressed length of each of x sub-streams
// of a total-byte stream with lanes states. The remainder is spread using
// the lane width, not x.
func stripeLengths(total, x, lanes int) []int {
	lengths := make([]int, x)
	for j := range lengths {
		lengths[j] = total / x
		if total%lanes > j {
			lengths[j]++
		}
	}

	return lengths
}

// validateStripes checks that sub-streams of the given lengths, interleaved
// with stride lanes, stay inside [0, total) and sum to total.
//
// It does not detect two stripes writing the same index. That can only
// happen when x > lanes (stripe j+lanes lands on the slots of stripe j), so
// decodeStripes rejects x > lanes before calling it. Relaxing that guard
// requires an overlap check here.
func validateStripes(lengths []int, total, lanes int) error {
	sum := 0
	for j, n := range lengths {
		sum += n
		if n > 0 && (n-1)*lanes+j >= total {
			return fmt.Errorf("%w: stripe %d of %d bytes overruns %d-byte output", errs.ErrInvalidStripe, j, n, total)
		}
	}
	if sum != total {
		return fmt.Errorf("%w: stripe lengths sum to %d, want %d", errs.ErrInvalidStripe, sum, total)
	}

	return nil
}

// decodeStripes reads the stripe count and compressed extents, decodes each
// sub-stream from exactly its extent, and interleaves the results so that
// byte i of stripe j lands at i*lanes + j.
func (d *Decoder) decodeStripes(c *encoding.Cursor, total, lanes, depth int) ([]byte, error) {
	if depth >= d.cfg.maxStripeDepth {
		return nil, fmt.Errorf("%w: depth %d", errs.ErrStripeDepth, depth+1)
	}

	b, err := c.ReadUint8()
	if err != nil {
		return nil, err
	}
	x := int(b)
	if x == 0 || x > lanes {
		return nil, fmt.Errorf("%w: %d stripes for %d lanes", errs.ErrInvalidStripe, x, lanes)
	}

	clens := make([]int, x)
	for j := range clens {
		if clens[j], err = c.ReadLength(maxInt); err != nil {
			return nil, err
		}
	}
	extents := make([][]byte, x)
	for j, n := range clens {
		if extents[j], err = c.Next(n); err != nil {
			return nil, fmt.Errorf("stripe %d extent: %w", j, err)
		}
	}

	lengths := stripeLengths(total, x, lanes)
	if err := validateStripes(lengths, total, lanes); err != nil {
		return nil, err
	}

	parts := make([][]byte, x)
	decodePart := func(j int) error {
		sub := encoding.NewCursor(extents[j], endian.GetLittleEndianEngine())
		part, err := d.decode(sub, lengths[j], depth+1)
		if err != nil {
			return fmt.Errorf("stripe %d: %w", j, err)
		}
		if len(part) != lengths[j] {
			return fmt.Errorf("%w: stripe %d decoded %d bytes, want %d", errs.ErrInvalidStripe, j, len(part), lengths[j])
		}
		parts[j] = part

		return nil
	}

	if err := d.runStripes(x, decodePart); err != nil {
		return nil, err
	}

	out := make([]byte, total)
	for j, part := range parts {
		for i, s := range part {
			out[i*lanes+j] = s
		}
	}

	return out, nil
}

// runStripes calls fn for every stripe index, with at most
// stripeConcurrency calls in flight. It returns the error of the lowest
// failing index.
func (d *Decoder) runStripes(x int, fn func(j int) error) error {
	workers := min(d.cfg.stripeConcurrency, x)
	if workers <= 1 {
		for j := range x {
			if err := fn(j); err != nil {
				return err
			}
		}

		return nil
	}

	errList := make([]error, x)
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for j := range x {
		wg.Add(1)
		sem <- struct{}{}
		go func(j int) {
			defer wg.Done()
			defer func() { <-sem }()
			errList[j] = fn(j)
		}(j)
	}
	wg.Wait()

	for _, err := range errList {
		if err != nil {
			return err
		}
	}

	return nil
}

// appendStripes writes lanes round-robin sub-streams of src, each encoded
// with sub flags and no size field.
func appendStripes(dst, src []byte, sub Flags, lanes int) []byte {
	subs := make([][]byte, lanes)
	column := make([]byte, 0, len(src)/lanes+1)
	for j := range lanes {
		column = column[:0]
		for i := j; i < len(src); i += lanes {
			column = append(column, src[i])
		}
		subs[j] = appendStream(nil, column, sub)
	}

	dst = append(dst, byte(lanes))
	for _, s := range subs {
		dst = encoding.AppendUint7(dst, uint32(len(s))) //nolint:gosec
	}
	for _, s := range subs {
		dst = append(dst, s...)
	}

	return dst
}
