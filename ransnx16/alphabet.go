package ransnx16

import (
	"fmt"

	"github.com/arloliu/htscodec/encoding"
	"github.com/arloliu/htscodec/errs"
)

// alphabet marks which byte values occur in a model.
type alphabet [256]bool

// readAlphabet decodes a run-length compressed symbol set.
//
// Symbols are listed in ascending order. A symbol that directly follows the
// previous one is followed by a count of further consecutive symbols, and a
// freshly read 0 outside a run terminates the list.
func readAlphabet(c *encoding.Cursor) (alphabet, error) {
	var a alphabet

	sym, err := c.ReadUint8()
	if err != nil {
		return a, err
	}
	last := sym
	run := 0

	for range 256 {
		a[sym] = true

		if run > 0 {
			run--
			if sym == 255 {
				return a, fmt.Errorf("%w: run continues past symbol 255", errs.ErrInvalidAlphabet)
			}
			sym++
		} else {
			sym, err = c.ReadUint8()
			if err != nil {
				return a, err
			}
			if last < 255 && sym == last+1 {
				r, err := c.ReadUint8()
				if err != nil {
					return a, err
				}
				run = int(r)
			}
		}

		last = sym
		if sym == 0 {
			return a, nil
		}
	}

	return a, fmt.Errorf("%w: no terminator within 256 symbols", errs.ErrInvalidAlphabet)
}

// appendTo writes the run-length compressed form read by readAlphabet.
func (a *alphabet) appendTo(dst []byte) []byte {
	for s := 0; s < 256; s++ {
		if !a[s] {
			continue
		}
		dst = append(dst, byte(s))
		if s > 0 && a[s-1] {
			end := s + 1
			for end < 256 && a[end] {
				end++
			}
			dst = append(dst, byte(end-s-1))
			s = end - 1
		}
	}

	return append(dst, 0)
}

// symbols returns the present symbols in ascending order.
func (a *alphabet) symbols() []byte {
	syms := make([]byte, 0, 256)
	for s, ok := range a {
		if ok {
			syms = append(syms, byte(s))
		}
	}

	return syms
}
