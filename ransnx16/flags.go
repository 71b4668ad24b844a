package ransnx16

import (
	"fmt"
	"strings"
)

// Flags is the header byte of an rANS Nx16 stream. Each bit enables one
// transform or layout option.
type Flags uint8

const (
	// FlagOrder selects the order-1 model instead of order-0.
	FlagOrder Flags = 0x01
	// FlagN32 selects 32 interleaved rANS lanes instead of 4.
	FlagN32 Flags = 0x04
	// FlagStripe splits the stream into independently coded sub-streams.
	FlagStripe Flags = 0x08
	// FlagNoSize omits the uncompressed length; the caller supplies it.
	FlagNoSize Flags = 0x10
	// FlagCat stores the payload verbatim without entropy coding.
	FlagCat Flags = 0x20
	// FlagRLE run-length encodes selected symbols before entropy coding.
	FlagRLE Flags = 0x40
	// FlagPack bit-packs streams with at most 16 distinct symbols.
	FlagPack Flags = 0x80
)

var flagNames = []struct {
	flag Flags
	name string
}{
	{FlagOrder, "order"},
	{FlagN32, "n32"},
	{FlagStripe, "stripe"},
	{FlagNoSize, "nosize"},
	{FlagCat, "cat"},
	{FlagRLE, "rle"},
	{FlagPack, "pack"},
}

// Has reports whether every bit of x is set in f.
func (f Flags) Has(x Flags) bool {
	return f&x == x
}

// LaneCount returns the number of interleaved rANS states: 32 with FlagN32,
// otherwise 4.
func (f Flags) LaneCount() int {
	if f.Has(FlagN32) {
		return 32
	}

	return 4
}

// String renders the set flags as upper-case names joined by '|', for
// example "ORDER|STRIPE". Reserved bits are shown in hex.
func (f Flags) String() string {
	if f == 0 {
		return "NONE"
	}

	var parts []string
	rest := f
	for _, fn := range flagNames {
		if f.Has(fn.flag) {
			parts = append(parts, strings.ToUpper(fn.name))
			rest &^= fn.flag
		}
	}
	if rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%02x", uint8(rest)))
	}

	return strings.Join(parts, "|")
}

// ParseFlags parses a comma or '|' separated list of flag names such as
// "order,n32,pack". Names are case-insensitive; an empty string yields 0.
func ParseFlags(s string) (Flags, error) {
	var f Flags
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == '|' })
	for _, field := range fields {
		name := strings.ToLower(strings.TrimSpace(field))
		if name == "" || name == "none" {
			continue
		}

		found := false
		for _, fn := range flagNames {
			if fn.name == name {
				f |= fn.flag
				found = true

				break
			}
		}
		if !found {
			return 0, fmt.Errorf("unknown rANS Nx16 flag %q", field)
		}
	}

	return f, nil
}
