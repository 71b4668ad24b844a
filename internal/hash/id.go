// Package hash provides content digests for decoded payloads.
package hash

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Sum64 returns the xxHash64 digest of data.
func Sum64(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Hex returns the xxHash64 digest of data as 16 lower-case hex digits.
func Hex(data []byte) string {
	s := strconv.FormatUint(xxhash.Sum64(data), 16)
	for len(s) < 16 {
		s = "0" + s
	}

	return s
}
