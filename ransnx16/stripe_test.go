package ransnx16

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/htscodec/errs"
)

func TestStripeLengths_RemainderUsesLaneWidth(t *testing.T) {
	require.Equal(t, []int{2, 2, 2, 1}, stripeLengths(7, 4, 4))
	require.Equal(t, []int{3, 3, 3, 3}, stripeLengths(12, 4, 4))
	// With fewer stripes than lanes the remainder still follows total % lanes.
	require.Equal(t, []int{4, 4}, stripeLengths(6, 2, 4))
}

func TestValidateStripes_CoversEveryIndexOnce(t *testing.T) {
	for _, lanes := range []int{4, 32} {
		for total := range 200 {
			lengths := stripeLengths(total, lanes, lanes)
			require.NoError(t, validateStripes(lengths, total, lanes))

			seen := make([]int, total)
			for j, n := range lengths {
				for i := range n {
					seen[i*lanes+j]++
				}
			}
			for pos, hits := range seen {
				require.Equal(t, 1, hits, "lanes %d total %d pos %d", lanes, total, pos)
			}
		}
	}
}

func TestValidateStripes_Rejects(t *testing.T) {
	err := validateStripes(stripeLengths(6, 2, 4), 6, 4)
	require.ErrorIs(t, err, errs.ErrInvalidStripe)

	err = validateStripes([]int{1, 1}, 3, 4)
	require.ErrorIs(t, err, errs.ErrInvalidStripe)
}

func TestValidateStripes_MissesOverlapBeyondLaneWidth(t *testing.T) {
	// Five stripes over four lanes: stripe 4 writes index 4, which stripe 0
	// also owns, and index 5 is never written. Only the x <= lanes guard in
	// decodeStripes rules this out.
	require.NoError(t, validateStripes([]int{2, 1, 1, 1, 1}, 6, 4))
}

func TestDecode_StripeCountAboveLanesRejected(t *testing.T) {
	// x=8 over 4 lanes would tile 8 bytes, but is still refused.
	src := []byte{0x08, 0x08, 0x08, 0x02, 0x02, 0x02, 0x02, 0x02, 0x02, 0x02, 0x02}
	for j := range 8 {
		src = append(src, 0x30, byte('a'+j))
	}

	got, err := Decode(src, 0)
	require.ErrorIs(t, err, errs.ErrInvalidStripe)
	require.Nil(t, got)
}
