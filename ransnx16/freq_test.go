package ransnx16

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/htscodec/encoding"
	"github.com/arloliu/htscodec/endian"
	"github.com/arloliu/htscodec/errs"
)

func TestFrequencies_Normalize(t *testing.T) {
	t.Run("scales power of two total", func(t *testing.T) {
		var f frequencies
		f['a'], f['b'], f['c'] = 2, 1, 1
		total, err := f.normalize(12)
		require.NoError(t, err)
		require.Equal(t, uint32(4096), total)
		require.Equal(t, uint32(2048), f['a'])
		require.Equal(t, uint32(1024), f['b'])
	})

	t.Run("already normalised", func(t *testing.T) {
		var f frequencies
		f[0] = 1024
		total, err := f.normalize(10)
		require.NoError(t, err)
		require.Equal(t, uint32(1024), total)
		require.Equal(t, uint32(1024), f[0])
	})

	t.Run("empty", func(t *testing.T) {
		var f frequencies
		total, err := f.normalize(12)
		require.NoError(t, err)
		require.Zero(t, total)
	})

	t.Run("not a power of two", func(t *testing.T) {
		var f frequencies
		f[1], f[2] = 3, 2
		_, err := f.normalize(12)
		require.ErrorIs(t, err, errs.ErrInvalidFrequencies)
	})

	t.Run("total too large", func(t *testing.T) {
		var f frequencies
		f[1], f[2] = 1024, 1024
		_, err := f.normalize(10)
		require.ErrorIs(t, err, errs.ErrInvalidFrequencies)
	})

	t.Run("huge single value", func(t *testing.T) {
		var f frequencies
		f[9] = 1 << 31
		_, err := f.normalize(12)
		require.ErrorIs(t, err, errs.ErrInvalidFrequencies)
	})
}

func TestScaleCounts(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4)) //nolint:gosec

	for trial := range 200 {
		var counts frequencies
		symbols := 1 + rng.IntN(256)
		for range symbols {
			counts[rng.IntN(256)] += uint32(1 + rng.IntN(1+trial*50)) //nolint:gosec
		}

		f := scaleCounts(&counts, totFreq)
		var sum uint32
		for s := range f {
			if counts[s] == 0 {
				require.Zero(t, f[s])
			} else {
				require.GreaterOrEqual(t, f[s], uint32(1))
			}
			sum += f[s]
		}
		require.Equal(t, uint32(totFreq), sum, "trial %d", trial)
	}

	var empty frequencies
	require.Equal(t, frequencies{}, scaleCounts(&empty, totFreq))
}

func TestOrder0Model_CumulativeTable(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6)) //nolint:gosec

	for range 50 {
		src := make([]byte, 1+rng.IntN(2000))
		span := 1 + rng.IntN(256)
		for i := range src {
			src[i] = byte(rng.IntN(span))
		}

		// The model header written by the encoder is read back verbatim.
		stream := appendOrder0(nil, src, 4)
		m := new(order0Model)
		require.NoError(t, m.read(encoding.NewCursor(stream, endian.GetLittleEndianEngine())))

		require.Zero(t, m.cum[0])
		require.Equal(t, uint32(totFreq), m.cum[256])
		for s := range 256 {
			require.LessOrEqual(t, m.cum[s], m.cum[s+1])
		}
		for slot := range uint32(totFreq) {
			s := m.sym[slot]
			require.LessOrEqual(t, m.cum[s], slot)
			require.Less(t, slot, m.cum[s+1])
		}
	}
}
