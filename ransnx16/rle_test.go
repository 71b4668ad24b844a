package ransnx16

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/htscodec/encoding"
	"github.com/arloliu/htscodec/endian"
	"github.com/arloliu/htscodec/errs"
)

func readRLEMetaBytes(t *testing.T, b []byte, lanes int) *rleMeta {
	t.Helper()
	r, err := readRLEMeta(encoding.NewCursor(b, endian.GetLittleEndianEngine()), lanes, 1<<20)
	require.NoError(t, err)

	return r
}

func TestBuildRLE_SelectsProfitableSymbols(t *testing.T) {
	meta, literals, ok := buildRLE([]byte("noooooooodles"))
	require.True(t, ok)
	require.Equal(t, []byte{0x01, 'o', 0x07}, meta)
	require.Equal(t, "nodles", string(literals))

	_, _, ok = buildRLE([]byte("abcdef"))
	require.False(t, ok)
}

func TestRLE_RoundTrip(t *testing.T) {
	inputs := []string{
		"noooooooodles",
		"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		strings.Repeat("AAAAC", 200),
		strings.Repeat("!!!!###IIIIIIII", 50) + "xyz",
	}

	for _, in := range inputs {
		for _, lanes := range []int{4, 32} {
			meta, literals, ok := buildRLE([]byte(in))
			require.True(t, ok)

			header := appendRLEMeta(nil, meta, len(literals), lanes)
			r := readRLEMetaBytes(t, header, lanes)
			require.Equal(t, len(literals), r.coreLen)

			out, err := r.expand(literals, len(in))
			require.NoError(t, err)
			require.Equal(t, in, string(out))
		}
	}
}

func TestRLE_CompressedMeta(t *testing.T) {
	in := []byte(strings.Repeat("xxxxy", 400))
	meta, literals, ok := buildRLE(in)
	require.True(t, ok)

	header := appendRLEMeta(nil, meta, len(literals), 4)
	c := encoding.NewCursor(header, endian.GetLittleEndianEngine())
	metaLen, err := c.ReadUint7()
	require.NoError(t, err)
	require.Zero(t, metaLen&1, "long meta should be stored compressed")

	r := readRLEMetaBytes(t, header, 4)
	out, err := r.expand(literals, len(in))
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestRLE_UnflaggedSymbolsPassThrough(t *testing.T) {
	// Only 'A' is flagged; 'B' runs stay literal.
	r := readRLEMetaBytes(t, []byte{0x07, 0x03, 0x01, 'A', 0x02}, 4)

	out, err := r.expand([]byte("BAB"), 5)
	require.NoError(t, err)
	require.Equal(t, "BAAAB", string(out))
}

func TestRLE_AllSymbolsFlagged(t *testing.T) {
	meta := make([]byte, 0, 260)
	meta = append(meta, 0x00)
	for s := range 256 {
		meta = append(meta, byte(s))
	}
	meta = append(meta, 0x01, 0x00)

	header := encoding.AppendUint7(nil, uint32(2*len(meta)+1)) //nolint:gosec
	header = encoding.AppendUint7(header, 2)
	header = append(header, meta...)

	r := readRLEMetaBytes(t, header, 4)
	out, err := r.expand([]byte{0xff, 0x00}, 3)
	require.NoError(t, err)
	require.Equal(t, []byte{0xff, 0xff, 0x00}, out)
}

func TestRLE_ExpandErrors(t *testing.T) {
	r := readRLEMetaBytes(t, []byte{0x07, 0x01, 0x01, 'A', 0x09}, 4)
	_, err := r.expand([]byte("A"), 4)
	require.ErrorIs(t, err, errs.ErrLengthMismatch)

	// Run counts exhausted.
	r = readRLEMetaBytes(t, []byte{0x07, 0x02, 0x01, 'A', 0x00}, 4)
	_, err = r.expand([]byte("AA"), 2)
	require.ErrorIs(t, err, errs.ErrUnexpectedEOF)
}
