package ransnx16

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/htscodec/internal/hash"
)

var roundTripFlags = []Flags{
	0,
	FlagOrder,
	FlagN32,
	FlagOrder | FlagN32,
	FlagCat,
	FlagRLE,
	FlagPack,
	FlagRLE | FlagPack,
	FlagStripe,
	FlagStripe | FlagOrder,
	FlagStripe | FlagN32 | FlagOrder,
	FlagStripe | FlagPack | FlagRLE,
	FlagPack | FlagOrder,
	FlagRLE | FlagOrder | FlagN32,
	FlagPack | FlagRLE | FlagOrder,
	FlagCat | FlagRLE | FlagPack,
}

func TestEncode_Vectors(t *testing.T) {
	for _, v := range encodeVectors {
		t.Run(v.name, func(t *testing.T) {
			got, err := Encode([]byte(v.src), v.flags)
			require.NoError(t, err)
			require.Equal(t, mustHex(t, v.hex), got)
		})
	}
}

func TestEncode_RoundTrip(t *testing.T) {
	for name, data := range testDatasets() {
		for _, flags := range roundTripFlags {
			t.Run(name+"/"+flags.String(), func(t *testing.T) {
				stream, err := Encode(data, flags)
				require.NoError(t, err)

				got, err := Decode(stream, 0)
				require.NoError(t, err)
				require.Equal(t, hash.Hex(data), hash.Hex(got))
				require.Equal(t, data, got)

				stream, err = Encode(data, flags|FlagNoSize)
				require.NoError(t, err)
				require.True(t, Flags(stream[0]).Has(FlagNoSize))

				got, err = Decode(stream, len(data))
				require.NoError(t, err)
				require.Equal(t, data, got)
			})
		}
	}
}

func TestEncode_DropsInapplicableTransforms(t *testing.T) {
	datasets := testDatasets()

	tests := []struct {
		name  string
		src   []byte
		flags Flags
		want  Flags
	}{
		{"pack with many symbols", datasets["random"], FlagPack | FlagOrder, FlagOrder},
		{"rle without repeats", []byte("abcdefgh"), FlagRLE, 0},
		{"pack of one symbol drops rle", datasets["constant"], FlagPack | FlagRLE, FlagPack},
		{"empty input", nil, FlagStripe | FlagPack | FlagRLE | FlagOrder, FlagOrder},
		{"stripe keeps only layout flags", datasets["bases"], FlagStripe | FlagPack | FlagOrder | FlagN32, FlagStripe | FlagN32},
		{"reserved bit cleared", []byte("noodles"), FlagCat | 0x02, FlagCat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stream, err := Encode(tt.src, tt.flags)
			require.NoError(t, err)
			require.Equal(t, tt.want, Flags(stream[0]))

			got, err := Decode(stream, 0)
			require.NoError(t, err)
			require.Equal(t, len(tt.src), len(got))
		})
	}
}

func TestEncode_StripeSubStreamsCarryTransforms(t *testing.T) {
	src := testDatasets()["qualities"]
	stream, err := Encode(src, FlagStripe|FlagPack|FlagRLE)
	require.NoError(t, err)

	// Header, uint7 length, stripe count, then the first sub-stream's flags
	// after four uint7 extents.
	require.Equal(t, byte(4), stream[3])
	off := 4
	for range 4 {
		for stream[off]&0x80 != 0 {
			off++
		}
		off++
	}
	sub := Flags(stream[off])
	require.True(t, sub.Has(FlagNoSize))
	require.True(t, sub.Has(FlagPack))
	require.False(t, sub.Has(FlagStripe))
}

func TestEncode_Compresses(t *testing.T) {
	src := testDatasets()["qualities"]
	for _, flags := range []Flags{0, FlagOrder, FlagPack, FlagOrder | FlagPack} {
		stream, err := Encode(src, flags)
		require.NoError(t, err)
		require.Less(t, len(stream), len(src)/2, flags.String())
	}
}
