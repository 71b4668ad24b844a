package encoding

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/htscodec/endian"
)

func TestAppendUint7_KnownEncodings(t *testing.T) {
	tests := []struct {
		name  string
		value uint32
		want  []byte
	}{
		{"zero", 0, []byte{0x00}},
		{"one byte max", 0x7f, []byte{0x7f}},
		{"two bytes min", 0x80, []byte{0x81, 0x00}},
		{"4096", 4096, []byte{0xa0, 0x00}},
		{"three bytes", 0x4000, []byte{0x81, 0x80, 0x00}},
		{"max uint32", math.MaxUint32, []byte{0x8f, 0xff, 0xff, 0xff, 0x7f}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AppendUint7(nil, tt.value)
			require.Equal(t, tt.want, got)
			require.Equal(t, len(tt.want), Uint7Len(tt.value))

			c := NewCursor(got, endian.GetLittleEndianEngine())
			v, err := c.ReadUint7()
			require.NoError(t, err)
			require.Equal(t, tt.value, v)
			require.Zero(t, c.Len())
		})
	}
}

func TestAppendUint7_AppendsToExisting(t *testing.T) {
	dst := []byte{0xaa}
	dst = AppendUint7(dst, 300)
	require.Equal(t, []byte{0xaa, 0x82, 0x2c}, dst)
}
