package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetUint16Slice(t *testing.T) {
	s, cleanup := GetUint16Slice(100)
	require.Len(t, s, 100)
	s[99] = 7
	cleanup()

	s, cleanup = GetUint16Slice(10)
	defer cleanup()
	require.Len(t, s, 10)
}

func TestGetUint32Slice_Zeroed(t *testing.T) {
	s, cleanup := GetUint32Slice(64)
	for i := range s {
		s[i] = uint32(i) + 1
	}
	cleanup()

	s, cleanup = GetUint32Slice(32)
	defer cleanup()
	require.Len(t, s, 32)
	for _, v := range s {
		require.Zero(t, v)
	}
}
