package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/htscodec/internal/hash"
)

func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	return path
}

func TestRun_EncodeDecode(t *testing.T) {
	payload := bytes.Repeat([]byte("IIIIIHHHGG##"), 300)
	in := writeTemp(t, "payload.bin", payload)
	stream := filepath.Join(t.TempDir(), "stream.bin")

	var out bytes.Buffer
	require.NoError(t, run([]string{"encode", "-in", in, "-flags", "order,rle,pack", "-out", stream}, &out))
	require.Zero(t, out.Len())

	out.Reset()
	require.NoError(t, run([]string{"decode", "-in", stream}, &out))
	require.Equal(t, payload, out.Bytes())

	out.Reset()
	require.NoError(t, run([]string{"decode", "-in", stream, "-checksum", "-j", "4"}, &out))
	require.Contains(t, out.String(), "len=3600")
	require.Contains(t, out.String(), "xxh64="+hash.Hex(payload))
}

func TestRun_NoSize(t *testing.T) {
	payload := []byte("noodles")
	in := writeTemp(t, "payload.bin", payload)

	var stream bytes.Buffer
	require.NoError(t, run([]string{"encode", "-in", in, "-flags", "cat,nosize"}, &stream))
	path := writeTemp(t, "stream.bin", stream.Bytes())

	var out bytes.Buffer
	require.Error(t, run([]string{"decode", "-in", path}, &out))
	require.NoError(t, run([]string{"decode", "-in", path, "-size", "7"}, &out))
	require.Equal(t, payload, out.Bytes())
}

func TestRun_Compare(t *testing.T) {
	payload := bytes.Repeat([]byte("ACGTTGCA"), 500)
	in := writeTemp(t, "payload.bin", payload)

	var out bytes.Buffer
	require.NoError(t, run([]string{"compare", "-in", in, "-raw"}, &out))

	text := out.String()
	for _, flags := range compareFlags {
		require.Equal(t, 1, strings.Count(text, fmt.Sprintf("ransNx16(%s) ", flags)), "row for %s", flags)
	}
	for _, name := range []string{"ransNx16(NONE)", "gzip", "bzip2", "lzma", "zstd", "s2", "lz4"} {
		require.Contains(t, text, name)
	}
	require.Equal(t, 1+len(compareFlags)+6, strings.Count(text, "\n"))
}

func TestRun_Errors(t *testing.T) {
	var out bytes.Buffer

	require.Error(t, run(nil, &out))
	require.Error(t, run([]string{"frobnicate"}, &out))
	require.Error(t, run([]string{"decode"}, &out))
	require.Error(t, run([]string{"encode", "-in", "x", "-flags", "bogus"}, &out))
	require.Error(t, run([]string{"decode", "-in", writeTemp(t, "bad.bin", []byte{0x00, 0x05})}, &out))
	require.NoError(t, run([]string{"help"}, &out))
}
