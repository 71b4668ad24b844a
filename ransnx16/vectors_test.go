package ransnx16

import (
	"encoding/hex"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// decodeVector is a captured stream with its expected plaintext. consumed is
// the number of stream bytes the decoder must read; anything after that is
// trailing data.
type decodeVector struct {
	name     string
	hex      string
	size     int
	want     string
	consumed int
}

var decodeVectors = []decodeVector{
	{name: "order0", hex: "00076465006c6e6f0073000101010103010026200000b80a0000d80a0000000400", size: 0, want: "noodles", consumed: 33},
	{name: "order1", hex: "0107c0006465006c6e6f007300000001000101020000000201000200050100010100030004010000000001000201000001000500040200000801000008010000000200", size: 0, want: "noodles", consumed: 67},
	{name: "stripe", hex: "0807041717171500026c6e000101000801000000010000800000008000000002656f0001010008010000000100008000000080000000026f730001010000010000080100008000000080000000016400010080000000800000008000000080000000020000000000000022008111017f00", size: 0, want: "noodles", consumed: 97},
	{name: "cat", hex: "20076e6f6f646c6573", size: 0, want: "noodles", consumed: 9},
	{name: "rle", hex: "400d06061701076f0002010100000100000c020000080200008000006465006c6e6f007300030101010101003a2000007c20000052010000080400", size: 0, want: "noooooooodles", consumed: 59},
	{name: "pack", hex: "80070664656c6e6f730404050012430001010101000c0200000002000008020000040200", size: 0, want: "noodles", consumed: 36},
	{name: "n32", hex: "042b206162180086025f5f5f5f821d5f5f813e5f5f5f5f5f5f827d5f5f813e5f813e813e5f5f5f5f5f624de8006f169a00a1d425003c8272007f8b9f03baddd0016a97a103e373710027b89f03bbc11c00b303a003e4cb0a0053690500dc8e15004a891500aca10200f3851500536905003b8f1500aca10200ce871500bfcd0a00eb881500268b1500a28c1500aca10200536905007d8e150094250700e4cb0a00aca1020001cd0a00", size: 0, want: "the quick brown fox jumps over the lazy dog", consumed: 169},
	{name: "order1 10 bit", hex: "0117a000206465006c6e6f007300000082000000820000008200820000000004880000010003880000020006880000028800000300058800000000018467000283190000000088000005975a080000010200ad53030097580800", size: 0, want: "noodles noodles noodles", consumed: 90},
	{name: "order1 compressed table", hex: "013cc18153813700010a192a2b002e33340037414344004f50005566670083858600888a8c9095a0008d3c8155812e4d13613a131313131374611313812e1313131313131313132674748155820f133a812e1313b65538006bcb241b7f8b0100961b9925b51be462c99249a9215ee847064dd8aa904df9048bd67791930ecbe7eedecbbb7655ea67b1f467bfa8c7d99a43bd993a9cfa20ff8f07f085e4c243e246f1cdb924c3622c6b1c36d3d989bf45b31f0202ffa6caec375a91ac581a0796be133bfb36018772f502ee0d0100c9cb066363b9c28e10f9", size: 0, want: "EDLACGMEILLPDDPOPPJCEDKIPFAGLEAJCILFLHKHGHMHGPLAAIPIGLOLLCHD", consumed: 216},
	{name: "rle raw meta", hex: "400d0706016f076465006c6e6f007300852e852a852a852a852a852ae6181200905b12000ef2020078050300", size: 0, want: "noooooooodles", consumed: 44},
	{name: "pack one symbol", hex: "800a014100", size: 0, want: "AAAAAAAAAA", consumed: 5},
	{name: "pack two symbols", hex: "800802414301a600a00000800000008000000080000000800000", size: 0, want: "ACCAACAC", consumed: 26},
	{name: "pack four symbols", hex: "800b0441434754031b24e4008a568a558a55b38a0100467501005e85010000800000", size: 0, want: "ACGTTGCAACG", consumed: 34},
	{name: "no size", hex: "106465006c6e6f0073008449844984498449891384491ba71800e94a0c00316d0c0008800300", size: 7, want: "noodles", consumed: 38},
}

// encodeVectors pin the exact bytes Encode writes.
var encodeVectors = []struct {
	name  string
	flags Flags
	src   string
	hex   string
}{
	{name: "order0", flags: 0x00, src: "noodles", hex: "00076465006c6e6f0073008449844984498449891384491ba71800e94a0c00316d0c0008800300"},
	{name: "order1", flags: 0x01, src: "noodles", hex: "0107c0006465006c6e6f0073000000880000018800900000000002a00000020005a0000001a000000300060006000600040200000801000008010000000200"},
	{name: "n32", flags: 0x04, src: "noodles", hex: "04076465006c6e6f007300844984498449844989138449e3860300a3bd0100a3bd0100088003009a84030051820300bf8d030000800000008000000080000000800000008000000080000000800000008000000080000000800000008000000080000000800000008000000080000000800000008000000080000000800000008000000080000000800000008000000080000000800000"},
	{name: "pack", flags: 0x80, src: "noodles", hex: "80070664656c6e6f73040405001243008800880088008800000c0200000002000008020000040200"},
	{name: "rle", flags: 0x40, src: "noooooooodles", hex: "400d0706016f076465006c6e6f007300852e852a852a852a852a852ae6181200905b12000ef2020078050300"},
	{name: "cat", flags: 0x20, src: "noodles", hex: "20076e6f6f646c6573"},
}

func mustHex(t testing.TB, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)

	return b
}

// testDatasets covers small, skewed, uniform and structured inputs.
func testDatasets() map[string][]byte {
	rng := rand.New(rand.NewPCG(1, 2)) //nolint:gosec

	pick := func(n int, alphabet string) []byte {
		out := make([]byte, n)
		for i := range out {
			out[i] = alphabet[rng.IntN(len(alphabet))]
		}
		return out
	}
	random := make([]byte, 3000)
	for i := range random {
		random[i] = byte(rng.IntN(256))
	}
	allBytes := make([]byte, 0, 768)
	for range 3 {
		for b := range 256 {
			allBytes = append(allBytes, byte(b))
		}
	}
	records := make([]byte, 0, 4000)
	for i := range 500 {
		records = append(records, byte(i), byte(i>>8), 'A', 'C', 0, 0, 0, byte(i%3))
	}

	return map[string][]byte{
		"empty":       {},
		"one byte":    []byte("a"),
		"noodles":     []byte("noodles"),
		"long run":    []byte("noooooooodles"),
		"alternating": []byte(strings.Repeat("ab", 100)),
		"bases":       pick(1000, "ACGT"),
		"random":      random,
		"qualities":   pick(5000, "!!!!!!!####IIIIIIII"),
		"constant":    []byte(strings.Repeat("A", 999)),
		"all bytes":   allBytes,
		"zeros tail":  append(make([]byte, 50), "xyz"...),
		"records":     records,
	}
}
