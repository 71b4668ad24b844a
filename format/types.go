package format

type (
	// BlockMethod is the compression method byte of a CRAM block header.
	BlockMethod uint8
	// CompressionType selects a general-purpose codec for archiving decoded
	// payloads outside CRAM.
	CompressionType uint8
)

const (
	MethodRaw           BlockMethod = 0 // MethodRaw stores the block uncompressed.
	MethodGzip          BlockMethod = 1 // MethodGzip is deflate in a gzip member.
	MethodBzip2         BlockMethod = 2 // MethodBzip2 is a bzip2 stream.
	MethodLZMA          BlockMethod = 3 // MethodLZMA is an xz container.
	MethodRans4x8       BlockMethod = 4 // MethodRans4x8 is the CRAM 3.0 rANS codec.
	MethodRansNx16      BlockMethod = 5 // MethodRansNx16 is the CRAM 3.1 rANS codec.
	MethodArith         BlockMethod = 6 // MethodArith is the adaptive arithmetic coder.
	MethodFqzcomp       BlockMethod = 7 // MethodFqzcomp is the quality score model.
	MethodNameTokenizer BlockMethod = 8 // MethodNameTokenizer is the read name tokenizer.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (m BlockMethod) String() string {
	switch m {
	case MethodRaw:
		return "raw"
	case MethodGzip:
		return "gzip"
	case MethodBzip2:
		return "bzip2"
	case MethodLZMA:
		return "lzma"
	case MethodRans4x8:
		return "rans4x8"
	case MethodRansNx16:
		return "ransNx16"
	case MethodArith:
		return "arith"
	case MethodFqzcomp:
		return "fqzcomp"
	case MethodNameTokenizer:
		return "tok3"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
