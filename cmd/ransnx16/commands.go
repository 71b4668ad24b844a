package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"text/tabwriter"

	"github.com/arloliu/htscodec/compress"
	"github.com/arloliu/htscodec/format"
	"github.com/arloliu/htscodec/internal/hash"
	"github.com/arloliu/htscodec/ransnx16"
)

func decodeCmd(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("decode", flag.ContinueOnError)
	in := fs.String("in", "", "compressed rANS Nx16 stream (- for stdin)")
	out := fs.String("out", "", "output file (default stdout)")
	size := fs.Int("size", -1, "uncompressed size for streams written with nosize")
	maxLen := fs.Int("max", ransnx16.DefaultMaxLength, "largest uncompressed length to accept")
	workers := fs.Int("j", 1, "goroutines used for stripe sub-streams")
	checksum := fs.Bool("checksum", false, "print length and xxHash64 of the output instead of the bytes")
	if err := fs.Parse(args); err != nil {
		return err
	}

	src, err := readInput(*in)
	if err != nil {
		return err
	}

	decoder, err := ransnx16.NewDecoder(
		ransnx16.WithMaxLength(*maxLen),
		ransnx16.WithStripeConcurrency(*workers),
	)
	if err != nil {
		return err
	}

	data, err := decoder.Decode(src, *size)
	if err != nil {
		return err
	}

	if *checksum {
		var flags ransnx16.Flags
		if len(src) > 0 {
			flags = ransnx16.Flags(src[0])
		}
		_, err = fmt.Fprintf(stdout, "flags=%s len=%d xxh64=%s\n", flags, len(data), hash.Hex(data))

		return err
	}

	return writeOutput(*out, data, stdout)
}

func encodeCmd(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("encode", flag.ContinueOnError)
	in := fs.String("in", "", "input file (- for stdin)")
	out := fs.String("out", "", "output file (default stdout)")
	flagList := fs.String("flags", "order", "comma separated flags: order,n32,stripe,pack,rle,cat,nosize")
	if err := fs.Parse(args); err != nil {
		return err
	}

	flags, err := ransnx16.ParseFlags(*flagList)
	if err != nil {
		return err
	}

	src, err := readInput(*in)
	if err != nil {
		return err
	}

	stream, err := ransnx16.Encode(src, flags)
	if err != nil {
		return err
	}
	if len(stream) > 0 && ransnx16.Flags(stream[0]) != flags {
		log.Printf("requested %s, wrote %s", flags, ransnx16.Flags(stream[0]))
	}

	return writeOutput(*out, stream, stdout)
}

// compareFlags are the rANS Nx16 variants compare reports on.
var compareFlags = []ransnx16.Flags{
	0,
	ransnx16.FlagOrder,
	ransnx16.FlagN32 | ransnx16.FlagOrder,
	ransnx16.FlagOrder | ransnx16.FlagPack | ransnx16.FlagRLE,
	ransnx16.FlagStripe | ransnx16.FlagOrder,
}

func compareCmd(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("compare", flag.ContinueOnError)
	in := fs.String("in", "", "rANS Nx16 stream, or raw payload with -raw (- for stdin)")
	raw := fs.Bool("raw", false, "treat the input as an uncompressed payload")
	size := fs.Int("size", -1, "uncompressed size for streams written with nosize")
	if err := fs.Parse(args); err != nil {
		return err
	}

	payload, err := readInput(*in)
	if err != nil {
		return err
	}
	if !*raw {
		if payload, err = ransnx16.Decode(payload, *size); err != nil {
			return err
		}
	}

	codecs, err := compareCodecs()
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "codec\tsize\tratio\tsaved\tcompress\tdecompress\n")
	for _, codec := range codecs {
		stats, err := compress.Measure(codec, payload)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%s\t%d\t%.3f\t%.1f%%\t%s\t%s\n",
			stats.Algorithm, stats.CompressedSize, stats.CompressionRatio(), stats.SpaceSavings(),
			nsString(stats.CompressionTimeNs), nsString(stats.DecompressionTimeNs))
	}

	return tw.Flush()
}

func compareCodecs() ([]compress.Codec, error) {
	var codecs []compress.Codec
	for _, flags := range compareFlags {
		codec, err := compress.NewRansNx16Codec(flags)
		if err != nil {
			return nil, err
		}
		codecs = append(codecs, codec)
	}

	for _, method := range []format.BlockMethod{format.MethodGzip, format.MethodBzip2, format.MethodLZMA} {
		codec, err := compress.GetCodec(method)
		if err != nil {
			return nil, err
		}
		codecs = append(codecs, codec)
	}

	for _, typ := range []format.CompressionType{format.CompressionZstd, format.CompressionS2, format.CompressionLZ4} {
		codec, err := compress.GetArchiveCodec(typ)
		if err != nil {
			return nil, err
		}
		codecs = append(codecs, codec)
	}

	return codecs, nil
}

func nsString(ns int64) string {
	switch {
	case ns >= 1e9:
		return fmt.Sprintf("%.2fs", float64(ns)/1e9)
	case ns >= 1e6:
		return fmt.Sprintf("%.2fms", float64(ns)/1e6)
	case ns >= 1e3:
		return fmt.Sprintf("%.2fus", float64(ns)/1e3)
	default:
		return fmt.Sprintf("%dns", ns)
	}
}
