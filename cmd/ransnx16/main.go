// Command ransnx16 decodes, encodes and benchmarks CRAM rANS Nx16 streams.
//
// Usage:
//
//	ransnx16 decode -in block.bin [-size N] [-out payload.bin] [-checksum]
//	ransnx16 encode -in payload.bin -flags order,pack,rle [-out block.bin]
//	ransnx16 compare -in block.bin [-raw] [-size N]
package main

import (
	"fmt"
	"io"
	"log"
	"os"
)

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: ransnx16 <decode|encode|compare> [flags]")
	fmt.Fprintln(w, "run 'ransnx16 <command> -h' for command flags")
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("ransnx16: ")

	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdout io.Writer) error {
	if len(args) == 0 {
		usage(os.Stderr)
		return fmt.Errorf("missing command")
	}

	switch args[0] {
	case "decode":
		return decodeCmd(args[1:], stdout)
	case "encode":
		return encodeCmd(args[1:], stdout)
	case "compare":
		return compareCmd(args[1:], stdout)
	case "help", "-h", "-help":
		usage(stdout)
		return nil
	default:
		usage(os.Stderr)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

// readInput reads path, with "-" meaning stdin.
func readInput(path string) ([]byte, error) {
	if path == "" {
		return nil, fmt.Errorf("-in is required")
	}
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}

	return os.ReadFile(path)
}

// writeOutput writes data to path, or to stdout when path is "" or "-".
func writeOutput(path string, data []byte, stdout io.Writer) error {
	if path == "" || path == "-" {
		_, err := stdout.Write(data)
		return err
	}

	return os.WriteFile(path, data, 0o644) //nolint:gosec
}
