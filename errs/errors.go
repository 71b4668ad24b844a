// Package errs defines the sentinel errors returned by htscodec packages.
//
// Failure sites wrap one of these with context using fmt.Errorf and %w, so
// callers classify failures with errors.Is:
//
//	out, err := ransnx16.Decode(block, size)
//	if errors.Is(err, errs.ErrUnexpectedEOF) {
//	    // the block was truncated
//	}
package errs

import "errors"

// Input framing errors.
var (
	// ErrUnexpectedEOF is returned when the input ends before a fixed-size or
	// length-prefixed read completes.
	ErrUnexpectedEOF = errors.New("htscodec: unexpected end of input")
	// ErrInvalidLength is returned when a declared length is negative, does not
	// fit the platform int, or exceeds the configured decode limit.
	ErrInvalidLength = errors.New("htscodec: invalid length")
	// ErrInvalidData is returned for malformed payload content that has no more
	// specific error.
	ErrInvalidData = errors.New("htscodec: invalid data")
)

// Model errors.
var (
	// ErrInvalidAlphabet is returned when a symbol alphabet runs past symbol 255
	// or never reaches its terminator.
	ErrInvalidAlphabet = errors.New("htscodec: invalid alphabet")
	// ErrInvalidFrequencies is returned when a frequency table cannot be
	// normalised to its power-of-two total, or decoding reaches an empty table.
	ErrInvalidFrequencies = errors.New("htscodec: invalid frequency table")
)

// Transform errors.
var (
	// ErrLengthMismatch is returned when RLE or PACK expansion does not produce
	// exactly the declared pre-transform length.
	ErrLengthMismatch = errors.New("htscodec: transform length mismatch")
	// ErrInvalidPackSymbols is returned when a PACK header declares zero or more
	// than 16 symbols.
	ErrInvalidPackSymbols = errors.New("htscodec: invalid pack symbol count")
	// ErrInvalidStripe is returned when stripe counts or lengths cannot tile the
	// output buffer exactly.
	ErrInvalidStripe = errors.New("htscodec: invalid stripe layout")
	// ErrStripeDepth is returned when stripes nest deeper than the decoder allows.
	ErrStripeDepth = errors.New("htscodec: stripe nesting too deep")
)

// Block codec errors.
var (
	// ErrUnsupportedMethod is returned for block compression methods this module
	// cannot decode.
	ErrUnsupportedMethod = errors.New("htscodec: unsupported compression method")
	// ErrSizeMismatch is returned when a block decompresses to a size other than
	// the one declared by its framing.
	ErrSizeMismatch = errors.New("htscodec: decompressed size mismatch")
)
