// Package ransnx16 implements the rANS Nx16 entropy codec used by CRAM
// data blocks (block compression method 5).
//
// A stream starts with a Flags byte and, unless FlagNoSize is set, a uint7
// uncompressed length. The body is then one of:
//
//   - STRIPE: a stripe count, the compressed size of each sub-stream, and
//     the sub-streams themselves. Each is a complete stream whose output is
//     interleaved with a stride of the lane count.
//   - An optional PACK header, an optional RLE header, and a core payload
//     that is raw (CAT), order-0 or order-1 rANS coded.
//
// Decoding undoes the layers in reverse: core decode, RLE expansion, then
// PACK expansion.
//
// # Usage
//
//	out, err := ransnx16.Decode(block, declaredSize)
//	if err != nil {
//	    return err
//	}
//
// A Decoder carries limits for untrusted input and can decode stripes in
// parallel:
//
//	dec, err := ransnx16.NewDecoder(
//	    ransnx16.WithMaxLength(64<<20),
//	    ransnx16.WithStripeConcurrency(4),
//	)
//
// Encode produces streams this package and other CRAM readers decode:
//
//	stream, err := ransnx16.Encode(qualities, ransnx16.FlagOrder|ransnx16.FlagPack)
//
// # Models
//
// Order-0 streams carry one 12-bit frequency table; byte i is decoded by
// lane i mod N. Order-1 streams carry one table per preceding byte, at a
// precision of up to 12 bits, optionally order-0 compressed; the output is
// split into N contiguous segments with the remainder on the last lane.
// Lane states are 32 bits, renormalised 16 bits at a time.
package ransnx16
