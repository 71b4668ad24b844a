// Package encoding provides the primitive readers and writers shared by the
// CRAM codecs.
//
// Cursor is a bounds-checked reader over an immutable byte slice. Every read
// either succeeds completely or returns an error wrapping
// errs.ErrUnexpectedEOF, and the cursor never advances past the end of its
// input. Multi-byte fixed-width fields are read through an
// endian.EndianEngine.
//
// The uint7 helpers implement the CRAM variable-length unsigned integer:
// 7 value bits per byte, most significant group first, with the high bit of
// each byte set when another byte follows.
package encoding
