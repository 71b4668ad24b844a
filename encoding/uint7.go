package encoding

// MaxUint7Bytes is the longest uint7 encoding of a 32-bit value.
const MaxUint7Bytes = 5

// AppendUint7 appends the uint7 encoding of v to dst and returns the
// extended slice.
func AppendUint7(dst []byte, v uint32) []byte {
	n := Uint7Len(v)
	for i := n - 1; i > 0; i-- {
		dst = append(dst, byte(v>>(7*uint(i)))|0x80) //nolint:gosec
	}

	return append(dst, byte(v)&0x7f)
}

// Uint7Len returns the number of bytes AppendUint7 writes for v.
func Uint7Len(v uint32) int {
	n := 1
	for v >>= 7; v != 0; v >>= 7 {
		n++
	}

	return n
}
