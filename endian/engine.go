// Package endian provides the byte order engine used by htscodec readers and
// writers.
//
// It combines binary.ByteOrder and binary.AppendByteOrder into one
// EndianEngine interface, so the same value can decode fixed-width fields in
// place and append them while encoding:
//
//	engine := endian.GetLittleEndianEngine()
//	state := engine.Uint32(buf[0:4])
//	out = engine.AppendUint32(out, state)
//
// Every multi-byte integer in CRAM codec payloads (rANS lane states,
// renormalisation words) is little-endian, so GetLittleEndianEngine is the
// engine used throughout the module. The big-endian engine exists for
// tests that must prove a reader honours the engine it is given.
//
// All engines are immutable and safe for concurrent use.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary.
//
// binary.LittleEndian and binary.BigEndian both satisfy it.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine used by CRAM payloads.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// IsLittleEndian reports whether engine orders bytes least-significant first.
func IsLittleEndian(engine EndianEngine) bool {
	return engine.Uint16([]byte{0x01, 0x00}) == 1
}
