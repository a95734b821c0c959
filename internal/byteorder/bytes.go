package byteorder

import "math"

// The decoders below assemble values one byte at a time and never
// reinterpret the slice as a wider type, so b need not be aligned. Like
// encoding/binary they panic if b is shorter than the value width.

// BytesToU16 decodes a little-endian uint16 from b[0:2].
func BytesToU16(b []byte) uint16 {
	_ = b[1]
	return uint16(b[0]) | uint16(b[1])<<8
}

// BytesToU32 decodes a little-endian uint32 from b[0:4].
func BytesToU32(b []byte) uint32 {
	_ = b[3]
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

// Decode16 decodes a uint16 stored in the given order.
func Decode16(order Order, b []byte) uint16 {
	if order == BigEndian {
		_ = b[1]
		return uint16(b[1]) | uint16(b[0])<<8
	}
	return BytesToU16(b)
}

// Decode32 decodes a uint32 stored in the given order.
func Decode32(order Order, b []byte) uint32 {
	if order == BigEndian {
		_ = b[3]
		return uint32(b[3]) | uint32(b[2])<<8 | uint32(b[1])<<16 | uint32(b[0])<<24
	}
	return BytesToU32(b)
}

// DecodeFloat32 decodes an IEEE-754 float stored in the given order.
func DecodeFloat32(order Order, b []byte) float32 {
	return math.Float32frombits(Decode32(order, b))
}
