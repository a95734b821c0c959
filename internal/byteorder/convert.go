package byteorder

import (
	"math"
	"math/bits"
)

// Converter converts values into the byte order of a particular host. The
// zero value describes a little-endian host; Host returns the converter for
// the running process.
type Converter struct {
	host Order
}

// NewConverter returns a Converter for a host with the given byte order.
func NewConverter(host Order) Converter {
	return Converter{host: host}
}

// Host returns the Converter for the running process.
func Host() Converter {
	return Converter{host: hostOrder}
}

// HostOrder returns the host byte order c converts into.
func (c Converter) HostOrder() Order { return c.host }

// ToHost16 converts v, loaded from storage in order from, to host order.
func (c Converter) ToHost16(from Order, v uint16) uint16 {
	if from == c.host {
		return v
	}
	return Swap16(v)
}

// ToHost32 converts v, loaded from storage in order from, to host order.
func (c Converter) ToHost32(from Order, v uint32) uint32 {
	if from == c.host {
		return v
	}
	return Swap32(v)
}

// BigEndianToHost16 converts a big-endian v to c's host order.
func (c Converter) BigEndianToHost16(v uint16) uint16 {
	return c.ToHost16(BigEndian, v)
}

// BigEndianToHost32 converts a big-endian v to c's host order.
func (c Converter) BigEndianToHost32(v uint32) uint32 {
	return c.ToHost32(BigEndian, v)
}

// LittleEndianToHost32 converts a little-endian v to c's host order.
func (c Converter) LittleEndianToHost32(v uint32) uint32 {
	return c.ToHost32(LittleEndian, v)
}

// BigEndianToHost16 byte-swaps v on a little-endian host and returns it
// unchanged on a big-endian one.
func BigEndianToHost16(v uint16) uint16 {
	return Host().BigEndianToHost16(v)
}

// BigEndianToHost32 byte-swaps v on a little-endian host and returns it
// unchanged on a big-endian one.
func BigEndianToHost32(v uint32) uint32 {
	return Host().BigEndianToHost32(v)
}

// LittleEndianToHost32 byte-swaps v on a big-endian host and returns it
// unchanged on a little-endian one.
func LittleEndianToHost32(v uint32) uint32 {
	return Host().LittleEndianToHost32(v)
}

// BigEndianFloatToHost reverses the four bytes of f's IEEE-754 encoding.
//
// Unlike the integer conversions it does not consult the host order; the
// bytes are reversed on big-endian hosts as well.
func BigEndianFloatToHost(f float32) float32 {
	return SwapFloat32(f)
}

// Swap16 reverses the byte order of v.
func Swap16(v uint16) uint16 {
	return bits.ReverseBytes16(v)
}

// Swap32 reverses the byte order of v (byte 0 with byte 3, byte 1 with byte 2).
func Swap32(v uint32) uint32 {
	return bits.ReverseBytes32(v)
}

// SwapFloat32 reverses the byte order of f's IEEE-754 encoding. The bits are
// moved without any floating-point arithmetic, so NaN payloads survive.
func SwapFloat32(f float32) float32 {
	return math.Float32frombits(bits.ReverseBytes32(math.Float32bits(f)))
}
