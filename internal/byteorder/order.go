package byteorder

import (
	"fmt"
	"strings"
	"unsafe"
)

// Order is a storage byte order.
type Order int

const (
	LittleEndian Order = iota // least significant byte first
	BigEndian                 // most significant byte first
)

// String returns "big-endian" or "little-endian".
func (o Order) String() string {
	if o == BigEndian {
		return "big-endian"
	}
	return "little-endian"
}

// ParseOrder accepts "big", "be", "big-endian", "little", "le" and
// "little-endian" in any case.
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "big", "be", "big-endian":
		return BigEndian, nil
	case "little", "le", "little-endian":
		return LittleEndian, nil
	default:
		return LittleEndian, fmt.Errorf("unknown byte order %q: expected big or little", s)
	}
}

var hostOrder = probeHostOrder()

// probeHostOrder stores 1 in a uint32 and looks at the byte at its lowest
// address.
func probeHostOrder() Order {
	var one uint32 = 1
	if *(*byte)(unsafe.Pointer(&one)) == 1 {
		return LittleEndian
	}
	return BigEndian
}

// IsHostLittleEndian reports whether the CPU running the process stores the
// least significant byte first.
func IsHostLittleEndian() bool {
	return hostOrder == LittleEndian
}

// HostOrder returns the byte order of the running CPU.
func HostOrder() Order {
	return hostOrder
}
