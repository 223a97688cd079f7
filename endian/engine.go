// Package endian provides byte order utilities for binary encoding and decoding.
//
// This package combines the ByteOrder and AppendByteOrder interfaces from the
// standard encoding/binary package into a unified EndianEngine interface, so
// codec code can both write into fixed slices and append to growing buffers
// through a single value.
//
// PNG chunk framing stores all multi-byte integer fields (record length and
// CRC) in network byte order, so codec packages obtain their engine through
// WireEngine:
//
//	engine := endian.WireEngine()
//	length := engine.Uint32(data[0:4])
//
// # Thread Safety
//
// All functions and methods in this package are safe for concurrent use.
// The returned EndianEngine instances are immutable and stateless.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from
// encoding/binary into a single interface for convenient byte order
// operations.
//
// This interface is satisfied by binary.BigEndian and binary.LittleEndian
// from the standard library, making it fully compatible with existing Go
// code while providing access to both read/write and append operations.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// WireEngine returns the engine for PNG chunk framing fields.
//
// The PNG wire format is big-endian; this is a compile-time property of the
// format, not a configuration knob.
func WireEngine() EndianEngine {
	return binary.BigEndian
}

// CheckEndianness uses a fixed integer value to determine the host's byte order.
func CheckEndianness() binary.ByteOrder {
	// 0x0100 is 256. For a little-endian system, the LSB (0x00) is first.
	// For a big-endian system, the MSB (0x01) is first.
	var i uint16 = 0x0100

	// Only the byte at the lowest memory address is needed.
	b := (*[2]byte)(unsafe.Pointer(&i))

	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsNativeLittleEndian reports whether the host stores integers little-endian.
func IsNativeLittleEndian() bool {
	return CheckEndianness() == binary.LittleEndian
}

// IsNativeBigEndian reports whether the host byte order matches the PNG wire
// order, in which case multi-byte reads need no byte swapping.
func IsNativeBigEndian() bool {
	return CheckEndianness() == binary.BigEndian
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
