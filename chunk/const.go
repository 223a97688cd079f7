package chunk

import "math"

// Property bit masks for the four type code bytes. Bit 5 (value 0x20) of each
// byte carries one semantic flag; it doubles as the ASCII case bit, so a
// lowercase letter means the flag is set.
const (
	PropertyBitMask = 0x20 // bit 5 of a type code byte

	AncillaryByte  = 0 // byte 1: set=ancillary, unset=critical
	PrivateByte    = 1 // byte 2: set=private, unset=public
	ReservedByte   = 2 // byte 3: set=reserved bit violated
	SafeToCopyByte = 3 // byte 4: set=safe to copy
)

// Field sizes and offsets in the chunk wire format.
const (
	LengthFieldSize = 4 // big-endian uint32 payload length
	TypeCodeSize    = 4 // ASCII letter bytes
	CrcFieldSize    = 4 // big-endian uint32 CRC-32/ISO-HDLC

	// TypeCodeOffset is the byte offset of the type code within a record.
	TypeCodeOffset = LengthFieldSize
	// DataOffset is the byte offset of the payload within a record.
	DataOffset = LengthFieldSize + TypeCodeSize

	// FramingOverhead is the wire size of a record minus its payload:
	// length field + type code + CRC field.
	FramingOverhead = LengthFieldSize + TypeCodeSize + CrcFieldSize

	// MaxDataLength is the largest payload representable by the 32-bit
	// length field.
	MaxDataLength = math.MaxUint32
)
