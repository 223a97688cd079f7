// Package chunk defines the low-level binary structures of PNG chunk framing.
//
// This package provides the two value types the container format is built
// from, ensuring a consistent byte-level representation across platforms:
//
//  1. ChunkType: the validated 4-byte type code, whose bit pattern also
//     encodes the ancillary/critical, public/private, reserved and
//     safe-to-copy properties.
//  2. Chunk: the length-prefixed, checksummed record {length, type, data,
//     crc}.
//
// # Wire Format
//
// Each record is framed as:
//
//	length:u32 BE | type:4 ASCII letters | data:length bytes | crc:u32 BE
//
// where crc is CRC-32/ISO-HDLC computed over the type code and payload. The
// length and CRC fields are big-endian; see the endian package.
//
// # Invariants
//
// Both types are immutable after construction and validated at their
// boundaries: a ChunkType never holds a non-letter byte, and a successfully
// constructed or parsed Chunk always has length == len(data) and a CRC
// matching its contents. Malformed input is reported through the sentinel
// errors of the errs package, never silently corrected.
package chunk
