package chunk

import (
	"fmt"
	"hash/crc32"
	"unicode/utf8"

	"github.com/pngstash/pngstash/endian"
	"github.com/pngstash/pngstash/errs"
)

// Chunk is a single length-prefixed, checksummed record of a PNG file:
//
//	┌──────────────────────────────────────────────┐
//	│ Length (4 bytes, big-endian uint32)          │
//	├──────────────────────────────────────────────┤
//	│ Type code (4 ASCII letter bytes)             │
//	├──────────────────────────────────────────────┤
//	│ Data (Length bytes)                          │
//	├──────────────────────────────────────────────┤
//	│ CRC (4 bytes, big-endian uint32)             │
//	│  - CRC-32/ISO-HDLC over type code + data     │
//	└──────────────────────────────────────────────┘
//
// A Chunk is immutable after construction and always internally consistent:
// length equals len(data) and crc matches the type code and payload. It owns
// its payload; parsing copies the bytes out of the input buffer so a Chunk
// never aliases caller memory.
type Chunk struct {
	length    uint32
	chunkType ChunkType
	data      []byte
	crc       uint32
}

// NewChunk creates a Chunk from a type code and payload.
//
// The length and CRC fields are computed here and never supplied by the
// caller. Panics if len(data) exceeds MaxDataLength; that is a programmer
// error, not an input data error. The payload is copied, so the caller may
// reuse data afterwards.
func NewChunk(chunkType ChunkType, data []byte) *Chunk {
	if uint64(len(data)) > uint64(MaxDataLength) {
		panic(fmt.Sprintf("chunk payload of %d bytes exceeds 32-bit length field", len(data)))
	}

	owned := make([]byte, len(data))
	copy(owned, data)

	return &Chunk{
		length:    uint32(len(owned)),
		chunkType: chunkType,
		data:      owned,
		crc:       calculateCrc(chunkType, owned),
	}
}

// ParseChunk parses one chunk record from the start of data.
//
// Validation proceeds field by field, each step failing with its own
// sentinel from the errs package:
//
//  1. errs.ErrMissingDataLength if fewer than 4 bytes remain for the length.
//  2. errs.ErrMissingChunkType if fewer than 4 bytes remain for the type
//     code, or the type construction error for non-letter bytes.
//  3. errs.ErrDataLengthMismatch if fewer than the declared length bytes
//     remain for the payload.
//  4. errs.ErrMissingCrc if fewer than 4 bytes remain after the payload.
//  5. errs.ErrCrcMismatch if the stored CRC differs from the CRC computed
//     over type code and payload.
//
// Bytes past the CRC field are ignored; callers parsing a sequence of
// records advance their cursor by WireSize after each successful parse.
func ParseChunk(data []byte) (*Chunk, error) {
	engine := endian.WireEngine()

	if len(data) < LengthFieldSize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", errs.ErrMissingDataLength, len(data), LengthFieldSize)
	}
	length := engine.Uint32(data[0:LengthFieldSize])

	if len(data) < DataOffset {
		return nil, fmt.Errorf("%w: got %d bytes after length field, want %d",
			errs.ErrMissingChunkType, len(data)-TypeCodeOffset, TypeCodeSize)
	}

	var code [4]byte
	copy(code[:], data[TypeCodeOffset:DataOffset])
	chunkType, err := NewChunkType(code)
	if err != nil {
		return nil, err
	}

	available := len(data) - DataOffset
	if uint64(available) < uint64(length) {
		return nil, fmt.Errorf("%w: declared %d bytes, only %d available",
			errs.ErrDataLengthMismatch, length, available)
	}

	crcOffset := DataOffset + int(length)
	payload := make([]byte, length)
	copy(payload, data[DataOffset:crcOffset])

	if len(data) < crcOffset+CrcFieldSize {
		return nil, fmt.Errorf("%w: got %d bytes after payload, want %d",
			errs.ErrMissingCrc, len(data)-crcOffset, CrcFieldSize)
	}
	crc := engine.Uint32(data[crcOffset : crcOffset+CrcFieldSize])

	computed := calculateCrc(chunkType, payload)
	if crc != computed {
		return nil, fmt.Errorf("%w: stored %d, computed %d", errs.ErrCrcMismatch, crc, computed)
	}

	return &Chunk{
		length:    length,
		chunkType: chunkType,
		data:      payload,
		crc:       crc,
	}, nil
}

// Bytes serializes the chunk into its wire representation.
func (c *Chunk) Bytes() []byte {
	return c.AppendBytes(make([]byte, 0, c.WireSize()))
}

// AppendBytes appends the chunk's wire representation to buf and returns the
// extended slice. Used by the container serializer to build a whole file
// without intermediate allocations per chunk.
func (c *Chunk) AppendBytes(buf []byte) []byte {
	engine := endian.WireEngine()
	code := c.chunkType.Bytes()

	buf = engine.AppendUint32(buf, c.length)
	buf = append(buf, code[:]...)
	buf = append(buf, c.data...)
	buf = engine.AppendUint32(buf, c.crc)

	return buf
}

// WireSize returns the number of bytes the chunk occupies on the wire:
// framing overhead plus payload length.
func (c *Chunk) WireSize() int {
	return FramingOverhead + int(c.length)
}

// Length returns the payload length in bytes.
func (c *Chunk) Length() uint32 {
	return c.length
}

// Type returns the chunk's type code.
func (c *Chunk) Type() ChunkType {
	return c.chunkType
}

// Data returns the chunk's payload.
//
// The returned slice is the chunk's own buffer; callers must not modify it.
func (c *Chunk) Data() []byte {
	return c.data
}

// Crc returns the stored CRC-32/ISO-HDLC checksum.
func (c *Chunk) Crc() uint32 {
	return c.crc
}

// DataString renders the payload as text.
//
// Returns an error wrapping errs.ErrPayloadNotText if the payload is not
// valid UTF-8.
func (c *Chunk) DataString() (string, error) {
	if !utf8.Valid(c.data) {
		return "", fmt.Errorf("%w: type code %s", errs.ErrPayloadNotText, c.chunkType)
	}

	return string(c.data), nil
}

// String returns a structural summary of the chunk for listings.
func (c *Chunk) String() string {
	return fmt.Sprintf("Chunk{Length: %d, Type: %s, Data: %d bytes, Crc: %d}",
		c.length, c.chunkType, len(c.data), c.crc)
}

// calculateCrc computes the CRC-32/ISO-HDLC checksum over the type code
// followed by the payload. The IEEE table of hash/crc32 implements exactly
// this polynomial.
func calculateCrc(chunkType ChunkType, data []byte) uint32 {
	code := chunkType.Bytes()
	crc := crc32.Update(0, crc32.IEEETable, code[:])

	return crc32.Update(crc, crc32.IEEETable, data)
}
