package chunk

import (
	"fmt"

	"github.com/pngstash/pngstash/errs"
)

// ChunkType is a validated 4-byte chunk type code.
//
// Every byte is guaranteed to be an ASCII letter (A-Z or a-z) by
// construction. Bit 5 of each byte doubles as a property flag, queried
// through the Is* methods; the flags are derived from the code bytes and
// never stored separately.
//
// ChunkType is an immutable comparable value: two codes are equal iff their
// four bytes are identical, so values can be compared with == and used as
// map keys.
type ChunkType struct {
	code [4]byte
}

// NewChunkType creates a ChunkType from 4 raw bytes.
//
// Returns an error wrapping errs.ErrInvalidTypeByte, carrying the offending
// byte, if any byte is outside the ASCII letter ranges.
func NewChunkType(code [4]byte) (ChunkType, error) {
	for _, c := range code {
		if !isASCIILetter(c) {
			return ChunkType{}, fmt.Errorf("%w: %#02x (%q)", errs.ErrInvalidTypeByte, c, c)
		}
	}

	return ChunkType{code: code}, nil
}

// ParseChunkType creates a ChunkType from its textual form.
//
// The string must be exactly 4 bytes long; otherwise an error wrapping
// errs.ErrInvalidTypeLength, carrying the actual length, is returned.
// Letter validation is delegated to NewChunkType, so non-letter characters
// are still rejected.
func ParseChunkType(s string) (ChunkType, error) {
	if len(s) != TypeCodeSize {
		return ChunkType{}, fmt.Errorf("%w: got %d bytes, want %d", errs.ErrInvalidTypeLength, len(s), TypeCodeSize)
	}

	var code [4]byte
	copy(code[:], s)

	return NewChunkType(code)
}

// Bytes returns the 4 raw code bytes.
func (t ChunkType) Bytes() [4]byte {
	return t.code
}

// String returns the code as a 4-character string.
//
// Construction guarantees the bytes are ASCII letters, so the conversion is
// lossless and never re-validated here.
func (t ChunkType) String() string {
	return string(t.code[:])
}

// IsCritical reports whether the chunk is critical to displaying the image.
// Determined by bit 5 of the first byte: unset (uppercase) means critical.
func (t ChunkType) IsCritical() bool {
	return !t.propertyBit(AncillaryByte)
}

// IsAncillary reports whether the chunk is ancillary, i.e. safe for decoders
// to ignore. The inverse of IsCritical.
func (t ChunkType) IsAncillary() bool {
	return t.propertyBit(AncillaryByte)
}

// IsPublic reports whether the code belongs to the public registered set.
// Determined by bit 5 of the second byte: unset (uppercase) means public.
func (t ChunkType) IsPublic() bool {
	return !t.propertyBit(PrivateByte)
}

// IsPrivate reports whether the code is application-private. The inverse of
// IsPublic.
func (t ChunkType) IsPrivate() bool {
	return t.propertyBit(PrivateByte)
}

// IsReservedBitValid reports whether the reserved bit conforms, i.e. bit 5
// of the third byte is unset (uppercase).
func (t ChunkType) IsReservedBitValid() bool {
	return !t.propertyBit(ReservedByte)
}

// IsSafeToCopy reports whether editors that do not recognize the chunk may
// copy it to a modified file. Determined by bit 5 of the fourth byte: set
// (lowercase) means safe to copy.
func (t ChunkType) IsSafeToCopy() bool {
	return t.propertyBit(SafeToCopyByte)
}

// IsValid reports whether the code conforms to the chunk naming rules.
//
// Only the reserved bit participates; the private and safe-to-copy bits are
// informational and do not affect validity.
func (t ChunkType) IsValid() bool {
	return t.IsReservedBitValid()
}

func (t ChunkType) propertyBit(idx int) bool {
	return t.code[idx]&PropertyBitMask != 0
}

func isASCIILetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}
