// Package errs defines the sentinel errors shared across pngstash packages.
//
// Call sites wrap these sentinels with fmt.Errorf("%w: ...") to attach the
// diagnostic values (offending byte, declared/available lengths, provided and
// computed CRC, requested type code). Callers classify failures with
// errors.Is against the sentinels declared here.
package errs

import "errors"

// Chunk type code errors.
var (
	// ErrInvalidTypeLength indicates a textual type code whose byte length
	// is not exactly 4.
	ErrInvalidTypeLength = errors.New("invalid chunk type code length")

	// ErrInvalidTypeByte indicates a type code byte outside the ASCII letter
	// ranges A-Z and a-z.
	ErrInvalidTypeByte = errors.New("invalid chunk type code byte")
)

// Chunk record parsing errors.
var (
	// ErrMissingDataLength indicates fewer than 4 bytes remained for the
	// length field.
	ErrMissingDataLength = errors.New("no data length provided")

	// ErrMissingChunkType indicates fewer than 4 bytes remained for the
	// type code field.
	ErrMissingChunkType = errors.New("no chunk type provided")

	// ErrDataLengthMismatch indicates the declared payload length exceeds
	// the bytes available.
	ErrDataLengthMismatch = errors.New("data length mismatch")

	// ErrMissingCrc indicates fewer than 4 bytes remained for the checksum
	// field after the payload.
	ErrMissingCrc = errors.New("no crc provided")

	// ErrCrcMismatch indicates the stored checksum does not match the
	// checksum computed over the type code and payload.
	ErrCrcMismatch = errors.New("crc mismatch")

	// ErrPayloadNotText indicates a chunk payload that is not valid UTF-8
	// and therefore cannot be rendered as text.
	ErrPayloadNotText = errors.New("chunk payload is not valid UTF-8")
)

// PNG container errors.
var (
	// ErrInvalidSignature indicates the input does not start with the fixed
	// 8-byte PNG file signature.
	ErrInvalidSignature = errors.New("invalid png signature")

	// ErrChunkNotFound indicates no chunk with the requested type code is
	// present in the container.
	ErrChunkNotFound = errors.New("chunk not found for type code")
)
