// Package png models a PNG file as its ordered sequence of chunk records.
//
// The model covers exactly the structural layer of the format: the fixed
// 8-byte file signature followed by back-to-back chunk records with no
// padding. It does not decode image data or police higher-level PNG rules
// (such as IHDR/IEND placement); it preserves chunk order byte-for-byte so
// that an unmutated parse/serialize cycle reproduces the input exactly.
//
// A Png value is not safe for concurrent mutation; callers that share one
// across goroutines must serialize access themselves.
package png

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/pngstash/pngstash/chunk"
	"github.com/pngstash/pngstash/errs"
	"github.com/pngstash/pngstash/internal/pool"
)

// SignatureSize is the length of the fixed PNG file signature.
const SignatureSize = 8

// Signature is the fixed byte sequence every PNG file starts with.
var Signature = [SignatureSize]byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}

// Png is an ordered sequence of chunk records plus the fixed file signature.
//
// The sequence order is significant: it represents the on-disk chunk order
// and is preserved across append/serialize/parse round trips. Removal shifts
// subsequent chunks forward without reordering them.
type Png struct {
	chunks []*chunk.Chunk
}

// New creates an empty Png holding no chunks.
func New() *Png {
	return &Png{}
}

// FromChunks creates a Png from an existing chunk sequence, preserving its
// order. The slice header is copied so later appends by the caller do not
// affect the container.
func FromChunks(chunks []*chunk.Chunk) *Png {
	owned := make([]*chunk.Chunk, len(chunks))
	copy(owned, chunks)

	return &Png{chunks: owned}
}

// ParsePng parses a full PNG file buffer.
//
// The first 8 bytes must match Signature, otherwise an error wrapping
// errs.ErrInvalidSignature is returned. The remainder is parsed as
// back-to-back chunk records; each record's offset is computed strictly as
// the previous record's end, and any leftover bytes that do not form a
// complete valid record fail the whole parse with that record's error.
// A partial container is never returned.
func ParsePng(data []byte) (*Png, error) {
	if len(data) < SignatureSize {
		return nil, fmt.Errorf("%w: got %d bytes, want at least %d", errs.ErrInvalidSignature, len(data), SignatureSize)
	}
	if !bytes.Equal(data[:SignatureSize], Signature[:]) {
		return nil, fmt.Errorf("%w: got % X", errs.ErrInvalidSignature, data[:SignatureSize])
	}

	p := New()
	for cursor := SignatureSize; cursor < len(data); {
		c, err := chunk.ParseChunk(data[cursor:])
		if err != nil {
			return nil, fmt.Errorf("chunk at offset %d: %w", cursor, err)
		}

		p.chunks = append(p.chunks, c)
		cursor += c.WireSize()
	}

	return p, nil
}

// Bytes serializes the container: the signature followed by every chunk's
// wire representation in sequence order.
//
// When no mutation occurred since ParsePng, the output is byte-identical to
// the parsed input.
func (p *Png) Bytes() []byte {
	buf := pool.GetFileBuffer()
	defer pool.PutFileBuffer(buf)

	buf.B = append(buf.B, Signature[:]...)
	for _, c := range p.chunks {
		buf.B = c.AppendBytes(buf.B)
	}

	return buf.CopyBytes()
}

// AppendChunk adds a chunk at the end of the sequence.
//
// No PNG structural rules are enforced here; appending after an existing
// IEND chunk or duplicating a critical chunk is the caller's concern.
func (p *Png) AppendChunk(c *chunk.Chunk) {
	p.chunks = append(p.chunks, c)
}

// ChunkByType returns the first chunk whose type code renders as codeText.
//
// Absence is not an error: the second return value reports whether a match
// was found, and the caller decides whether that is a failure.
func (p *Png) ChunkByType(codeText string) (*chunk.Chunk, bool) {
	for _, c := range p.chunks {
		if c.Type().String() == codeText {
			return c, true
		}
	}

	return nil, false
}

// RemoveChunk detaches and returns the first chunk whose type code renders
// as codeText. The remaining chunks keep their relative order.
//
// Returns an error wrapping errs.ErrChunkNotFound, carrying the requested
// code, if no chunk matches.
func (p *Png) RemoveChunk(codeText string) (*chunk.Chunk, error) {
	for i, c := range p.chunks {
		if c.Type().String() == codeText {
			p.chunks = append(p.chunks[:i], p.chunks[i+1:]...)
			return c, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", errs.ErrChunkNotFound, codeText)
}

// Chunks returns the chunk sequence in order.
//
// The returned slice is cloned to prevent external modification of the
// sequence; the chunks themselves are shared.
func (p *Png) Chunks() []*chunk.Chunk {
	out := make([]*chunk.Chunk, len(p.chunks))
	copy(out, p.chunks)

	return out
}

// ChunkCount returns the number of chunks in the container.
func (p *Png) ChunkCount() int {
	return len(p.chunks)
}

// String returns a multi-line listing with one structural summary per
// chunk, in sequence order. Purely presentational.
func (p *Png) String() string {
	var sb strings.Builder
	sb.WriteString("Png {\n")
	for _, c := range p.chunks {
		sb.WriteString("  ")
		sb.WriteString(c.String())
		sb.WriteString("\n")
	}
	sb.WriteString("}")

	return sb.String()
}
