// Package pngstash embeds and retrieves hidden messages inside valid PNG
// files without disturbing image data.
//
// PNG files are a sequence of length-prefixed, checksummed records called
// chunks. Decoders are required to ignore ancillary chunks they do not
// recognize, which makes the chunk stream a safe carrier for arbitrary
// auxiliary payloads: a message appended under an unused type code travels
// with the image and stays invisible to viewers.
//
// # Basic Usage
//
// Hiding and recovering a message:
//
//	import "github.com/pngstash/pngstash"
//
//	// data holds the bytes of a PNG file
//	out, err := pngstash.EncodeMessage(data, "ruSt", "the treasure is buried under the old oak")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// write out to disk, later read it back...
//
//	msg, err := pngstash.DecodeMessage(out, "ruSt")
//	// msg == "the treasure is buried under the old oak"
//
// # Package Structure
//
// This package provides convenient top-level operations over whole file
// buffers, simplifying the most common use cases. For fine-grained control
// over chunks and containers, use the chunk and png packages directly.
package pngstash

import (
	"fmt"

	"github.com/pngstash/pngstash/chunk"
	"github.com/pngstash/pngstash/errs"
	"github.com/pngstash/pngstash/png"
)

// EncodeMessage appends a new chunk carrying message under the given
// 4-character type code and returns the re-serialized file bytes.
//
// The input must be a structurally valid PNG file buffer; the original image
// chunks pass through untouched.
func EncodeMessage(data []byte, code string, message string) ([]byte, error) {
	p, err := png.ParsePng(data)
	if err != nil {
		return nil, err
	}

	ct, err := chunk.ParseChunkType(code)
	if err != nil {
		return nil, err
	}

	p.AppendChunk(chunk.NewChunk(ct, []byte(message)))

	return p.Bytes(), nil
}

// DecodeMessage returns the message stored under the given type code.
//
// Fails with errs.ErrChunkNotFound if no chunk carries the code, or
// errs.ErrPayloadNotText if the chunk's payload is not valid UTF-8.
func DecodeMessage(data []byte, code string) (string, error) {
	p, err := png.ParsePng(data)
	if err != nil {
		return "", err
	}

	c, ok := p.ChunkByType(code)
	if !ok {
		return "", fmt.Errorf("%w: %q", errs.ErrChunkNotFound, code)
	}

	return c.DataString()
}

// RemoveMessage detaches the first chunk stored under the given type code
// and returns both the removed message and the re-serialized file bytes
// without it.
//
// Fails with errs.ErrChunkNotFound if no chunk carries the code.
func RemoveMessage(data []byte, code string) (string, []byte, error) {
	p, err := png.ParsePng(data)
	if err != nil {
		return "", nil, err
	}

	c, err := p.RemoveChunk(code)
	if err != nil {
		return "", nil, err
	}

	message, err := c.DataString()
	if err != nil {
		return "", nil, err
	}

	return message, p.Bytes(), nil
}

// ListChunks returns a human-readable listing of the chunks present in the
// file, one structural summary per line.
func ListChunks(data []byte) (string, error) {
	p, err := png.ParsePng(data)
	if err != nil {
		return "", err
	}

	return p.String(), nil
}
