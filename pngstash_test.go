package pngstash

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pngstash/pngstash/chunk"
	"github.com/pngstash/pngstash/errs"
	"github.com/pngstash/pngstash/png"
)

// testFile builds a minimal PNG-framed file with a couple of carrier chunks.
func testFile(t *testing.T) []byte {
	t.Helper()

	first, err := chunk.ParseChunkType("FrSt")
	require.NoError(t, err)
	last, err := chunk.ParseChunkType("LASt")
	require.NoError(t, err)

	p := png.FromChunks([]*chunk.Chunk{
		chunk.NewChunk(first, []byte("I am the first chunk")),
		chunk.NewChunk(last, []byte("I am the last chunk")),
	})

	return p.Bytes()
}

func TestEncodeDecodeMessage(t *testing.T) {
	data := testFile(t)

	out, err := EncodeMessage(data, "ruSt", "This is where your secret message will be!")
	require.NoError(t, err)
	require.NotEqual(t, data, out)

	// The original chunks still lead the file
	require.Equal(t, data, out[:len(data)])

	msg, err := DecodeMessage(out, "ruSt")
	require.NoError(t, err)
	require.Equal(t, "This is where your secret message will be!", msg)
}

func TestEncodeMessage_InvalidCode(t *testing.T) {
	data := testFile(t)

	_, err := EncodeMessage(data, "toolong", "msg")
	require.ErrorIs(t, err, errs.ErrInvalidTypeLength)

	_, err = EncodeMessage(data, "ru5t", "msg")
	require.ErrorIs(t, err, errs.ErrInvalidTypeByte)
}

func TestEncodeMessage_NotAPng(t *testing.T) {
	_, err := EncodeMessage([]byte("definitely not a png"), "ruSt", "msg")
	require.ErrorIs(t, err, errs.ErrInvalidSignature)
}

func TestDecodeMessage_NotFound(t *testing.T) {
	_, err := DecodeMessage(testFile(t), "NoPe")
	require.ErrorIs(t, err, errs.ErrChunkNotFound)
}

func TestRemoveMessage(t *testing.T) {
	data := testFile(t)

	out, err := EncodeMessage(data, "ruSt", "ephemeral")
	require.NoError(t, err)

	msg, cleaned, err := RemoveMessage(out, "ruSt")
	require.NoError(t, err)
	require.Equal(t, "ephemeral", msg)

	// Removal restores the original bytes
	require.Equal(t, data, cleaned)

	_, err = DecodeMessage(cleaned, "ruSt")
	require.ErrorIs(t, err, errs.ErrChunkNotFound)
}

func TestRemoveMessage_NotFound(t *testing.T) {
	_, _, err := RemoveMessage(testFile(t), "NoPe")
	require.ErrorIs(t, err, errs.ErrChunkNotFound)
}

func TestListChunks(t *testing.T) {
	listing, err := ListChunks(testFile(t))
	require.NoError(t, err)
	require.Contains(t, listing, "FrSt")
	require.Contains(t, listing, "LASt")
}

func TestListChunks_EmptyFile(t *testing.T) {
	listing, err := ListChunks(png.Signature[:])
	require.NoError(t, err)
	require.NotContains(t, listing, "Chunk{")
}
