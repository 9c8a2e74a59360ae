package container

import (
	"bytes"
	"encoding/binary"
	"fmt"

	vrmerrors "github.com/provide-io/vrmsort/pkg/vrm/errors"
)

// Header is the fixed 20-byte prefix: the file header followed by the
// header of the first chunk.
type Header struct {
	Magic       [4]byte
	Version     uint32 // read, never interpreted
	TotalLength uint32 // read, never interpreted
	ChunkLength uint32 // byte length of the JSON chunk
	ChunkType   uint32
}

// Pack serializes the header to bytes
func (h *Header) Pack() []byte {
	buf := make([]byte, HeaderSize)

	copy(buf[MagicOffset:VersionOffset], h.Magic[:])
	binary.LittleEndian.PutUint32(buf[VersionOffset:TotalLengthOffset], h.Version)
	binary.LittleEndian.PutUint32(buf[TotalLengthOffset:ChunkLengthOffset], h.TotalLength)
	binary.LittleEndian.PutUint32(buf[ChunkLengthOffset:ChunkTypeOffset], h.ChunkLength)
	binary.LittleEndian.PutUint32(buf[ChunkTypeOffset:ChunkDataOffset], h.ChunkType)

	return buf
}

// Unpack deserializes the header from the start of data. The magic token is
// checked before anything else so a foreign file always reports as such.
func (h *Header) Unpack(data []byte) error {
	if len(data) < len(MagicBytes) || !bytes.Equal(data[:len(MagicBytes)], MagicBytes) {
		return vrmerrors.ErrInvalidMagic
	}
	if len(data) < HeaderSize {
		return fmt.Errorf("%w: %d bytes, header needs %d", vrmerrors.ErrTruncated, len(data), HeaderSize)
	}

	copy(h.Magic[:], data[MagicOffset:VersionOffset])
	h.Version = binary.LittleEndian.Uint32(data[VersionOffset:TotalLengthOffset])
	h.TotalLength = binary.LittleEndian.Uint32(data[TotalLengthOffset:ChunkLengthOffset])
	h.ChunkLength = binary.LittleEndian.Uint32(data[ChunkLengthOffset:ChunkTypeOffset])
	h.ChunkType = binary.LittleEndian.Uint32(data[ChunkTypeOffset:ChunkDataOffset])

	return nil
}

// Encode builds a minimal container around a JSON document: header, one
// JSON chunk padded with spaces to a 4-byte boundary, then any trailing
// bytes verbatim (binary chunks the reader must ignore).
func Encode(document []byte, trailing []byte) []byte {
	padded := document
	if rem := len(padded) % 4; rem != 0 {
		padded = append(append([]byte{}, padded...), bytes.Repeat([]byte(" "), 4-rem)...)
	}

	h := Header{
		Version:     ContainerVersion,
		TotalLength: uint32(HeaderSize + len(padded) + len(trailing)),
		ChunkLength: uint32(len(padded)),
		ChunkType:   ChunkTypeJSON,
	}
	copy(h.Magic[:], MagicBytes)

	out := make([]byte, 0, h.TotalLength)
	out = append(out, h.Pack()...)
	out = append(out, padded...)
	out = append(out, trailing...)
	return out
}
