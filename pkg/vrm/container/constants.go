package container

// Core layout constants of the binary container. These are fixed by the
// format and never change.

var (
	// MagicBytes opens every container.
	MagicBytes = []byte("glTF")
)

const (
	// Fixed offsets, all fields little-endian uint32
	MagicOffset       = 0
	VersionOffset     = 4
	TotalLengthOffset = 8
	ChunkLengthOffset = 12
	ChunkTypeOffset   = 16
	ChunkDataOffset   = 20

	// HeaderSize covers the file header plus the first chunk header
	HeaderSize = ChunkDataOffset

	// ContainerVersion is what Encode writes; readers accept any value
	ContainerVersion = 2

	// ChunkTypeJSON is the ASCII "JSON" chunk tag
	ChunkTypeJSON = 0x4E4F534A
)
