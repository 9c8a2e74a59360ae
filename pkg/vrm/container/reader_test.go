package container

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vrmerrors "github.com/provide-io/vrmsort/pkg/vrm/errors"
)

const sampleDoc = `{"asset":{"version":"2.0"},"extensions":{"VRM":{"meta":{"title":"Alicia"}}}}`

func testReader() *Reader {
	return NewReaderWithLogger(hclog.New(&hclog.LoggerOptions{
		Name:  "reader_test",
		Level: hclog.Trace,
	}))
}

func TestHeaderPackUnpack(t *testing.T) {
	h := Header{Version: 2, TotalLength: 1234, ChunkLength: 56, ChunkType: ChunkTypeJSON}
	copy(h.Magic[:], MagicBytes)

	packed := h.Pack()
	require.Len(t, packed, HeaderSize)
	assert.Equal(t, []byte("glTF"), packed[:4])
	assert.Equal(t, []byte{56, 0, 0, 0}, packed[ChunkLengthOffset:ChunkTypeOffset])

	var got Header
	require.NoError(t, got.Unpack(packed))
	assert.Equal(t, h, got)
}

func TestParseValidContainer(t *testing.T) {
	data := Encode([]byte(sampleDoc), []byte("BIN\x00\x01\x02\x03\x04"))

	c, err := testReader().Parse("/models/alicia.vrm", data)
	require.NoError(t, err)

	assert.Equal(t, "alicia.vrm", c.Name)
	assert.Equal(t, uint32(ContainerVersion), c.Header.Version)
	assert.Equal(t, sampleDoc, string(c.Payload))
	assert.Equal(t, Checksum(data), c.Checksum)

	root, ok := c.Document.(map[string]any)
	require.True(t, ok)
	assert.Contains(t, root, "extensions")
}

func TestParseIsDeterministic(t *testing.T) {
	data := Encode([]byte(sampleDoc), nil)
	r := testReader()

	a, err := r.Parse("a.vrm", data)
	require.NoError(t, err)
	b, err := r.Parse("a.vrm", data)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestParseErrors(t *testing.T) {
	valid := Encode([]byte(sampleDoc), nil)

	badMagic := append([]byte{}, valid...)
	copy(badMagic, "GLTF")

	longChunk := append([]byte{}, valid...)
	longChunk[ChunkLengthOffset] = 0xFF
	longChunk[ChunkLengthOffset+1] = 0xFF

	tests := []struct {
		name string
		data []byte
		kind error
	}{
		{name: "empty", data: nil, kind: vrmerrors.ErrInvalidMagic},
		{name: "bad magic", data: badMagic, kind: vrmerrors.ErrInvalidMagic},
		{name: "header cut short", data: valid[:12], kind: vrmerrors.ErrTruncated},
		{name: "chunk past end", data: longChunk, kind: vrmerrors.ErrTruncated},
		{name: "invalid utf8", data: Encode([]byte("{\"a\":\"\xff\xfe\"}"), nil), kind: vrmerrors.ErrInvalidPayload},
		{name: "invalid json", data: Encode([]byte(`{"extensions":`), nil), kind: vrmerrors.ErrInvalidPayload},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := testReader().Parse("broken.vrm", tt.data)
			require.Error(t, err)
			assert.Nil(t, c)
			assert.ErrorIs(t, err, tt.kind)

			var fe *vrmerrors.FormatError
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, "broken.vrm", fe.File)
			assert.True(t, vrmerrors.IsPerFile(err))
		})
	}
}

func TestReadLeavesSourceUntouched(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.vrm")
	data := Encode([]byte(sampleDoc), nil)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	c, err := NewReader().Read(path)
	require.NoError(t, err)
	assert.Equal(t, path, c.Path)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, data, after)
}

func TestReadMissingFile(t *testing.T) {
	_, err := NewReader().Read(filepath.Join(t.TempDir(), "nope.vrm"))
	assert.True(t, os.IsNotExist(err))
}

func TestEncodePadsChunk(t *testing.T) {
	data := Encode([]byte(`{}`), nil)
	var h Header
	require.NoError(t, h.Unpack(data))
	assert.Equal(t, uint32(4), h.ChunkLength)
	assert.Equal(t, uint32(len(data)), h.TotalLength)
	assert.Equal(t, "{}  ", string(data[ChunkDataOffset:]))
}
