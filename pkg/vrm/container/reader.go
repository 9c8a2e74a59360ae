package container

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/hashicorp/go-hclog"

	vrmerrors "github.com/provide-io/vrmsort/pkg/vrm/errors"
)

// Container is a fully loaded file. It is only ever returned whole: a load
// that fails at any step yields no Container at all.
type Container struct {
	Path     string
	Name     string // base name, used as the file identifier downstream
	Header   Header
	Payload  []byte // JSON chunk text, surrounding whitespace removed
	Document any    // parsed Payload
	Checksum string
}

// Reader loads containers from disk
type Reader struct {
	logger hclog.Logger
}

// NewReader creates a reader that logs nothing
func NewReader() *Reader {
	return NewReaderWithLogger(hclog.NewNullLogger())
}

// NewReaderWithLogger creates a reader with a custom logger
func NewReaderWithLogger(logger hclog.Logger) *Reader {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Reader{logger: logger}
}

// Read loads the file at path. The source file is opened read-only and
// never modified.
func (r *Reader) Read(path string) (*Container, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return r.Parse(path, data)
}

// Parse decodes an in-memory container. path only labels the result and
// any error.
func (r *Reader) Parse(path string, data []byte) (*Container, error) {
	name := filepath.Base(path)

	var header Header
	if err := header.Unpack(data); err != nil {
		return nil, &vrmerrors.FormatError{File: name, Err: err}
	}

	end := uint64(ChunkDataOffset) + uint64(header.ChunkLength)
	if end > uint64(len(data)) {
		return nil, vrmerrors.NewFormatError(name, vrmerrors.ErrTruncated,
			fmt.Errorf("chunk of %d bytes exceeds file size %d", header.ChunkLength, len(data)))
	}

	r.logger.Debug("Found JSON chunk", "file", name, "version", header.Version, "chunk_length", header.ChunkLength)

	raw := data[ChunkDataOffset:end]
	if !utf8.Valid(raw) {
		return nil, vrmerrors.NewFormatError(name, vrmerrors.ErrInvalidPayload, fmt.Errorf("chunk is not valid UTF-8"))
	}
	payload := bytes.TrimSpace(raw)

	var document any
	if err := json.Unmarshal(payload, &document); err != nil {
		return nil, vrmerrors.NewFormatError(name, vrmerrors.ErrInvalidPayload, err)
	}

	if trailing := len(data) - int(end); trailing > 0 {
		r.logger.Trace("Ignoring trailing chunks", "file", name, "bytes", trailing)
	}

	return &Container{
		Path:     path,
		Name:     name,
		Header:   header,
		Payload:  payload,
		Document: document,
		Checksum: Checksum(data),
	}, nil
}
