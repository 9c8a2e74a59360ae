package pkg

import (
	"errors"

	vrmerrors "github.com/provide-io/vrmsort/pkg/vrm/errors"
)

// withFile stamps the file identifier onto a schema error raised by code
// that does not know which file it is looking at.
func withFile(err error, file string) error {
	var se *vrmerrors.SchemaError
	if errors.As(err, &se) && se.File == "" {
		return &vrmerrors.SchemaError{File: file, Err: se.Err}
	}
	return err
}
