// Package report renders UnifiedMetadata records as text, CSV or raw JSON.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/provide-io/vrmsort/pkg/messages"
	"github.com/provide-io/vrmsort/pkg/vrm/meta"
)

// headerWidth pads labels in the text report.
const headerWidth = 20

// WriteText prints one block per record: a title line followed by one
// "label: value" line per field.
func WriteText(w io.Writer, catalog *messages.Catalog, records []meta.UnifiedMetadata) error {
	for _, rec := range records {
		if _, err := fmt.Fprintf(w, "\n%s\n", catalog.Format(messages.LicenseInfoTitle, rec.FileName, rec.VRMVersion)); err != nil {
			return err
		}
		for _, field := range meta.Fields {
			if _, err := fmt.Fprintf(w, "%-*s: %s\n", headerWidth, catalog.Header(field), rec.Get(field)); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteCSV writes a header row and one row per record. The output starts
// with a UTF-8 byte order mark and rows end in CRLF, as spreadsheet tools
// expect.
func WriteCSV(w io.Writer, catalog *messages.Catalog, records []meta.UnifiedMetadata) error {
	bw := transform.NewWriter(w, unicode.UTF8BOM.NewEncoder())
	cw := csv.NewWriter(bw)
	cw.UseCRLF = true

	header := make([]string, len(meta.Fields))
	for i, field := range meta.Fields {
		header[i] = catalog.Header(field)
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, rec := range records {
		if err := cw.Write(rec.Values()); err != nil {
			return err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}
	return bw.Close()
}

// RawFile is one entry of the raw JSON dump.
type RawFile struct {
	Filename string          `json:"filename"`
	Metadata json.RawMessage `json:"metadata"`
}

// WriteJSON writes {"files": [...]} on a single line.
func WriteJSON(w io.Writer, files []RawFile) error {
	if files == nil {
		files = []RawFile{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(struct {
		Files []RawFile `json:"files"`
	}{Files: files})
}
