package pkg

import (
	"github.com/provide-io/vrmsort/pkg/report"
	"github.com/provide-io/vrmsort/pkg/vrm/meta"
)

// Inspect returns the unified metadata of every recognized file, in input
// order, together with the full scan.
func (e *Engine) Inspect(paths []string) ([]meta.UnifiedMetadata, []Scanned) {
	scanned := e.Scan(paths)
	var records []meta.UnifiedMetadata
	for _, s := range Recognized(scanned) {
		records = append(records, s.Metadata)
	}
	return records, scanned
}

// Dump returns the raw JSON document of every file whose container decoded,
// recognized schema or not.
func (e *Engine) Dump(paths []string) []report.RawFile {
	var files []report.RawFile
	for _, s := range e.Scan(paths) {
		if s.Container == nil {
			continue
		}
		files = append(files, report.RawFile{
			Filename: s.Container.Name,
			Metadata: s.Container.Payload,
		})
	}
	return files
}
