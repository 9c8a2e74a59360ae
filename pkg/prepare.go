package pkg

import (
	"github.com/provide-io/vrmsort/pkg/messages"
	"github.com/provide-io/vrmsort/pkg/vrm/meta"
	"github.com/provide-io/vrmsort/pkg/vrm/rules"
)

// Prepare derives the value pool from every recognized file, scaffolds a
// rule record around it and writes the record to outPath for the operator
// to edit. Unrecognized files contribute nothing.
func (e *Engine) Prepare(paths []string, outPath string) (*rules.Record, error) {
	var natives []map[string]any
	for _, s := range Recognized(e.Scan(paths)) {
		natives = append(natives, s.Native)
	}

	pool := rules.Derive(natives, meta.LicenseKeys())
	rec := rules.Scaffold(pool)

	if err := rules.Save(outPath, rec); err != nil {
		return nil, err
	}

	e.logger.Info("Wrote rule scaffold", "path", outPath, "files", len(natives), "keys", len(pool.Target))
	e.emit(e.messages.Format(messages.InfoMapdataCreated, outPath))
	return rec, nil
}
