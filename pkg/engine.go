// Package pkg is the batch driver: it walks a list of container paths
// through reading, schema detection, adaptation and classification, and
// isolates per-file failures so one bad file never stops a batch.
package pkg

import (
	"fmt"
	"io"
	"sync"

	"github.com/hashicorp/go-hclog"

	"github.com/provide-io/vrmsort/pkg/messages"
	"github.com/provide-io/vrmsort/pkg/vrm/container"
	"github.com/provide-io/vrmsort/pkg/vrm/meta"
)

// Options configures an Engine. Zero values are usable.
type Options struct {
	Logger   hclog.Logger
	Messages *messages.Catalog
	// Out receives the user-facing progress lines. Nil discards them.
	Out io.Writer
	// Workers bounds parallel reads. Results keep input order regardless.
	Workers int
}

// Engine runs batches. It holds no per-batch state and may be reused.
type Engine struct {
	reader   *container.Reader
	logger   hclog.Logger
	messages *messages.Catalog
	out      io.Writer
	workers  int
}

// New creates an Engine.
func New(opts Options) *Engine {
	logger := opts.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	msgs := opts.Messages
	if msgs == nil {
		msgs = messages.Default()
	}
	out := opts.Out
	if out == nil {
		out = io.Discard
	}
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	return &Engine{
		reader:   container.NewReaderWithLogger(logger.Named("reader")),
		logger:   logger,
		messages: msgs,
		out:      out,
		workers:  workers,
	}
}

// Scanned is the outcome of loading one path.
type Scanned struct {
	Path string
	// Container is set whenever the binary and its JSON decoded, even if
	// no schema was recognized.
	Container *container.Container
	Version   meta.SchemaVersion
	// Native is the schema-native meta object rules are matched against.
	Native   map[string]any
	Metadata meta.UnifiedMetadata
	Err      error
}

// OK reports whether the file was recognized and adapted.
func (s Scanned) OK() bool {
	return s.Err == nil
}

// Load reads, detects and adapts a single file.
func (e *Engine) Load(path string) Scanned {
	s := Scanned{Path: path}

	c, err := e.reader.Read(path)
	if err != nil {
		s.Err = err
		return s
	}
	s.Container = c

	version, err := meta.Detect(c.Document)
	if err != nil {
		s.Err = withFile(err, c.Name)
		return s
	}
	s.Version = version

	native, err := meta.Native(c.Document, version)
	if err != nil {
		s.Err = withFile(err, c.Name)
		return s
	}
	s.Native = native

	md, err := meta.Adapt(c.Document, version, c.Name)
	if err != nil {
		s.Err = err
		return s
	}
	s.Metadata = md
	return s
}

// Scan loads every path, in parallel when Workers > 1, and reports each
// failure before returning. The result has one entry per path in input
// order.
func (e *Engine) Scan(paths []string) []Scanned {
	results := make([]Scanned, len(paths))

	if e.workers == 1 || len(paths) < 2 {
		for i, p := range paths {
			results[i] = e.Load(p)
		}
	} else {
		var wg sync.WaitGroup
		sem := make(chan struct{}, e.workers)
		for i, p := range paths {
			wg.Add(1)
			sem <- struct{}{}
			go func(i int, p string) {
				defer wg.Done()
				defer func() { <-sem }()
				results[i] = e.Load(p)
			}(i, p)
		}
		wg.Wait()
	}

	for _, s := range results {
		if s.Err != nil {
			e.reportFailure(s)
		}
	}
	return results
}

func (e *Engine) reportFailure(s Scanned) {
	e.logger.Warn("Skipping file", "path", s.Path, "error", s.Err)
	e.emit(e.messages.Format(messages.ErrorParse, s.Path, s.Err))
}

func (e *Engine) emit(line string) {
	fmt.Fprintln(e.out, line)
}

// Recognized filters a scan down to the files that adapted cleanly.
func Recognized(scanned []Scanned) []Scanned {
	var out []Scanned
	for _, s := range scanned {
		if s.OK() {
			out = append(out, s)
		}
	}
	return out
}
