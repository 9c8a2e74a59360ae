package pkg

import (
	"path/filepath"

	"github.com/provide-io/vrmsort/internal/mover"
	"github.com/provide-io/vrmsort/pkg/messages"
	"github.com/provide-io/vrmsort/pkg/vrm/classify"
	"github.com/provide-io/vrmsort/pkg/vrm/rules"
)

// Mover relocates a classified file.
type Mover interface {
	MoveTo(src, destination string) (mover.Move, error)
}

// Recorder observes every recognized file of a sort run together with its
// decision. A Recorder error is logged and does not stop the batch.
type Recorder interface {
	Record(s Scanned, decision classify.Decision) error
}

// Summary reports what a sort run did.
type Summary struct {
	Moved     []mover.Move
	Untouched []string // recognized, but no destination
	Failed    []string // unreadable, unrecognized, or the move failed
}

// Sort loads the rule file, then classifies every path against it and moves
// files that have a destination. An invalid rule file fails the call before
// any file is read. Per-file failures are reported and skipped.
func (e *Engine) Sort(paths []string, rulesPath string, mv Mover, rec Recorder) (*Summary, error) {
	rs, err := rules.Load(rulesPath)
	if err != nil {
		return nil, err
	}
	for _, w := range rs.Warnings {
		e.logger.Warn("Ambiguous rule entry", "rules", rulesPath, "detail", w)
	}

	summary := &Summary{}
	for _, s := range e.Scan(paths) {
		if !s.OK() {
			summary.Failed = append(summary.Failed, s.Path)
			continue
		}

		decision := classify.Classify(s.Native, rs)
		if rec != nil {
			if err := rec.Record(s, decision); err != nil {
				e.logger.Warn("Failed to record file", "path", s.Path, "error", err)
			}
		}

		if !decision.Matched() {
			e.logger.Debug("No destination", "path", s.Path)
			summary.Untouched = append(summary.Untouched, s.Path)
			continue
		}

		key := messages.InfoMovingFile
		if decision.Fallback {
			key = messages.InfoMovingFileDoNotUse
		}
		e.emit(e.messages.Format(key, filepath.Base(s.Path), decision.Destination))

		moved, err := mv.MoveTo(s.Path, decision.Destination)
		if err != nil {
			e.logger.Error("Failed to move file", "path", s.Path, "destination", decision.Destination, "error", err)
			summary.Failed = append(summary.Failed, s.Path)
			continue
		}
		e.logger.Info("Moved file", "from", moved.From, "to", moved.To, "rule", decision.Rule, "fallback", decision.Fallback)
		summary.Moved = append(summary.Moved, moved)
	}

	e.emit(e.messages.Get(messages.InfoSortComplete))
	return summary, nil
}
