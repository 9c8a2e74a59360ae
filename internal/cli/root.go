// Package cli implements the vrmsort commands.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/provide-io/vrmsort/internal/catalog"
	"github.com/provide-io/vrmsort/pkg"
	"github.com/provide-io/vrmsort/pkg/discover"
	"github.com/provide-io/vrmsort/pkg/logging"
	"github.com/provide-io/vrmsort/pkg/messages"
	"github.com/provide-io/vrmsort/pkg/vrm/classify"
)

var (
	pathPatterns []string
	logLevel     string
	langFile     string
	catalogPath  string
	workers      int
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "vrmsort",
	Short: "Inspect VRM license metadata and sort files into folders",
	Long: `Reads the license and permission metadata embedded in VRM avatar files
(both the 0.x and 1.0 schema), prints or exports it, and sorts files into
folders according to a hand-edited rule file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	RootCmd.PersistentFlags().StringArrayVarP(&pathPatterns, "path", "p", nil, "Path or glob of VRM files, ** recurses (repeatable)")
	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error); default $"+logging.EnvLogLevel+" or warn")
	RootCmd.PersistentFlags().StringVar(&langFile, "lang-file", messages.DefaultLangFile, "Message catalog overriding the English defaults (JSON or YAML)")
	RootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "Record scanned files in this SQLite catalog")
	RootCmd.PersistentFlags().IntVarP(&workers, "workers", "j", 1, "Files read in parallel")
}

func newLogger() hclog.Logger {
	return logging.NewLogger("vrmsort", logging.GetLogLevel(logLevel), os.Stderr)
}

// setup builds the logger, message catalog and engine shared by every
// command.
func setup(cmd *cobra.Command) (hclog.Logger, *messages.Catalog, *pkg.Engine) {
	logger := newLogger()
	msgs := messages.LoadOptional(langFile, logger.Warn)
	engine := pkg.New(pkg.Options{
		Logger:   logger,
		Messages: msgs,
		Out:      cmd.OutOrStdout(),
		Workers:  workers,
	})
	return logger, msgs, engine
}

func expandPaths() ([]string, error) {
	if len(pathPatterns) == 0 {
		return nil, fmt.Errorf("--path is required")
	}
	return discover.Expand(pathPatterns...)
}

// scanRecorder stores sort decisions in the catalog under one run.
type scanRecorder struct {
	ctx   context.Context
	cat   *catalog.Catalog
	runID string
}

func (r *scanRecorder) Record(s pkg.Scanned, decision classify.Decision) error {
	_, err := r.cat.Add(r.ctx, catalog.Entry{
		RunID:       r.runID,
		Path:        s.Path,
		Checksum:    s.Container.Checksum,
		Destination: decision.Destination,
		Metadata:    s.Metadata,
	})
	return err
}

// openRecorder starts a catalog run when --catalog is set. The returned
// close function is always safe to call.
func openRecorder(ctx context.Context, command string) (*scanRecorder, func(), error) {
	if catalogPath == "" {
		return nil, func() {}, nil
	}
	cat, err := catalog.Open(catalogPath)
	if err != nil {
		return nil, func() {}, fmt.Errorf("open catalog: %w", err)
	}
	run, err := cat.BeginRun(ctx, command)
	if err != nil {
		cat.Close()
		return nil, func() {}, err
	}
	return &scanRecorder{ctx: ctx, cat: cat, runID: run.ID}, func() { cat.Close() }, nil
}

// recordScan stores every recognized file of a non-sorting command.
func recordScan(cmd *cobra.Command, logger hclog.Logger, scanned []pkg.Scanned) {
	rec, closeFn, err := openRecorder(cmd.Context(), cmd.Name())
	defer closeFn()
	if err != nil {
		logger.Warn("Catalog unavailable", "error", err)
		return
	}
	if rec == nil {
		return
	}
	for _, s := range pkg.Recognized(scanned) {
		if err := rec.Record(s, classify.None); err != nil {
			logger.Warn("Failed to record file", "path", s.Path, "error", err)
		}
	}
}
