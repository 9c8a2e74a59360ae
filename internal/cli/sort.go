package cli

import (
	"github.com/spf13/cobra"

	"github.com/provide-io/vrmsort/internal/mover"
	"github.com/provide-io/vrmsort/pkg"
	"github.com/provide-io/vrmsort/pkg/utils/permissions"
)

func init() {
	cmd := &cobra.Command{
		Use:   "sort",
		Short: "Move files into folders according to a rule file",
		RunE:  runSort,
	}
	cmd.Flags().StringP("rules", "r", "mapdata.json", "Rule file written by prepare and edited by hand")
	cmd.Flags().String("dest-root", "", "Directory relative destinations are created in (default: working directory)")
	cmd.Flags().String("dir-mode", permissions.FormatOctal(permissions.DefaultDirPerms), "Mode of created destination directories")
	RootCmd.AddCommand(cmd)
}

func runSort(cmd *cobra.Command, args []string) error {
	rulesPath, _ := cmd.Flags().GetString("rules")
	destRoot, _ := cmd.Flags().GetString("dest-root")
	dirModeFlag, _ := cmd.Flags().GetString("dir-mode")

	dirMode, err := permissions.ParseOctalString(dirModeFlag)
	if err != nil {
		return err
	}
	paths, err := expandPaths()
	if err != nil {
		return err
	}
	logger, _, engine := setup(cmd)

	rec, closeFn, err := openRecorder(cmd.Context(), cmd.Name())
	defer closeFn()
	if err != nil {
		logger.Warn("Catalog unavailable", "error", err)
	}
	var recorder pkg.Recorder
	if rec != nil {
		recorder = rec
	}

	summary, err := engine.Sort(paths, rulesPath, mover.New(destRoot, dirMode, logger.Named("mover")), recorder)
	if err != nil {
		return err
	}
	logger.Info("Sort finished", "moved", len(summary.Moved), "untouched", len(summary.Untouched), "failed", len(summary.Failed))
	return nil
}
