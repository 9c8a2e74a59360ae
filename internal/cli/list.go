package cli

import (
	"github.com/spf13/cobra"

	"github.com/provide-io/vrmsort/pkg/report"
)

func init() {
	RootCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Print the license information of each file",
		RunE:  runList,
	})
}

func runList(cmd *cobra.Command, args []string) error {
	paths, err := expandPaths()
	if err != nil {
		return err
	}
	logger, msgs, engine := setup(cmd)

	records, scanned := engine.Inspect(paths)
	recordScan(cmd, logger, scanned)

	return report.WriteText(cmd.OutOrStdout(), msgs, records)
}
