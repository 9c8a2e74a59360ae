package cli

import (
	"github.com/spf13/cobra"

	"github.com/provide-io/vrmsort/pkg/report"
)

func init() {
	RootCmd.AddCommand(&cobra.Command{
		Use:   "json",
		Short: "Dump the raw embedded JSON of each file",
		RunE:  runJSON,
	})
}

func runJSON(cmd *cobra.Command, args []string) error {
	paths, err := expandPaths()
	if err != nil {
		return err
	}
	_, _, engine := setup(cmd)
	return report.WriteJSON(cmd.OutOrStdout(), engine.Dump(paths))
}
