package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "prepare",
		Short: "Write a rule file scaffold from the values found in the files",
		Long: `Collects every distinct license value found in the files into the
"unsort" section of a new rule file and adds empty folder entries under
"sorted". Fill in the entries' targets by hand, then run "vrmsort sort".`,
		RunE: runPrepare,
	}
	cmd.Flags().StringP("output", "o", "mapdata.json", "Rule file to write")
	RootCmd.AddCommand(cmd)
}

func runPrepare(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	paths, err := expandPaths()
	if err != nil {
		return err
	}
	_, _, engine := setup(cmd)

	_, err = engine.Prepare(paths, output)
	return err
}
