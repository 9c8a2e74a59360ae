package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/provide-io/vrmsort/pkg/messages"
	"github.com/provide-io/vrmsort/pkg/report"
)

func init() {
	cmd := &cobra.Command{
		Use:   "csv",
		Short: "Export the license information of each file as CSV",
		RunE:  runCSV,
	}
	cmd.Flags().StringP("output", "o", "", "CSV output file (required)")
	if err := cmd.MarkFlagRequired("output"); err != nil {
		panic(err)
	}
	RootCmd.AddCommand(cmd)
}

func runCSV(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	paths, err := expandPaths()
	if err != nil {
		return err
	}
	logger, msgs, engine := setup(cmd)

	records, scanned := engine.Inspect(paths)
	recordScan(cmd, logger, scanned)

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create %s: %w", output, err)
	}
	if err := report.WriteCSV(f, msgs, records); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", output, err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), msgs.Format(messages.InfoCSVSaved, output))
	return nil
}
