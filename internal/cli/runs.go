package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/provide-io/vrmsort/internal/catalog"
)

func init() {
	cmd := &cobra.Command{
		Use:   "runs [run-id]",
		Short: "List catalog runs, or the files of one run",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runRuns,
	}
	cmd.Flags().IntP("limit", "l", 20, "Max runs to list")
	RootCmd.AddCommand(cmd)
}

func runRuns(cmd *cobra.Command, args []string) error {
	if catalogPath == "" {
		return fmt.Errorf("--catalog is required")
	}
	limit, _ := cmd.Flags().GetInt("limit")

	cat, err := catalog.Open(catalogPath)
	if err != nil {
		return err
	}
	defer cat.Close()

	out := cmd.OutOrStdout()
	if len(args) == 1 {
		entries, err := cat.Entries(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		b, _ := json.MarshalIndent(entries, "", "  ")
		fmt.Fprintln(out, string(b))
		return nil
	}

	runs, err := cat.Runs(cmd.Context(), limit)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCOMMAND\tSTARTED\tFILES")
	for _, r := range runs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", r.ID, r.Command, r.StartedAt.Format("2006-01-02 15:04:05"), r.Files)
	}
	return tw.Flush()
}
