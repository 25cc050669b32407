// History command inspects the run history store.
// Implements: docs/ARCHITECTURE § Run History Store, § CLI.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/turntable/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history [run-id]",
	Short: "List recorded runs or show one run's results",
	Long: `History lists runs previously recorded with 'turntable run --store',
newest first. With a run ID argument it shows that run's summary and
every per-record result. Use --json for machine-readable output.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	store, err := attachStore()
	if err != nil {
		return err
	}
	defer store.Detach()

	if len(args) == 1 {
		return showRun(cmd, store, args[0])
	}
	return listRuns(cmd, store)
}

func listRuns(cmd *cobra.Command, store types.Store) error {
	runs, err := store.ListRuns()
	if err != nil {
		return fmt.Errorf("list runs: %w", err)
	}

	if flagJSON {
		return printJSON(cmd, runs)
	}

	if len(runs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No recorded runs.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RUN ID\tSTARTED\tSOURCE\tRECORDS\tVALID\tINVALID")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\n",
			run.RunID,
			run.StartedAt.Local().Format(time.DateTime),
			run.Source,
			run.Records,
			run.Valid,
			run.Invalid,
		)
	}
	return w.Flush()
}

func showRun(cmd *cobra.Command, store types.Store, id string) error {
	run, results, err := store.GetRun(id)
	if err != nil {
		if errors.Is(err, types.ErrRunNotFound) {
			return fmt.Errorf("run %q not found", id)
		}
		return fmt.Errorf("get run: %w", err)
	}

	if flagJSON {
		return printJSON(cmd, struct {
			Run     types.Run      `json:"run"`
			Results []types.Result `json:"results"`
		}{run, results})
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "run:    ", run.RunID)
	fmt.Fprintln(out, "source: ", run.Source)
	fmt.Fprintln(out, "started:", run.StartedAt.Local().Format(time.DateTime))
	fmt.Fprintf(out, "records: %d (%d valid, %d invalid)\n", run.Records, run.Valid, run.Invalid)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tIS_VALID\tJSON")
	for _, res := range results {
		fmt.Fprintf(w, "%s\t%t\t%s\n", res.ID, res.IsValid, res.JSON)
	}
	return w.Flush()
}

// printJSON writes v as indented JSON to the command's stdout.
func printJSON(cmd *cobra.Command, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
