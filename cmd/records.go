package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/elemquiz/internal/grade"
	"github.com/abhisek/elemquiz/internal/mode"
	"github.com/abhisek/elemquiz/internal/records"
)

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Show the best time for each mode",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRecords(cmd, func(rs *records.Store) error {
			bests := rs.All(cmd.Context())
			out := cmd.OutOrStdout()
			for _, m := range mode.All() {
				b, ok := bests[m]
				if !ok {
					fmt.Fprintf(out, "%-16s --\n", m)
					continue
				}
				line := fmt.Sprintf("%-16s %6ss  %s", m, grade.FormatSeconds(b.ElapsedSeconds), grade.For(b.ElapsedSeconds).Tier)
				if !b.RecordedAt.IsZero() {
					line += "  " + b.RecordedAt.Local().Format("2006-01-02 15:04")
				}
				fmt.Fprintln(out, line)
			}
			return nil
		})
	},
}

var recordsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every best time",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRecords(cmd, func(rs *records.Store) error {
			rs.ClearAll(cmd.Context())
			fmt.Fprintln(cmd.OutOrStdout(), "Best times cleared.")
			return nil
		})
	},
}

func init() {
	recordsCmd.AddCommand(recordsClearCmd)
}

// withRecords opens the configured database and runs fn over its records.
// Unlike the TUI there is no in-memory fallback.
func withRecords(cmd *cobra.Command, fn func(*records.Store) error) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	st, err := openStore(cfg.DBPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Cannot open records:", err)
		return err
	}
	defer closeQuietly(st)
	return fn(records.New(st.KV()))
}
