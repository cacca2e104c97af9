package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/elemquiz/internal/mode"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a run right away",
	Long: `Skip the home screen and start a timed run in the given mode.

Modes: atomic_number, element_name, periodic_table.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		val, _ := cmd.Flags().GetString("mode")
		m, err := mode.Parse(val)
		if err != nil {
			return fmt.Errorf("--mode: %w", err)
		}
		return runApp(cmd, &m)
	},
}

func init() {
	playCmd.Flags().String("mode", mode.AtomicNumber.String(), "Quiz mode")
}
