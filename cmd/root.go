package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/elemquiz/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "elemquiz",
	Short: "Element symbol time-attack quiz",
	Long:  "Elemquiz: a terminal quiz for memorising the symbols of elements 1-20 against the clock.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, nil)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides "+config.EnvDB+" env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default "+config.DefaultConfigPath()+")")
	rootCmd.PersistentFlags().Bool("no-splash", false, "Skip the welcome animation")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(recordsCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveConfig loads the config file named by --config (or the default
// XDG path) and applies --db over it.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultConfigPath()
	}
	fc, err := config.LoadConfig(path)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	db, _ := cmd.Flags().GetString("db")
	cfg, err := config.Resolve(fc, config.Overrides{DBPath: db})
	if err != nil {
		return config.Config{}, fmt.Errorf("resolve config: %w", err)
	}
	return cfg, nil
}
