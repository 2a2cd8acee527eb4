package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ducnm/elementary/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "elementary",
	Short: "Periodic table tutor for the terminal",
	Long:  "Elementary — a terminal app for learning the periodic table: browse elements, quiz yourself, track your scores.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides ELEMENTARY_DB env var)")
	rootCmd.PersistentFlags().String("lang", "", "Display language: en or vi (overrides config)")

	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(elementCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then ELEMENTARY_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
