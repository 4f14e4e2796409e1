package cmd

import (
	"github.com/abhisek/examly/internal/store"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "examly",
	Short: "AI exam generator for the terminal",
	Long:  "Examly — generates multiple-choice exams on any topic with an LLM, lets you take them in the terminal, and grades your answers.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Best effort; a missing .env is the normal case.
		_ = godotenv.Load()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides EXAMLY_DB env var)")

	rootCmd.AddCommand(takeCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then EXAMLY_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
