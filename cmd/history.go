package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/examly/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past exam attempts",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		attempts, err := s.EventRepo().RecentAttempts(ctx, limit)
		if err != nil {
			return fmt.Errorf("query attempts: %w", err)
		}

		if len(attempts) == 0 {
			fmt.Println("No attempts recorded yet. Run `examly take --topic ...` first.")
			return nil
		}

		// Header.
		fmt.Printf("%-19s  %-28s  %-9s  %-7s  %-7s  %s\n",
			"Timestamp", "Topic", "Correct", "Score", "Grade", "Attempt")
		fmt.Println(strings.Repeat("─", 92))

		for _, a := range attempts {
			topic := a.Topic
			if len(topic) > 28 {
				topic = topic[:28]
			}
			fmt.Printf("%-19s  %-28s  %3d/%-5d  %6.1f%%  %-7s  %s\n",
				a.Timestamp.Local().Format("2006-01-02 15:04:05"),
				topic,
				a.Correct,
				a.Answered,
				a.Percentage,
				a.Letter,
				a.AttemptID[:8],
			)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of attempts to show")
}
