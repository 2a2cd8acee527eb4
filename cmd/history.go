package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ducnm/elementary/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Print quiz history",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := context.Background()
		records, err := st.History().All(ctx)
		if err != nil {
			return fmt.Errorf("read history: %w", err)
		}
		if len(records) == 0 {
			fmt.Println("No quizzes taken yet.")
			return nil
		}

		for _, r := range records {
			fmt.Printf("%s  %2d/%-2d  %3d%%  %ds\n",
				r.Date.Format("2006-01-02 15:04"),
				r.Score, r.TotalQuestions,
				int(r.Accuracy*100), r.TimeSpent)
		}

		best := history.BestOf(records)
		fmt.Printf("\n%d quizzes, best %d/%d (%d%%)\n",
			len(records), best.Score, best.TotalQuestions, int(best.Accuracy*100))
		return nil
	},
}
