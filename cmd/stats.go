package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/studyflow/studyflow/internal/catalog"
	"github.com/studyflow/studyflow/internal/stats"
	"github.com/studyflow/studyflow/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show study statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		attempts, err := s.AttemptRepo().LoadAttempts(context.Background())
		if err != nil {
			return fmt.Errorf("load attempts: %w", err)
		}
		if len(attempts) == 0 {
			fmt.Println("No exam attempts recorded yet.")
			return nil
		}

		exams := catalog.ListExams()
		dash := stats.Compute(attempts, exams)

		fmt.Printf("Exams taken:    %d\n", dash.TotalExams)
		fmt.Printf("Average score:  %d%%\n", dash.AvgScore)

		if len(dash.ScoreTrend) > 0 {
			parts := make([]string, len(dash.ScoreTrend))
			for i, p := range dash.ScoreTrend {
				parts[i] = fmt.Sprintf("%d%%", p)
			}
			fmt.Printf("Score trend:    %s\n", strings.Join(parts, " → "))
		}

		if len(dash.TopicMistakes) > 0 {
			fmt.Println("\nMistakes by topic")
			fmt.Println(strings.Repeat("─", 40))
			for _, tm := range dash.TopicMistakes {
				fmt.Printf("%-28s  %d\n", tm.Topic, tm.Count)
			}
		}

		byID := make(map[string]string, len(exams))
		for _, e := range exams {
			byID[e.ID] = e.Title
		}

		fmt.Println("\nRecent attempts")
		fmt.Println(strings.Repeat("─", 40))
		for _, a := range dash.Recent {
			title := byID[a.ExamID]
			if title == "" {
				title = a.ExamID
			}
			fmt.Printf("%-28s  %d/%d  (%d%%)\n", title, a.Score, a.MaxScore, stats.ScorePercent(a))
		}
		return nil
	},
}
