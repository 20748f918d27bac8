package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/studyflow/studyflow/internal/app"
	"github.com/studyflow/studyflow/internal/doubts"
	"github.com/studyflow/studyflow/internal/llm"
	"github.com/studyflow/studyflow/internal/store"
	"github.com/studyflow/studyflow/internal/tutor"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	provider, err := llm.NewProviderFromEnv(ctx, st.LLMEventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "The AI tutor will reply with fallback messages.")
		provider = nil
	}

	tutorSvc := tutor.NewService(provider, tutor.DefaultConfig())

	opts := app.Options{
		Users:    st.UserRepo(),
		Attempts: st.AttemptRepo(),
		Cards:    st.FlashcardRepo(),
		Doubts:   doubts.NewService(st.DoubtRepo(), tutorSvc),
		Insight:  tutor.NewInsightRequester(tutorSvc),
	}

	return app.Run(opts)
}
