// Package history lists past exam attempts and opens their results.
package history

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/studyflow/studyflow/internal/attempt"
	"github.com/studyflow/studyflow/internal/catalog"
	"github.com/studyflow/studyflow/internal/router"
	"github.com/studyflow/studyflow/internal/screen"
	"github.com/studyflow/studyflow/internal/screens/result"
	"github.com/studyflow/studyflow/internal/stats"
	"github.com/studyflow/studyflow/internal/store"
	"github.com/studyflow/studyflow/internal/tutor"
	"github.com/studyflow/studyflow/internal/ui/layout"
	"github.com/studyflow/studyflow/internal/ui/theme"
)

type historyLoadedMsg struct {
	Attempts []attempt.ExamAttempt
	Err      error
}

// HistoryScreen displays past attempts, newest first.
type HistoryScreen struct {
	repo    store.AttemptStore
	insight *tutor.InsightRequester

	attempts []attempt.ExamAttempt
	selected int
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(repo store.AttemptStore, insight *tutor.InsightRequester) *HistoryScreen {
	return &HistoryScreen{repo: repo, insight: insight}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		attempts, err := s.repo.LoadAttempts(context.Background())
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		// Stored oldest first; show newest first.
		reversed := make([]attempt.ExamAttempt, len(attempts))
		for i, a := range attempts {
			reversed[len(attempts)-1-i] = a
		}
		return historyLoadedMsg{Attempts: reversed}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Result"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.attempts = msg.Attempts
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.attempts)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			if s.selected >= 0 && s.selected < len(s.attempts) {
				id := s.attempts[s.selected].ID
				return s, func() tea.Msg {
					return router.PushScreenMsg{
						Screen: result.New(id, s.repo, s.insight, nil),
					}
				}
			}
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.attempts) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No attempts yet. Take an exam!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, a := range s.attempts {
		title := a.ExamID
		if exam, err := catalog.GetExam(a.ExamID); err == nil {
			title = exam.Title
		}

		dateStr := a.CompletedAt
		if t, err := time.Parse(time.RFC3339, a.CompletedAt); err == nil {
			dateStr = t.Format("Jan 02, 2006")
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %s  %d/%d  %d%%",
			prefix, dateStr, title, a.Score, a.MaxScore, stats.ScorePercent(a))

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}
