// Package result shows the outcome of a completed exam attempt: the
// score, a per-question review, and a tutor insight on weak topics.
package result

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/studyflow/studyflow/internal/attempt"
	"github.com/studyflow/studyflow/internal/catalog"
	"github.com/studyflow/studyflow/internal/router"
	"github.com/studyflow/studyflow/internal/screen"
	"github.com/studyflow/studyflow/internal/stats"
	"github.com/studyflow/studyflow/internal/store"
	"github.com/studyflow/studyflow/internal/tutor"
	"github.com/studyflow/studyflow/internal/ui/layout"
)

type attemptLoadedMsg struct {
	Attempt attempt.ExamAttempt
	Err     error
}

type insightPollMsg struct{}

// maxInsightPolls bounds how long the screen waits for the background
// insight (100 polls at 300ms is 30 seconds, matching the fetch
// timeout). Past that the fallback text is shown and polling stops.
const maxInsightPolls = 100

// ResultScreen implements screen.Screen for a persisted attempt.
type ResultScreen struct {
	attemptID string
	repo      store.AttemptStore
	insight   *tutor.InsightRequester
	retake    func() screen.Screen

	attempt attempt.ExamAttempt
	exam    *catalog.Exam
	loaded  bool
	loadErr error

	insightText string
	polls       int
	cursor      int // question review cursor
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)

// New creates a result screen for a persisted attempt. The attempt is
// loaded asynchronously so the submit flow never blocks on the store.
// retake produces a fresh session screen for the same exam; pass nil to
// disable retakes (e.g. when reviewing from history).
func New(attemptID string, repo store.AttemptStore, insight *tutor.InsightRequester, retake func() screen.Screen) *ResultScreen {
	return &ResultScreen{
		attemptID: attemptID,
		repo:      repo,
		insight:   insight,
		retake:    retake,
	}
}

func (s *ResultScreen) Init() tea.Cmd {
	return func() tea.Msg {
		a, err := s.repo.GetAttempt(context.Background(), s.attemptID)
		return attemptLoadedMsg{Attempt: a, Err: err}
	}
}

func (s *ResultScreen) Title() string {
	if s.exam != nil {
		return s.exam.Title + " · Result"
	}
	return "Result"
}

func (s *ResultScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Review"},
	}
	if s.retake != nil {
		hints = append(hints, layout.KeyHint{Key: "R", Description: "Retake"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

func (s *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case attemptLoadedMsg:
		return s.handleLoaded(msg)
	case insightPollMsg:
		if s.insight == nil {
			return s, nil
		}
		if text, ok := s.insight.Consume(); ok {
			s.insightText = text
			return s, nil
		}
		s.polls++
		if s.polls >= maxInsightPolls {
			s.insightText = tutor.FallbackInsightError
			return s, nil
		}
		return s, pollInsight()
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.loaded && s.cursor < len(s.attempt.Answers)-1 {
				s.cursor++
			}
		case "r":
			// The session screen behind us was replaced by this one, so
			// a retake swaps a fresh session in for the result.
			if s.retake != nil {
				return s, func() tea.Msg {
					return router.ReplaceScreenMsg{Screen: s.retake()}
				}
			}
		case "esc", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *ResultScreen) handleLoaded(msg attemptLoadedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.loadErr = msg.Err
		return s, nil
	}
	s.attempt = msg.Attempt
	s.loaded = true

	if exam, err := catalog.GetExam(s.attempt.ExamID); err == nil {
		s.exam = &exam
	}

	if s.insight == nil {
		return s, nil
	}
	topics := stats.MistakeTopics(s.attempt, s.exam)
	s.insight.Request(context.Background(), topics)
	return s, pollInsight()
}

// counts splits the attempt's answers into correct, wrong, and skipped.
func (s *ResultScreen) counts() (correct, wrong, skipped int) {
	return s.attempt.CorrectCount(), s.attempt.WrongCount(), s.attempt.SkippedCount()
}

func pollInsight() tea.Cmd {
	return tea.Tick(300*time.Millisecond, func(time.Time) tea.Msg {
		return insightPollMsg{}
	})
}
