package result

import (
	"context"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/studyflow/studyflow/internal/attempt"
	"github.com/studyflow/studyflow/internal/router"
	"github.com/studyflow/studyflow/internal/screen"
	"github.com/studyflow/studyflow/internal/tutor"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

// stubScreen is a minimal screen.Screen for navigation assertions.
type stubScreen struct{}

func (stubScreen) Init() tea.Cmd                             { return nil }
func (s stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (stubScreen) View(int, int) string                      { return "" }
func (stubScreen) Title() string                             { return "stub" }

type mockAttemptStore struct {
	attempts []attempt.ExamAttempt
}

func (m *mockAttemptStore) LoadAttempts(_ context.Context) ([]attempt.ExamAttempt, error) {
	return m.attempts, nil
}

func (m *mockAttemptStore) AppendAttempt(_ context.Context, a attempt.ExamAttempt) error {
	m.attempts = append(m.attempts, a)
	return nil
}

func (m *mockAttemptStore) GetAttempt(_ context.Context, id string) (attempt.ExamAttempt, error) {
	for _, a := range m.attempts {
		if a.ID == id {
			return a, nil
		}
	}
	return attempt.ExamAttempt{}, errors.New("not found")
}

func intPtr(v int) *int { return &v }

func sampleAttempt() attempt.ExamAttempt {
	return attempt.ExamAttempt{
		ID:       "a1",
		UserID:   "u1",
		ExamID:   "exam1",
		Score:    1,
		MaxScore: 4,
		Answers: []attempt.UserAnswer{
			{QuestionID: "q1", SelectedOption: intPtr(0), IsCorrect: true},
			{QuestionID: "q2", SelectedOption: intPtr(1), IsCorrect: false},
			{QuestionID: "q3"},
		},
		CompletedAt: "2025-03-01T12:00:00Z",
		Status:      attempt.StatusCompleted,
	}
}

func loadedScreen(t *testing.T) *ResultScreen {
	t.Helper()
	repo := &mockAttemptStore{attempts: []attempt.ExamAttempt{sampleAttempt()}}
	s := New("a1", repo, nil, nil)

	msg := s.Init()()
	scr, _ := s.Update(msg)
	return scr.(*ResultScreen)
}

func TestResultScreen_LoadsAttempt(t *testing.T) {
	s := loadedScreen(t)

	if !s.loaded {
		t.Fatal("expected attempt to be loaded")
	}
	if s.attempt.ID != "a1" {
		t.Errorf("attempt ID = %q, want a1", s.attempt.ID)
	}
}

func TestResultScreen_LoadError(t *testing.T) {
	repo := &mockAttemptStore{}
	s := New("missing", repo, nil, nil)

	msg := s.Init()()
	scr, _ := s.Update(msg)
	rs := scr.(*ResultScreen)

	if rs.loadErr == nil {
		t.Fatal("expected load error for missing attempt")
	}
	if rs.View(80, 24) == "" {
		t.Error("expected non-empty error view")
	}
}

func TestResultScreen_Counts(t *testing.T) {
	s := loadedScreen(t)

	correct, wrong, skipped := s.counts()
	if correct != 1 || wrong != 1 || skipped != 1 {
		t.Errorf("counts = (%d, %d, %d), want (1, 1, 1)", correct, wrong, skipped)
	}
}

func TestResultScreen_RetakeDisabledWithoutFactory(t *testing.T) {
	s := loadedScreen(t)

	scr, cmd := s.Update(keyPress('r'))
	if cmd != nil {
		t.Error("expected no command when retake is disabled")
	}
	if scr.(*ResultScreen) != s {
		t.Error("expected screen to be unchanged")
	}
}

func TestResultScreen_RetakeReplacesScreen(t *testing.T) {
	repo := &mockAttemptStore{attempts: []attempt.ExamAttempt{sampleAttempt()}}
	fresh := &stubScreen{}
	s := New("a1", repo, nil, func() screen.Screen { return fresh })

	msg := s.Init()()
	scr, _ := s.Update(msg)

	_, cmd := scr.Update(keyPress('r'))
	if cmd == nil {
		t.Fatal("expected a command for retake")
	}
	rep, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatal("expected ReplaceScreenMsg")
	}
	if rep.Screen != screen.Screen(fresh) {
		t.Error("expected the retake screen to be used")
	}
}

func TestResultScreen_EscapePops(t *testing.T) {
	s := loadedScreen(t)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a command for escape")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestResultScreen_ViewShowsInsightPlaceholder(t *testing.T) {
	s := loadedScreen(t)

	view := s.View(100, 30)
	if view == "" {
		t.Fatal("expected non-empty view")
	}
	// The insight card shows a placeholder until the fetch lands.
	if s.insightText != "" {
		t.Errorf("insight = %q, want empty before fetch", s.insightText)
	}
}

func TestResultScreen_InsightPollingGivesUp(t *testing.T) {
	s := loadedScreen(t)
	s.insight = tutor.NewInsightRequester(tutor.NewService(nil, tutor.DefaultConfig()))

	// Nothing was requested, so every poll comes back empty. The
	// screen must settle on the fallback instead of polling forever.
	var scr screen.Screen = s
	var cmd tea.Cmd
	for i := 0; i < maxInsightPolls; i++ {
		scr, cmd = scr.Update(insightPollMsg{})
	}
	s = scr.(*ResultScreen)

	if cmd != nil {
		t.Error("expected polling to stop at the cap")
	}
	if s.insightText != tutor.FallbackInsightError {
		t.Errorf("insight = %q, want fallback", s.insightText)
	}
}
