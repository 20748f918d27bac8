package history

import (
	"context"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/studyflow/studyflow/internal/attempt"
	"github.com/studyflow/studyflow/internal/router"
)

type mockAttemptStore struct {
	attempts []attempt.ExamAttempt
	loadErr  error
}

func (m *mockAttemptStore) LoadAttempts(_ context.Context) ([]attempt.ExamAttempt, error) {
	return m.attempts, m.loadErr
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

func loadedScreen(t *testing.T, attempts []attempt.ExamAttempt) *HistoryScreen {
	t.Helper()
	s := New(&mockAttemptStore{attempts: attempts}, nil)
	scr, _ := s.Update(s.Init()())
	return scr.(*HistoryScreen)
}

func TestHistory_NewestFirst(t *testing.T) {
	s := loadedScreen(t, []attempt.ExamAttempt{
		{ID: "a1", ExamID: "exam1", MaxScore: 5},
		{ID: "a2", ExamID: "exam1", MaxScore: 5},
		{ID: "a3", ExamID: "exam2", MaxScore: 10},
	})

	if len(s.attempts) != 3 {
		t.Fatalf("attempts = %d, want 3", len(s.attempts))
	}
	if s.attempts[0].ID != "a3" || s.attempts[2].ID != "a1" {
		t.Errorf("order = [%s %s %s], want newest first",
			s.attempts[0].ID, s.attempts[1].ID, s.attempts[2].ID)
	}
}

func TestHistory_LoadError(t *testing.T) {
	s := New(&mockAttemptStore{loadErr: errors.New("boom")}, nil)
	scr, _ := s.Update(s.Init()())
	hs := scr.(*HistoryScreen)

	if hs.errMsg == "" {
		t.Fatal("expected error message")
	}
	if hs.View(80, 24) == "" {
		t.Error("expected non-empty error view")
	}
}

func TestHistory_EnterOpensResult(t *testing.T) {
	s := loadedScreen(t, []attempt.ExamAttempt{
		{ID: "a1", ExamID: "exam1", MaxScore: 5},
	})

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command for enter")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	if push.Screen == nil {
		t.Error("expected a screen in the push message")
	}
}

func TestHistory_EmptyView(t *testing.T) {
	s := loadedScreen(t, nil)
	if s.View(80, 24) == "" {
		t.Error("expected non-empty empty-state view")
	}
}
