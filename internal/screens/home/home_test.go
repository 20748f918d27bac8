package home

import (
	"context"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/studyflow/studyflow/internal/attempt"
	"github.com/studyflow/studyflow/internal/auth"
	"github.com/studyflow/studyflow/internal/router"
	"github.com/studyflow/studyflow/internal/screen"
)

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
	return attempt.ExamAttempt{}, errors.New("not found")
}

type memUserRepo struct {
	user *auth.User
}

func (m *memUserRepo) SaveUser(_ context.Context, u auth.User) error {
	m.user = &u
	return nil
}

func (m *memUserRepo) LoadUser(_ context.Context) (*auth.User, error) {
	return m.user, nil
}

func (m *memUserRepo) DeleteUser(_ context.Context) error {
	m.user = nil
	return nil
}

type stubScreen struct{}

func (stubScreen) Init() tea.Cmd                             { return nil }
func (s stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (stubScreen) View(int, int) string                      { return "" }
func (stubScreen) Title() string                             { return "stub" }

func intPtr(v int) *int { return &v }

func testHome(attempts []attempt.ExamAttempt, users *memUserRepo) *HomeScreen {
	return New(Deps{
		User:     auth.User{ID: "u1", Name: "Alex Johnson"},
		Users:    users,
		Attempts: &mockAttemptStore{attempts: attempts},
		Login:    func() screen.Screen { return stubScreen{} },
	})
}

func TestHome_StatsLoaded(t *testing.T) {
	attempts := []attempt.ExamAttempt{
		{
			ID: "a1", ExamID: "exam1", Score: 1, MaxScore: 2,
			Answers: []attempt.UserAnswer{
				{QuestionID: "q1", SelectedOption: intPtr(0), IsCorrect: true},
				{QuestionID: "q2", SelectedOption: intPtr(1)},
			},
		},
	}
	s := testHome(attempts, &memUserRepo{})

	scr, _ := s.Update(s.Init()())
	hs := scr.(*HomeScreen)

	if !hs.loaded {
		t.Fatal("expected stats to load")
	}
	if hs.stats.TotalExams != 1 {
		t.Errorf("TotalExams = %d, want 1", hs.stats.TotalExams)
	}
	if hs.stats.AvgScore != 50 {
		t.Errorf("AvgScore = %d, want 50", hs.stats.AvgScore)
	}
	if hs.View(100, 30) == "" {
		t.Error("expected non-empty dashboard view")
	}
}

func TestHome_MenuOpensExams(t *testing.T) {
	s := testHome(nil, &memUserRepo{})

	// First item is Exams.
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command from the menu")
	}
	if _, ok := cmd().(router.PushScreenMsg); !ok {
		t.Error("expected PushScreenMsg for exams")
	}
}

func TestHome_LogoutClearsUserAndReplaces(t *testing.T) {
	users := &memUserRepo{user: &auth.User{ID: "u1"}}
	s := testHome(nil, users)

	// Navigate to the Logout item.
	var scr screen.Screen = s
	for i := 0; i < 4; i++ {
		scr, _ = scr.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	_, cmd := scr.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a logout command")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Fatal("expected ReplaceScreenMsg back to login")
	}
	if users.user != nil {
		t.Error("expected persisted user to be cleared")
	}
}
