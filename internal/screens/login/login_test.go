package login

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/studyflow/studyflow/internal/auth"
	"github.com/studyflow/studyflow/internal/router"
	"github.com/studyflow/studyflow/internal/screen"
)

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

func testLogin(repo *memUserRepo) (*LoginScreen, *auth.User) {
	var signedIn auth.User
	s := New(repo, func(u auth.User) screen.Screen {
		signedIn = u
		return stubScreen{}
	})
	s.delay = 0
	return s, &signedIn
}

func TestLogin_DefaultEmail(t *testing.T) {
	repo := &memUserRepo{}
	s, signedIn := testLogin(repo)

	scr, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a sign-in command")
	}
	scr, cmd = scr.Update(cmd())
	if cmd == nil {
		t.Fatal("expected a navigation command after sign-in")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Fatal("expected ReplaceScreenMsg")
	}

	if repo.user == nil {
		t.Fatal("expected user to be persisted")
	}
	if repo.user.Email != auth.DefaultEmail {
		t.Errorf("email = %q, want default", repo.user.Email)
	}
	if signedIn.Name != "Alex Johnson" {
		t.Errorf("signed-in name = %q", signedIn.Name)
	}
	_ = scr
}

func TestLogin_CustomEmail(t *testing.T) {
	repo := &memUserRepo{}
	s, _ := testLogin(repo)

	s.input.SetValue("me@example.com")
	scr, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	scr.Update(cmd())
	_ = scr

	if repo.user == nil || repo.user.Email != "me@example.com" {
		t.Errorf("persisted user = %+v, want custom email", repo.user)
	}
}

func TestLogin_IgnoresKeysWhileSigning(t *testing.T) {
	s, _ := testLogin(&memUserRepo{})
	s.signing = true

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("expected keys to be ignored while signing in")
	}
}
