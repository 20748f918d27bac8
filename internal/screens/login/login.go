// Package login is the mock sign-in screen. Any email is accepted and
// mapped to the demo student account.
package login

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/studyflow/studyflow/internal/auth"
	"github.com/studyflow/studyflow/internal/router"
	"github.com/studyflow/studyflow/internal/screen"
	"github.com/studyflow/studyflow/internal/ui/components"
	"github.com/studyflow/studyflow/internal/ui/layout"
	"github.com/studyflow/studyflow/internal/ui/theme"
)

// signInDelay fakes a network round trip so the transition reads as a
// real sign-in.
const signInDelay = 800 * time.Millisecond

type signedInMsg struct {
	User auth.User
	Err  error
}

// LoginScreen collects an email and signs the student in.
type LoginScreen struct {
	repo auth.Repo
	next func(u auth.User) screen.Screen

	input   components.TextInput
	signing bool
	errMsg  string

	delay time.Duration
}

var _ screen.Screen = (*LoginScreen)(nil)
var _ screen.KeyHintProvider = (*LoginScreen)(nil)

// New creates a login screen. next builds the screen shown after a
// successful sign-in.
func New(repo auth.Repo, next func(u auth.User) screen.Screen) *LoginScreen {
	return &LoginScreen{
		repo:  repo,
		next:  next,
		input: components.NewTextInput(auth.DefaultEmail, 80),
		delay: signInDelay,
	}
}

func (s *LoginScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *LoginScreen) Title() string {
	return "Sign In"
}

func (s *LoginScreen) KeyHints() []layout.KeyHint {
	if s.signing {
		return []layout.KeyHint{}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Sign in"},
	}
}

func (s *LoginScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case signedInMsg:
		s.signing = false
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		user := msg.User
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: s.next(user)}
		}

	case tea.KeyMsg:
		if s.signing {
			return s, nil
		}
		if msg.String() == "enter" {
			s.signing = true
			s.errMsg = ""
			email := s.input.Value()
			return s, s.signInCmd(email)
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *LoginScreen) signInCmd(email string) tea.Cmd {
	return func() tea.Msg {
		time.Sleep(s.delay)
		u, err := auth.Login(context.Background(), s.repo, email)
		return signedInMsg{User: u, Err: err}
	}
}

func (s *LoginScreen) View(width, height int) string {
	title := theme.Title.Render("StudyFlow Pro")
	subtitle := theme.Subtitle.Render("Your AI-powered study companion")

	button := components.NewButton("Sign In", !s.signing, nil)
	prompt := theme.Hint.Render("Email") + "\n" + s.input.View() + "\n\n" + button.View()
	if s.signing {
		prompt = theme.Hint.Render("Signing in...")
	}

	box := theme.Card.Width(min(width-8, 56)).Render(prompt)

	body := "\n\n" + title + "\n" + subtitle + "\n\n" +
		lipgloss.PlaceHorizontal(width, lipgloss.Center, box)
	if s.errMsg != "" {
		body += "\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Incorrect.Render(s.errMsg))
	}

	return lipgloss.NewStyle().Width(width).Render(body)
}
