// Package doubts is the ask-a-doubt screen: a feed of past questions
// with AI replies and an input to ask new ones.
package doubts

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	feed "github.com/studyflow/studyflow/internal/doubts"
	"github.com/studyflow/studyflow/internal/router"
	"github.com/studyflow/studyflow/internal/screen"
	"github.com/studyflow/studyflow/internal/ui/components"
	"github.com/studyflow/studyflow/internal/ui/layout"
	"github.com/studyflow/studyflow/internal/ui/theme"
)

type feedLoadedMsg struct {
	Doubts []feed.Doubt
	Err    error
}

type askDoneMsg struct {
	Doubt feed.Doubt
	Err   error
}

// DoubtsScreen shows the doubt feed and accepts new questions.
type DoubtsScreen struct {
	svc    *feed.Service
	userID string

	input   components.TextInput
	doubts  []feed.Doubt
	loaded  bool
	waiting bool
	errMsg  string
}

var _ screen.Screen = (*DoubtsScreen)(nil)
var _ screen.KeyHintProvider = (*DoubtsScreen)(nil)

// New creates a new DoubtsScreen.
func New(svc *feed.Service, userID string) *DoubtsScreen {
	return &DoubtsScreen{
		svc:    svc,
		userID: userID,
		input:  components.NewTextInput("Ask a doubt...", 200),
	}
}

func (s *DoubtsScreen) Init() tea.Cmd {
	load := func() tea.Msg {
		doubts, err := s.svc.List(context.Background())
		return feedLoadedMsg{Doubts: doubts, Err: err}
	}
	return tea.Batch(load, s.input.Init())
}

func (s *DoubtsScreen) Title() string {
	return "Doubts"
}

func (s *DoubtsScreen) KeyHints() []layout.KeyHint {
	if s.waiting {
		return []layout.KeyHint{}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Ask"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *DoubtsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case feedLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.doubts = msg.Doubts
		}
		s.loaded = true
		return s, nil

	case askDoneMsg:
		s.waiting = false
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.errMsg = ""
		// Newest first.
		s.doubts = append([]feed.Doubt{msg.Doubt}, s.doubts...)
		s.input.SetValue("")
		return s, nil

	case tea.KeyMsg:
		if s.waiting {
			return s, nil
		}
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "enter":
			question := strings.TrimSpace(s.input.Value())
			if question == "" {
				return s, nil
			}
			s.waiting = true
			return s, s.askCmd(question)
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *DoubtsScreen) askCmd(question string) tea.Cmd {
	return func() tea.Msg {
		d, err := s.svc.Ask(context.Background(), s.userID, question)
		return askDoneMsg{Doubt: d, Err: err}
	}
}

func (s *DoubtsScreen) View(width, height int) string {
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading doubts...")
	}

	var b strings.Builder
	b.WriteString("\n  " + s.input.View() + "\n")

	if s.waiting {
		b.WriteString("  " + theme.Hint.Render("Asking the AI tutor...") + "\n")
	}
	if s.errMsg != "" {
		b.WriteString("  " + theme.Incorrect.Render(s.errMsg) + "\n")
	}
	b.WriteString("\n")

	if len(s.doubts) == 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
			Render("  No doubts yet. Ask away!") + "\n")
		return b.String()
	}

	cardWidth := min(width-8, 76)
	for _, d := range s.doubts {
		when := d.CreatedAt
		if t, err := time.Parse(time.RFC3339, d.CreatedAt); err == nil {
			when = t.Format("Jan 02, 2006")
		}

		status := lipgloss.NewStyle().Foreground(theme.Accent).Render(string(d.Status))
		if d.Status == feed.StatusResolved {
			status = theme.Correct.Render(string(d.Status))
		}

		body := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(d.Content) + "\n" +
			theme.Hint.Render(when) + "  " + status
		if d.Response != "" {
			body += "\n\n" + lipgloss.NewStyle().Foreground(theme.Secondary).Render("AI Tutor: ") +
				lipgloss.NewStyle().Foreground(theme.Text).Render(d.Response)
		}

		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Card.Width(cardWidth).Render(body)))
		b.WriteString("\n")
	}

	return b.String()
}
