// Package home is the dashboard: study stats plus the main menu.
package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/studyflow/studyflow/internal/auth"
	"github.com/studyflow/studyflow/internal/catalog"
	feed "github.com/studyflow/studyflow/internal/doubts"
	"github.com/studyflow/studyflow/internal/router"
	"github.com/studyflow/studyflow/internal/screen"
	doubtsscreen "github.com/studyflow/studyflow/internal/screens/doubts"
	"github.com/studyflow/studyflow/internal/screens/examlist"
	flashscreen "github.com/studyflow/studyflow/internal/screens/flashcards"
	"github.com/studyflow/studyflow/internal/screens/history"
	"github.com/studyflow/studyflow/internal/stats"
	"github.com/studyflow/studyflow/internal/store"
	"github.com/studyflow/studyflow/internal/tutor"
	"github.com/studyflow/studyflow/internal/ui/components"
	"github.com/studyflow/studyflow/internal/ui/layout"
	"github.com/studyflow/studyflow/internal/ui/theme"
)

type statsLoadedMsg struct {
	Stats stats.DashboardStats
	Err   error
}

// Deps carries everything the dashboard and its child screens need.
type Deps struct {
	User     auth.User
	Users    auth.Repo
	Attempts store.AttemptStore
	Cards    store.CardStore
	Doubts   *feed.Service
	Insight  *tutor.InsightRequester

	// Login builds the screen shown after logout.
	Login func() screen.Screen
}

// HomeScreen is the post-login landing screen.
type HomeScreen struct {
	deps Deps
	menu components.Menu

	stats  stats.DashboardStats
	loaded bool
	errMsg string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates the dashboard for the signed-in user.
func New(deps Deps) *HomeScreen {
	s := &HomeScreen{deps: deps}
	s.menu = components.NewMenu([]components.MenuItem{
		{Label: "Exams", Action: s.pushAction(func() screen.Screen {
			return examlist.New(deps.Attempts, deps.Insight, deps.User.ID)
		})},
		{Label: "Flashcards", Action: s.pushAction(func() screen.Screen {
			return flashscreen.New(deps.Cards)
		})},
		{Label: "Doubts", Action: s.pushAction(func() screen.Screen {
			return doubtsscreen.New(deps.Doubts, deps.User.ID)
		})},
		{Label: "History", Action: s.pushAction(func() screen.Screen {
			return history.New(deps.Attempts, deps.Insight)
		})},
		{Label: "Logout", Action: s.logoutAction},
		{Label: "Quit", Action: func() tea.Cmd { return tea.Quit }},
	})
	return s
}

func (s *HomeScreen) pushAction(build func() screen.Screen) func() tea.Cmd {
	return func() tea.Cmd {
		return func() tea.Msg {
			return router.PushScreenMsg{Screen: build()}
		}
	}
}

func (s *HomeScreen) logoutAction() tea.Cmd {
	return func() tea.Msg {
		if err := auth.Logout(context.Background(), s.deps.Users); err != nil {
			return statsLoadedMsg{Err: err}
		}
		return router.ReplaceScreenMsg{Screen: s.deps.Login()}
	}
}

func (s *HomeScreen) Init() tea.Cmd {
	return func() tea.Msg {
		attempts, err := s.deps.Attempts.LoadAttempts(context.Background())
		if err != nil {
			return statsLoadedMsg{Err: err}
		}
		return statsLoadedMsg{Stats: stats.Compute(attempts, catalog.ListExams())}
	}
}

func (s *HomeScreen) Title() string {
	return "Dashboard"
}

// UserName is shown in the application header.
func (s *HomeScreen) UserName() string {
	return s.deps.User.Name
}

func (s *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
	}
}

func (s *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.stats = msg.Stats
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		var cmd tea.Cmd
		s.menu, cmd = s.menu.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *HomeScreen) View(width, height int) string {
	greeting := theme.Title.Render("Welcome back, " + s.deps.User.Name)

	left := s.statsPanel()
	right := s.menu.View()

	panelWidth := min((width-8)/2, 46)
	leftBox := theme.Card.Width(panelWidth).Render(left)
	rightBox := lipgloss.NewStyle().Padding(1, 2).Render(right)

	row := lipgloss.JoinHorizontal(lipgloss.Top, leftBox, "  ", rightBox)

	return "\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, greeting) + "\n\n" +
		lipgloss.PlaceHorizontal(width, lipgloss.Center, row)
}

func (s *HomeScreen) statsPanel() string {
	if s.errMsg != "" {
		return theme.Incorrect.Render("Error: " + s.errMsg)
	}
	if !s.loaded {
		return theme.Hint.Render("Loading stats...")
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("Your Progress") + "\n\n")
	b.WriteString(fmt.Sprintf("Exams taken    %d\n", s.stats.TotalExams))
	b.WriteString(fmt.Sprintf("Average score  %d%%\n", s.stats.AvgScore))

	if len(s.stats.TopicMistakes) > 0 {
		b.WriteString("\n" + theme.Hint.Render("Weak topics") + "\n")
		for _, tm := range s.stats.TopicMistakes {
			b.WriteString(fmt.Sprintf("  %s  %d\n", tm.Topic, tm.Count))
		}
	}

	if len(s.stats.Recent) > 0 {
		b.WriteString("\n" + theme.Hint.Render("Recent attempts") + "\n")
		for _, a := range s.stats.Recent {
			title := a.ExamID
			if exam, err := catalog.GetExam(a.ExamID); err == nil {
				title = exam.Title
			}
			b.WriteString(fmt.Sprintf("  %s  %d/%d\n", title, a.Score, a.MaxScore))
		}
	}
	if s.stats.TotalExams == 0 {
		b.WriteString("\n" + theme.Hint.Render("No attempts yet. Take your first exam!"))
	}
	return b.String()
}
