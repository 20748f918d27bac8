// Package app wires the screens into the root Bubble Tea model.
package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/studyflow/studyflow/internal/auth"
	feed "github.com/studyflow/studyflow/internal/doubts"
	"github.com/studyflow/studyflow/internal/router"
	"github.com/studyflow/studyflow/internal/screen"
	"github.com/studyflow/studyflow/internal/screens/home"
	"github.com/studyflow/studyflow/internal/screens/login"
	"github.com/studyflow/studyflow/internal/store"
	"github.com/studyflow/studyflow/internal/tutor"
	"github.com/studyflow/studyflow/internal/ui/layout"
)

// Options carries the dependencies built by the CLI layer.
type Options struct {
	Users    auth.Repo
	Attempts store.AttemptStore
	Cards    store.CardStore
	Doubts   *feed.Service
	Insight  *tutor.InsightRequester
}

// timerProvider is implemented by screens with a countdown to show in
// the header.
type timerProvider interface {
	Timer() string
}

// userNameProvider is implemented by screens that know the signed-in
// user.
type userNameProvider interface {
	UserName() string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates an AppModel starting at login, or straight at the
// dashboard when a user session is already persisted.
func newAppModel(opts Options) AppModel {
	var loginScreen func() screen.Screen
	homeScreen := func(u auth.User) screen.Screen {
		return home.New(home.Deps{
			User:     u,
			Users:    opts.Users,
			Attempts: opts.Attempts,
			Cards:    opts.Cards,
			Doubts:   opts.Doubts,
			Insight:  opts.Insight,
			Login:    func() screen.Screen { return loginScreen() },
		})
	}
	loginScreen = func() screen.Screen {
		return login.New(opts.Users, homeScreen)
	}

	initial := loginScreen()
	if u, err := auth.Current(context.Background(), opts.Users); err == nil && u != nil {
		initial = homeScreen(*u)
	}

	return AppModel{
		router: router.New(initial),
	}
}

func (m AppModel) Init() tea.Cmd {
	active := m.router.Active()
	if active == nil {
		return nil
	}
	return active.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// Screens own Esc so exam sessions can confirm before leaving.
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	userName := ""
	timer := ""
	if active != nil {
		title = active.Title()
		if p, ok := active.(userNameProvider); ok {
			userName = p.UserName()
		}
		if p, ok := active.(timerProvider); ok {
			timer = p.Timer()
		}
	}

	header := layout.RenderHeader(title, userName, timer, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
	}
	if p, ok := active.(screen.KeyHintProvider); ok {
		footerHints = p.KeyHints()
	}
	footerHints = append(footerHints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
