// Package examlist shows the exam catalog and starts exam sessions.
package examlist

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/studyflow/studyflow/internal/catalog"
	"github.com/studyflow/studyflow/internal/router"
	"github.com/studyflow/studyflow/internal/screen"
	"github.com/studyflow/studyflow/internal/screens/examsession"
	"github.com/studyflow/studyflow/internal/store"
	"github.com/studyflow/studyflow/internal/tutor"
	"github.com/studyflow/studyflow/internal/ui/layout"
	"github.com/studyflow/studyflow/internal/ui/theme"
)

// ExamListScreen lists the available exams.
type ExamListScreen struct {
	exams    []catalog.Exam
	selected int

	repo    store.AttemptStore
	insight *tutor.InsightRequester
	userID  string
}

var _ screen.Screen = (*ExamListScreen)(nil)
var _ screen.KeyHintProvider = (*ExamListScreen)(nil)

// New creates an exam list over the full catalog.
func New(repo store.AttemptStore, insight *tutor.InsightRequester, userID string) *ExamListScreen {
	return &ExamListScreen{
		exams:   catalog.ListExams(),
		repo:    repo,
		insight: insight,
		userID:  userID,
	}
}

func (s *ExamListScreen) Init() tea.Cmd {
	return nil
}

func (s *ExamListScreen) Title() string {
	return "Exams"
}

func (s *ExamListScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Start exam"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ExamListScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(s.exams)-1 {
			s.selected++
		}
	case "enter":
		if s.selected >= 0 && s.selected < len(s.exams) {
			exam := s.exams[s.selected]
			return s, func() tea.Msg {
				return router.PushScreenMsg{
					Screen: examsession.New(exam, s.repo, s.insight, s.userID),
				}
			}
		}
	}
	return s, nil
}

func (s *ExamListScreen) View(width, height int) string {
	if len(s.exams) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No exams available.")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, exam := range s.exams {
		title := exam.Title
		meta := fmt.Sprintf("%s  •  %d questions  •  %d min  •  %d marks",
			exam.Category, len(exam.Questions), exam.DurationMinutes, exam.TotalMarks)

		titleStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
		border := theme.Border
		if i == s.selected {
			titleStyle = titleStyle.Foreground(theme.Primary)
			border = theme.Primary
		}

		card := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 2).
			Width(min(width-8, 70)).
			Render(titleStyle.Render(title) + "\n" +
				theme.Hint.Render(exam.Description) + "\n" +
				lipgloss.NewStyle().Foreground(theme.TextDim).Render(meta))

		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))
		b.WriteString("\n")
	}

	return b.String()
}
