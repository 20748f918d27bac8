package examsession

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/studyflow/studyflow/internal/ui/theme"
)

func (s *ExamScreen) View(width, height int) string {
	if s.processing {
		return s.processingView(width, height)
	}

	var b strings.Builder

	q := s.question()

	progress := theme.Hint.Render(fmt.Sprintf(
		"Question %d of %d   •   %d answered",
		s.current+1, len(s.exam.Questions), s.sess.AnsweredCount(),
	))
	b.WriteString("\n" + progress + "\n\n")

	b.WriteString(s.palette() + "\n\n")

	topic := lipgloss.NewStyle().Foreground(theme.Accent).Render("[" + q.Topic + "]")
	question := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(q.Content)
	line := topic + "  " + question
	if s.sess.Reported(q.ID) {
		line += "  " + lipgloss.NewStyle().Foreground(theme.Error).Render("⚑ reported")
	}
	b.WriteString(line + "\n\n")

	b.WriteString(s.options.View())

	if s.submitErr != "" {
		b.WriteString("\n" + theme.Incorrect.Render(
			"Could not save your attempt: "+s.submitErr) + "\n" +
			theme.Hint.Render("Your answers are intact. Press Enter to retry.") + "\n")
	}

	if s.confirming {
		unanswered := len(s.exam.Questions) - s.sess.AnsweredCount()
		prompt := "Submit exam now?"
		if unanswered > 0 {
			prompt = fmt.Sprintf("Submit exam with %d unanswered question(s)?", unanswered)
		}
		b.WriteString("\n" + s.confirmBox(prompt))
	}

	if s.leaving {
		b.WriteString("\n" + s.confirmBox("Abandon this exam? Your answers will be lost."))
	}

	content := lipgloss.NewStyle().
		Padding(1, 4).
		Width(width).
		Render(b.String())

	return content
}

// palette renders one cell per question so the student can see which
// questions still need an answer.
func (s *ExamScreen) palette() string {
	cells := make([]string, 0, len(s.exam.Questions))
	for i, q := range s.exam.Questions {
		label := fmt.Sprintf(" %d ", i+1)

		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if s.sess.Answer(q.ID) >= 0 {
			style = lipgloss.NewStyle().Foreground(theme.Secondary)
		}
		if i == s.current {
			style = style.Reverse(true).Bold(true)
		}
		cells = append(cells, style.Render(label))
	}
	return strings.Join(cells, " ")
}

func (s *ExamScreen) confirmBox(prompt string) string {
	body := prompt + "\n\n" +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("[Y] yes   [N] no")
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Accent).
		Padding(0, 2).
		Render(body) + "\n"
}

func (s *ExamScreen) processingView(width, height int) string {
	msg := theme.Title.Render("Submitting your answers...") + "\n\n" +
		theme.Subtitle.Render("Scoring your attempt, one moment.")
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(msg)
}
