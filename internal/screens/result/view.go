package result

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/studyflow/studyflow/internal/stats"
	"github.com/studyflow/studyflow/internal/ui/theme"
)

func (s *ResultScreen) View(width, height int) string {
	if s.loadErr != nil {
		return lipgloss.NewStyle().
			Padding(1, 4).
			Render(theme.Incorrect.Render("Could not load attempt: " + s.loadErr.Error()))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Padding(1, 4).
			Render(theme.Hint.Render("Loading result..."))
	}

	var b strings.Builder

	pct := stats.ScorePercent(s.attempt)
	scoreStyle := theme.Correct
	if pct < 50 {
		scoreStyle = theme.Incorrect
	}
	b.WriteString("\n" + scoreStyle.Render(fmt.Sprintf("  %d%%", pct)) +
		theme.Hint.Render(fmt.Sprintf("   %d / %d marks", s.attempt.Score, s.attempt.MaxScore)) + "\n\n")

	correct, wrong, skipped := s.counts()
	b.WriteString("  " +
		theme.Correct.Render(fmt.Sprintf("✓ %d correct", correct)) + "   " +
		theme.Incorrect.Render(fmt.Sprintf("✗ %d wrong", wrong)) + "   " +
		theme.Hint.Render(fmt.Sprintf("− %d skipped", skipped)) + "\n\n")

	b.WriteString(s.insightCard(width) + "\n\n")
	b.WriteString(s.reviewList())

	return lipgloss.NewStyle().Padding(1, 2).Width(width).Render(b.String())
}

// insightCard renders the tutor's take on the attempt. The card shows
// a placeholder until the background fetch lands.
func (s *ResultScreen) insightCard(width int) string {
	title := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("AI Insight")
	body := s.insightText
	if body == "" {
		body = theme.Hint.Render("Loading AI insight...")
	}
	card := theme.Card.Width(min(width-6, 76))
	return card.Render(title + "\n" + body)
}

func (s *ResultScreen) reviewList() string {
	var b strings.Builder
	b.WriteString(theme.Hint.Render("  Review") + "\n")

	for i, ans := range s.attempt.Answers {
		var q string
		var options []string
		correctIdx := -1
		if s.exam != nil {
			if eq := s.exam.Question(ans.QuestionID); eq != nil {
				q = eq.Content
				options = eq.Options
				correctIdx = eq.CorrectOption
			}
		}
		if q == "" {
			q = ans.QuestionID
		}

		mark := theme.Hint.Render("−")
		switch {
		case ans.SelectedOption == nil:
		case ans.IsCorrect:
			mark = theme.Correct.Render("✓")
		default:
			mark = theme.Incorrect.Render("✗")
		}

		line := fmt.Sprintf("  %s %d. %s", mark, i+1, q)
		if i == s.cursor {
			line = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
				Render(fmt.Sprintf("▸ %d. %s", i+1, q))
			b.WriteString(line + "\n")
			b.WriteString(s.reviewDetail(ans.SelectedOption, correctIdx, options))
			continue
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

// reviewDetail expands the cursored question: the student's pick, the
// right answer, and the explanation when the catalog has one.
func (s *ResultScreen) reviewDetail(selected *int, correctIdx int, options []string) string {
	var b strings.Builder

	if selected != nil && *selected >= 0 && *selected < len(options) {
		b.WriteString("      " + theme.Hint.Render("Your answer: ") + options[*selected] + "\n")
	} else {
		b.WriteString("      " + theme.Hint.Render("Your answer: ") + theme.Hint.Render("skipped") + "\n")
	}
	if correctIdx >= 0 && correctIdx < len(options) {
		b.WriteString("      " + theme.Hint.Render("Correct:     ") +
			theme.Correct.Render(options[correctIdx]) + "\n")
	}

	if s.exam != nil && s.cursor < len(s.attempt.Answers) {
		if eq := s.exam.Question(s.attempt.Answers[s.cursor].QuestionID); eq != nil && eq.Explanation != "" {
			b.WriteString("      " + theme.Hint.Render(eq.Explanation) + "\n")
		}
	}
	return b.String()
}
