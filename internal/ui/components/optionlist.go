package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/studyflow/studyflow/internal/ui/theme"
)

// OptionList renders exam answer options. Unlike a graded choice
// widget it never reveals the correct answer; it only tracks a cursor
// and the option the student has locked in, which can be changed until
// the exam is submitted.
type OptionList struct {
	Options []string
	Cursor  int
	Chosen  int // -1 when no answer saved yet
}

// NewOptionList creates an option list with no saved answer.
func NewOptionList(options []string, chosen int) OptionList {
	cursor := chosen
	if cursor < 0 {
		cursor = 0
	}
	return OptionList{
		Options: options,
		Cursor:  cursor,
		Chosen:  chosen,
	}
}

// Update handles cursor movement. Choosing is left to the caller so it
// can persist the answer.
func (o OptionList) Update(msg tea.Msg) (OptionList, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if o.Cursor > 0 {
			o.Cursor--
		}
	case "down", "j":
		if o.Cursor < len(o.Options)-1 {
			o.Cursor++
		}
	}

	return o, nil
}

// Choose saves the option under the cursor.
func (o *OptionList) Choose() {
	o.Chosen = o.Cursor
}

// View renders the options with cursor and saved-answer markers.
func (o OptionList) View() string {
	labels := []string{"A", "B", "C", "D", "E", "F"}

	var s string
	for i, opt := range o.Options {
		label := fmt.Sprintf("%d", i+1)
		if i < len(labels) {
			label = labels[i]
		}

		marker := " "
		if i == o.Chosen {
			marker = "●"
		}

		prefix := "  "
		if i == o.Cursor {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s %s)  %s", prefix, marker, label, opt)

		switch {
		case i == o.Cursor:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		case i == o.Chosen:
			s += lipgloss.NewStyle().Foreground(theme.Secondary).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}
	return s
}
