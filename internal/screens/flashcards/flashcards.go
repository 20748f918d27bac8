// Package flashcards is the flashcard review screen: flip through the
// deck and mark cards known or needing revision.
package flashcards

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	cards "github.com/studyflow/studyflow/internal/flashcards"
	"github.com/studyflow/studyflow/internal/router"
	"github.com/studyflow/studyflow/internal/screen"
	"github.com/studyflow/studyflow/internal/store"
	"github.com/studyflow/studyflow/internal/ui/components"
	"github.com/studyflow/studyflow/internal/ui/layout"
	"github.com/studyflow/studyflow/internal/ui/theme"
)

type deckLoadedMsg struct {
	Cards []cards.Card
	Err   error
}

type deckSavedMsg struct {
	Err error
}

// FlashcardsScreen reviews the persisted deck one card at a time.
type FlashcardsScreen struct {
	repo store.CardStore

	deck    *cards.Deck
	loaded  bool
	errMsg  string
	saveErr string

	now func() time.Time
}

var _ screen.Screen = (*FlashcardsScreen)(nil)
var _ screen.KeyHintProvider = (*FlashcardsScreen)(nil)

// New creates a new FlashcardsScreen.
func New(repo store.CardStore) *FlashcardsScreen {
	return &FlashcardsScreen{repo: repo, now: time.Now}
}

func (s *FlashcardsScreen) Init() tea.Cmd {
	return func() tea.Msg {
		loaded, err := s.repo.LoadCards(context.Background())
		return deckLoadedMsg{Cards: loaded, Err: err}
	}
}

func (s *FlashcardsScreen) Title() string {
	return "Flashcards"
}

func (s *FlashcardsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Space", Description: "Flip"},
		{Key: "←→", Description: "Card"},
		{Key: "K", Description: "Known"},
		{Key: "X", Description: "Revise"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *FlashcardsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case deckLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.deck = cards.NewDeck(msg.Cards)
		}
		s.loaded = true
		return s, nil

	case deckSavedMsg:
		if msg.Err != nil {
			s.saveErr = msg.Err.Error()
		} else {
			s.saveErr = ""
		}
		return s, nil

	case tea.KeyMsg:
		if s.deck == nil {
			if msg.String() == "esc" {
				return s, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return s, nil
		}
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case " ", "space", "enter":
			s.deck.Flip()
		case "left", "h":
			s.deck.Prev()
		case "right", "l":
			s.deck.Next()
		case "k":
			s.deck.Mark(cards.StatusKnown, s.now().UTC().Format(time.RFC3339))
			return s, s.saveCmd()
		case "x":
			s.deck.Mark(cards.StatusNeedRevision, s.now().UTC().Format(time.RFC3339))
			return s, s.saveCmd()
		}
	}
	return s, nil
}

// saveCmd writes the deck back after a card is marked.
func (s *FlashcardsScreen) saveCmd() tea.Cmd {
	snapshot := s.deck.Cards()
	return func() tea.Msg {
		return deckSavedMsg{Err: s.repo.SaveCards(context.Background(), snapshot)}
	}
}

func (s *FlashcardsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading flashcards...")
	}
	if s.deck == nil || s.deck.Len() == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No flashcards yet.")
	}

	card := s.deck.Current()

	face := card.Front
	faceLabel := "Question"
	if s.deck.Flipped() {
		face = card.Back
		faceLabel = "Answer"
	}

	topic := lipgloss.NewStyle().Foreground(theme.Accent).Render("[" + card.Topic + "]")
	label := theme.Hint.Render(faceLabel)

	status := theme.Hint.Render("needs revision")
	if card.Status == cards.StatusKnown {
		status = theme.Correct.Render("known")
	}

	body := topic + "  " + label + "\n\n" +
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(face) + "\n\n" +
		status

	cardBox := theme.Card.Width(min(width-10, 64)).Render(body)

	counter := theme.Hint.Render(fmt.Sprintf("Card %d of %d", s.deck.Cursor()+1, s.deck.Len()))

	percent := float64(s.deck.KnownCount()) / float64(s.deck.Len())
	bar := components.NewProgressBar("Known", percent, true, min(width-10, 40)).View()

	out := "\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, counter) + "\n\n" +
		lipgloss.PlaceHorizontal(width, lipgloss.Center, cardBox) + "\n\n" +
		lipgloss.PlaceHorizontal(width, lipgloss.Center, bar)

	if s.saveErr != "" {
		out += "\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Incorrect.Render("Could not save deck: "+s.saveErr))
	}
	return out
}
