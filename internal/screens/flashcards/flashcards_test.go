package flashcards

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	cards "github.com/studyflow/studyflow/internal/flashcards"
)

type mockCardStore struct {
	cards   []cards.Card
	saves   int
	saveErr error
}

func (m *mockCardStore) LoadCards(_ context.Context) ([]cards.Card, error) {
	return m.cards, nil
}

func (m *mockCardStore) SaveCards(_ context.Context, c []cards.Card) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.cards = c
	return nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func testCards() []cards.Card {
	return []cards.Card{
		{ID: "f1", Topic: "DSA", Front: "front1", Back: "back1", Status: cards.StatusNeedRevision},
		{ID: "f2", Topic: "OS", Front: "front2", Back: "back2", Status: cards.StatusNeedRevision},
	}
}

func loadedScreen(t *testing.T, repo *mockCardStore) *FlashcardsScreen {
	t.Helper()
	s := New(repo)
	s.now = func() time.Time {
		return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	}
	scr, _ := s.Update(s.Init()())
	return scr.(*FlashcardsScreen)
}

func TestFlashcards_FlipShowsBack(t *testing.T) {
	s := loadedScreen(t, &mockCardStore{cards: testCards()})

	if s.deck.Flipped() {
		t.Fatal("expected card front first")
	}
	scr, _ := s.Update(keyPress(' '))
	fs := scr.(*FlashcardsScreen)
	if !fs.deck.Flipped() {
		t.Error("expected card to flip")
	}
}

func TestFlashcards_MarkKnownSaves(t *testing.T) {
	repo := &mockCardStore{cards: testCards()}
	s := loadedScreen(t, repo)

	scr, cmd := s.Update(keyPress('k'))
	if cmd == nil {
		t.Fatal("expected a save command")
	}
	if msg, ok := cmd().(deckSavedMsg); !ok || msg.Err != nil {
		t.Fatalf("expected clean deckSavedMsg, got %#v", msg)
	}

	fs := scr.(*FlashcardsScreen)
	if repo.saves != 1 {
		t.Errorf("saves = %d, want 1", repo.saves)
	}
	if repo.cards[0].Status != cards.StatusKnown {
		t.Errorf("status = %q, want known", repo.cards[0].Status)
	}
	if repo.cards[0].LastReviewedAt != "2025-03-01T12:00:00Z" {
		t.Errorf("reviewedAt = %q", repo.cards[0].LastReviewedAt)
	}
	// Marking advances to the next card.
	if fs.deck.Cursor() != 1 {
		t.Errorf("cursor = %d, want 1", fs.deck.Cursor())
	}
}

func TestFlashcards_SaveErrorShown(t *testing.T) {
	repo := &mockCardStore{cards: testCards(), saveErr: errors.New("disk full")}
	s := loadedScreen(t, repo)

	scr, cmd := s.Update(keyPress('x'))
	scr, _ = scr.Update(cmd())
	fs := scr.(*FlashcardsScreen)

	if fs.saveErr == "" {
		t.Fatal("expected save error to surface")
	}
	if fs.View(80, 24) == "" {
		t.Error("expected non-empty view with save error")
	}
}

func TestFlashcards_EmptyDeckView(t *testing.T) {
	s := loadedScreen(t, &mockCardStore{})
	if s.View(80, 24) == "" {
		t.Error("expected non-empty empty-state view")
	}
}
