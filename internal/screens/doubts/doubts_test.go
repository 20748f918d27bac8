package doubts

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	feed "github.com/studyflow/studyflow/internal/doubts"
)

type memRepo struct {
	doubts []feed.Doubt
}

func (m *memRepo) LoadDoubts(_ context.Context) ([]feed.Doubt, error) {
	return m.doubts, nil
}

func (m *memRepo) SaveDoubts(_ context.Context, d []feed.Doubt) error {
	m.doubts = d
	return nil
}

type stubResponder struct{ reply string }

func (s stubResponder) DoubtResponse(_ context.Context, _ string) string {
	return s.reply
}

func loadedScreen(t *testing.T, repo *memRepo) *DoubtsScreen {
	t.Helper()
	svc := feed.NewService(repo, stubResponder{reply: "a thread is lighter"})
	s := New(svc, "u1")

	// Run the load half of Init's batch directly.
	doubts, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	scr, _ := s.Update(feedLoadedMsg{Doubts: doubts})
	return scr.(*DoubtsScreen)
}

func TestDoubts_AskAppendsResolvedReply(t *testing.T) {
	repo := &memRepo{}
	s := loadedScreen(t, repo)

	s.input.SetValue("What is a thread?")
	scr, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	ds := scr.(*DoubtsScreen)
	if !ds.waiting {
		t.Fatal("expected waiting state while the tutor replies")
	}
	if cmd == nil {
		t.Fatal("expected an ask command")
	}

	scr, _ = ds.Update(cmd())
	ds = scr.(*DoubtsScreen)

	if ds.waiting {
		t.Error("expected waiting to clear")
	}
	if len(ds.doubts) != 1 {
		t.Fatalf("doubts = %d, want 1", len(ds.doubts))
	}
	d := ds.doubts[0]
	if d.Status != feed.StatusResolved {
		t.Errorf("status = %q, want resolved", d.Status)
	}
	if d.Response != "a thread is lighter" {
		t.Errorf("response = %q", d.Response)
	}
	if ds.input.Value() != "" {
		t.Errorf("input = %q, want cleared", ds.input.Value())
	}
}

func TestDoubts_EmptyQuestionIgnored(t *testing.T) {
	s := loadedScreen(t, &memRepo{})

	s.input.SetValue("   ")
	scr, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	ds := scr.(*DoubtsScreen)

	if ds.waiting {
		t.Error("expected no ask for blank input")
	}
	if cmd != nil {
		t.Error("expected no command for blank input")
	}
}

func TestDoubts_SeededFeedNewestFirst(t *testing.T) {
	repo := &memRepo{doubts: []feed.Doubt{
		{ID: "d1", Content: "older", Status: feed.StatusResolved},
		{ID: "d2", Content: "newer", Status: feed.StatusResolved},
	}}
	s := loadedScreen(t, repo)

	if len(s.doubts) != 2 {
		t.Fatalf("doubts = %d, want 2", len(s.doubts))
	}
	if s.doubts[0].ID != "d2" {
		t.Errorf("first = %q, want d2 (newest)", s.doubts[0].ID)
	}
}
