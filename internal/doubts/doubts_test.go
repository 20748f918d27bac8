package doubts

import (
	"context"
	"testing"
	"time"
)

type memRepo struct {
	doubts []Doubt
	saves  int
}

func (m *memRepo) LoadDoubts(_ context.Context) ([]Doubt, error) {
	out := make([]Doubt, len(m.doubts))
	copy(out, m.doubts)
	return out, nil
}

func (m *memRepo) SaveDoubts(_ context.Context, doubts []Doubt) error {
	m.doubts = make([]Doubt, len(doubts))
	copy(m.doubts, doubts)
	m.saves++
	return nil
}

type stubResponder struct{ reply string }

func (s stubResponder) DoubtResponse(context.Context, string) string { return s.reply }

func TestAskResolvesWithReply(t *testing.T) {
	repo := &memRepo{}
	svc := NewService(repo, stubResponder{reply: "a thread shares memory"})
	svc.now = func() time.Time {
		return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	}

	d, err := svc.Ask(context.Background(), "u1", "  What is a thread?  ")
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	if d.Status != StatusResolved {
		t.Errorf("status = %s, want RESOLVED", d.Status)
	}
	if d.Content != "What is a thread?" {
		t.Errorf("content = %q, not trimmed", d.Content)
	}
	if d.Response != "a thread shares memory" {
		t.Errorf("response = %q", d.Response)
	}
	if d.CreatedAt != "2025-03-01T12:00:00Z" {
		t.Errorf("createdAt = %s", d.CreatedAt)
	}
	if d.ID == "" {
		t.Error("expected generated id")
	}

	if len(repo.doubts) != 1 {
		t.Fatalf("persisted %d doubts, want 1", len(repo.doubts))
	}
	if repo.doubts[0].Status != StatusResolved {
		t.Errorf("persisted status = %s", repo.doubts[0].Status)
	}
	// Open entry first, resolution second.
	if repo.saves != 2 {
		t.Errorf("saves = %d, want 2", repo.saves)
	}
}

func TestAskEmptyQuestion(t *testing.T) {
	svc := NewService(&memRepo{}, stubResponder{})
	if _, err := svc.Ask(context.Background(), "u1", "   "); err != ErrEmptyQuestion {
		t.Errorf("err = %v, want ErrEmptyQuestion", err)
	}
}

func TestListNewestFirst(t *testing.T) {
	repo := &memRepo{doubts: []Doubt{
		{ID: "old", CreatedAt: "2023-10-24T10:00:00Z"},
		{ID: "new", CreatedAt: "2025-03-01T12:00:00Z"},
	}}
	svc := NewService(repo, stubResponder{})

	got, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 || got[0].ID != "new" || got[1].ID != "old" {
		t.Errorf("order = %v", got)
	}
}
