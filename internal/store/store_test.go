package store

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/studyflow/studyflow/internal/attempt"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil DB handle")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestDocumentsRoundTrip(t *testing.T) {
	s := openTestStore(t)
	docs := s.Documents()
	ctx := context.Background()

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	var missing payload
	if err := docs.Get(ctx, "absent", &missing); err == nil {
		t.Fatal("expected ErrNotFound for missing key")
	}

	in := payload{Name: "alex", Count: 3}
	if err := docs.Put(ctx, "k", in); err != nil {
		t.Fatalf("put: %v", err)
	}

	var out payload
	if err := docs.Get(ctx, "k", &out); err != nil {
		t.Fatalf("get: %v", err)
	}
	if out != in {
		t.Errorf("round trip = %+v, want %+v", out, in)
	}

	// Overwrite replaces the whole value.
	if err := docs.Put(ctx, "k", payload{Name: "sam"}); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	if err := docs.Get(ctx, "k", &out); err != nil {
		t.Fatalf("get after overwrite: %v", err)
	}
	if out.Name != "sam" || out.Count != 0 {
		t.Errorf("after overwrite = %+v", out)
	}

	if err := docs.Delete(ctx, "k"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := docs.Get(ctx, "k", &out); err == nil {
		t.Fatal("expected ErrNotFound after delete")
	}
	// Deleting a missing key is fine.
	if err := docs.Delete(ctx, "k"); err != nil {
		t.Fatalf("delete missing: %v", err)
	}
}

func sampleAttempt(id string) attempt.ExamAttempt {
	two := 2
	return attempt.ExamAttempt{
		ID:       id,
		UserID:   "u1",
		ExamID:   "exam1",
		Score:    1,
		MaxScore: 4,
		Answers: []attempt.UserAnswer{
			{QuestionID: "q1", SelectedOption: &two, IsCorrect: true},
			{QuestionID: "q2", SelectedOption: nil, IsCorrect: false},
		},
		CompletedAt: "2025-03-01T12:00:00Z",
		Status:      attempt.StatusCompleted,
	}
}

func TestAttemptRepoAppendAndLoad(t *testing.T) {
	s := openTestStore(t)
	repo := s.AttemptRepo()
	ctx := context.Background()

	attempts, err := repo.LoadAttempts(ctx)
	if err != nil {
		t.Fatalf("load (empty): %v", err)
	}
	if len(attempts) != 0 {
		t.Fatalf("expected no attempts, got %d", len(attempts))
	}

	a1 := sampleAttempt("a1")
	a2 := sampleAttempt("a2")
	if err := repo.AppendAttempt(ctx, a1); err != nil {
		t.Fatalf("append a1: %v", err)
	}
	if err := repo.AppendAttempt(ctx, a2); err != nil {
		t.Fatalf("append a2: %v", err)
	}

	attempts, err = repo.LoadAttempts(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(attempts) != 2 {
		t.Fatalf("attempts = %d, want 2", len(attempts))
	}
	if attempts[0].ID != "a1" || attempts[1].ID != "a2" {
		t.Errorf("append order lost: %s, %s", attempts[0].ID, attempts[1].ID)
	}

	// Field-for-field JSON round-trip stability.
	if !reflect.DeepEqual(attempts[0], a1) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", attempts[0], a1)
	}
}

func TestAttemptRepoGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.AttemptRepo()
	ctx := context.Background()

	if err := repo.AppendAttempt(ctx, sampleAttempt("a1")); err != nil {
		t.Fatalf("append: %v", err)
	}

	got, err := repo.GetAttempt(ctx, "a1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != "a1" {
		t.Errorf("got.ID = %s", got.ID)
	}

	if _, err := repo.GetAttempt(ctx, "missing"); err == nil {
		t.Fatal("expected error for missing attempt")
	}
}

func TestLLMEventRepo(t *testing.T) {
	s := openTestStore(t)
	repo := s.LLMEventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "gemini",
		Model:        "gemini-2.0-flash",
		Purpose:      "doubt",
		InputTokens:  10,
		OutputTokens: 20,
		LatencyMs:    350,
		Success:      true,
		RequestBody:  "[user]\nhello",
		ResponseBody: "hi",
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	err = repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "gemini",
		Model:        "gemini-2.0-flash",
		Purpose:      "insight",
		InputTokens:  5,
		OutputTokens: 15,
		LatencyMs:    250,
		Success:      false,
		ErrorMessage: "rate limited",
	})
	if err != nil {
		t.Fatalf("append second: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 10})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("events = %d, want 2", len(events))
	}
	// Newest first.
	if events[0].Purpose != "insight" {
		t.Errorf("events[0].Purpose = %s, want insight", events[0].Purpose)
	}
	if events[0].Success {
		t.Error("events[0] should be a failure")
	}
	for i, e := range events {
		if e.Timestamp.IsZero() {
			t.Errorf("events[%d].Timestamp is zero", i)
		}
	}

	full, err := repo.GetLLMEvent(ctx, events[1].ID)
	if err != nil {
		t.Fatalf("get event: %v", err)
	}
	if full == nil || full.RequestBody != "[user]\nhello" {
		t.Errorf("request body not preserved: %+v", full)
	}

	missing, err := repo.GetLLMEvent(ctx, 9999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for missing event")
	}

	stats, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("stats = %d, want 2", len(stats))
	}

	models, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("model usage: %v", err)
	}
	if len(models) != 1 || models[0].Calls != 2 {
		t.Errorf("model usage = %+v", models)
	}
}
