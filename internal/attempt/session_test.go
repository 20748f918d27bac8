package attempt

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/studyflow/studyflow/internal/catalog"
)

// memStore collects appended attempts; failing is optional.
type memStore struct {
	attempts []ExamAttempt
	failNext bool
}

func (m *memStore) AppendAttempt(_ context.Context, a ExamAttempt) error {
	if m.failNext {
		m.failNext = false
		return errors.New("disk full")
	}
	m.attempts = append(m.attempts, a)
	return nil
}

func testExam(t *testing.T) catalog.Exam {
	t.Helper()
	exam, err := catalog.GetExam("exam1")
	if err != nil {
		t.Fatalf("get exam1: %v", err)
	}
	return exam
}

func TestNewSessionInitialState(t *testing.T) {
	exam := testExam(t)
	s := NewSession(exam)

	if s.State() != StateActive {
		t.Errorf("state = %v, want active", s.State())
	}
	if got, want := s.Remaining(), exam.DurationMinutes*60; got != want {
		t.Errorf("remaining = %d, want %d", got, want)
	}
	if s.AnsweredCount() != 0 {
		t.Errorf("answered = %d, want 0", s.AnsweredCount())
	}
}

func TestSelectAnswer(t *testing.T) {
	s := NewSession(testExam(t))

	if err := s.SelectAnswer("q1", 2); err != nil {
		t.Fatalf("select: %v", err)
	}
	if got := s.Answer("q1"); got != 2 {
		t.Errorf("answer = %d, want 2", got)
	}

	// Overwrite wins.
	if err := s.SelectAnswer("q1", 0); err != nil {
		t.Fatalf("reselect: %v", err)
	}
	if got := s.Answer("q1"); got != 0 {
		t.Errorf("answer after overwrite = %d, want 0", got)
	}
}

func TestSelectAnswerRejectsBadInput(t *testing.T) {
	s := NewSession(testExam(t))

	if err := s.SelectAnswer("nope", 0); err == nil {
		t.Error("expected error for unknown question")
	}
	if err := s.SelectAnswer("q1", 4); err == nil {
		t.Error("expected error for out-of-range option")
	}
	if err := s.SelectAnswer("q1", -1); err == nil {
		t.Error("expected error for negative option")
	}
}

func TestSelectAnswerAfterSubmitFails(t *testing.T) {
	s := NewSession(testExam(t))
	if _, begun := s.BeginSubmit("u1"); !begun {
		t.Fatal("expected submission to begin")
	}
	if err := s.SelectAnswer("q1", 0); !errors.Is(err, ErrNotActive) {
		t.Errorf("err while submitting = %v, want ErrNotActive", err)
	}
	s.FinishSubmit()
	if err := s.SelectAnswer("q1", 0); !errors.Is(err, ErrNotActive) {
		t.Errorf("err after submit = %v, want ErrNotActive", err)
	}
}

func TestToggleReport(t *testing.T) {
	s := NewSession(testExam(t))

	s.ToggleReport("q2")
	if !s.Reported("q2") {
		t.Error("expected q2 reported")
	}
	s.ToggleReport("q2")
	if s.Reported("q2") {
		t.Error("expected q2 unreported after second toggle")
	}
}

func TestTickCountsDownAndTriggersAtZero(t *testing.T) {
	exam := testExam(t)
	s := NewSession(exam)
	s.left = 3

	for i, want := range []bool{false, false, true} {
		got := s.Tick()
		if got != want {
			t.Errorf("tick %d = %v, want %v", i, got, want)
		}
	}
	if s.Remaining() != 0 {
		t.Errorf("remaining = %d, want 0", s.Remaining())
	}

	// Clock never goes negative and never re-fires.
	if s.Tick() {
		t.Error("tick at zero should not fire again")
	}
	if s.Remaining() != 0 {
		t.Errorf("remaining after extra tick = %d, want 0", s.Remaining())
	}
}

func TestTickWhileSubmittingIsNoop(t *testing.T) {
	s := NewSession(testExam(t))
	s.left = 1

	rec, begun := s.BeginSubmit("u1")
	if !begun {
		t.Fatal("expected submission to begin")
	}

	// A tick delivered while the store write is still in flight must
	// neither count down nor trigger a second submission.
	if s.Tick() {
		t.Error("tick while submitting should not fire")
	}
	if s.Remaining() != 1 {
		t.Errorf("remaining changed while submitting: %d", s.Remaining())
	}
	if again, begun := s.BeginSubmit("u1"); begun {
		t.Error("second BeginSubmit while submitting must not begin")
	} else if again.ID != rec.ID {
		t.Errorf("second BeginSubmit returned record %s, want pending %s", again.ID, rec.ID)
	}
}

func TestTickAfterSubmitIsNoop(t *testing.T) {
	s := NewSession(testExam(t))
	if _, begun := s.BeginSubmit("u1"); !begun {
		t.Fatal("expected submission to begin")
	}
	s.FinishSubmit()

	before := s.Remaining()
	if s.Tick() {
		t.Error("tick after submit should not fire")
	}
	if s.Remaining() != before {
		t.Errorf("remaining changed after submit: %d -> %d", before, s.Remaining())
	}
}

func TestSubmitScoresInExamOrder(t *testing.T) {
	exam := testExam(t)
	s := NewSession(exam)
	s.now = func() time.Time { return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC) }

	// Correct options for exam1 are [2, 3, 2, 1]; select [2, 1, 2, 1].
	selections := map[string]int{"q1": 2, "q2": 1, "q3": 2, "q4": 1}
	for id, idx := range selections {
		if err := s.SelectAnswer(id, idx); err != nil {
			t.Fatalf("select %s: %v", id, err)
		}
	}

	store := &memStore{}
	rec, begun := s.BeginSubmit("u1")
	if !begun {
		t.Fatal("expected submission to begin")
	}
	if rec.ID == "" {
		t.Fatal("expected non-empty attempt ID")
	}
	if err := store.AppendAttempt(context.Background(), rec); err != nil {
		t.Fatalf("append: %v", err)
	}
	s.FinishSubmit()
	if len(store.attempts) != 1 {
		t.Fatalf("attempts appended = %d, want 1", len(store.attempts))
	}

	a := store.attempts[0]
	if got := s.AttemptID(); got != a.ID {
		t.Errorf("session attempt ID %s != stored ID %s", got, a.ID)
	}
	if a.Score != 3 {
		t.Errorf("score = %d, want 3", a.Score)
	}
	if a.MaxScore != 4 {
		t.Errorf("maxScore = %d, want 4", a.MaxScore)
	}
	if a.Status != StatusCompleted {
		t.Errorf("status = %s, want COMPLETED", a.Status)
	}
	if a.CompletedAt != "2025-03-01T12:00:00Z" {
		t.Errorf("completedAt = %s", a.CompletedAt)
	}

	if len(a.Answers) != len(exam.Questions) {
		t.Fatalf("answers = %d, want %d", len(a.Answers), len(exam.Questions))
	}
	wantCorrect := []bool{true, false, true, true}
	for i, q := range exam.Questions {
		ans := a.Answers[i]
		if ans.QuestionID != q.ID {
			t.Errorf("answer %d questionId = %s, want %s (exam order)", i, ans.QuestionID, q.ID)
		}
		if ans.IsCorrect != wantCorrect[i] {
			t.Errorf("answer %d correct = %v, want %v", i, ans.IsCorrect, wantCorrect[i])
		}
		if ans.TimeSpentSeconds != 0 {
			t.Errorf("answer %d timeSpent = %d, want 0", i, ans.TimeSpentSeconds)
		}
	}
}

func TestSubmitWithNoAnswers(t *testing.T) {
	exam := testExam(t)
	s := NewSession(exam)
	s.left = 0

	a, begun := s.BeginSubmit("u1")
	if !begun {
		t.Fatal("expected submission to begin")
	}
	if a.Score != 0 {
		t.Errorf("score = %d, want 0", a.Score)
	}
	for i, ans := range a.Answers {
		if ans.SelectedOption != nil {
			t.Errorf("answer %d selectedOption = %v, want nil", i, *ans.SelectedOption)
		}
		if ans.IsCorrect {
			t.Errorf("answer %d marked correct without a selection", i)
		}
	}
}

func TestBeginSubmitIsIdempotent(t *testing.T) {
	s := NewSession(testExam(t))

	first, begun := s.BeginSubmit("u1")
	if !begun {
		t.Fatal("expected first BeginSubmit to begin")
	}
	s.FinishSubmit()

	second, begun := s.BeginSubmit("u1")
	if begun {
		t.Error("BeginSubmit after submit must not begin again")
	}
	if second.ID != first.ID {
		t.Errorf("second record ID %s, want %s", second.ID, first.ID)
	}
	if s.AttemptID() != first.ID {
		t.Errorf("attempt ID = %s, want %s", s.AttemptID(), first.ID)
	}
}

func TestSubmitFailureReturnsToActive(t *testing.T) {
	s := NewSession(testExam(t))
	store := &memStore{failNext: true}

	rec, begun := s.BeginSubmit("u1")
	if !begun {
		t.Fatal("expected submission to begin")
	}
	if err := store.AppendAttempt(context.Background(), rec); err == nil {
		t.Fatal("expected append error")
	}
	s.FailSubmit()
	if s.State() != StateActive {
		t.Errorf("state after failed submit = %v, want active", s.State())
	}
	if s.AttemptID() != "" {
		t.Errorf("attempt ID after failed submit = %q, want empty", s.AttemptID())
	}

	// Retry scores afresh and produces exactly one attempt.
	rec, begun = s.BeginSubmit("u1")
	if !begun {
		t.Fatal("expected retry to begin")
	}
	if err := store.AppendAttempt(context.Background(), rec); err != nil {
		t.Fatalf("retry append: %v", err)
	}
	s.FinishSubmit()
	if s.State() != StateSubmitted {
		t.Errorf("state after retry = %v, want submitted", s.State())
	}
	if len(store.attempts) != 1 {
		t.Errorf("attempts appended = %d, want 1", len(store.attempts))
	}
}
