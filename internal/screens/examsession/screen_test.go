package examsession

import (
	"context"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/studyflow/studyflow/internal/attempt"
	"github.com/studyflow/studyflow/internal/catalog"
	"github.com/studyflow/studyflow/internal/router"
	"github.com/studyflow/studyflow/internal/screen"
)

// mockAttemptStore implements store.AttemptStore for testing.
type mockAttemptStore struct {
	attempts  []attempt.ExamAttempt
	appendErr error
}

func (m *mockAttemptStore) LoadAttempts(_ context.Context) ([]attempt.ExamAttempt, error) {
	return m.attempts, nil
}

func (m *mockAttemptStore) AppendAttempt(_ context.Context, a attempt.ExamAttempt) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.attempts = append(m.attempts, a)
	return nil
}

func (m *mockAttemptStore) GetAttempt(_ context.Context, id string) (attempt.ExamAttempt, error) {
	for _, a := range m.attempts {
		if a.ID == id {
			return a, nil
		}
	}
	return attempt.ExamAttempt{}, errors.New("not found")
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testExam() catalog.Exam {
	return catalog.Exam{
		ID:              "exam-t",
		Title:           "Test Exam",
		DurationMinutes: 1,
		TotalMarks:      2,
		Questions: []catalog.Question{
			{ID: "q1", Topic: "DSA", Content: "First?", Options: []string{"a", "b", "c"}, CorrectOption: 1},
			{ID: "q2", Topic: "OS", Content: "Second?", Options: []string{"x", "y"}, CorrectOption: 0},
		},
	}
}

func testExamScreen() (*ExamScreen, *mockAttemptStore) {
	repo := &mockAttemptStore{}
	s := New(testExam(), repo, nil, "u1")
	return s, repo
}

// drainSubmit runs the async submit command and feeds the result back.
func drainSubmit(t *testing.T, s screen.Screen, cmd tea.Cmd) (screen.Screen, tea.Cmd) {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a submit command")
	}
	msg := cmd()
	done, ok := msg.(submitDoneMsg)
	if !ok {
		t.Fatalf("expected submitDoneMsg, got %T", msg)
	}
	return s.Update(done)
}

func TestExamScreen_Title(t *testing.T) {
	s, _ := testExamScreen()
	if s.Title() != "Test Exam" {
		t.Errorf("Title = %q, want %q", s.Title(), "Test Exam")
	}
}

func TestExamScreen_TimerFormat(t *testing.T) {
	s, _ := testExamScreen()
	if got := s.Timer(); got != "1:00" {
		t.Errorf("Timer = %q, want %q", got, "1:00")
	}
}

func TestExamScreen_NavigationAndAnswer(t *testing.T) {
	s, _ := testExamScreen()

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyDown))
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	es := scr.(*ExamScreen)

	if got := es.sess.Answer("q1"); got != 1 {
		t.Errorf("answer for q1 = %d, want 1", got)
	}

	// Move to the second question and answer by number key.
	scr, _ = es.Update(specialKey(tea.KeyRight))
	scr, _ = scr.Update(keyPress('1'))
	es = scr.(*ExamScreen)

	if es.current != 1 {
		t.Errorf("current = %d, want 1", es.current)
	}
	if got := es.sess.Answer("q2"); got != 0 {
		t.Errorf("answer for q2 = %d, want 0", got)
	}
}

func TestExamScreen_AnswerChangeBeforeSubmit(t *testing.T) {
	s, _ := testExamScreen()

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('1'))
	scr, _ = scr.Update(keyPress('3'))
	es := scr.(*ExamScreen)

	if got := es.sess.Answer("q1"); got != 2 {
		t.Errorf("answer for q1 = %d, want 2 after change", got)
	}
}

func TestExamScreen_ReportToggle(t *testing.T) {
	s, _ := testExamScreen()

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('r'))
	es := scr.(*ExamScreen)
	if !es.sess.Reported("q1") {
		t.Error("expected q1 to be reported")
	}

	scr, _ = es.Update(keyPress('r'))
	es = scr.(*ExamScreen)
	if es.sess.Reported("q1") {
		t.Error("expected report flag to clear")
	}
}

func TestExamScreen_SubmitConfirmFlow(t *testing.T) {
	s, repo := testExamScreen()

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('s'))
	es := scr.(*ExamScreen)
	if !es.confirming {
		t.Fatal("expected submit confirmation dialog")
	}

	// Dismiss, then confirm for real.
	scr, _ = es.Update(keyPress('n'))
	es = scr.(*ExamScreen)
	if es.confirming {
		t.Fatal("expected confirmation to be dismissed")
	}

	scr, _ = es.Update(keyPress('s'))
	scr, cmd := scr.Update(keyPress('y'))
	scr, _ = drainSubmit(t, scr, cmd)
	es = scr.(*ExamScreen)

	if len(repo.attempts) != 1 {
		t.Fatalf("persisted attempts = %d, want 1", len(repo.attempts))
	}
	if !es.processing {
		t.Error("expected processing state after successful submit")
	}
	if es.sess.State() != attempt.StateSubmitted {
		t.Errorf("session state = %v, want submitted", es.sess.State())
	}
}

func TestExamScreen_TickDuringSubmitDoesNotResubmit(t *testing.T) {
	s, repo := testExamScreen()

	// Confirm the submit but hold the store-write command, as the
	// runtime would while its goroutine is still running.
	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('s'))
	scr, pending := scr.Update(keyPress('y'))
	es := scr.(*ExamScreen)

	if es.sess.State() != attempt.StateSubmitting {
		t.Fatalf("session state = %v, want submitting before the write lands", es.sess.State())
	}

	// A queued timer tick delivered in between must not count down or
	// kick off a second submission.
	remaining := es.sess.Remaining()
	scr, tick := scr.Update(timerTickMsg{})
	es = scr.(*ExamScreen)
	if tick != nil {
		t.Error("expected no command from a tick while submitting")
	}
	if es.sess.Remaining() != remaining {
		t.Errorf("remaining = %d, want %d while submitting", es.sess.Remaining(), remaining)
	}

	scr, _ = drainSubmit(t, scr, pending)
	es = scr.(*ExamScreen)

	if len(repo.attempts) != 1 {
		t.Fatalf("persisted attempts = %d, want exactly 1", len(repo.attempts))
	}
	if es.attemptID == "" || es.attemptID != repo.attempts[0].ID {
		t.Errorf("screen attempt ID = %q, want stored %q", es.attemptID, repo.attempts[0].ID)
	}
}

func TestExamScreen_SubmitFailureAllowsRetry(t *testing.T) {
	s, repo := testExamScreen()
	repo.appendErr = errors.New("disk full")

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('s'))
	scr, cmd := scr.Update(keyPress('y'))
	scr, _ = drainSubmit(t, scr, cmd)
	es := scr.(*ExamScreen)

	if es.submitErr == "" {
		t.Fatal("expected a submit error banner")
	}
	if es.sess.State() != attempt.StateActive {
		t.Errorf("session state = %v, want active for retry", es.sess.State())
	}

	// Retry after the store recovers.
	repo.appendErr = nil
	scr, cmd = es.Update(specialKey(tea.KeyEnter))
	scr, _ = drainSubmit(t, scr, cmd)
	es = scr.(*ExamScreen)

	if es.submitErr != "" {
		t.Errorf("submit error = %q, want cleared", es.submitErr)
	}
	if len(repo.attempts) != 1 {
		t.Fatalf("persisted attempts = %d, want 1", len(repo.attempts))
	}
}

func TestExamScreen_TimerExpirySubmits(t *testing.T) {
	s, repo := testExamScreen()

	var scr screen.Screen = s
	var cmd tea.Cmd
	for i := 0; i < 60; i++ {
		scr, cmd = scr.Update(timerTickMsg{})
	}
	scr, _ = drainSubmit(t, scr, cmd)
	es := scr.(*ExamScreen)

	if len(repo.attempts) != 1 {
		t.Fatalf("persisted attempts = %d, want 1 after expiry", len(repo.attempts))
	}
	// Expired with nothing answered scores zero.
	if repo.attempts[0].Score != 0 {
		t.Errorf("score = %d, want 0", repo.attempts[0].Score)
	}
	if !es.processing {
		t.Error("expected processing state after auto-submit")
	}
}

func TestExamScreen_AbandonConfirm(t *testing.T) {
	s, _ := testExamScreen()

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	es := scr.(*ExamScreen)
	if !es.leaving {
		t.Fatal("expected abandon confirmation dialog")
	}

	_, cmd := es.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected a command after abandon confirmation")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg after abandon")
	}
}

func TestExamScreen_KeyHints(t *testing.T) {
	s, _ := testExamScreen()
	if len(s.KeyHints()) == 0 {
		t.Error("expected non-empty key hints")
	}
}

func TestExamScreen_ViewRenders(t *testing.T) {
	s, _ := testExamScreen()
	if s.View(80, 24) == "" {
		t.Error("expected non-empty view")
	}
}
