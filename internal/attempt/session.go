package attempt

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/studyflow/studyflow/internal/catalog"
)

// State is the lifecycle state of an active session. Transitions only
// move forward: Active → Submitting → Submitted.
type State int

const (
	// StateActive: countdown running, answers mutable.
	StateActive State = iota
	// StateSubmitting: countdown stopped, answers frozen, the scored
	// attempt handed off for persistence.
	StateSubmitting
	// StateSubmitted: terminal. The attempt is persisted and its ID
	// assigned.
	StateSubmitted
)

func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateSubmitting:
		return "submitting"
	case StateSubmitted:
		return "submitted"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// ErrNotActive is returned by mutating operations once the session has
// left the active state.
var ErrNotActive = fmt.Errorf("session is no longer active")

// Session drives one timed exam attempt from start to a scored attempt
// record. It is owned by a single goroutine (the UI event loop) and is
// not safe for concurrent use; submission is split into BeginSubmit /
// FinishSubmit / FailSubmit so the owning goroutine performs every
// state transition itself and only the store write runs elsewhere.
type Session struct {
	exam     catalog.Exam
	state    State
	left     int            // remaining seconds
	answers  map[string]int // question ID → selected option index
	reported map[string]bool

	pending   ExamAttempt // scored record awaiting persistence
	attemptID string      // assigned once submission succeeds

	now func() time.Time
}

// NewSession starts a session for the given exam with a full clock and
// no answers selected.
func NewSession(exam catalog.Exam) *Session {
	return &Session{
		exam:     exam,
		state:    StateActive,
		left:     exam.DurationMinutes * 60,
		answers:  make(map[string]int),
		reported: make(map[string]bool),
		now:      time.Now,
	}
}

// Exam returns the exam this session is running.
func (s *Session) Exam() catalog.Exam { return s.exam }

// State returns the current lifecycle state.
func (s *Session) State() State { return s.state }

// Remaining returns the remaining time in seconds.
func (s *Session) Remaining() int { return s.left }

// AttemptID returns the persisted attempt's ID, or "" before submission
// has completed.
func (s *Session) AttemptID() string { return s.attemptID }

// SelectAnswer records the chosen option for a question, overwriting
// any prior selection. Valid only while the session is active.
func (s *Session) SelectAnswer(questionID string, optionIdx int) error {
	if s.state != StateActive {
		return ErrNotActive
	}
	q := s.exam.Question(questionID)
	if q == nil {
		return fmt.Errorf("question %s not in exam %s", questionID, s.exam.ID)
	}
	if optionIdx < 0 || optionIdx >= len(q.Options) {
		return fmt.Errorf("option %d out of range for question %s", optionIdx, questionID)
	}
	s.answers[questionID] = optionIdx
	return nil
}

// Answer returns the selected option for a question, or -1 if
// unanswered.
func (s *Session) Answer(questionID string) int {
	if idx, ok := s.answers[questionID]; ok {
		return idx
	}
	return -1
}

// AnsweredCount returns how many questions have a selection.
func (s *Session) AnsweredCount() int { return len(s.answers) }

// ToggleReport flips the cosmetic "reported as erroneous" flag for a
// question. Flags are session-local and never persisted.
func (s *Session) ToggleReport(questionID string) {
	if s.state != StateActive {
		return
	}
	if s.reported[questionID] {
		delete(s.reported, questionID)
	} else {
		s.reported[questionID] = true
	}
}

// Reported reports whether a question is currently flagged.
func (s *Session) Reported(questionID string) bool {
	return s.reported[questionID]
}

// Tick decrements the remaining time by one second. It returns true
// when the clock has just reached zero, signalling the caller to
// submit. Ticks outside the active state are no-ops.
func (s *Session) Tick() bool {
	if s.state != StateActive || s.left <= 0 {
		return false
	}
	s.left--
	return s.left == 0
}

// BeginSubmit freezes the session and returns the scored attempt
// record for the caller to persist. The transition to the submitting
// state happens here, before any I/O, so every later tick or keypress
// on the owning goroutine already sees a non-active session. Once
// submission has begun or completed, further calls return the pending
// record again with begun=false and nothing is rescored.
func (s *Session) BeginSubmit(userID string) (rec ExamAttempt, begun bool) {
	if s.state != StateActive {
		return s.pending, false
	}
	s.state = StateSubmitting
	s.pending = s.buildAttempt(userID)
	return s.pending, true
}

// FinishSubmit records that the pending attempt was persisted. The
// session is submitted for good and AttemptID reports the stored ID.
func (s *Session) FinishSubmit() {
	if s.state != StateSubmitting {
		return
	}
	s.attemptID = s.pending.ID
	s.state = StateSubmitted
}

// FailSubmit returns the session to the active state after a failed
// store write. Answers and the clock are untouched, so the student can
// keep working and retry; the next BeginSubmit scores afresh.
func (s *Session) FailSubmit() {
	if s.state != StateSubmitting {
		return
	}
	s.pending = ExamAttempt{}
	s.state = StateActive
}

// buildAttempt scores every question in exam order. Unanswered
// questions score as incorrect with a nil selection.
func (s *Session) buildAttempt(userID string) ExamAttempt {
	answers := make([]UserAnswer, 0, len(s.exam.Questions))
	score := 0
	for _, q := range s.exam.Questions {
		ua := UserAnswer{QuestionID: q.ID}
		if idx, ok := s.answers[q.ID]; ok {
			sel := idx
			ua.SelectedOption = &sel
			ua.IsCorrect = idx == q.CorrectOption
		}
		if ua.IsCorrect {
			score++
		}
		answers = append(answers, ua)
	}

	return ExamAttempt{
		ID:          uuid.New().String(),
		UserID:      userID,
		ExamID:      s.exam.ID,
		Score:       score,
		MaxScore:    s.exam.TotalMarks,
		Answers:     answers,
		CompletedAt: s.now().UTC().Format(time.RFC3339),
		Status:      StatusCompleted,
	}
}
