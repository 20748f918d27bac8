// Package examsession renders a timed exam attempt: question
// navigation, answer capture, submission, and the countdown.
package examsession

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/studyflow/studyflow/internal/attempt"
	"github.com/studyflow/studyflow/internal/catalog"
	"github.com/studyflow/studyflow/internal/router"
	"github.com/studyflow/studyflow/internal/screen"
	"github.com/studyflow/studyflow/internal/screens/result"
	"github.com/studyflow/studyflow/internal/store"
	"github.com/studyflow/studyflow/internal/tutor"
	"github.com/studyflow/studyflow/internal/ui/components"
	"github.com/studyflow/studyflow/internal/ui/layout"
)

// processingDelay is the pause between a successful submission and the
// result screen, long enough for the student to register the hand-in.
const processingDelay = 1500 * time.Millisecond

// ExamScreen implements screen.Screen for an in-progress exam.
type ExamScreen struct {
	exam    catalog.Exam
	sess    *attempt.Session
	repo    store.AttemptStore
	insight *tutor.InsightRequester
	userID  string

	current    int
	options    components.OptionList
	confirming bool // submit confirmation dialog
	leaving    bool // abandon confirmation dialog
	processing bool
	submitErr  string
	attemptID  string

	delay time.Duration // processing pause, overridable in tests
}

var _ screen.Screen = (*ExamScreen)(nil)
var _ screen.KeyHintProvider = (*ExamScreen)(nil)

// New creates an exam session screen for the given exam.
func New(exam catalog.Exam, repo store.AttemptStore, insight *tutor.InsightRequester, userID string) *ExamScreen {
	s := &ExamScreen{
		exam:    exam,
		sess:    attempt.NewSession(exam),
		repo:    repo,
		insight: insight,
		userID:  userID,
		delay:   processingDelay,
	}
	s.loadQuestion(0)
	return s
}

func (s *ExamScreen) Init() tea.Cmd {
	return tickCmd()
}

func (s *ExamScreen) Title() string {
	return s.exam.Title
}

// Timer returns the countdown string shown in the header.
func (s *ExamScreen) Timer() string {
	left := s.sess.Remaining()
	return fmt.Sprintf("%d:%02d", left/60, left%60)
}

func (s *ExamScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.confirming, s.leaving:
		return []layout.KeyHint{
			{Key: "Y", Description: "Confirm"},
			{Key: "N", Description: "Cancel"},
		}
	case s.processing:
		return []layout.KeyHint{}
	case s.submitErr != "":
		return []layout.KeyHint{
			{Key: "Enter", Description: "Retry submit"},
			{Key: "Esc", Description: "Keep answering"},
		}
	default:
		return []layout.KeyHint{
			{Key: "←→", Description: "Question"},
			{Key: "↑↓", Description: "Option"},
			{Key: "Enter", Description: "Save answer"},
			{Key: "R", Description: "Report"},
			{Key: "S", Description: "Submit"},
		}
	}
}

func (s *ExamScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		return s.handleTick()
	case submitDoneMsg:
		return s.handleSubmitDone(msg)
	case processingDoneMsg:
		exam, repo, insight, userID := s.exam, s.repo, s.insight, s.userID
		retake := func() screen.Screen {
			return New(exam, repo, insight, userID)
		}
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{
				Screen: result.New(msg.AttemptID, repo, insight, retake),
			}
		}
	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *ExamScreen) handleTick() (screen.Screen, tea.Cmd) {
	if s.sess.State() != attempt.StateActive {
		return s, nil
	}
	if s.sess.Tick() {
		// Time expired: submit whatever has been answered.
		s.confirming = false
		s.leaving = false
		return s, s.submitCmd()
	}
	return s, tickCmd()
}

func (s *ExamScreen) handleSubmitDone(msg submitDoneMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		// Back to active: the student keeps their answers and can retry.
		s.sess.FailSubmit()
		s.submitErr = msg.Err.Error()
		return s, tickCmd()
	}

	s.sess.FinishSubmit()
	s.submitErr = ""
	s.attemptID = msg.AttemptID
	s.processing = true
	id := msg.AttemptID
	return s, tea.Tick(s.delay, func(time.Time) tea.Msg {
		return processingDoneMsg{AttemptID: id}
	})
}

func (s *ExamScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.processing {
		return s, nil
	}

	if s.submitErr != "" {
		switch key {
		case "enter", "s":
			return s, s.submitCmd()
		case "esc":
			s.submitErr = ""
		}
		return s, nil
	}

	if s.confirming {
		switch key {
		case "y", "Y", "enter":
			s.confirming = false
			return s, s.submitCmd()
		case "n", "N", "esc":
			s.confirming = false
		}
		return s, nil
	}

	if s.leaving {
		switch key {
		case "y", "Y":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.leaving = false
		}
		return s, nil
	}

	switch key {
	case "esc":
		s.leaving = true
		return s, nil
	case "s":
		s.confirming = true
		return s, nil
	case "r":
		s.sess.ToggleReport(s.question().ID)
		return s, nil
	case "left", "h":
		if s.current > 0 {
			s.loadQuestion(s.current - 1)
		}
		return s, nil
	case "right", "l":
		if s.current < len(s.exam.Questions)-1 {
			s.loadQuestion(s.current + 1)
		}
		return s, nil
	case "enter":
		return s, s.chooseCurrent()
	case "1", "2", "3", "4":
		idx := int(key[0] - '1')
		if idx < len(s.question().Options) {
			s.options.Cursor = idx
			return s, s.chooseCurrent()
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.options, cmd = s.options.Update(msg)
	return s, cmd
}

// chooseCurrent saves the option under the cursor as the answer.
func (s *ExamScreen) chooseCurrent() tea.Cmd {
	q := s.question()
	if err := s.sess.SelectAnswer(q.ID, s.options.Cursor); err != nil {
		return nil
	}
	s.options.Choose()
	return nil
}

// loadQuestion points the screen at the question with the given index.
func (s *ExamScreen) loadQuestion(idx int) {
	s.current = idx
	q := s.exam.Questions[idx]
	s.options = components.NewOptionList(q.Options, s.sess.Answer(q.ID))
}

func (s *ExamScreen) question() *catalog.Question {
	return &s.exam.Questions[s.current]
}

// submitCmd freezes and scores the session on the event loop, then
// hands only the finished record to the command goroutine for the
// store write. The closure touches no session state.
func (s *ExamScreen) submitCmd() tea.Cmd {
	rec, begun := s.sess.BeginSubmit(s.userID)
	if !begun {
		return nil
	}
	repo := s.repo
	return func() tea.Msg {
		if err := repo.AppendAttempt(context.Background(), rec); err != nil {
			return submitDoneMsg{Err: fmt.Errorf("persist attempt: %w", err)}
		}
		return submitDoneMsg{AttemptID: rec.ID}
	}
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
