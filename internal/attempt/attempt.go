// Package attempt implements the exam attempt lifecycle: a timed
// session that captures answers, scores them on submission, and
// produces an immutable attempt record for persistence.
package attempt

// AttemptStatus is the lifecycle status of a persisted attempt.
type AttemptStatus string

const (
	StatusCompleted  AttemptStatus = "COMPLETED"
	StatusInProgress AttemptStatus = "IN_PROGRESS"
)

// UserAnswer records the outcome for a single question. Immutable once
// the attempt is built.
type UserAnswer struct {
	QuestionID string `json:"questionId"`
	// SelectedOption is nil when the question was left unanswered.
	SelectedOption *int `json:"selectedOption"`
	IsCorrect      bool `json:"isCorrect"`
	// TimeSpentSeconds is carried in the schema but not tracked yet;
	// it is always recorded as zero.
	TimeSpentSeconds int `json:"timeSpentSeconds"`
}

// ExamAttempt is one completed pass through an exam. Created exactly
// once at submission; never mutated afterwards.
type ExamAttempt struct {
	ID          string        `json:"id"`
	UserID      string        `json:"userId"`
	ExamID      string        `json:"examId"`
	Score       int           `json:"score"`
	MaxScore    int           `json:"maxScore"`
	Answers     []UserAnswer  `json:"answers"`
	CompletedAt string        `json:"completedAt"`
	Status      AttemptStatus `json:"status"`
}

// Accuracy returns the score as a fraction of the max score, or 0 when
// the max score is zero.
func (a ExamAttempt) Accuracy() float64 {
	if a.MaxScore == 0 {
		return 0
	}
	return float64(a.Score) / float64(a.MaxScore)
}

// CorrectCount returns the number of correct answers.
func (a ExamAttempt) CorrectCount() int {
	n := 0
	for _, ans := range a.Answers {
		if ans.IsCorrect {
			n++
		}
	}
	return n
}

// WrongCount returns the number of answered-but-incorrect answers.
func (a ExamAttempt) WrongCount() int {
	n := 0
	for _, ans := range a.Answers {
		if ans.SelectedOption != nil && !ans.IsCorrect {
			n++
		}
	}
	return n
}

// SkippedCount returns the number of unanswered questions.
func (a ExamAttempt) SkippedCount() int {
	n := 0
	for _, ans := range a.Answers {
		if ans.SelectedOption == nil {
			n++
		}
	}
	return n
}
