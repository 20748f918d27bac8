// Package catalog holds the static registry of exams available in
// StudyFlow. Exam and question definitions are immutable: they are
// declared at init time and never mutated by the rest of the app.
package catalog

import (
	"errors"
	"fmt"
)

// ErrExamNotFound is returned when an exam ID is not in the registry.
var ErrExamNotFound = errors.New("exam not found")

// Question is a single multiple-choice question.
type Question struct {
	ID            string   `json:"id"`
	Topic         string   `json:"topic"`
	Content       string   `json:"content"`
	Options       []string `json:"options"`
	CorrectOption int      `json:"correctOption"`
	Explanation   string   `json:"explanation"`
	// Weight is carried in the schema but scoring is currently
	// unweighted: every correct answer is worth one point.
	Weight int `json:"weight"`
}

// Exam is an ordered set of questions with a time limit.
type Exam struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	DurationMinutes int        `json:"durationMinutes"`
	TotalMarks      int        `json:"totalMarks"`
	Questions       []Question `json:"questions"`
	Category        string     `json:"category"`
}

// Validate checks the structural invariants of an exam definition.
func (e Exam) Validate() error {
	if e.ID == "" {
		return errors.New("exam has empty ID")
	}
	if e.DurationMinutes <= 0 {
		return fmt.Errorf("exam %s: duration must be positive", e.ID)
	}
	if len(e.Questions) == 0 {
		return fmt.Errorf("exam %s: no questions", e.ID)
	}
	seen := make(map[string]bool, len(e.Questions))
	for _, q := range e.Questions {
		if q.ID == "" {
			return fmt.Errorf("exam %s: question with empty ID", e.ID)
		}
		if seen[q.ID] {
			return fmt.Errorf("exam %s: duplicate question ID %s", e.ID, q.ID)
		}
		seen[q.ID] = true
		if len(q.Options) < 2 {
			return fmt.Errorf("exam %s, question %s: needs at least 2 options", e.ID, q.ID)
		}
		if q.CorrectOption < 0 || q.CorrectOption >= len(q.Options) {
			return fmt.Errorf("exam %s, question %s: correct option %d out of range", e.ID, q.ID, q.CorrectOption)
		}
		if q.Weight <= 0 {
			return fmt.Errorf("exam %s, question %s: weight must be positive", e.ID, q.ID)
		}
	}
	return nil
}

// Question returns the question with the given ID, or nil.
func (e Exam) Question(id string) *Question {
	for i := range e.Questions {
		if e.Questions[i].ID == id {
			return &e.Questions[i]
		}
	}
	return nil
}

// ListExams returns all exams in registry order.
func ListExams() []Exam {
	out := make([]Exam, len(exams))
	copy(out, exams)
	return out
}

// GetExam looks up an exam by ID.
func GetExam(id string) (Exam, error) {
	for _, e := range exams {
		if e.ID == id {
			return e, nil
		}
	}
	return Exam{}, fmt.Errorf("%w: %s", ErrExamNotFound, id)
}
