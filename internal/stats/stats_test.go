package stats

import (
	"testing"

	"github.com/studyflow/studyflow/internal/attempt"
	"github.com/studyflow/studyflow/internal/catalog"
)

func option(n int) *int { return &n }

func testExams() []catalog.Exam {
	return []catalog.Exam{{
		ID:         "exam1",
		Title:      "CS Fundamentals",
		TotalMarks: 4,
		Questions: []catalog.Question{
			{ID: "q1", Topic: "DSA", Options: []string{"a", "b"}, CorrectOption: 0},
			{ID: "q2", Topic: "OS", Options: []string{"a", "b"}, CorrectOption: 1},
			{ID: "q3", Topic: "DSA", Options: []string{"a", "b"}, CorrectOption: 0},
			{ID: "q4", Topic: "Networking", Options: []string{"a", "b"}, CorrectOption: 1},
		},
	}}
}

func testAttempts() []attempt.ExamAttempt {
	return []attempt.ExamAttempt{
		{
			ID: "a1", ExamID: "exam1", Score: 2, MaxScore: 4,
			Answers: []attempt.UserAnswer{
				{QuestionID: "q1", SelectedOption: option(0), IsCorrect: true},
				{QuestionID: "q2", SelectedOption: option(0), IsCorrect: false},
				{QuestionID: "q3", SelectedOption: option(0), IsCorrect: true},
				{QuestionID: "q4", SelectedOption: nil, IsCorrect: false},
			},
		},
		{
			ID: "a2", ExamID: "exam1", Score: 3, MaxScore: 4,
			Answers: []attempt.UserAnswer{
				{QuestionID: "q1", SelectedOption: option(0), IsCorrect: true},
				{QuestionID: "q2", SelectedOption: option(1), IsCorrect: true},
				{QuestionID: "q3", SelectedOption: option(1), IsCorrect: false},
				{QuestionID: "q4", SelectedOption: option(1), IsCorrect: true},
			},
		},
	}
}

func TestComputeEmpty(t *testing.T) {
	s := Compute(nil, testExams())
	if s.TotalExams != 0 || s.AvgScore != 0 {
		t.Errorf("empty stats = %+v", s)
	}
	if len(s.Recent) != 0 || len(s.TopicMistakes) != 0 {
		t.Errorf("expected empty aggregates: %+v", s)
	}
}

func TestComputeAggregates(t *testing.T) {
	s := Compute(testAttempts(), testExams())

	if s.TotalExams != 2 {
		t.Errorf("TotalExams = %d, want 2", s.TotalExams)
	}
	// Mean of 50% and 75%.
	if s.AvgScore != 63 {
		t.Errorf("AvgScore = %d, want 63", s.AvgScore)
	}
	if len(s.ScoreTrend) != 2 || s.ScoreTrend[0] != 50 || s.ScoreTrend[1] != 75 {
		t.Errorf("ScoreTrend = %v", s.ScoreTrend)
	}

	// Mistakes: a1 wrong on q2 (OS), q4 (Networking); a2 wrong on q3 (DSA).
	want := []TopicCount{{"DSA", 1}, {"Networking", 1}, {"OS", 1}}
	if len(s.TopicMistakes) != len(want) {
		t.Fatalf("TopicMistakes = %v", s.TopicMistakes)
	}
	for i, tc := range want {
		if s.TopicMistakes[i] != tc {
			t.Errorf("TopicMistakes[%d] = %v, want %v", i, s.TopicMistakes[i], tc)
		}
	}

	// Newest first.
	if len(s.Recent) != 2 || s.Recent[0].ID != "a2" || s.Recent[1].ID != "a1" {
		t.Errorf("Recent = %v", s.Recent)
	}
}

func TestRecentCapsAtFive(t *testing.T) {
	var attempts []attempt.ExamAttempt
	for _, id := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		attempts = append(attempts, attempt.ExamAttempt{ID: id, ExamID: "exam1", MaxScore: 4})
	}

	s := Compute(attempts, testExams())
	if len(s.Recent) != 5 {
		t.Fatalf("Recent = %d entries, want 5", len(s.Recent))
	}
	if s.Recent[0].ID != "g" || s.Recent[4].ID != "c" {
		t.Errorf("Recent order = %v", s.Recent)
	}
}

func TestMistakeTopics(t *testing.T) {
	exams := testExams()
	topics := MistakeTopics(testAttempts()[0], &exams[0])
	if len(topics) != 2 || topics[0] != "OS" || topics[1] != "Networking" {
		t.Errorf("topics = %v", topics)
	}

	// Unknown question falls back to its ID; nil exam likewise.
	a := attempt.ExamAttempt{Answers: []attempt.UserAnswer{
		{QuestionID: "gone", IsCorrect: false},
	}}
	topics = MistakeTopics(a, nil)
	if len(topics) != 1 || topics[0] != "gone" {
		t.Errorf("fallback topics = %v", topics)
	}
}

func TestScorePercent(t *testing.T) {
	a := attempt.ExamAttempt{Score: 1, MaxScore: 3}
	if got := ScorePercent(a); got != 33 {
		t.Errorf("ScorePercent = %d, want 33", got)
	}
}
