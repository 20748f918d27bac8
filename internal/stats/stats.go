// Package stats aggregates attempt history into dashboard figures.
package stats

import (
	"math"
	"sort"

	"github.com/studyflow/studyflow/internal/attempt"
	"github.com/studyflow/studyflow/internal/catalog"
)

// TopicCount pairs a topic label with a mistake count.
type TopicCount struct {
	Topic string
	Count int
}

// DashboardStats summarizes a student's attempt history.
type DashboardStats struct {
	// TotalExams is the number of completed attempts.
	TotalExams int

	// AvgScore is the mean of per-attempt accuracy, as a rounded percent.
	AvgScore int

	// ScoreTrend lists per-attempt accuracy percentages in attempt order.
	ScoreTrend []int

	// TopicMistakes counts wrong answers per topic, most-missed first.
	TopicMistakes []TopicCount

	// Recent holds the last five attempts, newest first.
	Recent []attempt.ExamAttempt
}

// Compute builds DashboardStats from the attempt history. Topics are
// resolved through the exam catalog; answers whose question no longer
// exists fall back to the question ID.
func Compute(attempts []attempt.ExamAttempt, exams []catalog.Exam) DashboardStats {
	s := DashboardStats{TotalExams: len(attempts)}
	if len(attempts) == 0 {
		return s
	}

	byID := make(map[string]*catalog.Exam, len(exams))
	for i := range exams {
		byID[exams[i].ID] = &exams[i]
	}

	var accSum float64
	mistakes := map[string]int{}
	for _, a := range attempts {
		acc := a.Accuracy()
		accSum += acc
		s.ScoreTrend = append(s.ScoreTrend, roundPercent(acc))

		exam := byID[a.ExamID]
		for _, ans := range a.Answers {
			if ans.IsCorrect {
				continue
			}
			mistakes[answerTopic(exam, ans.QuestionID)]++
		}
	}

	s.AvgScore = roundPercent(accSum / float64(len(attempts)))
	s.TopicMistakes = sortedTopics(mistakes)

	n := len(attempts)
	limit := 5
	if n < limit {
		limit = n
	}
	for i := n - 1; i >= n-limit; i-- {
		s.Recent = append(s.Recent, attempts[i])
	}

	return s
}

// MistakeTopics returns the topic of every incorrectly answered
// question in the attempt, in answer order, for insight prompts.
func MistakeTopics(a attempt.ExamAttempt, exam *catalog.Exam) []string {
	var topics []string
	for _, ans := range a.Answers {
		if ans.IsCorrect {
			continue
		}
		topics = append(topics, answerTopic(exam, ans.QuestionID))
	}
	return topics
}

// ScorePercent reports an attempt's accuracy as a rounded percent.
func ScorePercent(a attempt.ExamAttempt) int {
	return roundPercent(a.Accuracy())
}

func answerTopic(exam *catalog.Exam, questionID string) string {
	if exam != nil {
		if q := exam.Question(questionID); q != nil {
			return q.Topic
		}
	}
	return questionID
}

func roundPercent(frac float64) int {
	return int(math.Round(frac * 100))
}

func sortedTopics(mistakes map[string]int) []TopicCount {
	out := make([]TopicCount, 0, len(mistakes))
	for topic, count := range mistakes {
		out = append(out, TopicCount{Topic: topic, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Topic < out[j].Topic
	})
	return out
}
