package tutor

import (
	"fmt"
	"strings"
)

func buildDoubtPrompt(question string) string {
	return fmt.Sprintf(`You are an expert tutor on StudyFlow Pro. A student has the following doubt: %q. Provide a clear, educational, and encouraging response. Keep it concise.`, question)
}

func buildInsightPrompt(mistakeTopics []string) string {
	return fmt.Sprintf(`Based on these mistake topics: %s, suggest 3 specific sub-topics to focus on and a one-sentence study tip.`, strings.Join(mistakeTopics, ", "))
}
