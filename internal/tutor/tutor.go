// Package tutor produces AI study feedback: doubt answers and topic
// insights. Every call degrades to a static fallback string, so callers
// never see an error and scoring paths are never blocked.
package tutor

import (
	"context"
	"strings"

	"github.com/studyflow/studyflow/internal/llm"
)

// Fallback strings shown when the AI backend fails or returns nothing.
const (
	FallbackDoubtEmpty   = "I'm sorry, I couldn't process your doubt right now."
	FallbackDoubtError   = "Error connecting to AI tutor. Please try again later."
	FallbackInsightEmpty = "Keep practicing!"
	FallbackInsightError = "Keep studying your weak topics!"
)

// Config tunes generation for tutor calls.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns generation settings for short tutor replies.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.7,
	}
}

// Service answers doubts and produces topic insights over an LLM provider.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a tutor service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// DoubtResponse answers a student question. On any backend failure it
// returns a fallback string instead of an error.
func (s *Service) DoubtResponse(ctx context.Context, question string) string {
	if s.provider == nil {
		return FallbackDoubtError
	}
	ctx = llm.WithPurpose(ctx, "doubt")

	req := llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildDoubtPrompt(question)},
		},
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return FallbackDoubtError
	}

	text := strings.TrimSpace(string(resp.Content))
	if text == "" {
		return FallbackDoubtEmpty
	}
	return text
}

// TopicInsight suggests focus areas based on the topics the student got
// wrong. On any backend failure it returns a fallback string.
func (s *Service) TopicInsight(ctx context.Context, mistakeTopics []string) string {
	if s.provider == nil {
		return FallbackInsightError
	}
	ctx = llm.WithPurpose(ctx, "insight")

	req := llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildInsightPrompt(mistakeTopics)},
		},
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return FallbackInsightError
	}

	text := strings.TrimSpace(string(resp.Content))
	if text == "" {
		return FallbackInsightEmpty
	}
	return text
}
