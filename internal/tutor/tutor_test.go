package tutor

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/studyflow/studyflow/internal/llm"
)

func TestDoubtResponse_Success(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`A thread shares memory with its process.`)},
	)
	svc := NewService(mock, DefaultConfig())

	got := svc.DoubtResponse(context.Background(), "What is a thread?")
	if got != "A thread shares memory with its process." {
		t.Fatalf("got %q", got)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, `"What is a thread?"`) {
		t.Errorf("question missing from prompt: %q", prompt)
	}
	if !strings.Contains(prompt, "expert tutor on StudyFlow Pro") {
		t.Errorf("prompt framing missing: %q", prompt)
	}
}

func TestDoubtResponse_ErrorFallback(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
	)
	svc := NewService(mock, DefaultConfig())

	got := svc.DoubtResponse(context.Background(), "anything")
	if got != FallbackDoubtError {
		t.Fatalf("got %q, want error fallback", got)
	}
}

func TestDoubtResponse_EmptyFallback(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`  `)},
	)
	svc := NewService(mock, DefaultConfig())

	got := svc.DoubtResponse(context.Background(), "anything")
	if got != FallbackDoubtEmpty {
		t.Fatalf("got %q, want empty fallback", got)
	}
}

func TestNilProviderFallbacks(t *testing.T) {
	svc := NewService(nil, DefaultConfig())

	if got := svc.DoubtResponse(context.Background(), "anything"); got != FallbackDoubtError {
		t.Errorf("DoubtResponse = %q, want error fallback", got)
	}
	if got := svc.TopicInsight(context.Background(), []string{"OS"}); got != FallbackInsightError {
		t.Errorf("TopicInsight = %q, want error fallback", got)
	}
}

func TestTopicInsight_Success(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`Focus on BFS, DFS, and recursion.`)},
	)
	svc := NewService(mock, DefaultConfig())

	got := svc.TopicInsight(context.Background(), []string{"Graph Theory", "DSA"})
	if got != "Focus on BFS, DFS, and recursion." {
		t.Fatalf("got %q", got)
	}

	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "Graph Theory, DSA") {
		t.Errorf("topics missing from prompt: %q", prompt)
	}
}

func TestTopicInsight_Fallbacks(t *testing.T) {
	errMock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrRateLimit{Err: errors.New("429")}},
	)
	svc := NewService(errMock, DefaultConfig())
	if got := svc.TopicInsight(context.Background(), []string{"OS"}); got != FallbackInsightError {
		t.Fatalf("got %q, want error fallback", got)
	}

	emptyMock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(``)},
	)
	svc = NewService(emptyMock, DefaultConfig())
	if got := svc.TopicInsight(context.Background(), []string{"OS"}); got != FallbackInsightEmpty {
		t.Fatalf("got %q, want empty fallback", got)
	}
}

func TestInsightRequester(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`Revise sorting.`)},
	)
	r := NewInsightRequester(NewService(mock, DefaultConfig()))

	if _, ok := r.Consume(); ok {
		t.Fatal("nothing requested yet")
	}

	r.Request(context.Background(), []string{"DSA"})

	deadline := time.After(2 * time.Second)
	for {
		if text, ok := r.Consume(); ok {
			if text != "Revise sorting." {
				t.Fatalf("got %q", text)
			}
			break
		}
		select {
		case <-deadline:
			t.Fatal("insight never arrived")
		case <-time.After(5 * time.Millisecond):
		}
	}

	// Slot is cleared after consumption.
	if _, ok := r.Consume(); ok {
		t.Fatal("expected cleared slot")
	}
}
