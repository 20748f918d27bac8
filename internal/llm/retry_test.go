package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

// fastRetry keeps test backoff in the low milliseconds.
func fastRetry() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: 1 * time.Millisecond,
		MaxWait:     10 * time.Millisecond,
		Multiplier:  2.0,
	}
}

var doubtAnswer = json.RawMessage(`{"answer":"An acid donates protons; a base accepts them."}`)

func doubtRequest() Request {
	return Request{
		System:   "You are a study tutor.",
		Messages: []Message{{Role: RoleUser, Content: "What distinguishes an acid from a base?"}},
	}
}

func TestRetryFirstAttemptSucceeds(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: doubtAnswer})
	p := WithRetry(mock, fastRetry())

	resp, err := p.Generate(context.Background(), doubtRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != string(doubtAnswer) {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("calls = %d, want 1", mock.CallCount())
	}
}

func TestRetryRecoversFromOutage(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("connection reset")}},
		MockResponse{Content: doubtAnswer},
	)
	p := WithRetry(mock, fastRetry())

	resp, err := p.Generate(context.Background(), doubtRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != string(doubtAnswer) {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("calls = %d, want 2", mock.CallCount())
	}
}

func TestRetryGivesUpAfterMaxAttempts(t *testing.T) {
	down := MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("connection reset")}}
	mock := NewMockProvider(down, down, down)
	p := WithRetry(mock, fastRetry())

	_, err := p.Generate(context.Background(), doubtRequest())
	if err == nil {
		t.Fatal("expected error")
	}
	if mock.CallCount() != 3 {
		t.Fatalf("calls = %d, want 3", mock.CallCount())
	}
}

func TestRetryDoesNotRepeatTruncatedResponse(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrMaxTokensExceeded{Content: json.RawMessage(`{"answer":"An aci`)}},
	)
	p := WithRetry(mock, fastRetry())

	_, err := p.Generate(context.Background(), doubtRequest())
	var maxTok *ErrMaxTokensExceeded
	if !errors.As(err, &maxTok) {
		t.Fatalf("expected ErrMaxTokensExceeded, got %T", err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("calls = %d, want 1 (truncation is not transient)", mock.CallCount())
	}
}

func TestRetrySchemaViolationGetsOneMoreChance(t *testing.T) {
	bad := MockResponse{Err: &ErrInvalidResponse{
		Content: json.RawMessage(`Sure! Acids donate protons.`),
		Err:     errors.New("not a JSON object"),
	}}
	mock := NewMockProvider(bad, bad,
		MockResponse{Content: doubtAnswer}, // never reached
	)
	p := WithRetry(mock, fastRetry())

	_, err := p.Generate(context.Background(), doubtRequest())
	if err == nil {
		t.Fatal("expected error")
	}
	if mock.CallCount() != 2 {
		t.Fatalf("calls = %d, want 2 (one retry for invalid output)", mock.CallCount())
	}
}

func TestRetryStopsOnCanceledContext(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("connection reset")}},
		MockResponse{Content: doubtAnswer},
	)
	p := WithRetry(mock, fastRetry())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := p.Generate(ctx, doubtRequest()); err == nil {
		t.Fatal("expected error")
	}
}

func TestRetryHonorsRetryAfter(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrRateLimit{RetryAfter: 1 * time.Millisecond, Err: errors.New("429")}},
		MockResponse{Content: doubtAnswer},
	)
	p := WithRetry(mock, fastRetry())

	resp, err := p.Generate(context.Background(), doubtRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != string(doubtAnswer) {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("calls = %d, want 2", mock.CallCount())
	}
}

func TestRetryDelegatesModelID(t *testing.T) {
	p := WithRetry(NewMockProvider(), fastRetry())
	if p.ModelID() != "mock" {
		t.Fatalf("ModelID = %q, want mock", p.ModelID())
	}
}
