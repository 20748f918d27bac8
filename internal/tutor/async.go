package tutor

import (
	"context"
	"sync"
	"time"
)

// requestTimeout bounds the background insight fetch. A hung provider
// call degrades to the fallback string instead of pending forever.
const requestTimeout = 30 * time.Second

// InsightRequester fetches topic insights in the background so result
// screens can render the score immediately and fill the insight in when
// it arrives. Only one insight is in-flight at a time; new requests
// replace pending ones.
type InsightRequester struct {
	svc *Service

	mu      sync.Mutex
	pending string
	ready   bool
}

// NewInsightRequester wraps a tutor service for async insight fetches.
func NewInsightRequester(svc *Service) *InsightRequester {
	return &InsightRequester{svc: svc}
}

// Request starts an async insight fetch for the given mistake topics.
func (r *InsightRequester) Request(ctx context.Context, mistakeTopics []string) {
	go func() {
		ctx, cancel := context.WithTimeout(ctx, requestTimeout)
		defer cancel()
		text := r.svc.TopicInsight(ctx, mistakeTopics)
		r.mu.Lock()
		defer r.mu.Unlock()
		r.pending = text
		r.ready = true
	}()
}

// Consume returns the pending insight if one is ready.
// Returns ("", false) if no insight is ready yet.
// After consumption, the pending slot is cleared.
func (r *InsightRequester) Consume() (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.ready {
		return "", false
	}
	text := r.pending
	r.pending = ""
	r.ready = false
	return text, true
}
