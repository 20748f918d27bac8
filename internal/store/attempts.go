package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/studyflow/studyflow/internal/attempt"
)

// AttemptStore is the attempt persistence surface screens depend on.
type AttemptStore interface {
	// LoadAttempts returns every persisted attempt in append order.
	LoadAttempts(ctx context.Context) ([]attempt.ExamAttempt, error)

	// AppendAttempt adds a new attempt to the end of the sequence.
	AppendAttempt(ctx context.Context, a attempt.ExamAttempt) error

	// GetAttempt returns the attempt with the given ID.
	GetAttempt(ctx context.Context, id string) (attempt.ExamAttempt, error)
}

// AttemptRepo reads and appends the durable sequence of exam attempts.
// The sequence lives as one JSON array under KeyAttempts; appends are a
// read-modify-write of the whole array.
type AttemptRepo struct {
	docs *Documents
}

var _ AttemptStore = (*AttemptRepo)(nil)

// LoadAttempts returns every persisted attempt in append order. A
// store that has never been written yields an empty slice.
func (r *AttemptRepo) LoadAttempts(ctx context.Context) ([]attempt.ExamAttempt, error) {
	var attempts []attempt.ExamAttempt
	err := r.docs.Get(ctx, KeyAttempts, &attempts)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return attempts, nil
}

// AppendAttempt adds a new attempt to the end of the stored sequence.
// Existing entries are never edited.
func (r *AttemptRepo) AppendAttempt(ctx context.Context, a attempt.ExamAttempt) error {
	attempts, err := r.LoadAttempts(ctx)
	if err != nil {
		return fmt.Errorf("load existing attempts: %w", err)
	}
	attempts = append(attempts, a)
	return r.docs.Put(ctx, KeyAttempts, attempts)
}

// GetAttempt returns the attempt with the given ID.
func (r *AttemptRepo) GetAttempt(ctx context.Context, id string) (attempt.ExamAttempt, error) {
	attempts, err := r.LoadAttempts(ctx)
	if err != nil {
		return attempt.ExamAttempt{}, err
	}
	for _, a := range attempts {
		if a.ID == id {
			return a, nil
		}
	}
	return attempt.ExamAttempt{}, fmt.Errorf("attempt %s: %w", id, ErrNotFound)
}
