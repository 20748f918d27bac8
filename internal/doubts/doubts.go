// Package doubts implements the ask-a-question feed with AI replies.
package doubts

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DoubtStatus tracks whether a doubt has been answered.
type DoubtStatus string

const (
	StatusOpen     DoubtStatus = "OPEN"
	StatusResolved DoubtStatus = "RESOLVED"
)

// ErrEmptyQuestion is returned when an ask has no content.
var ErrEmptyQuestion = errors.New("doubt content is empty")

// Doubt is a student question and its (eventual) tutor reply.
type Doubt struct {
	ID        string      `json:"id"`
	UserID    string      `json:"userId"`
	Content   string      `json:"content"`
	Response  string      `json:"response,omitempty"`
	Status    DoubtStatus `json:"status"`
	CreatedAt string      `json:"createdAt"`
}

// Repo persists the doubt list.
type Repo interface {
	LoadDoubts(ctx context.Context) ([]Doubt, error)
	SaveDoubts(ctx context.Context, doubts []Doubt) error
}

// Responder produces a tutor reply for a question. Implementations
// must degrade to a fallback string rather than fail.
type Responder interface {
	DoubtResponse(ctx context.Context, question string) string
}

// Service manages the student's doubts backed by a Repo.
type Service struct {
	repo      Repo
	responder Responder
	now       func() time.Time
}

// NewService builds a Service over the given repo and tutor.
func NewService(repo Repo, responder Responder) *Service {
	return &Service{repo: repo, responder: responder, now: time.Now}
}

// List returns all doubts, newest first.
func (s *Service) List(ctx context.Context) ([]Doubt, error) {
	doubts, err := s.repo.LoadDoubts(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Doubt, 0, len(doubts))
	for i := len(doubts) - 1; i >= 0; i-- {
		out = append(out, doubts[i])
	}
	return out, nil
}

// Ask appends an open doubt for the user, fetches the tutor reply, and
// persists the doubt as resolved. The returned doubt carries the reply.
func (s *Service) Ask(ctx context.Context, userID, content string) (Doubt, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return Doubt{}, ErrEmptyQuestion
	}

	d := Doubt{
		ID:        uuid.New().String(),
		UserID:    userID,
		Content:   content,
		Status:    StatusOpen,
		CreatedAt: s.now().UTC().Format(time.RFC3339),
	}

	doubts, err := s.repo.LoadDoubts(ctx)
	if err != nil {
		return Doubt{}, err
	}
	doubts = append(doubts, d)
	if err := s.repo.SaveDoubts(ctx, doubts); err != nil {
		return Doubt{}, err
	}

	d.Response = s.responder.DoubtResponse(ctx, content)
	d.Status = StatusResolved

	doubts[len(doubts)-1] = d
	if err := s.repo.SaveDoubts(ctx, doubts); err != nil {
		return Doubt{}, err
	}
	return d, nil
}
