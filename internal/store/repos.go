package store

import (
	"context"
	"errors"

	"github.com/studyflow/studyflow/internal/auth"
	"github.com/studyflow/studyflow/internal/doubts"
	"github.com/studyflow/studyflow/internal/flashcards"
)

// UserRepo persists the signed-in user document.
type UserRepo struct {
	docs *Documents
}

func (r *UserRepo) SaveUser(ctx context.Context, u auth.User) error {
	return r.docs.Put(ctx, KeyUser, u)
}

// LoadUser returns nil when no user is signed in.
func (r *UserRepo) LoadUser(ctx context.Context) (*auth.User, error) {
	var u auth.User
	if err := r.docs.Get(ctx, KeyUser, &u); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) DeleteUser(ctx context.Context) error {
	return r.docs.Delete(ctx, KeyUser)
}

// CardStore is the flashcard persistence surface screens depend on.
type CardStore interface {
	LoadCards(ctx context.Context) ([]flashcards.Card, error)
	SaveCards(ctx context.Context, cards []flashcards.Card) error
}

// FlashcardRepo persists the flashcard deck as one document.
type FlashcardRepo struct {
	docs *Documents
}

var _ CardStore = (*FlashcardRepo)(nil)

// LoadCards returns the persisted deck, seeding it on first use.
func (r *FlashcardRepo) LoadCards(ctx context.Context) ([]flashcards.Card, error) {
	var cards []flashcards.Card
	if err := r.docs.Get(ctx, KeyFlashcards, &cards); err != nil {
		if errors.Is(err, ErrNotFound) {
			return flashcards.SeedCards(), nil
		}
		return nil, err
	}
	return cards, nil
}

func (r *FlashcardRepo) SaveCards(ctx context.Context, cards []flashcards.Card) error {
	return r.docs.Put(ctx, KeyFlashcards, cards)
}

// DoubtRepo persists the doubt feed as one document.
type DoubtRepo struct {
	docs *Documents
}

// LoadDoubts returns the persisted feed, seeding it on first use.
func (r *DoubtRepo) LoadDoubts(ctx context.Context) ([]doubts.Doubt, error) {
	var list []doubts.Doubt
	if err := r.docs.Get(ctx, KeyDoubts, &list); err != nil {
		if errors.Is(err, ErrNotFound) {
			return doubts.SeedDoubts(), nil
		}
		return nil, err
	}
	return list, nil
}

func (r *DoubtRepo) SaveDoubts(ctx context.Context, list []doubts.Doubt) error {
	return r.docs.Put(ctx, KeyDoubts, list)
}
