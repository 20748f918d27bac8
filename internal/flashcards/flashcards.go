// Package flashcards implements the two-sided review deck.
package flashcards

// CardStatus tracks whether a card still needs review.
type CardStatus string

const (
	StatusNeedRevision CardStatus = "NEED_REVISION"
	StatusKnown        CardStatus = "KNOWN"
)

// Card is a single front/back flashcard.
type Card struct {
	ID             string     `json:"id"`
	Topic          string     `json:"topic"`
	Front          string     `json:"front"`
	Back           string     `json:"back"`
	Status         CardStatus `json:"status"`
	LastReviewedAt string     `json:"lastReviewedAt,omitempty"`
}

// Deck holds an ordered set of cards and a review cursor. The zero
// value is an empty deck.
type Deck struct {
	cards   []Card
	cursor  int
	flipped bool
}

// NewDeck builds a deck over the given cards. The slice is copied.
func NewDeck(cards []Card) *Deck {
	d := &Deck{cards: make([]Card, len(cards))}
	copy(d.cards, cards)
	return d
}

// Cards returns a copy of the deck contents in order.
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}

// Len reports the number of cards in the deck.
func (d *Deck) Len() int { return len(d.cards) }

// Current returns the card under the cursor, or nil for an empty deck.
func (d *Deck) Current() *Card {
	if len(d.cards) == 0 {
		return nil
	}
	c := d.cards[d.cursor]
	return &c
}

// Cursor reports the zero-based position of the current card.
func (d *Deck) Cursor() int { return d.cursor }

// Flipped reports whether the current card shows its back side.
func (d *Deck) Flipped() bool { return d.flipped }

// Flip toggles the current card between front and back.
func (d *Deck) Flip() { d.flipped = !d.flipped }

// Next advances to the following card, wrapping at the end, and resets
// the card to its front side.
func (d *Deck) Next() {
	if len(d.cards) == 0 {
		return
	}
	d.cursor = (d.cursor + 1) % len(d.cards)
	d.flipped = false
}

// Prev moves to the previous card, wrapping at the start.
func (d *Deck) Prev() {
	if len(d.cards) == 0 {
		return
	}
	d.cursor = (d.cursor - 1 + len(d.cards)) % len(d.cards)
	d.flipped = false
}

// Mark sets the current card's status and review timestamp, then
// advances to the next card.
func (d *Deck) Mark(status CardStatus, reviewedAt string) {
	if len(d.cards) == 0 {
		return
	}
	d.cards[d.cursor].Status = status
	d.cards[d.cursor].LastReviewedAt = reviewedAt
	d.Next()
}

// KnownCount reports how many cards are marked known.
func (d *Deck) KnownCount() int {
	n := 0
	for _, c := range d.cards {
		if c.Status == StatusKnown {
			n++
		}
	}
	return n
}
