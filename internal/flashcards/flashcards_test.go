package flashcards

import "testing"

func testCards() []Card {
	return []Card{
		{ID: "1", Topic: "DSA", Front: "f1", Back: "b1", Status: StatusNeedRevision},
		{ID: "2", Topic: "OS", Front: "f2", Back: "b2", Status: StatusNeedRevision},
		{ID: "3", Topic: "DB", Front: "f3", Back: "b3", Status: StatusNeedRevision},
	}
}

func TestEmptyDeck(t *testing.T) {
	d := NewDeck(nil)
	if d.Current() != nil {
		t.Error("expected nil current card")
	}
	d.Next()
	d.Prev()
	d.Flip()
	d.Mark(StatusKnown, "2025-03-01T12:00:00Z")
	if d.Len() != 0 {
		t.Errorf("Len = %d", d.Len())
	}
}

func TestNavigationWraps(t *testing.T) {
	d := NewDeck(testCards())

	d.Prev()
	if d.Current().ID != "3" {
		t.Errorf("prev from start = %s, want 3", d.Current().ID)
	}
	d.Next()
	if d.Current().ID != "1" {
		t.Errorf("next wraps back = %s, want 1", d.Current().ID)
	}
	d.Next()
	d.Next()
	d.Next()
	if d.Current().ID != "1" {
		t.Errorf("full cycle = %s, want 1", d.Current().ID)
	}
}

func TestFlipResetsOnMove(t *testing.T) {
	d := NewDeck(testCards())
	d.Flip()
	if !d.Flipped() {
		t.Fatal("expected flipped")
	}
	d.Next()
	if d.Flipped() {
		t.Error("moving should reset to front side")
	}
}

func TestMarkAdvances(t *testing.T) {
	d := NewDeck(testCards())
	d.Flip()
	d.Mark(StatusKnown, "2025-03-01T12:00:00Z")

	if d.Cursor() != 1 {
		t.Errorf("cursor = %d, want 1", d.Cursor())
	}
	if d.Flipped() {
		t.Error("mark should land on the front of the next card")
	}

	cards := d.Cards()
	if cards[0].Status != StatusKnown {
		t.Errorf("status = %s, want KNOWN", cards[0].Status)
	}
	if cards[0].LastReviewedAt != "2025-03-01T12:00:00Z" {
		t.Errorf("lastReviewedAt = %s", cards[0].LastReviewedAt)
	}
	if d.KnownCount() != 1 {
		t.Errorf("KnownCount = %d, want 1", d.KnownCount())
	}
}

func TestDeckCopiesInput(t *testing.T) {
	src := testCards()
	d := NewDeck(src)
	src[0].Front = "mutated"
	if d.Current().Front == "mutated" {
		t.Error("deck should not alias caller slice")
	}
}
