package poker

import (
	"errors"
	"fmt"
	"sort"
)

// ErrNotEvaluated is returned when a hand result is needed before Evaluate ran.
var ErrNotEvaluated = errors.New("hand not evaluated")

// Hand accumulates the cards available to one player (pocket and community
// cards) and ranks the best five card hand they make.
//
// Cards are held by pointer: a community card revealed after it was added is
// seen face-up by the next Evaluate. A Hand must not be mutated while it is
// being evaluated; distinct hands can be evaluated concurrently.
type Hand struct {
	cards    []*Card
	category Category
	best     []Card
}

// NewHand returns a hand holding the given cards.
func NewHand(cards ...*Card) (*Hand, error) {
	h := &Hand{}
	if err := h.AddCards(cards...); err != nil {
		return nil, err
	}
	return h, nil
}

// AddCard appends a card to the hand. A nil or zero Card is rejected and the
// hand is left unchanged.
func (h *Hand) AddCard(c *Card) error {
	return h.AddCards(c)
}

// AddCards appends the cards to the hand. If any of them is not a valid card
// none is added.
func (h *Hand) AddCards(cards ...*Card) error {
	for i, c := range cards {
		if c == nil || !c.valid() {
			return fmt.Errorf("%w at position %d", ErrInvalidCard, i)
		}
	}
	h.cards = append(h.cards, cards...)
	return nil
}

// Clear removes every card and forgets the last evaluation.
func (h *Hand) Clear() {
	h.cards = nil
	h.category = NotEvaluated
	h.best = nil
}

// Len returns the number of cards in the hand, face-down ones included.
func (h *Hand) Len() int {
	return len(h.cards)
}

// Evaluate ranks the hand. Face-down cards are left out of this evaluation;
// the rest are sorted by rank, the strongest matching category is detected
// and the best hand for it is selected.
//
// Calling Evaluate again without changing the cards gives the same result.
// An error means detection and selection disagree; the previous result is kept.
func (h *Hand) Evaluate() error {
	cards := h.visible()
	category, _ := classify(cards)
	best, err := selectBestHand(category, cards)
	if err != nil {
		return fmt.Errorf("evaluate %v: %w", cards, err)
	}
	h.category = category
	h.best = best
	return nil
}

// visible returns a copy of the face-up cards sorted by rank, high to low.
// Cards of the same rank keep the order in which they were added.
func (h *Hand) visible() []Card {
	cards := make([]Card, 0, len(h.cards))
	for _, c := range h.cards {
		if c.faceUp {
			cards = append(cards, *c)
		}
	}
	sort.SliceStable(cards, func(i, j int) bool {
		return cards[i].rank > cards[j].rank
	})
	return cards
}

// Category returns the category found by the last Evaluate, or NotEvaluated.
func (h *Hand) Category() Category {
	return h.category
}

// BestHand returns the cards of the best hand found by the last Evaluate in
// tie-break order. It has five cards unless fewer than five were visible,
// and is empty before the first evaluation.
func (h *Hand) BestHand() []Card {
	best := make([]Card, len(h.best))
	copy(best, h.best)
	return best
}

// String returns the category of the hand followed by its best cards.
func (h *Hand) String() string {
	if h.category == NotEvaluated {
		return h.category.String()
	}
	return fmt.Sprintf("%s %v", h.category, h.best)
}
