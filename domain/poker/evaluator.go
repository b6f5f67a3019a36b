package poker

import (
	"fmt"

	"github.com/paulhankin/poker"
)

var libSuits = [...]poker.Suit{
	Spade:   poker.Spade,
	Heart:   poker.Heart,
	Club:    poker.Club,
	Diamond: poker.Diamond,
}

// toLibCard converts a visible card to the paulhankin/poker representation,
// where the ace is rank 1.
func toLibCard(c Card) (poker.Card, error) {
	if !c.valid() {
		var zero poker.Card
		return zero, fmt.Errorf("%w: %v", ErrInvalidCard, c)
	}
	rank := poker.Rank(c.rank)
	if c.rank == Ace {
		rank = 1
	}
	return poker.MakeCard(libSuits[c.suit], rank)
}

func toLibCards(cards []Card) ([]poker.Card, error) {
	out := make([]poker.Card, len(cards))
	for i, c := range cards {
		lc, err := toLibCard(c)
		if err != nil {
			return nil, fmt.Errorf("invalid card at idx %d: %w", i, err)
		}
		out[i] = lc
	}
	return out, nil
}

// Score returns the paulhankin/poker 7-card score of the visible cards.
// Higher is better and equal scores split. The hand must show exactly seven
// cards.
func (h *Hand) Score() (int16, error) {
	cards := h.visible()
	if len(cards) != 7 {
		return 0, fmt.Errorf("score needs 7 visible cards, got %d", len(cards))
	}
	lc, err := toLibCards(cards)
	if err != nil {
		return 0, err
	}
	var finalHand [7]poker.Card
	copy(finalHand[:], lc)
	return poker.Eval7(&finalHand), nil
}

// Describe returns a long description of the visible cards such as
// "full house, kings over twos". It needs five or seven visible cards.
func (h *Hand) Describe() (string, error) {
	cards := h.visible()
	if len(cards) != 5 && len(cards) != 7 {
		return "", fmt.Errorf("describe needs 5 or 7 visible cards, got %d", len(cards))
	}
	lc, err := toLibCards(cards)
	if err != nil {
		return "", err
	}
	return poker.Describe(lc)
}
