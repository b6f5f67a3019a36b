package poker

import (
	"errors"
	"fmt"
)

// ErrCategoryMismatch is returned when a best hand is requested for a
// category that the cards do not hold. It means detection and selection
// disagree, which is a bug, not a losing hand.
var ErrCategoryMismatch = errors.New("category does not match cards")

// selectBestHand extracts the cards making up the best hand of the given
// category from the normalized cards, in tie-break order: the cards that
// define the category first, then the kickers from high to low.
func selectBestHand(category Category, cards []Card) ([]Card, error) {
	switch category {
	case RoyalFlush, StraightFlush:
		suit, ok := findFlushSuit(cards)
		if !ok {
			return nil, mismatch(category, cards)
		}
		return selectStraight(category, ofSuit(cards, suit))
	case Quads:
		return selectMultiples(category, cards, 4, 0)
	case FullHouse:
		trips, ok := findMultiples(cards, 3)
		if !ok {
			return nil, mismatch(category, cards)
		}
		pair, ok := findMultiples(withoutRank(cards, trips), 2)
		if !ok {
			return nil, mismatch(category, cards)
		}
		best := append(withRank(cards, trips)[:3:3], withRank(cards, pair)[:2]...)
		return best, nil
	case Flush:
		suit, ok := findFlushSuit(cards)
		if !ok {
			return nil, mismatch(category, cards)
		}
		return ofSuit(cards, suit)[:cardsInFlush], nil
	case Straight:
		return selectStraight(category, cards)
	case Trips:
		return selectMultiples(category, cards, 3, 0)
	case TwoPair:
		return selectMultiples(category, cards, 2, 2)
	case Pair:
		return selectMultiples(category, cards, 2, 0)
	case HighCard:
		return kickers(cards, cardsInHand), nil
	default:
		return nil, fmt.Errorf("%w: cannot select a hand for %s", ErrCategoryMismatch, category.Name())
	}
}

// selectMultiples takes the cards of the highest rank held count times and,
// when second is not zero, the cards of the next rank held second times.
// The remaining slots are filled with kickers.
func selectMultiples(category Category, cards []Card, count int, second int) ([]Card, error) {
	first, ok := findMultiples(cards, count)
	if !ok {
		return nil, mismatch(category, cards)
	}
	best := withRank(cards, first)[:count:count]
	rest := withoutRank(cards, first)

	if second > 0 {
		next, ok := findMultiples(rest, second)
		if !ok {
			return nil, mismatch(category, cards)
		}
		best = append(best, withRank(rest, next)[:second]...)
		rest = withoutRank(rest, next)
	}
	return append(best, kickers(rest, cardsInHand-len(best))...), nil
}

// selectStraight takes one card for each rank of the highest straight in
// cards, from its top rank down. In the wheel the ace comes last.
func selectStraight(category Category, cards []Card) ([]Card, error) {
	top, ok := findStraight(cards)
	if !ok {
		return nil, mismatch(category, cards)
	}
	best := make([]Card, 0, cardsInStraight)
	for r := top; r > top-cardsInStraight; r-- {
		want := r
		if r == LowAce {
			want = Ace
		}
		found := withRank(cards, want)
		if len(found) == 0 {
			return nil, mismatch(category, cards)
		}
		best = append(best, found[0])
	}
	return best, nil
}

// kickers returns up to n of the highest cards.
func kickers(cards []Card, n int) []Card {
	if n > len(cards) {
		n = len(cards)
	}
	out := make([]Card, n)
	copy(out, cards)
	return out
}

func mismatch(category Category, cards []Card) error {
	return fmt.Errorf("%w: no %s in %v", ErrCategoryMismatch, category.Name(), cards)
}
