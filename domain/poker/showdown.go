package poker

import (
	"fmt"
	"sort"
)

// Compare orders two evaluated hands. It returns 1 if a beats b, -1 if b
// beats a and 0 on a split. The category decides first; on equal categories
// the best hands are compared card by card on rank. Nothing outside the best
// five cards is considered.
func Compare(a, b *Hand) int {
	if a.category != b.category {
		if a.category > b.category {
			return 1
		}
		return -1
	}
	for i := 0; i < len(a.best) && i < len(b.best); i++ {
		if a.best[i].rank != b.best[i].rank {
			if a.best[i].rank > b.best[i].rank {
				return 1
			}
			return -1
		}
	}
	switch {
	case len(a.best) > len(b.best):
		return 1
	case len(a.best) < len(b.best):
		return -1
	}
	return 0
}

// CompareHands is Compare for hands that may not have been evaluated yet.
// It fails with ErrNotEvaluated instead of ranking an empty result.
func CompareHands(a, b *Hand) (int, error) {
	if a.category == NotEvaluated || b.category == NotEvaluated {
		return 0, ErrNotEvaluated
	}
	return Compare(a, b), nil
}

// Winners returns the ids of the strongest hands, in ascending order. More
// than one id means a split. Hands that were never evaluated are evaluated
// first.
func Winners(hands map[int]*Hand) ([]int, error) {
	var winners []int
	var best *Hand
	for id, h := range hands {
		if h.Category() == NotEvaluated {
			if err := h.Evaluate(); err != nil {
				return nil, fmt.Errorf("hand %d: %w", id, err)
			}
		}
		if best == nil {
			best, winners = h, []int{id}
			continue
		}
		switch Compare(h, best) {
		case 1:
			best, winners = h, []int{id}
		case 0:
			winners = append(winners, id)
		}
	}
	sort.Ints(winners)
	return winners, nil
}
