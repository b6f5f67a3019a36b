package poker

import (
	"errors"
	"strings"
	"testing"
)

func shorts(cards []Card) string {
	s := make([]string, len(cards))
	for i, c := range cards {
		s[i] = c.Short()
	}
	return strings.Join(s, " ")
}

func TestSelectBestHand(t *testing.T) {
	tests := []struct {
		name     string
		cards    []string
		category Category
		want     string
	}{
		{"royal flush", []string{"Ah", "Kh", "Qh", "Jh", "Th", "Ad", "Ac"}, RoyalFlush, "Ah Kh Qh Jh Th"},
		{"straight flush ignores off-suit top card", []string{"9h", "Th", "Jh", "Qh", "Kh", "Ad", "2c"}, StraightFlush, "Kh Qh Jh Th 9h"},
		{"steel wheel", []string{"Ah", "2h", "3h", "4h", "5h", "Kd", "Kc"}, StraightFlush, "5h 4h 3h 2h Ah"},
		{"quads", []string{"9h", "9d", "9c", "9s", "2h", "Kd", "Qc"}, Quads, "9h 9d 9c 9s Kd"},
		{"full house from two trips", []string{"2s", "Kh", "2h", "Kd", "2d", "Kc", "9c"}, FullHouse, "Kh Kd Kc 2s 2h"},
		{"full house picks higher pair", []string{"7h", "7d", "7c", "Qs", "Kh", "Qd", "Kc"}, FullHouse, "7h 7d 7c Kh Kc"},
		{"flush of six", []string{"2h", "Ah", "Kh", "9h", "7h", "4h", "Qd"}, Flush, "Ah Kh 9h 7h 4h"},
		{"straight with duplicate", []string{"8h", "8d", "7c", "6s", "5h", "4d", "2c"}, Straight, "8h 7c 6s 5h 4d"},
		{"wheel", []string{"Ah", "2c", "3d", "4s", "5h", "9c", "Jd"}, Straight, "5h 4s 3d 2c Ah"},
		{"trips", []string{"7h", "7d", "7c", "Ah", "Kd", "4s", "2c"}, Trips, "7h 7d 7c Ah Kd"},
		{"two pair", []string{"Ah", "Ad", "Kh", "Kd", "2c"}, TwoPair, "Ah Ad Kh Kd 2c"},
		{"two pair of three pairs", []string{"2c", "Qs", "Ah", "Kh", "Qc", "Kd", "Ad"}, TwoPair, "Ah Ad Kh Kd Qs"},
		{"pair", []string{"Jh", "Jd", "Ah", "9c", "7s", "4d", "2h"}, Pair, "Jh Jd Ah 9c 7s"},
		{"high card", []string{"2c", "Ah", "Qd", "9c", "7s", "5h", "3d"}, HighCard, "Ah Qd 9c 7s 5h"},
		{"short pair", []string{"Ah", "Ad"}, Pair, "Ah Ad"},
		{"short trips", []string{"3h", "Kd", "3c", "3s"}, Trips, "3h 3c 3s Kd"},
		{"single card", []string{"9s"}, HighCard, "9s"},
		{"no cards", nil, HighCard, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cards := normalized(t, tt.cards...)
			category, _ := classify(cards)
			if category != tt.category {
				t.Fatalf("expected %v, got %v", tt.category, category)
			}
			best, err := selectBestHand(category, cards)
			if err != nil {
				t.Fatal(err)
			}
			if got := shorts(best); got != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestSelectBestHandMismatch(t *testing.T) {
	cards := normalized(t, "Ah", "Kd", "Qc", "Js", "9h", "2c", "3d")
	for _, category := range []Category{RoyalFlush, StraightFlush, Quads, FullHouse, Flush, Straight, Trips, TwoPair, Pair, NotEvaluated, RoyalFlush + 1} {
		best, err := selectBestHand(category, cards)
		if !errors.Is(err, ErrCategoryMismatch) {
			t.Errorf("%v: expected ErrCategoryMismatch, got %v", category.Name(), err)
		}
		if best != nil {
			t.Errorf("%v: expected no cards, got %v", category.Name(), best)
		}
	}
}

func TestSelectFullHouseWithoutPair(t *testing.T) {
	_, err := selectBestHand(FullHouse, normalized(t, "Kh", "Kd", "Kc", "2s", "3h"))
	if !errors.Is(err, ErrCategoryMismatch) {
		t.Fatalf("expected ErrCategoryMismatch, got %v", err)
	}
}

func TestSelectAlwaysFiveCards(t *testing.T) {
	d := NewPokerDeck()
	for i := 0; i < 500; i++ {
		d.Shuffle()
		var codes []string
		for j := 0; j < 7; j++ {
			c, err := d.DrawCard()
			if err != nil {
				t.Fatal(err)
			}
			c.Reveal()
			codes = append(codes, c.Short())
		}
		cards := normalized(t, codes...)
		category, _ := classify(cards)
		best, err := selectBestHand(category, cards)
		if err != nil {
			t.Fatalf("%v: %v", codes, err)
		}
		if len(best) != 5 {
			t.Fatalf("%v: expected 5 cards, got %v", codes, best)
		}
	}
}
