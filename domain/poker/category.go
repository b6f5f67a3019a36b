package poker

import "strings"

// Category is the class of a poker hand, ordered from weakest to strongest.
// NotEvaluated is the value of a hand that has not been evaluated yet.
type Category uint8

const (
	NotEvaluated Category = iota
	HighCard
	Pair
	TwoPair
	Trips
	Straight
	Flush
	FullHouse
	Quads
	StraightFlush
	RoyalFlush
)

var categoryNames = [...]string{
	NotEvaluated:  "not_evaluated",
	HighCard:      "high_card",
	Pair:          "pair",
	TwoPair:       "two_pair",
	Trips:         "trips",
	Straight:      "straight",
	Flush:         "flush",
	FullHouse:     "full_house",
	Quads:         "quads",
	StraightFlush: "straight_flush",
	RoyalFlush:    "royal_flush",
}

// Name returns the identifier of the category, e.g. "two_pair".
func (c Category) Name() string {
	if int(c) >= len(categoryNames) {
		return "unknown"
	}
	return categoryNames[c]
}

// String returns the human readable category, e.g. "Two pair".
func (c Category) String() string {
	name := strings.ReplaceAll(c.Name(), "_", " ")
	return strings.ToUpper(name[:1]) + name[1:]
}
