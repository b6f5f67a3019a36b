package poker

// Category detectors.
//
// Every detector takes the normalized card list: face-up cards only, sorted by
// rank from high to low. They never filter or sort on their own. A detector
// answers with the defining rank (or suit) of its category and ok set, or
// ok false when the category is not present.

const (
	cardsInStraight = 5
	cardsInFlush    = 5
	cardsInHand     = 5
)

// findMultiples returns the highest rank held by at least count cards.
func findMultiples(cards []Card, count int) (Rank, bool) {
	var counts [Ace + 1]int
	for _, c := range cards {
		counts[c.rank]++
	}
	// cards are rank-descending, so the first hit is the highest rank.
	for _, c := range cards {
		if counts[c.rank] >= count {
			return c.rank, true
		}
	}
	return 0, false
}

// findFlushSuit returns the suit held by at least five cards.
func findFlushSuit(cards []Card) (Suit, bool) {
	var counts [Diamond + 1]int
	for _, c := range cards {
		counts[c.suit]++
	}
	for s := Spade; s <= Diamond; s++ {
		if counts[s] >= cardsInFlush {
			return s, true
		}
	}
	return 0, false
}

// findFlush returns the rank of the highest card of the flush suit.
func findFlush(cards []Card) (Rank, bool) {
	suit, ok := findFlushSuit(cards)
	if !ok {
		return 0, false
	}
	return ofSuit(cards, suit)[0].rank, true
}

// distinctRanks returns the ranks of cards with duplicates collapsed,
// keeping the descending order.
func distinctRanks(cards []Card) []Rank {
	ranks := make([]Rank, 0, len(cards)+1)
	for _, c := range cards {
		if len(ranks) == 0 || ranks[len(ranks)-1] != c.rank {
			ranks = append(ranks, c.rank)
		}
	}
	return ranks
}

// findStraight returns the top rank of the highest run of five consecutive
// ranks. An ace also plays below the two, so the wheel (A-2-3-4-5) is a
// straight whose top rank is Five.
func findStraight(cards []Card) (Rank, bool) {
	ranks := distinctRanks(cards)
	if len(ranks) == 0 {
		return 0, false
	}
	if ranks[0] == Ace {
		ranks = append(ranks, LowAce)
	}

	start, run := ranks[0], 1
	for i := 1; i < len(ranks); i++ {
		if ranks[i-1] == ranks[i]+1 {
			run++
		} else {
			start, run = ranks[i], 1
		}
		if run >= cardsInStraight {
			return start, true
		}
	}
	return 0, false
}

// findStraightFlush looks for a straight among the cards of the flush suit only.
// Finding a straight first and then checking its suits is not equivalent.
func findStraightFlush(cards []Card) (Rank, bool) {
	suit, ok := findFlushSuit(cards)
	if !ok {
		return 0, false
	}
	return findStraight(ofSuit(cards, suit))
}

// findFullHouse returns the rank of the trips when the remaining cards
// still hold a pair. A second, lower set of trips counts as the pair.
func findFullHouse(cards []Card) (Rank, bool) {
	trips, ok := findMultiples(cards, 3)
	if !ok {
		return 0, false
	}
	if _, ok := findMultiples(withoutRank(cards, trips), 2); !ok {
		return 0, false
	}
	return trips, true
}

// findTwoPair returns the rank of the higher of two pairs.
func findTwoPair(cards []Card) (Rank, bool) {
	high, ok := findMultiples(cards, 2)
	if !ok {
		return 0, false
	}
	if _, ok := findMultiples(withoutRank(cards, high), 2); !ok {
		return 0, false
	}
	return high, true
}

func findQuads(cards []Card) (Rank, bool) { return findMultiples(cards, 4) }
func findTrips(cards []Card) (Rank, bool) { return findMultiples(cards, 3) }
func findPair(cards []Card) (Rank, bool)  { return findMultiples(cards, 2) }

type detector struct {
	category Category
	find     func([]Card) (Rank, bool)
}

// detectors is ordered from the strongest category to the weakest.
// classify stops at the first one that matches.
var detectors = []detector{
	{StraightFlush, findStraightFlush},
	{Quads, findQuads},
	{FullHouse, findFullHouse},
	{Flush, findFlush},
	{Straight, findStraight},
	{Trips, findTrips},
	{TwoPair, findTwoPair},
	{Pair, findPair},
}

// classify returns the category of the normalized cards and its defining rank.
// An ace-high straight flush is a royal flush. With no match the hand is a
// high card hand, defined by its first card; an empty list has no defining rank.
func classify(cards []Card) (Category, Rank) {
	for _, d := range detectors {
		r, ok := d.find(cards)
		if !ok {
			continue
		}
		if d.category == StraightFlush && r == Ace {
			return RoyalFlush, r
		}
		return d.category, r
	}
	if len(cards) == 0 {
		return HighCard, 0
	}
	return HighCard, cards[0].rank
}

func ofSuit(cards []Card, suit Suit) []Card {
	var out []Card
	for _, c := range cards {
		if c.suit == suit {
			out = append(out, c)
		}
	}
	return out
}

func withRank(cards []Card, rank Rank) []Card {
	var out []Card
	for _, c := range cards {
		if c.rank == rank {
			out = append(out, c)
		}
	}
	return out
}

func withoutRank(cards []Card, ranks ...Rank) []Card {
	var out []Card
next:
	for _, c := range cards {
		for _, r := range ranks {
			if c.rank == r {
				continue next
			}
		}
		out = append(out, c)
	}
	return out
}
