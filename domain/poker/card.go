package poker

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

var (
	ErrInvalidSuit = errors.New("invalid suit")
	ErrInvalidRank = errors.New("invalid rank")
	ErrInvalidCard = errors.New("invalid card")
)

// Suit of a card. Suits are only ever compared for equality.
// The zero value is not a suit: it is what Card.Suit reports for a face-down card.
type Suit uint8

const (
	Spade Suit = iota + 1
	Heart
	Club
	Diamond
)

var suitNames = [...]string{
	Spade:   "Spades",
	Heart:   "Hearts",
	Club:    "Clubs",
	Diamond: "Diamonds",
}

// Valid reports whether s is one of the four suits.
func (s Suit) Valid() bool {
	return s >= Spade && s <= Diamond
}

func (s Suit) String() string {
	if !s.Valid() {
		return "Hidden"
	}
	return suitNames[s]
}

// Rank of a card, valued 2 (Two) through 14 (Ace).
//
// LowAce sits one below Two and is only used while looking for the wheel
// (A-2-3-4-5); NewCard never accepts it. The zero value is not a rank: it is
// what Card.Rank reports for a face-down card.
type Rank uint8

const (
	LowAce Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

var rankNames = [...]string{
	LowAce: "Ace",
	Two:    "Two",
	Three:  "Three",
	Four:   "Four",
	Five:   "Five",
	Six:    "Six",
	Seven:  "Seven",
	Eight:  "Eight",
	Nine:   "Nine",
	Ten:    "Ten",
	Jack:   "Jack",
	Queen:  "Queen",
	King:   "King",
	Ace:    "Ace",
}

const rankCodes = "?A23456789TJQKA"

// Valid reports whether r is a rank a card can carry (Two through Ace).
func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}

func (r Rank) String() string {
	if r < LowAce || r > Ace {
		return "Hidden"
	}
	return rankNames[r]
}

// Code returns the one character abbreviation of the rank (2-9, T, J, Q, K, A).
func (r Rank) Code() byte {
	if r > Ace {
		return '?'
	}
	return rankCodes[r]
}

// HiddenCard is the rendering of a face-down card.
const HiddenCard = "Hidden Card"

// Card is a playing card with a rank, a suit and a visibility flag.
//
// A new card is face-down. Reveal turns it face-up for good; there is no way
// back. While face-down, Rank and Suit report nothing about the card.
type Card struct {
	suit   Suit
	rank   Rank
	faceUp bool
}

// NewCard creates a face-down card.
//
// Parameters:
//   - suit: Spade, Heart, Club or Diamond
//   - rank: Two through Ace
//
// Returns the Card or an error if suit or rank is outside its domain.
func NewCard(suit Suit, rank Rank) (Card, error) {
	if !suit.Valid() {
		return Card{}, fmt.Errorf("%w %d", ErrInvalidSuit, suit)
	}
	if !rank.Valid() {
		return Card{}, fmt.Errorf("%w %d", ErrInvalidRank, rank)
	}
	return Card{suit: suit, rank: rank}, nil
}

// MustCard is like NewCard but panics on invalid input.
func MustCard(suit Suit, rank Rank) Card {
	c, err := NewCard(suit, rank)
	if err != nil {
		panic(err)
	}
	return c
}

// Reveal turns the card face-up. Revealing an already visible card does nothing.
func (c *Card) Reveal() {
	c.faceUp = true
}

// FaceUp reports whether the card has been revealed.
func (c Card) FaceUp() bool {
	return c.faceUp
}

// Rank returns the rank of the card. ok is false, and the rank is the zero
// value, while the card is face-down.
func (c Card) Rank() (r Rank, ok bool) {
	if !c.faceUp {
		return 0, false
	}
	return c.rank, true
}

// Suit returns the suit of the card. ok is false, and the suit is the zero
// value, while the card is face-down.
func (c Card) Suit() (s Suit, ok bool) {
	if !c.faceUp {
		return 0, false
	}
	return c.suit, true
}

// valid reports whether the card was built through NewCard or ParseCard.
func (c Card) valid() bool {
	return c.suit.Valid() && c.rank.Valid()
}

// String returns "<Rank> of <Suit>", e.g. "Ten of Hearts", or HiddenCard.
func (c Card) String() string {
	if !c.faceUp {
		return HiddenCard
	}
	return c.rank.String() + " of " + c.suit.String()
}

// Short returns the two character code of the card, e.g. "Th", or "??" while face-down.
func (c Card) Short() string {
	if !c.faceUp {
		return "??"
	}
	return string([]byte{c.rank.Code(), suitCodes[c.suit]})
}

var suitCodes = [...]byte{0: '?', Spade: 's', Heart: 'h', Club: 'c', Diamond: 'd'}

var suitBySymbol = map[rune]Suit{
	's': Spade, '♠': Spade,
	'h': Heart, '♥': Heart,
	'c': Club, '♣': Club,
	'd': Diamond, '♦': Diamond,
}

var rankByCode = map[string]Rank{
	"2": Two, "3": Three, "4": Four, "5": Five, "6": Six, "7": Seven, "8": Eight,
	"9": Nine, "T": Ten, "10": Ten, "J": Jack, "Q": Queen, "K": King, "A": Ace,
}

// ParseCard parses a short card code such as "As", "td", "10♥".
// The card is face-up unless the code ends with '?', as in "Kd?".
func ParseCard(code string) (Card, error) {
	s := strings.TrimSpace(code)
	hidden := strings.HasSuffix(s, "?")
	s = strings.TrimSuffix(s, "?")

	runes := []rune(s)
	if len(runes) < 2 {
		return Card{}, fmt.Errorf("%w %q", ErrInvalidCard, code)
	}
	suit, ok := suitBySymbol[unicode.ToLower(runes[len(runes)-1])]
	if !ok {
		return Card{}, fmt.Errorf("%w %q: %w", ErrInvalidCard, code, ErrInvalidSuit)
	}
	rank, ok := rankByCode[strings.ToUpper(string(runes[:len(runes)-1]))]
	if !ok {
		return Card{}, fmt.Errorf("%w %q: %w", ErrInvalidCard, code, ErrInvalidRank)
	}
	return Card{suit: suit, rank: rank, faceUp: !hidden}, nil
}

// ParseCards parses every code with ParseCard. The cards are returned by
// pointer so they can be shared between hands and revealed later.
func ParseCards(codes ...string) ([]*Card, error) {
	cards := make([]*Card, 0, len(codes))
	for _, code := range codes {
		c, err := ParseCard(code)
		if err != nil {
			return nil, err
		}
		cards = append(cards, &c)
	}
	return cards, nil
}
