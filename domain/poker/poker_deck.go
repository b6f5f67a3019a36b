package poker

import (
	"errors"
	"fmt"

	"github.com/luca-patrignani/hand-ranker/domain/deck"
)

// Street sizes of Texas Hold'em. A card is burned before each street.
const (
	CardsInPocket = 2
	FlopCardCount = 3
	TurnCardCount = 1
	RiverCount    = 1
)

// PokerDeck wraps a numbered deck and hands out poker cards.
type PokerDeck struct {
	*deck.Deck
}

// NewPokerDeck creates a 52 card deck, in order. Shuffle it before dealing.
func NewPokerDeck() PokerDeck {
	return PokerDeck{
		Deck: deck.NewDeck(52),
	}
}

// IntToCard converts a raw card number (1-52) to a face-down Card. Card
// numbers map to suits in order (spades, hearts, clubs, diamonds) with ranks
// Two through Ace within each suit.
//
// Card numbering:
//   - 1-13: Spades (Two through Ace)
//   - 14-26: Hearts (Two through Ace)
//   - 27-39: Clubs (Two through Ace)
//   - 40-52: Diamonds (Two through Ace)
func IntToCard(rawCard int) (Card, error) {
	if rawCard > 52 || rawCard < 1 {
		return Card{}, errors.New("the card to convert have an invalid value")
	}

	suit := Suit((rawCard-1)/13) + Spade
	rank := Rank((rawCard-1)%13) + Two
	return NewCard(suit, rank)
}

// CardToInt converts a Card to its integer representation (1-52), ignoring
// whether it is face-up. This is the inverse operation of IntToCard.
func CardToInt(card Card) int {
	return int(card.suit-Spade)*13 + int(card.rank-Two) + 1
}

// DrawCard draws a face-down card.
func (d PokerDeck) DrawCard() (*Card, error) {
	c, err := d.Deck.DrawCard()
	if err != nil {
		return nil, err
	}
	card, err := IntToCard(c)
	if err != nil {
		return nil, err
	}
	return &card, nil
}

// DealPocket draws the two pocket cards of a player. They are revealed: the
// owner sees them.
func (d PokerDeck) DealPocket() ([CardsInPocket]*Card, error) {
	var pocket [CardsInPocket]*Card
	for i := range pocket {
		c, err := d.DrawCard()
		if err != nil {
			return pocket, fmt.Errorf("pocket card %d: %w", i, err)
		}
		c.Reveal()
		pocket[i] = c
	}
	return pocket, nil
}

// DealFlop burns a card and deals the three revealed flop cards.
func (d PokerDeck) DealFlop() ([]*Card, error) {
	return d.dealStreet("flop", FlopCardCount)
}

// DealTurn burns a card and deals the revealed turn card.
func (d PokerDeck) DealTurn() (*Card, error) {
	cards, err := d.dealStreet("turn", TurnCardCount)
	if err != nil {
		return nil, err
	}
	return cards[0], nil
}

// DealRiver burns a card and deals the revealed river card.
func (d PokerDeck) DealRiver() (*Card, error) {
	cards, err := d.dealStreet("river", RiverCount)
	if err != nil {
		return nil, err
	}
	return cards[0], nil
}

func (d PokerDeck) dealStreet(street string, n int) ([]*Card, error) {
	if err := d.Burn(); err != nil {
		return nil, fmt.Errorf("%s: %w", street, err)
	}
	cards := make([]*Card, n)
	for i := range cards {
		c, err := d.DrawCard()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", street, err)
		}
		c.Reveal()
		cards[i] = c
	}
	return cards, nil
}
