// Package deck implements a deck of numbered cards (1..DeckSize) that can be
// shuffled, drawn from and burned. It knows nothing about suits or ranks; the
// poker package maps numbers to cards.
package deck

import (
	"crypto/cipher"
	"errors"
	"fmt"

	"go.dedis.ch/kyber/v4/suites"
)

// ErrEmpty is returned when drawing from a deck with no cards left.
var ErrEmpty = errors.New("deck is empty")

var suite suites.Suite = suites.MustFind("Ed25519")

// Deck is an ordered pile of card numbers.
//
// Call PrepareDeck before the first use and Shuffle before each hand. A Deck
// is not safe for concurrent use.
type Deck struct {
	DeckSize int
	// Rand is the randomness used by Shuffle. When nil the random stream of
	// the Ed25519 suite is used.
	Rand cipher.Stream

	cards         []int
	burned        []int
	lastDrawnCard int
}

// NewDeck returns a prepared, unshuffled deck of size cards.
func NewDeck(size int) *Deck {
	d := &Deck{DeckSize: size}
	d.PrepareDeck()
	return d
}

// PrepareDeck puts the cards 1..DeckSize back in order and empties the burn pile.
func (d *Deck) PrepareDeck() {
	d.cards = make([]int, d.DeckSize)
	for i := range d.cards {
		d.cards[i] = i + 1
	}
	d.burned = nil
	d.lastDrawnCard = 0
}

// DrawCard removes the top card of the deck and returns it.
func (d *Deck) DrawCard() (int, error) {
	if d.Remaining() == 0 {
		return 0, fmt.Errorf("draw card %d of %d: %w", d.lastDrawnCard+1, len(d.cards), ErrEmpty)
	}
	c := d.cards[d.lastDrawnCard]
	d.lastDrawnCard++
	return c, nil
}

// Burn draws the top card and puts it on the burn pile.
func (d *Deck) Burn() error {
	c, err := d.DrawCard()
	if err != nil {
		return fmt.Errorf("burn: %w", err)
	}
	d.burned = append(d.burned, c)
	return nil
}

// Burned returns the cards on the burn pile, oldest first.
func (d *Deck) Burned() []int {
	return append([]int(nil), d.burned...)
}

// Remaining returns how many cards can still be drawn.
func (d *Deck) Remaining() int {
	return len(d.cards) - d.lastDrawnCard
}
