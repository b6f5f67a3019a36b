// Package poker ranks Texas Hold'em hands: given up to seven cards it finds
// the best five card hand, its category and the exact cards that break ties.
//
// # Core Types
//
// Card: a rank and a suit behind a one-way face-down/face-up flag. A
// face-down card reports neither its rank nor its suit.
//
// Category: the class of a hand, from HighCard up to RoyalFlush.
//
// Hand: the cards available to one player. Evaluate ranks them; Category and
// BestHand report the result.
//
// Session: a table at showdown, with the board and the players' pocket cards.
//
// PokerDeck: a shuffled 52 card deck dealing pockets and streets.
//
// # Hand Evaluation
//
// Evaluate drops face-down cards, sorts the rest by rank and runs one
// detector per category from the strongest (straight flush) to the weakest
// (pair), stopping at the first match; a hand matching none is a high card
// hand. The best five cards are then selected in tie-break order: the cards
// defining the category first, kickers after, from high to low.
//
// # Showdown
//
// Compare orders two evaluated hands by category and then card by card on
// the best hand. Equal best hands split the pot.
package poker
