package poker

import (
	"fmt"
)

// Player is a seat at the table with its pocket cards.
type Player struct {
	Name      string
	Id        int
	Hand      [CardsInPocket]*Card
	HasFolded bool
}

// Session is one hand of Texas Hold'em as seen at showdown: the board and
// the players still holding cards. Betting is not tracked here.
type Session struct {
	Board   [5]*Card
	Players []Player
}

// ShowdownResult holds the evaluated hand of every contesting player and the
// ids of the winners, ascending. Several winners split the pot.
type ShowdownResult struct {
	Hands   map[int]*Hand
	Winners []int
}

// Deal shuffles the deck and deals two pocket cards to every player, then the
// flop, turn and river, burning a card before each street.
func (s *Session) Deal(d PokerDeck) error {
	d.Shuffle()
	for i := range s.Players {
		pocket, err := d.DealPocket()
		if err != nil {
			return fmt.Errorf("deal to player %d: %w", s.Players[i].Id, err)
		}
		s.Players[i].Hand = pocket
		s.Players[i].HasFolded = false
	}
	flop, err := d.DealFlop()
	if err != nil {
		return err
	}
	copy(s.Board[:FlopCardCount], flop)
	if s.Board[3], err = d.DealTurn(); err != nil {
		return err
	}
	if s.Board[4], err = d.DealRiver(); err != nil {
		return err
	}
	return nil
}

// PlayerHand builds the hand of the player at index idx: its pocket cards
// followed by the board. Missing board cards are skipped.
func (s *Session) PlayerHand(idx int) (*Hand, error) {
	if idx < 0 || idx >= len(s.Players) {
		return nil, fmt.Errorf("player index %d out of range", idx)
	}
	player := s.Players[idx]
	h := &Hand{}
	if err := h.AddCards(player.Hand[:]...); err != nil {
		return nil, fmt.Errorf("invalid pocket of player %d: %w", player.Id, err)
	}
	for i, c := range s.Board {
		if c == nil {
			continue
		}
		if err := h.AddCard(c); err != nil {
			return nil, fmt.Errorf("invalid board card at idx %d: %w", i, err)
		}
	}
	return h, nil
}

// Showdown evaluates the hand of every player that has not folded and picks
// the winners. Folded players are left out of the result.
func (s *Session) Showdown() (ShowdownResult, error) {
	result := ShowdownResult{Hands: make(map[int]*Hand)}
	for idx, player := range s.Players {
		if player.HasFolded {
			continue
		}
		h, err := s.PlayerHand(idx)
		if err != nil {
			return ShowdownResult{}, err
		}
		if err := h.Evaluate(); err != nil {
			return ShowdownResult{}, fmt.Errorf("player %d: %w", player.Id, err)
		}
		result.Hands[player.Id] = h
	}
	if len(result.Hands) == 0 {
		return ShowdownResult{}, fmt.Errorf("no active players to evaluate")
	}
	winners, err := Winners(result.Hands)
	if err != nil {
		return ShowdownResult{}, err
	}
	result.Winners = winners
	return result, nil
}

// FindPlayerIndex returns the index of the player with the given id, or -1.
func (s *Session) FindPlayerIndex(playerID int) int {
	for i, p := range s.Players {
		if p.Id == playerID {
			return i
		}
	}
	return -1
}
