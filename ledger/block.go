package ledger

import (
	"github.com/luca-patrignani/hand-ranker/domain/poker"
)

// Block is one entry of the hand history.
type Block struct {
	Index     int      `json:"index"`
	Timestamp int64    `json:"timestamp"`
	PrevHash  string   `json:"prev_hash"`
	Hash      string   `json:"hash"`
	Showdown  Showdown `json:"showdown"`
}

// Showdown records the outcome of one hand.
type Showdown struct {
	HandID  int      `json:"hand_id"`
	Board   []string `json:"board"`
	Seats   []Seat   `json:"seats"`
	Winners []int    `json:"winners"`
}

// Seat is the evaluated hand of one player at showdown.
type Seat struct {
	PlayerID int      `json:"player_id"`
	Name     string   `json:"name"`
	Pocket   []string `json:"pocket"`
	Category string   `json:"category"`
	BestHand []string `json:"best_hand"`
}

// NewShowdown builds the record of a session whose showdown gave result.
// Seats are listed in table order; folded players are left out.
func NewShowdown(handID int, session poker.Session, result poker.ShowdownResult) Showdown {
	sd := Showdown{
		HandID:  handID,
		Winners: append([]int(nil), result.Winners...),
	}
	for _, c := range session.Board {
		if c != nil {
			sd.Board = append(sd.Board, c.Short())
		}
	}
	for _, p := range session.Players {
		h, ok := result.Hands[p.Id]
		if !ok {
			continue
		}
		seat := Seat{
			PlayerID: p.Id,
			Name:     p.Name,
			Category: h.Category().String(),
		}
		for _, c := range p.Hand {
			if c != nil {
				seat.Pocket = append(seat.Pocket, c.Short())
			}
		}
		for _, c := range h.BestHand() {
			seat.BestHand = append(seat.BestHand, c.Short())
		}
		sd.Seats = append(sd.Seats, seat)
	}
	return sd
}
