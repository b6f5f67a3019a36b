package main

import (
	"slices"
	"strconv"
	"strings"

	"github.com/luca-patrignani/hand-ranker/domain/poker"
	"github.com/luca-patrignani/hand-ranker/ledger"
	"github.com/pterm/pterm"
)

var suitSymbols = map[poker.Suit]string{
	poker.Spade:   "♠",
	poker.Heart:   "♥",
	poker.Club:    "♣",
	poker.Diamond: "♦",
}

// cardString renders a face-up card as rank and suit symbol, red for hearts
// and diamonds. Face-down cards are rendered as "??".
func cardString(c poker.Card) string {
	suit, ok := c.Suit()
	if !ok {
		return pterm.FgDarkGray.Sprint("??")
	}
	rank, _ := c.Rank()
	text := string(rank.Code()) + suitSymbols[suit]
	if suit == poker.Heart || suit == poker.Diamond {
		return pterm.FgLightRed.Sprint(text)
	}
	return pterm.FgLightWhite.Sprint(text)
}

func cardsString(cards []poker.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = cardString(c)
	}
	return strings.Join(parts, " ")
}

func pointersString(cards []*poker.Card) string {
	var out []poker.Card
	for _, c := range cards {
		if c != nil {
			out = append(out, *c)
		}
	}
	return cardsString(out)
}

// handBox renders an evaluated hand with its category and best cards.
func handBox(h *poker.Hand, total int) string {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	title := pterm.LightGreen("|" + h.Category().String() + "|")
	return pbox.WithTitle(title).WithTitleTopCenter().
		Sprintf("Best hand: %s\nCards given: %d", cardsString(h.BestHand()), total)
}

func printPlayerInfo(p poker.Player, h *poker.Hand, winner bool) string {
	hpadding := 4
	if winner {
		hpadding = 6
	}
	pbox := pterm.DefaultBox.WithHorizontalPadding(hpadding).WithTopPadding(1).WithBottomPadding(1)
	var status string
	switch {
	case p.HasFolded || h == nil:
		status = pterm.LightRed("Folded")
	case winner:
		status = pterm.LightGreen("Winner")
	default:
		status = pterm.LightYellow("Lost")
	}
	pocket := pterm.BgGreen.Sprint(pointersString(p.Hand[:]))
	if h == nil {
		return pbox.WithTitle(p.Name).WithTitleTopLeft().Sprintf("%s\n%s\n", status, pocket)
	}
	return pbox.WithTitle(p.Name).WithTitleTopLeft().Sprintf("%s\n%s\n%s\n%s", status, pocket, h.Category(), cardsString(h.BestHand()))
}

func printBoardInfo(b [5]*poker.Card) string {
	return pterm.BgGreen.Sprint("\n Board: " + pointersString(b[:]) + " \n")
}

func getWinnerPanel(s poker.Session, result poker.ShowdownResult) pterm.Panel {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	infoString := ""
	for _, id := range result.Winners {
		idx := s.FindPlayerIndex(id)
		if idx < 0 {
			continue
		}
		h := result.Hands[id]
		infoString += pterm.Sprintfln("%s wins with %s", pterm.LightCyan(s.Players[idx].Name), h.Category())
	}
	if len(result.Winners) > 1 {
		infoString += pterm.Sprintfln("Split between %d players", len(result.Winners))
	}
	return pterm.Panel{Data: pbox.WithTitle(pterm.LightGreen("|SHOWDOWN|")).WithTitleTopCenter().Sprint(infoString)}
}

func printState(s poker.Session, result poker.ShowdownResult) {
	var panels []pterm.Panel
	for _, p := range s.Players {
		h := result.Hands[p.Id]
		panels = append(panels, pterm.Panel{Data: printPlayerInfo(p, h, slices.Contains(result.Winners, p.Id))})
	}
	board := pterm.Panel{Data: printBoardInfo(s.Board)}

	pterm.DefaultPanel.WithPanels([][]pterm.Panel{
		panels,
		{board},
		{getWinnerPanel(s, result)},
	}).Render()
}

// historyTable lists every recorded hand, genesis excluded.
func historyTable(blocks []ledger.Block) *pterm.TablePrinter {
	data := pterm.TableData{{"Hand", "Board", "Winners", "Category", "Hash"}}
	for _, b := range blocks {
		if b.Index == 0 {
			continue
		}
		sd := b.Showdown
		var names []string
		category := ""
		for _, seat := range sd.Seats {
			if slices.Contains(sd.Winners, seat.PlayerID) {
				names = append(names, seat.Name)
				category = seat.Category
			}
		}
		data = append(data, []string{
			strconv.Itoa(sd.HandID),
			strings.Join(sd.Board, " "),
			strings.Join(names, ", "),
			category,
			b.Hash[:12],
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data)
}
