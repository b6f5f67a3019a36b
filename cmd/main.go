package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/luca-patrignani/hand-ranker/domain/poker"
	"github.com/luca-patrignani/hand-ranker/ledger"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s eval [-debug] <card>...\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "       %s deal [-players N] [-hands M] [-debug]\n", os.Args[0])
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	// Create a new slog handler with the default PTerm logger
	handler := pterm.NewSlogHandler(&pterm.DefaultLogger)

	// Create a new slog logger with the handler
	logger := slog.New(handler)

	var err error
	switch os.Args[1] {
	case "eval":
		var cfg evalConfig
		if cfg, err = parseEvalArgs(os.Args[2:]); err == nil {
			setDebug(cfg.debug)
			err = runEval(logger, cfg)
		}
	case "deal":
		var cfg dealConfig
		if cfg, err = parseDealArgs(os.Args[2:]); err == nil {
			setDebug(cfg.debug)
			err = runDeal(logger, cfg)
		}
	default:
		usage()
		os.Exit(1)
	}
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

func setDebug(debug bool) {
	if debug {
		pterm.DefaultLogger.Level = pterm.LogLevelDebug
	}
}

func renderTitle(logger *slog.Logger) {
	pterm.Print("\n")
	title, err := pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("H", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("and ", pterm.FgDarkGray.ToStyle()),
		putils.LettersFromStringWithStyle("R", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("anker", pterm.FgDarkGray.ToStyle()),
	).Srender()
	if err != nil {
		logger.Error(err.Error())
		return
	}
	pterm.Print(title)
}

// evaluate parses the card codes and ranks the hand they make.
func evaluate(codes []string) (*poker.Hand, error) {
	cards, err := poker.ParseCards(codes...)
	if err != nil {
		return nil, err
	}
	h, err := poker.NewHand(cards...)
	if err != nil {
		return nil, err
	}
	if err := h.Evaluate(); err != nil {
		return nil, err
	}
	return h, nil
}

func runEval(logger *slog.Logger, cfg evalConfig) error {
	h, err := evaluate(cfg.cards)
	if err != nil {
		return err
	}
	logger.Debug("hand evaluated", "cards", len(cfg.cards), "category", h.Category().Name())
	crossCheck(logger, h)
	pterm.Println(handBox(h, len(cfg.cards)))
	return nil
}

// crossCheck logs how the paulhankin evaluator sees the hand, when it has a
// size that evaluator supports.
func crossCheck(logger *slog.Logger, h *poker.Hand) {
	if desc, err := h.Describe(); err == nil {
		logger.Debug("reference description", "description", desc)
	}
	if score, err := h.Score(); err == nil {
		logger.Debug("reference score", "score", score)
	}
}

func runDeal(logger *slog.Logger, cfg dealConfig) error {
	renderTitle(logger)

	bc := ledger.NewBlockchain()
	d := poker.NewPokerDeck()
	players := newPlayers(cfg.players)
	for handID := 1; handID <= cfg.hands; handID++ {
		session := poker.Session{Players: players}
		spinner, _ := pterm.DefaultSpinner.Start("Shuffling and dealing the cards ...")
		result, block, err := playHand(handID, &session, d, bc)
		if err != nil {
			spinner.Fail()
			return fmt.Errorf("hand %d: %w", handID, err)
		}
		spinner.Success()
		logger.Debug("hand recorded", "hand", handID, "block", block.Index, "hash", block.Hash)
		for id, h := range result.Hands {
			logger.Debug("player hand", "player", id, "hand", h.String())
			crossCheck(logger, h)
		}
		printState(session, result)
	}

	if err := bc.Verify(); err != nil {
		return fmt.Errorf("hand history corrupted: %w", err)
	}
	pterm.Success.Printfln("Hand history verified: %d hands recorded", bc.Len()-1)
	return historyTable(bc.Blocks()).Render()
}

// playHand deals one hand to the session, runs the showdown and appends it
// to the hand history.
func playHand(handID int, session *poker.Session, d poker.PokerDeck, bc *ledger.Blockchain) (poker.ShowdownResult, ledger.Block, error) {
	if err := session.Deal(d); err != nil {
		return poker.ShowdownResult{}, ledger.Block{}, err
	}
	result, err := session.Showdown()
	if err != nil {
		return poker.ShowdownResult{}, ledger.Block{}, err
	}
	block, err := bc.Append(ledger.NewShowdown(handID, *session, result))
	if err != nil {
		return poker.ShowdownResult{}, ledger.Block{}, err
	}
	return result, block, nil
}

func newPlayers(n int) []poker.Player {
	players := make([]poker.Player, n)
	for i := range players {
		players[i] = poker.Player{
			Name: fmt.Sprintf("Player %d", i+1),
			Id:   i,
		}
	}
	return players
}
