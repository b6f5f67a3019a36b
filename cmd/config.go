package main

import (
	"errors"
	"flag"
	"fmt"
)

const (
	minPlayers     = 2
	maxPlayers     = 10
	defaultPlayers = 4
)

type evalConfig struct {
	debug bool
	cards []string
}

type dealConfig struct {
	debug   bool
	players int
	hands   int
}

func parseEvalArgs(args []string) (evalConfig, error) {
	fs := flag.NewFlagSet("eval", flag.ContinueOnError)
	debugFlag := fs.Bool("debug", false, "log debug messages")
	if err := fs.Parse(args); err != nil {
		return evalConfig{}, err
	}
	if fs.NArg() == 0 {
		return evalConfig{}, errors.New("eval: no cards given")
	}
	return evalConfig{debug: *debugFlag, cards: fs.Args()}, nil
}

func parseDealArgs(args []string) (dealConfig, error) {
	fs := flag.NewFlagSet("deal", flag.ContinueOnError)
	debugFlag := fs.Bool("debug", false, "log debug messages")
	playersFlag := fs.Uint("players", defaultPlayers, "number of players at the table")
	handsFlag := fs.Uint("hands", 1, "number of hands to deal")
	if err := fs.Parse(args); err != nil {
		return dealConfig{}, err
	}
	if fs.NArg() != 0 {
		return dealConfig{}, fmt.Errorf("deal: unexpected arguments %v", fs.Args())
	}
	if *playersFlag < minPlayers || *playersFlag > maxPlayers {
		return dealConfig{}, fmt.Errorf("deal: players must be between %d and %d, got %d", minPlayers, maxPlayers, *playersFlag)
	}
	if *handsFlag == 0 {
		return dealConfig{}, errors.New("deal: at least one hand must be dealt")
	}
	return dealConfig{
		debug:   *debugFlag,
		players: int(*playersFlag),
		hands:   int(*handsFlag),
	}, nil
}
