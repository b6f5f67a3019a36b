// Package ledger implements an append-only hand history: every showdown is
// recorded as a block hash-chained to the previous one.
//
// # Core Components
//
// Blockchain: the chain of blocks, starting from a genesis block.
//
// Block: one recorded showdown with its index, timestamp and hash links.
//
// Showdown: the board, each contesting player's category and best hand, and
// the winners of one hand.
//
// # Usage
//
// Create a blockchain, then Append a Showdown built with NewShowdown after
// each hand. Verify can be called at any time to check that no recorded
// hand was altered.
package ledger
