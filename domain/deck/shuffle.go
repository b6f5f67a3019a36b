package deck

import (
	"crypto/cipher"
	"math/big"

	"go.dedis.ch/kyber/v4/util/random"
)

// Shuffle gathers every card, including drawn and burned ones, and puts them
// in a uniformly random order.
func (d *Deck) Shuffle() {
	d.PrepareDeck()
	stream := d.Rand
	if stream == nil {
		stream = suite.RandomStream()
	}
	perm := permutation(d.DeckSize, stream)
	for i, p := range perm {
		d.cards[i] = p + 1
	}
}

// permutation returns a random permutation of 0..permSize-1 (Fisher-Yates),
// drawing every index uniformly from rand. random.Int never returns zero, so
// j is drawn from 1..i+1 and shifted down.
func permutation(permSize int, rand cipher.Stream) []int {
	perm := make([]int, permSize)
	for i := range perm {
		perm[i] = i
	}
	for i := permSize - 1; i > 0; i-- {
		j := int(random.Int(big.NewInt(int64(i+2)), rand).Int64()) - 1
		perm[i], perm[j] = perm[j], perm[i]
	}
	return perm
}
