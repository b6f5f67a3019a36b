package deck

import (
	"slices"
	"testing"
)

func TestShuffle(t *testing.T) {
	d := NewDeck(52)
	if _, err := d.DrawCard(); err != nil {
		t.Fatal(err)
	}
	if err := d.Burn(); err != nil {
		t.Fatal(err)
	}
	d.Shuffle()
	if d.Remaining() != 52 {
		t.Fatalf("expected a full deck after shuffle, got %d", d.Remaining())
	}
	if len(d.Burned()) != 0 {
		t.Fatalf("expected empty burn pile, got %v", d.Burned())
	}

	seen := make(map[int]bool)
	inOrder := true
	for i := 1; i <= 52; i++ {
		c, err := d.DrawCard()
		if err != nil {
			t.Fatal(err)
		}
		if c < 1 || c > 52 {
			t.Fatalf("card %d out of range", c)
		}
		if seen[c] {
			t.Fatalf("card %d drawn twice", c)
		}
		seen[c] = true
		if c != i {
			inOrder = false
		}
	}
	// 1/52! chance of a false failure
	if inOrder {
		t.Fatal("deck still in order after shuffle")
	}
}

func TestPermutation(t *testing.T) {
	for n := 0; n < 10; n++ {
		perm := permutation(n, suite.RandomStream())
		if len(perm) != n {
			t.Fatalf("expected %d elements, got %d", n, len(perm))
		}
		seen := make([]bool, n)
		for _, p := range perm {
			if p < 0 || p >= n || seen[p] {
				t.Fatalf("not a permutation of 0..%d: %v", n-1, perm)
			}
			seen[p] = true
		}
	}
}

func TestShuffleSpread(t *testing.T) {
	// Every card should reach the top of a 4 card deck within a few hundred shuffles.
	d := NewDeck(4)
	top := make(map[int]int)
	for i := 0; i < 400; i++ {
		d.Shuffle()
		c, err := d.DrawCard()
		if err != nil {
			t.Fatal(err)
		}
		top[c]++
	}
	for c := 1; c <= 4; c++ {
		if top[c] == 0 {
			t.Fatalf("card %d never on top: %v", c, top)
		}
	}
}

func TestShuffleMovesTopCard(t *testing.T) {
	d := NewDeck(52)
	top := make(map[int]int)
	for i := 0; i < 200; i++ {
		d.Shuffle()
		c, err := d.DrawCard()
		if err != nil {
			t.Fatal(err)
		}
		top[c]++
	}
	if top[1] == 200 {
		t.Fatal("card 1 stayed on top of every shuffle")
	}
	if len(top) < 20 {
		t.Fatalf("expected many different top cards, got %v", top)
	}
}

func drawAll(t *testing.T, d *Deck) []int {
	t.Helper()
	var cards []int
	for d.Remaining() > 0 {
		c, err := d.DrawCard()
		if err != nil {
			t.Fatal(err)
		}
		cards = append(cards, c)
	}
	return cards
}

func TestSeededShuffle(t *testing.T) {
	a := NewDeck(52)
	a.Rand = suite.XOF([]byte("table one"))
	a.Shuffle()
	b := NewDeck(52)
	b.Rand = suite.XOF([]byte("table one"))
	b.Shuffle()
	c := NewDeck(52)
	c.Rand = suite.XOF([]byte("table two"))
	c.Shuffle()

	first, second, other := drawAll(t, a), drawAll(t, b), drawAll(t, c)
	if len(first) != 52 {
		t.Fatalf("expected 52 cards, got %d", len(first))
	}
	if !slices.Equal(first, second) {
		t.Fatalf("same seed gave different orders:\n%v\n%v", first, second)
	}
	if slices.Equal(first, other) {
		t.Fatal("different seeds gave the same order")
	}
}
