package deck

import (
	"errors"
	"testing"
)

func TestPrepareDeck(t *testing.T) {
	d := NewDeck(52)
	if d.Remaining() != 52 {
		t.Fatalf("expected 52 cards, got %d", d.Remaining())
	}
	for i := 1; i <= 52; i++ {
		c, err := d.DrawCard()
		if err != nil {
			t.Fatal(err)
		}
		if c != i {
			t.Fatalf("expected card %d, got %d", i, c)
		}
	}
}

func TestDrawCardEmpty(t *testing.T) {
	d := NewDeck(2)
	for i := 0; i < 2; i++ {
		if _, err := d.DrawCard(); err != nil {
			t.Fatal(err)
		}
	}
	_, err := d.DrawCard()
	if !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
	if err := d.Burn(); !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty from burn, got %v", err)
	}
}

func TestBurn(t *testing.T) {
	d := NewDeck(52)
	if err := d.Burn(); err != nil {
		t.Fatal(err)
	}
	if err := d.Burn(); err != nil {
		t.Fatal(err)
	}
	burned := d.Burned()
	if len(burned) != 2 || burned[0] != 1 || burned[1] != 2 {
		t.Fatalf("expected burn pile [1 2], got %v", burned)
	}
	if d.Remaining() != 50 {
		t.Fatalf("expected 50 cards left, got %d", d.Remaining())
	}
	c, err := d.DrawCard()
	if err != nil {
		t.Fatal(err)
	}
	if c != 3 {
		t.Fatalf("expected card 3 after two burns, got %d", c)
	}
}
