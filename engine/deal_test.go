package engine

import "testing"

func TestNewDeckComposition(t *testing.T) {
	deck := NewDeck()
	if len(deck) != DeckSize {
		t.Fatalf("deck has %d cards, want %d", len(deck), DeckSize)
	}

	seen := make(map[Card]bool, DeckSize)
	jokers := 0
	fours := 0
	for _, c := range deck {
		if seen[c] {
			t.Errorf("duplicate card %+v", c)
		}
		seen[c] = true
		if c.Joker {
			jokers++
		}
		if !c.Joker && c.Rank == RankFour {
			if c.Suit != Diamonds && c.Suit != Hearts {
				t.Errorf("black four in deck: %+v", c)
			}
			fours++
		}
	}
	if jokers != 1 {
		t.Errorf("deck has %d jokers, want 1", jokers)
	}
	if fours != 2 {
		t.Errorf("deck has %d fours, want 2 (red only)", fours)
	}
}

func TestDealPartitionsDeck(t *testing.T) {
	hands, kitty := Deal()

	if len(kitty) != KittySize {
		t.Fatalf("kitty has %d cards, want %d", len(kitty), KittySize)
	}

	seen := make(map[Card]bool, DeckSize)
	for i, h := range hands {
		if len(h) != HandSize {
			t.Fatalf("hand %d has %d cards, want %d", i, len(h), HandSize)
		}
		for _, c := range h {
			if seen[c] {
				t.Errorf("card dealt twice: %+v", c)
			}
			seen[c] = true
		}
	}
	for _, c := range kitty {
		if seen[c] {
			t.Errorf("kitty card also in a hand: %+v", c)
		}
		seen[c] = true
	}

	for _, c := range NewDeck() {
		if !seen[c] {
			t.Errorf("card missing from deal: %+v", c)
		}
	}
}
