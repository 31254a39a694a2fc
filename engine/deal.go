package engine

import "math/rand/v2"

// NewDeck builds the 43-card pack used in four-player 500: fives through aces
// in every suit, the red fours, and the Joker.
func NewDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	for rank := RankFive; rank <= Ace; rank++ {
		for _, suit := range Suits {
			deck = append(deck, Suited(rank, suit))
		}
	}
	deck = append(deck,
		Suited(RankFour, Diamonds),
		Suited(RankFour, Hearts),
		JokerCard,
	)
	return deck
}

// Deal shuffles a fresh deck and splits it into four ten-card hands and the
// three-card kitty. The shuffle draws from the process-wide random source,
// which is seeded unpredictably; deals are never reproducible.
func Deal() (hands [NumPlayers][]Card, kitty []Card) {
	deck := NewDeck()
	rand.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})

	for i := range hands {
		hands[i] = deck[i*HandSize : (i+1)*HandSize : (i+1)*HandSize]
	}
	kitty = deck[NumPlayers*HandSize:]
	return hands, kitty
}
