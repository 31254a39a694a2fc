// Package engine implements the rules of four-player 500: the deck, the bid
// ordering, the auction legality rules, trick resolution and scoring. It holds
// no session or transport state and performs no I/O.
package engine

// Table constants for the four-player game.
const (
	NumPlayers = 4
	NumTeams   = 2
	HandSize   = 10
	KittySize  = 3
	DeckSize   = 43
)

// Suit is one of the four card suits. The constant order is the bidding cycle
// order (Spades lowest).
type Suit string

const (
	Spades   Suit = "Spades"
	Clubs    Suit = "Clubs"
	Diamonds Suit = "Diamonds"
	Hearts   Suit = "Hearts"
)

// Suits lists the suits in bidding cycle order.
var Suits = [4]Suit{Spades, Clubs, Diamonds, Hearts}

// SameColour reports whether two suits share a colour. The jack of the suit
// sharing the trump's colour is the left bower.
func SameColour(a, b Suit) bool {
	black := func(s Suit) bool { return s == Spades || s == Clubs }
	return black(a) == black(b)
}

// Rank is a card face value. Number cards use their own value; court cards and
// the ace continue the sequence so ranks compare directly.
type Rank int

const (
	RankFour Rank = 4
	RankFive Rank = 5
	RankSix  Rank = 6
	RankTen  Rank = 10
	Jack     Rank = 11
	Queen    Rank = 12
	King     Rank = 13
	Ace      Rank = 14
)

// Card is a suited rank or the Joker. The zero fields of a Joker card are
// ignored. All 43 deck cards are distinct values, so Card is usable as a map
// key and compares with ==.
type Card struct {
	Joker bool `json:"joker,omitempty"`
	Rank  Rank `json:"rank,omitempty"`
	Suit  Suit `json:"suit,omitempty"`
}

// Suited constructs a regular card.
func Suited(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// JokerCard is the single Joker.
var JokerCard = Card{Joker: true}

// Play is a card committed to a trick. When the card is the Joker it carries
// the effective suit its holder assigned to it.
type Play struct {
	Card      Card `json:"card"`
	JokerSuit Suit `json:"jokerSuit,omitempty"`
}
