package engine

// BidSuit is a trump nomination: one of the four suits or no trumps.
type BidSuit string

const (
	BidSpades   BidSuit = BidSuit(Spades)
	BidClubs    BidSuit = BidSuit(Clubs)
	BidDiamonds BidSuit = BidSuit(Diamonds)
	BidHearts   BidSuit = BidSuit(Hearts)
	NoTrumps    BidSuit = "NoTrumps"
)

// TrumpSuit returns the plain suit for a suit nomination. ok is false for
// NoTrumps.
func (bs BidSuit) TrumpSuit() (Suit, bool) {
	if bs == NoTrumps {
		return "", false
	}
	return Suit(bs), true
}

// BidType discriminates the bid variants.
type BidType string

const (
	BidPass       BidType = "Pass"
	BidTricks     BidType = "Tricks"
	BidMisere     BidType = "Misere"
	BidOpenMisere BidType = "OpenMisere"
)

// Bid is one call in the auction. Tricks and Trump are meaningful only for
// the Tricks variant. Bids compare with ==.
type Bid struct {
	Type   BidType `json:"type"`
	Tricks int     `json:"tricks,omitempty"`
	Trump  BidSuit `json:"trump,omitempty"`
}

func Pass() Bid { return Bid{Type: BidPass} }

func Misere() Bid { return Bid{Type: BidMisere} }

func OpenMisere() Bid { return Bid{Type: BidOpenMisere} }

func Tricks(count int, t BidSuit) Bid {
	return Bid{Type: BidTricks, Tricks: count, Trump: t}
}

// NoTrumpsContract reports whether the joker needs a declared suit under this
// bid: no-trumps trick contracts and both misère contracts.
func (b Bid) NoTrumpsContract() bool {
	switch b.Type {
	case BidMisere, BidOpenMisere:
		return true
	case BidTricks:
		return b.Trump == NoTrumps
	}
	return false
}

// NextBid returns the bid immediately above b in the total bid order, or
// ok=false if b is the maximal bid. The order is:
//
//	Pass < Tricks(6,Spades) < Tricks(6,Clubs) < ... < Tricks(6,NoTrumps)
//	     < Tricks(7,Spades) < ... < Tricks(8,Clubs) < Misere
//	     < Tricks(8,Diamonds) < ... < Tricks(10,NoTrumps) < OpenMisere
//
// The suit cycle is Spades, Clubs, Diamonds, Hearts, NoTrumps; the trick count
// increments after each NoTrumps step. Misère sits directly above eight clubs
// (it is worth 270 points); nothing outbids open misère.
func NextBid(b Bid) (Bid, bool) {
	switch b.Type {
	case BidPass:
		return Tricks(6, BidSpades), true

	case BidMisere:
		return Tricks(8, BidDiamonds), true

	case BidOpenMisere:
		return Bid{}, false

	case BidTricks:
		if b.Tricks == 8 && b.Trump == BidClubs {
			return Misere(), true
		}

		count := b.Tricks
		if b.Trump == NoTrumps {
			count++
		}
		if count == 11 {
			return OpenMisere(), true
		}

		var suit BidSuit
		switch b.Trump {
		case BidSpades:
			suit = BidClubs
		case BidClubs:
			suit = BidDiamonds
		case BidDiamonds:
			suit = BidHearts
		case BidHearts:
			suit = NoTrumps
		case NoTrumps:
			suit = BidSpades
		}
		return Tricks(count, suit), true
	}

	return Bid{}, false
}

// Value returns the points the contracting team stakes on the bid, per the
// Avondale schedule. The misère values are chosen to stay monotone in the bid
// order: misère sits between eight clubs (260) and eight diamonds (280), open
// misère above ten no-trumps (520).
func (b Bid) Value() int {
	switch b.Type {
	case BidMisere:
		return 270
	case BidOpenMisere:
		return 530
	case BidTricks:
		var base int
		switch b.Trump {
		case BidSpades:
			base = 40
		case BidClubs:
			base = 60
		case BidDiamonds:
			base = 80
		case BidHearts:
			base = 100
		case NoTrumps:
			base = 120
		}
		return base + (b.Tricks-6)*100
	}
	return 0
}
