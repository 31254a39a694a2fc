package engine

// Trick-resolution strength tiers. Within a tier, rank decides.
const (
	strengthOffSuit    = 0
	strengthLedSuit    = 100
	strengthTrump      = 500
	strengthLeftBower  = 800
	strengthRightBower = 900
	strengthJoker      = 1000
)

// EffectiveSuit returns the suit a play counts as under the given contract.
// The Joker counts as trump in suit contracts, and as its assigned suit in
// no-trumps contracts. The left bower counts as trump.
func (p Play) EffectiveSuit(contract Bid) Suit {
	trump, hasTrump := contract.Trump.TrumpSuit()
	if contract.Type != BidTricks {
		hasTrump = false
	}

	if p.Card.Joker {
		if hasTrump {
			return trump
		}
		return p.JokerSuit
	}
	if hasTrump && p.Card.Rank == Jack && SameColour(p.Card.Suit, trump) {
		return trump
	}
	return p.Card.Suit
}

// strength ranks a play against others in the same trick. Higher wins. Plays
// that neither trump nor follow the led suit can never win.
func (p Play) strength(contract Bid, led Suit) int {
	if p.Card.Joker {
		return strengthJoker
	}

	es := p.EffectiveSuit(contract)
	trump, hasTrump := contract.Trump.TrumpSuit()
	if contract.Type != BidTricks {
		hasTrump = false
	}

	if hasTrump && es == trump {
		if p.Card.Rank == Jack {
			if p.Card.Suit == trump {
				return strengthRightBower
			}
			return strengthLeftBower
		}
		return strengthTrump + int(p.Card.Rank)
	}
	if es == led {
		return strengthLedSuit + int(p.Card.Rank)
	}
	return strengthOffSuit
}

// TrickWinner returns the seat that won a completed trick. plays is indexed by
// seat; nil entries are players who sat out (misère partner). leader is the
// seat that led, whose play must be non-nil.
func TrickWinner(plays [NumPlayers]*Play, leader int, contract Bid) int {
	led := plays[leader].EffectiveSuit(contract)

	winner := leader
	best := plays[leader].strength(contract, led)
	for offset := 1; offset < NumPlayers; offset++ {
		seat := (leader + offset) % NumPlayers
		if plays[seat] == nil {
			continue
		}
		if s := plays[seat].strength(contract, led); s > best {
			winner, best = seat, s
		}
	}
	return winner
}

// LegalPlays expands a hand into the plays the holder may commit. jokerSuit is
// the declared joker suit in a no-trumps contract, if any; led is the suit led
// to the current trick, nil when the player is leading.
//
// A player must follow the led effective suit when they hold a card of it.
// The Joker counts toward the led suit only when its suit is fixed (by trump
// or by declaration); an undeclared Joker in a no-trumps contract expands to
// one play per suit when leading, and to a led-suit play when following.
func LegalPlays(hand []Card, contract Bid, jokerSuit *Suit, led *Suit) []Play {
	trump, hasTrump := contract.Trump.TrumpSuit()
	if contract.Type != BidTricks {
		hasTrump = false
	}

	var options []Play
	for _, c := range hand {
		switch {
		case !c.Joker:
			options = append(options, Play{Card: c})
		case hasTrump:
			options = append(options, Play{Card: c, JokerSuit: trump})
		case jokerSuit != nil:
			options = append(options, Play{Card: c, JokerSuit: *jokerSuit})
		case led != nil:
			// Undeclared joker played to a trick assumes the led suit.
			options = append(options, Play{Card: c, JokerSuit: *led})
		default:
			for _, s := range Suits {
				options = append(options, Play{Card: c, JokerSuit: s})
			}
		}
	}

	if led == nil {
		return options
	}

	// The follow obligation counts only cards whose suit is already fixed:
	// an undeclared joker never forces a follow.
	canFollow := false
	for _, c := range hand {
		if c.Joker && !hasTrump && jokerSuit == nil {
			continue
		}
		if (Play{Card: c, JokerSuit: suitOrZero(jokerSuit)}).EffectiveSuit(contract) == *led {
			canFollow = true
			break
		}
	}
	if !canFollow {
		return options
	}

	var legal []Play
	for _, p := range options {
		if p.EffectiveSuit(contract) == *led {
			legal = append(legal, p)
		}
	}
	return legal
}

func suitOrZero(s *Suit) Suit {
	if s == nil {
		return ""
	}
	return *s
}
