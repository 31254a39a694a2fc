package engine

import "testing"

func suited(r Rank, s Suit) *Play { return &Play{Card: Suited(r, s)} }

func TestTrickWinnerFollowsRank(t *testing.T) {
	contract := Tricks(6, NoTrumps)
	plays := [NumPlayers]*Play{
		suited(RankTen, Hearts),
		suited(Ace, Hearts),
		suited(King, Hearts),
		suited(RankFive, Hearts),
	}
	if w := TrickWinner(plays, 0, contract); w != 1 {
		t.Errorf("ace of led suit should win, got seat %d", w)
	}
}

func TestTrickWinnerOffSuitNeverWins(t *testing.T) {
	contract := Tricks(6, NoTrumps)
	plays := [NumPlayers]*Play{
		suited(RankFive, Clubs),
		suited(Ace, Spades),
		suited(Ace, Hearts),
		suited(Ace, Diamonds),
	}
	if w := TrickWinner(plays, 0, contract); w != 0 {
		t.Errorf("off-suit aces should not beat the led five, got seat %d", w)
	}
}

func TestTrickWinnerTrumpBeatsLedSuit(t *testing.T) {
	contract := Tricks(6, BidSpades)
	plays := [NumPlayers]*Play{
		suited(Ace, Hearts),
		suited(RankFive, Spades),
		suited(King, Hearts),
		suited(Queen, Hearts),
	}
	if w := TrickWinner(plays, 0, contract); w != 1 {
		t.Errorf("small trump should beat led ace, got seat %d", w)
	}
}

func TestTrickWinnerBowerOrder(t *testing.T) {
	contract := Tricks(6, BidDiamonds)
	plays := [NumPlayers]*Play{
		suited(Ace, Diamonds),
		suited(Jack, Hearts),   // left bower
		suited(Jack, Diamonds), // right bower
		suited(King, Diamonds),
	}
	if w := TrickWinner(plays, 0, contract); w != 2 {
		t.Errorf("right bower should win, got seat %d", w)
	}

	plays[2] = suited(RankTen, Diamonds)
	if w := TrickWinner(plays, 0, contract); w != 1 {
		t.Errorf("left bower should beat plain trumps, got seat %d", w)
	}
}

func TestTrickWinnerJokerBeatsEverything(t *testing.T) {
	contract := Tricks(10, BidHearts)
	plays := [NumPlayers]*Play{
		suited(Jack, Hearts),
		{Card: JokerCard, JokerSuit: Hearts},
		suited(Ace, Hearts),
		nil,
	}
	if w := TrickWinner(plays, 0, contract); w != 1 {
		t.Errorf("joker should beat the right bower, got seat %d", w)
	}
}

func TestTrickWinnerSkipsSittingOutSeat(t *testing.T) {
	contract := Misere()
	plays := [NumPlayers]*Play{
		suited(RankSix, Clubs),
		nil, // misère partner sits out
		suited(RankTen, Clubs),
		suited(RankFive, Clubs),
	}
	if w := TrickWinner(plays, 0, contract); w != 2 {
		t.Errorf("expected seat 2 to win, got %d", w)
	}
}

func TestLegalPlaysMustFollowSuit(t *testing.T) {
	contract := Tricks(6, NoTrumps)
	hand := []Card{
		Suited(Ace, Hearts),
		Suited(RankSix, Hearts),
		Suited(Ace, Spades),
	}
	led := Hearts
	legal := LegalPlays(hand, contract, nil, &led)

	if len(legal) != 2 {
		t.Fatalf("expected 2 legal plays, got %d: %v", len(legal), legal)
	}
	for _, p := range legal {
		if p.Card.Suit != Hearts {
			t.Errorf("non-heart offered while holding hearts: %+v", p)
		}
	}
}

func TestLegalPlaysVoidInLedSuit(t *testing.T) {
	contract := Tricks(6, NoTrumps)
	hand := []Card{Suited(Ace, Spades), Suited(RankFive, Clubs)}
	led := Hearts
	if legal := LegalPlays(hand, contract, nil, &led); len(legal) != 2 {
		t.Errorf("void player should have the whole hand legal, got %v", legal)
	}
}

func TestLegalPlaysLeftBowerIsTrump(t *testing.T) {
	// Jack of hearts is trump when diamonds are trumps; it must follow a
	// diamond lead and cannot be offered on a heart lead as a heart.
	contract := Tricks(6, BidDiamonds)
	hand := []Card{Suited(Jack, Hearts), Suited(RankFive, Spades)}

	led := Diamonds
	legal := LegalPlays(hand, contract, nil, &led)
	if len(legal) != 1 || legal[0].Card != Suited(Jack, Hearts) {
		t.Errorf("left bower should be forced on a trump lead, got %v", legal)
	}

	led = Hearts
	legal = LegalPlays(hand, contract, nil, &led)
	if len(legal) != 2 {
		t.Errorf("left bower is not a heart; whole hand should be legal, got %v", legal)
	}
}

func TestLegalPlaysUndeclaredJokerLeading(t *testing.T) {
	contract := Tricks(6, NoTrumps)
	hand := []Card{JokerCard, Suited(Ace, Spades)}
	legal := LegalPlays(hand, contract, nil, nil)

	// One play per suit for the joker, plus the ace.
	if len(legal) != 5 {
		t.Fatalf("expected 5 leads, got %d: %v", len(legal), legal)
	}
}

func TestLegalPlaysJokerFixedByTrump(t *testing.T) {
	contract := Tricks(6, BidSpades)
	hand := []Card{JokerCard, Suited(Ace, Hearts)}

	led := Spades
	legal := LegalPlays(hand, contract, nil, &led)
	if len(legal) != 1 || !legal[0].Card.Joker || legal[0].JokerSuit != Spades {
		t.Errorf("joker should be forced as trump on a trump lead, got %v", legal)
	}
}

func TestLegalPlaysDeclaredJokerMustFollow(t *testing.T) {
	contract := Misere()
	declared := Hearts
	hand := []Card{JokerCard, Suited(RankFive, Clubs)}

	led := Hearts
	legal := LegalPlays(hand, contract, &declared, &led)
	if len(legal) != 1 || !legal[0].Card.Joker {
		t.Errorf("declared joker should be forced on its suit's lead, got %v", legal)
	}
}
