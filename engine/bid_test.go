package engine

import "testing"

// walkBidOrder collects every bid from Pass upward.
func walkBidOrder() []Bid {
	var bids []Bid
	cur := Pass()
	for {
		next, ok := NextBid(cur)
		if !ok {
			return bids
		}
		bids = append(bids, next)
		cur = next
	}
}

func TestBidOrderShape(t *testing.T) {
	bids := walkBidOrder()

	// 20 trick bids + Misere + OpenMisere.
	if len(bids) != 22 {
		t.Fatalf("expected 22 bids above Pass, got %d", len(bids))
	}

	tricks := 0
	seen := make(map[Bid]bool)
	for _, b := range bids {
		if seen[b] {
			t.Errorf("duplicate bid in order: %+v", b)
		}
		seen[b] = true
		if b.Type == BidTricks {
			tricks++
			if b.Tricks < 6 || b.Tricks > 10 {
				t.Errorf("trick count out of range: %+v", b)
			}
		}
	}
	if tricks != 20 {
		t.Errorf("expected 20 trick bids, got %d", tricks)
	}

	if bids[len(bids)-1] != OpenMisere() {
		t.Errorf("expected OpenMisere as maximum, got %+v", bids[len(bids)-1])
	}
	if _, ok := NextBid(OpenMisere()); ok {
		t.Error("OpenMisere should have no successor")
	}
}

func TestBidOrderMisereInterleaving(t *testing.T) {
	bids := walkBidOrder()
	for i, b := range bids {
		if b == Misere() {
			if bids[i-1] != Tricks(8, BidClubs) {
				t.Errorf("Misere should follow Tricks(8,Clubs), follows %+v", bids[i-1])
			}
			if bids[i+1] != Tricks(8, BidDiamonds) {
				t.Errorf("Misere should precede Tricks(8,Diamonds), precedes %+v", bids[i+1])
			}
			return
		}
	}
	t.Fatal("Misere missing from bid order")
}

func TestBidValuesMonotone(t *testing.T) {
	bids := walkBidOrder()
	prev := 0
	for _, b := range bids {
		if v := b.Value(); v <= prev {
			t.Errorf("bid value not increasing at %+v: %d <= %d", b, v, prev)
		} else {
			prev = v
		}
	}
}

func TestBidValueSchedule(t *testing.T) {
	cases := []struct {
		bid  Bid
		want int
	}{
		{Tricks(6, BidSpades), 40},
		{Tricks(6, NoTrumps), 120},
		{Tricks(8, BidClubs), 260},
		{Misere(), 270},
		{Tricks(8, BidDiamonds), 280},
		{Tricks(10, NoTrumps), 520},
		{OpenMisere(), 530},
		{Pass(), 0},
	}
	for _, c := range cases {
		if got := c.bid.Value(); got != c.want {
			t.Errorf("Value(%+v) = %d, want %d", c.bid, got, c.want)
		}
	}
}

func TestAvailableBidsOpeningHasEverythingButMiseres(t *testing.T) {
	var none [NumPlayers]*Bid
	bids := AvailableBids(none, nil, 0)

	if bids[0] != Pass() {
		t.Fatalf("expected Pass first, got %+v", bids[0])
	}
	// Pass + all 20 trick bids, no miseres in the first round.
	if len(bids) != 21 {
		t.Errorf("expected 21 opening bids, got %d", len(bids))
	}
	for _, b := range bids {
		if b.Type == BidMisere || b.Type == BidOpenMisere {
			t.Errorf("misère offered before everyone has bid: %+v", b)
		}
	}
}

func TestAvailableBidsAfterFirstRoundIncludesMiseres(t *testing.T) {
	highest := Tricks(7, BidHearts)
	prev := [NumPlayers]*Bid{
		{Type: BidTricks, Tricks: 6, Trump: BidSpades},
		{Type: BidTricks, Tricks: 7, Trump: BidHearts},
		{Type: BidTricks, Tricks: 6, Trump: BidHearts},
		{Type: BidTricks, Tricks: 7, Trump: BidClubs},
	}
	bids := AvailableBids(prev, &highest, 0)

	foundMisere, foundOpen := false, false
	for _, b := range bids {
		switch b.Type {
		case BidMisere:
			foundMisere = true
		case BidOpenMisere:
			foundOpen = true
		}
	}
	if !foundMisere || !foundOpen {
		t.Errorf("miseres missing after full first round: %v", bids)
	}
}

func TestAvailableBidsStrictlyAboveHighest(t *testing.T) {
	highest := Tricks(8, BidDiamonds)
	var prev [NumPlayers]*Bid
	p := Pass()
	prev[1] = &highest
	prev[2] = &p

	for _, b := range AvailableBids(prev, &highest, 0) {
		if b.Type != BidTricks {
			continue
		}
		if b.Value() <= highest.Value() {
			t.Errorf("offered bid %+v does not outrank highest %+v", b, highest)
		}
	}
}

func TestAvailableBidsPassedPlayerIsOut(t *testing.T) {
	p := Pass()
	var prev [NumPlayers]*Bid
	prev[2] = &p

	if bids := AvailableBids(prev, nil, 2); bids != nil {
		t.Errorf("passed player should have no bids, got %v", bids)
	}
}
