package engine

// AvailableBids returns the bids open to a player mid-auction, in ascending
// order. prevBids holds each player's most recent call (nil if they have not
// yet called); highest is the highest non-Pass bid so far (nil if none).
//
// Pass is always available, except that a player who has passed is out of the
// auction and gets nothing at all. Trick bids above the current highest are
// always available; the misère bids only once all four players have made
// their first call.
func AvailableBids(prevBids [NumPlayers]*Bid, highest *Bid, player int) []Bid {
	if prevBids[player] != nil && prevBids[player].Type == BidPass {
		return nil
	}

	bids := []Bid{Pass()}

	firstRoundDone := true
	for _, b := range prevBids {
		if b == nil {
			firstRoundDone = false
			break
		}
	}

	cur := Pass()
	if highest != nil {
		cur = *highest
	}
	for {
		next, ok := NextBid(cur)
		if !ok {
			break
		}
		switch next.Type {
		case BidTricks:
			bids = append(bids, next)
		case BidMisere, BidOpenMisere:
			if firstRoundDone {
				bids = append(bids, next)
			}
		}
		cur = next
	}

	return bids
}
