// internal/game/bidding.go
package game

import (
	log "github.com/sirupsen/logrus"

	"github.com/jason-s-yu/fivehundred/engine"
	"github.com/jason-s-yu/fivehundred/internal/api"
)

// Bidding runs one auction. Constructing it deals a fresh game.
type Bidding struct {
	m *matchState

	currentBidder int
	kitty         []engine.Card
	prevBids      [engine.NumPlayers]*engine.Bid
	highest       *engine.Bid
}

// NewBidding deals a new game: shuffles, distributes hands and the kitty,
// resets every seat's game view and announces the new hand and the first
// bidder. Only the first bidder's history carries bid options.
func NewBidding(roster *Roster, clients *ClientMap, m *matchState) Stage {
	hands, kitty := engine.Deal()

	b := &Bidding{m: m, currentBidder: m.firstBidder, kitty: kitty}

	for i, seat := range roster.Seats {
		h := &seat.History
		if h.Match == nil {
			h.Match = &api.MatchView{}
		}
		h.Match.PastGames = m.pastGames
		h.Match.Totals = m.totals
		h.Game = &api.GameView{
			Hand: hands[i],
			Bidding: &api.BiddingView{
				CurrentBidderIndex: b.currentBidder,
			},
		}
		clients.Send(seat.Client, *h, api.StateHandDealt)
	}

	b.sendBiddingState(roster, clients)
	return b
}

// sendBiddingState refreshes bid options (current bidder only) and sends the
// waiting cues to every seat.
func (b *Bidding) sendBiddingState(roster *Roster, clients *ClientMap) {
	for i, seat := range roster.Seats {
		bv := seat.History.BiddingView()
		bv.CurrentBidderIndex = b.currentBidder

		state := api.StateWaitingForTheirBid
		if i == b.currentBidder {
			seat.History.SetBidOptions(engine.AvailableBids(b.prevBids, b.highest, i))
			state = api.StateWaitingForYourBid
		} else {
			seat.History.SetBidOptions(nil)
		}
		clients.Send(seat.Client, seat.History, state)
	}
}

// nextBidder advances from seat i, skipping players who have passed out of
// the auction.
func (b *Bidding) nextBidder(i int) int {
	for {
		i = (i + 1) % engine.NumPlayers
		if prev := b.prevBids[i]; prev == nil || prev.Type != engine.BidPass {
			return i
		}
	}
}

func (b *Bidding) passCount() int {
	n := 0
	for _, prev := range b.prevBids {
		if prev != nil && prev.Type == engine.BidPass {
			n++
		}
	}
	return n
}

// Process handles auction steps.
func (b *Bidding) Process(roster *Roster, playerIndex int, clients *ClientMap, id ClientID, step api.Step) Stage {
	if !rejectNonPlayer(playerIndex, clients, id, step) {
		return b
	}

	switch step.Type {
	case api.StepMakeBid:
		return b.processBid(roster, playerIndex, clients, id, *step.Bid)

	case api.StepPoll:
		seat := roster.Seats[playerIndex]
		state := api.StateWaitingForTheirBid
		if playerIndex == b.currentBidder {
			state = api.StateWaitingForYourBid
		}
		clients.Send(seat.Client, seat.History, state)
		return b

	default:
		state := api.StateWaitingForTheirBid
		if playerIndex == b.currentBidder {
			state = api.StateWaitingForYourBid
		}
		badStep(roster, playerIndex, clients, id, step, state, "during bidding")
		return b
	}
}

func (b *Bidding) processBid(roster *Roster, index int, clients *ClientMap, id ClientID, bid engine.Bid) Stage {
	seat := roster.Seats[index]

	if index != b.currentBidder {
		log.WithField("client", id).Error("bid out of turn")
		clients.Send(id, api.WithError(seat.History, "Not your turn to bid."), api.StateWaitingForTheirBid)
		return b
	}

	if !containsBid(engine.AvailableBids(b.prevBids, b.highest, index), bid) {
		log.WithFields(log.Fields{"client": id, "bid": bid.Type}).Error("illegal bid")
		clients.Send(id, api.WithError(seat.History, "You tried to make a bid that is unavailable to you."), api.StateWaitingForYourBid)
		return b
	}

	// Record the accepted bid and show it to everyone.
	recorded := bid
	b.prevBids[index] = &recorded
	if bid.Type != engine.BidPass {
		b.highest = &recorded
	}
	for _, s := range roster.Seats {
		s.History.BiddingView().Bids[index] = &recorded
		clients.Send(s.Client, s.History, api.StatePlayerBid)
	}

	// Cold deck: nobody wants it. Rotate the first bidder and redeal.
	if b.passCount() == engine.NumPlayers {
		log.Info("all four players passed; redealing")
		b.m.firstBidder = (b.m.firstBidder + 1) % engine.NumPlayers
		return NewBidding(roster, clients, b.m)
	}

	// The auction resolves on an open misère, or once a live bid stands
	// against three passes.
	if b.highest != nil && (b.highest.Type == engine.BidOpenMisere || b.passCount() == engine.NumPlayers-1) {
		winner := -1
		for i, prev := range b.prevBids {
			if prev != nil && *prev == *b.highest {
				winner = i
				break
			}
		}
		log.WithFields(log.Fields{"winner": winner, "bid": b.highest.Type}).Info("auction resolved")

		// The auction is over; its view is retired.
		for _, s := range roster.Seats {
			s.History.Game.Bidding = nil
		}
		return NewBidWon(roster, clients, b.m, winner, *b.highest, b.kitty)
	}

	b.currentBidder = b.nextBidder(index)
	b.sendBiddingState(roster, clients)
	return b
}

func containsBid(bids []engine.Bid, bid engine.Bid) bool {
	for _, b := range bids {
		if b == bid {
			return true
		}
	}
	return false
}
