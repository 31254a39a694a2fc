// internal/game/bidwon.go
package game

import (
	log "github.com/sirupsen/logrus"

	"github.com/jason-s-yu/fivehundred/engine"
	"github.com/jason-s-yu/fivehundred/internal/api"
)

// BidWon is the kitty-exchange stage: the auction winner picks up the kitty
// and buries three cards before play begins.
type BidWon struct {
	m      *matchState
	winner int
	bid    engine.Bid
	kitty  []engine.Card
}

// NewBidWon announces the auction result to everyone and the kitty to the
// winner only, then waits on the winner's discard.
func NewBidWon(roster *Roster, clients *ClientMap, m *matchState, winner int, bid engine.Bid, kitty []engine.Card) Stage {
	b := &BidWon{m: m, winner: winner, bid: bid, kitty: kitty}

	for _, seat := range roster.Seats {
		seat.History.Game.WinningBid = &api.WinningBidView{
			WinningBidderIndex: winner,
			WinningBid:         bid,
		}
		clients.Send(seat.Client, seat.History, api.StateBidWon)
	}

	// Only the winner sees the kitty.
	roster.Seats[winner].History.Game.WinningBid.Kitty = kitty

	for i, seat := range roster.Seats {
		clients.Send(seat.Client, seat.History, b.waitingState(i))
	}
	return b
}

func (b *BidWon) waitingState(index int) api.CurrentState {
	if index == b.winner {
		return api.StateWaitingForYourKitty
	}
	return api.StateWaitingForTheirKitty
}

// Process handles the discard.
func (b *BidWon) Process(roster *Roster, playerIndex int, clients *ClientMap, id ClientID, step api.Step) Stage {
	if !rejectNonPlayer(playerIndex, clients, id, step) {
		return b
	}

	switch step.Type {
	case api.StepDiscardCards:
		return b.processDiscard(roster, playerIndex, clients, id, step.Cards)

	case api.StepPoll:
		clients.Send(id, roster.Seats[playerIndex].History, b.waitingState(playerIndex))
		return b

	default:
		badStep(roster, playerIndex, clients, id, step, b.waitingState(playerIndex), "after bid won")
		return b
	}
}

func (b *BidWon) processDiscard(roster *Roster, index int, clients *ClientMap, id ClientID, cards []engine.Card) Stage {
	seat := roster.Seats[index]

	if index != b.winner {
		log.WithField("client", id).Error("discard from a player without the kitty")
		clients.Send(id, api.WithError(seat.History, "You don't have the kitty."), api.StateWaitingForTheirKitty)
		return b
	}

	if len(cards) != engine.KittySize {
		log.WithFields(log.Fields{"client": id, "count": len(cards)}).Error("wrong discard count")
		clients.Send(id, api.WithError(seat.History, "You must discard exactly three cards."), api.StateWaitingForYourKitty)
		return b
	}

	// The winner may bury from the union of their hand and the kitty. Every
	// deck card is distinct, so a plain set works; deleting as we check also
	// rejects duplicate discards.
	held := make(map[engine.Card]bool, engine.HandSize+engine.KittySize)
	for _, c := range seat.History.Game.Hand {
		held[c] = true
	}
	for _, c := range b.kitty {
		held[c] = true
	}
	for _, c := range cards {
		if !held[c] {
			log.WithField("client", id).Error("discard of unheld card")
			clients.Send(id, api.WithError(seat.History, "You tried to discard cards you don't hold."), api.StateWaitingForYourKitty)
			return b
		}
		delete(held, c)
	}

	// Rebuild the ten-card hand in a stable order: hand first, then kitty.
	hand := make([]engine.Card, 0, engine.HandSize)
	for _, c := range append(append([]engine.Card(nil), seat.History.Game.Hand...), b.kitty...) {
		if held[c] {
			hand = append(hand, c)
		}
	}
	seat.History.Game.Hand = hand
	seat.History.Game.WinningBid.Kitty = cards
	b.kitty = nil

	log.WithField("client", id).Info("kitty exchanged")
	return NewPlaying(roster, clients, b.m, b.winner, b.bid)
}
