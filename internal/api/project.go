// internal/api/project.go
//
// Projection helpers. Histories are per-player by construction (a seat's
// history only ever holds that seat's hand); these helpers handle the parts
// that vary per delivery: transient error attachment and turn-scoped options.
package api

import "github.com/jason-s-yu/fivehundred/engine"

// WithError projects a copy of h carrying an error reason. The error never
// lands in the stored history, only in this one response to the offender.
func WithError(h History, reason string) History {
	c := h.Clone()
	c.Error = reason
	return c
}

// Anonymous is the projection for a client with no seat at the table.
func Anonymous(reason string) History {
	return History{Error: reason}
}

// BiddingView returns the live bidding view. The caller guarantees the deal
// has been entered; a missing view here is a stage-machine bug.
func (h *History) BiddingView() *BiddingView {
	return h.Game.Bidding
}

// PlaysView returns the live plays view under the same invariant.
func (h *History) PlaysView() *PlaysView {
	return h.Game.Plays
}

// SetBidOptions places the legal-bid list on this history, or strips it.
// Exactly one seat, the current bidder, carries options at any time.
func (h *History) SetBidOptions(opts []engine.Bid) {
	h.Game.Bidding.BidOptions = opts
}

// SetPlayOptions does the same for trick play.
func (h *History) SetPlayOptions(opts []engine.Play) {
	h.Game.Plays.PlayOptions = opts
}
