// internal/api/history.go
package api

import "github.com/jason-s-yu/fivehundred/engine"

// History is one player's complete view of the session. Sub-views are
// populated exactly while the corresponding stage is live: Lobby from the
// moment the player joins, Match from the first deal, Game per deal, and the
// views inside Game as the deal progresses. Error is transient: set only on
// the response to the request that caused it.
type History struct {
	Lobby *LobbyView `json:"lobby,omitempty"`
	Match *MatchView `json:"match,omitempty"`
	Game  *GameView  `json:"game,omitempty"`

	Error string `json:"error,omitempty"`
}

// LobbyView describes the player's seat and the table occupancy.
type LobbyView struct {
	PlayerCount     int `json:"playerCount"`
	YourPlayerIndex int `json:"yourPlayerIndex"`
	YourTeamIndex   int `json:"yourTeamIndex"`
}

// GameScore is the score movement of one completed deal: per-team deltas and
// the running totals they produced.
type GameScore struct {
	Deltas [engine.NumTeams]int `json:"deltas"`
	Totals [engine.NumTeams]int `json:"totals"`
}

// MatchView accumulates cross-deal results.
type MatchView struct {
	PastGames   []GameScore          `json:"pastGames"`
	Totals      [engine.NumTeams]int `json:"totals"`
	WinningTeam *int                 `json:"winningTeam,omitempty"`
	AbortReason string               `json:"abortReason,omitempty"`
}

// GameView is the per-deal view: the player's own hand plus whichever phase
// views are currently live. Other players' hands never appear here.
type GameView struct {
	Hand       []engine.Card   `json:"hand"`
	Bidding    *BiddingView    `json:"bidding,omitempty"`
	WinningBid *WinningBidView `json:"winningBid,omitempty"`
	Plays      *PlaysView      `json:"plays,omitempty"`
}

// BiddingView is live during the auction and cleared when it resolves.
// BidOptions is populated only in the current bidder's own history.
type BiddingView struct {
	Bids               [engine.NumPlayers]*engine.Bid `json:"bids"`
	CurrentBidderIndex int                            `json:"currentBidderIndex"`
	BidOptions         []engine.Bid                   `json:"bidOptions,omitempty"`
}

// WinningBidView records the auction result. Kitty is visible only to the
// winning bidder: first the dealt kitty, then, after the exchange, the cards
// they buried.
type WinningBidView struct {
	WinningBidderIndex int           `json:"winningBidderIndex"`
	WinningBid         engine.Bid    `json:"winningBid"`
	Kitty              []engine.Card `json:"kitty,omitempty"`
}

// PlaysView is live during trick play. Trick contents and counts are public;
// PlayOptions appears only in the history of the player whose turn it is. A
// nil entry in a trick is a seat that has not played (or sits out in misère).
type PlaysView struct {
	JokerSuit          *engine.Suit                    `json:"jokerSuit,omitempty"`
	TrickCounts        [engine.NumTeams]int            `json:"trickCounts"`
	HandSizes          [engine.NumPlayers]int          `json:"handSizes"`
	PreviousTrick      []*engine.Play                  `json:"previousTrick,omitempty"`
	CurrentTrick       [engine.NumPlayers]*engine.Play `json:"currentTrick"`
	CurrentPlayerIndex int                             `json:"currentPlayerIndex"`
	PlayOptions        []engine.Play                   `json:"playOptions,omitempty"`
}

// Clone returns a deep copy. Outbound deliveries are cloned so a stage
// mutating the live history never races the transport serializing it.
func (h History) Clone() History {
	c := h
	if h.Lobby != nil {
		lv := *h.Lobby
		c.Lobby = &lv
	}
	if h.Match != nil {
		mv := *h.Match
		mv.PastGames = append([]GameScore(nil), h.Match.PastGames...)
		if h.Match.WinningTeam != nil {
			t := *h.Match.WinningTeam
			mv.WinningTeam = &t
		}
		c.Match = &mv
	}
	if h.Game != nil {
		gv := *h.Game
		gv.Hand = append([]engine.Card(nil), h.Game.Hand...)
		if h.Game.Bidding != nil {
			bv := *h.Game.Bidding
			bv.BidOptions = append([]engine.Bid(nil), h.Game.Bidding.BidOptions...)
			for i, b := range h.Game.Bidding.Bids {
				if b != nil {
					bid := *b
					bv.Bids[i] = &bid
				}
			}
			gv.Bidding = &bv
		}
		if h.Game.WinningBid != nil {
			wv := *h.Game.WinningBid
			wv.Kitty = append([]engine.Card(nil), h.Game.WinningBid.Kitty...)
			gv.WinningBid = &wv
		}
		if h.Game.Plays != nil {
			pv := *h.Game.Plays
			if h.Game.Plays.JokerSuit != nil {
				s := *h.Game.Plays.JokerSuit
				pv.JokerSuit = &s
			}
			pv.PreviousTrick = clonePlays(h.Game.Plays.PreviousTrick)
			for i, p := range h.Game.Plays.CurrentTrick {
				if p != nil {
					play := *p
					pv.CurrentTrick[i] = &play
				}
			}
			pv.PlayOptions = append([]engine.Play(nil), h.Game.Plays.PlayOptions...)
			gv.Plays = &pv
		}
		c.Game = &gv
	}
	return c
}

func clonePlays(plays []*engine.Play) []*engine.Play {
	if plays == nil {
		return nil
	}
	out := make([]*engine.Play, len(plays))
	for i, p := range plays {
		if p != nil {
			play := *p
			out[i] = &play
		}
	}
	return out
}
