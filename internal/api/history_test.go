// internal/api/history_test.go
package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jason-s-yu/fivehundred/engine"
)

func sampleHistory() History {
	bid := engine.Tricks(7, engine.BidHearts)
	team := 0
	suit := engine.Spades
	return History{
		Lobby: &LobbyView{PlayerCount: 4, YourPlayerIndex: 1, YourTeamIndex: 1},
		Match: &MatchView{
			PastGames:   []GameScore{{Deltas: [2]int{100, 30}, Totals: [2]int{100, 30}}},
			Totals:      [2]int{100, 30},
			WinningTeam: &team,
		},
		Game: &GameView{
			Hand: []engine.Card{engine.Suited(engine.Ace, engine.Spades), engine.JokerCard},
			Bidding: &BiddingView{
				Bids:       [engine.NumPlayers]*engine.Bid{&bid},
				BidOptions: []engine.Bid{engine.Pass(), bid},
			},
			WinningBid: &WinningBidView{
				WinningBidderIndex: 2,
				WinningBid:         bid,
				Kitty:              []engine.Card{engine.Suited(engine.RankFive, engine.Clubs)},
			},
			Plays: &PlaysView{
				JokerSuit:    &suit,
				CurrentTrick: [engine.NumPlayers]*engine.Play{{Card: engine.Suited(engine.King, engine.Diamonds)}},
				PlayOptions:  []engine.Play{{Card: engine.JokerCard, JokerSuit: engine.Spades}},
			},
		},
	}
}

func TestCloneIsDeep(t *testing.T) {
	h := sampleHistory()
	c := h.Clone()
	require.Equal(t, h, c)

	// Mutating the original must not show through the clone.
	h.Lobby.PlayerCount = 2
	h.Match.PastGames[0].Deltas[0] = -1
	*h.Match.WinningTeam = 1
	h.Game.Hand[0] = engine.Suited(engine.RankSix, engine.Hearts)
	h.Game.Bidding.Bids[0].Tricks = 10
	h.Game.Bidding.BidOptions[0] = engine.OpenMisere()
	h.Game.WinningBid.Kitty[0] = engine.JokerCard
	*h.Game.Plays.JokerSuit = engine.Hearts
	h.Game.Plays.CurrentTrick[0].Card = engine.JokerCard
	h.Game.Plays.PlayOptions[0].JokerSuit = engine.Clubs

	assert.Equal(t, 4, c.Lobby.PlayerCount)
	assert.Equal(t, 100, c.Match.PastGames[0].Deltas[0])
	assert.Equal(t, 0, *c.Match.WinningTeam)
	assert.Equal(t, engine.Suited(engine.Ace, engine.Spades), c.Game.Hand[0])
	assert.Equal(t, 7, c.Game.Bidding.Bids[0].Tricks)
	assert.Equal(t, engine.BidPass, c.Game.Bidding.BidOptions[0].Type)
	assert.False(t, c.Game.WinningBid.Kitty[0].Joker)
	assert.Equal(t, engine.Spades, *c.Game.Plays.JokerSuit)
	assert.False(t, c.Game.Plays.CurrentTrick[0].Card.Joker)
	assert.Equal(t, engine.Spades, c.Game.Plays.PlayOptions[0].JokerSuit)
}

func TestWithErrorLeavesOriginalClean(t *testing.T) {
	h := sampleHistory()
	e := WithError(h, "Not your turn to bid.")
	assert.Equal(t, "Not your turn to bid.", e.Error)
	assert.Empty(t, h.Error)
}

func TestStepValid(t *testing.T) {
	bid := engine.Pass()
	play := engine.Play{Card: engine.Suited(engine.RankTen, engine.Spades)}

	assert.True(t, Step{Type: StepPoll}.Valid())
	assert.True(t, Step{Type: StepJoin, Team: 1}.Valid())
	assert.True(t, Step{Type: StepMakeBid, Bid: &bid}.Valid())
	assert.True(t, Step{Type: StepMakePlay, Play: &play}.Valid())

	assert.False(t, Step{Type: StepMakeBid}.Valid())
	assert.False(t, Step{Type: StepMakePlay}.Valid())
	assert.False(t, Step{Type: "Dance"}.Valid())
	assert.False(t, Step{}.Valid())
}
