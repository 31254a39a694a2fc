// internal/game/playing.go
package game

import (
	log "github.com/sirupsen/logrus"

	"github.com/jason-s-yu/fivehundred/engine"
	"github.com/jason-s-yu/fivehundred/internal/api"
)

// Playing runs the tricks of one deal, from the winner's opening lead to the
// deal's scoring, and hands off to the next auction or the end of the match.
type Playing struct {
	m          *matchState
	contractor int
	contract   engine.Bid

	// sitOut is the contractor's partner in misère contracts, -1 otherwise.
	sitOut int

	// Joker declaration state. awaitingJoker blocks play in no-trumps
	// contracts until the holder has declared; playing the joker undeclared
	// never happens through that gate, but a declared or trump-fixed suit is
	// recorded here.
	awaitingJoker bool
	jokerHolder   int
	jokerSuit     *engine.Suit

	leader        int
	currentPlayer int
	current       [engine.NumPlayers]*engine.Play
	played        int

	tricksByPlayer [engine.NumPlayers]int
	tricksPlayed   int
}

// NewPlaying enters trick play after the kitty exchange. The contractor leads.
// In a no-trumps contract with the joker in a live hand, the holder must
// declare its suit before the first card is played.
func NewPlaying(roster *Roster, clients *ClientMap, m *matchState, contractor int, contract engine.Bid) Stage {
	p := &Playing{
		m:             m,
		contractor:    contractor,
		contract:      contract,
		sitOut:        -1,
		jokerHolder:   -1,
		leader:        contractor,
		currentPlayer: contractor,
	}
	if contract.Type == engine.BidMisere || contract.Type == engine.BidOpenMisere {
		p.sitOut = (contractor + 2) % engine.NumPlayers
	}

	for i, seat := range roster.Seats {
		for _, c := range seat.History.Game.Hand {
			if c.Joker {
				p.jokerHolder = i
			}
		}
	}
	p.awaitingJoker = contract.NoTrumpsContract() &&
		p.jokerHolder >= 0 && p.jokerHolder != p.sitOut

	pv := api.PlaysView{CurrentPlayerIndex: contractor}
	for i := range pv.HandSizes {
		pv.HandSizes[i] = len(roster.Seats[i].History.Game.Hand)
	}
	for _, seat := range roster.Seats {
		view := pv
		seat.History.Game.Plays = &view
	}

	if p.awaitingJoker {
		for i, seat := range roster.Seats {
			state := api.StateWaitingForTheirJokerSuit
			if i == p.jokerHolder {
				state = api.StateWaitingForYourJokerSuit
			}
			clients.Send(seat.Client, seat.History, state)
		}
		return p
	}

	p.sendPlayState(roster, clients)
	return p
}

// ledSuit returns the effective suit led to the open trick, nil when the
// current player is leading.
func (p *Playing) ledSuit() *engine.Suit {
	if p.played == 0 {
		return nil
	}
	led := p.current[p.leader].EffectiveSuit(p.contract)
	return &led
}

// sendPlayState refreshes play options (current player only) and sends the
// waiting cues to every seat.
func (p *Playing) sendPlayState(roster *Roster, clients *ClientMap) {
	for i, seat := range roster.Seats {
		pv := seat.History.PlaysView()
		pv.CurrentPlayerIndex = p.currentPlayer

		state := api.StateWaitingForTheirPlay
		if i == p.currentPlayer {
			seat.History.SetPlayOptions(engine.LegalPlays(
				seat.History.Game.Hand, p.contract, p.jokerSuit, p.ledSuit()))
			state = api.StateWaitingForYourPlay
		} else {
			seat.History.SetPlayOptions(nil)
		}
		clients.Send(seat.Client, seat.History, state)
	}
}

// waitingState is the stage-scoped cue for a given seat right now.
func (p *Playing) waitingState(index int) api.CurrentState {
	switch {
	case p.awaitingJoker && index == p.jokerHolder:
		return api.StateWaitingForYourJokerSuit
	case p.awaitingJoker:
		return api.StateWaitingForTheirJokerSuit
	case index == p.currentPlayer:
		return api.StateWaitingForYourPlay
	default:
		return api.StateWaitingForTheirPlay
	}
}

// nextPlayer advances clockwise, skipping a misère partner sitting out.
func (p *Playing) nextPlayer(i int) int {
	for {
		i = (i + 1) % engine.NumPlayers
		if i != p.sitOut {
			return i
		}
	}
}

// activePlayers is the number of plays that complete a trick.
func (p *Playing) activePlayers() int {
	if p.sitOut >= 0 {
		return engine.NumPlayers - 1
	}
	return engine.NumPlayers
}

// Process handles trick-play steps.
func (p *Playing) Process(roster *Roster, playerIndex int, clients *ClientMap, id ClientID, step api.Step) Stage {
	if !rejectNonPlayer(playerIndex, clients, id, step) {
		return p
	}

	switch step.Type {
	case api.StepAnnounceJokerSuit:
		return p.processJokerSuit(roster, playerIndex, clients, id, step.Suit)

	case api.StepMakePlay:
		return p.processPlay(roster, playerIndex, clients, id, *step.Play)

	case api.StepPoll:
		clients.Send(id, roster.Seats[playerIndex].History, p.waitingState(playerIndex))
		return p

	default:
		badStep(roster, playerIndex, clients, id, step, p.waitingState(playerIndex), "during play")
		return p
	}
}

func (p *Playing) processJokerSuit(roster *Roster, index int, clients *ClientMap, id ClientID, suit engine.Suit) Stage {
	seat := roster.Seats[index]

	if !p.awaitingJoker {
		reason := "No joker declaration is expected."
		if !p.contract.NoTrumpsContract() {
			reason = "The joker is a trump; its suit is fixed."
		}
		clients.Send(id, api.WithError(seat.History, reason), p.waitingState(index))
		return p
	}
	if index != p.jokerHolder {
		log.WithField("client", id).Error("joker declaration from a player without the joker")
		clients.Send(id, api.WithError(seat.History, "You don't hold the joker."), api.StateWaitingForTheirJokerSuit)
		return p
	}
	if !validSuit(suit) {
		clients.Send(id, api.WithError(seat.History, "No such suit."), api.StateWaitingForYourJokerSuit)
		return p
	}

	declared := suit
	p.jokerSuit = &declared
	p.awaitingJoker = false
	log.WithFields(log.Fields{"client": id, "suit": suit}).Info("joker suit announced")

	for _, s := range roster.Seats {
		s.History.PlaysView().JokerSuit = &declared
		clients.Send(s.Client, s.History, api.StateJokerSuitAnnounced)
	}

	p.sendPlayState(roster, clients)
	return p
}

func (p *Playing) processPlay(roster *Roster, index int, clients *ClientMap, id ClientID, play engine.Play) Stage {
	seat := roster.Seats[index]

	if p.awaitingJoker {
		clients.Send(id, api.WithError(seat.History, "Waiting for the joker suit to be announced."), p.waitingState(index))
		return p
	}
	if index != p.currentPlayer {
		log.WithField("client", id).Error("play out of turn")
		clients.Send(id, api.WithError(seat.History, "Not your turn to play."), api.StateWaitingForTheirPlay)
		return p
	}

	legal := engine.LegalPlays(seat.History.Game.Hand, p.contract, p.jokerSuit, p.ledSuit())
	if !containsPlay(legal, play) {
		log.WithField("client", id).Error("illegal play")
		clients.Send(id, api.WithError(seat.History, "That card cannot be played."), api.StateWaitingForYourPlay)
		return p
	}

	// Commit: the card leaves the hand and joins the trick. A joker played
	// in a no-trumps contract fixes its suit for the rest of the deal.
	seat.History.Game.Hand = removeCard(seat.History.Game.Hand, play.Card)
	committed := play
	p.current[index] = &committed
	p.played++
	if play.Card.Joker && p.contract.NoTrumpsContract() && p.jokerSuit == nil {
		s := play.JokerSuit
		p.jokerSuit = &s
	}

	for _, s := range roster.Seats {
		pv := s.History.PlaysView()
		trickPlay := committed
		pv.CurrentTrick[index] = &trickPlay
		pv.HandSizes[index] = len(seat.History.Game.Hand)
		pv.JokerSuit = p.jokerSuit
	}

	if p.played < p.activePlayers() {
		p.currentPlayer = p.nextPlayer(index)
		p.sendPlayState(roster, clients)
		return p
	}
	return p.resolveTrick(roster, clients)
}

func (p *Playing) resolveTrick(roster *Roster, clients *ClientMap) Stage {
	winner := engine.TrickWinner(p.current, p.leader, p.contract)
	p.tricksByPlayer[winner]++
	p.tricksPlayed++
	log.WithFields(log.Fields{"winner": winner, "trick": p.tricksPlayed}).Info("trick won")

	previous := make([]*engine.Play, engine.NumPlayers)
	copy(previous, p.current[:])

	for _, s := range roster.Seats {
		pv := s.History.PlaysView()
		pv.PreviousTrick = previous
		pv.CurrentTrick = [engine.NumPlayers]*engine.Play{}
		pv.TrickCounts[engine.Team(winner)]++
		pv.CurrentPlayerIndex = winner
		clients.Send(s.Client, s.History, api.StateTrickWon)
	}

	p.current = [engine.NumPlayers]*engine.Play{}
	p.played = 0
	p.leader = winner
	p.currentPlayer = winner

	// A misère contractor taking a trick has already failed; the deal ends.
	misereFailed := p.sitOut >= 0 && winner == p.contractor

	if misereFailed || p.tricksPlayed == engine.HandSize {
		return p.finishDeal(roster, clients)
	}

	p.sendPlayState(roster, clients)
	return p
}

func (p *Playing) finishDeal(roster *Roster, clients *ClientMap) Stage {
	out := engine.ScoreDeal(p.contract, p.contractor, p.tricksByPlayer)
	for t := range p.m.totals {
		p.m.totals[t] += out.Deltas[t]
	}
	p.m.pastGames = append(p.m.pastGames, api.GameScore{Deltas: out.Deltas, Totals: p.m.totals})

	gameWinner := out.ContractorTeam
	if !out.Made {
		gameWinner = 1 - out.ContractorTeam
	}
	log.WithFields(log.Fields{
		"contractor": p.contractor,
		"made":       out.Made,
		"team":       gameWinner,
		"totals":     p.m.totals,
	}).Info("game finished")

	for _, s := range roster.Seats {
		s.History.Match.PastGames = p.m.pastGames
		s.History.Match.Totals = p.m.totals
		s.History.Game.Plays = nil
		clients.Send(s.Client, s.History, api.StateGameWon)
		clients.Send(s.Client, s.History, api.StateScoresUpdated)
	}

	if team, done := engine.MatchWinner(p.m.totals, out); done {
		log.WithField("team", team).Info("match won")
		for _, s := range roster.Seats {
			winning := team
			s.History.Match.WinningTeam = &winning
			s.History.Game = nil
			clients.Send(s.Client, s.History, api.StateMatchWon)
		}
		return NewMatchWon(team)
	}

	p.m.firstBidder = (p.m.firstBidder + 1) % engine.NumPlayers
	return NewBidding(roster, clients, p.m)
}

func validSuit(s engine.Suit) bool {
	for _, suit := range engine.Suits {
		if s == suit {
			return true
		}
	}
	return false
}

func containsPlay(plays []engine.Play, play engine.Play) bool {
	for _, p := range plays {
		if p == play {
			return true
		}
	}
	return false
}

func removeCard(hand []engine.Card, card engine.Card) []engine.Card {
	out := make([]engine.Card, 0, len(hand))
	for _, c := range hand {
		if c != card {
			out = append(out, c)
		}
	}
	return out
}
