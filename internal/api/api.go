// internal/api/api.go
//
// Package api defines the wire types exchanged with clients: the Step actions
// a player can take, the state tags describing what just happened, and the
// per-player History views the projector assembles. All types marshal to the
// JSON carried in websocket text frames.
package api

import "github.com/jason-s-yu/fivehundred/engine"

// StepType discriminates the inbound action variants.
type StepType string

const (
	StepPoll              StepType = "Poll"
	StepJoin              StepType = "Join"
	StepMakeBid           StepType = "MakeBid"
	StepDiscardCards      StepType = "DiscardCards"
	StepAnnounceJokerSuit StepType = "AnnounceJokerSuit"
	StepMakePlay          StepType = "MakePlay"
	StepQuit              StepType = "Quit"
)

// Step is one client action. Exactly the payload field matching Type is set.
type Step struct {
	Type StepType `json:"type"`

	Team  int           `json:"team,omitempty"`  // Join: team index in [0,1].
	Bid   *engine.Bid   `json:"bid,omitempty"`   // MakeBid.
	Cards []engine.Card `json:"cards,omitempty"` // DiscardCards: exactly 3.
	Suit  engine.Suit   `json:"suit,omitempty"`  // AnnounceJokerSuit.
	Play  *engine.Play  `json:"play,omitempty"`  // MakePlay.
}

// Valid reports whether the step is well-formed enough to enter the engine.
// Malformed steps are dropped at the transport boundary and never reach a
// stage.
func (s Step) Valid() bool {
	switch s.Type {
	case StepPoll, StepQuit, StepJoin, StepDiscardCards, StepAnnounceJokerSuit:
		return true
	case StepMakeBid:
		return s.Bid != nil
	case StepMakePlay:
		return s.Play != nil
	}
	return false
}

// CurrentState tags an outbound message with what the delivery means for its
// recipient.
type CurrentState string

const (
	StatePlayerJoined             CurrentState = "PlayerJoined"
	StateExcluded                 CurrentState = "Excluded"
	StateHandDealt                CurrentState = "HandDealt"
	StateWaitingForYourBid        CurrentState = "WaitingForYourBid"
	StateWaitingForTheirBid       CurrentState = "WaitingForTheirBid"
	StatePlayerBid                CurrentState = "PlayerBid"
	StateBidWon                   CurrentState = "BidWon"
	StateWaitingForYourKitty      CurrentState = "WaitingForYourKitty"
	StateWaitingForTheirKitty     CurrentState = "WaitingForTheirKitty"
	StateWaitingForYourJokerSuit  CurrentState = "WaitingForYourJokerSuit"
	StateWaitingForTheirJokerSuit CurrentState = "WaitingForTheirJokerSuit"
	StateJokerSuitAnnounced       CurrentState = "JokerSuitAnnounced"
	StateWaitingForYourPlay       CurrentState = "WaitingForYourPlay"
	StateWaitingForTheirPlay      CurrentState = "WaitingForTheirPlay"
	StateTrickWon                 CurrentState = "TrickWon"
	StateGameWon                  CurrentState = "GameWon"
	StateScoresUpdated            CurrentState = "ScoresUpdated"
	StateMatchWon                 CurrentState = "MatchWon"
	StateMatchAborted             CurrentState = "MatchAborted"
	StateError                    CurrentState = "Error"
)

// Message is the outbound frame: a state tag plus the recipient's projected
// history.
type Message struct {
	State   CurrentState `json:"state"`
	History History      `json:"history"`
}
