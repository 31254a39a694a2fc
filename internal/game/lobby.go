// internal/game/lobby.go
package game

import (
	log "github.com/sirupsen/logrus"

	"github.com/jason-s-yu/fivehundred/engine"
	"github.com/jason-s-yu/fivehundred/internal/api"
)

// Lobby is the opening stage: clients join until four seats are filled, then
// the first deal begins.
type Lobby struct{}

// NewLobby returns the stage a fresh session starts in.
func NewLobby() *Lobby { return &Lobby{} }

// Process handles lobby steps. Join admits the caller (or excludes them when
// they already hold a seat, the table is full, or the team index is
// malformed); the fourth join deals a game and hands off to Bidding. Poll
// reflects the caller's lobby view. Anything else is excluded for strangers
// and an error for seated players.
func (l *Lobby) Process(roster *Roster, playerIndex int, clients *ClientMap, id ClientID, step api.Step) Stage {
	switch step.Type {
	case api.StepJoin:
		if playerIndex >= 0 {
			clients.Send(id, api.WithError(roster.Seats[playerIndex].History, "Already joined."), api.StateExcluded)
			log.WithField("client", id).Info("excluded: already joined")
			return l
		}
		if roster.Len() == engine.NumPlayers {
			clients.Send(id, api.Anonymous("Game ongoing."), api.StateExcluded)
			log.WithField("client", id).Info("excluded: table full")
			return l
		}
		if step.Team != 0 && step.Team != 1 {
			clients.Send(id, api.Anonymous("No such team."), api.StateError)
			return l
		}

		// Seating is by join order; team is seat parity. The requested team
		// index is validated but not honoured.
		seat := &Seat{Client: id}
		index := roster.Len()
		seat.History.Lobby = &api.LobbyView{
			YourPlayerIndex: index,
			YourTeamIndex:   engine.Team(index),
		}
		roster.Seats = append(roster.Seats, seat)
		log.WithFields(log.Fields{"client": id, "seat": index}).Info("player joined")

		for _, s := range roster.Seats {
			s.History.Lobby.PlayerCount = roster.Len()
			clients.Send(s.Client, s.History, api.StatePlayerJoined)
		}

		if roster.Len() == engine.NumPlayers {
			log.Info("table full; starting match")
			return NewBidding(roster, clients, &matchState{})
		}
		return l

	case api.StepPoll:
		if playerIndex >= 0 {
			clients.Send(id, roster.Seats[playerIndex].History, api.StatePlayerJoined)
		} else {
			clients.Send(id, api.Anonymous("You have not joined."), api.StateExcluded)
		}
		return l

	default:
		if playerIndex < 0 {
			clients.Send(id, api.Anonymous("You have not joined."), api.StateExcluded)
			return l
		}
		badStep(roster, playerIndex, clients, id, step, api.StatePlayerJoined, "in the lobby")
		return l
	}
}
