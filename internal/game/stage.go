// internal/game/stage.go
package game

import (
	log "github.com/sirupsen/logrus"

	"github.com/jason-s-yu/fivehundred/engine"
	"github.com/jason-s-yu/fivehundred/internal/api"
)

// Seat is one roster entry: a confirmed player and their projected history.
type Seat struct {
	Client  ClientID
	History api.History
}

// Roster is the ordered list of confirmed players. Entries are appended on
// join and never removed; a departing player aborts the match instead.
type Roster struct {
	Seats []*Seat
}

// Len returns the number of seated players.
func (r *Roster) Len() int { return len(r.Seats) }

// IndexOf returns the seat index for a client, or -1.
func (r *Roster) IndexOf(id ClientID) int {
	for i, s := range r.Seats {
		if s.Client == id {
			return i
		}
	}
	return -1
}

// Stage is one major phase of the session. Process handles a single client
// step and returns the stage the session should hold next, which is the
// receiver itself when nothing changed. The session passes ownership in and takes the
// result back; a stage instance is never referenced from two places.
type Stage interface {
	Process(roster *Roster, playerIndex int, clients *ClientMap, id ClientID, step api.Step) Stage
}

// matchState carries the cross-deal score state between stage instances.
type matchState struct {
	totals      [engine.NumTeams]int
	pastGames   []api.GameScore
	firstBidder int
}

// rejectNonPlayer answers a client who has no seat. Joins are excluded (the
// match has started by the time any non-lobby stage runs); everything else is
// a plain error. Returns true when the caller is a seated player.
func rejectNonPlayer(playerIndex int, clients *ClientMap, id ClientID, step api.Step) bool {
	if playerIndex >= 0 {
		return true
	}

	if step.Type == api.StepJoin {
		clients.Send(id, api.Anonymous("Match has started."), api.StateExcluded)
	} else {
		clients.Send(id, api.Anonymous("You are not a player in this game."), api.StateError)
	}
	return false
}

// badStep answers a seated player whose step has no meaning in the current
// stage. The stage does not change.
func badStep(roster *Roster, playerIndex int, clients *ClientMap, id ClientID, step api.Step, state api.CurrentState, stageName string) {
	log.WithFields(log.Fields{"client": id, "step": step.Type}).
		Errorf("invalid step %s", stageName)

	history := api.Anonymous("")
	if playerIndex >= 0 {
		history = roster.Seats[playerIndex].History
	}
	clients.Send(id, api.WithError(history, "Invalid step "+stageName), state)
}
