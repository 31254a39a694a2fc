// internal/game/aborted.go
package game

import "github.com/jason-s-yu/fivehundred/internal/api"

// Aborted is the terminal stage after a fatal event (a player quit or
// disconnected). It never changes and answers every step with the abort
// notice.
type Aborted struct {
	reason string
}

// NewAborted returns the terminal abort stage.
func NewAborted(reason string) *Aborted { return &Aborted{reason: reason} }

// Process re-sends the match-aborted notice: seated players get their last
// known history, strangers an anonymous notice.
func (a *Aborted) Process(roster *Roster, playerIndex int, clients *ClientMap, id ClientID, step api.Step) Stage {
	if playerIndex >= 0 {
		clients.Send(id, roster.Seats[playerIndex].History, api.StateMatchAborted)
	} else {
		clients.Send(id, api.Anonymous("Match aborted."), api.StateMatchAborted)
	}
	return a
}

// MatchWon is the terminal stage of a completed match. Like Aborted it only
// echoes the final state.
type MatchWon struct {
	team int
}

// NewMatchWon returns the terminal stage for a finished match.
func NewMatchWon(team int) *MatchWon { return &MatchWon{team: team} }

// Process re-sends the final result.
func (w *MatchWon) Process(roster *Roster, playerIndex int, clients *ClientMap, id ClientID, step api.Step) Stage {
	if playerIndex >= 0 {
		clients.Send(id, roster.Seats[playerIndex].History, api.StateMatchWon)
	} else {
		clients.Send(id, api.Anonymous("Match has finished."), api.StateMatchWon)
	}
	return w
}
