// internal/game/session.go
package game

import (
	"context"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/jason-s-yu/fivehundred/internal/api"
	"github.com/jason-s-yu/fivehundred/internal/cache"
	"github.com/jason-s-yu/fivehundred/internal/database"
)

// Session is the actor coordinating one match: it owns the roster and the
// current stage, and is the only reader of the inbound funnel. All mutation
// of match state happens on its loop, in funnel arrival order.
type Session struct {
	ID string

	rx      chan ClientEvent
	clients *ClientMap
	roster  *Roster
	stage   Stage

	// Optional sinks, wired by the caller before Run. Historian records
	// accepted client events for audit tooling; Results stores the final
	// outcome when the session reaches a terminal stage.
	Historian *cache.Historian
	Results   *database.Store

	seq          int
	resultStored bool
}

// NewSession creates a session consuming the given funnel, starting in the
// lobby.
func NewSession(rx chan ClientEvent) *Session {
	return &Session{
		ID:      uuid.NewString(),
		rx:      rx,
		clients: NewClientMap(),
		roster:  &Roster{},
		stage:   NewLobby(),
	}
}

// Run consumes the funnel until the context is cancelled or every producer
// has dropped it. It blocks only on "funnel empty", never on any one
// client's I/O.
func (s *Session) Run(ctx context.Context) {
	slog := log.WithField("session", s.ID)
	slog.Info("session started")

	for {
		select {
		case <-ctx.Done():
			slog.Info("session stopped")
			return
		case ev, ok := <-s.rx:
			if !ok {
				slog.Info("all clients dropped; exiting")
				return
			}
			s.handle(ctx, ev)
		}
	}
}

func (s *Session) handle(ctx context.Context, ev ClientEvent) {
	switch ev.Kind {
	case EventConnect:
		s.clients.Register(ev.ID, ev.Tx)
		log.WithField("client", ev.ID).Info("client connected")
		return

	case EventDisconnect:
		s.clients.Unregister(ev.ID)
		if s.roster.IndexOf(ev.ID) >= 0 && !s.terminal() {
			log.WithField("client", ev.ID).Info("player disconnected; aborting match")
			s.abort(ev.ID, "Player disconnected.")
		} else {
			log.WithField("client", ev.ID).Info("client disconnected")
		}

	case EventStep:
		s.logStep(ev)

		index := s.roster.IndexOf(ev.ID)
		if ev.Step.Type == api.StepQuit && index >= 0 && !s.terminal() {
			log.WithField("client", ev.ID).Info("player left; aborting match")
			s.abort(ev.ID, "Player left.")
		} else {
			s.stage = s.stage.Process(s.roster, index, s.clients, ev.ID, ev.Step)
		}
	}

	if s.terminal() && !s.resultStored {
		s.resultStored = true
		s.storeResult(ctx)
	}
}

// abort ends the match: every seat's history records the reason, every
// *other* roster member is notified, and the session parks in Aborted. The
// offender learns the outcome from its next action, like everyone else.
func (s *Session) abort(offender ClientID, reason string) {
	for _, seat := range s.roster.Seats {
		if seat.History.Match == nil {
			seat.History.Match = &api.MatchView{}
		}
		seat.History.Match.AbortReason = reason
	}
	for _, seat := range s.roster.Seats {
		if seat.Client != offender {
			s.clients.Send(seat.Client, seat.History, api.StateMatchAborted)
		}
	}
	s.stage = NewAborted(reason)
}

func (s *Session) terminal() bool {
	switch s.stage.(type) {
	case *Aborted, *MatchWon:
		return true
	}
	return false
}

// logStep publishes the event to the historian, fire-and-forget.
func (s *Session) logStep(ev ClientEvent) {
	if s.Historian == nil {
		return
	}
	s.seq++
	rec := cache.StepRecord{
		SessionID: s.ID,
		Seq:       s.seq,
		ClientID:  string(ev.ID),
		StepType:  string(ev.Step.Type),
		Timestamp: time.Now().UnixMilli(),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := s.Historian.PublishStep(ctx, rec); err != nil {
			log.WithError(err).WithField("seq", rec.Seq).Error("failed publishing step record")
		}
	}()
}

// storeResult persists the terminal outcome, fire-and-forget.
func (s *Session) storeResult(ctx context.Context) {
	if s.Results == nil {
		return
	}

	res := database.MatchResult{SessionID: s.ID, FinishedAt: time.Now()}
	switch st := s.stage.(type) {
	case *MatchWon:
		team := st.team
		res.WinningTeam = &team
	case *Aborted:
		res.Aborted = true
		res.AbortReason = st.reason
	}
	if len(s.roster.Seats) > 0 {
		if mv := s.roster.Seats[0].History.Match; mv != nil {
			res.Totals = mv.Totals
			res.GamesPlayed = len(mv.PastGames)
		}
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		if err := s.Results.StoreMatchResult(ctx, res); err != nil {
			log.WithError(err).Error("failed storing match result")
		}
	}()
}
