// internal/ws/ws.go
//
// Package ws bridges websocket connections onto the session funnel. Each
// connection gets a client id and an outbound channel; frames read from the
// socket become step events, frames landing on the outbound channel are
// written back as JSON.
package ws

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/jason-s-yu/fivehundred/internal/api"
	"github.com/jason-s-yu/fivehundred/internal/auth"
	"github.com/jason-s-yu/fivehundred/internal/game"
)

const writeTimeout = 10 * time.Second

// Handler accepts websocket connections and feeds the session funnel.
type Handler struct {
	Events chan<- game.ClientEvent

	// Gate, when non-nil, requires a valid bearer token on every connection.
	Gate *auth.Gate
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.Gate != nil {
		if _, err := h.Gate.Verify(bearerToken(r)); err != nil {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
	}

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		log.WithError(err).Error("websocket accept failed")
		return
	}

	id := game.ClientID(uuid.NewString())
	tx := game.NewOutbound()
	logger := log.WithField("client_id", id)
	logger.Info("client connected")

	h.Events <- game.ConnectEvent(id, tx)

	ctx := r.Context()
	go h.writeLoop(ctx, conn, tx, logger)
	h.readLoop(ctx, conn, id, logger)

	h.Events <- game.DisconnectEvent(id)
	logger.Info("client disconnected")
	conn.Close(websocket.StatusNormalClosure, "")
}

// readLoop decodes inbound frames into steps. Malformed or invalid frames are
// dropped; the loop ends when the socket errors or closes.
func (h *Handler) readLoop(ctx context.Context, conn *websocket.Conn, id game.ClientID, logger *log.Entry) {
	for {
		var step api.Step
		if err := wsjson.Read(ctx, conn, &step); err != nil {
			if websocket.CloseStatus(err) == -1 && ctx.Err() == nil {
				logger.WithError(err).Debug("websocket read failed")
			}
			return
		}
		if !step.Valid() {
			logger.WithField("step_type", step.Type).Warn("dropping invalid step")
			continue
		}
		h.Events <- game.StepEvent(id, step)
	}
}

// writeLoop drains the outbound channel onto the socket. It exits when the
// channel closes or a write fails; the session keeps dropping messages for a
// stalled channel, so a dead writer never blocks the event loop.
func (h *Handler) writeLoop(ctx context.Context, conn *websocket.Conn, tx <-chan api.Message, logger *log.Entry) {
	for msg := range tx {
		wctx, cancel := context.WithTimeout(ctx, writeTimeout)
		err := wsjson.Write(wctx, conn, msg)
		cancel()
		if err != nil {
			logger.WithError(err).Debug("websocket write failed")
			return
		}
	}
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if tok, ok := strings.CutPrefix(h, "Bearer "); ok {
		return tok
	}
	// Browser clients cannot set headers on websocket upgrades.
	return r.URL.Query().Get("token")
}
