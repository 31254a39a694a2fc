// internal/game/events.go
//
// Event plumbing between the transport and the session actor. Everything a
// client does (connecting, acting, vanishing) arrives as a ClientEvent on
// one funnel channel that only the Session reads, so actions are applied in
// arrival order with no interleaving. Outbound delivery goes the other way:
// one buffered channel per client, written with a non-blocking send.
package game

import (
	log "github.com/sirupsen/logrus"

	"github.com/jason-s-yu/fivehundred/internal/api"
)

// ClientID is the opaque identity the transport mints per connection.
type ClientID string

// Funnel and per-client buffer sizes. The session drains the funnel in a
// tight loop; the outbound buffer absorbs bursts to slow readers.
const (
	FunnelBuffer   = 256
	outboundBuffer = 64
)

// EventKind discriminates the client event variants.
type EventKind uint8

const (
	EventConnect EventKind = iota + 1
	EventDisconnect
	EventStep
)

// ClientEvent is one item on the funnel. Tx is set for EventConnect, Step for
// EventStep.
type ClientEvent struct {
	ID   ClientID
	Kind EventKind
	Tx   chan api.Message
	Step api.Step
}

// ConnectEvent announces a new connection and carries its outbound channel.
func ConnectEvent(id ClientID, tx chan api.Message) ClientEvent {
	return ClientEvent{ID: id, Kind: EventConnect, Tx: tx}
}

// DisconnectEvent announces that a connection is gone.
func DisconnectEvent(id ClientID) ClientEvent {
	return ClientEvent{ID: id, Kind: EventDisconnect}
}

// StepEvent carries a decoded client action.
func StepEvent(id ClientID, step api.Step) ClientEvent {
	return ClientEvent{ID: id, Kind: EventStep, Step: step}
}

// NewFunnel returns the inbound channel shared by every connection.
func NewFunnel() chan ClientEvent {
	return make(chan ClientEvent, FunnelBuffer)
}

// NewOutbound returns a delivery channel for one client.
func NewOutbound() chan api.Message {
	return make(chan api.Message, outboundBuffer)
}

// ClientMap routes outbound messages to connected clients. It is owned by the
// session loop and is never touched from another goroutine, so it needs no
// locking.
type ClientMap struct {
	txs map[ClientID]chan api.Message
}

// NewClientMap returns an empty client registry.
func NewClientMap() *ClientMap {
	return &ClientMap{txs: make(map[ClientID]chan api.Message)}
}

// Register adds or replaces the delivery channel for a client.
func (m *ClientMap) Register(id ClientID, tx chan api.Message) {
	m.txs[id] = tx
}

// Unregister drops a client's delivery channel and closes it, releasing the
// transport's writer. Sends route through the map, so nothing can write to
// the channel after this.
func (m *ClientMap) Unregister(id ClientID) {
	if tx, ok := m.txs[id]; ok {
		close(tx)
		delete(m.txs, id)
	}
}

// Send projects and delivers one message. An unknown id is logged and
// dropped: it indicates a bookkeeping gap on our side, never something a
// client can trigger. The send never blocks; a full buffer also drops the
// message, and the client's eventual death surfaces later as a disconnect
// event.
func (m *ClientMap) Send(id ClientID, history api.History, state api.CurrentState) {
	tx, ok := m.txs[id]
	if !ok {
		log.WithField("client", id).Error("attempted to send to unregistered client")
		return
	}

	select {
	case tx <- api.Message{State: state, History: history.Clone()}:
	default:
		log.WithFields(log.Fields{"client": id, "state": state}).
			Warn("outbound buffer full; dropping message")
	}
}
