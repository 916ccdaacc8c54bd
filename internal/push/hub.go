// Package push fans notifications out to live websocket subscribers. The
// wire protocol is a named-event envelope; the only event currently emitted
// is domain.EventNewNotification.
package push

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/mhd-interiors/crm-console/internal/core/domain"
)

const (
	sendBuffer   = 16
	writeTimeout = 10 * time.Second
)

// Envelope is the frame sent on the push channel.
type Envelope struct {
	Event string              `json:"event"`
	Data  domain.Notification `json:"data"`
}

type subscriber struct {
	userID string
	send   chan Envelope
	conn   *websocket.Conn
}

// Hub tracks live subscribers per user and delivers notification events
// without blocking senders: a subscriber whose buffer is full is skipped.
type Hub struct {
	mu   sync.RWMutex
	subs map[*subscriber]struct{}
	log  zerolog.Logger
}

func NewHub(log zerolog.Logger) *Hub {
	return &Hub{subs: make(map[*subscriber]struct{}), log: log}
}

// Subscribe registers the connection for the given user and starts its write
// pump. It returns a detach func; calling it more than once is safe.
func (h *Hub) Subscribe(userID string, conn *websocket.Conn) func() {
	sub := &subscriber{
		userID: userID,
		send:   make(chan Envelope, sendBuffer),
		conn:   conn,
	}

	h.mu.Lock()
	h.subs[sub] = struct{}{}
	h.mu.Unlock()

	go h.writePump(sub)

	var once sync.Once
	return func() {
		once.Do(func() {
			h.mu.Lock()
			if _, ok := h.subs[sub]; ok {
				delete(h.subs, sub)
				close(sub.send)
			}
			h.mu.Unlock()
		})
	}
}

// Broadcast delivers the notification to every live subscriber.
func (h *Hub) Broadcast(n domain.Notification) {
	h.deliver("", n)
}

// Send delivers the notification to the given user's live connections only.
func (h *Hub) Send(userID string, n domain.Notification) {
	h.deliver(userID, n)
}

func (h *Hub) deliver(userID string, n domain.Notification) {
	env := Envelope{Event: domain.EventNewNotification, Data: n}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for sub := range h.subs {
		if userID != "" && sub.userID != userID {
			continue
		}
		select {
		case sub.send <- env:
		default:
			// Slow consumer: drop rather than block the sender. The
			// subscriber reconciles via the polled notification list.
			h.log.Warn().Str("user_id", sub.userID).Msg("push buffer full, frame dropped")
		}
	}
}

// Connections reports the number of live subscribers.
func (h *Hub) Connections() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

func (h *Hub) writePump(sub *subscriber) {
	for env := range sub.send {
		_ = sub.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := sub.conn.WriteJSON(env); err != nil {
			h.log.Debug().Err(err).Str("user_id", sub.userID).Msg("push write failed")
			break
		}
	}
	_ = sub.conn.Close()
}
