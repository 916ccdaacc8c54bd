package push

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/mhd-interiors/crm-console/internal/client/session"
	"github.com/mhd-interiors/crm-console/internal/core/domain"
)

func loggedInAccessor(t *testing.T) *session.Accessor {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "u1"})
	signed, err := tok.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("signing: %v", err)
	}
	return session.NewAccessor(session.NewMemStore(signed))
}

// hubServer is a minimal websocket endpoint that pushes the given envelopes
// to every connection, then holds it open.
func hubServer(t *testing.T, frames []envelope) *httptest.Server {
	t.Helper()
	upgrader := websocket.Upgrader{}
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("access_token") == "" {
			http.Error(w, "missing token", http.StatusUnauthorized)
			return
		}
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		for _, f := range frames {
			if err := conn.WriteJSON(f); err != nil {
				return
			}
		}
		// Hold the connection until the client goes away.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
}

func wsURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func TestBridgeDeliversNotifications(t *testing.T) {
	srv := hubServer(t, []envelope{
		{Event: domain.EventNewNotification, Data: domain.Notification{ID: "n1", Title: "hello"}},
		{Event: "SomethingElse", Data: domain.Notification{ID: "ignored"}},
		{Event: domain.EventNewNotification, Data: domain.Notification{ID: "n2"}},
	})
	defer srv.Close()

	got := make(chan domain.Notification, 4)
	b := NewBridge(wsURL(srv), loggedInAccessor(t), func(n domain.Notification) {
		got <- n
	}, zerolog.Nop())

	if err := b.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer b.Close()

	want := []string{"n1", "n2"}
	for _, id := range want {
		select {
		case n := <-got:
			if n.ID != id {
				t.Fatalf("received %q, want %q", n.ID, id)
			}
		case <-time.After(5 * time.Second):
			t.Fatalf("timed out waiting for %q", id)
		}
	}

	// The non-notification event must not have been handed over.
	select {
	case n := <-got:
		t.Fatalf("unexpected extra delivery: %+v", n)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestBridgeWithoutCredentialIsIdle(t *testing.T) {
	b := NewBridge("ws://127.0.0.1:1/ws", session.NewAccessor(session.NewMemStore("")), func(domain.Notification) {
		t.Error("handler fired without a credential")
	}, zerolog.Nop())

	if err := b.Start(context.Background()); err != nil {
		t.Fatalf("Start without credential: %v", err)
	}
	if b.State() != StateDisconnected {
		t.Fatalf("state = %v, want disconnected", b.State())
	}
	// Close on a never-started loop must not hang or panic.
	b.Close()
}

func TestBridgeCloseIsIdempotent(t *testing.T) {
	srv := hubServer(t, nil)
	defer srv.Close()

	b := NewBridge(wsURL(srv), loggedInAccessor(t), func(domain.Notification) {}, zerolog.Nop())
	if err := b.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}

	b.Close()
	b.Close()
	if b.State() != StateDisconnected {
		t.Fatalf("state after Close = %v", b.State())
	}
}

func TestBridgeReportsConnectedState(t *testing.T) {
	srv := hubServer(t, nil)
	defer srv.Close()

	b := NewBridge(wsURL(srv), loggedInAccessor(t), func(domain.Notification) {}, zerolog.Nop())
	if err := b.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer b.Close()

	deadline := time.Now().Add(5 * time.Second)
	for b.State() != StateConnected {
		if time.Now().After(deadline) {
			t.Fatalf("never reached connected state, stuck at %v", b.State())
		}
		time.Sleep(10 * time.Millisecond)
	}
}
