package push

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/mhd-interiors/crm-console/internal/core/domain"
)

// dialPair upgrades one client connection through a throwaway server and
// registers its server side on the hub.
func dialPair(t *testing.T, hub *Hub, userID string) (*websocket.Conn, func()) {
	t.Helper()

	upgrader := websocket.Upgrader{}
	registered := make(chan func(), 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		registered <- hub.Subscribe(userID, conn)
	}))
	t.Cleanup(srv.Close)

	client, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })

	detach := <-registered
	return client, detach
}

func readEnvelope(t *testing.T, conn *websocket.Conn) Envelope {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return env
}

func expectSilence(t *testing.T, conn *websocket.Conn) {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(150 * time.Millisecond))
	if _, data, err := conn.ReadMessage(); err == nil {
		t.Fatalf("unexpected frame: %s", data)
	}
}

func TestBroadcastReachesAllSubscribers(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	a, detachA := dialPair(t, hub, "user-a")
	defer detachA()
	b, detachB := dialPair(t, hub, "user-b")
	defer detachB()

	hub.Broadcast(domain.Notification{ID: "n1", Title: "hi"})

	for _, conn := range []*websocket.Conn{a, b} {
		env := readEnvelope(t, conn)
		if env.Event != domain.EventNewNotification || env.Data.ID != "n1" {
			t.Fatalf("envelope = %+v", env)
		}
	}
}

func TestSendTargetsSingleUser(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	a, detachA := dialPair(t, hub, "user-a")
	defer detachA()
	b, detachB := dialPair(t, hub, "user-b")
	defer detachB()

	hub.Send("user-b", domain.Notification{ID: "direct"})

	if env := readEnvelope(t, b); env.Data.ID != "direct" {
		t.Fatalf("recipient got %+v", env)
	}
	expectSilence(t, a)
}

func TestDetachStopsDelivery(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	_, detach := dialPair(t, hub, "user-a")

	if hub.Connections() != 1 {
		t.Fatalf("Connections = %d", hub.Connections())
	}

	detach()
	detach() // second call is a no-op

	if hub.Connections() != 0 {
		t.Fatalf("Connections after detach = %d", hub.Connections())
	}

	// Delivering to no subscribers must not panic.
	hub.Broadcast(domain.Notification{ID: "into the void"})
}
