// Package push maintains the console's live notification connection. The
// bridge owns the websocket lifecycle: it connects only when a credential
// exists, reconnects with backoff after drops, and fans received events to a
// single handler.
package push

import (
	"context"
	"encoding/json"
	"net/url"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/mhd-interiors/crm-console/internal/client/session"
	"github.com/mhd-interiors/crm-console/internal/core/domain"
)

// State is the bridge's connection state.
type State int32

const (
	StateDisconnected State = iota
	StateConnecting
	StateConnected
)

func (s State) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	default:
		return "disconnected"
	}
}

const (
	initialBackoff = time.Second
	maxBackoff     = 30 * time.Second
	dialTimeout    = 10 * time.Second
)

// envelope mirrors the server's push frame.
type envelope struct {
	Event string              `json:"event"`
	Data  domain.Notification `json:"data"`
}

// Handler receives each notification event. It runs on the bridge's read
// goroutine; slow handlers delay subsequent events.
type Handler func(domain.Notification)

// Bridge connects the stored credential to the live channel. Start without a
// credential is a silent no-op: the console stays usable on polling alone.
type Bridge struct {
	hubURL   string
	accessor *session.Accessor
	handler  Handler
	log      zerolog.Logger

	mu      sync.Mutex
	state   State
	cancel  context.CancelFunc
	done    chan struct{}
	started bool
}

func NewBridge(hubURL string, accessor *session.Accessor, handler Handler, log zerolog.Logger) *Bridge {
	return &Bridge{
		hubURL:   hubURL,
		accessor: accessor,
		handler:  handler,
		log:      log,
	}
}

// State reports the current connection state.
func (b *Bridge) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Start launches the connection loop. Without a stored credential it does
// nothing and returns nil; push is an enhancement, not a requirement.
// Starting an already-started bridge is a no-op.
func (b *Bridge) Start(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.started {
		return nil
	}

	if b.accessor.Current() == nil {
		b.log.Debug().Msg("no credential, push bridge idle")
		return nil
	}

	runCtx, cancel := context.WithCancel(ctx)
	b.cancel = cancel
	b.done = make(chan struct{})
	b.started = true
	b.state = StateConnecting

	go b.run(runCtx)
	return nil
}

// Close tears the connection down. Safe to call multiple times and on a
// bridge that never started.
func (b *Bridge) Close() {
	b.mu.Lock()
	if !b.started {
		b.mu.Unlock()
		return
	}
	b.started = false
	cancel, done := b.cancel, b.done
	b.mu.Unlock()

	cancel()
	<-done
}

func (b *Bridge) run(ctx context.Context) {
	defer close(b.done)
	defer b.setState(StateDisconnected)

	backoff := initialBackoff
	for {
		if ctx.Err() != nil {
			return
		}

		b.setState(StateConnecting)
		conn, err := b.dial(ctx)
		if err != nil {
			b.log.Debug().Err(err).Dur("retry_in", backoff).Msg("push dial failed")
			select {
			case <-ctx.Done():
				return
			case <-time.After(backoff):
			}
			backoff = nextBackoff(backoff)
			continue
		}

		b.setState(StateConnected)
		b.log.Info().Msg("push channel connected")
		backoff = initialBackoff

		b.readLoop(ctx, conn)
		_ = conn.Close()
		b.setState(StateConnecting)
	}
}

func (b *Bridge) dial(ctx context.Context) (*websocket.Conn, error) {
	tok := b.accessor.Token()
	u, err := url.Parse(b.hubURL)
	if err != nil {
		return nil, err
	}
	q := u.Query()
	q.Set("access_token", tok)
	u.RawQuery = q.Encode()

	dialCtx, cancel := context.WithTimeout(ctx, dialTimeout)
	defer cancel()

	conn, _, err := websocket.DefaultDialer.DialContext(dialCtx, u.String(), nil)
	return conn, err
}

func (b *Bridge) readLoop(ctx context.Context, conn *websocket.Conn) {
	// Unblock ReadMessage when the context is cancelled.
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.Close()
		case <-stop:
		}
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() == nil {
				b.log.Debug().Err(err).Msg("push channel dropped")
			}
			return
		}

		var env envelope
		if err := json.Unmarshal(data, &env); err != nil {
			b.log.Warn().Err(err).Msg("undecodable push frame skipped")
			continue
		}
		if env.Event != domain.EventNewNotification {
			continue
		}
		b.handler(env.Data)
	}
}

func (b *Bridge) setState(s State) {
	b.mu.Lock()
	b.state = s
	b.mu.Unlock()
}

func nextBackoff(d time.Duration) time.Duration {
	d *= 2
	if d > maxBackoff {
		return maxBackoff
	}
	return d
}
