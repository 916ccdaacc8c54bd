// Package notify fans an incoming notification out to its display side
// effects. The effects are independent: a failing or panicking effect never
// suppresses the others.
package notify

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/mhd-interiors/crm-console/internal/core/domain"
)

// Effect is one reaction to a notification: refresh the list, play a sound,
// show a toast. Effects must tolerate being called concurrently with each
// other for different notifications.
type Effect func(domain.Notification)

// Dispatcher applies every registered effect to each new notification,
// de-duplicating by notification ID so redelivered frames fire once.
type Dispatcher struct {
	log     zerolog.Logger
	effects []namedEffect

	mu   sync.Mutex
	seen map[string]struct{}
}

type namedEffect struct {
	name string
	fn   Effect
}

func NewDispatcher(log zerolog.Logger) *Dispatcher {
	return &Dispatcher{log: log, seen: make(map[string]struct{})}
}

// Register adds an effect under a name used only for logging. Registration
// is not safe concurrently with Dispatch; register everything up front.
func (d *Dispatcher) Register(name string, fn Effect) {
	d.effects = append(d.effects, namedEffect{name: name, fn: fn})
}

// Dispatch runs every effect for the notification. A notification with an ID
// already dispatched is dropped. Notifications without an ID always fire:
// dropping them would lose data to save a duplicate.
func (d *Dispatcher) Dispatch(n domain.Notification) {
	if n.ID != "" {
		d.mu.Lock()
		if _, dup := d.seen[n.ID]; dup {
			d.mu.Unlock()
			d.log.Debug().Str("notification_id", n.ID).Msg("duplicate notification dropped")
			return
		}
		d.seen[n.ID] = struct{}{}
		d.mu.Unlock()
	}

	for _, e := range d.effects {
		d.apply(e, n)
	}
}

func (d *Dispatcher) apply(e namedEffect, n domain.Notification) {
	defer func() {
		if r := recover(); r != nil {
			d.log.Error().Interface("panic", r).Str("effect", e.name).Msg("notification effect panicked")
		}
	}()
	e.fn(n)
}
