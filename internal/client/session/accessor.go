package session

import (
	"sync"

	"github.com/mhd-interiors/crm-console/internal/core/domain"
	"github.com/mhd-interiors/crm-console/internal/core/token"
)

// Accessor memoizes the session derived from the stored credential. The
// derivation runs at most once per refresh point: Current returns the cached
// value until Reload or Clear invalidates it.
type Accessor struct {
	store CredentialStore

	mu      sync.Mutex
	loaded  bool
	session *domain.Session
	raw     string
}

func NewAccessor(store CredentialStore) *Accessor {
	return &Accessor{store: store}
}

// Current returns the session for the stored credential, or nil when no
// valid credential exists. A nil session is cached like any other result.
func (a *Accessor) Current() *domain.Session {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.loaded {
		a.reloadLocked()
	}
	return a.session
}

// Token returns the raw stored credential, loading it if needed. Empty when
// logged out.
func (a *Accessor) Token() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.loaded {
		a.reloadLocked()
	}
	return a.raw
}

// Reload drops the memoized session and re-derives it from the store. Called
// after login and any other credential change.
func (a *Accessor) Reload() *domain.Session {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.reloadLocked()
	return a.session
}

// Save persists a fresh credential and re-derives the session from it.
func (a *Accessor) Save(raw string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.store.Save(raw); err != nil {
		return err
	}
	a.loaded = true
	a.raw = raw
	a.session = token.Decode(raw)
	return nil
}

// Clear removes the stored credential and the memoized session.
func (a *Accessor) Clear() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.loaded = true
	a.session = nil
	a.raw = ""
	return a.store.Clear()
}

func (a *Accessor) reloadLocked() {
	a.loaded = true
	raw, err := a.store.Load()
	if err != nil {
		a.session, a.raw = nil, ""
		return
	}
	a.raw = raw
	a.session = token.Decode(raw)
}
