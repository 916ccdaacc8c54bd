package session

import (
	"path/filepath"
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

func testToken(t *testing.T, userID string) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": userID})
	signed, err := tok.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("signing: %v", err)
	}
	return signed
}

// countingStore wraps MemStore to observe how often the credential is read.
type countingStore struct {
	*MemStore
	loads int
}

func (s *countingStore) Load() (string, error) {
	s.loads++
	return s.MemStore.Load()
}

func TestCurrentMemoizesDerivation(t *testing.T) {
	store := &countingStore{MemStore: NewMemStore(testToken(t, "u1"))}
	a := NewAccessor(store)

	for i := 0; i < 5; i++ {
		sess := a.Current()
		if sess == nil || sess.UserID != "u1" {
			t.Fatalf("call %d: session = %+v", i, sess)
		}
	}
	if store.loads != 1 {
		t.Fatalf("store read %d times, want 1", store.loads)
	}
}

func TestNilResultIsCachedToo(t *testing.T) {
	store := &countingStore{MemStore: NewMemStore("not a token")}
	a := NewAccessor(store)

	if a.Current() != nil {
		t.Fatal("expected nil session for invalid credential")
	}
	a.Current()
	if store.loads != 1 {
		t.Fatalf("invalid credential re-derived: %d loads", store.loads)
	}
}

func TestReloadPicksUpStoreChanges(t *testing.T) {
	store := NewMemStore(testToken(t, "before"))
	a := NewAccessor(store)

	if a.Current().UserID != "before" {
		t.Fatal("initial derivation failed")
	}

	// A store mutation alone is invisible until an explicit refresh point.
	_ = store.Save(testToken(t, "after"))
	if a.Current().UserID != "before" {
		t.Fatal("memoized session changed without Reload")
	}

	if sess := a.Reload(); sess.UserID != "after" {
		t.Fatalf("Reload derived %q", sess.UserID)
	}
}

func TestSaveDerivesImmediately(t *testing.T) {
	a := NewAccessor(NewMemStore(""))
	if a.Current() != nil {
		t.Fatal("expected logged-out start")
	}

	if err := a.Save(testToken(t, "fresh")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if sess := a.Current(); sess == nil || sess.UserID != "fresh" {
		t.Fatalf("session after Save = %+v", sess)
	}
}

func TestClearDropsSessionAndCredential(t *testing.T) {
	store := NewMemStore(testToken(t, "u1"))
	a := NewAccessor(store)
	a.Current()

	if err := a.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if a.Current() != nil {
		t.Fatal("session survived Clear")
	}
	if raw, _ := store.Load(); raw != "" {
		t.Fatal("credential survived Clear")
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "token")
	s := NewFileStore(path)

	// Missing file means logged out, not an error.
	raw, err := s.Load()
	if err != nil || raw != "" {
		t.Fatalf("Load on missing file: %q, %v", raw, err)
	}

	if err := s.Save("tok-value\n"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	raw, err = s.Load()
	if err != nil || raw != "tok-value" {
		t.Fatalf("Load = %q, %v (trailing whitespace should be trimmed)", raw, err)
	}

	if err := s.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("second Clear should be a no-op: %v", err)
	}
}
