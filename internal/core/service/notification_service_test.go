package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/mhd-interiors/crm-console/internal/core/domain"
	"github.com/mhd-interiors/crm-console/internal/core/ports"
)

type stubNotificationRepo struct {
	inserted  []domain.Notification
	insertErr error
}

func (r *stubNotificationRepo) Insert(_ context.Context, n *domain.Notification) (*domain.Notification, error) {
	if r.insertErr != nil {
		return nil, r.insertErr
	}
	saved := *n
	saved.ID = "gen-1"
	r.inserted = append(r.inserted, saved)
	return &saved, nil
}

func (r *stubNotificationRepo) ListForUser(context.Context, string) ([]domain.Notification, error) {
	return r.inserted, nil
}

type stubBroadcaster struct {
	broadcasts []domain.Notification
	directs    map[string][]domain.Notification
}

func (b *stubBroadcaster) Broadcast(n domain.Notification) {
	b.broadcasts = append(b.broadcasts, n)
}

func (b *stubBroadcaster) Send(userID string, n domain.Notification) {
	if b.directs == nil {
		b.directs = make(map[string][]domain.Notification)
	}
	b.directs[userID] = append(b.directs[userID], n)
}

type stubMarker struct {
	sent    map[string]bool
	markErr error
}

func (m *stubMarker) AlreadySent(_ context.Context, id string) (bool, error) {
	return m.sent[id], nil
}

func (m *stubMarker) MarkSent(_ context.Context, id string) error {
	if m.markErr != nil {
		return m.markErr
	}
	if m.sent == nil {
		m.sent = make(map[string]bool)
	}
	m.sent[id] = true
	return nil
}

func TestSendBroadcastsWhenNoRecipient(t *testing.T) {
	repo := &stubNotificationRepo{}
	hub := &stubBroadcaster{}
	svc := NewNotificationService(repo, hub, &stubMarker{}, zerolog.Nop())

	created, err := svc.Send(context.Background(), ports.SendNotificationInput{Title: "t", Message: "m"})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if created.ID == "" {
		t.Fatal("notification not persisted before push")
	}
	if len(hub.broadcasts) != 1 || len(hub.directs) != 0 {
		t.Fatalf("broadcasts=%d directs=%d", len(hub.broadcasts), len(hub.directs))
	}
}

func TestSendTargetsRecipient(t *testing.T) {
	hub := &stubBroadcaster{}
	svc := NewNotificationService(&stubNotificationRepo{}, hub, &stubMarker{}, zerolog.Nop())

	_, err := svc.Send(context.Background(), ports.SendNotificationInput{UserID: "u9", Title: "t", Message: "m"})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if len(hub.broadcasts) != 0 || len(hub.directs["u9"]) != 1 {
		t.Fatalf("direct send misrouted: %+v", hub)
	}
}

func TestSendFailsWhenPersistenceFails(t *testing.T) {
	repo := &stubNotificationRepo{insertErr: errors.New("db down")}
	hub := &stubBroadcaster{}
	svc := NewNotificationService(repo, hub, &stubMarker{}, zerolog.Nop())

	if _, err := svc.Send(context.Background(), ports.SendNotificationInput{Title: "t"}); err == nil {
		t.Fatal("expected error when persistence fails")
	}
	if len(hub.broadcasts) != 0 {
		t.Fatal("pushed a notification that was never stored")
	}
}

func TestSendSkipsPushForAlreadySentID(t *testing.T) {
	hub := &stubBroadcaster{}
	marker := &stubMarker{sent: map[string]bool{"gen-1": true}}
	svc := NewNotificationService(&stubNotificationRepo{}, hub, marker, zerolog.Nop())

	created, err := svc.Send(context.Background(), ports.SendNotificationInput{Title: "t"})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if created == nil {
		t.Fatal("persisted notification not returned")
	}
	if len(hub.broadcasts) != 0 {
		t.Fatal("duplicate id was pushed again")
	}
}

func TestSendSurvivesMarkerFailure(t *testing.T) {
	hub := &stubBroadcaster{}
	svc := NewNotificationService(&stubNotificationRepo{}, hub, &stubMarker{markErr: errors.New("redis down")}, zerolog.Nop())

	if _, err := svc.Send(context.Background(), ports.SendNotificationInput{Title: "t"}); err != nil {
		t.Fatalf("marker failure must not fail the send: %v", err)
	}
	if len(hub.broadcasts) != 1 {
		t.Fatal("push skipped because of marker failure")
	}
}
