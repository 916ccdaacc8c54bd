package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/mhd-interiors/crm-console/internal/core/domain"
	"github.com/mhd-interiors/crm-console/internal/core/ports"
)

// SentMarker records recently pushed notification ids so a replayed send is
// not broadcast twice. Backed by Redis in production.
type SentMarker interface {
	AlreadySent(ctx context.Context, id string) (bool, error)
	MarkSent(ctx context.Context, id string) error
}

type notificationService struct {
	repo ports.NotificationRepository
	hub  ports.Broadcaster
	mark SentMarker
	log  zerolog.Logger
}

func NewNotificationService(repo ports.NotificationRepository, hub ports.Broadcaster, mark SentMarker, log zerolog.Logger) ports.NotificationService {
	return &notificationService{repo: repo, hub: hub, mark: mark, log: log}
}

func (s *notificationService) My(ctx context.Context, userID string) ([]domain.Notification, error) {
	return s.repo.ListForUser(ctx, userID)
}

// Send persists the notification and pushes it onto the live channel.
// Persistence is authoritative; push failures degrade to poll-only delivery.
func (s *notificationService) Send(ctx context.Context, in ports.SendNotificationInput) (*domain.Notification, error) {
	n := &domain.Notification{
		UserID:      in.UserID,
		Title:       in.Title,
		Message:     in.Message,
		CreatedDate: time.Now().UTC(),
	}

	created, err := s.repo.Insert(ctx, n)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to store notification")
		return nil, err
	}

	if s.mark != nil {
		if dup, err := s.mark.AlreadySent(ctx, created.ID); err != nil {
			s.log.Warn().Err(err).Str("notification_id", created.ID).Msg("sent-marker check failed, pushing anyway")
		} else if dup {
			s.log.Debug().Str("notification_id", created.ID).Msg("duplicate push skipped")
			return created, nil
		}
		if err := s.mark.MarkSent(ctx, created.ID); err != nil {
			s.log.Warn().Err(err).Str("notification_id", created.ID).Msg("failed to set sent marker")
		}
	}

	if s.hub != nil {
		if created.UserID == "" {
			s.hub.Broadcast(*created)
		} else {
			s.hub.Send(created.UserID, *created)
		}
	}

	s.log.Info().Str("notification_id", created.ID).Str("user_id", created.UserID).Msg("notification sent")
	return created, nil
}
