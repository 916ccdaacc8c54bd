package ports

import (
	"context"

	"github.com/mhd-interiors/crm-console/internal/core/domain"
)

// SendNotificationInput carries a notification to create and push.
type SendNotificationInput struct {
	UserID  string // empty = broadcast to every connected user
	Title   string
	Message string
}

// NotificationService creates, lists, and pushes notifications.
type NotificationService interface {
	My(ctx context.Context, userID string) ([]domain.Notification, error)
	Send(ctx context.Context, in SendNotificationInput) (*domain.Notification, error)
}

// NotificationRepository defines persistence operations for notifications.
type NotificationRepository interface {
	Insert(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
	ListForUser(ctx context.Context, userID string) ([]domain.Notification, error)
}

// Broadcaster pushes a notification onto the live channel. Implementations
// must not block the caller on slow consumers.
type Broadcaster interface {
	Broadcast(n domain.Notification)
	Send(userID string, n domain.Notification)
}
