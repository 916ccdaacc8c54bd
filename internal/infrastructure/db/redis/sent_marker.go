package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const sentTTL = time.Hour

// SentMarker records pushed notification ids so a replayed send is not
// broadcast twice. Key format: notif:sent:<id>
type SentMarker struct {
	client *redis.Client
}

func NewSentMarker(client *redis.Client) *SentMarker {
	return &SentMarker{client: client}
}

// AlreadySent reports whether this notification id was pushed recently.
func (m *SentMarker) AlreadySent(ctx context.Context, id string) (bool, error) {
	n, err := m.client.Exists(ctx, m.key(id)).Result()
	if err != nil {
		return false, fmt.Errorf("sent-marker check: %w", err)
	}
	return n > 0, nil
}

// MarkSent records the push (expires after sentTTL).
func (m *SentMarker) MarkSent(ctx context.Context, id string) error {
	return m.client.Set(ctx, m.key(id), "1", sentTTL).Err()
}

func (m *SentMarker) key(id string) string {
	return "notif:sent:" + id
}
