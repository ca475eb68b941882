package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const sentTTL = 24 * time.Hour

// SendGuard suppresses duplicate booking confirmations, backed by Redis.
// Key format: notify:booking:<id>
type SendGuard struct {
	client *redis.Client
}

// NewSendGuard creates a SendGuard wrapping the given Redis client.
func NewSendGuard(client *redis.Client) *SendGuard {
	return &SendGuard{client: client}
}

// AlreadySent reports whether a confirmation for this booking went out.
func (g *SendGuard) AlreadySent(ctx context.Context, bookingID int64) (bool, error) {
	n, err := g.client.Exists(ctx, g.key(bookingID)).Result()
	if err != nil {
		return false, fmt.Errorf("send guard check: %w", err)
	}
	return n > 0, nil
}

// MarkSent records that this booking's confirmation was dispatched
// (expires after sentTTL).
func (g *SendGuard) MarkSent(ctx context.Context, bookingID int64) error {
	return g.client.Set(ctx, g.key(bookingID), "1", sentTTL).Err()
}

func (g *SendGuard) key(bookingID int64) string {
	return fmt.Sprintf("notify:booking:%d", bookingID)
}
