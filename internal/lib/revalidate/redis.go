package revalidate

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Redis publishes stale view paths on a pub/sub channel.
type Redis struct {
	client  *redis.Client
	channel string
}

func NewRedis(client *redis.Client, channel string) *Redis {
	return &Redis{client: client, channel: channel}
}

// Invalidate publishes path; having no subscribers is not an error.
func (r *Redis) Invalidate(ctx context.Context, path string) error {
	if err := r.client.Publish(ctx, r.channel, path).Err(); err != nil {
		return fmt.Errorf("publish %s on %s: %w", path, r.channel, err)
	}
	return nil
}
