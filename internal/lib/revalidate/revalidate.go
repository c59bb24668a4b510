// Package revalidate signals downstream view caches that a rendered page
// is stale and must be recomputed on its next access.
//
// The service itself holds no cache; an Invalidator only tells the
// frontend (webhook driver) or any subscriber (redis driver) which view
// path changed.
package revalidate

import (
	"context"
	"fmt"

	"github.com/deppfellow/invoice-dashboard/internal/config"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// InvoicesPath is the listing view refreshed after every invoice write.
const InvoicesPath = "/dashboard/invoices"

// Invalidator marks a named view path as stale.
type Invalidator interface {
	Invalidate(ctx context.Context, path string) error
}

// New builds the Invalidator selected by cfg.Driver. redisClient is only
// required by the redis driver.
func New(cfg *config.RevalidateConfig, redisClient *redis.Client, logger *zerolog.Logger) (Invalidator, error) {
	switch cfg.Driver {
	case "", config.RevalidateDriverNoop:
		return NewNoop(logger), nil
	case config.RevalidateDriverWebhook:
		return NewWebhook(cfg.WebhookURL, cfg.Secret, cfg.Timeout), nil
	case config.RevalidateDriverRedis:
		if redisClient == nil {
			return nil, fmt.Errorf("redis driver selected but no redis client is configured")
		}
		return NewRedis(redisClient, cfg.Channel), nil
	default:
		return nil, fmt.Errorf("unknown revalidate driver %q", cfg.Driver)
	}
}

// Noop only logs the signal at debug level.
type Noop struct {
	logger *zerolog.Logger
}

func NewNoop(logger *zerolog.Logger) *Noop {
	return &Noop{logger: logger}
}

func (n *Noop) Invalidate(_ context.Context, path string) error {
	if n.logger != nil {
		n.logger.Debug().Str("path", path).Msg("view invalidation skipped (noop driver)")
	}
	return nil
}
