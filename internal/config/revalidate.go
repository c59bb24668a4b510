package config

import (
	"fmt"
	"time"
)

// Revalidation drivers.
const (
	RevalidateDriverNoop    = "noop"
	RevalidateDriverWebhook = "webhook"
	RevalidateDriverRedis   = "redis"
)

// RevalidateConfig selects how stale-view signals leave the service.
//
//   - webhook: POST {"path": "..."} to WebhookURL with the shared secret.
//   - redis:   PUBLISH the path on Channel (requires redis.address).
//   - noop:    signals are only logged.
type RevalidateConfig struct {
	Driver     string        `koanf:"driver"`
	WebhookURL string        `koanf:"webhook_url"`
	Secret     string        `koanf:"secret"`
	Timeout    time.Duration `koanf:"timeout"`
	Channel    string        `koanf:"channel"`
}

// DefaultRevalidateConfig returns a noop driver with sane webhook/redis defaults.
func DefaultRevalidateConfig() *RevalidateConfig {
	return &RevalidateConfig{
		Driver:  RevalidateDriverNoop,
		Timeout: 5 * time.Second,
		Channel: "dashboard:revalidate",
	}
}

// fillDefaults completes a partially configured block.
func (c *RevalidateConfig) fillDefaults() {
	defaults := DefaultRevalidateConfig()
	if c.Driver == "" {
		c.Driver = defaults.Driver
	}
	if c.Timeout == 0 {
		c.Timeout = defaults.Timeout
	}
	if c.Channel == "" {
		c.Channel = defaults.Channel
	}
}

// Validate checks that the selected driver has what it needs.
func (c *RevalidateConfig) Validate(redis RedisConfig) error {
	switch c.Driver {
	case "", RevalidateDriverNoop:
		return nil
	case RevalidateDriverWebhook:
		if c.WebhookURL == "" {
			return fmt.Errorf("revalidate webhook_url is required for the webhook driver")
		}
	case RevalidateDriverRedis:
		if redis.Address == "" {
			return fmt.Errorf("redis address is required for the redis driver")
		}
		if c.Channel == "" {
			return fmt.Errorf("revalidate channel is required for the redis driver")
		}
	default:
		return fmt.Errorf("invalid revalidate driver: %s (must be one of: noop, webhook, redis)", c.Driver)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("revalidate timeout must be non-negative")
	}
	return nil
}

// DisplayConfig controls how amounts are rendered for the dashboard.
type DisplayConfig struct {
	Locale         string `koanf:"locale"`
	CurrencySymbol string `koanf:"currency_symbol"`
}

// DefaultDisplayConfig renders US dollars for en-US.
func DefaultDisplayConfig() *DisplayConfig {
	return &DisplayConfig{
		Locale:         "en-US",
		CurrencySymbol: "$",
	}
}

// UsesRedis reports whether view invalidation depends on redis.
func (c *RevalidateConfig) UsesRedis() bool {
	return c.Driver == RevalidateDriverRedis
}
