package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/deppfellow/invoice-dashboard/internal/middleware"
	"github.com/deppfellow/invoice-dashboard/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// HealthCheckTimeout bounds each dependency check.
const HealthCheckTimeout = 5 * time.Second

type pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler exposes /status so monitors and load balancers can verify
// the service is alive and its dependencies are reachable.
//
// The database is required. Redis is reported but only fails the check
// when it carries view invalidation.
type HealthHandler struct {
	Handler
	db            pinger
	redis         *redis.Client
	redisRequired bool
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	h := &HealthHandler{
		Handler: NewHandler(s),
		redis:   s.Redis,
	}
	if s.DB != nil {
		h.db = s.DB.Pool
	}
	if s.Config.Revalidate != nil {
		h.redisRequired = s.Config.Revalidate.UsesRedis()
	}
	return h
}

type dependencyCheck struct {
	Status       string `json:"status"`
	ResponseTime string `json:"response_time"`
	Error        string `json:"error,omitempty"`
}

type healthResponse struct {
	Status      string                     `json:"status"`
	Timestamp   time.Time                  `json:"timestamp"`
	Environment string                     `json:"environment"`
	Checks      map[string]dependencyCheck `json:"checks"`
}

// CheckHealth answers 200 when every required dependency responds and 503
// otherwise.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	response := healthResponse{
		Status:      "healthy",
		Timestamp:   time.Now().UTC(),
		Environment: h.server.Config.Primary.Env,
		Checks:      make(map[string]dependencyCheck),
	}
	isHealthy := true

	dbCheck := h.check(c.Request().Context(), "database", func(ctx context.Context) error {
		if h.db == nil {
			return fmt.Errorf("database not initialized")
		}
		return h.db.Ping(ctx)
	})
	response.Checks["database"] = dbCheck
	if dbCheck.Error != "" {
		isHealthy = false
	}

	if h.redis != nil {
		redisCheck := h.check(c.Request().Context(), "redis", func(ctx context.Context) error {
			return h.redis.Ping(ctx).Err()
		})
		response.Checks["redis"] = redisCheck
		if redisCheck.Error != "" && h.redisRequired {
			isHealthy = false
		}
	}

	if !isHealthy {
		response.Status = "unhealthy"

		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("health check failed")
		h.recordFailure("overall", "overall_unhealthy", time.Since(start), nil)

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	logger.Debug().
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	if err := c.JSON(http.StatusOK, response); err != nil {
		return fmt.Errorf("failed to write JSON response: %w", err)
	}
	return nil
}

func (h *HealthHandler) check(parent context.Context, name string, ping func(ctx context.Context) error) dependencyCheck {
	ctx, cancel := context.WithTimeout(parent, HealthCheckTimeout)
	defer cancel()

	start := time.Now()
	err := ping(ctx)
	elapsed := time.Since(start)

	if err != nil {
		h.server.Logger.Error().
			Err(err).
			Str("check", name).
			Dur("response_time", elapsed).
			Msg("health check failed")
		h.recordFailure(name, name+"_unhealthy", elapsed, err)

		return dependencyCheck{
			Status:       "unhealthy",
			ResponseTime: elapsed.String(),
			Error:        err.Error(),
		}
	}

	return dependencyCheck{
		Status:       "healthy",
		ResponseTime: elapsed.String(),
	}
}

// recordFailure sends a HealthCheckError custom event when New Relic is on.
func (h *HealthHandler) recordFailure(checkType, errorType string, elapsed time.Duration, err error) {
	if h.server.LoggerService == nil || h.server.LoggerService.GetApplication() == nil {
		return
	}

	event := map[string]interface{}{
		"check_type":       checkType,
		"operation":        "health_check",
		"error_type":       errorType,
		"response_time_ms": elapsed.Milliseconds(),
	}
	if err != nil {
		event["error_message"] = err.Error()
	}
	h.server.LoggerService.GetApplication().RecordCustomEvent("HealthCheckError", event)
}
