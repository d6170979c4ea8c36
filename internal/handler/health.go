package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/basshead301/attendance-intermediary-service/internal/config"
	"github.com/basshead301/attendance-intermediary-service/internal/lib/downstream"
	"github.com/basshead301/attendance-intermediary-service/internal/middleware"
	"github.com/basshead301/attendance-intermediary-service/internal/server"
	"github.com/labstack/echo/v4"
)

// HealthHandler exposes /status for uptime monitors and load balancers.
type HealthHandler struct {
	Handler
}

// NewHealthHandler constructs a HealthHandler with access to shared app dependencies.
func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// CheckHealth returns service status and dependency checks.
//
// It returns:
//   - 200 OK if all enabled checks pass
//   - 503 Service Unavailable if any check fails
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	obs := h.server.Config.Observability
	checks := make(map[string]interface{})
	response := map[string]interface{}{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"checks":      checks,
	}

	isHealthy := true

	if obs.HasCheck(config.CheckDownstream) {
		if pinger, ok := h.server.Downstream.(downstream.Pinger); ok {
			ctx, cancel := context.WithTimeout(c.Request().Context(), obs.HealthChecks.Timeout)
			defer cancel()

			checkStart := time.Now()
			if err := pinger.Ping(ctx); err != nil {
				isHealthy = false
				checks[config.CheckDownstream] = map[string]interface{}{
					"status":        "unhealthy",
					"response_time": time.Since(checkStart).String(),
					"error":         err.Error(),
				}

				logger.Error().
					Err(err).
					Dur("response_time", time.Since(checkStart)).
					Msg("downstream health check failed")

				if app := h.server.LoggerService.GetApplication(); app != nil {
					app.RecordCustomEvent("HealthCheckError", map[string]interface{}{
						"check_type":       config.CheckDownstream,
						"operation":        "health_check",
						"error_type":       "downstream_unreachable",
						"response_time_ms": time.Since(checkStart).Milliseconds(),
						"error_message":    err.Error(),
					})
				}
			} else {
				checks[config.CheckDownstream] = map[string]interface{}{
					"status":        "healthy",
					"response_time": time.Since(checkStart).String(),
				}

				logger.Debug().
					Dur("response_time", time.Since(checkStart)).
					Msg("downstream health check passed")
			}
		}
	}

	if !isHealthy {
		response["status"] = "unhealthy"

		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("health check failed")

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	return c.JSON(http.StatusOK, response)
}
