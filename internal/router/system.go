package router

import (
	"github.com/basshead301/attendance-intermediary-service/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers endpoints that are not part of the relay itself.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	// Health status endpoint (used by monitors and load balancers).
	r.GET("/status", h.Health.CheckHealth)
}
