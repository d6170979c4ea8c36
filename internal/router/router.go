// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and maps paths to their handlers.
package router

import (
	"github.com/basshead301/attendance-intermediary-service/internal/handler"
	"github.com/basshead301/attendance-intermediary-service/internal/middleware"
	"github.com/basshead301/attendance-intermediary-service/internal/server"
	"github.com/labstack/echo/v4"
)

// NewRouter builds the Echo instance serving the relay.
//
// Middleware order matters: the request ID and the New Relic transaction
// must exist before the context enhancer builds the request logger, and
// the request logger must wrap recovery so panics are logged with a status.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	r := echo.New()
	r.HideBanner = true
	r.HidePort = true

	r.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	r.Use(
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
		middlewares.Global.Secure(),
		middlewares.Global.CORS(),
	)

	registerSystemRoutes(r, h)
	registerRelayRoutes(r, h)

	return r
}
