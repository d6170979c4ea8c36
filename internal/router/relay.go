package router

import (
	"net/http"

	"github.com/basshead301/attendance-intermediary-service/internal/handler"
	"github.com/labstack/echo/v4"
)

func registerRelayRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/", h.Root.Index)

	// The link in attendance alert emails points here.
	r.GET("/respond", handler.HandleHTML(
		h.Relay.Handler,
		h.Relay.Respond,
		http.StatusOK,
		handler.NewRespondRequest,
	))
}
