package handler

import (
	"github.com/basshead301/attendance-intermediary-service/internal/lib/page"
	"github.com/basshead301/attendance-intermediary-service/internal/model"
	"github.com/basshead301/attendance-intermediary-service/internal/server"
	"github.com/basshead301/attendance-intermediary-service/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RelayHandler serves the link embedded in attendance alert emails.
type RelayHandler struct {
	Handler
	relay *service.RelayService
}

// NewRelayHandler constructs a RelayHandler.
func NewRelayHandler(s *server.Server, relay *service.RelayService) *RelayHandler {
	return &RelayHandler{
		Handler: NewHandler(s),
		relay:   relay,
	}
}

// NewRespondRequest allocates the request bound by Respond.
func NewRespondRequest() *model.RespondRequest {
	return &model.RespondRequest{}
}

// Respond forwards a validated response downstream and renders the
// confirmation page. Missing parameters never reach this point: the
// pipeline answers 400 before any outbound call.
func (h *RelayHandler) Respond(c echo.Context, req *model.RespondRequest) (string, error) {
	if _, err := h.relay.Submit(c.Request().Context(), req.ForwardRequest()); err != nil {
		return "", err
	}

	html, err := page.Confirmation(req.DisplayName(), req.ResponseText)
	if err != nil {
		return "", errors.Wrap(err, "failed to render confirmation page")
	}

	return html, nil
}
