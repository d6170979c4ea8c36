package handler

import (
	"net/http"

	"github.com/basshead301/attendance-intermediary-service/internal/server"
	"github.com/labstack/echo/v4"
)

// RootMessage is the body of GET /.
const RootMessage = "Attendance Intermediary Service is running. Use the /respond endpoint."

type RootHandler struct {
	Handler
}

func NewRootHandler(s *server.Server) *RootHandler {
	return &RootHandler{
		Handler: NewHandler(s),
	}
}

// Index ignores the query string and never touches the downstream.
func (h *RootHandler) Index(c echo.Context) error {
	return c.String(http.StatusOK, RootMessage)
}
