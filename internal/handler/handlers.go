package handler

import (
	"github.com/basshead301/attendance-intermediary-service/internal/server"
	"github.com/basshead301/attendance-intermediary-service/internal/service"
)

// Handlers groups all HTTP handlers so router setup takes one value.
type Handlers struct {
	Root   *RootHandler   // Root acknowledges that the service is up.
	Relay  *RelayHandler  // Relay forwards emailed responses downstream.
	Health *HealthHandler // Health serves the /status endpoint.
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Root:   NewRootHandler(s),
		Relay:  NewRelayHandler(s, services.Relay),
		Health: NewHealthHandler(s),
	}
}
