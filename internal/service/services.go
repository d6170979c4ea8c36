package service

import (
	"github.com/basshead301/attendance-intermediary-service/internal/server"
)

// Services is a container for all service instances.
type Services struct {
	Relay *RelayService
}

// NewServices builds the services on top of the server's shared dependencies.
func NewServices(s *server.Server) *Services {
	return &Services{
		Relay: NewRelayService(s.Downstream),
	}
}
