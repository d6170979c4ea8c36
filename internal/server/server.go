// Package server defines the core Server struct that composes the app's main dependencies.
//
// It owns the lifecycle of:
//   - configuration
//   - logger + optional New Relic service wrapper
//   - the downstream client responses are forwarded with
//   - http.Server
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/basshead301/attendance-intermediary-service/internal/config"
	"github.com/basshead301/attendance-intermediary-service/internal/lib/downstream"
	"github.com/rs/zerolog"

	loggerPkg "github.com/basshead301/attendance-intermediary-service/internal/logger"
)

// Server is the application container that holds shared resources.
//
// It is not the HTTP server itself; the *http.Server lives in httpServer
// and is configured by SetupHTTPServer.
type Server struct {
	Config *config.Config

	Logger *zerolog.Logger

	// LoggerService holds the New Relic application. GetApplication is nil
	// when New Relic is disabled.
	LoggerService *loggerPkg.LoggerService

	// Downstream is the outbound capability. Tests replace it with a fake
	// before building services.
	Downstream downstream.Forwarder

	httpServer *http.Server
}

// New constructs a Server and its downstream client. Nothing is dialed here.
func New(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerPkg.LoggerService) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}

	client := downstream.NewClient(cfg.Downstream, logger)

	logger.Info().
		Str("target_url", client.TargetURL()).
		Dur("timeout", cfg.Downstream.Timeout).
		Msg("downstream client configured")

	return &Server{
		Config:        cfg,
		Logger:        logger,
		LoggerService: loggerService,
		Downstream:    client,
	}, nil
}

// SetupHTTPServer configures the internal net/http server around handler.
func (s *Server) SetupHTTPServer(handler http.Handler) {
	s.httpServer = &http.Server{
		Addr:    ":" + s.Config.Server.Port,
		Handler: handler,

		// Config stores whole seconds.
		ReadTimeout:  time.Duration(s.Config.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.Config.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(s.Config.Server.IdleTimeout) * time.Second,
	}
}

// Start runs the HTTP server and blocks until it stops.
//
// http.ErrServerClosed after Shutdown is reported as a clean stop.
func (s *Server) Start() error {
	if s.httpServer == nil {
		return errors.New("HTTP server not initialized")
	}

	s.Logger.Info().
		Str("port", s.Config.Server.Port).
		Str("env", s.Config.Primary.Env).
		Msg("intermediary server listening")

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting connections, waits for in-flight requests until
// ctx expires, then flushes New Relic.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown HTTP server: %w", err)
		}
	}

	if deadline, ok := ctx.Deadline(); ok {
		s.LoggerService.Shutdown(time.Until(deadline))
	} else {
		s.LoggerService.Shutdown(5 * time.Second)
	}

	return nil
}
