// Command relay runs the attendance intermediary service.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/basshead301/attendance-intermediary-service/internal/config"
	"github.com/basshead301/attendance-intermediary-service/internal/handler"
	"github.com/basshead301/attendance-intermediary-service/internal/logger"
	"github.com/basshead301/attendance-intermediary-service/internal/router"
	"github.com/basshead301/attendance-intermediary-service/internal/server"
	"github.com/basshead301/attendance-intermediary-service/internal/service"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		bootstrap := zerolog.New(os.Stderr).With().Timestamp().Logger()
		bootstrap.Fatal().Err(err).Msg("failed to load config")
	}

	loggerService := logger.NewLoggerService(&cfg.Observability)
	log := logger.NewLoggerWithService(&cfg.Observability, loggerService)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, &log, loggerService); err != nil {
		stop()
		log.Fatal().Err(err).Msg("relay stopped with error")
	}

	log.Info().Msg("server stopped")
}

// run serves until ctx is done, then shuts down within the configured
// shutdown timeout. A listener failure or a shutdown that cannot finish in
// time is returned as an error.
func run(ctx context.Context, cfg *config.Config, log *zerolog.Logger, loggerService *logger.LoggerService) error {
	srv, err := server.New(cfg, log, loggerService)
	if err != nil {
		return errors.Wrap(err, "failed to initialize server")
	}

	services := service.NewServices(srv)
	handlers := handler.NewHandlers(srv, services)
	r := router.NewRouter(srv, handlers)

	srv.SetupHTTPServer(r)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return errors.Wrap(err, "server failed")
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
