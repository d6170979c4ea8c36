package service

import (
	"context"

	"github.com/basshead301/attendance-intermediary-service/internal/errs"
	"github.com/basshead301/attendance-intermediary-service/internal/lib/downstream"
	"github.com/basshead301/attendance-intermediary-service/internal/middleware"
	"github.com/basshead301/attendance-intermediary-service/internal/model"
	"github.com/pkg/errors"
)

// RelayService forwards attendance responses to the downstream service.
type RelayService struct {
	forwarder downstream.Forwarder
}

// NewRelayService constructs a RelayService around forwarder.
func NewRelayService(forwarder downstream.Forwarder) *RelayService {
	return &RelayService{forwarder: forwarder}
}

// Submit makes exactly one forward attempt for payload.
//
// It returns the downstream Result on 2xx. Otherwise the returned error is
// an *errs.HTTPError: CodeDownstreamRejected carrying the downstream status
// and body, or CodeDownstreamUnreachable carrying the failure description.
//
// The attempt is not tied to ctx's cancellation: a caller that goes away
// does not abort an in-flight forward. Values on ctx (request logger,
// tracing) are kept, and logging goes through the request logger on ctx.
func (s *RelayService) Submit(ctx context.Context, payload model.ForwardRequest) (*downstream.Result, error) {
	logger := middleware.LoggerFromContext(ctx)

	logger.Info().
		Str("alert_key", payload.AlertKey).
		Str("employee_name", payload.EmployeeName).
		Str("response_text", payload.ResponseText).
		Msg("forwarding response to downstream")

	result, err := s.forwarder.Forward(context.WithoutCancel(ctx), payload)
	if err != nil {
		logger.Error().Stack().
			Err(err).
			Str("alert_key", payload.AlertKey).
			Msg("error forwarding response to downstream")

		return nil, errs.NewDownstreamUnreachableError(errors.Cause(err).Error(), err)
	}

	if !result.OK() {
		logger.Error().
			Str("alert_key", payload.AlertKey).
			Int("downstream_status", result.StatusCode).
			Str("downstream_body", result.Body).
			Msg("downstream rejected forwarded response")

		return nil, errs.NewDownstreamRejectedError(result.StatusCode, result.Body)
	}

	logger.Info().
		Str("alert_key", payload.AlertKey).
		Int("downstream_status", result.StatusCode).
		Str("downstream_body", result.Body).
		Msg("successfully forwarded response to downstream")

	return result, nil
}
