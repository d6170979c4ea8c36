package service

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/basshead301/attendance-intermediary-service/internal/errs"
	"github.com/basshead301/attendance-intermediary-service/internal/middleware"
	"github.com/basshead301/attendance-intermediary-service/internal/model"
	"github.com/basshead301/attendance-intermediary-service/internal/testutil"
	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func payload() model.ForwardRequest {
	return model.ForwardRequest{AlertKey: "A-1", EmployeeName: "Jane", ResponseText: "Yes"}
}

func TestRelayService_SubmitSuccess(t *testing.T) {
	fake := testutil.NewFakeForwarder()
	svc := NewRelayService(fake)

	result, err := svc.Submit(context.Background(), payload())
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Equal(t, []model.ForwardRequest{payload()}, fake.Calls())
}

func TestRelayService_SubmitRejected(t *testing.T) {
	fake := testutil.NewFakeForwarder().Respond(http.StatusServiceUnavailable, "unavailable")
	svc := NewRelayService(fake)

	result, err := svc.Submit(context.Background(), payload())
	assert.Nil(t, result)

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	assert.Equal(t, errs.CodeDownstreamRejected, httpErr.Code)
	assert.Contains(t, httpErr.Message, "503")
	assert.Contains(t, httpErr.Message, "unavailable")
	assert.Len(t, fake.Calls(), 1)
}

func TestRelayService_SubmitUnreachable(t *testing.T) {
	cause := errors.New("dial tcp 127.0.0.1:9: connect: connection refused")
	fake := testutil.NewFakeForwarder().Fail(pkgerrors.Wrap(cause, "downstream request failed"))
	svc := NewRelayService(fake)

	_, err := svc.Submit(context.Background(), payload())

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	assert.Equal(t, errs.CodeDownstreamUnreachable, httpErr.Code)
	assert.Equal(t, "Error: Could not process your request. dial tcp 127.0.0.1:9: connect: connection refused", httpErr.Message)
	assert.ErrorIs(t, err, cause)
	assert.Len(t, fake.Calls(), 1, "no retry")
}

func TestRelayService_SubmitIgnoresCallerCancellation(t *testing.T) {
	fake := testutil.NewFakeForwarder()
	svc := NewRelayService(fake)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Submit(ctx, payload())
	require.NoError(t, err)

	contexts := fake.Contexts()
	require.Len(t, contexts, 1)
	assert.NoError(t, contexts[0].Err())
}

func TestRelayService_SubmitLogsThroughContextLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	ctx := middleware.WithLogger(context.Background(), &logger)

	fake := testutil.NewFakeForwarder().Respond(http.StatusBadGateway, "bad gateway")
	svc := NewRelayService(fake)

	_, err := svc.Submit(ctx, payload())
	require.Error(t, err)

	assert.Contains(t, buf.String(), "forwarding response to downstream")
	assert.Contains(t, buf.String(), "downstream rejected forwarded response")
	assert.Contains(t, buf.String(), `"downstream_status":502`)
}
