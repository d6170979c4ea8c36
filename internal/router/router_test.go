package router

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/basshead301/attendance-intermediary-service/internal/config"
	"github.com/basshead301/attendance-intermediary-service/internal/handler"
	"github.com/basshead301/attendance-intermediary-service/internal/middleware"
	"github.com/basshead301/attendance-intermediary-service/internal/model"
	"github.com/basshead301/attendance-intermediary-service/internal/server"
	"github.com/basshead301/attendance-intermediary-service/internal/service"
	"github.com/basshead301/attendance-intermediary-service/internal/testutil"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*echo.Echo, *testutil.FakeForwarder) {
	t.Helper()
	return newTestRouterWithOutput(t, io.Discard)
}

func newTestRouterWithOutput(t *testing.T, out io.Writer) (*echo.Echo, *testutil.FakeForwarder) {
	t.Helper()

	cfg := &config.Config{
		Primary: config.Primary{Env: "test"},
		Server: config.ServerConfig{
			Port:               "0",
			CORSAllowedOrigins: []string{"*"},
		},
		Downstream: config.DownstreamConfig{
			TargetURL: "http://127.0.0.1:1/attendance-response",
			Timeout:   time.Second,
		},
		Observability: *config.DefaultObservabilityConfig(),
	}

	logger := zerolog.New(out)
	srv, err := server.New(cfg, &logger, nil)
	require.NoError(t, err)

	fake := testutil.NewFakeForwarder()
	srv.Downstream = fake

	h := handler.NewHandlers(srv, service.NewServices(srv))
	return NewRouter(srv, h), fake
}

func get(r *echo.Echo, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func respondURL(values map[string]string) string {
	q := url.Values{}
	for k, v := range values {
		q.Set(k, v)
	}
	return "/respond?" + q.Encode()
}

func validParams() map[string]string {
	return map[string]string{
		"alertKey":     "A-1",
		"employeeName": "Jane Doe",
		"responseText": "Running late",
	}
}

func TestRespond_Success(t *testing.T) {
	r, fake := newTestRouter(t)

	params := validParams()
	params["sender"] = "manager@example.com"
	rec := get(r, respondURL(params))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/html")
	assert.Contains(t, rec.Body.String(), "Thank You!")
	assert.Contains(t, rec.Body.String(), "<strong>Jane Doe</strong> (Running late)")

	assert.Equal(t, []model.ForwardRequest{{
		AlertKey:     "A-1",
		EmployeeName: "Jane Doe",
		ResponseText: "Running late",
	}}, fake.Calls())
}

func TestRespond_MissingParameters(t *testing.T) {
	for _, field := range []string{"alertKey", "employeeName", "responseText"} {
		t.Run("missing "+field, func(t *testing.T) {
			r, fake := newTestRouter(t)

			params := validParams()
			delete(params, field)
			rec := get(r, respondURL(params))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, model.MissingParametersMessage, rec.Body.String())
			assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/plain")
			assert.Empty(t, fake.Calls())
		})

		t.Run("empty "+field, func(t *testing.T) {
			r, fake := newTestRouter(t)

			params := validParams()
			params[field] = ""
			rec := get(r, respondURL(params))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, model.MissingParametersMessage, rec.Body.String())
			assert.Empty(t, fake.Calls())
		})
	}
}

func TestRespond_NoQuery(t *testing.T) {
	r, fake := newTestRouter(t)

	rec := get(r, "/respond")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, model.MissingParametersMessage, rec.Body.String())
	assert.Empty(t, fake.Calls())
}

func TestRespond_IgnoresRequestBody(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
	}{
		{name: "json body", contentType: echo.MIMEApplicationJSON, body: `{"alertKey":"EVIL","employeeName":"Mallory"}`},
		{name: "form body", contentType: echo.MIMEApplicationForm, body: "alertKey=EVIL"},
		{name: "text body", contentType: echo.MIMETextPlain, body: "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, fake := newTestRouter(t)

			req := httptest.NewRequest(http.MethodGet, respondURL(validParams()), strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, tt.contentType)
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, []model.ForwardRequest{{
				AlertKey:     "A-1",
				EmployeeName: "Jane Doe",
				ResponseText: "Running late",
			}}, fake.Calls())
		})
	}
}

func TestRespond_LogsParametersOfRejectedRequest(t *testing.T) {
	var buf bytes.Buffer
	r, fake := newTestRouterWithOutput(t, &buf)

	rec := get(r, respondURL(map[string]string{
		"alertKey": "A-1",
		"sender":   "manager@example.com",
	}))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, fake.Calls())
	assert.Contains(t, buf.String(), "received request")
	assert.Contains(t, buf.String(), "manager@example.com")
	assert.Contains(t, buf.String(), `"alertKey":["A-1"]`)
}

func TestRespond_DownstreamRejected(t *testing.T) {
	r, fake := newTestRouter(t)
	fake.Respond(http.StatusServiceUnavailable, "unavailable")

	rec := get(r, respondURL(validParams()))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t,
		"Error: Could not submit your response. The application reported an issue. Status: 503. Details: unavailable",
		rec.Body.String(),
	)
	assert.Len(t, fake.Calls(), 1)
}

func TestRespond_DownstreamUnreachable(t *testing.T) {
	r, fake := newTestRouter(t)
	fake.Fail(errors.New("dial tcp 127.0.0.1:1: connect: connection refused"))

	rec := get(r, respondURL(validParams()))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t,
		"Error: Could not process your request. dial tcp 127.0.0.1:1: connect: connection refused",
		rec.Body.String(),
	)
	assert.Len(t, fake.Calls(), 1)
}

func TestRespond_DoubleEncodedName(t *testing.T) {
	r, fake := newTestRouter(t)

	params := validParams()
	params["employeeName"] = "Jane%20Doe"
	rec := get(r, respondURL(params))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<strong>Jane Doe</strong>")

	calls := fake.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "Jane%20Doe", calls[0].EmployeeName)
}

func TestRespond_NameWhitespaceKept(t *testing.T) {
	r, _ := newTestRouter(t)

	params := validParams()
	params["employeeName"] = "  Jane  "
	rec := get(r, respondURL(params))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<strong>  Jane  </strong>")
}

func TestRespond_MalformedEscapeShownAsReceived(t *testing.T) {
	r, _ := newTestRouter(t)

	params := validParams()
	params["employeeName"] = "100%"
	rec := get(r, respondURL(params))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<strong>100%</strong>")
}

func TestRespond_EscapesMarkup(t *testing.T) {
	r, _ := newTestRouter(t)

	params := validParams()
	params["employeeName"] = "<script>alert(1)</script>"
	rec := get(r, respondURL(params))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "<script>")
	assert.Contains(t, rec.Body.String(), "&lt;script&gt;")
}

func TestRespond_MethodNotAllowed(t *testing.T) {
	r, fake := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, respondURL(validParams()), nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Empty(t, fake.Calls())
}

func TestRoot(t *testing.T) {
	r, fake := newTestRouter(t)
	fake.Fail(errors.New("unreachable"))

	rec := get(r, "/?alertKey=A-1&foo=bar")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, handler.RootMessage, rec.Body.String())
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/plain")
	assert.Empty(t, fake.Calls())
}

func TestUnknownRoute(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := get(r, "/nope")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Error: Route not found", rec.Body.String())
}

func TestRequestIDHeader(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := get(r, "/")
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-123")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, "req-123", rec.Header().Get(middleware.RequestIDHeader))
}

func TestStatus(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		r, _ := newTestRouter(t)

		rec := get(r, "/status")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"healthy"`)
		assert.Contains(t, rec.Body.String(), `"downstream"`)
	})

	t.Run("downstream down", func(t *testing.T) {
		r, fake := newTestRouter(t)
		fake.PingErr = errors.New("connection refused")

		rec := get(r, "/status")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"unhealthy"`)
		assert.Contains(t, rec.Body.String(), "connection refused")
		assert.Empty(t, fake.Calls())
	})
}
