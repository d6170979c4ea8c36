// Package downstream sends attendance responses to the service the relay fronts.
//
// Forwarder is the capability the rest of the relay depends on; Client is
// the net/http implementation. A Forwarder makes exactly one attempt per
// call and never retries.
package downstream

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/basshead301/attendance-intermediary-service/internal/config"
	"github.com/basshead301/attendance-intermediary-service/internal/model"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Result is what the downstream answered.
type Result struct {
	StatusCode int
	Body       string
}

// OK reports whether the downstream accepted the payload (2xx).
func (r *Result) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Forwarder sends one ForwardRequest downstream.
//
// A non-nil error means no usable response was received. A non-2xx
// response is not an error: it is returned as a Result.
type Forwarder interface {
	Forward(ctx context.Context, payload model.ForwardRequest) (*Result, error)
}

// Pinger is implemented by forwarders that can check reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Client POSTs JSON to a fixed target URL.
type Client struct {
	targetURL string
	http      *http.Client
	logger    *zerolog.Logger
}

// NewClient creates a Client for cfg.TargetURL.
//
// Requests go through New Relic's round tripper, which records an external
// segment whenever the request context carries a transaction and is a
// plain pass-through otherwise.
func NewClient(cfg config.DownstreamConfig, logger *zerolog.Logger) *Client {
	return NewClientWithHTTP(cfg.TargetURL, &http.Client{
		Timeout:   cfg.Timeout,
		Transport: newrelic.NewRoundTripper(http.DefaultTransport),
	}, logger)
}

// NewClientWithHTTP creates a Client using httpClient as is.
func NewClientWithHTTP(targetURL string, httpClient *http.Client, logger *zerolog.Logger) *Client {
	return &Client{
		targetURL: targetURL,
		http:      httpClient,
		logger:    logger,
	}
}

// TargetURL returns the URL payloads are posted to.
func (c *Client) TargetURL() string {
	return c.targetURL
}

// Forward POSTs payload as JSON and returns the downstream status and the
// complete body. The body is surfaced to callers verbatim, so it is never cut.
func (c *Client) Forward(ctx context.Context, payload model.ForwardRequest) (*Result, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode forward payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.targetURL, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "failed to build downstream request")
	}
	req.Header.Set("Content-Type", "application/json")

	c.logger.Debug().
		Str("target_url", c.targetURL).
		RawJSON("payload", body).
		Msg("forwarding POST request downstream")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "downstream request failed")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read downstream response")
	}

	c.logger.Debug().
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("downstream responded")

	return &Result{
		StatusCode: resp.StatusCode,
		Body:       string(respBody),
	}, nil
}

// Ping sends a HEAD request to the target URL. Any HTTP response, whatever
// its status, means the downstream is reachable.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.targetURL, nil)
	if err != nil {
		return errors.Wrap(err, "failed to build downstream probe")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrap(err, "downstream unreachable")
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	return nil
}

var (
	_ Forwarder = (*Client)(nil)
	_ Pinger    = (*Client)(nil)
)
