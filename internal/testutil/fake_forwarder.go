// Package testutil provides test doubles shared across package tests.
package testutil

import (
	"context"
	"sync"

	"github.com/basshead301/attendance-intermediary-service/internal/lib/downstream"
	"github.com/basshead301/attendance-intermediary-service/internal/model"
)

// FakeForwarder is a downstream.Forwarder that records every call and
// answers with a canned Result or error.
type FakeForwarder struct {
	mu sync.Mutex

	Result *downstream.Result
	Err    error

	// PingErr is returned from Ping.
	PingErr error

	calls    []model.ForwardRequest
	contexts []context.Context
}

// NewFakeForwarder returns a FakeForwarder answering 200 "OK".
func NewFakeForwarder() *FakeForwarder {
	return &FakeForwarder{
		Result: &downstream.Result{StatusCode: 200, Body: "OK"},
	}
}

// Respond makes the fake answer with status and body.
func (f *FakeForwarder) Respond(status int, body string) *FakeForwarder {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Result = &downstream.Result{StatusCode: status, Body: body}
	f.Err = nil
	return f
}

// Fail makes the fake return err without a Result.
func (f *FakeForwarder) Fail(err error) *FakeForwarder {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Result = nil
	f.Err = err
	return f
}

func (f *FakeForwarder) Forward(ctx context.Context, payload model.ForwardRequest) (*downstream.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, payload)
	f.contexts = append(f.contexts, ctx)

	if f.Err != nil {
		return nil, f.Err
	}
	result := *f.Result
	return &result, nil
}

func (f *FakeForwarder) Ping(ctx context.Context) error {
	return f.PingErr
}

// Calls returns the payloads forwarded so far.
func (f *FakeForwarder) Calls() []model.ForwardRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]model.ForwardRequest(nil), f.calls...)
}

// Contexts returns the context of every Forward call.
func (f *FakeForwarder) Contexts() []context.Context {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]context.Context(nil), f.contexts...)
}

var (
	_ downstream.Forwarder = (*FakeForwarder)(nil)
	_ downstream.Pinger    = (*FakeForwarder)(nil)
)
