// Package errs defines custom error types and utilities.
//
// Every failure the relay can report to a caller is an *HTTPError, so the
// global error handler has one shape to render: client input errors,
// downstream rejections, and an unreachable downstream.
package errs
