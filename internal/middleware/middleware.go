// Package middleware stores global and route-specific middleware.
//
// These intercept requests to handle cross-cutting concerns such as
// request IDs, request-scoped logging, access logs, New Relic tracing,
// secure headers, CORS, panic recovery and error rendering.
package middleware
