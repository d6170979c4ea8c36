// Package handler is the first layer after the router.
//
// It binds and validates requests using the validation package,
// calls the service layer, and turns results into HTTP responses.
// Errors are returned untouched for the global error handler.
package handler
