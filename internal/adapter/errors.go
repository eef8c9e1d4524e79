package adapter

import "errors"

// Status-derived errors. Each one wraps the response body text when mapped.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrUnprocessableEntity = errors.New("unprocessable entity")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)

var (
	// ErrTransport means the request never produced an HTTP response
	// (connection refused, timeout, cancelled context).
	ErrTransport = errors.New("transport failure")

	// ErrMalformedResponse means a 2xx response could not be decoded, or a
	// created note came back without an ID.
	ErrMalformedResponse = errors.New("malformed response")
)
