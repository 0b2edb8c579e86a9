package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrPayloadTooLarge     = errors.New("payload too large")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")

	ErrNotConfigured   = errors.New("provider is not configured")
	ErrEmptyCompletion = errors.New("model returned no content")
	ErrDecodeResponse  = errors.New("cannot decode provider response")
	ErrTokenRequest    = errors.New("cannot obtain access token")
	ErrInvalidAddress  = errors.New("invalid address")
)
