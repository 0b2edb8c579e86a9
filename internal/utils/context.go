// Package utils provides general-purpose helpers shared across the memo
// pipeline: request-scoped context values, id generation, JSON response
// writing and resty client construction.
package utils

import (
	"context"
)

// contextKey is a private type for context keys so they never collide with
// string keys set by other packages.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// RequestIDCtxKey stores the capture request id (a ULID) for the lifetime of
// one inbound capture.
var RequestIDCtxKey = contextKey("requestID")

// TraceIDCtxKey stores the trace id assigned by the HTTP middleware.
var TraceIDCtxKey = contextKey("traceID")

// WithRequestID returns a copy of ctx carrying requestID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDCtxKey, requestID)
}

// GetRequestIDFromContext returns the capture request id stored in ctx.
// ok is false when the value is missing, empty or of an unexpected type.
func GetRequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(RequestIDCtxKey).(string)
	return id, ok && id != ""
}

// WithTraceID returns a copy of ctx carrying traceID.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDCtxKey, traceID)
}

// GetTraceIDFromContext returns the trace id stored in ctx.
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(TraceIDCtxKey).(string)
	return id, ok && id != ""
}
