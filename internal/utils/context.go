// Package utils provides small helpers shared by the qodefly client, the
// session gateway and their transports: request-id propagation through
// context, the preconfigured resty client, JSON response writing, the signed
// session envelope and UUID generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys so values set here cannot
// collide with string keys from other packages.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// RequestIDCtxKey is the context key holding the request id that is forwarded
// to the qodefly API in the X-Request-ID header.
var RequestIDCtxKey = contextKey("requestID")

// WithRequestID returns a copy of ctx carrying id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDCtxKey, id)
}

// GetRequestIDFromContext returns the request id stored in ctx. ok is false
// when the value is missing, empty or has an unexpected type.
func GetRequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(RequestIDCtxKey).(string)
	return id, ok && id != ""
}
