package client

import (
	"context"

	"github.com/google/uuid"
)

// RequestIDHeader carries the identifier of a submission. The same value is
// used as the id of its history record.
const RequestIDHeader = "X-Request-ID"

type requestIDKey struct{}

// WithRequestID attaches id to ctx for the next request sent with it.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFrom returns the id attached to ctx, or a fresh UUID.
func RequestIDFrom(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok && id != "" {
		return id
	}
	return uuid.NewString()
}
