package trace

import "context"

type requestIDKey struct{}

// WithRequestID returns a copy of ctx carrying the given request ID.
//
// The request ID is surfaced in every operation's start/end log line by
// [Begin] and [Op.End]. An empty string is a valid, present request ID,
// distinct from a context carrying no request ID at all.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFrom extracts the request ID set by [WithRequestID], if any.
func RequestIDFrom(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey{}).(string)
	return id, ok
}
