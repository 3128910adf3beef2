package domain

import "context"

type sessionKey struct{}

// WithSessionID returns a copy of ctx carrying id.
func WithSessionID(ctx context.Context, id SessionID) context.Context {
	return context.WithValue(ctx, sessionKey{}, id)
}

// SessionIDFrom returns the session ID on ctx, if any.
func SessionIDFrom(ctx context.Context) (SessionID, bool) {
	id, ok := ctx.Value(sessionKey{}).(SessionID)
	return id, ok
}
