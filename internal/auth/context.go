package auth

import "context"

// SystemActor is recorded on audit entries when no authenticated user is
// attached to the request.
const SystemActor = "system"

type ctxKey int

const ctxUserID ctxKey = iota

func WithActor(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, ctxUserID, userID)
}

// Actor returns the authenticated user id from ctx, or SystemActor.
func Actor(ctx context.Context) string {
	if s, ok := ctx.Value(ctxUserID).(string); ok && s != "" {
		return s
	}
	return SystemActor
}
