package domain

import "context"

type ContextKey string

const (
	KeyAuthToken ContextKey = "authToken"
	KeyUserID    ContextKey = "userID"
	KeyUserEmail ContextKey = "userEmail"
	KeyUserRole  ContextKey = "userRole"
)

// WithToken attaches the bearer token of the current admin session to ctx.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, KeyAuthToken, token)
}

// TokenFromContext returns the session token, or "" when the request is
// unauthenticated (the upstream API is responsible for rejecting it).
func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(KeyAuthToken).(string)
	return token
}
