package domain

import (
	"context"
	"time"
)

// Session is the persisted admin login: the bearer token plus the profile
// returned by the login endpoint (minus the token itself).
type Session struct {
	Token   string
	User    User
	SavedAt time.Time
}

// AuthClient consumes the upstream auth endpoints. Token issuance itself is
// upstream's business; this side only stores and attaches what it gets.
type AuthClient interface {
	Login(ctx context.Context, email, password string) (*Session, error)
	Logout(ctx context.Context, token string) error
	ForgotPassword(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, token, newPassword string) error
	ChangePassword(ctx context.Context, email, newPassword string) error
}

type AuthUsecase interface {
	Login(ctx context.Context, email, password string) (*Session, error)
	Logout(ctx context.Context) error
	ForgotPassword(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, token, newPassword string) error
	ChangePassword(ctx context.Context, email, newPassword string) error
}
