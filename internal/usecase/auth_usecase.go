package usecase

import (
	"context"

	"github.com/Yussef-Makhlouf/admin-dashboard-macc/internal/domain"
	"github.com/Yussef-Makhlouf/admin-dashboard-macc/internal/session"
	"github.com/Yussef-Makhlouf/admin-dashboard-macc/pkg/apperror"
	"github.com/Yussef-Makhlouf/admin-dashboard-macc/pkg/logger"
)

type authUsecase struct {
	auth  domain.AuthClient
	store session.Store
}

func NewAuthUsecase(auth domain.AuthClient, store session.Store) domain.AuthUsecase {
	return &authUsecase{auth: auth, store: store}
}

// Login exchanges credentials upstream and persists the session in the
// store, which is the single source of truth for login state.
func (u *authUsecase) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	if email == "" || password == "" {
		return nil, apperror.BadRequest("Email and password are required")
	}
	sess, err := u.auth.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if err := u.store.Save(ctx, sess); err != nil {
		return nil, apperror.Internal(err)
	}
	return sess, nil
}

// Logout clears the local session even when the upstream call fails; a
// stale upstream token only degrades to per-call failures there.
func (u *authUsecase) Logout(ctx context.Context) error {
	token := domain.TokenFromContext(ctx)
	if token == "" {
		return nil
	}
	if err := u.auth.Logout(ctx, token); err != nil {
		logger.Log.Warn("upstream logout failed", "error", err)
	}
	return u.store.Clear(ctx, token)
}

func (u *authUsecase) ForgotPassword(ctx context.Context, email string) (string, error) {
	if email == "" {
		return "", apperror.BadRequest("Email is required")
	}
	return u.auth.ForgotPassword(ctx, email)
}

func (u *authUsecase) ResetPassword(ctx context.Context, token, newPassword string) error {
	if token == "" {
		return apperror.BadRequest("Reset token is missing")
	}
	if len(newPassword) < 8 {
		return apperror.BadRequest("Password must be at least 8 characters")
	}
	return u.auth.ResetPassword(ctx, token, newPassword)
}

func (u *authUsecase) ChangePassword(ctx context.Context, email, newPassword string) error {
	if len(newPassword) < 8 {
		return apperror.BadRequest("Password must be at least 8 characters")
	}
	return u.auth.ChangePassword(ctx, email, newPassword)
}
