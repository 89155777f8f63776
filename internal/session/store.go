// Package session is the single source of truth for the admin login state.
// The original dashboard scattered token reads across components; here
// every read and write goes through one Store, and the browser only ever
// holds the token cookie.
package session

import (
	"context"
	"net/http"

	"github.com/Yussef-Makhlouf/admin-dashboard-macc/internal/domain"
)

// CookieName matches the key the original dashboard used in both
// localStorage and its cookie.
const CookieName = "token"

// CookieMaxAge is seven days, same as the original cookie.
const CookieMaxAge = 604800

// Store persists sessions keyed by token.
type Store interface {
	Save(ctx context.Context, s *domain.Session) error
	Load(ctx context.Context, token string) (*domain.Session, error)
	Clear(ctx context.Context, token string) error
	Close() error
}

// WriteCookie sets the token cookie with the original attributes:
// path=/, max-age=604800, SameSite=Lax, not HTTP-only (the cookie exists
// for a middleware-readable path, it is not a security boundary).
func WriteCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   CookieMaxAge,
		SameSite: http.SameSiteLaxMode,
	})
}

// DropCookie expires the token cookie.
func DropCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		SameSite: http.SameSiteLaxMode,
	})
}

// TokenFromRequest reads the token cookie, "" when absent.
func TokenFromRequest(r *http.Request) string {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}
