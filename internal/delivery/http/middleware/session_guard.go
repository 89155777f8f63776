package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/Yussef-Makhlouf/admin-dashboard-macc/internal/domain"
	"github.com/Yussef-Makhlouf/admin-dashboard-macc/internal/session"
	"github.com/Yussef-Makhlouf/admin-dashboard-macc/pkg/logger"
)

// SessionGuard gates the protected pages. It is a gate, not a security
// boundary: the real check happens upstream on every API call. A visitor
// with no token (or a token past its exp claim) is redirected to /login
// before any protected handler runs.
func SessionGuard(store session.Store) gin.HandlerFunc {
	parser := jwt.NewParser()

	return func(c *gin.Context) {
		token := session.TokenFromRequest(c.Request)
		if token == "" {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}

		// The signature is deliberately not verified here; only the exp
		// claim is read so an obviously dead session bounces to login
		// instead of degrading into per-call failures.
		if claims := parseClaims(parser, token); claims != nil {
			if exp, err := claims.GetExpirationTime(); err == nil && exp != nil && exp.Before(time.Now()) {
				session.DropCookie(c.Writer)
				c.Redirect(http.StatusSeeOther, "/login")
				c.Abort()
				return
			}
		}

		// Profile enrichment is best-effort: the token alone is what
		// gates entry, matching the original guard.
		if sess, err := store.Load(c.Request.Context(), token); err == nil {
			c.Set(string(domain.KeyUserID), sess.User.ID)
			c.Set(string(domain.KeyUserEmail), sess.User.Email)
			c.Set(string(domain.KeyUserRole), string(sess.User.Role))
		} else if !errors.Is(err, session.ErrNotFound) {
			logger.Log.Warn("session load failed", "error", err)
		}

		c.Request = c.Request.WithContext(domain.WithToken(c.Request.Context(), token))
		c.Next()
	}
}

func parseClaims(parser *jwt.Parser, token string) jwt.MapClaims {
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil
	}
	return claims
}
