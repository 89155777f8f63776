package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Yussef-Makhlouf/admin-dashboard-macc/internal/delivery/http/render"
	"github.com/Yussef-Makhlouf/admin-dashboard-macc/pkg/apperror"
	"github.com/Yussef-Makhlouf/admin-dashboard-macc/pkg/logger"
)

// ErrorHandler renders the error page for any error a handler attached to
// the context instead of handling inline.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			render.Page(c, appErr.Code, "error.tmpl", gin.H{
				"Status":  appErr.Code,
				"Message": appErr.Message,
			})
			return
		}

		// Never expose internal error details; log server-side only.
		logger.Log.Error("unhandled error", "error", err, "path", c.FullPath())
		render.Page(c, http.StatusInternalServerError, "error.tmpl", gin.H{
			"Status":  http.StatusInternalServerError,
			"Message": "An unexpected error occurred. Please try again later.",
		})
	}
}
