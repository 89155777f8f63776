package render

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/Yussef-Makhlouf/admin-dashboard-macc/internal/domain"
	"github.com/Yussef-Makhlouf/admin-dashboard-macc/pkg/apperror"
	"github.com/Yussef-Makhlouf/admin-dashboard-macc/pkg/logger"
)

// Notice is the transient toast-style message shown once at the top of a
// page after an action.
type Notice struct {
	Kind    string // "success" or "error"
	Message string
}

const flashCookie = "flash"

// Flash stores a notice for the next rendered page. Used on redirect
// flows; handlers that render directly pass the notice inline instead.
func Flash(c *gin.Context, kind, message string) {
	c.SetCookie(flashCookie, url.QueryEscape(kind+"|"+message), 60, "/", "", false, true)
}

// TakeFlash reads and clears the pending notice, if any.
func TakeFlash(c *gin.Context) *Notice {
	raw, err := c.Cookie(flashCookie)
	if err != nil {
		return nil
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)
	decoded, err := url.QueryUnescape(raw)
	if err != nil {
		return nil
	}
	for i := 0; i < len(decoded); i++ {
		if decoded[i] == '|' {
			return &Notice{Kind: decoded[:i], Message: decoded[i+1:]}
		}
	}
	return &Notice{Kind: "success", Message: decoded}
}

// Page renders an HTML template with the ambient keys every page expects:
// the signed-in user, the request id, and any pending flash notice.
func Page(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if n, _ := data["Notice"].(*Notice); n == nil {
		if fl := TakeFlash(c); fl != nil {
			data["Notice"] = fl
		}
	}
	data["UserName"] = c.GetString(string(domain.KeyUserEmail))
	data["UserRole"] = c.GetString(string(domain.KeyUserRole))
	if reqID, ok := c.Get("RequestID"); ok {
		data["RequestID"] = reqID
	}
	c.HTML(status, name, data)
}

// FailNotice turns any error into the notice a page shows for it: the
// server-supplied message when the error is typed, else a generic fallback.
func FailNotice(err error) *Notice {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return &Notice{Kind: "error", Message: appErr.Message}
	}
	logger.Log.Error("unexpected error", "error", err)
	return &Notice{Kind: "error", Message: "An unexpected error occurred. Please try again later."}
}

// StatusOf maps an error to the HTTP status the page is served with.
func StatusOf(err error) int {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return http.StatusInternalServerError
}
