package web

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Yussef-Makhlouf/admin-dashboard-macc/config"
	"github.com/Yussef-Makhlouf/admin-dashboard-macc/internal/delivery/http/middleware"
	"github.com/Yussef-Makhlouf/admin-dashboard-macc/internal/delivery/http/render"
	"github.com/Yussef-Makhlouf/admin-dashboard-macc/internal/domain"
	"github.com/Yussef-Makhlouf/admin-dashboard-macc/internal/session"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
}

func NewAuthHandler(r *gin.Engine, protected *gin.RouterGroup, authUC domain.AuthUsecase, cfg *config.Config) {
	handler := &AuthHandler{authUC: authUC}

	r.GET("/login", handler.LoginForm)
	r.POST("/login",
		middleware.LoginRateLimit(cfg.RateLimitLoginThreshold, time.Duration(cfg.RateLimitWindowSeconds)*time.Second),
		handler.Login)
	r.POST("/logout", handler.Logout)

	r.GET("/forgot-password", handler.ForgotPasswordForm)
	r.POST("/forgot-password", handler.ForgotPassword)
	r.GET("/reset/:token", handler.ResetPasswordForm)
	r.POST("/reset/:token", handler.ResetPassword)

	protected.GET("/settings", handler.SettingsForm)
	protected.POST("/settings", handler.ChangePassword)
}

type loginForm struct {
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required"`
}

func (h *AuthHandler) LoginForm(c *gin.Context) {
	render.Page(c, http.StatusOK, "login.tmpl", nil)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		render.Page(c, http.StatusBadRequest, "login.tmpl", gin.H{
			"Notice": &render.Notice{Kind: "error", Message: "Email and password are required"},
			"Email":  form.Email,
		})
		return
	}

	sess, err := h.authUC.Login(c.Request.Context(), form.Email, form.Password)
	if err != nil {
		render.Page(c, render.StatusOf(err), "login.tmpl", gin.H{
			"Notice": render.FailNotice(err),
			"Email":  form.Email,
		})
		return
	}

	session.WriteCookie(c.Writer, sess.Token)
	render.Flash(c, "success", "Welcome back, "+sess.User.UserName)
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	ctx := domain.WithToken(c.Request.Context(), session.TokenFromRequest(c.Request))
	_ = h.authUC.Logout(ctx)
	session.DropCookie(c.Writer)
	c.Redirect(http.StatusSeeOther, "/login")
}

func (h *AuthHandler) ForgotPasswordForm(c *gin.Context) {
	render.Page(c, http.StatusOK, "forgot_password.tmpl", nil)
}

func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	email := c.PostForm("email")
	message, err := h.authUC.ForgotPassword(c.Request.Context(), email)
	if err != nil {
		render.Page(c, render.StatusOf(err), "forgot_password.tmpl", gin.H{
			"Notice": render.FailNotice(err),
			"Email":  email,
		})
		return
	}
	if message == "" {
		message = "If the address exists, a reset link has been sent."
	}
	render.Page(c, http.StatusOK, "forgot_password.tmpl", gin.H{
		"Notice": &render.Notice{Kind: "success", Message: message},
	})
}

func (h *AuthHandler) ResetPasswordForm(c *gin.Context) {
	render.Page(c, http.StatusOK, "reset_password.tmpl", gin.H{"Token": c.Param("token")})
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	token := c.Param("token")
	if err := h.authUC.ResetPassword(c.Request.Context(), token, c.PostForm("newPassword")); err != nil {
		render.Page(c, render.StatusOf(err), "reset_password.tmpl", gin.H{
			"Notice": render.FailNotice(err),
			"Token":  token,
		})
		return
	}
	render.Flash(c, "success", "Password reset. You can sign in now.")
	c.Redirect(http.StatusSeeOther, "/login")
}

func (h *AuthHandler) SettingsForm(c *gin.Context) {
	render.Page(c, http.StatusOK, "settings.tmpl", nil)
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	email := c.GetString(string(domain.KeyUserEmail))
	if err := h.authUC.ChangePassword(c.Request.Context(), email, c.PostForm("newPassword")); err != nil {
		render.Page(c, render.StatusOf(err), "settings.tmpl", gin.H{
			"Notice": render.FailNotice(err),
		})
		return
	}
	render.Page(c, http.StatusOK, "settings.tmpl", gin.H{
		"Notice": &render.Notice{Kind: "success", Message: "Password changed"},
	})
}
