package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Yussef-Makhlouf/admin-dashboard-macc/config"
	"github.com/Yussef-Makhlouf/admin-dashboard-macc/internal/delivery/http/middleware"
	"github.com/Yussef-Makhlouf/admin-dashboard-macc/internal/domain"
	"github.com/Yussef-Makhlouf/admin-dashboard-macc/internal/session"
)

// RouterDeps carries everything the router wires together. Constructed once
// in main; handlers hold only the usecase interfaces they need.
type RouterDeps struct {
	Config        *config.Config
	SessionStore  session.Store
	AuthUC        domain.AuthUsecase
	StatsUC       domain.StatsUsecase
	ServiceUC     domain.ServiceUsecase
	CareerUC      domain.CareerUsecase
	ApplicationUC domain.ApplicationUsecase
	UserUC        domain.UserUsecase
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	r.LoadHTMLGlob("web/templates/*.tmpl")
	r.Static("/static", "web/static")

	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusSeeOther, "/dashboard")
	})

	// Everything under /dashboard requires a session token; the guard
	// redirects to /login when it is missing or expired.
	protected := r.Group("/dashboard", middleware.SessionGuard(deps.SessionStore))

	NewAuthHandler(r, protected, deps.AuthUC, deps.Config)
	NewDashboardHandler(protected, deps.StatsUC)
	NewServiceHandler(protected, deps.ServiceUC, deps.Config.MaxUploadBytes)
	NewCareerHandler(protected, deps.CareerUC)
	NewApplicationHandler(protected, deps.ApplicationUC, deps.CareerUC)
	NewUserHandler(protected, deps.UserUC, deps.Config.MaxUploadBytes)

	return r
}
