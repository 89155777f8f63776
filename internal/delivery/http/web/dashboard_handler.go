package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Yussef-Makhlouf/admin-dashboard-macc/internal/delivery/http/render"
	"github.com/Yussef-Makhlouf/admin-dashboard-macc/internal/domain"
)

type DashboardHandler struct {
	statsUC domain.StatsUsecase
}

func NewDashboardHandler(r *gin.RouterGroup, statsUC domain.StatsUsecase) {
	handler := &DashboardHandler{statsUC: statsUC}
	r.GET("", handler.Overview)
}

// Overview shows the aggregate cards. A stats failure degrades to zeroed
// cards plus a notice; the page itself always renders.
func (h *DashboardHandler) Overview(c *gin.Context) {
	stats, err := h.statsUC.Dashboard(c.Request.Context())
	if err != nil {
		render.Page(c, http.StatusOK, "dashboard.tmpl", gin.H{
			"Stats":  &domain.Stats{},
			"Notice": render.FailNotice(err),
		})
		return
	}
	render.Page(c, http.StatusOK, "dashboard.tmpl", gin.H{"Stats": stats})
}
