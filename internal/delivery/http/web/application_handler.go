package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Yussef-Makhlouf/admin-dashboard-macc/internal/delivery/http/render"
	"github.com/Yussef-Makhlouf/admin-dashboard-macc/internal/domain"
	"github.com/Yussef-Makhlouf/admin-dashboard-macc/internal/listview"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
	careerUC      domain.CareerUsecase
}

func NewApplicationHandler(r *gin.RouterGroup, applicationUC domain.ApplicationUsecase, careerUC domain.CareerUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC, careerUC: careerUC}

	applications := r.Group("/applications")
	{
		applications.GET("", handler.List)
		applications.GET("/:id", handler.Detail)
		applications.POST("/:id/status", handler.UpdateStatus)
		applications.GET("/:id/delete", handler.ConfirmDelete)
		applications.POST("/:id/delete", handler.Delete)
	}
}

type applicationFilters struct {
	Job    string
	Status string
}

func readApplicationFilters(c *gin.Context) applicationFilters {
	return applicationFilters{
		Job:    c.DefaultQuery("job", listview.All),
		Status: c.DefaultQuery("status", listview.All),
	}
}

func applyApplicationFilters(apps []domain.Application, f applicationFilters) []domain.Application {
	return listview.Apply(apps,
		listview.Matches(f.Job, func(a domain.Application) string { return a.Career.ID() }),
		listview.Matches(f.Status, func(a domain.Application) string { return string(a.Status) }),
	)
}

// jobOption is one entry of the job filter dropdown.
type jobOption struct {
	ID    string
	Title string
}

// jobOptions builds the dropdown from the careers collection, not from the
// applications: a job with no applicants is still selectable. A careers
// fetch failure degrades to options derived from the applications' refs.
func (h *ApplicationHandler) jobOptions(c *gin.Context, apps []domain.Application) []jobOption {
	careers, err := h.careerUC.List(c.Request.Context())
	if err == nil {
		opts := make([]jobOption, 0, len(careers))
		for _, cr := range careers {
			opts = append(opts, jobOption{ID: cr.ID, Title: cr.Title.En})
		}
		return opts
	}

	seen := make(map[string]struct{})
	var opts []jobOption
	for _, a := range apps {
		id := a.Career.ID()
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		opts = append(opts, jobOption{ID: id, Title: a.Career.Title()})
	}
	return opts
}

func (h *ApplicationHandler) applicationsPage(c *gin.Context, apps []domain.Application, f applicationFilters, notice *render.Notice) gin.H {
	return gin.H{
		"Applications": applyApplicationFilters(apps, f),
		"StatusCounts": listview.CountBy(apps, func(a domain.Application) string { return string(a.Status) }),
		"Total":        len(apps),
		"Jobs":         h.jobOptions(c, apps),
		"Statuses":     domain.ApplicationStatuses,
		"Filters":      f,
		"Notice":       notice,
	}
}

func (h *ApplicationHandler) List(c *gin.Context) {
	f := readApplicationFilters(c)
	apps, err := h.applicationUC.List(c.Request.Context())
	if err != nil {
		render.Page(c, http.StatusOK, "applications.tmpl", h.applicationsPage(c, nil, f, render.FailNotice(err)))
		return
	}
	render.Page(c, http.StatusOK, "applications.tmpl", h.applicationsPage(c, apps, f, nil))
}

func (h *ApplicationHandler) Detail(c *gin.Context) {
	app, err := h.applicationUC.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	render.Page(c, http.StatusOK, "application_detail.tmpl", gin.H{
		"Application": app,
		"Statuses":    domain.ApplicationStatuses,
	})
}

func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	f := readApplicationFilters(c)
	status := domain.ApplicationStatus(c.PostForm("status"))

	apps, err := h.applicationUC.UpdateStatus(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		current, listErr := h.applicationUC.List(c.Request.Context())
		if listErr != nil {
			current = nil
		}
		render.Page(c, http.StatusOK, "applications.tmpl", h.applicationsPage(c, current, f, render.FailNotice(err)))
		return
	}
	render.Page(c, http.StatusOK, "applications.tmpl",
		h.applicationsPage(c, apps, f, &render.Notice{Kind: "success", Message: "Status updated"}))
}

func (h *ApplicationHandler) ConfirmDelete(c *gin.Context) {
	app, err := h.applicationUC.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	render.Page(c, http.StatusOK, "confirm.tmpl", gin.H{
		"Title":  "Delete application",
		"Name":   app.FullName,
		"Action": "/dashboard/applications/" + app.ID + "/delete",
		"Back":   "/dashboard/applications",
	})
}

func (h *ApplicationHandler) Delete(c *gin.Context) {
	f := readApplicationFilters(c)
	apps, err := h.applicationUC.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		current, listErr := h.applicationUC.List(c.Request.Context())
		if listErr != nil {
			current = nil
		}
		render.Page(c, http.StatusOK, "applications.tmpl", h.applicationsPage(c, current, f, render.FailNotice(err)))
		return
	}
	render.Page(c, http.StatusOK, "applications.tmpl",
		h.applicationsPage(c, apps, f, &render.Notice{Kind: "success", Message: "Application deleted"}))
}
