package web

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Yussef-Makhlouf/admin-dashboard-macc/internal/delivery/http/render"
	"github.com/Yussef-Makhlouf/admin-dashboard-macc/internal/domain"
	"github.com/Yussef-Makhlouf/admin-dashboard-macc/internal/listview"
	"github.com/Yussef-Makhlouf/admin-dashboard-macc/pkg/validation"
)

type CareerHandler struct {
	careerUC domain.CareerUsecase
}

func NewCareerHandler(r *gin.RouterGroup, careerUC domain.CareerUsecase) {
	handler := &CareerHandler{careerUC: careerUC}

	careers := r.Group("/careers")
	{
		careers.GET("", handler.List)
		careers.GET("/new", handler.NewForm)
		careers.POST("", handler.Create)
		careers.GET("/:id/edit", handler.EditForm)
		careers.POST("/:id", handler.Update)
		careers.POST("/:id/toggle", handler.Toggle)
		careers.GET("/:id/delete", handler.ConfirmDelete)
		careers.POST("/:id/delete", handler.Delete)
		careers.POST("/bulk-delete", handler.BulkDelete)
	}
}

// careerFilters reads the active filter dimensions from the request; every
// dimension defaults to "all".
type careerFilters struct {
	Department string
	Location   string
	Status     string
}

func readCareerFilters(c *gin.Context) careerFilters {
	return careerFilters{
		Department: c.DefaultQuery("department", listview.All),
		Location:   c.DefaultQuery("location", listview.All),
		Status:     c.DefaultQuery("status", listview.All),
	}
}

func applyCareerFilters(careers []domain.Career, f careerFilters) []domain.Career {
	statusKey := func(cr domain.Career) string {
		if cr.IsActive {
			return "active"
		}
		return "inactive"
	}
	return listview.Apply(careers,
		listview.Matches(f.Department, func(cr domain.Career) string { return cr.Department.En }),
		listview.Matches(f.Location, func(cr domain.Career) string { return cr.Location.En }),
		listview.Matches(f.Status, statusKey),
	)
}

// careersPage derives everything the list template needs from the
// authoritative collection: filtered rows, dropdown values, counts. All
// recomputed per render; the collection itself stays untouched.
func (h *CareerHandler) careersPage(careers []domain.Career, f careerFilters, notice *render.Notice) gin.H {
	return gin.H{
		"Careers":     applyCareerFilters(careers, f),
		"Counts":      listview.Count(careers, func(cr domain.Career) bool { return cr.IsActive }),
		"Departments": listview.Distinct(careers, func(cr domain.Career) string { return cr.Department.En }),
		"Locations":   listview.Distinct(careers, func(cr domain.Career) string { return cr.Location.En }),
		"Filters":     f,
		"Notice":      notice,
	}
}

// List renders the careers screen. A fetch failure is swallowed to an
// empty collection plus a notice, per the page contract.
func (h *CareerHandler) List(c *gin.Context) {
	f := readCareerFilters(c)
	careers, err := h.careerUC.List(c.Request.Context())
	if err != nil {
		render.Page(c, http.StatusOK, "careers.tmpl", h.careersPage(nil, f, render.FailNotice(err)))
		return
	}
	render.Page(c, http.StatusOK, "careers.tmpl", h.careersPage(careers, f, nil))
}

type careerForm struct {
	TitleEn            string `form:"title_en" binding:"required"`
	TitleAr            string `form:"title_ar" binding:"required"`
	DepartmentEn       string `form:"department_en" binding:"required"`
	DepartmentAr       string `form:"department_ar" binding:"required"`
	LocationEn         string `form:"location_en" binding:"required"`
	LocationAr         string `form:"location_ar" binding:"required"`
	EmploymentTypeEn   string `form:"employmentType_en" binding:"required"`
	EmploymentTypeAr   string `form:"employmentType_ar" binding:"required"`
	ShortDescriptionEn string `form:"shortDescription_en"`
	ShortDescriptionAr string `form:"shortDescription_ar"`
	DescriptionEn      string `form:"description_en"`
	DescriptionAr      string `form:"description_ar"`
	ResponsibilitiesEn string `form:"responsibilities_en"`
	ResponsibilitiesAr string `form:"responsibilities_ar"`
	RequirementsEn     string `form:"requirements_en"`
	RequirementsAr     string `form:"requirements_ar"`
	IsActive           bool   `form:"isActive"`
	Order              int    `form:"order"`
}

// draft converts the flat form into a draft. The multi-line fields are
// split into line arrays here, at the form boundary, and nowhere else.
func (f careerForm) draft() domain.CareerDraft {
	return domain.CareerDraft{
		Title:            domain.Localized{En: f.TitleEn, Ar: f.TitleAr},
		Department:       domain.Localized{En: f.DepartmentEn, Ar: f.DepartmentAr},
		Location:         domain.Localized{En: f.LocationEn, Ar: f.LocationAr},
		EmploymentType:   domain.Localized{En: f.EmploymentTypeEn, Ar: f.EmploymentTypeAr},
		ShortDescription: domain.Localized{En: f.ShortDescriptionEn, Ar: f.ShortDescriptionAr},
		Description:      domain.Localized{En: f.DescriptionEn, Ar: f.DescriptionAr},
		Responsibilities: domain.LocalizedLines{En: domain.SplitLines(f.ResponsibilitiesEn), Ar: domain.SplitLines(f.ResponsibilitiesAr)},
		Requirements:     domain.LocalizedLines{En: domain.SplitLines(f.RequirementsEn), Ar: domain.SplitLines(f.RequirementsAr)},
		IsActive:         f.IsActive,
		Order:            f.Order,
	}
}

// formFromCareer seeds the edit form, joining line arrays back into
// textarea text.
func formFromCareer(cr *domain.Career) careerForm {
	return careerForm{
		TitleEn:            cr.Title.En,
		TitleAr:            cr.Title.Ar,
		DepartmentEn:       cr.Department.En,
		DepartmentAr:       cr.Department.Ar,
		LocationEn:         cr.Location.En,
		LocationAr:         cr.Location.Ar,
		EmploymentTypeEn:   cr.EmploymentType.En,
		EmploymentTypeAr:   cr.EmploymentType.Ar,
		ShortDescriptionEn: cr.ShortDescription.En,
		ShortDescriptionAr: cr.ShortDescription.Ar,
		DescriptionEn:      cr.Description.En,
		DescriptionAr:      cr.Description.Ar,
		ResponsibilitiesEn: domain.JoinLines(cr.Responsibilities.En),
		ResponsibilitiesAr: domain.JoinLines(cr.Responsibilities.Ar),
		RequirementsEn:     domain.JoinLines(cr.Requirements.En),
		RequirementsAr:     domain.JoinLines(cr.Requirements.Ar),
		IsActive:           cr.IsActive,
		Order:              cr.Order,
	}
}

func (h *CareerHandler) NewForm(c *gin.Context) {
	render.Page(c, http.StatusOK, "career_form.tmpl", gin.H{"Form": careerForm{IsActive: true}})
}

func (h *CareerHandler) Create(c *gin.Context) {
	var form careerForm
	if err := c.ShouldBind(&form); err != nil {
		render.Page(c, http.StatusBadRequest, "career_form.tmpl", gin.H{
			"Form":   form,
			"Errors": validation.Messages(err),
		})
		return
	}

	careers, err := h.careerUC.Create(c.Request.Context(), form.draft())
	if err != nil {
		render.Page(c, render.StatusOf(err), "career_form.tmpl", gin.H{
			"Form":   form,
			"Notice": render.FailNotice(err),
		})
		return
	}
	render.Page(c, http.StatusOK, "careers.tmpl",
		h.careersPage(careers, readCareerFilters(c), &render.Notice{Kind: "success", Message: "Job created"}))
}

func (h *CareerHandler) EditForm(c *gin.Context) {
	career, err := h.careerUC.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	render.Page(c, http.StatusOK, "career_form.tmpl", gin.H{
		"Form": formFromCareer(career),
		"ID":   career.ID,
	})
}

func (h *CareerHandler) Update(c *gin.Context) {
	id := c.Param("id")
	var form careerForm
	if err := c.ShouldBind(&form); err != nil {
		render.Page(c, http.StatusBadRequest, "career_form.tmpl", gin.H{
			"Form":   form,
			"ID":     id,
			"Errors": validation.Messages(err),
		})
		return
	}

	careers, err := h.careerUC.Update(c.Request.Context(), id, form.draft())
	if err != nil {
		render.Page(c, render.StatusOf(err), "career_form.tmpl", gin.H{
			"Form":   form,
			"ID":     id,
			"Notice": render.FailNotice(err),
		})
		return
	}
	render.Page(c, http.StatusOK, "careers.tmpl",
		h.careersPage(careers, readCareerFilters(c), &render.Notice{Kind: "success", Message: "Job updated"}))
}

func (h *CareerHandler) Toggle(c *gin.Context) {
	f := readCareerFilters(c)
	careers, err := h.careerUC.ToggleStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		// Failed mutation: refetch nothing, show the current server state.
		current, listErr := h.careerUC.List(c.Request.Context())
		if listErr != nil {
			current = nil
		}
		render.Page(c, http.StatusOK, "careers.tmpl", h.careersPage(current, f, render.FailNotice(err)))
		return
	}
	render.Page(c, http.StatusOK, "careers.tmpl",
		h.careersPage(careers, f, &render.Notice{Kind: "success", Message: "Status updated"}))
}

func (h *CareerHandler) ConfirmDelete(c *gin.Context) {
	career, err := h.careerUC.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	render.Page(c, http.StatusOK, "confirm.tmpl", gin.H{
		"Title":  "Delete job posting",
		"Name":   career.Title.En,
		"Action": "/dashboard/careers/" + career.ID + "/delete",
		"Back":   "/dashboard/careers",
	})
}

func (h *CareerHandler) Delete(c *gin.Context) {
	f := readCareerFilters(c)
	careers, err := h.careerUC.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		current, listErr := h.careerUC.List(c.Request.Context())
		if listErr != nil {
			current = nil
		}
		render.Page(c, http.StatusOK, "careers.tmpl", h.careersPage(current, f, render.FailNotice(err)))
		return
	}
	render.Page(c, http.StatusOK, "careers.tmpl",
		h.careersPage(careers, f, &render.Notice{Kind: "success", Message: "Job deleted"}))
}

// BulkDelete resolves the selection against the filtered view as it exists
// now, at confirmation time: rows that left the view since the boxes were
// ticked are silently dropped. One batched call goes upstream.
func (h *CareerHandler) BulkDelete(c *gin.Context) {
	f := readCareerFilters(c)
	selection := listview.NewSelection(c.PostFormArray("ids")...)

	careers, err := h.careerUC.List(c.Request.Context())
	if err != nil {
		render.Page(c, http.StatusOK, "careers.tmpl", h.careersPage(nil, f, render.FailNotice(err)))
		return
	}

	ids := listview.Resolve(selection, applyCareerFilters(careers, f), func(cr domain.Career) string { return cr.ID })
	refreshed, err := h.careerUC.BulkDelete(c.Request.Context(), ids)
	if err != nil {
		render.Page(c, render.StatusOf(err), "careers.tmpl", h.careersPage(careers, f, render.FailNotice(err)))
		return
	}
	render.Page(c, http.StatusOK, "careers.tmpl",
		h.careersPage(refreshed, f, &render.Notice{Kind: "success", Message: strconv.Itoa(len(ids)) + " jobs deleted"}))
}
