package web

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Yussef-Makhlouf/admin-dashboard-macc/internal/delivery/http/render"
	"github.com/Yussef-Makhlouf/admin-dashboard-macc/internal/domain"
	"github.com/Yussef-Makhlouf/admin-dashboard-macc/internal/listview"
	"github.com/Yussef-Makhlouf/admin-dashboard-macc/pkg/apperror"
	"github.com/Yussef-Makhlouf/admin-dashboard-macc/pkg/validation"
)

type ServiceHandler struct {
	serviceUC domain.ServiceUsecase
	maxUpload int64
}

func NewServiceHandler(r *gin.RouterGroup, serviceUC domain.ServiceUsecase, maxUpload int64) {
	handler := &ServiceHandler{serviceUC: serviceUC, maxUpload: maxUpload}

	services := r.Group("/services")
	{
		services.GET("", handler.List)
		services.GET("/new", handler.NewForm)
		services.POST("", handler.Create)
		services.GET("/:id/edit", handler.EditForm)
		services.POST("/:id", handler.Update)
		services.GET("/:id/delete", handler.ConfirmDelete)
		services.POST("/:id/delete", handler.Delete)
		services.POST("/bulk-delete", handler.BulkDelete)

		services.GET("/:id/items", handler.Items)
		services.GET("/:id/items/new", handler.NewItemForm)
		services.POST("/:id/items", handler.AddItem)
		services.GET("/:id/items/:itemId/edit", handler.EditItemForm)
		services.POST("/:id/items/:itemId", handler.UpdateItem)
		services.POST("/:id/items/:itemId/delete", handler.DeleteItem)
	}
}

func readServiceStatus(c *gin.Context) string {
	return c.DefaultQuery("status", listview.All)
}

func applyServiceFilter(sections []domain.ServiceSection, status string) []domain.ServiceSection {
	return listview.Apply(sections, listview.Matches(status, func(s domain.ServiceSection) string {
		if s.IsActive {
			return "active"
		}
		return "inactive"
	}))
}

func (h *ServiceHandler) servicesPage(sections []domain.ServiceSection, status string, notice *render.Notice) gin.H {
	return gin.H{
		"Sections": applyServiceFilter(sections, status),
		"Counts":   listview.Count(sections, func(s domain.ServiceSection) bool { return s.IsActive }),
		"Status":   status,
		"Notice":   notice,
	}
}

func (h *ServiceHandler) List(c *gin.Context) {
	status := readServiceStatus(c)
	sections, err := h.serviceUC.List(c.Request.Context())
	if err != nil {
		render.Page(c, http.StatusOK, "services.tmpl", h.servicesPage(nil, status, render.FailNotice(err)))
		return
	}
	render.Page(c, http.StatusOK, "services.tmpl", h.servicesPage(sections, status, nil))
}

type sectionForm struct {
	TitleEn       string `form:"title_en" binding:"required"`
	TitleAr       string `form:"title_ar" binding:"required"`
	SubTitleEn    string `form:"sub_title_en"`
	SubTitleAr    string `form:"sub_title_ar"`
	DescriptionEn string `form:"description_en" binding:"required"`
	DescriptionAr string `form:"description_ar" binding:"required"`
	IsActive      bool   `form:"isActive"`
}

func (f sectionForm) draft(image *domain.Upload) domain.ServiceSectionDraft {
	return domain.ServiceSectionDraft{
		Title:       domain.Localized{En: f.TitleEn, Ar: f.TitleAr},
		SubTitle:    domain.Localized{En: f.SubTitleEn, Ar: f.SubTitleAr},
		Description: domain.Localized{En: f.DescriptionEn, Ar: f.DescriptionAr},
		IsActive:    f.IsActive,
		Image:       image,
	}
}

func formFromSection(s *domain.ServiceSection) sectionForm {
	return sectionForm{
		TitleEn:       s.Header.Title.En,
		TitleAr:       s.Header.Title.Ar,
		SubTitleEn:    s.Header.SubTitle.En,
		SubTitleAr:    s.Header.SubTitle.Ar,
		DescriptionEn: s.Header.Description.En,
		DescriptionAr: s.Header.Description.Ar,
		IsActive:      s.IsActive,
	}
}

func (h *ServiceHandler) NewForm(c *gin.Context) {
	render.Page(c, http.StatusOK, "service_form.tmpl", gin.H{"Form": sectionForm{IsActive: true}})
}

// bindSectionForm validates the posted fields and, only when they pass,
// reads the optional image upload. Nothing has hit the network yet when
// either step fails.
func (h *ServiceHandler) bindSectionForm(c *gin.Context) (sectionForm, *domain.Upload, error) {
	var form sectionForm
	if err := c.ShouldBind(&form); err != nil {
		return form, nil, err
	}
	image, err := readUpload(c, "image", h.maxUpload)
	if err != nil {
		return form, nil, err
	}
	return form, image, nil
}

func (h *ServiceHandler) Create(c *gin.Context) {
	form, image, err := h.bindSectionForm(c)
	if err != nil {
		render.Page(c, http.StatusBadRequest, "service_form.tmpl", gin.H{
			"Form":   form,
			"Errors": validation.Messages(err),
			"Notice": noticeForBindError(err),
		})
		return
	}

	sections, err := h.serviceUC.Create(c.Request.Context(), form.draft(image))
	if err != nil {
		render.Page(c, render.StatusOf(err), "service_form.tmpl", gin.H{
			"Form":   form,
			"Notice": render.FailNotice(err),
		})
		return
	}
	render.Page(c, http.StatusOK, "services.tmpl",
		h.servicesPage(sections, readServiceStatus(c), &render.Notice{Kind: "success", Message: "Service created"}))
}

func (h *ServiceHandler) EditForm(c *gin.Context) {
	section, err := h.serviceUC.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	render.Page(c, http.StatusOK, "service_form.tmpl", gin.H{
		"Form":  formFromSection(section),
		"ID":    section.ID,
		"Image": section.Header.Image,
	})
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id := c.Param("id")
	form, image, err := h.bindSectionForm(c)
	if err != nil {
		render.Page(c, http.StatusBadRequest, "service_form.tmpl", gin.H{
			"Form":   form,
			"ID":     id,
			"Errors": validation.Messages(err),
			"Notice": noticeForBindError(err),
		})
		return
	}

	sections, err := h.serviceUC.Update(c.Request.Context(), id, form.draft(image))
	if err != nil {
		render.Page(c, render.StatusOf(err), "service_form.tmpl", gin.H{
			"Form":   form,
			"ID":     id,
			"Notice": render.FailNotice(err),
		})
		return
	}
	render.Page(c, http.StatusOK, "services.tmpl",
		h.servicesPage(sections, readServiceStatus(c), &render.Notice{Kind: "success", Message: "Service updated"}))
}

func (h *ServiceHandler) ConfirmDelete(c *gin.Context) {
	section, err := h.serviceUC.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	render.Page(c, http.StatusOK, "confirm.tmpl", gin.H{
		"Title":  "Delete service section",
		"Name":   section.Header.Title.En,
		"Action": "/dashboard/services/" + section.ID + "/delete",
		"Back":   "/dashboard/services",
	})
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	status := readServiceStatus(c)
	sections, err := h.serviceUC.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		current, listErr := h.serviceUC.List(c.Request.Context())
		if listErr != nil {
			current = nil
		}
		render.Page(c, http.StatusOK, "services.tmpl", h.servicesPage(current, status, render.FailNotice(err)))
		return
	}
	render.Page(c, http.StatusOK, "services.tmpl",
		h.servicesPage(sections, status, &render.Notice{Kind: "success", Message: "Service deleted"}))
}

func (h *ServiceHandler) BulkDelete(c *gin.Context) {
	status := readServiceStatus(c)
	selection := listview.NewSelection(c.PostFormArray("ids")...)

	sections, err := h.serviceUC.List(c.Request.Context())
	if err != nil {
		render.Page(c, http.StatusOK, "services.tmpl", h.servicesPage(nil, status, render.FailNotice(err)))
		return
	}

	ids := listview.Resolve(selection, applyServiceFilter(sections, status), func(s domain.ServiceSection) string { return s.ID })
	refreshed, err := h.serviceUC.BulkDelete(c.Request.Context(), ids)
	if err != nil {
		render.Page(c, render.StatusOf(err), "services.tmpl", h.servicesPage(sections, status, render.FailNotice(err)))
		return
	}
	render.Page(c, http.StatusOK, "services.tmpl",
		h.servicesPage(refreshed, status, &render.Notice{Kind: "success", Message: strconv.Itoa(len(ids)) + " services deleted"}))
}

// sectionByID picks one section out of the refreshed collection so item
// mutations can render the items page without a second fetch.
func sectionByID(sections []domain.ServiceSection, id string) *domain.ServiceSection {
	for i := range sections {
		if sections[i].ID == id {
			return &sections[i]
		}
	}
	return nil
}

func (h *ServiceHandler) itemsPage(section *domain.ServiceSection, notice *render.Notice) gin.H {
	return gin.H{
		"Section": section,
		"Notice":  notice,
	}
}

func (h *ServiceHandler) Items(c *gin.Context) {
	section, err := h.serviceUC.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	render.Page(c, http.StatusOK, "service_items.tmpl", h.itemsPage(section, nil))
}

type itemForm struct {
	TitleEn       string `form:"title_en" binding:"required"`
	TitleAr       string `form:"title_ar" binding:"required"`
	CategoryEn    string `form:"category_en" binding:"required"`
	CategoryAr    string `form:"category_ar" binding:"required"`
	DescriptionEn string `form:"description_en"`
	DescriptionAr string `form:"description_ar"`
	CustomID      string `form:"customId"`
	Order         int    `form:"order"`
}

func (f itemForm) draft(image *domain.Upload) domain.ServiceItemDraft {
	return domain.ServiceItemDraft{
		Title:       domain.Localized{En: f.TitleEn, Ar: f.TitleAr},
		Category:    domain.Localized{En: f.CategoryEn, Ar: f.CategoryAr},
		Description: domain.Localized{En: f.DescriptionEn, Ar: f.DescriptionAr},
		CustomID:    f.CustomID,
		Order:       f.Order,
		Image:       image,
	}
}

func formFromItem(item *domain.ServiceItem) itemForm {
	return itemForm{
		TitleEn:       item.Title.En,
		TitleAr:       item.Title.Ar,
		CategoryEn:    item.Category.En,
		CategoryAr:    item.Category.Ar,
		DescriptionEn: item.Description.En,
		DescriptionAr: item.Description.Ar,
		CustomID:      item.CustomID,
		Order:         item.Order,
	}
}

func (h *ServiceHandler) NewItemForm(c *gin.Context) {
	render.Page(c, http.StatusOK, "service_item_form.tmpl", gin.H{
		"Form":      itemForm{},
		"SectionID": c.Param("id"),
	})
}

func (h *ServiceHandler) bindItemForm(c *gin.Context) (itemForm, *domain.Upload, error) {
	var form itemForm
	if err := c.ShouldBind(&form); err != nil {
		return form, nil, err
	}
	image, err := readUpload(c, "image", h.maxUpload)
	if err != nil {
		return form, nil, err
	}
	return form, image, nil
}

func (h *ServiceHandler) AddItem(c *gin.Context) {
	sectionID := c.Param("id")
	form, image, err := h.bindItemForm(c)
	if err != nil {
		render.Page(c, http.StatusBadRequest, "service_item_form.tmpl", gin.H{
			"Form":      form,
			"SectionID": sectionID,
			"Errors":    validation.Messages(err),
			"Notice":    noticeForBindError(err),
		})
		return
	}

	sections, err := h.serviceUC.AddItem(c.Request.Context(), sectionID, form.draft(image))
	if err != nil {
		render.Page(c, render.StatusOf(err), "service_item_form.tmpl", gin.H{
			"Form":      form,
			"SectionID": sectionID,
			"Notice":    render.FailNotice(err),
		})
		return
	}
	render.Page(c, http.StatusOK, "service_items.tmpl",
		h.itemsPage(sectionByID(sections, sectionID), &render.Notice{Kind: "success", Message: "Item added"}))
}

func (h *ServiceHandler) EditItemForm(c *gin.Context) {
	sectionID, itemID := c.Param("id"), c.Param("itemId")
	section, err := h.serviceUC.Get(c.Request.Context(), sectionID)
	if err != nil {
		c.Error(err)
		return
	}
	for i := range section.Services {
		if section.Services[i].ID == itemID {
			render.Page(c, http.StatusOK, "service_item_form.tmpl", gin.H{
				"Form":      formFromItem(&section.Services[i]),
				"SectionID": sectionID,
				"ItemID":    itemID,
				"Image":     section.Services[i].Image,
			})
			return
		}
	}
	c.Error(apperror.NotFound("Item not found"))
}

func (h *ServiceHandler) UpdateItem(c *gin.Context) {
	sectionID, itemID := c.Param("id"), c.Param("itemId")
	form, image, err := h.bindItemForm(c)
	if err != nil {
		render.Page(c, http.StatusBadRequest, "service_item_form.tmpl", gin.H{
			"Form":      form,
			"SectionID": sectionID,
			"ItemID":    itemID,
			"Errors":    validation.Messages(err),
			"Notice":    noticeForBindError(err),
		})
		return
	}

	sections, err := h.serviceUC.UpdateItem(c.Request.Context(), sectionID, itemID, form.draft(image))
	if err != nil {
		render.Page(c, render.StatusOf(err), "service_item_form.tmpl", gin.H{
			"Form":      form,
			"SectionID": sectionID,
			"ItemID":    itemID,
			"Notice":    render.FailNotice(err),
		})
		return
	}
	render.Page(c, http.StatusOK, "service_items.tmpl",
		h.itemsPage(sectionByID(sections, sectionID), &render.Notice{Kind: "success", Message: "Item updated"}))
}

func (h *ServiceHandler) DeleteItem(c *gin.Context) {
	sectionID := c.Param("id")
	sections, err := h.serviceUC.DeleteItem(c.Request.Context(), sectionID, c.Param("itemId"))
	if err != nil {
		section, getErr := h.serviceUC.Get(c.Request.Context(), sectionID)
		if getErr != nil {
			c.Error(err)
			return
		}
		render.Page(c, http.StatusOK, "service_items.tmpl", h.itemsPage(section, render.FailNotice(err)))
		return
	}
	render.Page(c, http.StatusOK, "service_items.tmpl",
		h.itemsPage(sectionByID(sections, sectionID), &render.Notice{Kind: "success", Message: "Item deleted"}))
}
