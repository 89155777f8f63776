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

type UserHandler struct {
	userUC    domain.UserUsecase
	maxUpload int64
}

func NewUserHandler(r *gin.RouterGroup, userUC domain.UserUsecase, maxUpload int64) {
	handler := &UserHandler{userUC: userUC, maxUpload: maxUpload}

	users := r.Group("/users")
	{
		users.GET("", handler.List)
		users.GET("/new", handler.NewForm)
		users.POST("", handler.Create)
		users.GET("/:id/edit", handler.EditForm)
		users.POST("/:id", handler.Update)
		users.GET("/:id/delete", handler.ConfirmDelete)
		users.POST("/:id/delete", handler.Delete)
		users.POST("/bulk-delete", handler.BulkDelete)
	}
}

type userFilters struct {
	Role   string
	Status string
}

func readUserFilters(c *gin.Context) userFilters {
	return userFilters{
		Role:   c.DefaultQuery("role", listview.All),
		Status: c.DefaultQuery("status", listview.All),
	}
}

func applyUserFilters(users []domain.User, f userFilters) []domain.User {
	statusKey := func(u domain.User) string {
		if u.IsActive {
			return "active"
		}
		return "inactive"
	}
	return listview.Apply(users,
		listview.Matches(f.Role, func(u domain.User) string { return string(u.Role) }),
		listview.Matches(f.Status, statusKey),
	)
}

func (h *UserHandler) usersPage(users []domain.User, f userFilters, notice *render.Notice) gin.H {
	return gin.H{
		"Users":   applyUserFilters(users, f),
		"Counts":  listview.Count(users, func(u domain.User) bool { return u.IsActive }),
		"Roles":   []domain.Role{domain.RoleUser, domain.RoleAdmin, domain.RoleHR},
		"Filters": f,
		"Notice":  notice,
	}
}

func (h *UserHandler) List(c *gin.Context) {
	f := readUserFilters(c)
	users, err := h.userUC.List(c.Request.Context())
	if err != nil {
		render.Page(c, http.StatusOK, "users.tmpl", h.usersPage(nil, f, render.FailNotice(err)))
		return
	}
	render.Page(c, http.StatusOK, "users.tmpl", h.usersPage(users, f, nil))
}

type userForm struct {
	UserName string `form:"userName" binding:"required"`
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password"`
	Role     string `form:"role" binding:"required"`
	IsActive bool   `form:"isActive"`
}

func (f userForm) draft(avatar *domain.Upload) domain.UserDraft {
	return domain.UserDraft{
		UserName: f.UserName,
		Email:    f.Email,
		Password: f.Password,
		Role:     domain.Role(f.Role),
		IsActive: f.IsActive,
		Avatar:   avatar,
	}
}

func formFromUser(u *domain.User) userForm {
	return userForm{
		UserName: u.UserName,
		Email:    u.Email,
		Role:     string(u.Role),
		IsActive: u.IsActive,
	}
}

func (h *UserHandler) NewForm(c *gin.Context) {
	render.Page(c, http.StatusOK, "user_form.tmpl", gin.H{
		"Form":  userForm{IsActive: true},
		"Roles": []domain.Role{domain.RoleUser, domain.RoleAdmin, domain.RoleHR},
	})
}

func (h *UserHandler) bindUserForm(c *gin.Context) (userForm, *domain.Upload, error) {
	var form userForm
	if err := c.ShouldBind(&form); err != nil {
		return form, nil, err
	}
	avatar, err := readUpload(c, "image", h.maxUpload)
	if err != nil {
		return form, nil, err
	}
	return form, avatar, nil
}

func (h *UserHandler) Create(c *gin.Context) {
	form, avatar, err := h.bindUserForm(c)
	if err != nil {
		render.Page(c, http.StatusBadRequest, "user_form.tmpl", gin.H{
			"Form":   form,
			"Roles":  []domain.Role{domain.RoleUser, domain.RoleAdmin, domain.RoleHR},
			"Errors": validation.Messages(err),
			"Notice": noticeForBindError(err),
		})
		return
	}

	users, err := h.userUC.Create(c.Request.Context(), form.draft(avatar))
	if err != nil {
		render.Page(c, render.StatusOf(err), "user_form.tmpl", gin.H{
			"Form":   form,
			"Roles":  []domain.Role{domain.RoleUser, domain.RoleAdmin, domain.RoleHR},
			"Notice": render.FailNotice(err),
		})
		return
	}
	render.Page(c, http.StatusOK, "users.tmpl",
		h.usersPage(users, readUserFilters(c), &render.Notice{Kind: "success", Message: "User created"}))
}

func (h *UserHandler) EditForm(c *gin.Context) {
	user, err := h.userUC.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	render.Page(c, http.StatusOK, "user_form.tmpl", gin.H{
		"Form":  formFromUser(user),
		"ID":    user.ID,
		"Image": user.Image,
		"Roles": []domain.Role{domain.RoleUser, domain.RoleAdmin, domain.RoleHR},
	})
}

func (h *UserHandler) Update(c *gin.Context) {
	id := c.Param("id")
	form, avatar, err := h.bindUserForm(c)
	if err != nil {
		render.Page(c, http.StatusBadRequest, "user_form.tmpl", gin.H{
			"Form":   form,
			"ID":     id,
			"Roles":  []domain.Role{domain.RoleUser, domain.RoleAdmin, domain.RoleHR},
			"Errors": validation.Messages(err),
			"Notice": noticeForBindError(err),
		})
		return
	}

	users, err := h.userUC.Update(c.Request.Context(), id, form.draft(avatar))
	if err != nil {
		render.Page(c, render.StatusOf(err), "user_form.tmpl", gin.H{
			"Form":   form,
			"ID":     id,
			"Roles":  []domain.Role{domain.RoleUser, domain.RoleAdmin, domain.RoleHR},
			"Notice": render.FailNotice(err),
		})
		return
	}
	render.Page(c, http.StatusOK, "users.tmpl",
		h.usersPage(users, readUserFilters(c), &render.Notice{Kind: "success", Message: "User updated"}))
}

func (h *UserHandler) ConfirmDelete(c *gin.Context) {
	user, err := h.userUC.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	render.Page(c, http.StatusOK, "confirm.tmpl", gin.H{
		"Title":  "Delete user",
		"Name":   user.UserName,
		"Action": "/dashboard/users/" + user.ID + "/delete",
		"Back":   "/dashboard/users",
	})
}

func (h *UserHandler) Delete(c *gin.Context) {
	f := readUserFilters(c)
	users, err := h.userUC.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		current, listErr := h.userUC.List(c.Request.Context())
		if listErr != nil {
			current = nil
		}
		render.Page(c, http.StatusOK, "users.tmpl", h.usersPage(current, f, render.FailNotice(err)))
		return
	}
	render.Page(c, http.StatusOK, "users.tmpl",
		h.usersPage(users, f, &render.Notice{Kind: "success", Message: "User deleted"}))
}

func (h *UserHandler) BulkDelete(c *gin.Context) {
	f := readUserFilters(c)
	selection := listview.NewSelection(c.PostFormArray("ids")...)

	users, err := h.userUC.List(c.Request.Context())
	if err != nil {
		render.Page(c, http.StatusOK, "users.tmpl", h.usersPage(nil, f, render.FailNotice(err)))
		return
	}

	ids := listview.Resolve(selection, applyUserFilters(users, f), func(u domain.User) string { return u.ID })
	refreshed, err := h.userUC.BulkDelete(c.Request.Context(), ids)
	if err != nil {
		render.Page(c, render.StatusOf(err), "users.tmpl", h.usersPage(users, f, render.FailNotice(err)))
		return
	}
	render.Page(c, http.StatusOK, "users.tmpl",
		h.usersPage(refreshed, f, &render.Notice{Kind: "success", Message: strconv.Itoa(len(ids)) + " users deleted"}))
}
