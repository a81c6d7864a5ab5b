package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"rockethub/internal/http-api/dto"
	"rockethub/internal/http-api/models"
	"rockethub/internal/http-api/service"
)

type LaunchHandler struct {
	*View
	svc service.LaunchService
}

func NewLaunchHandler(v *View, svc service.LaunchService) *LaunchHandler {
	return &LaunchHandler{View: v, svc: svc}
}

func (h *LaunchHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/", h.List)
	rg.GET("/add/", h.CreateForm)
	rg.POST("/add/", h.Create)
	rg.GET("/:id/", h.Detail)
	rg.GET("/:id/edit/", h.EditForm)
	rg.POST("/:id/edit/", h.Update)
	rg.GET("/:id/delete/", h.ConfirmDelete)
	rg.POST("/:id/delete/", h.Delete)
}

func launchURL(id int64) string {
	return fmt.Sprintf("/launches/%d/", id)
}

func (h *LaunchHandler) List(c *gin.Context) {
	ctx, cancel := h.context(c)
	defer cancel()

	var q dto.ListQuery
	_ = c.ShouldBindQuery(&q)
	sort, order := q.Resolve(dto.LaunchSort)

	launches, err := h.svc.List(ctx, sort, order == dto.OrderDesc)
	if err != nil {
		h.serverError(c, err)
		return
	}
	h.page(c, http.StatusOK, "launch_list.html", gin.H{
		"title":         "Launches",
		"launches":      launches,
		"current_sort":  sort,
		"current_order": order,
	})
}

func (h *LaunchHandler) Detail(c *gin.Context) {
	l, ok := h.load(c)
	if !ok {
		return
	}
	h.page(c, http.StatusOK, "launch_detail.html", gin.H{
		"title":  l.MissionName,
		"launch": l,
	})
}

func (h *LaunchHandler) CreateForm(c *gin.Context) {
	h.renderForm(c, dto.NewLaunchForm(), nil, nil)
}

func (h *LaunchHandler) Create(c *gin.Context) {
	var form dto.LaunchForm
	errs := dto.Bind(c, &form)
	l, cleanErrs := form.Clean()
	if errs.Merge(cleanErrs); len(errs) > 0 {
		h.renderForm(c, form, errs, nil)
		return
	}

	ctx, cancel := h.context(c)
	defer cancel()
	if err := h.svc.Create(ctx, &l); err != nil {
		h.writeFailed(c, form, nil, err)
		return
	}
	h.success(c, "Launch \"%s\" was added successfully.", l.MissionName)
	h.redirect(c, launchURL(l.ID))
}

func (h *LaunchHandler) EditForm(c *gin.Context) {
	l, ok := h.load(c)
	if !ok {
		return
	}
	h.renderForm(c, dto.LaunchFormFromModel(*l), nil, l)
}

func (h *LaunchHandler) Update(c *gin.Context) {
	existing, ok := h.load(c)
	if !ok {
		return
	}

	var form dto.LaunchForm
	errs := dto.Bind(c, &form)
	l, cleanErrs := form.Clean()
	if errs.Merge(cleanErrs); len(errs) > 0 {
		h.renderForm(c, form, errs, existing)
		return
	}

	ctx, cancel := h.context(c)
	defer cancel()
	if err := h.svc.Update(ctx, existing.ID, &l); err != nil {
		h.writeFailed(c, form, existing, err)
		return
	}
	h.success(c, "Launch \"%s\" was updated successfully.", l.MissionName)
	h.redirect(c, launchURL(existing.ID))
}

func (h *LaunchHandler) ConfirmDelete(c *gin.Context) {
	l, ok := h.load(c)
	if !ok {
		return
	}
	h.page(c, http.StatusOK, "launch_confirm_delete.html", gin.H{
		"title":  "Delete " + l.MissionName,
		"launch": l,
	})
}

func (h *LaunchHandler) Delete(c *gin.Context) {
	l, ok := h.load(c)
	if !ok {
		return
	}
	ctx, cancel := h.context(c)
	defer cancel()
	if err := h.svc.Delete(ctx, l.ID); err != nil {
		h.fail(c, err)
		return
	}
	h.success(c, "Launch \"%s\" was deleted successfully.", l.MissionName)
	h.redirect(c, "/launches/")
}

func (h *LaunchHandler) load(c *gin.Context) (*models.Launch, bool) {
	id, ok := parseID(c)
	if !ok {
		h.NotFound(c)
		return nil, false
	}
	ctx, cancel := h.context(c)
	defer cancel()
	l, err := h.svc.GetByID(ctx, id)
	if err != nil {
		h.fail(c, err)
		return nil, false
	}
	return l, true
}

func (h *LaunchHandler) writeFailed(c *gin.Context, form dto.LaunchForm, existing *models.Launch, err error) {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		h.renderForm(c, form, verr.Fields, existing)
		return
	}
	h.fail(c, err)
}

// renderForm also loads the rocket and cosmodrome choices for the selects.
func (h *LaunchHandler) renderForm(c *gin.Context, form dto.LaunchForm, errs dto.FieldErrors, launch *models.Launch) {
	ctx, cancel := h.context(c)
	defer cancel()
	choices, err := h.svc.Choices(ctx)
	if err != nil {
		h.serverError(c, err)
		return
	}

	title := "Add launch"
	if launch != nil {
		title = "Edit " + launch.MissionName
	}
	if errs == nil {
		errs = dto.FieldErrors{}
	}
	h.formPage(c, "launch_form.html", gin.H{
		"title":       title,
		"form":        form,
		"errors":      errs,
		"launch":      launch,
		"rockets":     choices.Rockets,
		"cosmodromes": choices.Cosmodromes,
		"statuses":    models.LaunchStatuses,
	}, len(errs) > 0)
}
