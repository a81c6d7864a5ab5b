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

type RocketHandler struct {
	*View
	svc service.RocketService
}

func NewRocketHandler(v *View, svc service.RocketService) *RocketHandler {
	return &RocketHandler{View: v, svc: svc}
}

func (h *RocketHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/", h.List)
	rg.GET("/add/", h.CreateForm)
	rg.POST("/add/", h.Create)
	rg.GET("/:id/", h.Detail)
	rg.GET("/:id/edit/", h.EditForm)
	rg.POST("/:id/edit/", h.Update)
	rg.GET("/:id/delete/", h.ConfirmDelete)
	rg.POST("/:id/delete/", h.Delete)
}

func rocketURL(id int64) string {
	return fmt.Sprintf("/rockets/%d/", id)
}

func (h *RocketHandler) List(c *gin.Context) {
	ctx, cancel := h.context(c)
	defer cancel()

	var q dto.ListQuery
	_ = c.ShouldBindQuery(&q)
	sort, order := q.Resolve(dto.RocketSort)

	rockets, err := h.svc.List(ctx, sort, order == dto.OrderDesc)
	if err != nil {
		h.serverError(c, err)
		return
	}
	h.page(c, http.StatusOK, "rocket_list.html", gin.H{
		"title":         "Rockets",
		"rockets":       rockets,
		"current_sort":  sort,
		"current_order": order,
	})
}

func (h *RocketHandler) Detail(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.NotFound(c)
		return
	}
	ctx, cancel := h.context(c)
	defer cancel()

	d, err := h.svc.Detail(ctx, id)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.page(c, http.StatusOK, "rocket_detail.html", gin.H{
		"title":    d.Rocket.Name,
		"rocket":   d.Rocket,
		"launches": d.Launches,
	})
}

func (h *RocketHandler) CreateForm(c *gin.Context) {
	h.renderForm(c, dto.NewRocketForm(), nil, nil)
}

func (h *RocketHandler) Create(c *gin.Context) {
	var form dto.RocketForm
	errs := dto.Bind(c, &form)
	r, cleanErrs := form.Clean()
	if errs.Merge(cleanErrs); len(errs) > 0 {
		h.renderForm(c, form, errs, nil)
		return
	}

	ctx, cancel := h.context(c)
	defer cancel()
	if err := h.svc.Create(ctx, &r); err != nil {
		h.writeFailed(c, form, nil, err)
		return
	}
	h.success(c, "Rocket \"%s\" was added successfully.", r.Name)
	h.redirect(c, rocketURL(r.ID))
}

func (h *RocketHandler) EditForm(c *gin.Context) {
	r, ok := h.load(c)
	if !ok {
		return
	}
	h.renderForm(c, dto.RocketFormFromModel(*r), nil, r)
}

func (h *RocketHandler) Update(c *gin.Context) {
	existing, ok := h.load(c)
	if !ok {
		return
	}

	var form dto.RocketForm
	errs := dto.Bind(c, &form)
	r, cleanErrs := form.Clean()
	if errs.Merge(cleanErrs); len(errs) > 0 {
		h.renderForm(c, form, errs, existing)
		return
	}

	ctx, cancel := h.context(c)
	defer cancel()
	if err := h.svc.Update(ctx, existing.ID, &r); err != nil {
		h.writeFailed(c, form, existing, err)
		return
	}
	h.success(c, "Rocket \"%s\" was updated successfully.", r.Name)
	h.redirect(c, rocketURL(existing.ID))
}

func (h *RocketHandler) ConfirmDelete(c *gin.Context) {
	r, ok := h.load(c)
	if !ok {
		return
	}
	h.page(c, http.StatusOK, "rocket_confirm_delete.html", gin.H{
		"title":  "Delete " + r.Name,
		"rocket": r,
	})
}

// Delete removes the rocket and, through the FK cascade, its launches.
func (h *RocketHandler) Delete(c *gin.Context) {
	r, ok := h.load(c)
	if !ok {
		return
	}
	ctx, cancel := h.context(c)
	defer cancel()
	if err := h.svc.Delete(ctx, r.ID); err != nil {
		h.fail(c, err)
		return
	}
	h.success(c, "Rocket \"%s\" was deleted successfully.", r.Name)
	h.redirect(c, "/rockets/")
}

// load fetches the rocket named by :id, rendering 404/500 itself on failure.
func (h *RocketHandler) load(c *gin.Context) (*models.Rocket, bool) {
	id, ok := parseID(c)
	if !ok {
		h.NotFound(c)
		return nil, false
	}
	ctx, cancel := h.context(c)
	defer cancel()
	r, err := h.svc.GetByID(ctx, id)
	if err != nil {
		h.fail(c, err)
		return nil, false
	}
	return r, true
}

func (h *RocketHandler) writeFailed(c *gin.Context, form dto.RocketForm, existing *models.Rocket, err error) {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		h.renderForm(c, form, verr.Fields, existing)
		return
	}
	h.fail(c, err)
}

// renderForm shows the create form when rocket is nil, the edit form otherwise.
func (h *RocketHandler) renderForm(c *gin.Context, form dto.RocketForm, errs dto.FieldErrors, rocket *models.Rocket) {
	title := "Add rocket"
	if rocket != nil {
		title = "Edit " + rocket.Name
	}
	if errs == nil {
		errs = dto.FieldErrors{}
	}
	h.formPage(c, "rocket_form.html", gin.H{
		"title":        title,
		"form":         form,
		"errors":       errs,
		"rocket":       rocket,
		"rocket_types": models.RocketTypes,
		"statuses":     models.RocketStatuses,
	}, len(errs) > 0)
}
