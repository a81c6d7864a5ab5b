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

type CosmodromeHandler struct {
	*View
	svc service.CosmodromeService
}

func NewCosmodromeHandler(v *View, svc service.CosmodromeService) *CosmodromeHandler {
	return &CosmodromeHandler{View: v, svc: svc}
}

func (h *CosmodromeHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/", h.List)
	rg.GET("/add/", h.CreateForm)
	rg.POST("/add/", h.Create)
	rg.GET("/:id/", h.Detail)
	rg.GET("/:id/edit/", h.EditForm)
	rg.POST("/:id/edit/", h.Update)
	rg.GET("/:id/delete/", h.ConfirmDelete)
	rg.POST("/:id/delete/", h.Delete)
}

func cosmodromeURL(id int64) string {
	return fmt.Sprintf("/cosmodromes/%d/", id)
}

func (h *CosmodromeHandler) List(c *gin.Context) {
	ctx, cancel := h.context(c)
	defer cancel()

	var q dto.ListQuery
	_ = c.ShouldBindQuery(&q)
	sort, order := q.Resolve(dto.CosmodromeSort)

	list, err := h.svc.List(ctx, sort, order == dto.OrderDesc)
	if err != nil {
		h.serverError(c, err)
		return
	}
	h.page(c, http.StatusOK, "cosmodrome_list.html", gin.H{
		"title":         "Cosmodromes",
		"cosmodromes":   list,
		"current_sort":  sort,
		"current_order": order,
	})
}

func (h *CosmodromeHandler) Detail(c *gin.Context) {
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
	h.page(c, http.StatusOK, "cosmodrome_detail.html", gin.H{
		"title":      d.Cosmodrome.Name,
		"cosmodrome": d.Cosmodrome,
		"launches":   d.Launches,
	})
}

func (h *CosmodromeHandler) CreateForm(c *gin.Context) {
	h.renderForm(c, dto.NewCosmodromeForm(), nil, nil)
}

func (h *CosmodromeHandler) Create(c *gin.Context) {
	var form dto.CosmodromeForm
	errs := dto.Bind(c, &form)
	m, cleanErrs := form.Clean()
	if errs.Merge(cleanErrs); len(errs) > 0 {
		h.renderForm(c, form, errs, nil)
		return
	}

	ctx, cancel := h.context(c)
	defer cancel()
	if err := h.svc.Create(ctx, &m); err != nil {
		h.writeFailed(c, form, nil, err)
		return
	}
	h.success(c, "Cosmodrome \"%s\" was added successfully.", m.Name)
	h.redirect(c, cosmodromeURL(m.ID))
}

func (h *CosmodromeHandler) EditForm(c *gin.Context) {
	m, ok := h.load(c)
	if !ok {
		return
	}
	h.renderForm(c, dto.CosmodromeFormFromModel(*m), nil, m)
}

func (h *CosmodromeHandler) Update(c *gin.Context) {
	existing, ok := h.load(c)
	if !ok {
		return
	}

	var form dto.CosmodromeForm
	errs := dto.Bind(c, &form)
	m, cleanErrs := form.Clean()
	if errs.Merge(cleanErrs); len(errs) > 0 {
		h.renderForm(c, form, errs, existing)
		return
	}

	ctx, cancel := h.context(c)
	defer cancel()
	if err := h.svc.Update(ctx, existing.ID, &m); err != nil {
		h.writeFailed(c, form, existing, err)
		return
	}
	h.success(c, "Cosmodrome \"%s\" was updated successfully.", m.Name)
	h.redirect(c, cosmodromeURL(existing.ID))
}

func (h *CosmodromeHandler) ConfirmDelete(c *gin.Context) {
	m, ok := h.load(c)
	if !ok {
		return
	}
	h.page(c, http.StatusOK, "cosmodrome_confirm_delete.html", gin.H{
		"title":      "Delete " + m.Name,
		"cosmodrome": m,
	})
}

func (h *CosmodromeHandler) Delete(c *gin.Context) {
	m, ok := h.load(c)
	if !ok {
		return
	}
	ctx, cancel := h.context(c)
	defer cancel()
	if err := h.svc.Delete(ctx, m.ID); err != nil {
		h.fail(c, err)
		return
	}
	h.success(c, "Cosmodrome \"%s\" was deleted successfully.", m.Name)
	h.redirect(c, "/cosmodromes/")
}

func (h *CosmodromeHandler) load(c *gin.Context) (*models.Cosmodrome, bool) {
	id, ok := parseID(c)
	if !ok {
		h.NotFound(c)
		return nil, false
	}
	ctx, cancel := h.context(c)
	defer cancel()
	m, err := h.svc.GetByID(ctx, id)
	if err != nil {
		h.fail(c, err)
		return nil, false
	}
	return m, true
}

func (h *CosmodromeHandler) writeFailed(c *gin.Context, form dto.CosmodromeForm, existing *models.Cosmodrome, err error) {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		h.renderForm(c, form, verr.Fields, existing)
		return
	}
	h.fail(c, err)
}

func (h *CosmodromeHandler) renderForm(c *gin.Context, form dto.CosmodromeForm, errs dto.FieldErrors, cosmodrome *models.Cosmodrome) {
	title := "Add cosmodrome"
	if cosmodrome != nil {
		title = "Edit " + cosmodrome.Name
	}
	if errs == nil {
		errs = dto.FieldErrors{}
	}
	h.formPage(c, "cosmodrome_form.html", gin.H{
		"title":      title,
		"form":       form,
		"errors":     errs,
		"cosmodrome": cosmodrome,
	}, len(errs) > 0)
}
