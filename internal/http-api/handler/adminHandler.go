package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"rockethub/internal/http-api/dto"
	"rockethub/internal/http-api/models"
	"rockethub/internal/http-api/service"
)

// AdminHandler is the operator JSON API: filtered record listings and deletes.
type AdminHandler struct {
	rockets     service.RocketService
	cosmodromes service.CosmodromeService
	launches    service.LaunchService
	log         *zap.Logger
	timeout     time.Duration
}

func NewAdminHandler(rockets service.RocketService, cosmodromes service.CosmodromeService, launches service.LaunchService, log *zap.Logger, timeout time.Duration) *AdminHandler {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &AdminHandler{rockets: rockets, cosmodromes: cosmodromes, launches: launches, log: log, timeout: timeout}
}

func (h *AdminHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/rockets", h.ListRockets)
	rg.DELETE("/rockets/:id", h.DeleteRocket)
	rg.GET("/cosmodromes", h.ListCosmodromes)
	rg.DELETE("/cosmodromes/:id", h.DeleteCosmodrome)
	rg.GET("/launches", h.ListLaunches)
	rg.DELETE("/launches/:id", h.DeleteLaunch)
}

func (h *AdminHandler) ListRockets(c *gin.Context) {
	var q dto.AdminRocketQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	list, err := h.rockets.Find(ctx, q.Filter())
	if err != nil {
		h.internalError(c, err)
		return
	}
	if list == nil {
		list = []models.Rocket{}
	}
	c.JSON(http.StatusOK, gin.H{"data": list, "total": len(list)})
}

func (h *AdminHandler) ListCosmodromes(c *gin.Context) {
	var q dto.AdminCosmodromeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	list, err := h.cosmodromes.Find(ctx, q.Filter())
	if err != nil {
		h.internalError(c, err)
		return
	}
	if list == nil {
		list = []models.Cosmodrome{}
	}
	c.JSON(http.StatusOK, gin.H{"data": list, "total": len(list)})
}

func (h *AdminHandler) ListLaunches(c *gin.Context) {
	var q dto.AdminLaunchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	list, err := h.launches.Find(ctx, q.Filter())
	if err != nil {
		h.internalError(c, err)
		return
	}
	resp := make([]dto.LaunchResponse, 0, len(list))
	for _, l := range list {
		resp = append(resp, dto.FromModelToLaunchResponse(l))
	}
	c.JSON(http.StatusOK, gin.H{"data": resp, "total": len(resp)})
}

func (h *AdminHandler) DeleteRocket(c *gin.Context) {
	h.delete(c, "rocket", h.rockets.Delete)
}

func (h *AdminHandler) DeleteCosmodrome(c *gin.Context) {
	h.delete(c, "cosmodrome", h.cosmodromes.Delete)
}

func (h *AdminHandler) DeleteLaunch(c *gin.Context) {
	h.delete(c, "launch", h.launches.Delete)
}

func (h *AdminHandler) delete(c *gin.Context, kind string, del func(context.Context, int64) error) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + kind + " id"})
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	if err := del(ctx, id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": kind + " not found"})
			return
		}
		h.internalError(c, err)
		return
	}
	h.log.Info("admin delete", zap.String("kind", kind), zap.Int64("id", id))
	c.Status(http.StatusNoContent)
}

func (h *AdminHandler) internalError(c *gin.Context, err error) {
	_ = c.Error(err)
	h.log.Error("admin api request failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
