package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rockethub/internal/http-api/dto"
	"rockethub/internal/http-api/models"
	"rockethub/internal/http-api/service"
)

// HomeHandler serves the dashboard and the global search page.
type HomeHandler struct {
	*View
	dashboard service.DashboardService
	search    service.SearchService
}

func NewHomeHandler(v *View, dashboard service.DashboardService, search service.SearchService) *HomeHandler {
	return &HomeHandler{View: v, dashboard: dashboard, search: search}
}

func (h *HomeHandler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/", h.Dashboard)
	r.GET("/search/", h.Search)
}

func (h *HomeHandler) Dashboard(c *gin.Context) {
	ctx, cancel := h.context(c)
	defer cancel()

	d, err := h.dashboard.Stats(ctx)
	if err != nil {
		h.serverError(c, err)
		return
	}
	h.page(c, http.StatusOK, "home.html", gin.H{
		"title":             "Rocket hub",
		"rockets_count":     d.TotalRockets,
		"cosmodromes_count": d.TotalCosmodromes,
		"launches_count":    d.TotalLaunches,
		"status_counts":     d.StatusCounts,
		"success_count":     d.Count(models.LaunchStatusSuccess),
		"planned_count":     d.Count(models.LaunchStatusPlanned),
		"failure_count":     d.Count(models.LaunchStatusFailure),
		"partial_count":     d.Count(models.LaunchStatusPartial),
		"recent_launches":   d.RecentLaunches,
	})
}

func (h *HomeHandler) Search(c *gin.Context) {
	ctx, cancel := h.context(c)
	defer cancel()

	var q dto.SearchQuery
	_ = c.ShouldBindQuery(&q)

	res, err := h.search.Search(ctx, q.Normalized())
	if err != nil {
		h.serverError(c, err)
		return
	}
	h.page(c, http.StatusOK, "search.html", gin.H{
		"title":       "Search",
		"query":       res.Query,
		"rockets":     res.Rockets,
		"cosmodromes": res.Cosmodromes,
		"launches":    res.Launches,
		"total":       res.Total(),
	})
}
