// Package router assembles the gin engine: middleware, page routes and the
// admin JSON API.
package router

import (
	"html/template"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"rockethub/internal/http-api/handler"
	"rockethub/internal/http-api/middleware"
	"rockethub/internal/http-api/service"
	"rockethub/internal/session"
)

type Services struct {
	Rockets     service.RocketService
	Cosmodromes service.CosmodromeService
	Launches    service.LaunchService
	Search      service.SearchService
	Dashboard   service.DashboardService
}

type Options struct {
	Templates      *template.Template
	Renderer       handler.Renderer // defaults to handler.GinRenderer
	Flashes        session.FlashStore
	Logger         *zap.Logger
	RequestTimeout time.Duration
	CORSOrigins    []string
	RateLimiter    *middleware.RateLimiter // nil disables limiting
	SecureCookies  bool
	Health         map[string]handler.Pinger
	LogLevel       http.Handler // zap.AtomicLevel; nil leaves /admin/api/log-level unmounted
}

func New(svc Services, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestLogger(opts.Logger))
	r.Use(middleware.Recovery(opts.Logger))
	if opts.Templates != nil {
		r.SetHTMLTemplate(opts.Templates)
	}
	if opts.RateLimiter != nil {
		r.Use(middleware.LimitMutations(opts.RateLimiter))
	}

	health := opts.Health
	if health == nil {
		health = map[string]handler.Pinger{}
	}
	r.GET("/check-conn", handler.CheckConn(health))

	renderer := opts.Renderer
	if renderer == nil {
		renderer = handler.GinRenderer{}
	}
	view := handler.NewView(renderer, opts.Flashes, opts.Logger, opts.RequestTimeout)

	pages := r.Group("/", middleware.Session(opts.SecureCookies))
	{
		handler.NewHomeHandler(view, svc.Dashboard, svc.Search).RegisterRoutes(pages)
		handler.NewRocketHandler(view, svc.Rockets).RegisterRoutes(pages.Group("/rockets"))
		handler.NewCosmodromeHandler(view, svc.Cosmodromes).RegisterRoutes(pages.Group("/cosmodromes"))
		handler.NewLaunchHandler(view, svc.Launches).RegisterRoutes(pages.Group("/launches"))
	}

	admin := r.Group("/admin/api")
	if len(opts.CORSOrigins) > 0 {
		admin.Use(cors.New(cors.Config{
			AllowOrigins:  opts.CORSOrigins,
			AllowMethods:  []string{"GET", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
			ExposeHeaders: []string{"Content-Length"},
			MaxAge:        12 * time.Hour,
		}))
		// preflights only reach group middleware through a matching route
		admin.OPTIONS("/*path", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	}
	handler.NewAdminHandler(svc.Rockets, svc.Cosmodromes, svc.Launches, opts.Logger, opts.RequestTimeout).
		RegisterRoutes(admin)
	if opts.LogLevel != nil {
		admin.GET("/log-level", gin.WrapH(opts.LogLevel))
		admin.PUT("/log-level", gin.WrapH(opts.LogLevel))
	}

	r.NoRoute(middleware.Session(opts.SecureCookies), view.NotFound)
	return r
}
