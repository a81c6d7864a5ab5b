package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"rockethub/internal/http-api/middleware"
	"rockethub/internal/http-api/service"
	"rockethub/internal/session"
)

// MsgCorrectErrors heads a form that failed validation.
const MsgCorrectErrors = "Please correct the errors below."

// Renderer turns a template name and its data into a response.
type Renderer interface {
	HTML(c *gin.Context, status int, name string, data gin.H)
}

// GinRenderer renders through the engine's HTML template set.
type GinRenderer struct{}

func (GinRenderer) HTML(c *gin.Context, status int, name string, data gin.H) {
	c.HTML(status, name, data)
}

// View bundles what every page handler needs: rendering, flash messages,
// logging and the per-request timeout.
type View struct {
	render  Renderer
	flashes session.FlashStore
	log     *zap.Logger
	timeout time.Duration
}

func NewView(render Renderer, flashes session.FlashStore, log *zap.Logger, timeout time.Duration) *View {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &View{render: render, flashes: flashes, log: log, timeout: timeout}
}

func (v *View) context(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), v.timeout)
}

// page renders name with the visitor's pending flash messages attached.
func (v *View) page(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["messages"] = v.popFlashes(c)
	v.render.HTML(c, status, name, data)
}

// formPage renders a form. A form with errors gets an error message on top of
// the pending flashes.
func (v *View) formPage(c *gin.Context, name string, data gin.H, invalid bool) {
	msgs := v.popFlashes(c)
	if invalid {
		msgs = append(msgs, session.Flash{Level: session.LevelError, Text: MsgCorrectErrors})
	}
	data["messages"] = msgs
	v.render.HTML(c, http.StatusOK, name, data)
}

func (v *View) popFlashes(c *gin.Context) []session.Flash {
	sid := middleware.GetSessionID(c)
	if sid == "" {
		return nil
	}
	msgs, err := v.flashes.Pop(c.Request.Context(), sid)
	if err != nil {
		v.log.Warn("pop flash messages", zap.Error(err))
		return nil
	}
	return msgs
}

// success queues a flash for the next page. Failing to store it never fails
// the request: the write already happened.
func (v *View) success(c *gin.Context, format string, args ...any) {
	sid := middleware.GetSessionID(c)
	if sid == "" {
		return
	}
	f := session.Flash{Level: session.LevelSuccess, Text: fmt.Sprintf(format, args...)}
	if err := v.flashes.Push(c.Request.Context(), sid, f); err != nil {
		v.log.Warn("push flash message", zap.Error(err))
	}
}

func (v *View) redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusSeeOther, location)
}

// NotFound renders the 404 page. Also used as the engine's NoRoute handler.
func (v *View) NotFound(c *gin.Context) {
	v.page(c, http.StatusNotFound, "404.html", gin.H{"title": "Page not found"})
}

func (v *View) serverError(c *gin.Context, err error) {
	_ = c.Error(err)
	v.log.Error("request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	v.render.HTML(c, http.StatusInternalServerError, "500.html", gin.H{"title": "Server error"})
}

// fail maps a service error to the 404 or 500 page.
func (v *View) fail(c *gin.Context, err error) {
	if errors.Is(err, service.ErrNotFound) {
		v.NotFound(c)
		return
	}
	v.serverError(c, err)
}

// parseID reads the :id path parameter. Ids that are not positive integers
// can never name a record.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
