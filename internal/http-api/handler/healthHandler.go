package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger is anything the health check can probe.
type Pinger func(ctx context.Context) error

// CheckConn reports 200 when every dependency answers, 503 otherwise.
func CheckConn(deps map[string]Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		status := http.StatusOK
		checks := gin.H{}
		for name, ping := range deps {
			if err := ping(ctx); err != nil {
				checks[name] = err.Error()
				status = http.StatusServiceUnavailable
				continue
			}
			checks[name] = "ok"
		}

		message := "API is alive and dependencies are reachable"
		if status != http.StatusOK {
			message = "API is alive but a dependency is unreachable"
		}
		c.JSON(status, gin.H{"message": message, "checks": checks})
	}
}
