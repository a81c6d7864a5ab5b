package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// SessionCookie identifies a visitor's flash queue.
	SessionCookie = "rockethub_session"

	ctxKeySessionID = "session_id"
)

// Session makes sure every visitor carries a session cookie and exposes its
// id to handlers through GetSessionID.
func Session(secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(SessionCookie)
		if err != nil || uuid.Validate(sid) != nil {
			sid = uuid.NewString()
			http.SetCookie(c.Writer, &http.Cookie{
				Name:     SessionCookie,
				Value:    sid,
				Path:     "/",
				HttpOnly: true,
				Secure:   secure,
				SameSite: http.SameSiteLaxMode,
			})
		}
		c.Set(ctxKeySessionID, sid)
		c.Next()
	}
}

// GetSessionID returns the id set by Session, or "" when the middleware
// did not run.
func GetSessionID(c *gin.Context) string {
	return c.GetString(ctxKeySessionID)
}
