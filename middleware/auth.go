package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lifekitadmin/session"
)

// SessionKey is the gin context key the loaded session is stored under.
const SessionKey = "adminSession"

// LoadSession resolves the request's session cookie against the store and
// puts the payload on the context. Missing or expired sessions leave the key
// unset; gating happens in RequireAdmin.
func LoadSession(store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, err := store.Get(c.Request.Context(), c.Request)
		if err != nil {
			zap.L().Error("Failed to load session", zap.Error(err))
			c.Next()
			return
		}
		if data != nil {
			c.Set(SessionKey, data)
		}
		c.Next()
	}
}

// RequireSession redirects anonymous browsers to the login page.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if SessionData(c) == nil {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin redirects to the login page unless the context carries a
// session whose cached profile has the admin role. The core API enforces
// authorization on every call regardless; this gate only keeps anonymous
// browsers away from admin pages.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		data := SessionData(c)
		if data == nil || !data.Profile.IsAdmin() {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// SessionData returns the session loaded by LoadSession, or nil.
func SessionData(c *gin.Context) *session.Data {
	v, ok := c.Get(SessionKey)
	if !ok {
		return nil
	}
	data, ok := v.(*session.Data)
	if !ok {
		return nil
	}
	return data
}
