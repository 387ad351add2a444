package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lifekitadmin/api"
	"lifekitadmin/config"
	"lifekitadmin/models"
	"lifekitadmin/session"
	"lifekitadmin/utils"
)

const accessDeniedMessage = "Access Denied. Administrator privileges required."

// ShowLogin renders the login form. A browser that already holds an admin
// session is sent straight to the dashboard.
func (h *Handler) ShowLogin(c *gin.Context) {
	if data := h.sess(c); data != nil && data.Profile.IsAdmin() {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	h.render(c, "login.html", gin.H{})
}

// Login authenticates against the core API and opens a session. The backend
// authenticates any valid user; the administrator-role gate lives here, and a
// non-admin login leaves no session behind.
func (h *Handler) Login(c *gin.Context) {
	email := strings.TrimSpace(c.PostForm("email"))
	password := c.PostForm("password")
	if email == "" || password == "" {
		h.loginError(c, "Email and password are required.")
		return
	}

	result, err := h.api.Login(c.Request.Context(), api.Credentials{Email: email, Password: password})
	if err != nil {
		zap.L().Warn("Login failed", zap.String("email", email), zap.Error(err))
		h.loginError(c, errMessage(err))
		return
	}

	profile := mergeProfile(result)
	if !profile.IsAdmin() {
		zap.L().Warn("Non-admin login refused", zap.String("email", email))
		h.loginError(c, accessDeniedMessage)
		return
	}

	ttl := sessionTTL(result.AccessToken())
	data := &session.Data{AccessToken: result.AccessToken(), Profile: profile}
	if _, err := h.sessions.Create(c.Request.Context(), c.Writer, data, ttl); err != nil {
		zap.L().Error("Failed to create session", zap.Error(err))
		h.loginError(c, "Could not start a session. Please try again.")
		return
	}

	zap.L().Info("Administrator logged in", zap.String("email", email))
	c.Redirect(http.StatusSeeOther, "/")
}

// Logout destroys the session and returns to the login page.
func (h *Handler) Logout(c *gin.Context) {
	h.logout(c)
}

func (h *Handler) loginError(c *gin.Context, message string) {
	c.HTML(http.StatusOK, "login.html", gin.H{"Error": message})
}

// mergeProfile overlays the auth record's metadata onto the profile row.
// Some accounts carry their display name or picture only in the metadata.
func mergeProfile(result *api.LoginResult) models.AdminProfile {
	profile := result.Profile
	if profile.ID == "" {
		profile.ID = result.User.ID
	}
	if profile.Email == "" {
		profile.Email = result.User.Email
	}
	if meta := result.User.UserMetadata; meta != nil {
		if profile.FullName == "" {
			if v, ok := meta["full_name"].(string); ok {
				profile.FullName = v
			}
		}
		if profile.ProfilePictureURL == "" {
			if v, ok := meta["profile_picture_url"].(string); ok {
				profile.ProfilePictureURL = v
			}
		}
	}
	return profile
}

// sessionTTL sizes the session to the bearer token's own expiry when the
// token exposes one, falling back to the configured lifetime.
func sessionTTL(token string) time.Duration {
	if exp, ok := utils.TokenExpiry(token); ok {
		if ttl := time.Until(exp); ttl > 0 {
			return ttl
		}
	}
	hours := config.AppConfig.SessionTTLHours
	if hours <= 0 {
		return session.DefaultTTL
	}
	return time.Duration(hours) * time.Hour
}
