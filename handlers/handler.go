// Package handlers renders the console pages. Every page follows the same
// shape: load the session, call the core API with its token, derive any view
// state locally, render. Mutations are form posts that call the core API and
// redirect back, so the page re-fetches fresh state instead of patching it.
package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lifekitadmin/api"
	"lifekitadmin/middleware"
	"lifekitadmin/services/storage"
	"lifekitadmin/session"
	"lifekitadmin/utils"
)

// Handler carries the dependencies every page shares.
type Handler struct {
	api      *api.Client
	sessions session.Store
	// cloud is non-nil only when uploads are configured to bypass the core
	// API and go straight to Cloudinary.
	cloud storage.Uploader
}

// New creates the page handler set. cloud may be nil.
func New(apiClient *api.Client, sessions session.Store, cloud storage.Uploader) *Handler {
	return &Handler{api: apiClient, sessions: sessions, cloud: cloud}
}

// sess returns the session loaded by the middleware. Routes behind
// RequireAdmin always have one.
func (h *Handler) sess(c *gin.Context) *session.Data {
	return middleware.SessionData(c)
}

// client returns an API client authenticated as the current administrator.
func (h *Handler) client(c *gin.Context) *api.Client {
	data := h.sess(c)
	if data == nil {
		return h.api
	}
	return h.api.WithToken(data.AccessToken)
}

// uploader picks the configured upload backend for this request.
func (h *Handler) uploader(c *gin.Context) storage.Uploader {
	if h.cloud != nil {
		return h.cloud
	}
	return storage.NewBackendUploader(h.client(c))
}

// render draws a page template with the ambient view state every page shows:
// the signed-in profile, the active nav item and any pending flash notice.
func (h *Handler) render(c *gin.Context, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if sess := h.sess(c); sess != nil {
		data["Profile"] = sess.Profile
	}
	data["Active"] = c.FullPath()
	if flash := utils.TakeFlash(c); flash != "" {
		data["Flash"] = flash
	}
	c.HTML(http.StatusOK, name, data)
}

// fail handles a core API error uniformly: an unauthorized reply destroys the
// session and returns the browser to login no matter which page triggered it;
// anything else becomes a flash notice on the page the user came from.
func (h *Handler) fail(c *gin.Context, err error, backTo string) {
	if errors.Is(err, api.ErrUnauthorized) {
		h.logout(c)
		return
	}

	zap.L().Error("Core API request failed", zap.String("page", c.FullPath()), zap.Error(err))
	utils.SetFlash(c, errMessage(err))
	c.Redirect(http.StatusSeeOther, backTo)
}

// failJSON is fail for the JSON endpoints: same unauthorized semantics, but
// the reply is a structured error instead of a redirect.
func (h *Handler) failJSON(c *gin.Context, err error) {
	if errors.Is(err, api.ErrUnauthorized) {
		if derr := h.sessions.Destroy(c.Request.Context(), c.Writer, c.Request); derr != nil {
			zap.L().Error("Failed to destroy session", zap.Error(derr))
		}
		utils.JSONError(c, http.StatusUnauthorized, "Session expired", "Log in again.")
		return
	}
	zap.L().Error("Core API request failed", zap.String("page", c.FullPath()), zap.Error(err))
	utils.JSONError(c, http.StatusBadGateway, "Upstream request failed", errMessage(err))
}

// flashBack sets a notice and redirects without treating it as an API error.
func (h *Handler) flashBack(c *gin.Context, message, backTo string) {
	utils.SetFlash(c, message)
	c.Redirect(http.StatusSeeOther, backTo)
}

// logout destroys the session and redirects to the login page.
func (h *Handler) logout(c *gin.Context) {
	if err := h.sessions.Destroy(c.Request.Context(), c.Writer, c.Request); err != nil {
		zap.L().Error("Failed to destroy session", zap.Error(err))
	}
	c.Redirect(http.StatusSeeOther, "/login")
}

// errMessage extracts the backend's own message when there is one.
func errMessage(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return "Something went wrong. Please try again."
}

// shortRef renders the short reference shown in queue and transaction tables.
func shortRef(id string) string {
	ref := strings.ToUpper(strings.ReplaceAll(id, "-", ""))
	if len(ref) > 8 {
		ref = ref[:8]
	}
	return utils.ServiceRefPrefix + "-" + ref
}
