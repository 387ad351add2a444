package handlers

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lifekitadmin/api"
	"lifekitadmin/models"
	"lifekitadmin/services/categories"
	"lifekitadmin/services/storage"
)

// Settings tabs.
const (
	TabProfile    = "profile"
	TabAdmins     = "admins"
	TabCategories = "categories"
)

func settingsTab(raw string) string {
	switch raw {
	case TabAdmins, TabCategories:
		return raw
	default:
		return TabProfile
	}
}

// Settings renders the settings page. Only the open tab's data is fetched:
// the profile tab reads the cached session profile, the admins tab lists
// administrative accounts, and the categories tab shows the navigator at
// root level or inside the parent named in the query.
func (h *Handler) Settings(c *gin.Context) {
	tab := settingsTab(c.Query("tab"))
	data := gin.H{"Tab": tab}

	switch tab {
	case TabProfile:
		// The form prefills from a fresh fetch so edits made elsewhere show
		// up; the cached session profile only drives the header.
		profile, err := h.client(c).Profile(c.Request.Context())
		if err != nil {
			h.fail(c, err, "/")
			return
		}
		data["Form"] = profile

	case TabAdmins:
		admins, err := h.client(c).Admins(c.Request.Context())
		if err != nil {
			h.fail(c, err, "/")
			return
		}
		data["Admins"] = admins

	case TabCategories:
		all, err := h.client(c).Categories(c.Request.Context())
		if err != nil {
			h.fail(c, err, "/")
			return
		}
		parentID := c.Query("parent")
		if parentID != "" {
			parent, ok := categories.Find(all, parentID)
			if !ok {
				// Stale link, e.g. the parent was deleted in another tab.
				c.Redirect(http.StatusSeeOther, "/settings?tab=categories")
				return
			}
			data["Parent"] = parent
			data["Categories"] = categories.ChildrenOf(all, parentID)
		} else {
			data["Categories"] = categories.Roots(all)
		}
	}

	h.render(c, "settings.html", data)
}

// SaveProfile persists profile edits. A new avatar is uploaded first so the
// saved profile references the stored URL; the cached session profile is then
// refreshed so the header reflects the change immediately.
func (h *Handler) SaveProfile(c *gin.Context) {
	sess := h.sess(c)

	update := api.ProfileUpdate{
		FullName:          strings.TrimSpace(c.PostForm("full_name")),
		JobTitle:          strings.TrimSpace(c.PostForm("job_title")),
		Bio:               strings.TrimSpace(c.PostForm("bio")),
		ProfilePictureURL: sess.Profile.ProfilePictureURL,
	}
	if update.FullName == "" {
		h.flashBack(c, "Full name is required.", "/settings")
		return
	}

	if avatarURL, err := h.formUpload(c, storage.BucketAvatars); err != nil {
		h.fail(c, err, "/settings")
		return
	} else if avatarURL != "" {
		update.ProfilePictureURL = avatarURL
	}

	if err := h.client(c).UpdateProfile(c.Request.Context(), update); err != nil {
		h.fail(c, err, "/settings")
		return
	}

	sess.Profile.FullName = update.FullName
	sess.Profile.JobTitle = update.JobTitle
	sess.Profile.Bio = update.Bio
	sess.Profile.ProfilePictureURL = update.ProfilePictureURL
	if err := h.sessions.Update(c.Request.Context(), c.Request, sess); err != nil {
		zap.L().Error("Failed to refresh cached profile", zap.Error(err))
	}

	h.flashBack(c, "Profile saved.", "/settings")
}

// InviteAdmin creates a new administrative account.
func (h *Handler) InviteAdmin(c *gin.Context) {
	backTo := "/settings?tab=admins"
	invite := models.AdminInvite{
		Email:    strings.TrimSpace(c.PostForm("email")),
		Password: c.PostForm("password"),
		FullName: strings.TrimSpace(c.PostForm("full_name")),
	}
	if invite.Email == "" || invite.Password == "" || invite.FullName == "" {
		h.flashBack(c, "Email, password and full name are required.", backTo)
		return
	}

	if err := h.client(c).InviteAdmin(c.Request.Context(), invite); err != nil {
		h.fail(c, err, backTo)
		return
	}
	c.Redirect(http.StatusSeeOther, backTo)
}

// RemoveAdmin deletes an administrative account. Removing yourself is
// refused; log out instead.
func (h *Handler) RemoveAdmin(c *gin.Context) {
	backTo := "/settings?tab=admins"
	id := c.Param("id")
	if id == h.sess(c).Profile.ID {
		h.flashBack(c, "You cannot remove your own account.", backTo)
		return
	}

	if err := h.client(c).RemoveAdmin(c.Request.Context(), id); err != nil {
		h.fail(c, err, backTo)
		return
	}
	c.Redirect(http.StatusSeeOther, backTo)
}

// CreateCategory adds a category. When the navigator has a parent open the
// new category is attached beneath it, otherwise it becomes a root.
func (h *Handler) CreateCategory(c *gin.Context) {
	parentID := strings.TrimSpace(c.PostForm("parent_id"))
	backTo := categoriesLocation(parentID)

	draft := models.CategoryDraft{
		Name:        strings.TrimSpace(c.PostForm("name")),
		Description: strings.TrimSpace(c.PostForm("description")),
		ParentID:    parentID,
	}
	if draft.Name == "" {
		h.flashBack(c, "Category name is required.", backTo)
		return
	}

	if err := h.client(c).CreateCategory(c.Request.Context(), draft); err != nil {
		h.fail(c, err, backTo)
		return
	}
	c.Redirect(http.StatusSeeOther, backTo)
}

// DeleteCategory removes a category in a single call; the core API
// cascade-deletes any sub-categories.
func (h *Handler) DeleteCategory(c *gin.Context) {
	backTo := categoriesLocation(strings.TrimSpace(c.PostForm("parent_id")))

	if err := h.client(c).DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err, backTo)
		return
	}
	c.Redirect(http.StatusSeeOther, backTo)
}

// categoriesLocation returns the navigator URL for the given level.
func categoriesLocation(parentID string) string {
	loc := "/settings?tab=categories"
	if parentID != "" {
		loc += "&parent=" + url.QueryEscape(parentID)
	}
	return loc
}
