package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"lifekitadmin/models"
	"lifekitadmin/services/storage"
)

// Feeds renders the social feed, newest first as the core API returns it.
func (h *Handler) Feeds(c *gin.Context) {
	posts, err := h.client(c).FeedPosts(c.Request.Context())
	if err != nil {
		h.fail(c, err, "/")
		return
	}
	h.render(c, "feeds.html", gin.H{"Posts": posts})
}

// CreateFeedPost publishes a post, uploading the optional image first so the
// post references the stored URL.
func (h *Handler) CreateFeedPost(c *gin.Context) {
	content := strings.TrimSpace(c.PostForm("content"))
	if content == "" {
		h.flashBack(c, "Post content is required.", "/feeds")
		return
	}

	imageURL, err := h.formUpload(c, storage.BucketFeeds)
	if err != nil {
		h.fail(c, err, "/feeds")
		return
	}

	draft := models.FeedDraft{Content: content, ImageURL: imageURL}
	if err := h.client(c).CreateFeedPost(c.Request.Context(), draft); err != nil {
		h.fail(c, err, "/feeds")
		return
	}
	c.Redirect(http.StatusSeeOther, "/feeds")
}

// DeleteFeedPost removes a post from the feed.
func (h *Handler) DeleteFeedPost(c *gin.Context) {
	if err := h.client(c).DeleteFeedPost(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err, "/feeds")
		return
	}
	c.Redirect(http.StatusSeeOther, "/feeds")
}
