package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"lifekitadmin/models"
	"lifekitadmin/utils"
)

// queueRow is one moderation-queue entry prepared for display.
type queueRow struct {
	Service  models.ServiceListing
	Ref      string
	Provider string
	Category string
	Image    string
}

// Dashboard renders the landing page: headline stats plus the pending slice
// of the moderation queue. Both fetches run concurrently; the page renders
// only when both have answered.
func (h *Handler) Dashboard(c *gin.Context) {
	client := h.client(c)
	ctx := c.Request.Context()

	var (
		stats    *models.Stats
		queue    []models.ServiceListing
		statsErr error
		queueErr error
	)
	done := make(chan struct{}, 2)
	go func() {
		stats, statsErr = client.Stats(ctx)
		done <- struct{}{}
	}()
	go func() {
		queue, queueErr = client.ServicesQueue(ctx)
		done <- struct{}{}
	}()
	<-done
	<-done

	if statsErr != nil {
		h.fail(c, statsErr, "/login")
		return
	}
	if queueErr != nil {
		h.fail(c, queueErr, "/login")
		return
	}

	pending := make([]queueRow, 0, len(queue))
	for _, svc := range queue {
		if svc.Status != models.ServicePending {
			continue
		}
		pending = append(pending, newQueueRow(svc))
	}

	data := gin.H{
		"Greeting": greeting(time.Now()),
		"Stats":    stats,
		"Pending":  pending,
	}
	// The review panel opens on the service named in the query, mirroring
	// a row click.
	if selected := c.Query("selected"); selected != "" {
		for _, row := range pending {
			if row.Service.ID == selected {
				data["Selected"] = row
				break
			}
		}
	}

	h.render(c, "dashboard.html", data)
}

// ReviewService approves or rejects a pending listing, then returns to the
// page the form was posted from so it re-fetches the queue.
func (h *Handler) ReviewService(c *gin.Context) {
	backTo := backLocation(c, "/")
	id := c.Param("id")

	var review models.ServiceReview
	switch c.PostForm("action") {
	case "approve":
		review.Status = models.ServiceActive
	case "reject":
		reason := strings.TrimSpace(c.PostForm("reason"))
		if reason == "" {
			h.flashBack(c, "A rejection reason is required.", backTo)
			return
		}
		review.Status = models.ServiceRejected
		review.Reason = reason
	default:
		h.flashBack(c, "Unknown review action.", backTo)
		return
	}

	if err := h.client(c).ReviewService(c.Request.Context(), id, review); err != nil {
		h.fail(c, err, backTo)
		return
	}
	c.Redirect(http.StatusSeeOther, backTo)
}

func newQueueRow(svc models.ServiceListing) queueRow {
	image := svc.FirstImage()
	if image == "" {
		image = utils.PlaceholderImageURL
	}
	return queueRow{
		Service:  svc,
		Ref:      shortRef(svc.ID),
		Provider: svc.ProviderName(),
		Category: svc.CategoryName(),
		Image:    image,
	}
}

func greeting(now time.Time) string {
	switch hour := now.Hour(); {
	case hour < 12:
		return "Good Morning"
	case hour < 17:
		return "Good Afternoon"
	default:
		return "Good Evening"
	}
}

// backLocation resolves where a mutation should return to, defaulting when
// the form carries no origin.
func backLocation(c *gin.Context, fallback string) string {
	if back := c.PostForm("back"); strings.HasPrefix(back, "/") {
		return back
	}
	return fallback
}
