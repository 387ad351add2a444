package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"lifekitadmin/models"
	"lifekitadmin/services/listfilter"
	"lifekitadmin/services/storage"
	"lifekitadmin/utils"
)

// eventRow pairs an event with its parsed date and display state.
type eventRow struct {
	Event models.Event
	Date  time.Time
	State string
	Image string
}

// Events renders the event roster with local filter, search and sort.
func (h *Handler) Events(c *gin.Context) {
	events, err := h.client(c).Events(c.Request.Context())
	if err != nil {
		h.fail(c, err, "/")
		return
	}

	rows := make([]eventRow, 0, len(events))
	for _, e := range events {
		rows = append(rows, newEventRow(e))
	}

	status := c.Query("status")
	opts := listfilter.Options{
		Search:    c.Query("q"),
		PriceSort: c.Query("price"),
		DateSort:  c.Query("date"),
	}
	if status != "" && status != "All" {
		opts.Statuses = []string{status}
	}

	filtered := listfilter.Apply(rows, opts, func(r eventRow) listfilter.Fields {
		return listfilter.Fields{
			Status: r.State,
			Text:   []string{r.Event.Title, r.Event.Location},
			Price:  r.Event.Price,
			Date:   r.Date,
		}
	})

	data := gin.H{
		"Rows":      filtered,
		"Status":    status,
		"Search":    c.Query("q"),
		"PriceSort": opts.PriceSort,
		"DateSort":  opts.DateSort,
	}
	if selected := c.Query("selected"); selected != "" {
		for _, row := range rows {
			if row.Event.ID == selected {
				data["Selected"] = row
				break
			}
		}
	}

	h.render(c, "events.html", data)
}

// CreateEvent validates the form, uploads the image first, then creates the
// event referencing the URL the storage backend returned.
func (h *Handler) CreateEvent(c *gin.Context) {
	title := strings.TrimSpace(c.PostForm("title"))
	date := strings.TrimSpace(c.PostForm("event_date"))
	priceRaw := strings.TrimSpace(c.PostForm("price"))
	if title == "" || date == "" || priceRaw == "" {
		h.flashBack(c, "Title, date and price are required.", "/events")
		return
	}
	price, err := strconv.ParseFloat(priceRaw, 64)
	if err != nil || price < 0 {
		h.flashBack(c, "Price must be a non-negative number.", "/events")
		return
	}

	imageURL, err := h.formUpload(c, storage.BucketEvents)
	if err != nil {
		h.fail(c, err, "/events")
		return
	}

	draft := models.EventDraft{
		Title:       title,
		Description: strings.TrimSpace(c.PostForm("description")),
		ImageURL:    imageURL,
		EventDate:   date,
		EventTime:   strings.TrimSpace(c.PostForm("event_time")),
		Price:       price,
		Location:    strings.TrimSpace(c.PostForm("location")),
	}
	if err := h.client(c).CreateEvent(c.Request.Context(), draft); err != nil {
		h.fail(c, err, "/events")
		return
	}
	c.Redirect(http.StatusSeeOther, "/events")
}

// DeleteEvent removes an event permanently.
func (h *Handler) DeleteEvent(c *gin.Context) {
	if err := h.client(c).DeleteEvent(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err, "/events")
		return
	}
	c.Redirect(http.StatusSeeOther, "/events")
}

// ToggleEvent flips an event between active and inactive.
func (h *Handler) ToggleEvent(c *gin.Context) {
	active := c.PostForm("active") == "true"
	if err := h.client(c).SetEventStatus(c.Request.Context(), c.Param("id"), active); err != nil {
		h.fail(c, err, "/events")
		return
	}
	c.Redirect(http.StatusSeeOther, "/events")
}

// formUpload stores the request's optional "image" file and returns its URL,
// or an empty string when the form carried no file.
func (h *Handler) formUpload(c *gin.Context, bucket string) (string, error) {
	header, err := c.FormFile("image")
	if err != nil {
		return "", nil // no file attached
	}
	file, err := header.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()
	return h.uploader(c).Upload(c.Request.Context(), bucket, header.Filename, file)
}

func newEventRow(e models.Event) eventRow {
	state := e.Status
	if state == "" {
		if e.IsActive {
			state = "Active"
		} else {
			state = "Inactive"
		}
	}
	image := e.ImageURL
	if image == "" {
		image = utils.PlaceholderImageURL
	}
	date, _ := time.Parse("2006-01-02", e.EventDate)
	return eventRow{Event: e, Date: date, State: state, Image: image}
}
