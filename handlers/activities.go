package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lifekitadmin/models"
)

// Chart reporting periods accepted by the core API.
const (
	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"
	PeriodYearly  = "yearly"
)

func chartPeriod(raw string) string {
	switch raw {
	case PeriodMonthly, PeriodYearly:
		return raw
	default:
		return PeriodWeekly
	}
}

// Activities renders the listed-services chart next to the full moderation
// queue, every status included. The two fetches run concurrently and the page
// is all-or-nothing: a failure of either aborts the render.
func (h *Handler) Activities(c *gin.Context) {
	client := h.client(c)
	ctx := c.Request.Context()
	period := chartPeriod(c.Query("period"))

	var (
		chart    []models.ChartPoint
		queue    []models.ServiceListing
		chartErr error
		queueErr error
	)
	done := make(chan struct{}, 2)
	go func() {
		chart, chartErr = client.ActivityChart(ctx, period)
		done <- struct{}{}
	}()
	go func() {
		queue, queueErr = client.ServicesQueue(ctx)
		done <- struct{}{}
	}()
	<-done
	<-done

	if chartErr != nil {
		h.fail(c, chartErr, "/")
		return
	}
	if queueErr != nil {
		h.fail(c, queueErr, "/")
		return
	}

	rows := make([]queueRow, 0, len(queue))
	for _, svc := range queue {
		rows = append(rows, newQueueRow(svc))
	}

	h.render(c, "activities.html", gin.H{
		"Period": period,
		"Chart":  chart,
		"Queue":  rows,
	})
}

// ActivityChartJSON serves the chart data alone, so the period selector can
// swap datasets without a full page render.
func (h *Handler) ActivityChartJSON(c *gin.Context) {
	period := chartPeriod(c.Query("period"))
	chart, err := h.client(c).ActivityChart(c.Request.Context(), period)
	if err != nil {
		h.failJSON(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"period": period, "points": chart})
}
