package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"lifekitadmin/models"
)

// Analytics renders the server-computed analytics snapshot.
func (h *Handler) Analytics(c *gin.Context) {
	snapshot, err := h.client(c).Analytics(c.Request.Context())
	if err != nil {
		h.fail(c, err, "/")
		return
	}
	h.render(c, "analytics.html", gin.H{"Snapshot": snapshot})
}

// AnalyticsChartJSON serves the revenue series alone for the page script.
func (h *Handler) AnalyticsChartJSON(c *gin.Context) {
	snapshot, err := h.client(c).Analytics(c.Request.Context())
	if err != nil {
		h.failJSON(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"points": snapshot.Chart})
}

// Withdraw validates the payout form against the fresh available balance and
// submits the withdrawal. The balance check is a courtesy; the core API
// enforces its own.
func (h *Handler) Withdraw(c *gin.Context) {
	amountRaw := strings.TrimSpace(c.PostForm("amount"))
	destination := strings.TrimSpace(c.PostForm("destination"))
	if amountRaw == "" || destination == "" {
		h.flashBack(c, "Amount and destination are required.", "/analytics")
		return
	}
	amount, err := strconv.ParseFloat(amountRaw, 64)
	if err != nil || amount <= 0 {
		h.flashBack(c, "Amount must be a positive number.", "/analytics")
		return
	}

	snapshot, err := h.client(c).Analytics(c.Request.Context())
	if err != nil {
		h.fail(c, err, "/analytics")
		return
	}
	if amount > snapshot.Cards.AvailableBalance {
		h.flashBack(c, fmt.Sprintf("Amount exceeds the available balance of %.2f.", snapshot.Cards.AvailableBalance), "/analytics")
		return
	}

	req := models.WithdrawRequest{Amount: amount, Destination: destination}
	if err := h.client(c).Withdraw(c.Request.Context(), req); err != nil {
		h.fail(c, err, "/analytics")
		return
	}
	h.flashBack(c, "Withdrawal submitted.", "/analytics")
}
