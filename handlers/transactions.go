package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"lifekitadmin/models"
	"lifekitadmin/services/listfilter"
	"lifekitadmin/services/transactions"
)

// transactionTabs are the derived-status tabs in display order.
var transactionTabs = []string{
	"All",
	transactions.LabelUpcoming,
	transactions.LabelOngoing,
	transactions.LabelCompleted,
	transactions.LabelCancelled,
	transactions.LabelExpired,
}

// transactionRow is one booking prepared for display: the raw record plus
// everything derived from it.
type transactionRow struct {
	Booking  models.Booking
	Ref      string
	Provider string
	Service  string
	Badge    transactions.Badge
	Hours    int
	When     time.Time
}

// Transactions renders every booking on the platform, grouped into tabs by
// derived status. Filtering and search happen locally over the full fetch.
func (h *Handler) Transactions(c *gin.Context) {
	bookings, err := h.client(c).Bookings(c.Request.Context())
	if err != nil {
		h.fail(c, err, "/")
		return
	}

	now := time.Now()
	rows := make([]transactionRow, 0, len(bookings))
	for _, b := range bookings {
		rows = append(rows, transactionRow{
			Booking:  b,
			Ref:      shortRef(b.ID),
			Provider: b.ProviderName(),
			Service:  b.ServiceTitle(),
			Badge:    transactions.ClassifyBooking(b, now),
			Hours:    transactions.Hours(b.TotalPrice, b.HourlyRate()),
			When:     b.EffectiveTime(),
		})
	}

	tab := c.Query("tab")
	if !validTab(tab) {
		tab = "All"
	}

	opts := listfilter.Options{
		Search:   c.Query("q"),
		DateSort: listfilter.DateNew,
	}
	if tab != "All" {
		opts.Statuses = []string{tab}
	}

	filtered := listfilter.Apply(rows, opts, func(r transactionRow) listfilter.Fields {
		return listfilter.Fields{
			Status: r.Badge.Label,
			Text:   []string{r.Provider, r.Service, r.Ref},
			Price:  r.Booking.TotalPrice,
			Date:   r.When,
		}
	})

	h.render(c, "transactions.html", gin.H{
		"Tabs":   transactionTabs,
		"Tab":    tab,
		"Search": c.Query("q"),
		"Rows":   filtered,
		"Total":  len(rows),
	})
}

func validTab(tab string) bool {
	for _, t := range transactionTabs {
		if t == tab {
			return true
		}
	}
	return false
}
