// Package transactions derives display state for bookings. The stored status
// a booking carries is coarse; the label an operator sees also depends on
// whether the appointment time has passed. Nothing here is ever written back
// to the core API.
package transactions

import (
	"math"
	"sync"
	"time"

	"go.uber.org/zap"

	"lifekitadmin/models"
	"lifekitadmin/utils"
)

// Badge is a derived display status with a tone the templates map to styling.
type Badge struct {
	Label string
	Tone  string
}

// Derived status labels.
const (
	LabelCompleted = "Completed"
	LabelCancelled = "Cancelled"
	LabelOngoing   = "Ongoing"
	LabelExpired   = "Expired"
	LabelUpcoming  = "Upcoming"
)

var badges = map[string]Badge{
	LabelCompleted: {Label: LabelCompleted, Tone: "success"},
	LabelCancelled: {Label: LabelCancelled, Tone: "danger"},
	LabelOngoing:   {Label: LabelOngoing, Tone: "info"},
	LabelExpired:   {Label: LabelExpired, Tone: "muted"},
	LabelUpcoming:  {Label: LabelUpcoming, Tone: "primary"},
}

var (
	unknownMu   sync.Mutex
	unknownSeen = map[string]struct{}{}
)

// Classify maps a stored booking status plus its effective time to a display
// badge. Rules are evaluated in order, first match wins:
//
//  1. completed -> Completed
//  2. cancelled -> Cancelled
//  3. time strictly in the past and confirmed -> Ongoing
//  4. time strictly in the past and pending -> Expired
//  5. anything else -> Upcoming
//
// A stored status outside the known set falls through to Upcoming; the first
// occurrence of each such status is logged so new backend states surface in
// the logs instead of vanishing into the default.
func Classify(storedStatus string, when, now time.Time) Badge {
	switch storedStatus {
	case models.BookingCompleted:
		return badges[LabelCompleted]
	case models.BookingCancelled:
		return badges[LabelCancelled]
	case models.BookingConfirmed:
		if when.Before(now) {
			return badges[LabelOngoing]
		}
		return badges[LabelUpcoming]
	case models.BookingPending:
		if when.Before(now) {
			return badges[LabelExpired]
		}
		return badges[LabelUpcoming]
	default:
		warnUnknownStatus(storedStatus)
		return badges[LabelUpcoming]
	}
}

// ClassifyBooking is Classify applied to a booking's own fields.
func ClassifyBooking(b models.Booking, now time.Time) Badge {
	return Classify(b.Status, b.EffectiveTime(), now)
}

// Hours derives the displayed hour quantity from the total price and the
// service's hourly rate: max(1, round(totalPrice/hourlyRate)). A missing or
// non-positive rate falls back to the default rate.
func Hours(totalPrice, hourlyRate float64) int {
	if hourlyRate <= 0 {
		hourlyRate = utils.DefaultHourlyRate
	}
	h := int(math.Round(totalPrice / hourlyRate))
	if h < 1 {
		return 1
	}
	return h
}

func warnUnknownStatus(status string) {
	unknownMu.Lock()
	defer unknownMu.Unlock()
	if _, ok := unknownSeen[status]; ok {
		return
	}
	unknownSeen[status] = struct{}{}
	zap.L().Warn("unrecognized booking status, treating as upcoming", zap.String("status", status))
}
