package transactions

import (
	"testing"
	"time"

	"lifekitadmin/models"
)

func TestClassifyTerminalStatesIgnoreTime(t *testing.T) {
	now := time.Now()
	times := []time.Time{now.Add(-48 * time.Hour), now.Add(48 * time.Hour)}

	for _, when := range times {
		if got := Classify(models.BookingCompleted, when, now); got.Label != LabelCompleted {
			t.Errorf("completed at %v: got %q, want %q", when, got.Label, LabelCompleted)
		}
		if got := Classify(models.BookingCancelled, when, now); got.Label != LabelCancelled {
			t.Errorf("cancelled at %v: got %q, want %q", when, got.Label, LabelCancelled)
		}
	}
}

func TestClassifyConfirmedAroundNow(t *testing.T) {
	now := time.Now()

	got := Classify(models.BookingConfirmed, now.Add(-time.Second), now)
	if got.Label != LabelOngoing {
		t.Errorf("confirmed one second past: got %q, want %q", got.Label, LabelOngoing)
	}

	got = Classify(models.BookingConfirmed, now.Add(time.Second), now)
	if got.Label != LabelUpcoming {
		t.Errorf("confirmed one second ahead: got %q, want %q", got.Label, LabelUpcoming)
	}
}

func TestClassifyPendingAroundNow(t *testing.T) {
	now := time.Now()

	got := Classify(models.BookingPending, now.Add(-time.Hour), now)
	if got.Label != LabelExpired {
		t.Errorf("pending in the past: got %q, want %q", got.Label, LabelExpired)
	}

	got = Classify(models.BookingPending, now.Add(time.Hour), now)
	if got.Label != LabelUpcoming {
		t.Errorf("pending in the future: got %q, want %q", got.Label, LabelUpcoming)
	}
}

func TestClassifyUnknownStatusDefaultsToUpcoming(t *testing.T) {
	now := time.Now()
	got := Classify("disputed", now.Add(-time.Hour), now)
	if got.Label != LabelUpcoming {
		t.Errorf("unknown status: got %q, want %q", got.Label, LabelUpcoming)
	}
}

func TestClassifyBookingUsesScheduledThenCreated(t *testing.T) {
	now := time.Now()

	scheduled := models.Booking{
		Status:        models.BookingConfirmed,
		ScheduledTime: now.Add(-time.Hour),
		CreatedAt:     now.Add(time.Hour),
	}
	if got := ClassifyBooking(scheduled, now); got.Label != LabelOngoing {
		t.Errorf("scheduled booking: got %q, want %q", got.Label, LabelOngoing)
	}

	unscheduled := models.Booking{
		Status:    models.BookingConfirmed,
		CreatedAt: now.Add(-time.Hour),
	}
	if got := ClassifyBooking(unscheduled, now); got.Label != LabelOngoing {
		t.Errorf("unscheduled booking falls back to created time: got %q, want %q", got.Label, LabelOngoing)
	}
}

func TestHours(t *testing.T) {
	tests := []struct {
		name  string
		total float64
		rate  float64
		want  int
	}{
		{"exact multiple", 200, 50, 4},
		{"floor of one", 10, 50, 1},
		{"rounds nearest", 130, 50, 3},
		{"zero rate falls back to default", 150, 0, 3},
		{"negative rate falls back to default", 150, -5, 3},
		{"zero total still shows one hour", 0, 50, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Hours(tt.total, tt.rate); got != tt.want {
				t.Errorf("Hours(%v, %v) = %d, want %d", tt.total, tt.rate, got, tt.want)
			}
		})
	}
}
