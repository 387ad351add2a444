package models

import "time"

// Stored booking lifecycle states, owned by the core API.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCompleted = "completed"
	BookingCancelled = "cancelled"
)

// BookedService is the service summary embedded in a booking, including the
// provider who offers it. Its Price is the hourly rate.
type BookedService struct {
	Title    string           `json:"title"`
	Price    float64          `json:"price"`
	Provider *ProviderProfile `json:"profiles,omitempty"`
}

// Booking is a transaction between a customer and a provider. The console
// never mutates its stored status; display status is derived.
type Booking struct {
	ID            string         `json:"id"`
	Status        string         `json:"status"`
	ScheduledTime time.Time      `json:"scheduled_time,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	TotalPrice    float64        `json:"total_price"`
	Service       *BookedService `json:"services,omitempty"`
}

// EffectiveTime is the instant used for derived status: the scheduled time,
// or the creation time when no schedule was recorded.
func (b Booking) EffectiveTime() time.Time {
	if !b.ScheduledTime.IsZero() {
		return b.ScheduledTime
	}
	return b.CreatedAt
}

// ProviderName falls back to "Unknown" when the provider is missing.
func (b Booking) ProviderName() string {
	if b.Service == nil || b.Service.Provider == nil || b.Service.Provider.FullName == "" {
		return "Unknown"
	}
	return b.Service.Provider.FullName
}

// ServiceTitle falls back to "General Service" when the service is missing.
func (b Booking) ServiceTitle() string {
	if b.Service == nil || b.Service.Title == "" {
		return "General Service"
	}
	return b.Service.Title
}

// HourlyRate returns the booked service's hourly rate, zero when unknown.
func (b Booking) HourlyRate() float64 {
	if b.Service == nil {
		return 0
	}
	return b.Service.Price
}
