package models

// Event is a platform event with full CRUD owned by the core API. The console
// holds a draft only while the create form is in flight.
type Event struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	ImageURL    string  `json:"image_url,omitempty"`
	EventDate   string  `json:"event_date"`
	EventTime   string  `json:"event_time,omitempty"`
	Price       float64 `json:"price"`
	Location    string  `json:"location,omitempty"`
	IsActive    bool    `json:"is_active"`
	// Status is the display tag the core API computes ("Active"/"Inactive").
	Status string `json:"status"`
}

// EventDraft is the creation payload.
type EventDraft struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
	EventDate   string  `json:"event_date"`
	EventTime   string  `json:"event_time"`
	Price       float64 `json:"price"`
	Location    string  `json:"location"`
}
