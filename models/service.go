package models

import "time"

// Service listing moderation states, server-authoritative. The console only
// requests transitions and re-fetches.
const (
	ServicePending  = "pending"
	ServiceActive   = "active"
	ServiceRejected = "rejected"
)

// ProviderProfile is the provider summary embedded in listings and bookings.
type ProviderProfile struct {
	FullName          string `json:"full_name"`
	ProfilePictureURL string `json:"profile_picture_url,omitempty"`
}

// ServiceCategoryRef is the category summary embedded in a listing.
type ServiceCategoryRef struct {
	Name string `json:"name"`
}

// ServiceListing is a provider's service offer awaiting or past moderation.
type ServiceListing struct {
	ID        string              `json:"id"`
	Title     string              `json:"title"`
	Price     float64             `json:"price"`
	Status    string              `json:"status"`
	ImageURLs []string            `json:"image_urls,omitempty"`
	CreatedAt time.Time           `json:"created_at"`
	Provider  *ProviderProfile    `json:"profiles,omitempty"`
	Category  *ServiceCategoryRef `json:"service_categories,omitempty"`
}

// ProviderName returns the provider's display name, falling back to "Unknown"
// when the embedded profile is missing.
func (s ServiceListing) ProviderName() string {
	if s.Provider == nil || s.Provider.FullName == "" {
		return "Unknown"
	}
	return s.Provider.FullName
}

// CategoryName falls back to "General" when the listing has no category.
func (s ServiceListing) CategoryName() string {
	if s.Category == nil || s.Category.Name == "" {
		return "General"
	}
	return s.Category.Name
}

// FirstImage returns the lead image or an empty string.
func (s ServiceListing) FirstImage() string {
	if len(s.ImageURLs) == 0 {
		return ""
	}
	return s.ImageURLs[0]
}

// ServiceReview is the moderation decision sent to the core API.
type ServiceReview struct {
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}
