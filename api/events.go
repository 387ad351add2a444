package api

import (
	"context"
	"net/url"

	"lifekitadmin/models"
)

// Events fetches the full event collection.
func (c *Client) Events(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	if err := c.get(ctx, "/events", &events); err != nil {
		return nil, err
	}
	return events, nil
}

// CreateEvent publishes a new event. The draft's ImageURL must be the
// location the storage upload returned, never a client-guessed one.
func (c *Client) CreateEvent(ctx context.Context, draft models.EventDraft) error {
	return c.post(ctx, "/events", draft, nil)
}

// DeleteEvent removes an event permanently.
func (c *Client) DeleteEvent(ctx context.Context, id string) error {
	return c.delete(ctx, "/events/"+url.PathEscape(id))
}

type eventStatusUpdate struct {
	IsActive bool `json:"is_active"`
}

// SetEventStatus activates or deactivates an event.
func (c *Client) SetEventStatus(ctx context.Context, id string, active bool) error {
	return c.put(ctx, "/events/"+url.PathEscape(id)+"/status", eventStatusUpdate{IsActive: active}, nil)
}
