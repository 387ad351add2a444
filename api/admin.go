package api

import (
	"context"
	"net/url"

	"lifekitadmin/models"
)

// Stats fetches the dashboard headline cards.
func (c *Client) Stats(ctx context.Context) (*models.Stats, error) {
	var stats models.Stats
	if err := c.get(ctx, "/admin/stats", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// ServicesQueue fetches the full moderation queue, all statuses included.
func (c *Client) ServicesQueue(ctx context.Context) ([]models.ServiceListing, error) {
	var queue []models.ServiceListing
	if err := c.get(ctx, "/admin/services-queue", &queue); err != nil {
		return nil, err
	}
	return queue, nil
}

// ReviewService requests a moderation transition for one listing. The status
// change is server-authoritative; callers re-fetch the queue afterwards.
func (c *Client) ReviewService(ctx context.Context, id string, review models.ServiceReview) error {
	return c.put(ctx, "/admin/review-service/"+url.PathEscape(id), review, nil)
}

// Bookings fetches every booking on the platform.
func (c *Client) Bookings(ctx context.Context) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := c.get(ctx, "/admin/bookings/all", &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// ActivityChart fetches the listed-services chart for a reporting period
// (weekly, monthly or yearly).
func (c *Client) ActivityChart(ctx context.Context, period string) ([]models.ChartPoint, error) {
	var points []models.ChartPoint
	if err := c.get(ctx, "/admin/activities/chart?period="+url.QueryEscape(period), &points); err != nil {
		return nil, err
	}
	return points, nil
}

// Analytics fetches the full analytics snapshot, computed server-side.
func (c *Client) Analytics(ctx context.Context) (*models.AnalyticsSnapshot, error) {
	var snapshot models.AnalyticsSnapshot
	if err := c.get(ctx, "/admin/analytics", &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// Withdraw moves earnings to the payout destination.
func (c *Client) Withdraw(ctx context.Context, req models.WithdrawRequest) error {
	return c.post(ctx, "/admin/withdraw", req, nil)
}

// Admins lists the administrative accounts.
func (c *Client) Admins(ctx context.Context) ([]models.AdminUser, error) {
	var admins []models.AdminUser
	if err := c.get(ctx, "/admin/users/admins", &admins); err != nil {
		return nil, err
	}
	return admins, nil
}

// InviteAdmin creates a new administrative account.
func (c *Client) InviteAdmin(ctx context.Context, invite models.AdminInvite) error {
	return c.post(ctx, "/admin/users/invite-admin", invite, nil)
}

// RemoveAdmin deletes an administrative account.
func (c *Client) RemoveAdmin(ctx context.Context, id string) error {
	return c.delete(ctx, "/admin/users/admins/"+url.PathEscape(id))
}

// Categories fetches the flat category list; the tree shape is derived
// client-side from the parent references.
func (c *Client) Categories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := c.get(ctx, "/admin/categories", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// CreateCategory adds a root or sub-category depending on the draft's parent.
func (c *Client) CreateCategory(ctx context.Context, draft models.CategoryDraft) error {
	return c.post(ctx, "/admin/categories", draft, nil)
}

// DeleteCategory removes a category. The core API cascade-deletes any
// sub-categories; the console issues exactly one call.
func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	return c.delete(ctx, "/admin/categories/"+url.PathEscape(id))
}
