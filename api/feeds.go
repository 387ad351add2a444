package api

import (
	"context"
	"net/url"

	"lifekitadmin/models"
)

// FeedPosts fetches the social feed, newest first as the core API returns it.
func (c *Client) FeedPosts(ctx context.Context) ([]models.FeedPost, error) {
	var posts []models.FeedPost
	if err := c.get(ctx, "/feeds/posts", &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// CreateFeedPost publishes a post to the social feed.
func (c *Client) CreateFeedPost(ctx context.Context, draft models.FeedDraft) error {
	return c.post(ctx, "/feeds/posts", draft, nil)
}

// DeleteFeedPost removes a post.
func (c *Client) DeleteFeedPost(ctx context.Context, id string) error {
	return c.delete(ctx, "/feeds/posts/"+url.PathEscape(id))
}
