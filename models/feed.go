package models

import "time"

// FeedPost is an entry of the platform's social feed.
type FeedPost struct {
	ID            string    `json:"id"`
	Content       string    `json:"content"`
	ImageURL      string    `json:"image_url,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	LikesCount    int       `json:"likes_count"`
	CommentsCount int       `json:"comments_count"`
}

// FeedDraft is the creation payload.
type FeedDraft struct {
	Content  string `json:"content"`
	ImageURL string `json:"image_url"`
}
