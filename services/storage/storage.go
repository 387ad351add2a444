// Package storage uploads images for events, feed posts and admin avatars.
// Two backends exist: the core API's own storage endpoint (the default) and
// direct Cloudinary upload for deployments that bypass the core API.
// Either way the caller gets back a public URL and never guesses one itself.
package storage

import (
	"context"
	"io"
)

// Buckets the console uploads into.
const (
	BucketEvents  = "events"
	BucketFeeds   = "feeds"
	BucketAvatars = "avatars"
)

// Uploader stores a file and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, bucket, filename string, file io.Reader) (string, error)
}
