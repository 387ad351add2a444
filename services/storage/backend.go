package storage

import (
	"context"
	"io"

	"lifekitadmin/api"
)

// BackendUploader forwards uploads to the core API's storage endpoint using
// the caller's credential.
type BackendUploader struct {
	client *api.Client
}

// NewBackendUploader wraps an authenticated API client.
func NewBackendUploader(client *api.Client) *BackendUploader {
	return &BackendUploader{client: client}
}

func (u *BackendUploader) Upload(ctx context.Context, bucket, filename string, file io.Reader) (string, error) {
	return u.client.Upload(ctx, bucket, filename, file)
}
