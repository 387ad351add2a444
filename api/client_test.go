package api

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestClientAttachesBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL).WithToken("tok-123")
	if err := client.get(context.Background(), "/admin/stats", &struct{}{}); err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer tok-123")
	}
}

func TestClientOmitsAuthorizationWithoutToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	if err := client.get(context.Background(), "/auth/login", &struct{}{}); err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("Authorization = %q, want empty", gotAuth)
	}
}

func TestClientMapsUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewClient(srv.URL).WithToken("stale")
	err := client.get(context.Background(), "/admin/stats", &struct{}{})
	if !errors.Is(err, ErrUnauthorized) {
		t.Errorf("err = %v, want ErrUnauthorized", err)
	}
}

func TestClientParsesErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"amount exceeds balance"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL).WithToken("tok")
	err := client.post(context.Background(), "/admin/withdraw", map[string]int{"amount": 1}, nil)

	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want *Error", err)
	}
	if apiErr.Status != http.StatusBadRequest || apiErr.Message != "amount exceeds balance" {
		t.Errorf("got %d %q", apiErr.Status, apiErr.Message)
	}
}

func TestClientFallsBackToStatusText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL).WithToken("tok")
	err := client.get(context.Background(), "/admin/stats", &struct{}{})

	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want *Error", err)
	}
	if apiErr.Message != http.StatusText(http.StatusInternalServerError) {
		t.Errorf("message = %q", apiErr.Message)
	}
}

func TestWithTokenDoesNotMutateOriginal(t *testing.T) {
	base := NewClient("http://example.test")
	authed := base.WithToken("tok")
	if base.token != "" {
		t.Error("base client gained a token")
	}
	if authed.token != "tok" {
		t.Errorf("clone token = %q", authed.token)
	}
}

func TestUploadSendsMultipartAndReturnsURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/storage/upload/events" {
			t.Errorf("path = %q", r.URL.Path)
		}
		mediaType := r.Header.Get("Content-Type")
		if !strings.HasPrefix(mediaType, "multipart/form-data") {
			t.Errorf("content type = %q", mediaType)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		var header *multipart.FileHeader
		if files := r.MultipartForm.File["file"]; len(files) > 0 {
			header = files[0]
		}
		if header == nil || header.Filename != "poster.png" {
			t.Errorf("file header = %+v", header)
		}
		w.Write([]byte(`{"url":"https://cdn.test/events/poster.png"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL).WithToken("tok")
	url, err := client.Upload(context.Background(), "events", "poster.png", strings.NewReader("png-bytes"))
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}
	if url != "https://cdn.test/events/poster.png" {
		t.Errorf("url = %q", url)
	}
}

func TestUploadSurfacesUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewClient(srv.URL).WithToken("stale")
	_, err := client.Upload(context.Background(), "events", "poster.png", strings.NewReader("x"))
	if !errors.Is(err, ErrUnauthorized) {
		t.Errorf("err = %v, want ErrUnauthorized", err)
	}
}
