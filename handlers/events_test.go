package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"html/template"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"lifekitadmin/api"
	"lifekitadmin/middleware"
	"lifekitadmin/models"
	"lifekitadmin/session"
)

type recordingBackend struct {
	mu         sync.Mutex
	calls      []string
	eventDraft models.EventDraft
}

func (b *recordingBackend) handler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.calls = append(b.calls, r.Method+" "+r.URL.Path)
		b.mu.Unlock()

		switch r.URL.Path {
		case "/storage/upload/events":
			w.Write([]byte(`{"url":"https://cdn.test/events/poster.png"}`))
		case "/events":
			body, _ := io.ReadAll(r.Body)
			b.mu.Lock()
			if err := json.Unmarshal(body, &b.eventDraft); err != nil {
				t.Errorf("decode event draft: %v", err)
			}
			b.mu.Unlock()
			w.Write([]byte(`{}`))
		default:
			t.Errorf("unexpected backend call %s %s", r.Method, r.URL.Path)
		}
	}
}

func eventForm(t *testing.T) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	w.WriteField("title", "Launch Party")
	w.WriteField("event_date", "2026-09-12")
	w.WriteField("event_time", "18:00")
	w.WriteField("price", "25")
	w.WriteField("location", "Nairobi")
	part, err := w.CreateFormFile("image", "poster.png")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	part.Write([]byte("png-bytes"))
	w.Close()
	return &buf, w.FormDataContentType()
}

func TestCreateEventUploadsImageFirst(t *testing.T) {
	gin.SetMode(gin.TestMode)
	backend := &recordingBackend{}
	srv := httptest.NewServer(backend.handler(t))
	defer srv.Close()

	store := session.NewMemoryStore()
	h := New(api.NewClient(srv.URL), store, nil)

	r := gin.New()
	r.SetHTMLTemplate(template.Must(template.New("login.html").Parse(`login`)))
	r.Use(middleware.LoadSession(store))
	r.POST("/events", middleware.RequireAdmin(), h.CreateEvent)

	rec := httptest.NewRecorder()
	data := &session.Data{
		AccessToken: "tok",
		Profile:     models.AdminProfile{ID: "u1", Role: "admin"},
	}
	if _, err := store.Create(context.Background(), rec, data, time.Hour); err != nil {
		t.Fatalf("create session: %v", err)
	}
	cookie := sessionCookie(rec)

	body, contentType := eventForm(t)
	req := httptest.NewRequest(http.MethodPost, "/events", body)
	req.Header.Set("Content-Type", contentType)
	req.AddCookie(cookie)

	postRec := httptest.NewRecorder()
	r.ServeHTTP(postRec, req)

	if postRec.Code != http.StatusSeeOther || postRec.Header().Get("Location") != "/events" {
		t.Fatalf("got %d -> %q, want 303 -> /events", postRec.Code, postRec.Header().Get("Location"))
	}

	wantCalls := []string{"POST /storage/upload/events", "POST /events"}
	if len(backend.calls) != 2 || backend.calls[0] != wantCalls[0] || backend.calls[1] != wantCalls[1] {
		t.Fatalf("backend calls = %v, want %v", backend.calls, wantCalls)
	}

	if backend.eventDraft.ImageURL != "https://cdn.test/events/poster.png" {
		t.Errorf("created event image URL = %q, want the uploaded URL", backend.eventDraft.ImageURL)
	}
	if backend.eventDraft.Title != "Launch Party" || backend.eventDraft.Price != 25 {
		t.Errorf("created event draft = %+v", backend.eventDraft)
	}
}

func TestCreateEventRejectsMissingFields(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("backend called despite invalid form: %s", r.URL.Path)
	}))
	defer srv.Close()

	store := session.NewMemoryStore()
	h := New(api.NewClient(srv.URL), store, nil)

	r := gin.New()
	r.Use(middleware.LoadSession(store))
	r.POST("/events", middleware.RequireAdmin(), h.CreateEvent)

	rec := httptest.NewRecorder()
	data := &session.Data{AccessToken: "tok", Profile: models.AdminProfile{ID: "u1", Role: "admin"}}
	if _, err := store.Create(context.Background(), rec, data, time.Hour); err != nil {
		t.Fatalf("create session: %v", err)
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	w.WriteField("title", "No date or price")
	w.Close()

	req := httptest.NewRequest(http.MethodPost, "/events", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.AddCookie(sessionCookie(rec))

	postRec := httptest.NewRecorder()
	r.ServeHTTP(postRec, req)

	if postRec.Code != http.StatusSeeOther || postRec.Header().Get("Location") != "/events" {
		t.Fatalf("got %d -> %q, want 303 -> /events", postRec.Code, postRec.Header().Get("Location"))
	}
}
