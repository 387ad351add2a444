// Package session manages the console's only durable local state: the bearer
// credential and cached admin profile of the logged-in administrator.
// Sessions are identified by a secure cookie and stored as JSON with TTL
// expiry. Writes happen in exactly four places: login, logout, profile save,
// and the unauthorized-response handler.
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"time"

	"lifekitadmin/models"
)

const (
	// CookieName is the name of the session cookie sent to the browser.
	CookieName = "lk_admin_session"

	// DefaultTTL applies when the bearer token carries no readable expiry.
	DefaultTTL = 24 * time.Hour

	// idLength is the byte length of the random session ID.
	idLength = 32
)

// Data is the session payload.
type Data struct {
	AccessToken string              `json:"access_token"`
	Profile     models.AdminProfile `json:"profile"`
	CreatedAt   time.Time           `json:"created_at"`
}

// Store manages session lifecycle. The Redis implementation backs the running
// console; the memory implementation backs tests.
type Store interface {
	// Create stores the data under a fresh session ID and sets the cookie.
	Create(ctx context.Context, w http.ResponseWriter, data *Data, ttl time.Duration) (string, error)
	// Get loads the session referenced by the request cookie, or nil.
	Get(ctx context.Context, r *http.Request) (*Data, error)
	// Update replaces the payload without rotating the session ID.
	Update(ctx context.Context, r *http.Request, data *Data) error
	// Destroy removes the session and clears the cookie.
	Destroy(ctx context.Context, w http.ResponseWriter, r *http.Request) error
}

// generateID creates a cryptographically random session identifier.
func generateID() (string, error) {
	b := make([]byte, idLength)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func setCookie(w http.ResponseWriter, id string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(ttl.Seconds()),
	})
}

func clearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}
