package session

import (
	"context"
	"net/http"
	"sync"
	"time"
)

// MemoryStore is an in-process Store used by tests and redis-less local runs.
// Expiry is checked lazily on Get.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]memoryEntry
}

type memoryEntry struct {
	data      Data
	expiresAt time.Time
}

// NewMemoryStore creates an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]memoryEntry)}
}

func (s *MemoryStore) Create(ctx context.Context, w http.ResponseWriter, data *Data, ttl time.Duration) (string, error) {
	id, err := generateID()
	if err != nil {
		return "", err
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	data.CreatedAt = time.Now()

	s.mu.Lock()
	s.sessions[id] = memoryEntry{data: *data, expiresAt: time.Now().Add(ttl)}
	s.mu.Unlock()

	setCookie(w, id, ttl)
	return id, nil
}

func (s *MemoryStore) Get(ctx context.Context, r *http.Request) (*Data, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return nil, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.sessions[cookie.Value]
	if !ok {
		return nil, nil
	}
	if time.Now().After(entry.expiresAt) {
		delete(s.sessions, cookie.Value)
		return nil, nil
	}
	data := entry.data
	return &data, nil
}

func (s *MemoryStore) Update(ctx context.Context, r *http.Request, data *Data) error {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.sessions[cookie.Value]
	if !ok {
		return nil
	}
	entry.data = *data
	s.sessions[cookie.Value] = entry
	return nil
}

func (s *MemoryStore) Destroy(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return nil
	}
	s.mu.Lock()
	delete(s.sessions, cookie.Value)
	s.mu.Unlock()
	clearCookie(w)
	return nil
}
