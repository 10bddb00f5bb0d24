package session

import (
	"strings"
	"sync"
	"time"

	jwtpkg "github.com/amadeudias/blog-core/internal/pkg/jwt"
	"github.com/google/uuid"
)

// DefaultTTL applies to credential logins; dev auto-login uses DevTTL.
const (
	DefaultTTL = 24 * time.Hour
	DevTTL     = time.Hour
)

// Session is one authenticated admin session held in process memory.
// Like the rest of the application state it is lost on restart.
type Session struct {
	ID        string
	Email     string
	IP        string
	UA        string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Registry tracks active sessions and their expiry.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*Session)}
}

// Issue records a session and signs a JWT bound to it.
func (r *Registry) Issue(email, ip, ua string, ttl time.Duration) (string, *Session, error) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	now := time.Now()
	s := &Session{
		ID:        uuid.New().String(),
		Email:     email,
		IP:        strings.TrimSpace(ip),
		UA:        strings.TrimSpace(ua),
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}

	token, err := jwtpkg.Sign(email, s.ID, ttl)
	if err != nil {
		return "", nil, err
	}

	r.mu.Lock()
	r.sessions[s.ID] = s
	r.mu.Unlock()
	return token, s, nil
}

// IsActive reports whether the session exists and has not expired.
// Expired entries are dropped on sight.
func (r *Registry) IsActive(sessionID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[sessionID]
	if !ok {
		return false
	}
	if time.Now().After(s.ExpiresAt) {
		delete(r.sessions, sessionID)
		return false
	}
	return true
}

// Get returns the session by id, or nil when absent or expired.
func (r *Registry) Get(sessionID string) *Session {
	if !r.IsActive(sessionID) {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[sessionID]
	if !ok {
		return nil
	}
	out := *s
	return &out
}

// Revoke drops the session. Revoking an unknown id is a no-op.
func (r *Registry) Revoke(sessionID string) {
	r.mu.Lock()
	delete(r.sessions, sessionID)
	r.mu.Unlock()
}
