// pkg/memcache/sessions.go
package mem

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
	"utsav/internal/models/session_models"
)

// SessionStore keeps live conversation sessions in memory. Sessions are
// never persisted; an expired session simply restarts the conversation.
type SessionStore interface {
	Put(session *session_models.Session)
	Get(id string) (*session_models.Session, bool)
	Delete(id string)
}

type sessionStore struct {
	cache *gocache.Cache
	ttl   time.Duration
}

func NewSessionStore(ttl time.Duration) SessionStore {
	return &sessionStore{
		cache: gocache.New(ttl, 10*time.Minute),
		ttl:   ttl,
	}
}

func (s *sessionStore) Put(session *session_models.Session) {
	s.cache.Set(session.ID.String(), session, s.ttl)
}

func (s *sessionStore) Get(id string) (*session_models.Session, bool) {
	v, ok := s.cache.Get(id)
	if !ok {
		return nil, false
	}
	session, ok := v.(*session_models.Session)
	return session, ok
}

func (s *sessionStore) Delete(id string) {
	s.cache.Delete(id)
}
