package memory

import (
	"time"

	"bizhub-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

// SessionRepository keeps active chat-session state in process memory.
// Entries expire after an hour of inactivity; the database remains the
// source of truth for full history.
type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{
		cache: cache.New(1*time.Hour, 10*time.Minute),
	}
}

func (r *SessionRepository) Save(session *store.SessionState) {
	r.cache.Set(session.ID, session, cache.DefaultExpiration)
}

func (r *SessionRepository) Get(sessionID string) (*store.SessionState, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*store.SessionState), true
	}
	return nil, false
}

func (r *SessionRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}
